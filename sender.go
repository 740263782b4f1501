package srarq

import (
	"context"
	"fmt"
	"time"

	"github.com/srarq/srarq/internal/ackhandler"
	"github.com/srarq/srarq/internal/utils"
	"github.com/srarq/srarq/internal/wire"
	"github.com/srarq/srarq/logging"
)

type sender struct {
	transport     Transport
	config        *Config
	totalSegments int

	rttStats *utils.RTTStats
	handler  *ackhandler.SentSegmentHandler
	parser   *wire.Parser
	sendBuf  []byte

	handshakeRTT  time.Duration
	lastActivity  time.Time
	droppedTokens int64

	tracer *logging.SessionTracer
	logger utils.Logger
}

// Send dials addr and transfers totalSegments segments to the receiver listening there.
// The returned stats are non-nil if the session was started, even if it failed.
func Send(ctx context.Context, addr string, totalSegments int, conf *Config) (*SenderStats, error) {
	if totalSegments < 0 {
		return nil, fmt.Errorf("invalid number of segments: %d", totalSegments)
	}
	t, err := Dial(ctx, addr, conf)
	if err != nil {
		return nil, err
	}
	return sendOver(ctx, t, totalSegments, populateConfig(conf))
}

// SendOver transfers totalSegments segments over t.
// t is closed when the session ends.
func SendOver(t Transport, totalSegments int, conf *Config) (*SenderStats, error) {
	if totalSegments < 0 {
		return nil, fmt.Errorf("invalid number of segments: %d", totalSegments)
	}
	if err := validateConfig(conf); err != nil {
		return nil, err
	}
	return sendOver(context.Background(), t, totalSegments, populateConfig(conf))
}

func sendOver(ctx context.Context, t Transport, totalSegments int, conf *Config) (*SenderStats, error) {
	var tracer *logging.SessionTracer
	if conf.Tracer != nil {
		tracer = conf.Tracer(ctx, logging.PerspectiveSender)
	}
	s := newSender(t, totalSegments, conf, tracer, utils.DefaultLogger.WithPrefix("sender"))
	return s.run()
}

func newSender(t Transport, totalSegments int, conf *Config, tracer *logging.SessionTracer, logger utils.Logger) *sender {
	rttStats := &utils.RTTStats{}
	return &sender{
		transport:     t,
		config:        conf,
		totalSegments: totalSegments,
		rttStats:      rttStats,
		handler: ackhandler.NewSentSegmentHandler(
			totalSegments,
			conf.InitialWindowSize,
			conf.MaxWindowSize,
			rttStats,
			conf.RTTMargin,
			tracer,
			logger,
		),
		parser: wire.NewParser(),
		tracer: tracer,
		logger: logger,
	}
}

func (s *sender) run() (*SenderStats, error) {
	start := time.Now()
	if s.tracer != nil && s.tracer.StartedSession != nil {
		s.tracer.StartedSession(s.transport.LocalAddr(), s.transport.RemoteAddr())
	}
	s.logger.Infof("Starting session to %s, sending %d segments", s.transport.RemoteAddr(), s.totalSegments)

	err := s.runLoop()
	if cerr := s.transport.Close(); cerr != nil {
		s.logger.Debugf("Closing transport failed: %s", cerr)
	}
	closeTracer(s.tracer, err)
	stats := s.stats(time.Since(start))
	if err != nil {
		s.logger.Errorf("Session failed after %d of %d segments: %s", stats.AcksReceived, s.totalSegments, err)
		return stats, &SessionError{Perspective: logging.PerspectiveSender, Err: err}
	}
	s.logger.Infof("Session completed in %s. Goodput: %.3f", stats.Duration, stats.Goodput)
	return stats, nil
}

func (s *sender) runLoop() error {
	if err := s.establishSession(); err != nil {
		return err
	}
	for !s.handler.Done() {
		if err := s.sendWindow(); err != nil {
			return err
		}
		acks, err := s.receiveAcks()
		if err != nil {
			return err
		}
		// a retransmission timer expired before any acknowledgment arrived
		if acks.Empty() {
			continue
		}
		s.handler.ApplyAcks(&acks, time.Now())
		s.handler.AdvanceWindow()
	}
	return nil
}

// establishSession performs the handshake.
// Its round trip is the first RTT sample.
func (s *sender) establishSession() error {
	start := time.Now()
	if err := s.transport.SetReadDeadline(handshakeDeadline(s.config)); err != nil {
		return err
	}
	if err := s.transport.Send([]byte(wire.HandshakeRequest)); err != nil {
		return err
	}
	if err := readHandshakeMessage(s.transport, wire.HandshakeResponse); err != nil {
		return err
	}
	s.lastActivity = time.Now()
	s.handshakeRTT = s.lastActivity.Sub(start)
	s.rttStats.UpdateRTT(s.handshakeRTT)
	s.logger.Debugf("Handshake completed. RTT: %s, retransmission timeout: %s", s.handshakeRTT, s.handler.RetransmissionTimeout())
	if s.tracer != nil && s.tracer.CompletedHandshake != nil {
		s.tracer.CompletedHandshake(s.handshakeRTT)
	}
	return nil
}

func (s *sender) sendWindow() error {
	batch := s.handler.SendWindow(time.Now())
	if batch.Empty() {
		return nil
	}
	wire.LogBatch(s.logger, &batch, true)
	s.sendBuf = wire.AppendBatch(s.sendBuf[:0], &batch)
	return s.transport.Send(s.sendBuf)
}

// receiveAcks blocks until a batch of acknowledgments was received.
// It returns an empty batch when the earliest retransmission timer expires first.
func (s *sender) receiveAcks() (wire.Batch, error) {
	for {
		idleDeadline := s.lastActivity.Add(s.config.MaxIdleTimeout)
		deadline := idleDeadline
		if next := s.handler.NextRetransmissionTime(); !next.IsZero() && next.Before(deadline) {
			deadline = next
		}
		if err := s.transport.SetReadDeadline(deadline); err != nil {
			return wire.Batch{}, err
		}
		data, err := s.transport.Receive()
		if err != nil {
			if !isDeadlineExceeded(err) {
				return wire.Batch{}, err
			}
			if !time.Now().Before(idleDeadline) {
				return wire.Batch{}, &IdleTimeoutError{}
			}
			return wire.Batch{}, nil
		}
		s.lastActivity = time.Now()
		batch, dropped := decodeBatch(s.parser, data, s.tracer, s.logger)
		s.droppedTokens += int64(dropped)
		if !batch.Empty() {
			wire.LogBatch(s.logger, &batch, false)
			return batch, nil
		}
	}
}

func (s *sender) stats(d time.Duration) *SenderStats {
	hs := s.handler.Stats()
	return &SenderStats{
		Segments:        s.totalSegments,
		AcksReceived:    hs.AcksReceived,
		Transmissions:   hs.Transmissions,
		Retransmissions: hs.Retransmissions,
		Losses:          hs.Losses,
		DuplicateAcks:   hs.DuplicateAcks,
		Anomalies:       hs.Anomalies,
		DroppedTokens:   s.droppedTokens,
		Goodput:         hs.Goodput(),
		FinalWindowSize: s.handler.WindowSize(),
		HandshakeRTT:    s.handshakeRTT,
		MinRTT:          s.rttStats.MinRTT(),
		SmoothedRTT:     s.rttStats.SmoothedRTT(),
		LatestRTT:       s.rttStats.LatestRTT(),
		Duration:        d,
	}
}
