package srarq

import (
	"context"
	"time"

	"github.com/srarq/srarq/internal/ackhandler"
	"github.com/srarq/srarq/internal/protocol"
	"github.com/srarq/srarq/internal/utils"
	"github.com/srarq/srarq/internal/wire"
	"github.com/srarq/srarq/logging"
)

type receiver struct {
	transport Transport
	config    *Config

	tracker *ackhandler.ReceivedSegmentTracker
	parser  *wire.Parser
	sendBuf []byte

	droppedTokens int64

	tracer *logging.SessionTracer
	logger utils.Logger
}

// Receive accepts the next sender on ln and serves its session.
// If conf is nil, the listener's config is used.
// The session ends when the sender closes the connection after the FIN marker was acknowledged.
func Receive(ctx context.Context, ln *Listener, conf *Config) (*ReceiverStats, error) {
	if conf == nil {
		conf = ln.config
	}
	if err := validateConfig(conf); err != nil {
		return nil, err
	}
	t, err := ln.Accept(ctx)
	if err != nil {
		return nil, err
	}
	return receiveOver(ctx, t, populateConfig(conf))
}

// ReceiveOver serves a session on t.
// t is closed when the session ends.
func ReceiveOver(t Transport, conf *Config) (*ReceiverStats, error) {
	if err := validateConfig(conf); err != nil {
		return nil, err
	}
	return receiveOver(context.Background(), t, populateConfig(conf))
}

func receiveOver(ctx context.Context, t Transport, conf *Config) (*ReceiverStats, error) {
	var tracer *logging.SessionTracer
	if conf.Tracer != nil {
		tracer = conf.Tracer(ctx, logging.PerspectiveReceiver)
	}
	logger := utils.DefaultLogger.WithPrefix("receiver")
	r := &receiver{
		transport: t,
		config:    conf,
		tracker:   ackhandler.NewReceivedSegmentTracker(protocol.MaxWindowSize, tracer, logger),
		parser:    wire.NewParser(),
		tracer:    tracer,
		logger:    logger,
	}
	return r.run()
}

func (r *receiver) run() (*ReceiverStats, error) {
	start := time.Now()
	if r.tracer != nil && r.tracer.StartedSession != nil {
		r.tracer.StartedSession(r.transport.LocalAddr(), r.transport.RemoteAddr())
	}
	r.logger.Infof("Accepted session from %s", r.transport.RemoteAddr())

	err := r.runLoop()
	if cerr := r.transport.Close(); cerr != nil {
		r.logger.Debugf("Closing transport failed: %s", cerr)
	}
	closeTracer(r.tracer, err)
	stats := r.stats(time.Since(start))
	if err != nil {
		r.logger.Errorf("Session failed after receiving %d segments: %s", stats.SegmentsReceived, err)
		return stats, &SessionError{Perspective: logging.PerspectiveReceiver, Err: err}
	}
	r.logger.Infof("Session completed in %s. Received %d segments (%d duplicates)", stats.Duration, stats.SegmentsReceived, stats.Duplicates)
	return stats, nil
}

func (r *receiver) runLoop() error {
	if err := r.establishSession(); err != nil {
		return err
	}
	for {
		batch, err := r.receiveBatch()
		if err != nil {
			if r.tracker.Finished() {
				r.logger.Debugf("Session ended after FIN: %s", err)
				return nil
			}
			return err
		}
		acks := r.tracker.ReceivedBatch(&batch)
		if acks.Empty() {
			continue
		}
		wire.LogBatch(r.logger, &acks, true)
		r.sendBuf = wire.AppendBatch(r.sendBuf[:0], &acks)
		if err := r.transport.Send(r.sendBuf); err != nil {
			if r.tracker.Finished() {
				r.logger.Debugf("Session ended after FIN: %s", err)
				return nil
			}
			return err
		}
	}
}

func (r *receiver) establishSession() error {
	if err := r.transport.SetReadDeadline(handshakeDeadline(r.config)); err != nil {
		return err
	}
	if err := readHandshakeMessage(r.transport, wire.HandshakeRequest); err != nil {
		return err
	}
	return r.transport.Send([]byte(wire.HandshakeResponse))
}

// receiveBatch blocks until a non-empty batch was received.
func (r *receiver) receiveBatch() (wire.Batch, error) {
	for {
		if err := r.transport.SetReadDeadline(time.Now().Add(r.config.MaxIdleTimeout)); err != nil {
			return wire.Batch{}, err
		}
		data, err := r.transport.Receive()
		if err != nil {
			if isDeadlineExceeded(err) {
				return wire.Batch{}, &IdleTimeoutError{}
			}
			return wire.Batch{}, err
		}
		batch, dropped := decodeBatch(r.parser, data, r.tracer, r.logger)
		r.droppedTokens += int64(dropped)
		if !batch.Empty() {
			wire.LogBatch(r.logger, &batch, false)
			return batch, nil
		}
	}
}

func (r *receiver) stats(d time.Duration) *ReceiverStats {
	ts := r.tracker.Stats()
	return &ReceiverStats{
		SegmentsReceived: ts.SegmentsReceived,
		Duplicates:       ts.Duplicates,
		AcksSent:         ts.AcksSent,
		Anomalies:        ts.Anomalies,
		DroppedTokens:    r.droppedTokens,
		Duration:         d,
	}
}
