package ackhandler

import (
	"time"

	"github.com/srarq/srarq/internal/congestion"
	"github.com/srarq/srarq/internal/protocol"
	"github.com/srarq/srarq/internal/utils"
	"github.com/srarq/srarq/internal/wire"
	"github.com/srarq/srarq/logging"
)

// The SentSegmentHandler is the sender side of a session.
// It keeps one segment per sequence number, plus one for the FIN marker,
// and decides which of them are sent in the next round.
type SentSegmentHandler struct {
	segments    []segment
	windowStart int

	congestion *congestion.AIMD
	rttStats   *utils.RTTStats
	rttMargin  time.Duration

	stats SentSegmentStats

	tracer *logging.SessionTracer
	logger utils.Logger
}

// NewSentSegmentHandler creates a handler for totalSegments data segments.
func NewSentSegmentHandler(
	totalSegments int,
	initialWindow, maxWindow protocol.WindowSize,
	rttStats *utils.RTTStats,
	rttMargin time.Duration,
	tracer *logging.SessionTracer,
	logger utils.Logger,
) *SentSegmentHandler {
	segments := make([]segment, totalSegments+1)
	for i := 0; i < totalSegments; i++ {
		segments[i].Number = protocol.SequenceNumber(i)
	}
	segments[totalSegments].Number = protocol.FIN
	return &SentSegmentHandler{
		segments:   segments,
		congestion: congestion.NewAIMD(initialWindow, maxWindow),
		rttStats:   rttStats,
		rttMargin:  rttMargin,
		tracer:     tracer,
		logger:     logger,
	}
}

// RetransmissionTimeout is the time after which an unacknowledged segment is declared lost.
func (h *SentSegmentHandler) RetransmissionTimeout() time.Duration {
	return h.rttStats.LatestRTT() + h.rttMargin
}

func (h *SentSegmentHandler) windowEnd() int {
	return min(h.windowStart+int(h.congestion.WindowSize()), len(h.segments))
}

// SendWindow returns the segments to send now: every segment of the window
// that was never sent, and every segment whose retransmission timeout expired.
// Lost segments are retransmitted right away. Since this restarts their timer,
// a single scan reaches the fixed point.
func (h *SentSegmentHandler) SendWindow(now time.Time) wire.Batch {
	var batch wire.Batch
	rto := h.RetransmissionTimeout()
	end := h.windowEnd()
	for i := h.windowStart; i < end; i++ {
		s := &h.segments[i]
		if s.acked {
			continue
		}
		if s.sent {
			elapsed := now.Sub(s.SendTime)
			if elapsed <= rto {
				continue
			}
			h.onSegmentLost(s, elapsed)
		}
		h.sendSegment(s, now)
		if s.Number.IsFIN() {
			batch.Fin = true
		} else {
			batch.Numbers = append(batch.Numbers, s.Number)
		}
	}
	return batch
}

func (h *SentSegmentHandler) onSegmentLost(s *segment, elapsed time.Duration) {
	s.sent = false
	h.congestion.OnLoss()
	h.stats.Losses++
	if h.logger.Debug() {
		h.logger.Debugf("\tlost segment %s after %s (timeout: %s)", s.Number, elapsed, h.RetransmissionTimeout())
	}
	if h.tracer != nil && h.tracer.LostSegment != nil {
		h.tracer.LostSegment(s.Number, elapsed)
	}
}

func (h *SentSegmentHandler) sendSegment(s *segment, now time.Time) {
	retransmission := s.transmissions > 0
	s.sent = true
	s.SendTime = now
	s.transmissions++
	if !s.Number.IsFIN() {
		h.stats.Transmissions++
		if retransmission {
			h.stats.Retransmissions++
		}
	}
	if h.tracer != nil && h.tracer.SentSegment != nil {
		h.tracer.SentSegment(s.Number, retransmission)
	}
}

// ApplyAcks processes a batch of acknowledgments received at rcvTime.
// Acknowledgments that don't match a sent segment are dropped.
func (h *SentSegmentHandler) ApplyAcks(acks *wire.Batch, rcvTime time.Time) {
	for _, n := range acks.Numbers {
		h.applyAck(int64(n), n, rcvTime)
	}
	if acks.Fin {
		h.applyAck(int64(len(h.segments)-1), protocol.FIN, rcvTime)
	}
}

func (h *SentSegmentHandler) applyAck(idx int64, n protocol.SequenceNumber, rcvTime time.Time) {
	if idx < 0 || idx >= int64(len(h.segments)) {
		h.protocolAnomaly(n, logging.AnomalyAckOutOfRange)
		return
	}
	s := &h.segments[idx]
	if s.Number != n {
		h.protocolAnomaly(n, logging.AnomalyAckSequenceMismatch)
		return
	}
	if s.transmissions == 0 {
		h.protocolAnomaly(n, logging.AnomalyAckUnsent)
		return
	}
	// A duplicate can't be matched to a single transmission, so it yields no RTT sample.
	if s.acked {
		h.stats.DuplicateAcks++
		if h.tracer != nil && h.tracer.ReceivedDuplicateAck != nil {
			h.tracer.ReceivedDuplicateAck(n)
		}
		return
	}

	rtt := rcvTime.Sub(s.SendTime)
	h.rttStats.UpdateRTT(rtt)
	if h.logger.Debug() {
		h.logger.Debugf("\tupdated RTT: %s (σ: %s)", h.rttStats.LatestRTT(), h.rttStats.MeanDeviation())
	}
	if h.tracer != nil && h.tracer.UpdatedRTT != nil {
		h.tracer.UpdatedRTT(h.rttStats)
	}
	s.acked = true
	if !n.IsFIN() {
		h.stats.AcksReceived++
	}
	if h.tracer != nil && h.tracer.AcknowledgedSegment != nil {
		h.tracer.AcknowledgedSegment(n, rtt)
	}
}

func (h *SentSegmentHandler) protocolAnomaly(n protocol.SequenceNumber, reason logging.AnomalyReason) {
	h.stats.Anomalies++
	h.logger.Infof("Dropping acknowledgment for %s: %s", n, reason)
	if h.tracer != nil && h.tracer.ProtocolAnomaly != nil {
		h.tracer.ProtocolAnomaly(n, reason)
	}
}

// AdvanceWindow completes a round.
// It slides the window over the acknowledged segments and resizes it.
func (h *SentSegmentHandler) AdvanceWindow() {
	for h.windowStart < len(h.segments) && h.segments[h.windowStart].acked {
		h.windowStart++
	}
	state := h.congestion.OnRoundComplete()
	h.congestion.LimitTo(protocol.WindowSize(len(h.segments) - h.windowStart))
	if h.logger.Debug() {
		h.logger.Debugf("\twindow start: %d, window size: %d (%s)", h.windowStart, h.congestion.WindowSize(), state)
	}
	if h.tracer != nil && h.tracer.UpdatedCongestionWindow != nil {
		h.tracer.UpdatedCongestionWindow(h.congestion.WindowSize(), state)
	}
}

// Done says if all data segments and the FIN marker were acknowledged.
func (h *SentSegmentHandler) Done() bool {
	return h.windowStart == len(h.segments)
}

// NextRetransmissionTime is the time the earliest pending segment of the window times out.
// It is the zero value if no segment of the window is pending.
func (h *SentSegmentHandler) NextRetransmissionTime() time.Time {
	var next time.Time
	rto := h.RetransmissionTimeout()
	end := h.windowEnd()
	for i := h.windowStart; i < end; i++ {
		s := &h.segments[i]
		if !s.pending() {
			continue
		}
		if deadline := s.SendTime.Add(rto); next.IsZero() || deadline.Before(next) {
			next = deadline
		}
	}
	return next
}

// HasOutstanding says if an acknowledgment is expected for any segment.
func (h *SentSegmentHandler) HasOutstanding() bool {
	for i := h.windowStart; i < len(h.segments); i++ {
		if h.segments[i].pending() {
			return true
		}
	}
	return false
}

// WindowStart is the index of the oldest unacknowledged segment.
func (h *SentSegmentHandler) WindowStart() int { return h.windowStart }

// WindowSize is the current congestion window.
func (h *SentSegmentHandler) WindowSize() protocol.WindowSize { return h.congestion.WindowSize() }

// InSlowStart says if no loss was ever observed.
func (h *SentSegmentHandler) InSlowStart() bool { return h.congestion.InSlowStart() }

// Acknowledged says if the segment at index idx was acknowledged.
func (h *SentSegmentHandler) Acknowledged(idx int) bool {
	return idx >= 0 && idx < len(h.segments) && h.segments[idx].acked
}

// Stats returns a copy of the counters.
func (h *SentSegmentHandler) Stats() SentSegmentStats { return h.stats }
