package ackhandler

import (
	"errors"

	"github.com/srarq/srarq/internal/protocol"
	"github.com/srarq/srarq/internal/utils"
	"github.com/srarq/srarq/internal/wire"
	"github.com/srarq/srarq/logging"
)

var errBeyondReceiveWindow = errors.New("segment beyond receive window")

// The ReceivedSegmentTracker is the receiver side of a session.
// received[i] is set once segment i arrived. The slice only grows, and only
// as far as needed to address the highest segment received.
type ReceivedSegmentTracker struct {
	received    []bool
	windowStart int
	maxWindow   protocol.WindowSize

	// finished is set once the FIN marker was received
	finished bool

	stats ReceivedSegmentStats

	tracer *logging.SessionTracer
	logger utils.Logger
}

// NewReceivedSegmentTracker creates a new tracker.
// Segments at or beyond the window start plus maxWindow are dropped.
func NewReceivedSegmentTracker(maxWindow protocol.WindowSize, tracer *logging.SessionTracer, logger utils.Logger) *ReceivedSegmentTracker {
	if maxWindow <= 0 || maxWindow > protocol.MaxWindowSize {
		maxWindow = protocol.MaxWindowSize
	}
	return &ReceivedSegmentTracker{
		received:  make([]bool, 1),
		maxWindow: maxWindow,
		tracer:    tracer,
		logger:    logger,
	}
}

// MarkReceived records the arrival of a data segment.
// It returns true for the first arrival, and false for duplicates.
// Each arrival is counted once, either as a new segment or as a duplicate.
func (t *ReceivedSegmentTracker) MarkReceived(seq protocol.SequenceNumber) (bool, error) {
	if seq < 0 || int64(seq) >= int64(t.windowStart)+int64(t.maxWindow) {
		return false, errBeyondReceiveWindow
	}
	idx := int(seq)
	if idx >= len(t.received) {
		t.received = append(t.received, make([]bool, idx+1-len(t.received))...)
	}
	if t.received[idx] {
		t.stats.Duplicates++
		return false, nil
	}
	t.received[idx] = true
	t.stats.SegmentsReceived++
	t.advanceWindowStart()
	return true, nil
}

// advanceWindowStart moves the window start over the contiguous run of received segments.
// The slot at the window start always exists.
func (t *ReceivedSegmentTracker) advanceWindowStart() {
	for t.received[t.windowStart] {
		t.windowStart++
		if t.windowStart == len(t.received) {
			t.received = append(t.received, false)
		}
	}
}

// ReceivedBatch processes a batch of segments and returns the acknowledgments to send.
// There's one acknowledgment per arrival, in the order of arrival, duplicates included.
// If the batch contained the FIN marker, it is acknowledged last.
func (t *ReceivedSegmentTracker) ReceivedBatch(batch *wire.Batch) wire.Batch {
	acks := wire.Batch{Numbers: make([]protocol.SequenceNumber, 0, len(batch.Numbers))}
	windowStart := t.windowStart
	for _, n := range batch.Numbers {
		isNew, err := t.MarkReceived(n)
		if err != nil {
			t.stats.Anomalies++
			t.logger.Infof("Dropping segment %s: %s", n, err)
			if t.tracer != nil && t.tracer.ProtocolAnomaly != nil {
				t.tracer.ProtocolAnomaly(n, logging.AnomalyBeyondReceiveWindow)
			}
			continue
		}
		if t.tracer != nil && t.tracer.ReceivedSegment != nil {
			t.tracer.ReceivedSegment(n, !isNew)
		}
		acks.Numbers = append(acks.Numbers, n)
	}
	t.stats.AcksSent += int64(len(acks.Numbers))
	if batch.Fin {
		if !t.finished && t.logger.Debug() {
			t.logger.Debugf("\treceived FIN, window start: %d", t.windowStart)
		}
		t.finished = true
		acks.Fin = true
	}
	if t.windowStart != windowStart && t.tracer != nil && t.tracer.UpdatedReceiveWindow != nil {
		t.tracer.UpdatedReceiveWindow(protocol.SequenceNumber(t.windowStart))
	}
	return acks
}

// IsReceived says if segment seq was received.
func (t *ReceivedSegmentTracker) IsReceived(seq protocol.SequenceNumber) bool {
	return seq >= 0 && int64(seq) < int64(len(t.received)) && t.received[seq]
}

// WindowStart is the lowest sequence number not received yet.
func (t *ReceivedSegmentTracker) WindowStart() protocol.SequenceNumber {
	return protocol.SequenceNumber(t.windowStart)
}

// Finished says if the FIN marker was received.
func (t *ReceivedSegmentTracker) Finished() bool { return t.finished }

// Stats returns a copy of the counters.
func (t *ReceivedSegmentTracker) Stats() ReceivedSegmentStats { return t.stats }
