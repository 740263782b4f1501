//go:build !gomock && !generate

package mocklogging

import (
	"net"
	"time"

	"github.com/srarq/srarq/internal/mocks/logging/internal"
	"github.com/srarq/srarq/logging"

	"go.uber.org/mock/gomock"
)

type MockSessionTracer = internal.MockSessionTracer

func NewMockSessionTracer(ctrl *gomock.Controller) (*logging.SessionTracer, *MockSessionTracer) {
	t := internal.NewMockSessionTracer(ctrl)
	return &logging.SessionTracer{
		StartedSession: func(local, remote net.Addr) {
			t.StartedSession(local, remote)
		},
		CompletedHandshake: func(rtt time.Duration) {
			t.CompletedHandshake(rtt)
		},
		ClosedSession: func(e error) {
			t.ClosedSession(e)
		},
		SentSegment: func(seq logging.SequenceNumber, retransmission bool) {
			t.SentSegment(seq, retransmission)
		},
		LostSegment: func(seq logging.SequenceNumber, elapsed time.Duration) {
			t.LostSegment(seq, elapsed)
		},
		AcknowledgedSegment: func(seq logging.SequenceNumber, rtt time.Duration) {
			t.AcknowledgedSegment(seq, rtt)
		},
		ReceivedDuplicateAck: func(seq logging.SequenceNumber) {
			t.ReceivedDuplicateAck(seq)
		},
		UpdatedRTT: func(rttStats *logging.RTTStats) {
			t.UpdatedRTT(rttStats)
		},
		UpdatedCongestionWindow: func(size logging.WindowSize, state logging.CongestionState) {
			t.UpdatedCongestionWindow(size, state)
		},
		ProtocolAnomaly: func(seq logging.SequenceNumber, reason logging.AnomalyReason) {
			t.ProtocolAnomaly(seq, reason)
		},
		ReceivedSegment: func(seq logging.SequenceNumber, duplicate bool) {
			t.ReceivedSegment(seq, duplicate)
		},
		UpdatedReceiveWindow: func(windowStart logging.SequenceNumber) {
			t.UpdatedReceiveWindow(windowStart)
		},
		DroppedTokens: func(tokens []string) {
			t.DroppedTokens(tokens)
		},
		Close: func() {
			t.Close()
		},
		Debug: func(name, msg string) {
			t.Debug(name, msg)
		},
	}, t
}
