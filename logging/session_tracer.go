package logging

import (
	"net"
	"time"
)

// A SessionTracer records events of a single session.
// Every field is optional.
type SessionTracer struct {
	StartedSession          func(local, remote net.Addr)
	CompletedHandshake      func(rtt time.Duration)
	ClosedSession           func(error)
	SentSegment             func(seq SequenceNumber, retransmission bool)
	LostSegment             func(seq SequenceNumber, elapsed time.Duration)
	AcknowledgedSegment     func(seq SequenceNumber, rtt time.Duration)
	ReceivedDuplicateAck    func(seq SequenceNumber)
	UpdatedRTT              func(*RTTStats)
	UpdatedCongestionWindow func(WindowSize, CongestionState)
	ProtocolAnomaly         func(SequenceNumber, AnomalyReason)
	ReceivedSegment         func(seq SequenceNumber, duplicate bool)
	UpdatedReceiveWindow    func(windowStart SequenceNumber)
	DroppedTokens           func(tokens []string)
	// Close is called when the session is closed.
	Close func()
	Debug func(name, msg string)
}

// NewMultiplexedSessionTracer creates a session tracer that multiplexes events to multiple tracers.
func NewMultiplexedSessionTracer(tracers ...*SessionTracer) *SessionTracer {
	if len(tracers) == 0 {
		return nil
	}
	if len(tracers) == 1 {
		return tracers[0]
	}
	return &SessionTracer{
		StartedSession: func(local, remote net.Addr) {
			for _, t := range tracers {
				if t.StartedSession != nil {
					t.StartedSession(local, remote)
				}
			}
		},
		CompletedHandshake: func(rtt time.Duration) {
			for _, t := range tracers {
				if t.CompletedHandshake != nil {
					t.CompletedHandshake(rtt)
				}
			}
		},
		ClosedSession: func(e error) {
			for _, t := range tracers {
				if t.ClosedSession != nil {
					t.ClosedSession(e)
				}
			}
		},
		SentSegment: func(seq SequenceNumber, retransmission bool) {
			for _, t := range tracers {
				if t.SentSegment != nil {
					t.SentSegment(seq, retransmission)
				}
			}
		},
		LostSegment: func(seq SequenceNumber, elapsed time.Duration) {
			for _, t := range tracers {
				if t.LostSegment != nil {
					t.LostSegment(seq, elapsed)
				}
			}
		},
		AcknowledgedSegment: func(seq SequenceNumber, rtt time.Duration) {
			for _, t := range tracers {
				if t.AcknowledgedSegment != nil {
					t.AcknowledgedSegment(seq, rtt)
				}
			}
		},
		ReceivedDuplicateAck: func(seq SequenceNumber) {
			for _, t := range tracers {
				if t.ReceivedDuplicateAck != nil {
					t.ReceivedDuplicateAck(seq)
				}
			}
		},
		UpdatedRTT: func(rttStats *RTTStats) {
			for _, t := range tracers {
				if t.UpdatedRTT != nil {
					t.UpdatedRTT(rttStats)
				}
			}
		},
		UpdatedCongestionWindow: func(size WindowSize, state CongestionState) {
			for _, t := range tracers {
				if t.UpdatedCongestionWindow != nil {
					t.UpdatedCongestionWindow(size, state)
				}
			}
		},
		ProtocolAnomaly: func(seq SequenceNumber, reason AnomalyReason) {
			for _, t := range tracers {
				if t.ProtocolAnomaly != nil {
					t.ProtocolAnomaly(seq, reason)
				}
			}
		},
		ReceivedSegment: func(seq SequenceNumber, duplicate bool) {
			for _, t := range tracers {
				if t.ReceivedSegment != nil {
					t.ReceivedSegment(seq, duplicate)
				}
			}
		},
		UpdatedReceiveWindow: func(windowStart SequenceNumber) {
			for _, t := range tracers {
				if t.UpdatedReceiveWindow != nil {
					t.UpdatedReceiveWindow(windowStart)
				}
			}
		},
		DroppedTokens: func(tokens []string) {
			for _, t := range tracers {
				if t.DroppedTokens != nil {
					t.DroppedTokens(tokens)
				}
			}
		},
		Close: func() {
			for _, t := range tracers {
				if t.Close != nil {
					t.Close()
				}
			}
		},
		Debug: func(name, msg string) {
			for _, t := range tracers {
				if t.Debug != nil {
					t.Debug(name, msg)
				}
			}
		},
	}
}
