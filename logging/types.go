package logging

import (
	"github.com/srarq/srarq/internal/protocol"
	"github.com/srarq/srarq/internal/utils"
)

type (
	// A SequenceNumber is the sequence number of a segment, or FIN
	SequenceNumber = protocol.SequenceNumber
	// A WindowSize is the size of the congestion window, in segments
	WindowSize = protocol.WindowSize
	// The Perspective is the role of an endpoint in a session
	Perspective = protocol.Perspective
	// The RTTStats contain statistics used by the retransmission timer
	RTTStats = utils.RTTStats
)

const (
	// PerspectiveSender is used for the sending endpoint
	PerspectiveSender Perspective = protocol.PerspectiveSender
	// PerspectiveReceiver is used for the receiving endpoint
	PerspectiveReceiver Perspective = protocol.PerspectiveReceiver
)

// FIN is the terminal marker
const FIN = protocol.FIN

// The CongestionState is the branch taken by the AIMD controller at the end of a round.
type CongestionState uint8

const (
	// CongestionStateSlowStart is the slow start phase: no loss was ever observed
	CongestionStateSlowStart CongestionState = iota
	// CongestionStateAdditiveIncrease is used after the first loss, for rounds without loss
	CongestionStateAdditiveIncrease
	// CongestionStateMultiplicativeDecrease is used for rounds with loss
	CongestionStateMultiplicativeDecrease
	// CongestionStateClamped is used when the window is capped at its maximum
	CongestionStateClamped
)

func (s CongestionState) String() string {
	switch s {
	case CongestionStateSlowStart:
		return "slow_start"
	case CongestionStateAdditiveIncrease:
		return "additive_increase"
	case CongestionStateMultiplicativeDecrease:
		return "multiplicative_decrease"
	case CongestionStateClamped:
		return "clamped"
	default:
		return "unknown congestion state"
	}
}

// An AnomalyReason explains why an incoming sequence number was discarded.
type AnomalyReason uint8

const (
	// AnomalyAckOutOfRange is used for acknowledgments of segments that don't exist
	AnomalyAckOutOfRange AnomalyReason = iota
	// AnomalyAckSequenceMismatch is used when the segment at the acknowledged index carries another sequence number
	AnomalyAckSequenceMismatch
	// AnomalyAckUnsent is used for acknowledgments of segments that were never sent
	AnomalyAckUnsent
	// AnomalyBeyondReceiveWindow is used for segments too far ahead of the receive window
	AnomalyBeyondReceiveWindow
)

func (r AnomalyReason) String() string {
	switch r {
	case AnomalyAckOutOfRange:
		return "ack_out_of_range"
	case AnomalyAckSequenceMismatch:
		return "ack_sequence_mismatch"
	case AnomalyAckUnsent:
		return "ack_unsent"
	case AnomalyBeyondReceiveWindow:
		return "beyond_receive_window"
	default:
		return "unknown anomaly"
	}
}
