//go:build gomock || generate

package mocklogging

import (
	"net"
	"time"

	"github.com/srarq/srarq/logging"
)

//go:generate sh -c "go run go.uber.org/mock/mockgen -typed -build_flags=\"-tags=gomock\" -package internal -destination internal/session_tracer.go github.com/srarq/srarq/internal/mocks/logging SessionTracer"
type SessionTracer interface {
	StartedSession(local, remote net.Addr)
	CompletedHandshake(rtt time.Duration)
	ClosedSession(error)
	SentSegment(seq logging.SequenceNumber, retransmission bool)
	LostSegment(seq logging.SequenceNumber, elapsed time.Duration)
	AcknowledgedSegment(seq logging.SequenceNumber, rtt time.Duration)
	ReceivedDuplicateAck(seq logging.SequenceNumber)
	UpdatedRTT(*logging.RTTStats)
	UpdatedCongestionWindow(logging.WindowSize, logging.CongestionState)
	ProtocolAnomaly(logging.SequenceNumber, logging.AnomalyReason)
	ReceivedSegment(seq logging.SequenceNumber, duplicate bool)
	UpdatedReceiveWindow(windowStart logging.SequenceNumber)
	DroppedTokens(tokens []string)
	// Close is called when the session is closed.
	Close()
	Debug(name, msg string)
}
