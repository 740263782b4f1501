package ackhandler

import (
	"time"

	"github.com/srarq/srarq/internal/protocol"
)

// A segment is the sender's state of a single sequence number.
type segment struct {
	Number   protocol.SequenceNumber
	SendTime time.Time

	// sent is reset when the segment is declared lost
	sent  bool
	acked bool
	// transmissions counts all attempts, including retransmissions
	transmissions int
}

func (s *segment) pending() bool {
	return s.sent && !s.acked
}
