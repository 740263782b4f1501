package protocol

import (
	"strconv"
	"time"
)

// A SequenceNumber identifies a segment within a session.
// Data segments are numbered from 0, the terminal marker is FIN.
type SequenceNumber int64

// FIN is the reserved sequence number of the terminal marker.
const FIN SequenceNumber = -1

// IsFIN says if s is the terminal marker.
func (s SequenceNumber) IsFIN() bool { return s == FIN }

func (s SequenceNumber) String() string {
	if s.IsFIN() {
		return "FIN"
	}
	return strconv.FormatInt(int64(s), 10)
}

// WindowSize is a congestion window, counted in segments.
type WindowSize int64

const (
	// MinWindowSize is the smallest window a sender ever uses.
	MinWindowSize WindowSize = 1
	// MaxWindowSize is the upper bound of the congestion window.
	MaxWindowSize WindowSize = 1 << 16
	// InitialWindowSize is the window used before the first round completes.
	InitialWindowSize WindowSize = 4
)

const (
	// DefaultRTTMargin is added to every RTT sample to form the retransmission timeout.
	DefaultRTTMargin = 5 * time.Millisecond
	// DefaultHandshakeTimeout bounds connection establishment including the handshake.
	DefaultHandshakeTimeout = 10 * time.Second
	// DefaultIdleTimeout is how long a blocked Receive waits for data.
	DefaultIdleTimeout = 20 * time.Second
	// MaxMessageSize is the default size of a single transport read.
	MaxMessageSize = 1024
)
