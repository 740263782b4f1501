package srarq

import (
	"context"
	"net"
	"time"

	"github.com/srarq/srarq/internal/protocol"
	"github.com/srarq/srarq/logging"
)

// A SequenceNumber identifies a segment.
type SequenceNumber = protocol.SequenceNumber

// WindowSize is the size of the congestion window, counted in segments.
type WindowSize = protocol.WindowSize

// A Transport is a bidirectional byte stream between a sender and a receiver.
// It needn't preserve message boundaries.
type Transport interface {
	Send([]byte) error
	// Receive blocks until data is available.
	// The returned slice is only valid until the next call to Receive.
	Receive() ([]byte, error)
	// SetReadDeadline sets the deadline for future Receive calls.
	// A Receive that hits the deadline returns an error wrapping os.ErrDeadlineExceeded.
	SetReadDeadline(time.Time) error
	Close() error
	LocalAddr() net.Addr
	RemoteAddr() net.Addr
}

// Config contains all configuration data needed for a session.
// The zero value of every field means the default.
type Config struct {
	// InitialWindowSize is the congestion window used for the first round.
	// Defaults to 4 segments.
	InitialWindowSize WindowSize
	// MaxWindowSize is the maximum congestion window of the sender.
	// The receiver doesn't use it: it accepts any segment within 65536 of its window start,
	// so both ends needn't agree on this value.
	// Defaults to 65536 segments, which is also the upper limit.
	MaxWindowSize WindowSize
	// RTTMargin is added to the latest RTT sample to obtain the retransmission timeout.
	// Defaults to 5ms.
	RTTMargin time.Duration
	// HandshakeTimeout is the maximum duration of connection establishment, including the handshake.
	// Defaults to 10s.
	HandshakeTimeout time.Duration
	// MaxIdleTimeout is the maximum duration without receiving any data.
	// Defaults to 20s.
	MaxIdleTimeout time.Duration
	// MaxMessageSize is the size of the buffer used for a single read from a TCP connection.
	// Defaults to 1024 bytes.
	MaxMessageSize int
	// Tracer is called for every session, and may return nil.
	Tracer func(context.Context, logging.Perspective) *logging.SessionTracer
}

// SenderStats describes a sender session.
// Transmissions, Retransmissions and AcksReceived don't count the FIN marker.
type SenderStats struct {
	Segments        int
	AcksReceived    int64
	Transmissions   int64
	Retransmissions int64
	Losses          int64
	DuplicateAcks   int64
	Anomalies       int64
	DroppedTokens   int64
	// Goodput is AcksReceived divided by Transmissions.
	Goodput         float64
	FinalWindowSize WindowSize

	HandshakeRTT time.Duration
	MinRTT       time.Duration
	SmoothedRTT  time.Duration
	LatestRTT    time.Duration
	Duration     time.Duration
}

// ReceiverStats describes a receiver session.
type ReceiverStats struct {
	// SegmentsReceived counts distinct data segments.
	SegmentsReceived int64
	Duplicates       int64
	// AcksSent counts the acknowledgments for data segments, one per arrival.
	AcksSent      int64
	Anomalies     int64
	DroppedTokens int64
	Duration      time.Duration
}
