package metrics

import (
	"context"
	"net"
	"strconv"
	"time"

	"github.com/srarq/srarq/logging"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultTracer returns a callback that creates a metrics SessionTracer.
// The callback can be set on the srarq.Config of every session.
func DefaultTracer() func(context.Context, logging.Perspective) *logging.SessionTracer {
	return DefaultTracerWithRegisterer(prometheus.DefaultRegisterer)
}

// DefaultTracerWithRegisterer returns a callback that creates a metrics SessionTracer
// using a given Prometheus registerer.
func DefaultTracerWithRegisterer(registerer prometheus.Registerer) func(context.Context, logging.Perspective) *logging.SessionTracer {
	return func(_ context.Context, p logging.Perspective) *logging.SessionTracer {
		return NewSessionTracerWithRegisterer(registerer, p)
	}
}

// NewSessionTracerWithRegisterer creates a new session tracer using a given Prometheus registerer.
func NewSessionTracerWithRegisterer(registerer prometheus.Registerer, p logging.Perspective) *logging.SessionTracer {
	register(registerer)

	role := p.String()
	var startTime time.Time
	return &logging.SessionTracer{
		StartedSession: func(local, _ net.Addr) {
			tags := getStringSlice()
			defer putStringSlice(tags)

			startTime = time.Now()

			*tags = append(*tags, role, getIPVersion(local))
			sessionsStarted.WithLabelValues(*tags...).Inc()
		},
		CompletedHandshake: func(rtt time.Duration) {
			handshakeRTT.Observe(rtt.Seconds())
		},
		ClosedSession: func(err error) {
			tags := getStringSlice()
			defer putStringSlice(tags)

			*tags = append(*tags, role, closeReason(err))
			sessionsClosed.WithLabelValues(*tags...).Inc()
			if !startTime.IsZero() {
				sessionDuration.WithLabelValues(role).Observe(time.Since(startTime).Seconds())
			}
		},
		SentSegment: func(seq logging.SequenceNumber, retransmission bool) {
			kind := "initial"
			switch {
			case seq.IsFIN():
				kind = "fin"
			case retransmission:
				kind = "retransmission"
			}
			segmentsSent.WithLabelValues(kind).Inc()
		},
		LostSegment: func(logging.SequenceNumber, time.Duration) {
			segmentsLost.Inc()
		},
		AcknowledgedSegment: func(_ logging.SequenceNumber, rtt time.Duration) {
			segmentsAcked.WithLabelValues("false").Inc()
			latestRTT.Observe(rtt.Seconds())
		},
		ReceivedDuplicateAck: func(logging.SequenceNumber) {
			segmentsAcked.WithLabelValues("true").Inc()
		},
		UpdatedCongestionWindow: func(size logging.WindowSize, state logging.CongestionState) {
			congestionWindow.WithLabelValues(state.String()).Observe(float64(size))
		},
		ProtocolAnomaly: func(_ logging.SequenceNumber, reason logging.AnomalyReason) {
			tags := getStringSlice()
			defer putStringSlice(tags)

			*tags = append(*tags, role, reason.String())
			protocolAnomalies.WithLabelValues(*tags...).Inc()
		},
		ReceivedSegment: func(_ logging.SequenceNumber, duplicate bool) {
			segmentsReceived.WithLabelValues(strconv.FormatBool(duplicate)).Inc()
		},
		DroppedTokens: func(tokens []string) {
			tokensDropped.WithLabelValues(role).Add(float64(len(tokens)))
		},
	}
}
