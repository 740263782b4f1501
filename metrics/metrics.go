package metrics

import (
	"errors"
	"io"
	"net"

	"github.com/prometheus/client_golang/prometheus"
)

const metricNamespace = "srarq"

func getIPVersion(addr net.Addr) string {
	tcpAddr, ok := addr.(*net.TCPAddr)
	if !ok {
		return ""
	}
	if tcpAddr.IP.To4() != nil {
		return "ipv4"
	}
	return "ipv6"
}

func closeReason(err error) string {
	if err == nil {
		return "completed"
	}
	if errors.Is(err, io.EOF) {
		return "eof"
	}
	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return "timeout"
	}
	return "error"
}

var (
	sessionsStarted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "sessions_started_total",
			Help:      "Sessions Started",
		},
		[]string{"role", "ip_version"},
	)
	sessionsClosed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "sessions_closed_total",
			Help:      "Sessions Closed",
		},
		[]string{"role", "reason"},
	)
	sessionDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricNamespace,
			Name:      "session_duration_seconds",
			Help:      "Duration of a Session",
			Buckets:   prometheus.ExponentialBuckets(1.0/256, 2, 20),
		},
		[]string{"role"},
	)
	handshakeRTT = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: metricNamespace,
			Name:      "handshake_rtt_seconds",
			Help:      "RTT measured by the Handshake",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 20),
		},
	)
	segmentsSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "segments_sent_total",
			Help:      "Segments Sent",
		},
		[]string{"kind"},
	)
	segmentsLost = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "segments_lost_total",
			Help:      "Segments declared lost after a retransmission timeout",
		},
	)
	segmentsAcked = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "segments_acknowledged_total",
			Help:      "Acknowledgments received by the Sender",
		},
		[]string{"duplicate"},
	)
	segmentsReceived = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "segments_received_total",
			Help:      "Segments received by the Receiver",
		},
		[]string{"duplicate"},
	)
	protocolAnomalies = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "protocol_anomalies_total",
			Help:      "Sequence numbers dropped because they didn't match the session state",
		},
		[]string{"role", "reason"},
	)
	tokensDropped = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "tokens_dropped_total",
			Help:      "Malformed tokens dropped by the decoder",
		},
		[]string{"role"},
	)
	congestionWindow = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricNamespace,
			Name:      "congestion_window_segments",
			Help:      "Congestion Window at the end of a round",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 17), // up to 65536
		},
		[]string{"state"},
	)
	latestRTT = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: metricNamespace,
			Name:      "latest_rtt_seconds",
			Help:      "RTT samples taken from acknowledgments",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 20),
		},
	)
)

func register(registerer prometheus.Registerer) {
	for _, c := range [...]prometheus.Collector{
		sessionsStarted,
		sessionsClosed,
		sessionDuration,
		handshakeRTT,
		segmentsSent,
		segmentsLost,
		segmentsAcked,
		segmentsReceived,
		protocolAnomalies,
		tokensDropped,
		congestionWindow,
		latestRTT,
	} {
		if err := registerer.Register(c); err != nil {
			if ok := errors.As(err, &prometheus.AlreadyRegisteredError{}); !ok {
				panic(err)
			}
		}
	}
}
