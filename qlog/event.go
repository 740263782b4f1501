package qlog

import (
	"net"
	"time"

	"github.com/srarq/srarq/logging"

	"github.com/francoispqt/gojay"
)

var eventFields = [4]string{"relative_time", "category", "event", "data"}

func milliseconds(dur time.Duration) float64 { return float64(dur.Nanoseconds()) / 1e6 }

type events []event

func (e events) IsNil() bool { return false }
func (e events) MarshalJSONArray(enc *gojay.Encoder) {
	for _, ev := range e {
		enc.Array(ev)
	}
}

type eventDetails interface {
	Category() category
	Name() string
	gojay.MarshalerJSONObject
}

type event struct {
	RelativeTime time.Duration
	eventDetails
}

var _ gojay.MarshalerJSONArray = event{}

func (e event) IsNil() bool { return false }
func (e event) MarshalJSONArray(enc *gojay.Encoder) {
	enc.Float64(milliseconds(e.RelativeTime))
	enc.String(e.Category().String())
	enc.String(e.Name())
	enc.Object(e.eventDetails)
}

type eventSessionStarted struct {
	Local, Remote *net.TCPAddr
}

var _ eventDetails = &eventSessionStarted{}

func (e eventSessionStarted) Category() category { return categoryTransport }
func (e eventSessionStarted) Name() string       { return "session_started" }
func (e eventSessionStarted) IsNil() bool        { return false }

func (e eventSessionStarted) MarshalJSONObject(enc *gojay.Encoder) {
	if e.Local.IP.To4() == nil {
		enc.StringKey("ip_version", "ipv6")
	} else {
		enc.StringKey("ip_version", "ipv4")
	}
	enc.StringKey("src_ip", e.Local.IP.String())
	enc.IntKey("src_port", e.Local.Port)
	enc.StringKey("dst_ip", e.Remote.IP.String())
	enc.IntKey("dst_port", e.Remote.Port)
}

type eventHandshakeCompleted struct {
	RTT time.Duration
}

func (e eventHandshakeCompleted) Category() category { return categoryTransport }
func (e eventHandshakeCompleted) Name() string       { return "handshake_completed" }
func (e eventHandshakeCompleted) IsNil() bool        { return false }

func (e eventHandshakeCompleted) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Float64Key("rtt", milliseconds(e.RTT))
}

type eventSessionClosed struct {
	Err error
}

func (e eventSessionClosed) Category() category { return categoryTransport }
func (e eventSessionClosed) Name() string       { return "session_closed" }
func (e eventSessionClosed) IsNil() bool        { return false }

func (e eventSessionClosed) MarshalJSONObject(enc *gojay.Encoder) {
	if e.Err == nil {
		enc.StringKey("trigger", "completed")
		return
	}
	enc.StringKey("trigger", "error")
	enc.StringKey("error", e.Err.Error())
}

type eventSegmentSent struct {
	SequenceNumber logging.SequenceNumber
	Retransmission bool
}

func (e eventSegmentSent) Category() category { return categoryTransport }
func (e eventSegmentSent) Name() string       { return "segment_sent" }
func (e eventSegmentSent) IsNil() bool        { return false }

func (e eventSegmentSent) MarshalJSONObject(enc *gojay.Encoder) {
	marshalSequenceNumber(enc, e.SequenceNumber)
	enc.BoolKeyOmitEmpty("retransmission", e.Retransmission)
}

type eventSegmentReceived struct {
	SequenceNumber logging.SequenceNumber
	Duplicate      bool
}

func (e eventSegmentReceived) Category() category { return categoryTransport }
func (e eventSegmentReceived) Name() string       { return "segment_received" }
func (e eventSegmentReceived) IsNil() bool        { return false }

func (e eventSegmentReceived) MarshalJSONObject(enc *gojay.Encoder) {
	marshalSequenceNumber(enc, e.SequenceNumber)
	enc.BoolKeyOmitEmpty("duplicate", e.Duplicate)
}

type eventTokensDropped struct {
	Tokens []string
}

func (e eventTokensDropped) Category() category { return categoryTransport }
func (e eventTokensDropped) Name() string       { return "tokens_dropped" }
func (e eventTokensDropped) IsNil() bool        { return false }

func (e eventTokensDropped) MarshalJSONObject(enc *gojay.Encoder) {
	enc.ArrayKey("tokens", stringArray(e.Tokens))
}

type eventProtocolAnomaly struct {
	SequenceNumber logging.SequenceNumber
	Reason         logging.AnomalyReason
}

func (e eventProtocolAnomaly) Category() category { return categoryTransport }
func (e eventProtocolAnomaly) Name() string       { return "protocol_anomaly" }
func (e eventProtocolAnomaly) IsNil() bool        { return false }

func (e eventProtocolAnomaly) MarshalJSONObject(enc *gojay.Encoder) {
	marshalSequenceNumber(enc, e.SequenceNumber)
	enc.StringKey("reason", e.Reason.String())
}

type eventSegmentLost struct {
	SequenceNumber logging.SequenceNumber
	Elapsed        time.Duration
}

func (e eventSegmentLost) Category() category { return categoryRecovery }
func (e eventSegmentLost) Name() string       { return "segment_lost" }
func (e eventSegmentLost) IsNil() bool        { return false }

func (e eventSegmentLost) MarshalJSONObject(enc *gojay.Encoder) {
	marshalSequenceNumber(enc, e.SequenceNumber)
	enc.Float64Key("elapsed", milliseconds(e.Elapsed))
	enc.StringKey("trigger", "retransmission_timeout")
}

type eventSegmentAcknowledged struct {
	SequenceNumber logging.SequenceNumber
	RTT            time.Duration
	Duplicate      bool
}

func (e eventSegmentAcknowledged) Category() category { return categoryRecovery }
func (e eventSegmentAcknowledged) Name() string       { return "segment_acknowledged" }
func (e eventSegmentAcknowledged) IsNil() bool        { return false }

func (e eventSegmentAcknowledged) MarshalJSONObject(enc *gojay.Encoder) {
	marshalSequenceNumber(enc, e.SequenceNumber)
	if e.Duplicate {
		enc.BoolKey("duplicate", true)
		return
	}
	enc.Float64Key("rtt", milliseconds(e.RTT))
}

type eventMetricsUpdated struct {
	MinRTT      time.Duration
	SmoothedRTT time.Duration
	LatestRTT   time.Duration
	RTTVariance time.Duration
}

func (e eventMetricsUpdated) Category() category { return categoryRecovery }
func (e eventMetricsUpdated) Name() string       { return "metrics_updated" }
func (e eventMetricsUpdated) IsNil() bool        { return false }

func (e eventMetricsUpdated) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Float64Key("min_rtt", milliseconds(e.MinRTT))
	enc.Float64Key("smoothed_rtt", milliseconds(e.SmoothedRTT))
	enc.Float64Key("latest_rtt", milliseconds(e.LatestRTT))
	enc.Float64Key("rtt_variance", milliseconds(e.RTTVariance))
}

type eventCongestionWindowUpdated struct {
	Size  logging.WindowSize
	State logging.CongestionState
}

func (e eventCongestionWindowUpdated) Category() category { return categoryRecovery }
func (e eventCongestionWindowUpdated) Name() string       { return "congestion_window_updated" }
func (e eventCongestionWindowUpdated) IsNil() bool        { return false }

func (e eventCongestionWindowUpdated) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Int64Key("window_size", int64(e.Size))
	enc.StringKey("state", e.State.String())
}

type eventReceiveWindowUpdated struct {
	WindowStart logging.SequenceNumber
}

func (e eventReceiveWindowUpdated) Category() category { return categoryRecovery }
func (e eventReceiveWindowUpdated) Name() string       { return "receive_window_updated" }
func (e eventReceiveWindowUpdated) IsNil() bool        { return false }

func (e eventReceiveWindowUpdated) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Int64Key("window_start", int64(e.WindowStart))
}

type eventGeneric struct {
	name string
	msg  string
}

func (e eventGeneric) Category() category { return categoryDebug }
func (e eventGeneric) Name() string       { return e.name }
func (e eventGeneric) IsNil() bool        { return false }

func (e eventGeneric) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("details", e.msg)
}
