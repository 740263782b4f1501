package qlog

import (
	"time"

	"github.com/francoispqt/gojay"
)

type topLevel struct {
	trace trace
}

func (topLevel) IsNil() bool { return false }
func (l topLevel) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("qlog_version", "draft-02")
	enc.StringKeyOmitEmpty("title", "srarq qlog")
	enc.ArrayKey("traces", traces{l.trace})
}

type traces []trace

func (t traces) IsNil() bool { return t == nil }
func (t traces) MarshalJSONArray(enc *gojay.Encoder) {
	for _, tr := range t {
		enc.Object(tr)
	}
}

type commonFields struct {
	SessionID     string
	ReferenceTime time.Time
}

func (f commonFields) IsNil() bool { return false }
func (f commonFields) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKeyOmitEmpty("session_id", f.SessionID)
	enc.Float64Key("reference_time", float64(f.ReferenceTime.UnixNano())/1e6)
	enc.StringKey("time_format", "relative")
}

type trace struct {
	VantagePoint vantagePoint
	CommonFields commonFields
	EventFields  []string
}

func (trace) IsNil() bool { return false }
func (t trace) MarshalJSONObject(enc *gojay.Encoder) {
	enc.ObjectKey("vantage_point", t.VantagePoint)
	enc.ObjectKey("common_fields", t.CommonFields)
	enc.ArrayKey("event_fields", stringArray(t.EventFields))
	// events are streamed after the header
	enc.ArrayKey("events", events{})
}
