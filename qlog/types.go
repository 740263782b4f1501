package qlog

import (
	"github.com/srarq/srarq/logging"

	"github.com/francoispqt/gojay"
)

type category uint8

const (
	categoryTransport category = iota
	categoryRecovery
	categoryDebug
)

func (c category) String() string {
	switch c {
	case categoryTransport:
		return "transport"
	case categoryRecovery:
		return "recovery"
	case categoryDebug:
		return "debug"
	default:
		return "unknown category"
	}
}

type vantagePoint struct {
	Name string
	Type logging.Perspective
}

func (p vantagePoint) IsNil() bool { return false }
func (p vantagePoint) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKeyOmitEmpty("name", p.Name)
	enc.StringKey("type", p.Type.String())
}

// marshalSequenceNumber writes either the number or the FIN flag
func marshalSequenceNumber(enc *gojay.Encoder, seq logging.SequenceNumber) {
	if seq.IsFIN() {
		enc.BoolKey("fin", true)
		return
	}
	enc.Int64Key("seq", int64(seq))
}

type stringArray []string

func (a stringArray) IsNil() bool { return a == nil }
func (a stringArray) MarshalJSONArray(enc *gojay.Encoder) {
	for _, s := range a {
		enc.String(s)
	}
}
