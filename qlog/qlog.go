package qlog

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"net"
	"time"

	"github.com/srarq/srarq/logging"

	"github.com/francoispqt/gojay"
)

const eventChanSize = 50

type sessionTracer struct {
	w             io.WriteCloser
	perspective   logging.Perspective
	sessionID     string
	referenceTime time.Time

	suffix     []byte
	events     chan event
	encodeErr  error
	runStopped chan struct{}
}

// NewSessionTracer creates a new tracer to record a qlog for a session.
// The trace is written to w, which is closed when the session is closed.
func NewSessionTracer(w io.WriteCloser, p logging.Perspective, sessionID string) *logging.SessionTracer {
	t := &sessionTracer{
		w:             w,
		perspective:   p,
		sessionID:     sessionID,
		runStopped:    make(chan struct{}),
		events:        make(chan event, eventChanSize),
		referenceTime: time.Now(),
	}
	go t.run()
	return &logging.SessionTracer{
		StartedSession: t.StartedSession,
		CompletedHandshake: func(rtt time.Duration) {
			t.recordEvent(time.Now(), &eventHandshakeCompleted{RTT: rtt})
		},
		ClosedSession: func(err error) {
			t.recordEvent(time.Now(), &eventSessionClosed{Err: err})
		},
		SentSegment: func(seq logging.SequenceNumber, retransmission bool) {
			t.recordEvent(time.Now(), &eventSegmentSent{SequenceNumber: seq, Retransmission: retransmission})
		},
		LostSegment: func(seq logging.SequenceNumber, elapsed time.Duration) {
			t.recordEvent(time.Now(), &eventSegmentLost{SequenceNumber: seq, Elapsed: elapsed})
		},
		AcknowledgedSegment: func(seq logging.SequenceNumber, rtt time.Duration) {
			t.recordEvent(time.Now(), &eventSegmentAcknowledged{SequenceNumber: seq, RTT: rtt})
		},
		ReceivedDuplicateAck: func(seq logging.SequenceNumber) {
			t.recordEvent(time.Now(), &eventSegmentAcknowledged{SequenceNumber: seq, Duplicate: true})
		},
		UpdatedRTT: t.UpdatedRTT,
		UpdatedCongestionWindow: func(size logging.WindowSize, state logging.CongestionState) {
			t.recordEvent(time.Now(), &eventCongestionWindowUpdated{Size: size, State: state})
		},
		ProtocolAnomaly: func(seq logging.SequenceNumber, reason logging.AnomalyReason) {
			t.recordEvent(time.Now(), &eventProtocolAnomaly{SequenceNumber: seq, Reason: reason})
		},
		ReceivedSegment: func(seq logging.SequenceNumber, duplicate bool) {
			t.recordEvent(time.Now(), &eventSegmentReceived{SequenceNumber: seq, Duplicate: duplicate})
		},
		UpdatedReceiveWindow: func(windowStart logging.SequenceNumber) {
			t.recordEvent(time.Now(), &eventReceiveWindowUpdated{WindowStart: windowStart})
		},
		DroppedTokens: func(tokens []string) {
			t.recordEvent(time.Now(), &eventTokensDropped{Tokens: tokens})
		},
		Close: t.Close,
		Debug: func(name, msg string) {
			t.recordEvent(time.Now(), &eventGeneric{name: name, msg: msg})
		},
	}
}

func (t *sessionTracer) run() {
	defer close(t.runStopped)
	buf := &bytes.Buffer{}
	enc := gojay.NewEncoder(buf)
	tl := &topLevel{
		trace: trace{
			VantagePoint: vantagePoint{Type: t.perspective},
			CommonFields: commonFields{
				SessionID:     t.sessionID,
				ReferenceTime: t.referenceTime,
			},
			EventFields: eventFields[:],
		},
	}
	if err := enc.EncodeObject(tl); err != nil {
		panic(fmt.Sprintf("qlog encoding into a bytes.Buffer failed: %s", err))
	}
	data := buf.Bytes()
	// cut the header right after the opening bracket of the event list
	t.suffix = data[buf.Len()-4:]
	if _, err := t.w.Write(data[:buf.Len()-4]); err != nil {
		t.encodeErr = err
	}
	enc = gojay.NewEncoder(t.w)
	isFirst := true
	for ev := range t.events {
		if t.encodeErr != nil { // if encoding failed, just continue draining the event channel
			continue
		}
		if !isFirst {
			if _, err := t.w.Write([]byte(",")); err != nil {
				t.encodeErr = err
				continue
			}
		}
		if err := enc.EncodeArray(ev); err != nil {
			t.encodeErr = err
		}
		isFirst = false
	}
}

func (t *sessionTracer) Close() {
	if err := t.export(); err != nil {
		log.Printf("exporting qlog failed: %s\n", err)
	}
}

// export writes a qlog.
func (t *sessionTracer) export() error {
	close(t.events)
	<-t.runStopped
	if t.encodeErr != nil {
		return t.encodeErr
	}
	if _, err := t.w.Write(t.suffix); err != nil {
		return err
	}
	return t.w.Close()
}

func (t *sessionTracer) recordEvent(eventTime time.Time, details eventDetails) {
	t.events <- event{
		RelativeTime: eventTime.Sub(t.referenceTime),
		eventDetails: details,
	}
}

func (t *sessionTracer) StartedSession(local, remote net.Addr) {
	// ignore this event if we're not dealing with TCP addresses here
	localAddr, ok := local.(*net.TCPAddr)
	if !ok {
		return
	}
	remoteAddr, ok := remote.(*net.TCPAddr)
	if !ok {
		return
	}
	t.recordEvent(time.Now(), &eventSessionStarted{Local: localAddr, Remote: remoteAddr})
}

func (t *sessionTracer) UpdatedRTT(rttStats *logging.RTTStats) {
	t.recordEvent(time.Now(), &eventMetricsUpdated{
		MinRTT:      rttStats.MinRTT(),
		SmoothedRTT: rttStats.SmoothedRTT(),
		LatestRTT:   rttStats.LatestRTT(),
		RTTVariance: rttStats.MeanDeviation(),
	})
}
