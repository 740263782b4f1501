package srarq

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/srarq/srarq/internal/utils"
	"github.com/srarq/srarq/internal/wire"
	"github.com/srarq/srarq/logging"
)

// readHandshakeMessage reads from t until the expected message was received.
// The peer doesn't send anything else before the handshake completed,
// so any other content fails the handshake.
func readHandshakeMessage(t Transport, expected string) error {
	received := make([]byte, 0, len(expected))
	for len(received) < len(expected) {
		data, err := t.Receive()
		if err != nil {
			if isDeadlineExceeded(err) {
				return &HandshakeTimeoutError{}
			}
			return err
		}
		received = append(received, data...)
		if !strings.HasPrefix(expected, string(received)) {
			return &HandshakeError{Expected: expected, Received: received}
		}
	}
	return nil
}

func isDeadlineExceeded(err error) bool {
	return errors.Is(err, os.ErrDeadlineExceeded)
}

// decodeBatch feeds data to the parser.
// Malformed tokens are logged and traced, and the number of dropped tokens is returned.
func decodeBatch(p *wire.Parser, data []byte, tracer *logging.SessionTracer, logger utils.Logger) (wire.Batch, int) {
	batch, err := p.Parse(data)
	if err == nil {
		return batch, 0
	}
	var merr *wire.MalformedTokensError
	if !errors.As(err, &merr) {
		logger.Errorf("Decoding batch failed: %s", err)
		return batch, 0
	}
	logger.Infof("Dropping %d malformed tokens: %q", len(merr.Tokens), merr.Tokens)
	if tracer != nil && tracer.DroppedTokens != nil {
		tracer.DroppedTokens(merr.Tokens)
	}
	return batch, len(merr.Tokens)
}

func closeTracer(tracer *logging.SessionTracer, err error) {
	if tracer == nil {
		return
	}
	if tracer.ClosedSession != nil {
		tracer.ClosedSession(err)
	}
	if tracer.Close != nil {
		tracer.Close()
	}
}

func handshakeDeadline(conf *Config) time.Time {
	return time.Now().Add(conf.HandshakeTimeout)
}
