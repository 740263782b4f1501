package srarq

import (
	"fmt"
	"net"

	"github.com/srarq/srarq/logging"
)

// An IdleTimeoutError is returned when no data was received for Config.MaxIdleTimeout.
type IdleTimeoutError struct{}

var _ net.Error = &IdleTimeoutError{}

func (e *IdleTimeoutError) Timeout() bool   { return true }
func (e *IdleTimeoutError) Temporary() bool { return false }
func (e *IdleTimeoutError) Error() string   { return "timeout: no recent network activity" }

func (e *IdleTimeoutError) Is(target error) bool {
	_, ok := target.(*IdleTimeoutError)
	if ok {
		return true
	}
	return target == net.ErrClosed
}

// A HandshakeTimeoutError is returned when the handshake didn't complete within Config.HandshakeTimeout.
type HandshakeTimeoutError struct{}

var _ net.Error = &HandshakeTimeoutError{}

func (e *HandshakeTimeoutError) Timeout() bool   { return true }
func (e *HandshakeTimeoutError) Temporary() bool { return false }
func (e *HandshakeTimeoutError) Error() string   { return "timeout: handshake did not complete in time" }

func (e *HandshakeTimeoutError) Is(target error) bool {
	_, ok := target.(*HandshakeTimeoutError)
	if ok {
		return true
	}
	return target == net.ErrClosed
}

// A HandshakeError is returned when the peer sent an unexpected handshake message.
type HandshakeError struct {
	Expected string
	Received []byte
}

func (e *HandshakeError) Error() string {
	return fmt.Sprintf("handshake failed: expected %q, received %q", e.Expected, e.Received)
}

// A SessionError is returned when a session ended before the transfer completed.
type SessionError struct {
	Perspective logging.Perspective
	Err         error
}

func (e *SessionError) Error() string {
	return fmt.Sprintf("%s session failed: %s", e.Perspective, e.Err)
}

func (e *SessionError) Unwrap() error { return e.Err }
