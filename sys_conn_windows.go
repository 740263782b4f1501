//go:build windows

package srarq

import "syscall"

// SO_REUSEADDR allows binding to a port in use on Windows, so it's not set.
func setReuseAddr(_, _ string, _ syscall.RawConn) error { return nil }
