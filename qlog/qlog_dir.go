package qlog

import (
	"bufio"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/srarq/srarq/internal/utils"
	"github.com/srarq/srarq/logging"
)

// QlogDir contains the value of the QLOGDIR environment variable.
// If it is the empty string ("") no qlog output is written.
var QlogDir string

func init() {
	QlogDir = os.Getenv("QLOGDIR")
}

// DefaultTracer creates a qlog file in the qlog directory specified by the QLOGDIR environment variable.
// File names are <session id>_<perspective>.qlog.
// Returns nil if QLOGDIR is not set.
func DefaultTracer(ctx context.Context, p logging.Perspective) *logging.SessionTracer {
	return DirTracer(QlogDir)(ctx, p)
}

// DirTracer returns a callback that creates a qlog file in dir for every session.
// The callback returns nil if dir is the empty string.
func DirTracer(dir string) func(context.Context, logging.Perspective) *logging.SessionTracer {
	return func(_ context.Context, p logging.Perspective) *logging.SessionTracer {
		if dir == "" {
			return nil
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Printf("Failed to create qlog dir %s: %s", dir, err.Error())
			return nil
		}
		sessionID := newSessionID()
		path := filepath.Join(dir, fmt.Sprintf("%s_%s.qlog", sessionID, p))
		f, err := os.Create(path)
		if err != nil {
			log.Printf("Failed to create qlog file %s: %s", path, err.Error())
			return nil
		}
		return NewSessionTracer(utils.NewBufferedWriteCloser(bufio.NewWriter(f), f), p, sessionID)
	}
}

func newSessionID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("failed to generate a session ID: %s", err))
	}
	return hex.EncodeToString(b)
}
