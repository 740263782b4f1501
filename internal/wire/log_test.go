package wire

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/srarq/srarq/internal/protocol"
	"github.com/srarq/srarq/internal/utils"

	"github.com/stretchr/testify/require"
)

func setupLogTest(t *testing.T) (utils.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := utils.DefaultLogger
	logger.SetLogLevel(utils.LogLevelDebug)
	log.SetOutput(buf)
	t.Cleanup(func() {
		log.SetOutput(os.Stdout)
		logger.SetLogLevel(utils.LogLevelNothing)
	})
	return logger, buf
}

func TestLogBatchDisabled(t *testing.T) {
	logger, buf := setupLogTest(t)
	logger.SetLogLevel(utils.LogLevelInfo)
	LogBatch(logger, &Batch{Numbers: []protocol.SequenceNumber{1}}, true)
	require.Zero(t, buf.Len())
}

func TestLogBatchSentAndReceived(t *testing.T) {
	logger, buf := setupLogTest(t)
	LogBatch(logger, &Batch{Numbers: []protocol.SequenceNumber{0, 1}}, true)
	require.Contains(t, buf.String(), "\t-> Batch{Numbers: [0 1], Fin: false}\n")

	buf.Reset()
	LogBatch(logger, &Batch{Numbers: []protocol.SequenceNumber{3}, Fin: true}, false)
	require.Contains(t, buf.String(), "\t<- Batch{Numbers: [3], Fin: true}\n")
}

func TestLogBatchTruncatesLongBatches(t *testing.T) {
	logger, buf := setupLogTest(t)
	numbers := make([]protocol.SequenceNumber, maxLoggedTokens+10)
	for i := range numbers {
		numbers[i] = protocol.SequenceNumber(i)
	}
	LogBatch(logger, &Batch{Numbers: numbers}, true)
	require.Contains(t, buf.String(), "(10 more), Fin: false}\n")
}
