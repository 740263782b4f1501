package wire

import (
	"github.com/srarq/srarq/internal/utils"
)

// maxLoggedTokens limits the number of sequence numbers printed for a batch
const maxLoggedTokens = 32

// LogBatch logs a batch, either sent or received
func LogBatch(logger utils.Logger, batch *Batch, sent bool) {
	if !logger.Debug() {
		return
	}
	dir := "<-"
	if sent {
		dir = "->"
	}
	if len(batch.Numbers) <= maxLoggedTokens {
		logger.Debugf("\t%s Batch{Numbers: %v, Fin: %t}", dir, batch.Numbers, batch.Fin)
		return
	}
	logger.Debugf("\t%s Batch{Numbers: %v ... (%d more), Fin: %t}", dir, batch.Numbers[:maxLoggedTokens], len(batch.Numbers)-maxLoggedTokens, batch.Fin)
}
