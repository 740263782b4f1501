package wire

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/srarq/srarq/internal/protocol"
)

const separator = ','

var finToken = []byte("FIN")

// A Batch is the content of one message: data segments on the way to the
// receiver, or acknowledgments on the way back.
// The FIN marker, if present, is always encoded after the numbered tokens.
type Batch struct {
	Numbers []protocol.SequenceNumber
	Fin     bool
}

// Empty says if the batch carries neither a number nor the FIN marker.
func (b *Batch) Empty() bool {
	return len(b.Numbers) == 0 && !b.Fin
}

// Len returns the length of the encoded batch.
func (b *Batch) Len() int {
	var l int
	for _, n := range b.Numbers {
		l += decimalLen(int64(n)) + 1
	}
	if b.Fin {
		l += len(finToken) + 1
	}
	return l
}

func (b *Batch) String() string {
	return string(AppendBatch(nil, b))
}

// AppendBatch appends the text encoding of the batch to b.
// Every token is terminated by a comma, e.g. "0,1,2," or "3,FIN,".
func AppendBatch(b []byte, batch *Batch) []byte {
	for _, n := range batch.Numbers {
		b = strconv.AppendInt(b, int64(n), 10)
		b = append(b, separator)
	}
	if batch.Fin {
		b = append(b, finToken...)
		b = append(b, separator)
	}
	return b
}

// ParseBatch decodes a complete batch.
// Empty tokens are skipped. Tokens that are neither FIN nor a non-negative
// decimal number are dropped, and reported through a *MalformedTokensError.
// The returned batch is valid even if an error is returned.
func ParseBatch(data []byte) (Batch, error) {
	var batch Batch
	var malformed []string
	for len(data) > 0 {
		var tok []byte
		if i := bytes.IndexByte(data, separator); i >= 0 {
			tok, data = data[:i], data[i+1:]
		} else {
			tok, data = data, nil
		}
		if len(tok) == 0 {
			continue
		}
		if bytes.Equal(tok, finToken) {
			batch.Fin = true
			continue
		}
		n, err := strconv.ParseInt(string(tok), 10, 64)
		if err != nil || n < 0 {
			malformed = append(malformed, string(tok))
			continue
		}
		batch.Numbers = append(batch.Numbers, protocol.SequenceNumber(n))
	}
	if len(malformed) > 0 {
		return batch, &MalformedTokensError{Tokens: malformed}
	}
	return batch, nil
}

// A MalformedTokensError lists tokens that were dropped while decoding a batch.
// It is not fatal for a session.
type MalformedTokensError struct {
	Tokens []string
}

func (e *MalformedTokensError) Error() string {
	quoted := make([]string, len(e.Tokens))
	for i, t := range e.Tokens {
		quoted[i] = strconv.Quote(t)
	}
	return fmt.Sprintf("dropped %d malformed token(s): %s", len(e.Tokens), strings.Join(quoted, ", "))
}

func decimalLen(n int64) int {
	l := 1
	if n < 0 {
		l++
		n = -n
	}
	for n >= 10 {
		n /= 10
		l++
	}
	return l
}
