package wire

import (
	"bytes"
)

// maxTokenLen is the length of the longest valid token, math.MaxInt64 in decimal.
const maxTokenLen = 19

// The Parser decodes batches from a byte stream.
// A read from a stream transport can end in the middle of a token.
// The Parser holds back the unterminated tail and prepends it to the next read.
type Parser struct {
	pending []byte
}

// NewParser creates a new parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes all complete tokens received so far.
// As for ParseBatch, a *MalformedTokensError is not fatal.
// An unterminated tail that can't be a valid token is dropped and reported as malformed.
func (p *Parser) Parse(data []byte) (Batch, error) {
	p.pending = append(p.pending, data...)
	end := bytes.LastIndexByte(p.pending, separator) + 1

	batch, err := ParseBatch(p.pending[:end])
	tail := p.pending[end:]
	if len(tail) > maxTokenLen {
		merr, ok := err.(*MalformedTokensError)
		if !ok {
			merr = &MalformedTokensError{}
			err = merr
		}
		merr.Tokens = append(merr.Tokens, string(tail))
		tail = tail[:0]
	}
	n := copy(p.pending, tail)
	p.pending = p.pending[:n]
	return batch, err
}

// Buffered returns the number of bytes held back, waiting for a separator.
func (p *Parser) Buffered() int {
	return len(p.pending)
}
