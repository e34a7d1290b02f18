// Package tokens estimates token counts for prompt budgeting.
package tokens

import (
	"github.com/pkoukk/tiktoken-go"
)

// charsPerToken approximates BPE density for mixed code and prose when no
// encoder is available.
const charsPerToken = 3.5

// Counter counts tokens using a tiktoken encoding, falling back to a
// character heuristic when the encoding cannot be loaded.
type Counter struct {
	enc *tiktoken.Tiktoken
}

// NewCounter builds a Counter for the given encoding name. An empty name
// selects cl100k_base. Encoder load failures are not fatal; the counter
// degrades to the character heuristic.
func NewCounter(encoding string) *Counter {
	if encoding == "" {
		encoding = "cl100k_base"
	}
	enc, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return &Counter{}
	}
	return &Counter{enc: enc}
}

// Count returns the token count of text.
func (c *Counter) Count(text string) int {
	if c.enc == nil {
		return Estimate(text)
	}
	return len(c.enc.Encode(text, nil, nil))
}

// Exact reports whether Count uses a real encoder rather than the
// character heuristic.
func (c *Counter) Exact() bool {
	return c.enc != nil
}

// Estimate approximates the token count of text from its length.
func Estimate(text string) int {
	return int(float64(len(text)) / charsPerToken)
}
