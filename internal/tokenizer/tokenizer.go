// Package tokenizer reads invariant-culture number lists such as "1,2",
// "1 2" or "1, 2.5, -3e2, 4" used by the geometry parsers.
package tokenizer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrEndOfInput is returned by Next when no tokens remain.
var ErrEndOfInput = errors.New("tokenizer: end of input")

// Tokenizer splits a string into tokens separated by a single comma
// (optionally surrounded by whitespace) or by runs of whitespace.
type Tokenizer struct {
	s   string
	pos int
}

// New returns a tokenizer over s.
func New(s string) *Tokenizer {
	return &Tokenizer{s: s}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

func (t *Tokenizer) skipSpace() {
	for t.pos < len(t.s) && isSpace(t.s[t.pos]) {
		t.pos++
	}
}

// Next returns the next token. A token is never empty: two consecutive
// commas, or a leading or trailing comma, are reported as errors.
func (t *Tokenizer) Next() (string, error) {
	t.skipSpace()
	if t.pos >= len(t.s) {
		return "", ErrEndOfInput
	}
	start := t.pos
	for t.pos < len(t.s) && t.s[t.pos] != ',' && !isSpace(t.s[t.pos]) {
		t.pos++
	}
	tok := t.s[start:t.pos]
	if tok == "" {
		return "", fmt.Errorf("tokenizer: empty token at offset %d in %q", start, t.s)
	}

	// Consume one separator: whitespace, an optional comma, whitespace.
	t.skipSpace()
	if t.pos < len(t.s) && t.s[t.pos] == ',' {
		t.pos++
		t.skipSpace()
		if t.pos >= len(t.s) {
			return "", fmt.Errorf("tokenizer: trailing separator in %q", t.s)
		}
	}
	return tok, nil
}

// NextFloat returns the next token parsed as a float64.
func (t *Tokenizer) NextFloat() (float64, error) {
	tok, err := t.Next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("tokenizer: %w", err)
	}
	return v, nil
}

// Done reports whether all input has been consumed.
func (t *Tokenizer) Done() bool {
	t.skipSpace()
	return t.pos >= len(t.s)
}

// Floats parses s as a list of exactly one of the allowed counts of
// numbers. With no counts given, any non-zero count is accepted.
func Floats(s string, counts ...int) ([]float64, error) {
	s = strings.TrimSpace(s)
	t := New(s)
	var out []float64
	for !t.Done() {
		v, err := t.NextFloat()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("tokenizer: no numbers in %q", s)
	}
	if len(counts) == 0 {
		return out, nil
	}
	for _, c := range counts {
		if len(out) == c {
			return out, nil
		}
	}
	return nil, fmt.Errorf("tokenizer: got %d numbers in %q, want one of %v", len(out), s, counts)
}
