// Package output serializes labeled legal moves.
package output

import (
	"io"

	"github.com/lgbarn/sgf-legals-go/internal/labels"
)

const (
	openList  = "("
	closeList = ")"
	separator = "|"
)

// PairWriter is the interface for writing label pairs to output.
type PairWriter interface {
	// WritePair writes a single move token.
	WritePair(pair labels.Pair) error

	// Close terminates the list. Nothing may be written afterwards.
	Close() error
}

// TokenWriter writes the parenthesized token list incrementally.
// The opening parenthesis is written with the first pair, or by Close
// when no pair was written.
type TokenWriter struct {
	w       io.Writer
	started bool
	closed  bool
	count   int
	err     error
}

// NewTokenWriter creates a new token writer.
func NewTokenWriter(w io.Writer) *TokenWriter {
	return &TokenWriter{w: w}
}

// WritePair writes the token for pair, preceded by the separator
// if it is not the first.
func (tw *TokenWriter) WritePair(pair labels.Pair) error {
	if tw.closed {
		return io.ErrClosedPipe
	}
	prefix := separator
	if !tw.started {
		prefix = openList
		tw.started = true
	}
	tw.write(prefix)
	tw.write(pair.First)
	tw.write(pair.Second)
	tw.count++
	return tw.err
}

// Close writes the closing parenthesis.
func (tw *TokenWriter) Close() error {
	if tw.closed {
		return tw.err
	}
	if !tw.started {
		tw.write(openList)
		tw.started = true
	}
	tw.write(closeList)
	tw.closed = true
	return tw.err
}

// Count returns the number of tokens written.
func (tw *TokenWriter) Count() int {
	return tw.count
}

// write remembers the first error and skips later writes.
func (tw *TokenWriter) write(s string) {
	if tw.err != nil || s == "" {
		return
	}
	_, tw.err = io.WriteString(tw.w, s)
}
