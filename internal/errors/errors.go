// Package errors provides sentinel errors and error types for the sgf-legals tool.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrReadInput indicates the game record could not be read.
	ErrReadInput = errors.New("cannot read game record")

	// ErrParseFailure indicates malformed SGF text.
	ErrParseFailure = errors.New("parse failure")

	// ErrIllegalMove indicates a recorded move that cannot be replayed.
	ErrIllegalMove = errors.New("illegal move")

	// ErrValidation is matched by every label validation failure.
	ErrValidation = errors.New("label validation failed")

	// ErrInsufficientLabels indicates a label list shorter than its board axis.
	ErrInsufficientLabels = errors.New("not enough labels")

	// ErrBoardTooLarge indicates a board axis beyond the fixed alphabet.
	ErrBoardTooLarge = errors.New("board too large")

	// ErrInternalInvariant indicates a defect: a label lookup out of range
	// after validation succeeded.
	ErrInternalInvariant = errors.New("internal invariant violated")

	// ErrInvalidConfig indicates invalid configuration values or arguments.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// InputError reports a failure to acquire the game record.
type InputError struct {
	Source string // File name, or "stdin"
	Err    error  // The underlying I/O error
}

func (e *InputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v %s: %v", ErrReadInput, e.Source, e.Err)
	}
	return fmt.Sprintf("%v %s", ErrReadInput, e.Source)
}

// Is reports ErrReadInput so callers need not unwrap the I/O cause.
func (e *InputError) Is(target error) bool {
	return target == ErrReadInput
}

// Unwrap returns the underlying I/O error.
func (e *InputError) Unwrap() error {
	return e.Err
}

// GameError wraps errors with replay context: the node number in the main
// line and the move text that caused the error.
type GameError struct {
	Err      error  // The underlying error
	Node     int    // 0-based node index in the main line
	MoveText string // The move property that caused the error (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *GameError) Error() string {
	parts := []string{fmt.Sprintf("node %d", e.Node)}

	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the GameError wrapper.
func (e *GameError) Unwrap() error {
	return e.Err
}

// ParseError represents an SGF syntax error with location context.
type ParseError struct {
	Err      error // The underlying error
	Line     int   // Line number (1-based)
	Column   int   // Column number (1-based)
	Expected string
	Got      string
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Line > 0 {
		loc := fmt.Sprintf("line %d", e.Line)
		if e.Column > 0 {
			loc += fmt.Sprintf(", column %d", e.Column)
		}
		parts = append(parts, loc)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%v: %s", e.Err, strings.Join(parts, ": "))
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// InsufficientLabelsError reports a label list shorter than the board axis
// it has to name.
type InsufficientLabelsError struct {
	Axis     string // "x" or "y"
	Required int    // Board width or height
	Supplied int    // Number of labels given
}

func (e *InsufficientLabelsError) Error() string {
	dim := "width"
	if e.Axis == "y" {
		dim = "height"
	}
	return fmt.Sprintf("%v: not enough %s labels supplied, %s %d, %s labels %d",
		ErrValidation, e.Axis, dim, e.Required, e.Axis, e.Supplied)
}

// Is matches both ErrValidation and ErrInsufficientLabels.
func (e *InsufficientLabelsError) Is(target error) bool {
	return target == ErrValidation || target == ErrInsufficientLabels
}

// BoardTooLargeError reports a board axis that exceeds what the fixed
// alphabet can name.
type BoardTooLargeError struct {
	Axis string
	Size int
	Max  int
}

func (e *BoardTooLargeError) Error() string {
	return fmt.Sprintf("%v: board %s size %d exceeds maximum %d", ErrValidation, e.Axis, e.Size, e.Max)
}

// Is matches both ErrValidation and ErrBoardTooLarge.
func (e *BoardTooLargeError) Is(target error) bool {
	return target == ErrValidation || target == ErrBoardTooLarge
}

// InvariantError reports a label lookup that fell outside its label set.
// It only occurs when mapping runs without a successful validation.
type InvariantError struct {
	Axis  string
	Index int
	Len   int
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%v: %s index %d out of range for %d labels", ErrInternalInvariant, e.Axis, e.Index, e.Len)
}

// Is matches ErrInternalInvariant.
func (e *InvariantError) Is(target error) bool {
	return target == ErrInternalInvariant
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
