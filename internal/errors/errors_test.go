package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"
)

// TestSentinelErrors verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrReadInput", ErrReadInput, ErrReadInput},
		{"ErrParseFailure", ErrParseFailure, ErrParseFailure},
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrValidation", ErrValidation, ErrValidation},
		{"ErrInsufficientLabels", ErrInsufficientLabels, ErrInsufficientLabels},
		{"ErrBoardTooLarge", ErrBoardTooLarge, ErrBoardTooLarge},
		{"ErrInternalInvariant", ErrInternalInvariant, ErrInternalInvariant},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("failed to parse record: %w", ErrParseFailure)

	if !errors.Is(wrapped, ErrParseFailure) {
		t.Errorf("errors.Is(wrapped, ErrParseFailure) = false, want true")
	}
}

func TestInputError(t *testing.T) {
	err := &InputError{Source: "game.sgf", Err: fs.ErrNotExist}

	if !errors.Is(err, ErrReadInput) {
		t.Error("errors.Is(err, ErrReadInput) = false, want true")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("errors.Is(err, fs.ErrNotExist) = false, want true")
	}
	if !containsIgnoreCase(err.Error(), "game.sgf") {
		t.Errorf("InputError.Error() = %q, should contain source", err.Error())
	}
}

// TestGameError_Error verifies the error message format
func TestGameError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *GameError
		contains []string
	}{
		{
			name: "full context",
			err: &GameError{
				Err:      ErrIllegalMove,
				Node:     12,
				MoveText: "B[dd]",
			},
			contains: []string{"node 12", "B[dd]", "illegal move"},
		},
		{
			name:     "minimal context",
			err:      &GameError{Err: ErrIllegalMove},
			contains: []string{"node 0", "illegal move"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("GameError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestGameError_As verifies that errors.As works with GameError
func TestGameError_As(t *testing.T) {
	gameErr := &GameError{
		Err:      ErrIllegalMove,
		Node:     3,
		MoveText: "W[aa]",
	}

	wrapped := fmt.Errorf("replay failed: %w", gameErr)

	var extractedErr *GameError
	if !errors.As(wrapped, &extractedErr) {
		t.Fatal("errors.As() could not extract GameError")
	}
	if extractedErr.Node != 3 {
		t.Errorf("extractedErr.Node = %d, want 3", extractedErr.Node)
	}
	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("errors.Is(wrapped, ErrIllegalMove) = false, want true")
	}
}

// TestParseError_Error verifies ParseError formatting
func TestParseError_Error(t *testing.T) {
	err := &ParseError{
		Err:      ErrParseFailure,
		Line:     100,
		Column:   15,
		Expected: "']'",
		Got:      "end of input",
	}

	msg := err.Error()
	for _, s := range []string{"parse failure", "line 100", "column 15", "expected ']'", "end of input"} {
		if !containsIgnoreCase(msg, s) {
			t.Errorf("ParseError.Error() = %q, should contain %q", msg, s)
		}
	}
	if !errors.Is(err, ErrParseFailure) {
		t.Error("errors.Is(err, ErrParseFailure) = false, want true")
	}
}

func TestInsufficientLabelsError(t *testing.T) {
	err := &InsufficientLabelsError{Axis: "y", Required: 9, Supplied: 4}

	if !errors.Is(err, ErrValidation) {
		t.Error("errors.Is(err, ErrValidation) = false, want true")
	}
	if !errors.Is(err, ErrInsufficientLabels) {
		t.Error("errors.Is(err, ErrInsufficientLabels) = false, want true")
	}
	if errors.Is(err, ErrBoardTooLarge) {
		t.Error("errors.Is(err, ErrBoardTooLarge) = true, want false")
	}
	for _, s := range []string{"height 9", "y labels 4"} {
		if !containsIgnoreCase(err.Error(), s) {
			t.Errorf("Error() = %q, should contain %q", err.Error(), s)
		}
	}
}

func TestBoardTooLargeError(t *testing.T) {
	err := fmt.Errorf("rendering: %w", &BoardTooLargeError{Axis: "x", Size: 20, Max: 19})

	if !errors.Is(err, ErrValidation) || !errors.Is(err, ErrBoardTooLarge) {
		t.Errorf("wrapped BoardTooLargeError should match ErrValidation and ErrBoardTooLarge")
	}

	var tooLarge *BoardTooLargeError
	if !errors.As(err, &tooLarge) {
		t.Fatal("errors.As() could not extract BoardTooLargeError")
	}
	if tooLarge.Size != 20 || tooLarge.Max != 19 {
		t.Errorf("got size %d max %d, want 20 and 19", tooLarge.Size, tooLarge.Max)
	}
}

func TestInvariantError(t *testing.T) {
	err := &InvariantError{Axis: "x", Index: 7, Len: 3}

	if !errors.Is(err, ErrInternalInvariant) {
		t.Error("errors.Is(err, ErrInternalInvariant) = false, want true")
	}
	if errors.Is(err, ErrValidation) {
		t.Error("an invariant violation must not look like a validation failure")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrParseFailure, "reading game.sgf")

	if !errors.Is(wrapped, ErrParseFailure) {
		t.Error("Wrap should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "reading game.sgf") {
		t.Errorf("Wrap should include context, got %q", wrapped.Error())
	}
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrIllegalMove, "node %d of %s", 15, "main line")

	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "node 15 of main line") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
