// Package labels names board coordinates with caller-chosen axis labels.
//
// A Scheme produces the label for an index along one axis. Two schemes
// exist: CustomLabelList indexes label lists supplied by the caller, and
// FixedAlphabet derives a letter for columns and a 1-based number for rows.
// Validate must succeed for a board before a Mapper is used on its points.
package labels

import (
	"fmt"
	"strings"

	sgferrors "github.com/lgbarn/sgf-legals-go/internal/errors"
)

// Axis identifies one board axis.
type Axis int

const (
	AxisX Axis = iota // Columns
	AxisY             // Rows
)

// String returns "x" or "y".
func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// Ordering selects which label of a pair is written first.
type Ordering int

const (
	XY Ordering = iota // Column label, then row label
	YX                 // Row label, then column label
)

// String returns the flag spelling of the ordering.
func (o Ordering) String() string {
	if o == YX {
		return "yx"
	}
	return "xy"
}

// ParseOrdering reads "xy" or "yx", ignoring case.
func ParseOrdering(s string) (Ordering, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "xy":
		return XY, nil
	case "yx":
		return YX, nil
	}
	return XY, fmt.Errorf("%w: ordering %q must be xy or yx", sgferrors.ErrInvalidConfig, s)
}

// Pair is an ordered pair of labels forming one move token.
type Pair struct {
	First  string
	Second string
}

// Token joins the pair with no separator.
func (p Pair) Token() string {
	return p.First + p.Second
}

// Apply orders an x label and a y label.
func (o Ordering) Apply(xLabel, yLabel string) Pair {
	switch o {
	case XY:
		return Pair{First: xLabel, Second: yLabel}
	case YX:
		return Pair{First: yLabel, Second: xLabel}
	}
	panic(fmt.Sprintf("labels: unknown ordering %d", int(o)))
}
