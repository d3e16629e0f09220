package labels

import (
	"strconv"
	"strings"

	sgferrors "github.com/lgbarn/sgf-legals-go/internal/errors"
	"github.com/lgbarn/sgf-legals-go/internal/goban"
)

// FixedAlphabetMax is the largest axis the fixed alphabet can name.
const FixedAlphabetMax = 19

// Scheme produces the label for a zero-based index along one axis.
type Scheme interface {
	// Check reports whether every point of a board of the given size
	// can be labeled.
	Check(size goban.Size) error

	// Label returns the label for index along axis. An index the scheme
	// cannot name is an *errors.InvariantError.
	Label(axis Axis, index int) (string, error)
}

// Validate confirms that scheme can label every point of a board of the
// given size. Both axes are examined before the first failure is returned.
func Validate(scheme Scheme, size goban.Size) error {
	return scheme.Check(size)
}

// CustomLabelList labels axes from caller-supplied lists. Duplicate labels
// are allowed and passed through unchanged.
type CustomLabelList struct {
	X []string
	Y []string
}

// NewCustomLabelList splits whitespace-separated label strings.
func NewCustomLabelList(xLabels, yLabels string) *CustomLabelList {
	return &CustomLabelList{
		X: strings.Fields(xLabels),
		Y: strings.Fields(yLabels),
	}
}

// Check reports an InsufficientLabelsError for the first short axis,
// x before y.
func (c *CustomLabelList) Check(size goban.Size) error {
	xErr := checkLength(AxisX, size.Width, len(c.X))
	yErr := checkLength(AxisY, size.Height, len(c.Y))
	if xErr != nil {
		return xErr
	}
	return yErr
}

func checkLength(axis Axis, required, supplied int) error {
	if supplied >= required {
		return nil
	}
	return &sgferrors.InsufficientLabelsError{
		Axis:     axis.String(),
		Required: required,
		Supplied: supplied,
	}
}

// Label indexes the list for axis.
func (c *CustomLabelList) Label(axis Axis, index int) (string, error) {
	list := c.X
	if axis == AxisY {
		list = c.Y
	}
	if index < 0 || index >= len(list) {
		return "", &sgferrors.InvariantError{Axis: axis.String(), Index: index, Len: len(list)}
	}
	return list[index], nil
}

// FixedAlphabet labels columns a, b, c... and rows 1, 2, 3...
// for boards up to 19x19.
type FixedAlphabet struct{}

// Check reports a BoardTooLargeError for the first axis beyond 19,
// x before y.
func (FixedAlphabet) Check(size goban.Size) error {
	xErr := checkMax(AxisX, size.Width)
	yErr := checkMax(AxisY, size.Height)
	if xErr != nil {
		return xErr
	}
	return yErr
}

func checkMax(axis Axis, n int) error {
	if n <= FixedAlphabetMax {
		return nil
	}
	return &sgferrors.BoardTooLargeError{Axis: axis.String(), Size: n, Max: FixedAlphabetMax}
}

// Label returns the letter at offset index from 'a' for x, and the decimal
// index+1 for y.
func (FixedAlphabet) Label(axis Axis, index int) (string, error) {
	if index < 0 || index >= FixedAlphabetMax {
		return "", &sgferrors.InvariantError{Axis: axis.String(), Index: index, Len: FixedAlphabetMax}
	}
	if axis == AxisX {
		return string(rune('a' + index)), nil
	}
	return strconv.Itoa(index + 1), nil
}
