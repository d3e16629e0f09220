// Package goban provides core Go board types and operations.
package goban

import "fmt"

// Colour represents the colour of a stone or player.
type Colour int

const (
	Empty Colour = iota
	Black
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	}
	return "Empty"
}

// Opposite returns the opposite colour. Empty stays Empty.
func (c Colour) Opposite() Colour {
	switch c {
	case Black:
		return White
	case White:
		return Black
	}
	return Empty
}

// ColourFromSGF converts an SGF colour letter ("B" or "W").
func ColourFromSGF(s string) (Colour, bool) {
	switch s {
	case "B", "b":
		return Black, true
	case "W", "w":
		return White, true
	}
	return Empty, false
}

// Constants for board dimensions.
const (
	// DefaultSize is the board size assumed when a record has no SZ property.
	DefaultSize = 19

	// MaxSize is the largest axis SGF point notation can address (a-z, A-Z).
	MaxSize = 52
)

// Size holds the board dimensions: Width columns by Height rows.
type Size struct {
	Width  int
	Height int
}

// Square returns a square board size.
func Square(n int) Size {
	return Size{Width: n, Height: n}
}

// Points returns the number of intersections on the board.
func (s Size) Points() int {
	return s.Width * s.Height
}

// Contains reports whether p lies on a board of this size.
func (s Size) Contains(p Point) bool {
	return p.X >= 0 && p.X < s.Width && p.Y >= 0 && p.Y < s.Height
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Point is a zero-based board coordinate. X counts columns from the left,
// Y counts rows from the top, matching SGF point order.
type Point struct {
	X int
	Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// neighbourOffsets lists the four orthogonal directions.
var neighbourOffsets = [4]Point{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}
