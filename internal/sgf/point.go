package sgf

import (
	"fmt"
	"strconv"
	"strings"

	sgferrors "github.com/lgbarn/sgf-legals-go/internal/errors"
	"github.com/lgbarn/sgf-legals-go/internal/goban"
)

// coordinate converts one SGF coordinate letter: a-z is 0-25, A-Z is 26-51.
func coordinate(c byte) (int, bool) {
	switch {
	case c >= 'a' && c <= 'z':
		return int(c - 'a'), true
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 26, true
	}
	return 0, false
}

// DecodePoint converts a two-letter SGF point such as "pd".
func DecodePoint(s string) (goban.Point, error) {
	if len(s) != 2 {
		return goban.Point{}, fmt.Errorf("%w: point %q must be two letters", sgferrors.ErrParseFailure, s)
	}
	x, okX := coordinate(s[0])
	y, okY := coordinate(s[1])
	if !okX || !okY {
		return goban.Point{}, fmt.Errorf("%w: point %q has a non-letter coordinate", sgferrors.ErrParseFailure, s)
	}
	return goban.Point{X: x, Y: y}, nil
}

// DecodePointList expands a list of point values, including compressed
// rectangles written as "aa:cc".
func DecodePointList(values []string) ([]goban.Point, error) {
	var points []goban.Point
	for _, v := range values {
		from, to, compressed := strings.Cut(v, ":")
		if !compressed {
			p, err := DecodePoint(v)
			if err != nil {
				return nil, err
			}
			points = append(points, p)
			continue
		}

		a, err := DecodePoint(from)
		if err != nil {
			return nil, err
		}
		b, err := DecodePoint(to)
		if err != nil {
			return nil, err
		}
		for y := min(a.Y, b.Y); y <= max(a.Y, b.Y); y++ {
			for x := min(a.X, b.X); x <= max(a.X, b.X); x++ {
				points = append(points, goban.Point{X: x, Y: y})
			}
		}
	}
	return points, nil
}

// DecodeSize parses an SZ value: "19" for a square board or "19:13" for
// columns by rows.
func DecodeSize(s string) (goban.Size, error) {
	s = strings.TrimSpace(s)
	wText, hText, rect := strings.Cut(s, ":")

	w, err := strconv.Atoi(strings.TrimSpace(wText))
	if err != nil {
		return goban.Size{}, fmt.Errorf("%w: board size %q", sgferrors.ErrParseFailure, s)
	}
	h := w
	if rect {
		h, err = strconv.Atoi(strings.TrimSpace(hText))
		if err != nil {
			return goban.Size{}, fmt.Errorf("%w: board size %q", sgferrors.ErrParseFailure, s)
		}
	}

	if w < 1 || h < 1 || w > goban.MaxSize || h > goban.MaxSize {
		return goban.Size{}, fmt.Errorf("%w: board size %q outside 1..%d", sgferrors.ErrParseFailure, s, goban.MaxSize)
	}
	return goban.Size{Width: w, Height: h}, nil
}
