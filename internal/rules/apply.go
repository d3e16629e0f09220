package rules

import (
	"fmt"

	sgferrors "github.com/lgbarn/sgf-legals-go/internal/errors"
	"github.com/lgbarn/sgf-legals-go/internal/goban"
	"github.com/lgbarn/sgf-legals-go/internal/hashing"
	"github.com/lgbarn/sgf-legals-go/internal/sgf"
)

// applyNode applies one node: setup stones first, then PL, then a move.
func (g *Game) applyNode(node *sgf.Node) error {
	setups := []struct {
		ident  string
		colour goban.Colour
	}{
		{"AE", goban.Empty},
		{"AB", goban.Black},
		{"AW", goban.White},
	}

	changed := false
	for _, s := range setups {
		values := node.Values(s.ident)
		if len(values) == 0 {
			continue
		}
		points, err := sgf.DecodePointList(values)
		if err != nil {
			return err
		}
		if err := g.Setup(s.colour, points); err != nil {
			return err
		}
		changed = true
	}
	if changed {
		g.history.Add(g.hash)
	}

	if v, ok := node.Get("PL"); ok {
		if c, ok := goban.ColourFromSGF(v); ok {
			g.toMove = c
		}
	}

	for _, ident := range []string{"B", "W"} {
		v, ok := node.Get(ident)
		if !ok {
			continue
		}
		colour, _ := goban.ColourFromSGF(ident)
		if g.isPass(v) {
			g.Pass(colour)
			continue
		}
		p, err := sgf.DecodePoint(v)
		if err != nil {
			return err
		}
		if err := g.Play(colour, p); err != nil {
			return err
		}
	}
	return nil
}

// isPass reports whether a move value is a pass: empty, or "tt" on boards
// no larger than 19x19.
func (g *Game) isPass(v string) bool {
	if v == "" {
		return true
	}
	size := g.board.Size()
	return v == "tt" && size.Width <= 19 && size.Height <= 19
}

// Setup places (or with goban.Empty, clears) stones without captures.
// It clears any ko restriction.
func (g *Game) Setup(c goban.Colour, points []goban.Point) error {
	size := g.board.Size()
	for _, p := range points {
		if !size.Contains(p) {
			return fmt.Errorf("%w: setup point %v is off the %v board", sgferrors.ErrIllegalMove, p, size)
		}
	}
	for _, p := range points {
		g.board.Set(p, c)
	}
	g.hash = hashing.GenerateZobristHash(g.board)
	g.hasKo = false
	return nil
}

// Pass records a pass by colour c.
func (g *Game) Pass(c goban.Colour) {
	g.hasKo = false
	g.toMove = c.Opposite()
	g.moves++
}

// Play replays a recorded move by colour c. Records are trusted: ko and
// superko are not checked, and a suicide removes the suicided chain.
// Playing off the board or onto an occupied point is an error.
func (g *Game) Play(c goban.Colour, p goban.Point) error {
	size := g.board.Size()
	if !size.Contains(p) {
		return fmt.Errorf("%w: %v is off the %v board", sgferrors.ErrIllegalMove, p, size)
	}
	if g.board.Get(p) != goban.Empty {
		return fmt.Errorf("%w: %v is occupied", sgferrors.ErrIllegalMove, p)
	}

	captured, suicided := g.board.Place(p, c)
	g.hash = resultingHash(g.hash, p, c, captured, suicided)
	g.history.Add(g.hash)

	g.hasKo = false
	if len(captured) == 1 && len(suicided) == 0 {
		if stones, libs := g.board.Group(p); len(stones) == 1 && libs == 1 {
			g.hasKo = true
			g.koPoint = captured[0]
		}
	}

	g.toMove = c.Opposite()
	g.moves++
	return nil
}

// resultingHash returns the position hash after c plays p, capturing the
// opposing stones in captured and losing its own stones in suicided.
func resultingHash(hash uint64, p goban.Point, c goban.Colour, captured, suicided []goban.Point) uint64 {
	hash = hashing.UpdateHash(hash, p, c, captured, c.Opposite())
	for _, s := range suicided {
		hash ^= hashing.PointKey(s, c)
	}
	return hash
}
