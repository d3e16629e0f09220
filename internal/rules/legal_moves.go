package rules

import (
	"iter"

	"github.com/lgbarn/sgf-legals-go/internal/goban"
)

// LegalMoves enumerates the points where the side to move may place a
// stone. Points are visited row by row from the top, left to right within
// a row, so the order is stable for a given record. Passing is always
// legal and is not included.
func (g *Game) LegalMoves() iter.Seq[goban.Point] {
	return func(yield func(goban.Point) bool) {
		size := g.board.Size()
		for y := 0; y < size.Height; y++ {
			for x := 0; x < size.Width; x++ {
				p := goban.Point{X: x, Y: y}
				if g.IsLegal(p) && !yield(p) {
					return
				}
			}
		}
	}
}

// IsLegal reports whether the side to move may play on p.
func (g *Game) IsLegal(p goban.Point) bool {
	if !g.board.Size().Contains(p) || g.board.Get(p) != goban.Empty {
		return false
	}
	if g.hasKo && p == g.koPoint {
		return false
	}

	// Try the move on a copied board.
	testBoard := g.board.Copy()
	captured, suicided := testBoard.Place(p, g.toMove)

	if len(suicided) > 0 && !g.rules.AllowsSuicide() {
		return false
	}

	if g.rules.UsesSuperko() {
		if g.history.Seen(resultingHash(g.hash, p, g.toMove, captured, suicided)) {
			return false
		}
	}
	return true
}
