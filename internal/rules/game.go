package rules

import (
	"fmt"
	"strconv"
	"strings"

	sgferrors "github.com/lgbarn/sgf-legals-go/internal/errors"
	"github.com/lgbarn/sgf-legals-go/internal/goban"
	"github.com/lgbarn/sgf-legals-go/internal/hashing"
	"github.com/lgbarn/sgf-legals-go/internal/sgf"
)

// Game is the position reached at the end of a record's main line.
type Game struct {
	board  *goban.Board
	toMove goban.Colour
	rules  Ruleset

	// Simple ko: the point the side to move may not play on.
	hasKo   bool
	koPoint goban.Point

	hash    uint64
	history *hashing.PositionHistory

	moves int
}

// NewGame creates an empty board with Black to move.
func NewGame(size goban.Size, rules Ruleset) *Game {
	g := &Game{
		board:   goban.NewBoard(size),
		toMove:  goban.Black,
		rules:   rules,
		history: hashing.NewPositionHistory(),
	}
	g.history.Add(g.hash)
	return g
}

// FromSGF parses SGF text and replays the main line of its first game tree.
func FromSGF(text string) (*Game, error) {
	collection, err := sgf.ParseString(text)
	if err != nil {
		return nil, err
	}
	return FromTree(collection.Trees[0])
}

// FromTree replays the main line of a parsed game tree.
func FromTree(tree *sgf.GameTree) (*Game, error) {
	nodes := tree.MainLine()
	if len(nodes) == 0 {
		return nil, &sgferrors.ParseError{Err: sgferrors.ErrParseFailure, Expected: "a root node"}
	}
	root := nodes[0]

	size := goban.Square(goban.DefaultSize)
	if v, ok := root.Get("SZ"); ok {
		s, err := sgf.DecodeSize(v)
		if err != nil {
			return nil, err
		}
		size = s
	}

	ruleset, _ := root.Get("RU")
	g := NewGame(size, ParseRuleset(ruleset))

	if v, ok := root.Get("HA"); ok {
		if handicap, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && handicap >= 2 {
			g.toMove = goban.White
		}
	}

	for i, node := range nodes {
		if err := g.applyNode(node); err != nil {
			return nil, &sgferrors.GameError{Err: err, Node: i, MoveText: describeNode(node)}
		}
	}
	return g, nil
}

// describeNode renders the move or setup properties of a node for errors.
func describeNode(node *sgf.Node) string {
	var parts []string
	for _, id := range []string{"AB", "AW", "AE", "B", "W"} {
		for _, v := range node.Values(id) {
			parts = append(parts, fmt.Sprintf("%s[%s]", id, v))
		}
	}
	return strings.Join(parts, "")
}

// Size returns the board dimensions.
func (g *Game) Size() goban.Size {
	return g.board.Size()
}

// ToMove returns the colour whose legal moves are enumerated.
func (g *Game) ToMove() goban.Colour {
	return g.toMove
}

// Rules returns the ruleset in force.
func (g *Game) Rules() Ruleset {
	return g.rules
}

// Board returns a copy of the current position.
func (g *Game) Board() *goban.Board {
	return g.board.Copy()
}

// MoveCount returns the number of moves replayed, passes included.
func (g *Game) MoveCount() int {
	return g.moves
}

// KoPoint returns the point forbidden by simple ko, if any.
func (g *Game) KoPoint() (goban.Point, bool) {
	return g.koPoint, g.hasKo
}
