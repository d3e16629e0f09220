// Package hashing provides Zobrist position hashing and repetition tracking
// for Go boards.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/sgf-legals-go/internal/goban"
)

// zobristSeed fixes the key table so hashes are stable across runs.
const zobristSeed = 0x5f3759df

// zobristKeys holds one key per colour per point for the largest board.
// Keys are indexed by y*goban.MaxSize + x so that every board size shares
// the same table.
var zobristKeys [2][goban.MaxSize * goban.MaxSize]uint64

func init() {
	initZobristKeys()
}

// initZobristKeys fills the key table from a fixed seed.
func initZobristKeys() {
	rng := rand.New(rand.NewSource(zobristSeed)) //nolint:gosec // G404: hash keys, not secrets
	for c := range zobristKeys {
		for i := range zobristKeys[c] {
			zobristKeys[c][i] = rng.Uint64()
		}
	}
}

// PointKey returns the Zobrist key for a stone of colour c on p.
// Empty points contribute nothing.
func PointKey(p goban.Point, c goban.Colour) uint64 {
	switch c {
	case goban.Black:
		return zobristKeys[0][p.Y*goban.MaxSize+p.X]
	case goban.White:
		return zobristKeys[1][p.Y*goban.MaxSize+p.X]
	}
	return 0
}

// GenerateZobristHash computes the hash of the stones on board.
// Whose turn it is does not take part: positional superko compares
// board positions only.
func GenerateZobristHash(board *goban.Board) uint64 {
	var hash uint64
	size := board.Size()
	for y := 0; y < size.Height; y++ {
		for x := 0; x < size.Width; x++ {
			p := goban.Point{X: x, Y: y}
			hash ^= PointKey(p, board.Get(p))
		}
	}
	return hash
}

// UpdateHash returns hash after placing a stone of colour c on p and
// removing the stones in removed, each of which had colour removedColour.
func UpdateHash(hash uint64, p goban.Point, c goban.Colour, removed []goban.Point, removedColour goban.Colour) uint64 {
	hash ^= PointKey(p, c)
	for _, r := range removed {
		hash ^= PointKey(r, removedColour)
	}
	return hash
}

// PositionHistory records every position reached in a game.
type PositionHistory struct {
	// seen stores the hashes of positions already reached
	seen map[uint64]int
}

// NewPositionHistory creates an empty history.
func NewPositionHistory() *PositionHistory {
	return &PositionHistory{
		seen: make(map[uint64]int),
	}
}

// Add records a position hash.
func (h *PositionHistory) Add(hash uint64) {
	h.seen[hash]++
}

// Seen reports whether the position has been reached before.
func (h *PositionHistory) Seen(hash uint64) bool {
	return h.seen[hash] > 0
}

// Count returns how many times the position has been reached.
func (h *PositionHistory) Count(hash uint64) int {
	return h.seen[hash]
}

// Len returns the number of distinct positions recorded.
func (h *PositionHistory) Len() int {
	return len(h.seen)
}

// Reset clears the history.
func (h *PositionHistory) Reset() {
	h.seen = make(map[uint64]int)
}
