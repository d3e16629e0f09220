package goban

// Board represents a rectangular Go board. Squares are stored row-major.
type Board struct {
	size    Size
	squares []Colour
}

// NewBoard creates a new empty board of the given size.
func NewBoard(size Size) *Board {
	return &Board{
		size:    size,
		squares: make([]Colour, size.Points()),
	}
}

// Size returns the board dimensions.
func (b *Board) Size() Size {
	return b.size
}

// index converts a point to a slice index.
func (b *Board) index(p Point) int {
	return p.Y*b.size.Width + p.X
}

// Get returns the colour at p. Points off the board read as Empty.
func (b *Board) Get(p Point) Colour {
	if !b.size.Contains(p) {
		return Empty
	}
	return b.squares[b.index(p)]
}

// Set places a colour at p. Points off the board are ignored.
func (b *Board) Set(p Point, c Colour) {
	if !b.size.Contains(p) {
		return
	}
	b.squares[b.index(p)] = c
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{
		size:    b.size,
		squares: make([]Colour, len(b.squares)),
	}
	copy(newBoard.squares, b.squares)
	return newBoard
}

// Neighbours returns the on-board orthogonal neighbours of p.
func (b *Board) Neighbours(p Point) []Point {
	out := make([]Point, 0, 4)
	for _, off := range neighbourOffsets {
		n := Point{X: p.X + off.X, Y: p.Y + off.Y}
		if b.size.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}

// Group returns the chain of same-coloured stones connected to p and the
// number of distinct liberties of that chain. An empty point yields nil, 0.
func (b *Board) Group(p Point) (stones []Point, liberties int) {
	colour := b.Get(p)
	if colour == Empty {
		return nil, 0
	}

	seen := make(map[Point]bool)
	libs := make(map[Point]bool)
	stack := []Point{p}
	seen[p] = true

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		stones = append(stones, cur)

		for _, n := range b.Neighbours(cur) {
			switch b.Get(n) {
			case Empty:
				libs[n] = true
			case colour:
				if !seen[n] {
					seen[n] = true
					stack = append(stack, n)
				}
			}
		}
	}
	return stones, len(libs)
}

// Remove clears every point in stones.
func (b *Board) Remove(stones []Point) {
	for _, s := range stones {
		b.Set(s, Empty)
	}
}

// Place puts a stone of colour c on p and resolves captures: opposing chains
// left without liberties are removed first, then the placed chain itself if
// it has none (suicide). It returns the captured opposing stones and any
// stones lost to suicide. The caller is responsible for p being empty.
func (b *Board) Place(p Point, c Colour) (captured, suicided []Point) {
	b.Set(p, c)

	opponent := c.Opposite()
	for _, n := range b.Neighbours(p) {
		if b.Get(n) != opponent {
			continue
		}
		stones, libs := b.Group(n)
		if libs == 0 {
			b.Remove(stones)
			captured = append(captured, stones...)
		}
	}

	if stones, libs := b.Group(p); libs == 0 {
		b.Remove(stones)
		suicided = stones
	}
	return captured, suicided
}

// Equal reports whether two boards hold the same stones.
func (b *Board) Equal(other *Board) bool {
	if b.size != other.size {
		return false
	}
	for i := range b.squares {
		if b.squares[i] != other.squares[i] {
			return false
		}
	}
	return true
}

// CountStones returns the number of stones of colour c.
func (b *Board) CountStones(c Colour) int {
	count := 0
	for _, sq := range b.squares {
		if sq == c {
			count++
		}
	}
	return count
}
