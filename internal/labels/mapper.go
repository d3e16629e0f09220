package labels

import "github.com/lgbarn/sgf-legals-go/internal/goban"

// Mapper turns board points into ordered label pairs.
type Mapper struct {
	Scheme   Scheme
	Ordering Ordering
}

// NewMapper creates a mapper for a scheme and ordering chosen once per run.
func NewMapper(scheme Scheme, ordering Ordering) *Mapper {
	return &Mapper{Scheme: scheme, Ordering: ordering}
}

// Map labels p. Validate must have succeeded for the board p belongs to;
// otherwise an out-of-range index yields an *errors.InvariantError.
func (m *Mapper) Map(p goban.Point) (Pair, error) {
	x, err := m.Scheme.Label(AxisX, p.X)
	if err != nil {
		return Pair{}, err
	}
	y, err := m.Scheme.Label(AxisY, p.Y)
	if err != nil {
		return Pair{}, err
	}
	return m.Ordering.Apply(x, y), nil
}
