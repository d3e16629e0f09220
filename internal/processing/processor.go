// Package processing turns a replayed game into its labeled legal-move list.
package processing

import (
	"iter"

	"go.uber.org/zap"

	"github.com/lgbarn/sgf-legals-go/internal/goban"
	"github.com/lgbarn/sgf-legals-go/internal/labels"
	"github.com/lgbarn/sgf-legals-go/internal/output"
)

// Position is the part of a rules engine game the processor reads.
type Position interface {
	Size() goban.Size
	LegalMoves() iter.Seq[goban.Point]
}

// Analysis holds the labeled moves of one position.
type Analysis struct {
	Size       goban.Size
	Pairs      []labels.Pair
	Duplicates int // Tokens already produced by an earlier point
}

// Processor validates labels against a position and renders its legal moves.
type Processor struct {
	Scheme   labels.Scheme
	Ordering labels.Ordering
	Logger   *zap.SugaredLogger
}

// NewProcessor creates a processor. A nil logger discards log output.
func NewProcessor(scheme labels.Scheme, ordering labels.Ordering, logger *zap.SugaredLogger) *Processor {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Processor{Scheme: scheme, Ordering: ordering, Logger: logger}
}

// Analyze validates the scheme for the board and maps every legal move in
// engine order. Duplicate tokens are logged at debug level and kept.
func (p *Processor) Analyze(pos Position) (*Analysis, error) {
	size := pos.Size()
	if err := labels.Validate(p.Scheme, size); err != nil {
		return nil, err
	}

	mapper := labels.NewMapper(p.Scheme, p.Ordering)
	analysis := &Analysis{Size: size}
	seen := make(map[string]goban.Point)

	for pt := range pos.LegalMoves() {
		pair, err := mapper.Map(pt)
		if err != nil {
			return nil, err
		}

		token := pair.Token()
		if first, dup := seen[token]; dup {
			analysis.Duplicates++
			p.logger().Debugw("duplicate move token",
				"token", token,
				"point", pt.String(),
				"first", first.String(),
			)
		} else {
			seen[token] = pt
		}
		analysis.Pairs = append(analysis.Pairs, pair)
	}

	p.logger().Debugw("legal moves labeled",
		"size", size.String(),
		"ordering", p.Ordering.String(),
		"moves", len(analysis.Pairs),
	)
	return analysis, nil
}

// Pairs returns the ordered label pairs for every legal move.
func (p *Processor) Pairs(pos Position) ([]labels.Pair, error) {
	analysis, err := p.Analyze(pos)
	if err != nil {
		return nil, err
	}
	return analysis.Pairs, nil
}

// Render returns the formatted legal-move list, such as "(a1|b1)".
func (p *Processor) Render(pos Position) (string, error) {
	pairs, err := p.Pairs(pos)
	if err != nil {
		return "", err
	}
	return output.Format(pairs), nil
}

func (p *Processor) logger() *zap.SugaredLogger {
	if p.Logger == nil {
		return zap.NewNop().Sugar()
	}
	return p.Logger
}
