package processing

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	sgferrors "github.com/lgbarn/sgf-legals-go/internal/errors"
	"github.com/lgbarn/sgf-legals-go/internal/goban"
	"github.com/lgbarn/sgf-legals-go/internal/labels"
	"github.com/lgbarn/sgf-legals-go/internal/output"
	"github.com/lgbarn/sgf-legals-go/internal/rules"
	"github.com/lgbarn/sgf-legals-go/internal/testutil"
)

// fakePosition supplies a fixed move list regardless of board contents.
type fakePosition struct {
	size  goban.Size
	moves []goban.Point
}

func (f fakePosition) Size() goban.Size { return f.size }

func (f fakePosition) LegalMoves() iter.Seq[goban.Point] {
	return slices.Values(f.moves)
}

func observed(level zapcore.Level) (*zap.SugaredLogger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return zap.New(core).Sugar(), logs
}

func TestRender(t *testing.T) {
	abc := labels.NewCustomLabelList("a b c", "1 2")

	tests := []struct {
		name   string
		scheme labels.Scheme
		order  labels.Ordering
		pos    fakePosition
		want   string
	}{
		{
			name:   "engine order kept",
			scheme: labels.FixedAlphabet{},
			pos:    fakePosition{goban.Square(19), []goban.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}},
			want:   "(a1|b1)",
		},
		{
			name:   "custom xy",
			scheme: abc,
			order:  labels.XY,
			pos:    fakePosition{goban.Size{Width: 3, Height: 2}, []goban.Point{{X: 2, Y: 0}}},
			want:   "(c1)",
		},
		{
			name:   "custom yx",
			scheme: abc,
			order:  labels.YX,
			pos:    fakePosition{goban.Size{Width: 3, Height: 2}, []goban.Point{{X: 2, Y: 0}}},
			want:   "(1c)",
		},
		{
			name:   "no legal moves",
			scheme: labels.FixedAlphabet{},
			pos:    fakePosition{goban.Square(9), nil},
			want:   "()",
		},
		{
			name:   "not reordered",
			scheme: labels.FixedAlphabet{},
			pos:    fakePosition{goban.Square(9), []goban.Point{{X: 4, Y: 4}, {X: 0, Y: 0}, {X: 8, Y: 8}}},
			want:   "(e5|a1|i9)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewProcessor(tt.scheme, tt.order, nil).Render(tt.pos)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderValidationFailure(t *testing.T) {
	tests := []struct {
		name     string
		scheme   labels.Scheme
		size     goban.Size
		sentinel error
	}{
		{"short x labels", labels.NewCustomLabelList("a b", "1 2 3"), goban.Square(3), sgferrors.ErrInsufficientLabels},
		{"short y labels", labels.NewCustomLabelList("a b c", "1"), goban.Square(3), sgferrors.ErrInsufficientLabels},
		{"alphabet too small", labels.FixedAlphabet{}, goban.Size{Width: 20, Height: 19}, sgferrors.ErrBoardTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := fakePosition{tt.size, []goban.Point{{X: 0, Y: 0}}}
			got, err := NewProcessor(tt.scheme, labels.XY, nil).Render(pos)
			require.Error(t, err)
			assert.ErrorIs(t, err, sgferrors.ErrValidation)
			assert.ErrorIs(t, err, tt.sentinel)
			assert.Empty(t, got)
		})
	}
}

func TestRenderInvariantViolation(t *testing.T) {
	// The engine reports a point outside the board it claims to have.
	pos := fakePosition{goban.Square(2), []goban.Point{{X: 0, Y: 0}, {X: 5, Y: 0}}}

	_, err := NewProcessor(labels.NewCustomLabelList("a b", "1 2"), labels.XY, nil).Render(pos)
	require.Error(t, err)
	assert.ErrorIs(t, err, sgferrors.ErrInternalInvariant)
}

func TestDuplicateTokensLogged(t *testing.T) {
	logger, logs := observed(zapcore.DebugLevel)
	scheme := labels.NewCustomLabelList("a a", "1 1")
	pos := fakePosition{goban.Square(2), []goban.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}}

	analysis, err := NewProcessor(scheme, labels.XY, logger).Analyze(pos)
	require.NoError(t, err)
	assert.Equal(t, 3, analysis.Duplicates)
	assert.Equal(t, "(a1|a1|a1|a1)", output.Format(analysis.Pairs))

	dups := logs.FilterMessage("duplicate move token").All()
	require.Len(t, dups, 3)
	assert.Equal(t, "a1", dups[0].ContextMap()["token"])
	assert.Equal(t, "(1,0)", dups[0].ContextMap()["point"])
	assert.Equal(t, "(0,0)", dups[0].ContextMap()["first"])
}

func TestDuplicateTokensSilentAboveDebug(t *testing.T) {
	logger, logs := observed(zapcore.ErrorLevel)
	scheme := labels.NewCustomLabelList("a a", "1 1")
	pos := fakePosition{goban.Square(2), []goban.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}}

	got, err := NewProcessor(scheme, labels.XY, logger).Render(pos)
	require.NoError(t, err)
	assert.Equal(t, "(a1|a1)", got)
	assert.Zero(t, logs.Len())
}

func TestRenderGame(t *testing.T) {
	// A black stone in the centre of a 3x3 board leaves eight moves for white.
	game, err := rules.FromSGF(testutil.Record("SZ[3]", "B[bb]"))
	require.NoError(t, err)

	got, err := NewProcessor(labels.FixedAlphabet{}, labels.XY, nil).Render(game)
	require.NoError(t, err)
	assert.Equal(t, "(a1|b1|c1|a2|c2|a3|b3|c3)", got)

	got, err = NewProcessor(labels.NewCustomLabelList("A B C", "x y z"), labels.YX, nil).Render(game)
	require.NoError(t, err)
	assert.Equal(t, "(xA|xB|xC|yA|yC|zA|zB|zC)", got)
}

func TestRenderDeterministic(t *testing.T) {
	record := testutil.Record("SZ[5]AB[ba][ab][bc]AW[ca][bb][db][cc]", "B[cb]")
	proc := NewProcessor(labels.FixedAlphabet{}, labels.XY, nil)

	var outputs []string
	for range 3 {
		game, err := rules.FromSGF(record)
		require.NoError(t, err)
		got, err := proc.Render(game)
		require.NoError(t, err)
		outputs = append(outputs, got)
	}
	assert.Equal(t, outputs[0], outputs[1])
	assert.Equal(t, outputs[1], outputs[2])
	assert.NotContains(t, outputs[0], "b2", "ko point must be excluded")
}
