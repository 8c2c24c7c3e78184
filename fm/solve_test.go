package fm_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/entcone/cone"
	"github.com/katalvlaran/entcone/fm"
	"github.com/katalvlaran/entcone/shannon"
	"github.com/stretchr/testify/require"
)

func TestSolveTo_TwoVariableEntropyCone(t *testing.T) {
	// Projecting the 2-variable entropy cone down to the single
	// coordinate H(X₀) leaves exactly H(X₀) ≥ 0.
	s, err := shannon.Elemental(2)
	require.NoError(t, err)

	order, err := fm.SolveTo(s, 2, nil)
	require.NoError(t, err)
	require.Equal(t, 2, s.NumCols())
	require.Equal(t, 1, s.Len())
	require.Equal(t, cone.Vector{0, 1}, s.Row(0))
	// Both steps eliminate the current trailing candidate; the rank tie
	// at the first step breaks to the lower index.
	require.Equal(t, []int{2, 2}, order)
}

func TestSolveTo_TargetEqualsNumCols(t *testing.T) {
	s := cone.NewSystem(4, 1)
	s.AddInequality(cone.Vector{0, 1, 1, -1})

	order, err := fm.SolveTo(s, 4, nil)
	require.NoError(t, err)
	require.Empty(t, order)
	require.Equal(t, 4, s.NumCols())
	require.Equal(t, 1, s.Len())
}

func TestSolveTo_TargetRange(t *testing.T) {
	s := cone.NewSystem(4, 0)
	_, err := fm.SolveTo(s, 0, nil)
	require.ErrorIs(t, err, fm.ErrTargetRange)
	_, err = fm.SolveTo(s, 5, nil)
	require.ErrorIs(t, err, fm.ErrTargetRange)
}

func TestSolveTo_RankPicksCheapestColumn(t *testing.T) {
	// Column 2 has two positives and two negatives (rank 4−4 = 0),
	// column 3 one of each (rank 1−2 = −1), so column 3 is strictly
	// cheaper and goes first.
	s := cone.NewSystem(4, 4)
	s.AddInequality(cone.Vector{0, 1, 1, 1})
	s.AddInequality(cone.Vector{0, 1, 1, -1})
	s.AddInequality(cone.Vector{0, 1, -1, 0})
	s.AddInequality(cone.Vector{0, 1, -1, 0})

	var first int
	obs := &recordingObserver{step: func(step, column int) {
		if step == 0 {
			first = column
		}
	}}
	_, err := fm.SolveTo(s, 2, &fm.Options{Observer: obs})
	require.NoError(t, err)
	require.Equal(t, 3, first)
}

func TestSolveTo_Cancellation(t *testing.T) {
	s, err := shannon.Elemental(3)
	require.NoError(t, err)
	before := s.NumCols()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	order, err := fm.SolveTo(s, 2, &fm.Options{Ctx: ctx})
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, order)
	// the system is untouched: cancellation fired before the first step
	require.Equal(t, before, s.NumCols())
	require.Equal(t, 9, s.Len())
}

func TestSolveTo_CancellationMidRun(t *testing.T) {
	s, err := shannon.Elemental(3)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	obs := &recordingObserver{step: func(step, column int) {
		if step == 1 {
			cancel()
		}
	}}
	order, err := fm.SolveTo(s, 2, &fm.Options{Ctx: ctx, Observer: obs})
	require.ErrorIs(t, err, context.Canceled)
	// one full step committed before the cancel took effect
	require.NotEmpty(t, order)
	// the partially reduced system is still well formed
	for _, v := range s.Rows() {
		require.Equal(t, s.NumCols(), v.Len())
	}
}
