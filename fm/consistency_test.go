package fm_test

import (
	"testing"

	"github.com/katalvlaran/entcone/cone"
	"github.com/katalvlaran/entcone/fm"
	"github.com/katalvlaran/entcone/oracle"
	"github.com/stretchr/testify/require"
)

func TestImplied_PicksOutImpliedRows(t *testing.T) {
	p := oracle.New(3)
	p.AddInequality(cone.Vector{0, 1, 0})
	p.AddInequality(cone.Vector{0, 0, 1})

	m := cone.Matrix{
		{0, 1, 1},  // implied (sum)
		{0, -1, 0}, // not implied
		{0, 2, 3},  // implied
	}
	idx, err := fm.Implied(p, m)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2}, idx)
}

func TestNontrivial_FiltersImpliedAndAccumulates(t *testing.T) {
	target := cone.NewSystem(3, 2)
	target.AddInequality(cone.Vector{0, 1, 0})
	target.AddInequality(cone.Vector{0, 0, 1})

	m := cone.Matrix{
		{0, 1, 1},   // trivial: implied by the target
		{0, -1, 2},  // new
		{0, -1, 3},  // implied by the target plus the accepted row above
		{0, -2, -1}, // new
	}
	out, err := fm.Nontrivial(m, target)
	require.NoError(t, err)
	require.Equal(t, cone.Matrix{{0, -1, 2}, {0, -2, -1}}, out)
}

func TestNontrivial_EmptyWhenAllImplied(t *testing.T) {
	target := cone.NewSystem(3, 2)
	target.AddInequality(cone.Vector{0, 1, 0})
	target.AddInequality(cone.Vector{0, 0, 1})

	out, err := fm.Nontrivial(cone.Matrix{{0, 1, 2}, {0, 3, 1}}, target)
	require.NoError(t, err)
	require.Empty(t, out)
}
