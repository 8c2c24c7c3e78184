package fm

import (
	"fmt"

	"github.com/katalvlaran/entcone/cone"
)

// SolveTo eliminates columns from the system until at most target remain,
// choosing each column by the Chernikov rank heuristic. It returns the
// columns in elimination order (indices are relative to the shrinking
// system, exactly as eliminated).
//
// Candidate columns are the trailing ones, [target, NumCols): the leading
// target columns are the coordinates the projection keeps. On
// cancellation the recorded order so far is returned together with the
// context error, and the system is valid and partially reduced.
func SolveTo(sys *cone.System, target int, opts *Options) ([]int, error) {
	opt := opts.normalized()
	if target < 1 || target > sys.NumCols() {
		return nil, fmt.Errorf("%w: target %d, system has %d columns", ErrTargetRange, target, sys.NumCols())
	}

	opt.Observer.OnSolveStart(sys.NumCols(), target)

	order := make([]int, 0, sys.NumCols()-target)
	for step := 0; sys.NumCols() > target; step++ {
		if err := opt.Ctx.Err(); err != nil {
			return order, err
		}

		best, bestRank := target, rank(sys, target)
		for i := target + 1; i < sys.NumCols(); i++ {
			if r := rank(sys, i); r < bestRank {
				best, bestRank = i, r
			}
		}
		opt.Observer.OnStepStart(step, best)

		if err := Eliminate(sys, best, opts); err != nil {
			return order, err
		}
		order = append(order, best)
	}

	return order, nil
}

// rank is the Chernikov cost of eliminating column i next:
// pos·neg − (pos+neg), the pairwise combinations generated minus the rows
// that disappear. The driver picks the minimum; the first column in
// ascending index order wins ties.
func rank(sys *cone.System, i int) int {
	var pos, neg int
	for _, v := range sys.Rows() {
		switch val := v.Get(i); {
		case val > 0:
			pos++
		case val < 0:
			neg++
		}
	}

	return pos*neg - (pos + neg)
}
