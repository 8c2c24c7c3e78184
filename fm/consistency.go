package fm

import (
	"fmt"

	"github.com/katalvlaran/entcone/cone"
	"github.com/katalvlaran/entcone/oracle"
)

// Implied returns the indexes of the rows of m that the problem implies.
// Used as a consistency check after a full elimination run: every row of
// the reduced system, re-embedded into the original coordinate space,
// must be implied by the original system (no false positives).
func Implied(p *oracle.Problem, m cone.Matrix) ([]int, error) {
	var idx []int
	for i, v := range m {
		red, err := p.IsRedundant(v)
		if err != nil {
			return idx, fmt.Errorf("fm: implied row %d: %w", i, err)
		}
		if red {
			idx = append(idx, i)
		}
	}

	return idx, nil
}

// Nontrivial filters m down to the rows that the target system does not
// already imply. Accepted rows join the target's oracle as they are
// found, so a row implied only together with earlier accepted rows still
// counts as trivial. The relative order of m is preserved.
//
// Typical use: with target the elemental inequalities of the reduced
// variable set, the result is the list of genuinely new information
// inequalities discovered by elimination.
func Nontrivial(m cone.Matrix, target *cone.System) (cone.Matrix, error) {
	lp := oracle.FromSystem(target)
	var out cone.Matrix
	for i, v := range m {
		red, err := lp.IsRedundant(v)
		if err != nil {
			return out, fmt.Errorf("fm: nontrivial row %d: %w", i, err)
		}
		if red {
			continue
		}
		lp.AddInequality(v)
		out = append(out, v.Copy())
	}

	return out, nil
}
