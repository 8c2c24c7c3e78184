package fm

import (
	"fmt"

	"github.com/katalvlaran/entcone/cone"
	"github.com/katalvlaran/entcone/oracle"
)

// Eliminate projects column col out of the system in place: rows with a
// zero coefficient survive (minus the column), and every ordered pair of
// a positive-coefficient and a negative-coefficient row contributes its
// cancelling combination unless the rows kept so far already imply it.
//
// On return the system has one column fewer and describes the projection
// of the original cone. On cancellation the system is left valid with
// the candidates committed so far.
//
// Complexity: O(pos·neg) candidate combinations, one LP solve each.
func Eliminate(sys *cone.System, col int, opts *Options) error {
	opt := opts.normalized()
	if col < 0 || col >= sys.NumCols() {
		return fmt.Errorf("%w: column %d of %d", ErrColumnRange, col, sys.NumCols())
	}

	// Drain the current rows and partition by sign at col. Zero rows are
	// committed immediately; they survive the projection unchanged.
	rows := sys.Rows()
	sys.Reset(sys.NumCols()-1, len(rows))
	var pos, neg cone.Matrix
	for _, v := range rows {
		switch val := v.Get(col); {
		case val > 0:
			pos = append(pos, v)
		case val < 0:
			neg = append(neg, v)
		default:
			sys.AddInequality(v.Remove(col))
		}
	}

	stats := StepStats{Column: col, Rows: len(rows), Pos: len(pos), Neg: len(neg), Zero: sys.Len()}
	opt.Observer.OnEliminateStart(stats)

	// The oracle starts from the surviving rows and grows with every
	// committed candidate, so each check is against the full current
	// description.
	lp := oracle.FromSystem(sys)

	total := stats.Candidates()
	done := 0
	for _, p := range pos {
		for _, n := range neg {
			opt.Observer.OnCheckStart(done, total)
			if err := opt.Ctx.Err(); err != nil {
				return err
			}
			done++

			w := p.Eliminate(n, col)
			if w.Empty() {
				continue
			}
			red, err := lp.IsRedundant(w)
			if err != nil {
				return fmt.Errorf("fm: eliminate column %d: %w", col, err)
			}
			if !red {
				lp.AddInequality(w)
				sys.AddInequality(w)
			}
		}
	}

	return nil
}
