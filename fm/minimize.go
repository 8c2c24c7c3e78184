package fm

import (
	"fmt"

	"github.com/katalvlaran/entcone/cone"
	"github.com/katalvlaran/entcone/oracle"
)

// Minimize reduces the system in place to a minimal generating set: no
// remaining row is implied by the others, and the cone {x : rows·x ≥ 0}
// is unchanged. Idempotent.
//
// Rows are probed from the last to the first: each is deleted from the
// oracle, dropped for good if the remaining rows imply it, and re-added
// otherwise. Probing back-to-front means rows added late (typically the
// combined, more specific ones) are discarded in favour of earlier
// generators where either would do.
//
// Complexity: O(rows) LP solves.
func Minimize(sys *cone.System, opts *Options) error {
	opt := opts.normalized()

	rows := append(cone.Matrix(nil), sys.Rows()...)
	lp := oracle.New(sys.NumCols())
	handles := make([]oracle.Row, len(rows))
	for i, v := range rows {
		handles[i] = lp.AddInequality(v)
	}

	round := 0
	for i := len(rows) - 1; i >= 0; i-- {
		opt.Observer.OnMinimizeStart(round, len(rows))
		round++
		if err := opt.Ctx.Err(); err != nil {
			sys.SetRows(rows)
			return err
		}

		lp.DelRow(handles[i])
		red, err := lp.IsRedundant(rows[i])
		if err != nil {
			sys.SetRows(rows)
			return fmt.Errorf("fm: minimize row %d: %w", i, err)
		}
		if red {
			rows = append(rows[:i], rows[i+1:]...)
			handles = append(handles[:i], handles[i+1:]...)
		} else {
			handles[i] = lp.AddInequality(rows[i])
		}
	}
	sys.SetRows(rows)

	return nil
}
