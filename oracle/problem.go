package oracle

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/katalvlaran/entcone/cone"
)

// simplexTol is the reduced-cost tolerance handed to lp.Simplex. The
// coefficients are small integers widened to float64, so a tight
// tolerance is safe.
const simplexTol = 1e-10

// Row is a handle to a constraint row, returned on addition so that the
// same row can later be deleted. Handles are never reused within one
// Problem.
type Row int

type rowKind uint8

const (
	kindInequality rowKind = iota
	kindEquality
)

type entry struct {
	id     Row
	kind   rowKind
	coeffs []float64
	lb, ub float64 // for kindEquality, lb == ub == rhs
}

// Problem is a real-valued standard-form minimization problem over
// unconstrained variables: minimize cᵀx subject to the stored rows, each
// of the form lb ≤ row·x ≤ ub (inequality) or row·x = rhs (equality),
// x ∈ ℝⁿᶜᵒˡˢ free.
//
// Not safe for concurrent use; a Problem is owned by one computation.
type Problem struct {
	ncols   int
	nextID  Row
	entries []entry     // insertion order, the system's row order
	index   map[Row]int // handle → position in entries
}

// New allocates an empty problem over ncols free variables.
func New(ncols int) *Problem {
	if ncols <= 0 {
		panic(fmt.Sprintf("oracle: problem with %d columns", ncols))
	}

	return &Problem{ncols: ncols, index: make(map[Row]int)}
}

// FromSystem materializes the oracle of a system: one inequality row per
// system row, in the system's row order. The returned problem is a fresh
// object and does not alias the system's rows.
func FromSystem(s *cone.System) *Problem {
	p := New(s.NumCols())
	for _, v := range s.Rows() {
		p.AddInequality(v)
	}

	return p
}

// NumCols returns the column count.
func (p *Problem) NumCols() int { return p.ncols }

// NumRows returns the number of currently stored rows.
func (p *Problem) NumRows() int { return len(p.entries) }

// AddInequality appends the constraint row·x ≥ 0 and returns its handle.
func (p *Problem) AddInequality(v cone.Vector) Row {
	return p.AddInequalityBounds(v, 0, math.Inf(1))
}

// AddInequalityBounds appends lb ≤ row·x ≤ ub and returns its handle.
func (p *Problem) AddInequalityBounds(v cone.Vector, lb, ub float64) Row {
	return p.add(v, kindInequality, lb, ub)
}

// AddEquality appends row·x = rhs and returns its handle.
func (p *Problem) AddEquality(v cone.Vector, rhs float64) Row {
	return p.add(v, kindEquality, rhs, rhs)
}

func (p *Problem) add(v cone.Vector, kind rowKind, lb, ub float64) Row {
	if v.Len() != p.ncols {
		panic(fmt.Sprintf("oracle: row width %d, problem has %d columns", v.Len(), p.ncols))
	}
	id := p.nextID
	p.nextID++
	p.index[id] = len(p.entries)
	p.entries = append(p.entries, entry{id: id, kind: kind, coeffs: v.Floats(), lb: lb, ub: ub})

	return id
}

// DelRow deletes the row with the given handle, preserving the order of
// the remaining rows. Deleting an unknown or already-deleted handle is a
// programmer error and panics.
// Complexity: O(rows).
func (p *Problem) DelRow(id Row) {
	at, ok := p.index[id]
	if !ok {
		panic(fmt.Sprintf("oracle: DelRow of unknown handle %d", id))
	}
	delete(p.index, id)
	p.entries = append(p.entries[:at], p.entries[at+1:]...)
	for i := at; i < len(p.entries); i++ {
		p.index[p.entries[i].id] = i
	}
}

// IsRedundant sets the objective to v and solves. It returns true iff the
// simplex reports an optimal solution, i.e. v·x ≥ 0 is implied by the
// stored rows. An unbounded result, and numerically inconclusive
// outcomes, report false (the inequality is kept). Backend failures
// surface as ErrSolver.
func (p *Problem) IsRedundant(v cone.Vector) (bool, error) {
	if v.Len() != p.ncols {
		panic(fmt.Sprintf("oracle: objective width %d, problem has %d columns", v.Len(), p.ncols))
	}
	obj := v.Floats()

	// Contributing rows: equalities always; inequalities unless both
	// bounds are infinite (a free row constrains nothing).
	contrib := make([]int, 0, len(p.entries))
	for i, e := range p.entries {
		if e.kind == kindInequality && math.IsInf(e.lb, -1) && math.IsInf(e.ub, 1) {
			continue
		}
		contrib = append(contrib, i)
	}

	// Support columns: touched by at least one contributing row. The
	// split of free variables in lp.Convert would turn any other column
	// into an all-zero column of the standard form, which the simplex
	// rejects — and the answer there is known anyway.
	colOf := make([]int, p.ncols)
	for j := range colOf {
		colOf[j] = -1
	}
	var support []int
	for _, i := range contrib {
		for j, c := range p.entries[i].coeffs {
			if c != 0 && colOf[j] < 0 {
				colOf[j] = len(support)
				support = append(support, j)
			}
		}
	}

	// A non-zero objective entry on an unconstrained coordinate can be
	// driven to −∞: not redundant, no solve needed.
	objZero := true
	for j, c := range obj {
		if c == 0 {
			continue
		}
		objZero = false
		if colOf[j] < 0 {
			return false, nil
		}
	}
	if objZero {
		return true, nil // 0 ≥ 0 holds in any system
	}

	// General form over the support columns:
	//   G·x ≤ h  collects  −row·x ≤ −lb  and  row·x ≤ ub,
	//   A·x = b  collects the equality rows.
	nsup := len(support)
	var (
		gData, aData []float64
		h, b         []float64
	)
	for _, i := range contrib {
		e := p.entries[i]
		projected := make([]float64, nsup)
		for k, j := range support {
			projected[k] = e.coeffs[j]
		}
		switch e.kind {
		case kindEquality:
			aData = append(aData, projected...)
			b = append(b, e.lb)
		default:
			if !math.IsInf(e.lb, -1) {
				for _, c := range projected {
					gData = append(gData, -c)
				}
				h = append(h, -e.lb)
			}
			if !math.IsInf(e.ub, 1) {
				gData = append(gData, projected...)
				h = append(h, e.ub)
			}
		}
	}

	objS := make([]float64, nsup)
	for k, j := range support {
		objS[k] = obj[j]
	}

	var g, a mat.Matrix
	if len(h) > 0 {
		g = mat.NewDense(len(h), nsup, gData)
	}
	if len(b) > 0 {
		a = mat.NewDense(len(b), nsup, aData)
	}
	cStd, aStd, bStd := lp.Convert(objS, g, h, a, b)

	_, _, err := lp.Simplex(cStd, aStd, bStd, simplexTol, nil)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, lp.ErrUnbounded):
		return false, nil
	case errors.Is(err, lp.ErrBland), errors.Is(err, lp.ErrLinSolve):
		// Numerically stuck, no verdict: keep the inequality.
		return false, nil
	default:
		return false, fmt.Errorf("%w: %s", ErrSolver, err)
	}
}
