package cone

import "fmt"

// Matrix is an ordered list of rows, each read as "row(x) ≥ 0".
type Matrix []Vector

// NumCols returns the shared row width, or −1 for an empty matrix.
// A width mismatch between rows is a programmer error and panics; parsed
// input is validated by package conefmt before a Matrix is built.
func (m Matrix) NumCols() int {
	if len(m) == 0 {
		return -1
	}
	size := len(m[0])
	for _, v := range m {
		if len(v) != size {
			panic(fmt.Sprintf("cone: matrix row width %d, want %d", len(v), size))
		}
	}

	return size
}

// Copy returns a deep copy of the matrix.
func (m Matrix) Copy() Matrix {
	r := make(Matrix, len(m))
	for i, v := range m {
		r[i] = v.Copy()
	}

	return r
}

// System is a fixed column count plus an ordered list of inequality rows.
// Row order is a property of the system: elimination is deterministic
// given the order.
//
// A System owns its rows; vectors passed to AddInequality/AddEquality are
// adopted and must not be mutated by the caller afterwards.
type System struct {
	ncols int
	ineqs Matrix
}

// NewSystem allocates an empty system with the given column count and a
// capacity hint for the expected number of rows.
func NewSystem(ncols, hint int) *System {
	if ncols <= 0 {
		panic(fmt.Sprintf("cone: system with %d columns", ncols))
	}

	return &System{ncols: ncols, ineqs: make(Matrix, 0, hint)}
}

// FromMatrix adopts parsed rows as a system. The matrix must be non-empty
// and rectangular (guaranteed by conefmt.Parse).
func FromMatrix(m Matrix) *System {
	ncols := m.NumCols()
	if ncols < 0 {
		panic("cone: FromMatrix on empty matrix")
	}

	return &System{ncols: ncols, ineqs: m}
}

// NumCols returns the current column count.
func (s *System) NumCols() int { return s.ncols }

// Len returns the number of stored rows (equalities count twice).
func (s *System) Len() int { return len(s.ineqs) }

// Row returns the i-th row. The returned vector is still owned by the
// system; Copy before mutating.
func (s *System) Row(i int) Vector { return s.ineqs[i] }

// Rows returns the backing row list. It is owned by the system and is
// invalidated as a view by Reset/SetRows (the slice itself stays usable,
// which is what the elimination step relies on when it drains a system).
func (s *System) Rows() Matrix { return s.ineqs }

// AddInequality appends a row. All-zero rows are silently dropped (the
// trivial inequality 0 ≥ 0 carries no information). Width mismatches are
// programmer errors and panic.
func (s *System) AddInequality(v Vector) {
	if len(v) != s.ncols {
		panic(fmt.Sprintf("cone: row width %d, system has %d columns", len(v), s.ncols))
	}
	if v.Empty() {
		return
	}
	s.ineqs = append(s.ineqs, v)
}

// AddEquality appends the row and its negation, encoding row(x) = 0 as
// the inequality pair row(x) ≥ 0, −row(x) ≥ 0. All-zero rows are
// silently dropped.
func (s *System) AddEquality(v Vector) {
	if len(v) != s.ncols {
		panic(fmt.Sprintf("cone: row width %d, system has %d columns", len(v), s.ncols))
	}
	if v.Empty() {
		return
	}
	neg := make(Vector, len(v))
	for i, x := range v {
		neg[i] = -x
	}
	s.ineqs = append(s.ineqs, v, neg)
}

// SetRows replaces the row list in place, keeping the column count.
// Used by the minimization pass to commit a filtered row set.
func (s *System) SetRows(rows Matrix) {
	for _, v := range rows {
		if len(v) != s.ncols {
			panic(fmt.Sprintf("cone: row width %d, system has %d columns", len(v), s.ncols))
		}
	}
	s.ineqs = rows
}

// Reset drops all rows and adopts a new column count, reallocating the
// backing list with the given capacity hint. Previously obtained row
// slices remain valid (they are not cleared, merely disowned) — the
// elimination step drains a system this way before re-filling it.
func (s *System) Reset(ncols, hint int) {
	if ncols <= 0 {
		panic(fmt.Sprintf("cone: system reset to %d columns", ncols))
	}
	s.ncols = ncols
	s.ineqs = make(Matrix, 0, hint)
}

// Copy returns a deep clone.
func (s *System) Copy() *System {
	return &System{ncols: s.ncols, ineqs: s.ineqs.Copy()}
}

// String renders all rows in the textual matrix format, one per line.
func (s *System) String() string {
	out := make([]byte, 0, len(s.ineqs)*(4*s.ncols+4))
	for _, v := range s.ineqs {
		out = append(out, v.String()...)
		out = append(out, '\n')
	}

	return string(out)
}
