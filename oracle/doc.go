// Package oracle answers redundancy queries over a cone of linear
// inequalities by linear programming.
//
// The underlying theorem: over the cone {x : A·x ≥ 0}, an inequality
// c·x ≥ 0 is implied by the system iff c is a non-negative combination of
// the rows of A, which holds iff
//
//	min { cᵀx : A·x ≥ 0 } = 0,
//
// reported by the simplex method as an optimal (finite) solution. An
// unbounded-below result means c is not implied.
//
// The oracle keeps an ordered list of rows (inequalities with bounds, or
// equalities with a fixed right-hand side) addressable by handles, so a
// specific row can be deleted and re-added — the minimization pass's
// delete/test/re-add loop depends on this.
//
// Backend:
//
//	gonum.org/v1/gonum/optimize/convex/lp. Each query converts the free-
//	variable general form to standard form (lp.Convert) and solves with
//	lp.Simplex. The backend is stateless, so the oracle rebuilds the
//	constraint matrices per query; warm-starting is a possible future
//	optimization, not a correctness concern.
//
// Columns with no non-zero entry in any stored row (the unused padding
// column 0 in entropy systems, and any still-untouched coordinate) are
// excluded from the LP: an objective that is non-zero on such a column is
// unbounded by inspection and reported not redundant without a solve.
//
// Determinism: within a run the backend's tie-breaking is not part of the
// contract; callers may only rely on the boolean answer.
package oracle
