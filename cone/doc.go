// Package cone provides the integer primitives of the elimination engine:
// dense linear forms (Vector) and ordered inequality systems (System) over
// a column space indexed by subsets of {0,…,N−1}.
//
// Conventions:
//
//   - A Vector v of length ncols represents the linear form
//     v(x) = Σᵢ v[i]·xᵢ, read as the inequality v(x) ≥ 0.
//   - Entropy coordinates are indexed by non-empty subsets S ⊆ {0,…,N−1},
//     encoded as the integer whose bit i is set iff i ∈ S. Column 0 (the
//     empty set) is unused padding; a freshly generated elemental system
//     therefore has 2ᴺ columns.
//   - Normalize and Eliminate leave the coefficients primitive: the gcd
//     of the non-zero entries is 1 (all-zero vectors excepted). Set,
//     Remove, Injection and System.AddInequality do not renormalize.
//   - Equalities are not stored separately: System.AddEquality appends the
//     row and its negation, so the elimination driver treats every row
//     uniformly.
//
// Ownership:
//
//	Rows are owned values. A Vector added to a System is adopted by it;
//	callers that need to keep a row use Copy. Combination (Eliminate,
//	Injection) always produces a fresh owned Vector. This discipline is
//	what keeps the append-heavy elimination workload alias-free.
//
// Failure modes:
//
//	Size mismatches between in-process vectors and violated elimination
//	preconditions are programmer errors and panic. User-input validation
//	(file parsing) lives in package conefmt and returns errors.
package cone
