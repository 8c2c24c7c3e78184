// Package fm implements Fourier–Motzkin elimination over integer
// inequality systems, with LP-based redundancy pruning.
//
// Algorithm outline (one step, Eliminate):
//
//  1. Partition the rows by the sign of their coefficient at the chosen
//     column: zero / positive / negative.
//  2. Rows with a zero coefficient survive unchanged (minus the column).
//  3. Build a redundancy oracle from the surviving rows.
//  4. For every ordered pair (p, n) of a positive and a negative row,
//     form the positive combination that cancels the column
//     (cone.Vector.Eliminate). Candidates the oracle already implies are
//     discarded; the rest are committed to both the system and the
//     oracle.
//
// Driver (SolveTo):
//
//	Repeatedly pick the candidate column with the smallest Chernikov
//	rank pos·neg − (pos+neg) — an estimate of the net row growth — and
//	run one elimination step, until the target column count is reached.
//	Ties break to the lowest index, keeping runs reproducible. The
//	chosen order is returned.
//
// Minimization (Minimize):
//
//	Walk the rows from last to first; temporarily delete each from the
//	oracle and drop it for good if the remaining rows imply it. The
//	result is a minimal generating set of the same cone.
//
// Why LP pruning: naive FM grows rows as O(pos·neg) per step; without
// redundancy checks at insertion the growth compounds and later steps
// become unreachable. The check keeps the generated set close to the
// minimal facet description of the projected cone.
//
// Cancellation & observation:
//
//	All three operations take Options carrying a context.Context and an
//	Observer. The context is consulted only at observer boundaries
//	(driver step, pairwise check, minimization round), between atomic
//	updates, so a cancelled run always leaves the System valid —
//	partially reduced, never half-committed. Cancellation surfaces as
//	context.Canceled / context.DeadlineExceeded.
//
// The package is single-threaded and synchronous: a System and the
// oracle derived from it are owned by exactly one computation at a time.
package fm
