// Package entcone enumerates non-trivial information inequalities on the
// joint Shannon entropies of a collection of random variables, by symbolic
// variable elimination on a polyhedral cone.
//
// 🚀 What is entcone?
//
//	A Fourier–Motzkin elimination engine over rational linear inequalities,
//	coupled with an LP-based redundancy oracle:
//		• Integer vectors & inequality systems with gcd-canonical rows
//		• LP oracle: "is this inequality implied?" via simplex (gonum)
//		• Elimination: project away one entropy coordinate at a time,
//		  picking columns by the Chernikov rank heuristic
//		• Minimization: reduce a system to a non-redundant generating set
//		• Generators: elemental Shannon inequalities & causal (CCA)
//		  conditional-independence constraints
//
// ✨ Why choose entcone?
//
//   - Deterministic – same input, same elimination order, same output
//   - Cooperative – long runs honor context cancellation & observer hooks
//   - Pure Go – simplex from gonum, no cgo LP bindings
//
// Under the hood, everything is organized under five subpackages:
//
//	cone/    — integer linear Vector & inequality System primitives
//	oracle/  — LP redundancy oracle (standard-form minimization)
//	fm/      — elimination step, driver, minimization, observers
//	shannon/ — elemental inequalities & layered causal-network generators
//	conefmt/ — textual matrix format ([ v0 v1 ... ]) parser & writer
//
// Quick sketch (two variables, columns indexed by subsets):
//
//	[   0  -1   0   1 ]   H(X₁|X₀) ≥ 0
//	[   0   0  -1   1 ]   H(X₀|X₁) ≥ 0
//	[   0   1   1  -1 ]   I(X₀:X₁) ≥ 0
//
// Dive into the package docs for the elimination algorithm, the redundancy
// theorem behind the oracle, and worked CCA examples.
//
//	go get github.com/katalvlaran/entcone
package entcone
