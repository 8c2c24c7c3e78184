// Package shannon generates the polyhedral descriptions the elimination
// engine consumes: elemental Shannon inequalities and the structural
// constraints of layered causal networks (CCAs).
//
// Coordinate convention:
//
//	For N random variables, entropy coordinates are indexed by non-empty
//	subsets S ⊆ {0,…,N−1}, encoded as the integer with bit i set iff
//	i ∈ S. Systems carry 2ᴺ columns; column 0 (the empty set) is unused
//	padding, which keeps the bit representation of an index equal to the
//	variable set it denotes.
//
// Generators:
//
//   - Elemental: the standard positivities of Shannon information —
//     H(Xᵢ | X_rest) ≥ 0 for each variable, and I(Xₐ : X_b | X_K) ≥ 0
//     for each pair a < b and each subset K of the rest. That is
//     N + C(N,2)·2^(N−2) rows, each primitive with at most four
//     non-zero entries.
//
//   - CCA structure: a two-layer network with nf final-layer variables
//     (low bits) and ni initial-layer variables (high bits).
//     SetInitialIID adds the single equality making the initial layer
//     mutually independent; AddCausalConstraints adds, per final
//     variable, the conditional independence from its non-descendants
//     given its parents, I(Xᵢ : Nd(i) | Pa(i)) = 0, with a periodic
//     fan-in of `links` consecutive initial cells (the hexagonal layout
//     A0 A1 A2 … over B0 B1 B2 … is links = 2).
//
//   - AppendInjected: embeds the inequalities of an already-solved layer
//     as constraints on the initial layer of the next one, via the
//     coordinate injection i ↦ i<<shift.
//
//   - Permute / LayerPerm: variable renamings, used by the
//     shift-invariance sanity check on periodic solutions.
package shannon
