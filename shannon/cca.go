package shannon

import (
	"fmt"

	"github.com/katalvlaran/entcone/cone"
)

// checkLayers validates that the system's column count matches a
// two-layer split of nf final and ni initial variables.
func checkLayers(sys *cone.System, nf, ni int) error {
	if nf < 1 || ni < 0 || nf+ni > maxVars {
		return fmt.Errorf("%w: nf=%d ni=%d", ErrLayerShape, nf, ni)
	}
	if sys.NumCols() != 1<<(nf+ni) {
		return fmt.Errorf("%w: system has %d columns, want %d", ErrLayerShape, sys.NumCols(), 1<<(nf+ni))
	}

	return nil
}

// SetInitialIID adds the mutual-independence constraint of the initial
// layer: the joint entropy of the ni initial variables (the high bits,
// positions nf…nf+ni−1) equals the sum of their marginals. A single
// equality; a no-op for ni ≤ 1.
func SetInitialIID(sys *cone.System, nf, ni int) error {
	if err := checkLayers(sys, nf, ni); err != nil {
		return err
	}
	if ni <= 1 {
		return nil
	}

	v := cone.NewVector(sys.NumCols())
	v.Set((1<<ni-1)<<nf, -1)
	for c := 0; c < ni; c++ {
		v.Set(1<<(nf+c), 1)
	}
	sys.AddEquality(v)

	return nil
}

// AddCausalConstraints adds, for each final-layer variable i, the
// conditional independence from its non-descendants given its parents,
//
//	I(Xᵢ : Nd(i) | Pa(i)) = 0,
//
// written on joint entropies as
// H(Pa|Var) + H(Pa|Nd) − H(Pa) − H(all) = 0 (with | denoting set union
// of the index masks). The parent set is periodic with fan-in links:
// initial cells (i, i+1, …, i+links−1) mod ni. The canonical hexagonal
// layout
//
//	A0  A1  A2  A3
//	  B0  B1  B2  B3
//
// is links = 2.
func AddCausalConstraints(sys *cone.System, nf, ni, links int) error {
	if err := checkLayers(sys, nf, ni); err != nil {
		return err
	}
	if links < 1 || links > ni {
		return fmt.Errorf("%w: links=%d, ni=%d", ErrBadFanIn, links, ni)
	}

	all := sys.NumCols() - 1
	for i := 0; i < nf; i++ {
		v := cone.NewVector(sys.NumCols())
		vi := 1 << i
		pa := 0
		for j := 0; j < links; j++ {
			pa |= 1 << (nf + (i+j)%ni)
		}
		nd := all ^ (vi | pa)
		v.Set(pa|vi, 1)
		v.Set(pa|nd, 1)
		v.Set(pa, -1)
		v.Set(all, -1)
		sys.AddEquality(v)
	}

	return nil
}

// CCASystem composes the full initial description of a two-layer
// periodic CCA: elemental inequalities on nf+ni variables, the IID
// initial layer, and causal constraints with the given fan-in.
// Minimization is the caller's next step (fm.Minimize); the raw
// composition is returned as generated.
func CCASystem(nf, ni, links int) (*cone.System, error) {
	sys, err := Elemental(nf + ni)
	if err != nil {
		return nil, err
	}
	if err = SetInitialIID(sys, nf, ni); err != nil {
		return nil, err
	}
	if err = AddCausalConstraints(sys, nf, ni, links); err != nil {
		return nil, err
	}

	return sys, nil
}

// AppendInjected embeds each row of m into the system's coordinate space
// by the injection i ↦ i<<shift and appends it as an inequality. Used to
// constrain the initial layer of a new CCA layer with the inequalities
// already derived for the previous one.
func AppendInjected(sys *cone.System, m cone.Matrix, shift int) error {
	for _, v := range m {
		if shift < 0 || v.Len()<<shift > sys.NumCols() {
			return fmt.Errorf("%w: injecting %d columns <<%d into %d", ErrLayerShape, v.Len(), shift, sys.NumCols())
		}
		sys.AddInequality(v.Injection(sys.NumCols(), shift))
	}

	return nil
}
