package shannon

import (
	"fmt"

	"github.com/katalvlaran/entcone/cone"
)

// maxVars caps the variable count so that subset indices (and the 2ᴺ
// column count) stay comfortably inside int range. Far beyond anything
// the elimination engine can chew through anyway.
const maxVars = 30

// NumElemental returns the number of elemental inequalities for numVars
// random variables: numVars conditional entropies plus C(N,2)·2^(N−2)
// conditional mutual informations.
func NumElemental(numVars int) int {
	if numVars < 2 {
		return numVars // only the conditional entropies exist
	}

	return numVars + Choose(numVars, 2)*(1<<(numVars-2))
}

// Elemental returns the system of all elemental Shannon inequalities for
// numVars random variables: 2^numVars columns (column 0 unused), one row
// per inequality, in a fixed deterministic order — conditional entropies
// H(Xᵢ|X_rest) first, then I(Xₐ:X_b|X_K) ordered by (a, b, K-enumerator).
func Elemental(numVars int) (*cone.System, error) {
	if numVars < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewVariables, numVars)
	}
	if numVars > maxVars {
		return nil, fmt.Errorf("%w: got %d, max %d", ErrTooManyVariables, numVars, maxVars)
	}

	// The entropy region of N variables is 2ᴺ−1 dimensional; with the
	// unused empty-set column the system is 2ᴺ wide and every column
	// index reads as the variable subset it denotes.
	dim := 1<<numVars - 1
	subDim := 1 << (numVars - 2)
	ncols := dim + 1
	all := dim

	sys := cone.NewSystem(ncols, NumElemental(numVars))

	// H(Xᵢ | X_c) ≥ 0 where c = all \ {i}.
	for i := 0; i < numVars; i++ {
		v := cone.NewVector(ncols)
		v.Set(all, 1)
		v.Set(all^(1<<i), -1)
		sys.AddInequality(v)
	}

	// I(Xₐ : X_b | X_K) ≥ 0 for a < b and K ⊆ rest, enumerated by
	// lifting an (N−2)-bit counter around the holes a and b.
	for a := 0; a < numVars-1; a++ {
		for b := a + 1; b < numVars; b++ {
			A, B := 1<<a, 1<<b
			for i := 0; i < subDim; i++ {
				K := SkipBit(SkipBit(i, a), b)
				v := cone.NewVector(ncols)
				v.Set(A|K, 1)
				v.Set(B|K, 1)
				v.Set(A|B|K, -1)
				if K != 0 {
					v.Set(K, -1)
				}
				sys.AddInequality(v)
			}
		}
	}

	return sys, nil
}
