package shannon

import (
	"fmt"

	"github.com/katalvlaran/entcone/cone"
)

// Permute returns the row with variables renamed by perm: the coefficient
// at subset index p moves to the index obtained by replacing each member
// variable k with perm[k]. perm must be a permutation of 0…numVars−1 and
// v must have 2^len(perm) columns; violations are programmer errors and
// panic.
//
// Complexity: O(2ᴺ·N).
func Permute(v cone.Vector, perm []int) cone.Vector {
	numVars := len(perm)
	if v.Len() != 1<<numVars {
		panic(fmt.Sprintf("shannon: Permute of %d columns with %d variables", v.Len(), numVars))
	}
	seen := make([]bool, numVars)
	for _, t := range perm {
		if t < 0 || t >= numVars || seen[t] {
			panic(fmt.Sprintf("shannon: Permute with invalid permutation %v", perm))
		}
		seen[t] = true
	}

	r := cone.NewVector(v.Len())
	for p := 0; p < v.Len(); p++ {
		x := v.Get(p)
		if x == 0 {
			continue
		}
		q := 0
		for k := 0; k < numVars; k++ {
			if p&(1<<k) != 0 {
				q |= 1 << perm[k]
			}
		}
		r.Set(q, x)
	}

	return r
}

// LayerPerm returns the variable permutation that rotates every
// width-sized layer of numVars variables by shift cells: within each
// layer, cell k maps to cell (k+shift) mod width. For a two-layer CCA of
// width w, LayerPerm(2w, w, s) is the periodic shift by s applied to
// both layers at once.
//
// width must divide numVars; violations panic.
func LayerPerm(numVars, width, shift int) []int {
	if width <= 0 || numVars%width != 0 {
		panic(fmt.Sprintf("shannon: LayerPerm width %d does not divide %d", width, numVars))
	}
	perm := make([]int, numVars)
	for base := 0; base < numVars; base += width {
		for k := 0; k < width; k++ {
			perm[base+k] = base + (k+shift%width+width)%width
		}
	}

	return perm
}
