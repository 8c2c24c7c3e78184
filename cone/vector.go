package cone

import (
	"fmt"
	"strings"
)

// Value is the coefficient type of all linear forms. Signed 64-bit
// integers absorb the pairwise combinations produced by elimination for
// the problem sizes this engine targets (coefficients stay small because
// Eliminate renormalizes every combined row by gcd).
type Value = int64

// Vector is a dense sequence of integer coefficients of fixed length,
// representing the inequality Σᵢ v[i]·xᵢ ≥ 0.
//
// The zero-length Vector is valid and Empty.
type Vector []Value

// NewVector returns an all-zero vector of the given length.
// Complexity: O(size).
func NewVector(size int) Vector {
	if size < 0 {
		panic(fmt.Sprintf("cone: negative vector size %d", size))
	}

	return make(Vector, size)
}

// Len returns the number of coefficients.
func (v Vector) Len() int { return len(v) }

// Get returns the coefficient at column i.
func (v Vector) Get(i int) Value { return v[i] }

// Set assigns the coefficient at column i.
func (v Vector) Set(i int, val Value) { v[i] = val }

// Empty reports whether every coefficient is zero.
// Complexity: O(n).
func (v Vector) Empty() bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}

	return true
}

// Copy returns an independent copy of v.
// Complexity: O(n).
func (v Vector) Copy() Vector {
	r := make(Vector, len(v))
	copy(r, v)

	return r
}

// Equal reports componentwise equality. Panics on length mismatch
// (comparing rows of different systems is a programmer error).
func (v Vector) Equal(w Vector) bool {
	if len(v) != len(w) {
		panic(fmt.Sprintf("cone: Equal on lengths %d and %d", len(v), len(w)))
	}
	for i, x := range v {
		if x != w[i] {
			return false
		}
	}

	return true
}

// Remove deletes column i, shrinking the vector by one.
// The receiver is left untouched; the shrunk vector is returned.
// Complexity: O(n).
func (v Vector) Remove(i int) Vector {
	if i < 0 || i >= len(v) {
		panic(fmt.Sprintf("cone: Remove column %d out of range [0,%d)", i, len(v)))
	}
	r := make(Vector, len(v)-1)
	copy(r, v[:i])
	copy(r[i:], v[i+1:])

	return r
}

// Normalize divides all coefficients by their gcd in place, producing the
// primitive integer representative of the same inequality. All-zero
// vectors are unchanged. Idempotent.
// Complexity: O(n) plus one gcd chain (early exit once the gcd hits 1).
func (v Vector) Normalize() {
	var div Value
	for _, x := range v {
		div = gcd(div, abs(x))
		if div == 1 {
			return
		}
	}
	if div > 1 {
		for i := range v {
			v[i] /= div
		}
	}
}

// Eliminate combines v with other so that column i cancels, producing the
// primitive representative of the positive combination
//
//	w = (|bᵢ|/d)·v + s·(|aᵢ|/d)·other,  s = −sgn(aᵢ·bᵢ),  d = gcd(|aᵢ|,|bᵢ|),
//
// where aᵢ = v.Get(i) and bᵢ = other.Get(i). The result is normalized and
// column i is removed, so w has length len(v)−1.
//
// Precondition: aᵢ and bᵢ are non-zero and of strictly opposite signs.
// Violations (and length mismatches) are programmer errors and panic.
// Complexity: O(n).
func (v Vector) Eliminate(other Vector, i int) Vector {
	if len(v) != len(other) {
		panic(fmt.Sprintf("cone: Eliminate on lengths %d and %d", len(v), len(other)))
	}
	a, b := v[i], other[i]
	if a == 0 || b == 0 {
		panic(fmt.Sprintf("cone: Eliminate with zero coefficient at column %d", i))
	}
	if (a > 0) == (b > 0) {
		panic(fmt.Sprintf("cone: Eliminate with same-sign coefficients at column %d", i))
	}

	// With aᵢ·bᵢ < 0 the sign factor −sgn(aᵢ·bᵢ) is +1, so the
	// combination is a positive one on both sides.
	a, b = abs(a), abs(b)
	d := gcd(a, b)
	sv, so := b/d, a/d

	r := make(Vector, len(v))
	for j := range v {
		r[j] = sv*v[j] + so*other[j]
	}
	r.Normalize()

	return r.Remove(i)
}

// Injection embeds v into a larger coordinate space: the coefficient at
// index i lands at index i<<shift of the result, all other entries zero.
// Used to re-embed a solved layer of a causal network as the initial
// layer of the next one.
//
// Panics unless newDim ≥ len(v)<<shift.
// Complexity: O(newDim).
func (v Vector) Injection(newDim, shift int) Vector {
	if newDim < len(v)<<shift {
		panic(fmt.Sprintf("cone: Injection into dim %d < %d<<%d", newDim, len(v), shift))
	}
	r := make(Vector, newDim)
	for i, x := range v {
		if x != 0 {
			r[i<<shift] = x
		}
	}

	return r
}

// Floats returns the coefficients widened to float64, in a fresh slice.
// Used by the LP oracle, whose backend works over reals.
func (v Vector) Floats() []float64 {
	r := make([]float64, len(v))
	for i, x := range v {
		r[i] = float64(x)
	}

	return r
}

// String renders the row in the textual matrix format: "[ v0 v1 ... ]"
// with each coefficient right-aligned to three columns.
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteString("[ ")
	for _, x := range v {
		fmt.Fprintf(&sb, "%3d ", x)
	}
	sb.WriteString("]")

	return sb.String()
}

// abs returns |a|.
func abs(a Value) Value {
	if a < 0 {
		return -a
	}

	return a
}

// gcd returns the greatest common divisor by Euclid's algorithm, with the
// convention gcd(0, a) = a.
func gcd(a, b Value) Value {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
