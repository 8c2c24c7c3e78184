package fm

import "errors"

var (
	// ErrColumnRange indicates an elimination column outside the
	// system's current column range.
	ErrColumnRange = errors.New("fm: elimination column out of range")

	// ErrTargetRange indicates a SolveTo target outside [1, NumCols].
	// Column 0 is the unused padding column and is never eliminated.
	ErrTargetRange = errors.New("fm: target column count out of range")
)
