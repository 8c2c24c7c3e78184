package shannon

import "errors"

var (
	// ErrTooFewVariables indicates a generator was asked for fewer than
	// two random variables; the subset enumeration needs at least a pair.
	ErrTooFewVariables = errors.New("shannon: at least 2 variables required")

	// ErrTooManyVariables indicates a variable count whose 2ᴺ-column
	// space exceeds what the engine addresses with int indices.
	ErrTooManyVariables = errors.New("shannon: variable count too large")

	// ErrLayerShape indicates layer sizes that do not match the system's
	// column count (the system must have 2^(nf+ni) columns), or injected
	// rows that do not fit the target coordinate space.
	ErrLayerShape = errors.New("shannon: layer shape mismatch")

	// ErrBadFanIn indicates a causal fan-in outside [1, ni].
	ErrBadFanIn = errors.New("shannon: fan-in out of range")
)
