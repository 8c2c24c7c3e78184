package oracle

import "errors"

// ErrSolver is returned when the LP backend reports an internal failure
// (singular basis, structurally broken standard form) rather than a
// verdict. It is a distinct kind: callers treat it as fatal, never as
// "not redundant". Match with errors.Is; the wrapped message carries the
// backend's diagnosis.
//
// Numerically inconclusive outcomes (stalled pivoting, failed linear
// solves) are NOT ErrSolver: the oracle conservatively reports those as
// "not redundant", which keeps the inequality and preserves the cone.
var ErrSolver = errors.New("oracle: solver failure")
