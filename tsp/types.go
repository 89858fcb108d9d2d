package tsp

import "errors"

// Sentinel errors shared by every optimizer. Optimizers wrap them with context
// via fmt.Errorf("...: %w", ErrX); callers match with errors.Is.
var (
	// ErrInvalidConfig is returned when optimizer options are out of range
	// (population < 3, budgets ≤ 0, Tf ≤ 0 or T0 ≤ Tf, alpha ∉ (0,1), ...).
	ErrInvalidConfig = errors.New("tsp: invalid configuration")

	// ErrDegenerateInput is returned when the instance admits no meaningful
	// search: fewer than 3 cities, fewer than 2 distinct cities, or a tour whose
	// length evaluates to zero.
	ErrDegenerateInput = errors.New("tsp: degenerate input")

	// ErrNonSquare is returned when the distance matrix is nil or not n×n.
	ErrNonSquare = errors.New("tsp: distance matrix is not square")

	// ErrDimensionMismatch is returned for tours that are not permutations of
	// 0..n-1, and for NaN/±Inf matrix entries.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrNegativeWeight is returned for negative off-diagonal distances.
	ErrNegativeWeight = errors.New("tsp: negative distance")

	// ErrNonZeroDiagonal is returned when some d(i,i) is not zero.
	ErrNonZeroDiagonal = errors.New("tsp: non-zero diagonal")

	// ErrAsymmetry is returned by routines that require d(i,j) == d(j,i).
	ErrAsymmetry = errors.New("tsp: distance matrix is not symmetric")
)
