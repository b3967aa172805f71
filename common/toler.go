package common

import "math"

// ResidToler checks the convergence of the residual |f(x)| against an
// absolute tolerance. It also remembers the best residual seen so far.
type ResidToler struct {
	absTol float64

	recent float64
	best   float64
}

// Init initializes the ResidToler. If the absolute tolerance is NaN or
// non-positive it is ignored and Converged always returns false.
func (t *ResidToler) Init(absTol, initVal float64) {
	t.absTol = absTol
	t.recent = initVal
	t.best = initVal
}

// Add adds a new residual value to the toler (after an iteration)
func (t *ResidToler) Add(v float64) {
	t.recent = v
	if v < t.best {
		t.best = v
	}
}

// Converged returns true if the most recent residual is below the
// absolute tolerance
func (t *ResidToler) Converged() bool {
	if math.IsNaN(t.absTol) || t.absTol <= 0 {
		return false
	}
	return t.recent < t.absTol
}

// Recent returns the most recently added residual.
func (t *ResidToler) Recent() float64 {
	return t.recent
}

// Best returns the smallest residual added since Init.
func (t *ResidToler) Best() float64 {
	return t.best
}
