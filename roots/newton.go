package roots

import (
	"errors"
	"math"

	"github.com/btracey/rootfind/common"
)

// Newton finds a root by iterating x ← x − f(x)/f′(x), using the analytic
// derivative supplied with the function.
type Newton struct {
	f  EvalDeriver
	x0 float64

	tol float64

	x         float64
	zeroDeriv bool
}

// NewNewton creates a Newton-Raphson method starting from the estimate x0.
func NewNewton(f EvalDeriver, x0 float64) *Newton {
	return &Newton{f: f, x0: x0}
}

func (n *Newton) Init(tol float64) error {
	if n.f == nil {
		return errors.New("roots: newton: nil function")
	}
	n.tol = tol
	n.x = n.x0
	n.zeroDeriv = false
	return nil
}

// Iterate evaluates the function at the current estimate and, when the
// residual has not yet converged, forms the Newton update. The derivative
// is not evaluated for a candidate that already satisfies the tolerance.
func (n *Newton) Iterate() (loc, resid float64, nFunEvals int, err error) {
	loc = n.x
	fx := n.f.Eval(loc)
	resid = math.Abs(fx)
	if resid < n.tol {
		return loc, resid, 1, nil
	}

	dfx := n.f.Deriv(loc)
	if dfx == 0 {
		// Cannot safely divide; Status stops the run before the next step
		n.zeroDeriv = true
		return loc, resid, 2, nil
	}
	n.x = loc - fx/dfx
	return loc, resid, 2, nil
}

// Status reports ZeroDerivative once the update can no longer be formed.
func (n *Newton) Status() common.Status {
	if n.zeroDeriv {
		return common.ZeroDerivative
	}
	return common.Continue
}

func (n *Newton) Result() {}
