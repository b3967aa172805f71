package roots

import (
	"errors"
	"math"

	"github.com/btracey/rootfind/common"
)

// Bisection finds a root by repeatedly halving a bracketing interval whose
// endpoints have function values of opposite sign. Each iteration examines
// the midpoint of the working bracket and keeps the half that still
// contains the sign change.
type Bisection struct {
	f    Evaler
	a, b float64

	tol float64

	lo, hi float64
	flo    float64
}

// NewBisection creates a bisection method over the initial bracket [a, b].
func NewBisection(f Evaler, a, b float64) *Bisection {
	return &Bisection{f: f, a: a, b: b}
}

// Init evaluates the endpoints and checks the opposite-sign precondition
// f(a)·f(b) < 0. An endpoint that is itself an exact root fails the check;
// callers wanting an exact-root short circuit must test the endpoints
// themselves before constructing the method.
func (b *Bisection) Init(tol float64) error {
	if b.f == nil {
		return errors.New("roots: bisection: nil function")
	}
	fa := b.f.Eval(b.a)
	fb := b.f.Eval(b.b)
	if fa*fb >= 0 {
		return &InvalidBracketError{A: b.a, B: b.b, FA: fa, FB: fb}
	}

	b.tol = tol
	b.lo = b.a
	b.hi = b.b
	b.flo = fa
	return nil
}

// Iterate evaluates the midpoint of the working bracket and halves the
// bracket toward the sign change. The bracket is left untouched when the
// midpoint already satisfies the tolerance. The stored endpoint value is
// carried along with lo, so each iteration costs one function evaluation.
func (b *Bisection) Iterate() (loc, resid float64, nFunEvals int, err error) {
	c := (b.lo + b.hi) / 2
	fc := b.f.Eval(c)
	resid = math.Abs(fc)
	if resid < b.tol {
		return c, resid, 1, nil
	}
	if b.flo*fc < 0 {
		// Sign change in [lo, c]
		b.hi = c
	} else {
		// Sign change in [c, hi]. An exactly zero product lands here too,
		// mirroring the strict test on the other branch
		b.lo = c
		b.flo = fc
	}
	return c, resid, 1, nil
}

func (b *Bisection) Status() common.Status { return common.Continue }

func (b *Bisection) Result() {}
