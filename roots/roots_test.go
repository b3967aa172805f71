package roots

import "math"

// cubic is f(x) = x³ − 2x − 5, with a single real root near 2.0945515.
type cubic struct{}

func (cubic) Eval(x float64) float64  { return x*x*x - 2*x - 5 }
func (cubic) Deriv(x float64) float64 { return 3*x*x - 2 }

func (cubic) Root() float64 { return 2.0945514815423265 }

// shifted is f(x) = x² − c, with positive root √c.
type shifted struct {
	c float64
}

func (s shifted) Eval(x float64) float64  { return x*x - s.c }
func (s shifted) Deriv(x float64) float64 { return 2 * x }

func (s shifted) Root() float64 { return math.Sqrt(s.c) }

// flatDeriv is shifted with a derivative that is identically zero, so the
// Newton update can never be formed.
type flatDeriv struct {
	shifted
}

func (flatDeriv) Deriv(x float64) float64 { return 0 }

// counter wraps an EvalDeriver and counts evaluations.
type counter struct {
	f      EvalDeriver
	evals  int
	derivs int
}

func (c *counter) Eval(x float64) float64 {
	c.evals++
	return c.f.Eval(x)
}

func (c *counter) Deriv(x float64) float64 {
	c.derivs++
	return c.f.Deriv(x)
}
