package roots

import (
	"errors"
	"fmt"
	"time"

	"github.com/btracey/rootfind/common"
)

// InvalidBracketError indicates that an interval does not bracket a sign
// change of the function: f(a)·f(b) ≥ 0. A product of exactly zero, where
// an endpoint is already a root, is also invalid.
type InvalidBracketError struct {
	A, B   float64 // The offending endpoints
	FA, FB float64 // The function values there
}

func (e *InvalidBracketError) Error() string {
	return fmt.Sprintf("roots: invalid bracket [%g, %g]: f(a) = %g and f(b) = %g do not have opposite signs", e.A, e.B, e.FA, e.FB)
}

// MethodResult is the per-method half of a ComparisonResult.
type MethodResult struct {
	Status              common.Status // How the method ended
	Converged           bool          // Whether the residual dropped below the tolerance in budget
	Root                float64       // Candidate root at the final iteration
	Residual            float64       // Magnitude of the function value at Root
	FunctionEvaluations int
	Runtime             time.Duration

	steps int
}

// Steps returns the iteration at which the method converged, counting from
// one. The count is only meaningful on convergence: ok is false otherwise,
// and the iteration counter of a failed run is not exposed so that budget
// exhaustion cannot be mistaken for convergence on the final iteration.
func (r MethodResult) Steps() (n int, ok bool) {
	if !r.Converged {
		return 0, false
	}
	return r.steps, true
}

// ComparisonResult reports how bisection and Newton-Raphson each fared on
// the same problem under the same tolerance and budgets.
type ComparisonResult struct {
	Bisection MethodResult
	Newton    MethodResult
}

func methodResult(r *Result) MethodResult {
	m := MethodResult{
		Status:              r.Status,
		Converged:           r.Status.Converged(),
		Root:                r.Root,
		Residual:            r.Residual,
		FunctionEvaluations: r.FunctionEvaluations,
		Runtime:             r.Runtime,
	}
	if m.Converged {
		m.steps = r.Iterations
	}
	return m
}

// Compare runs bisection and Newton-Raphson independently on f and reports
// the iterations each needs to drive the residual |f(x)| below the
// tolerance. Bisection works over the bracket [a, b], which must satisfy
// f(a)·f(b) < 0; otherwise a *InvalidBracketError is returned and neither
// method runs. Newton-Raphson starts from the midpoint (a+b)/2 of the
// original bracket and does not share state with bisection.
//
// Nil settings means DefaultSettings. Non-convergence of either method is
// not an error; it is reported through the method's Converged flag, and the
// other method's outcome is unaffected.
func Compare(f EvalDeriver, a, b float64, settings *Settings) (*ComparisonResult, error) {
	if f == nil {
		return nil, errors.New("roots: nil function")
	}
	if settings == nil {
		settings = DefaultSettings()
	}

	// The bracket precondition is checked once, by bisection's Init, before
	// either loop body runs.
	bisect, err := Solve(NewBisection(f, a, b), settings)
	if err != nil {
		return nil, err
	}

	newton, err := Solve(NewNewton(f, (a+b)/2), settings)
	if err != nil {
		return nil, err
	}

	return &ComparisonResult{
		Bisection: methodResult(bisect),
		Newton:    methodResult(newton),
	}, nil
}
