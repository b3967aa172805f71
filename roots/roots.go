package roots

import (
	"math"

	"github.com/btracey/rootfind/common"
	"github.com/btracey/rootfind/write"
)

// Evaler is a real-valued function of one real variable. The function must
// be pure (same input, same output) for step counts to be reproducible;
// this is a caller obligation and is not enforced.
type Evaler interface {
	Eval(x float64) float64
}

// Deriver evaluates the analytic derivative of the function under test.
// The solver does not verify that it is the true derivative.
type Deriver interface {
	Deriv(x float64) float64
}

// EvalDeriver is a function bundled with its analytic derivative.
type EvalDeriver interface {
	Evaler
	Deriver
}

// Func adapts an ordinary function to the Evaler interface.
type Func func(float64) float64

func (f Func) Eval(x float64) float64 { return f(x) }

// FuncDeriv adapts a function and its derivative to the EvalDeriver interface.
type FuncDeriv struct {
	F  func(float64) float64
	DF func(float64) float64
}

func (f FuncDeriv) Eval(x float64) float64  { return f.F(x) }
func (f FuncDeriv) Deriv(x float64) float64 { return f.DF(x) }

// Settings is a structure containing settings for root-finding methods.
type Settings struct {
	*common.CommonSettings
	Tolerance float64 // Absolute tolerance on the residual |f(x)|
}

// DefaultSettings returns the default settings for root-finding methods:
// a residual tolerance of 1e-6 and an iteration budget of 100.
func DefaultSettings() *Settings {
	return &Settings{
		CommonSettings: common.DefaultCommonSettings(),
		Tolerance:      1e-6,
	}
}

// Helper is a helper struct for root-finding methods. Not intended for use
// by callers of Solve or Compare, but exported to aid others who are
// building iteration schemes.
//
// The helper owns the residual convergence test so that every method is
// measured against the same stopping criterion. Method implementers should
// call Init at the beginning of a run, Status to check tolerances and
// budgets, and Iterate at the end of every iteration.
type Helper struct {
	*common.Common
	resid *common.ResidToler

	locCurr   float64
	residCurr float64
}

// NewHelper creates a new Helper and adds itself to the trace data adders
func NewHelper() *Helper {
	h := &Helper{
		Common: common.NewCommon(),
		resid:  &common.ResidToler{},
	}
	h.AddDataAdder(h)
	return h
}

func (h *Helper) AppendWriteData(v []*write.Value) []*write.Value {
	v = append(v, &write.Value{Heading: "X", Value: h.locCurr})
	v = append(v, &write.Value{Heading: "Resid", Value: h.residCurr})
	return v
}

func (h *Helper) Init(s *Settings) error {
	h.resid.Init(s.Tolerance, math.Inf(1))
	h.locCurr = math.NaN()
	h.residCurr = math.Inf(1)
	return h.Common.Init(s.CommonSettings)
}

func (h *Helper) Iterate(loc, resid float64, nFunEvals int) error {
	h.locCurr = loc
	h.residCurr = resid
	h.resid.Add(resid)
	return h.Common.Iterate(nFunEvals)
}

// Status checks the residual convergence test before the budgets, so that a
// candidate that satisfies the tolerance on the final budgeted iteration is
// still reported as converged.
func (h *Helper) Status() common.Status {
	if h.resid.Converged() {
		return common.ResidualAbsTol
	}
	return h.Common.Status()
}

func (h *Helper) Result(status common.Status) *Result {
	return &Result{
		CommonResult: h.Common.Result(status),
		Root:         h.locCurr,
		Residual:     h.residCurr,
	}
}

// Result is the outcome of running a single root-finding method.
type Result struct {
	*common.CommonResult
	Root     float64 // Candidate root at the final iteration
	Residual float64 // Magnitude of the function value at Root
}
