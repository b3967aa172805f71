package common

import (
	"time"

	"github.com/btracey/rootfind/write"
)

// CommonSettings is a set of options available to all solvers
type CommonSettings struct {
	MaximumIterations          int           // Sets the maximum number of iterations that can occur
	MaximumFunctionEvaluations int           // Sets the maximum number of function evaluations that can occur
	MaximumRuntime             time.Duration // Sets the maximum runtime that can elapse
	*write.WriteSettings
}

// DefaultCommonSettings returns the default settings for the common structure.
// Function evaluations and runtime are unbounded by default; the iteration
// budget is the only default limit.
func DefaultCommonSettings() *CommonSettings {
	return &CommonSettings{
		MaximumIterations:          100,
		MaximumFunctionEvaluations: -1, // Defaults to no maximum function evaluations
		MaximumRuntime:             -1, // Defaults to no maximum runtime
		WriteSettings:              write.DefaultWriteSettings(),
	}
}

// CommonResult is a list of results from the common structure
type CommonResult struct {
	Iterations          int           // Total number of iterations taken by the solver
	FunctionEvaluations int           // Total number of function evaluations taken by the solver
	Runtime             time.Duration // Total runtime elapsed during the solve
	Status              Status        // How did the solver end
}

// Common provides routines for controlling the budgets provided by
// CommonSettings, and drives the iteration trace writers.
type Common struct {
	iter      int
	funEvals  int
	startTime time.Time

	settings *CommonSettings

	*write.Display
}

// NewCommon creates a new Common structure, and adds itself to the trace writer
func NewCommon() *Common {
	c := &Common{
		Display: write.NewDisplay(),
	}
	c.AddDataAdder(c)
	return c
}

// Init initializes all of the values in common at the start of a solve
func (c *Common) Init(settings *CommonSettings) error {
	c.iter = 0
	c.funEvals = 0
	c.startTime = time.Now()

	c.settings = settings

	return c.Display.Init(c.settings.WriteSettings)
}

func (c *Common) AppendWriteData(d []*write.Value) []*write.Value {
	d = append(d, &write.Value{Heading: "Iter", Value: c.iter})
	d = append(d, &write.Value{Heading: "FnEval", Value: c.funEvals})
	return d
}

// Iterations returns the number of iterations taken so far.
func (c *Common) Iterations() int {
	return c.iter
}

// Status checks if any of the budgets controlled by common has been
// exhausted (iterations, funevals, runtime). The iteration budget is checked
// with >= because Status runs before the next iteration is attempted.
func (c *Common) Status() Status {
	if c.settings.MaximumIterations > -1 && c.iter >= c.settings.MaximumIterations {
		return MaximumIterations
	}
	if c.settings.MaximumFunctionEvaluations > -1 && c.funEvals >= c.settings.MaximumFunctionEvaluations {
		return MaximumFunctionEvaluations
	}
	if c.settings.MaximumRuntime > -1 && time.Since(c.startTime) > c.settings.MaximumRuntime {
		return MaximumRuntime
	}
	return Continue
}

// Result returns the results from the common structure
func (c *Common) Result(status Status) *CommonResult {
	return &CommonResult{
		Iterations:          c.iter,
		FunctionEvaluations: c.funEvals,
		Runtime:             time.Since(c.startTime),
		Status:              status,
	}
}

// Iterate performs an iteration of the common structure, incrementing
// the iteration count, adding the number of function evaluations, and
// writing to the trace writers
func (c *Common) Iterate(nFunEvals int) error {
	c.iter++
	c.funEvals += nFunEvals
	return c.Display.Iterate()
}
