package common

type Statuser interface {
	Status() Status
}

// CheckStatus checks a variadic number of statusers and returns the
// first result that is not Continue
func CheckStatus(cs ...Statuser) Status {
	for _, val := range cs {
		c := val.Status()
		if c != Continue {
			return c
		}
	}
	return Continue
}

// NewStatus is used to get a unique value for Status to avoid any accidental
// collisions. NewStatus is not thread-safe as it is intended to only be used
// during initialization
func NewStatus(str string) Status {
	lastStatus++
	statusStrings[lastStatus] = str
	return Status(lastStatus)
}

var statusStrings map[Status]string

func init() {
	statusStrings = make(map[Status]string)
	statusStrings[Continue] = "Continue"
	statusStrings[ResidualAbsTol] = "ResidualAbsTol"

	statusStrings[UserFunctionError] = "ErrorInUserFunction"
	statusStrings[SolverError] = "SolverError"
	statusStrings[InvalidBracket] = "InvalidBracket"
	statusStrings[ZeroDerivative] = "ZeroDerivative"
	statusStrings[MaximumIterations] = "MaximumIterations"
	statusStrings[MaximumFunctionEvaluations] = "MaximumFunctionEvaluations"
	statusStrings[MaximumRuntime] = "MaximumRuntimeElapsed"
}

// Status is a type for expressing if the solver has finished or not.
// Zero signifies no convergence or error so the solver should continue.
// Positive values indicate successful convergence.
// Negative values express failure in some way.
//
// If a custom status value is desired, NewStatus should be called. NewStatus
// is not thread-safe as it is intended to only be used during initialization
type Status int

func (s Status) String() string {
	str, ok := statusStrings[s]
	if !ok {
		return "UnregisteredStatus"
	}
	return str
}

// Converged returns true if the status expresses successful convergence.
func (s Status) Converged() bool {
	return s > 0
}

const (
	Continue Status = iota
	// ResidualAbsTol means the magnitude of the function value at the
	// candidate root dropped below the residual tolerance
	ResidualAbsTol
)

const (
	_                        = iota
	UserFunctionError Status = -1 * iota
	SolverError
	InvalidBracket
	// ZeroDerivative means the derivative was exactly zero at the current
	// estimate, so the Newton update cannot be formed
	ZeroDerivative
	MaximumIterations
	MaximumFunctionEvaluations
	MaximumRuntime
)

var lastStatus Status = 256
