package roots

import (
	"errors"
	"math"

	"github.com/btracey/rootfind/common"
)

// Method is a single root-finding iteration scheme.
type Method interface {
	// Init prepares the method for a run. The residual tolerance is passed
	// so a method can avoid extra work once a candidate already satisfies it.
	// Init reports invalid problem data, such as a bracket without a sign
	// change.
	Init(tol float64) error
	// Status reports a method-specific reason to stop, such as an update
	// that can no longer be formed
	Status() common.Status
	// Iterate advances the method by one step. The returned loc and resid
	// are the candidate root examined this step and the magnitude of the
	// function value there; they are what the convergence test sees
	Iterate() (loc, resid float64, nFunEvals int, err error)
	// Result does any cleanup needed
	Result()
}

// Solve runs the method until the residual drops below the tolerance, a
// budget runs out, or the method itself stops. Nil settings means
// DefaultSettings. Non-convergence is not an error; it is reported through
// the Status field of the result.
func Solve(m Method, settings *Settings) (*Result, error) {
	if m == nil {
		panic("roots: no method provided")
	}
	if settings == nil {
		settings = DefaultSettings()
	}
	if settings.CommonSettings == nil {
		settings.CommonSettings = common.DefaultCommonSettings()
	}
	if math.IsNaN(settings.Tolerance) || settings.Tolerance <= 0 {
		return nil, errors.New("roots: tolerance must be positive")
	}

	helper := NewHelper()
	if err := helper.Init(settings); err != nil {
		return nil, errors.New("roots: error initializing: " + err.Error())
	}
	if err := m.Init(settings.Tolerance); err != nil {
		return nil, err
	}

	var status common.Status
	for {
		status = common.CheckStatus(helper, m)
		if status != common.Continue {
			break
		}

		loc, resid, nFunEvals, err := m.Iterate()
		if err != nil {
			return nil, errors.New("roots: error iterating method: " + err.Error())
		}
		if err := helper.Iterate(loc, resid, nFunEvals); err != nil {
			return nil, err
		}
	}
	m.Result()
	return helper.Result(status), nil
}
