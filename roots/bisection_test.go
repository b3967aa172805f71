package roots

import (
	"errors"
	"testing"

	"github.com/gonum/floats"

	"github.com/btracey/rootfind/common"
)

func TestBisectionSolve(t *testing.T) {
	f := shifted{c: 2}
	result, err := Solve(NewBisection(f, 0, 2), nil)
	if err != nil {
		t.Fatalf("error solving: %v", err)
	}
	if result.Status != common.ResidualAbsTol {
		t.Errorf("status %v, expected ResidualAbsTol", result.Status)
	}
	if !floats.EqualWithinAbsOrRel(result.Root, f.Root(), 1e-5, 1e-5) {
		t.Errorf("root doesn't match. Expected: %v, Found %v. Status %v", f.Root(), result.Root, result.Status)
	}
	if result.Residual >= 1e-6 {
		t.Errorf("residual %v not below tolerance", result.Residual)
	}
	if result.Iterations < 1 || result.Iterations > 100 {
		t.Errorf("iteration count %d outside [1, 100]", result.Iterations)
	}
	// One midpoint evaluation per iteration; the endpoint evaluations at
	// Init are not charged against the budget
	if result.FunctionEvaluations != result.Iterations {
		t.Errorf("function evaluations %d, expected %d", result.FunctionEvaluations, result.Iterations)
	}
}

func TestBisectionInvalidBracket(t *testing.T) {
	result, err := Solve(NewBisection(Func(func(x float64) float64 { return x * x }), -1, 1), nil)
	if result != nil {
		t.Errorf("expected nil result, got %+v", result)
	}
	var ibe *InvalidBracketError
	if !errors.As(err, &ibe) {
		t.Fatalf("expected InvalidBracketError, got %v", err)
	}
}

func TestBisectionBudgetExhausted(t *testing.T) {
	settings := DefaultSettings()
	settings.Tolerance = 1e-14
	settings.MaximumIterations = 10
	result, err := Solve(NewBisection(shifted{c: 2}, 0, 2), settings)
	if err != nil {
		t.Fatalf("error solving: %v", err)
	}
	if result.Status != common.MaximumIterations {
		t.Errorf("status %v, expected MaximumIterations", result.Status)
	}
	if result.Iterations != 10 {
		t.Errorf("took %d iterations, expected the full budget of 10", result.Iterations)
	}
}

func TestSolveBadTolerance(t *testing.T) {
	settings := DefaultSettings()
	settings.Tolerance = 0
	_, err := Solve(NewBisection(shifted{c: 2}, 0, 2), settings)
	if err == nil {
		t.Error("expected an error for a non-positive tolerance")
	}
}
