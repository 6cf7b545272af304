package conformance

import (
	"errors"
	"fmt"
)

var (
	// ErrNoScenarios is returned by Load for an empty document.
	ErrNoScenarios = errors.New("conformance: no scenarios")

	// ErrInvalidScenario is returned by Load for a malformed scenario.
	ErrInvalidScenario = errors.New("conformance: invalid scenario")

	// ErrMismatch marks a step whose observed result differs from the
	// expected one.
	ErrMismatch = errors.New("conformance: result mismatch")
)

// StepError locates a failure within a scenario. Step is -1 when
// construction itself failed.
type StepError struct {
	Scenario string
	Step     int
	Op       string
	Err      error
}

func (e *StepError) Error() string {
	if e.Step < 0 {
		return fmt.Sprintf("%s: construct: %v", e.Scenario, e.Err)
	}
	return fmt.Sprintf("%s: step %d (%s): %v", e.Scenario, e.Step, e.Op, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

func mismatch(want, got any) error {
	return fmt.Errorf("%w: want %v, got %v", ErrMismatch, want, got)
}
