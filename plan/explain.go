package plan

import (
	"errors"
	"fmt"
)

var (
	// ErrNotAmbiguous is wrapped by the panic raised when an ambiguity
	// explanation is requested from an unambiguous plan.
	ErrNotAmbiguous = errors.New("plan is not ambiguous")
	// ErrNotInfeasible is wrapped by the panic raised when an infeasibility
	// explanation is requested from a feasible plan.
	ErrNotInfeasible = errors.New("plan is not infeasible")

	// ErrInfeasible is wrapped by Explain for plans without alternatives.
	ErrInfeasible = errors.New("cannot inject: infeasible")
	// ErrAmbiguous is wrapped by Explain for ambiguous plans.
	ErrAmbiguous = errors.New("cannot inject: ambiguous")
)

// ContractError is the panic value raised when a plan is queried for an
// explanation that does not apply to it.
type ContractError struct {
	Plan string
	Err  error
}

func contractViolation(p InjectionPlan, err error) *ContractError {
	return &ContractError{Plan: p.ShallowString(), Err: err}
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("contract violation on %s: %v", e.Plan, e.Err)
}

func (e *ContractError) Unwrap() error { return e.Err }

// InjectionError reports why a plan cannot be executed.
type InjectionError struct {
	Node        string
	Explanation string
	Err         error
}

func (e *InjectionError) Error() string {
	return fmt.Sprintf("%v: %s: %s", e.Err, e.Node, e.Explanation)
}

func (e *InjectionError) Unwrap() error { return e.Err }

// Explain returns nil for injectable plans and an *InjectionError wrapping
// ErrInfeasible or ErrAmbiguous otherwise.
func Explain(p InjectionPlan) error {
	if p == nil || p.IsInjectable() {
		return nil
	}

	name := p.Node().FullName()

	if !p.IsFeasible() {
		return &InjectionError{Node: name, Explanation: p.InfeasibilityExplanation(), Err: ErrInfeasible}
	}

	return &InjectionError{Node: name, Explanation: p.AmbiguityExplanation(), Err: ErrAmbiguous}
}
