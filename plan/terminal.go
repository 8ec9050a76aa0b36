package plan

import (
	"injection-planner/graph"
)

// Terminal is a leaf plan: a value that is already available, a dependency
// resolved later through an injection future, or a dependency that cannot
// be satisfied.
type Terminal struct {
	props

	kind   TerminalKind
	value  string
	reason string
}

// NewValue plans a value that needs no construction, such as a bound
// instance or a named parameter value.
func NewValue(n graph.Node, value string) *Terminal {
	return &Terminal{
		props: props{node: n, alternatives: 1, injectable: true},
		kind:  TerminalValue,
		value: value,
	}
}

// NewFuture plans a late-bound dependency on n.
func NewFuture(n graph.Node) *Terminal {
	return &Terminal{
		props: props{node: n, alternatives: 1, injectable: true, future: true},
		kind:  TerminalFuture,
	}
}

// NewInfeasible marks n as impossible to satisfy.
func NewInfeasible(n graph.Node) *Terminal {
	return NewInfeasibleReason(n, defaultReason(n))
}

// NewInfeasibleReason is NewInfeasible with a caller supplied reason.
func NewInfeasibleReason(n graph.Node, reason string) *Terminal {
	return &Terminal{
		props:  props{node: n},
		kind:   TerminalInfeasible,
		reason: reason,
	}
}

func defaultReason(n graph.Node) string {
	if n == nil {
		return "unknown node"
	}

	switch n.Kind() {
	case graph.KindClass:
		return "No known implementations / injectable constructors for " + n.FullName()
	case graph.KindNamedParameter:
		return "No value bound and no default for " + n.FullName()
	default:
		return "Cannot inject " + n.FullName()
	}
}

func (t *Terminal) Kind() Kind { return KindTerminal }

func (t *Terminal) TerminalKind() TerminalKind { return t.kind }

// Value is the rendered value of a TerminalValue plan.
func (t *Terminal) Value() string { return t.value }

// Reason describes why a TerminalInfeasible plan cannot be satisfied.
func (t *Terminal) Reason() string { return t.reason }

func (t *Terminal) Children() []InjectionPlan { return nil }

func (t *Terminal) IsInfeasibleLeaf() bool { return t.kind == TerminalInfeasible }

func (t *Terminal) String() string {
	switch t.kind {
	case TerminalValue:
		return t.fullName() + " = " + t.value
	case TerminalFuture:
		return "InjectionFuture<" + t.fullName() + ">"
	default:
		return t.fullName() + ": <infeasible>"
	}
}

func (t *Terminal) ShallowString() string { return t.String() }

func (t *Terminal) AmbiguityExplanation() string {
	panic(contractViolation(t, ErrNotAmbiguous))
}

func (t *Terminal) InfeasibilityExplanation() string {
	if t.kind != TerminalInfeasible {
		panic(contractViolation(t, ErrNotInfeasible))
	}

	return t.reason
}
