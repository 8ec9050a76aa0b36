package plan

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go
//go:generate go tool stringer -type=TerminalKind -trimprefix=Terminal -output=terminalkind_string.go

// Kind is the variant of an InjectionPlan.
type Kind int

const (
	_ Kind = iota // zero value is reserved as invalid

	KindConstructor // a concrete constructor call with one sub-plan per argument
	KindChoice      // a choice between several candidate plans
	KindTerminal    // a leaf: resolved value, late-bound dependency or failure
)

// TerminalKind distinguishes the leaves of a plan.
type TerminalKind int

const (
	_ TerminalKind = iota

	TerminalValue      // a value that is already resolved
	TerminalFuture     // a dependency resolved after the enclosing object exists
	TerminalInfeasible // a dependency that cannot be satisfied
)
