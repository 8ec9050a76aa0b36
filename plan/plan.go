package plan

import (
	"math"

	"injection-planner/graph"
)

// InjectionPlan describes every statically known way to build one node, or
// why it cannot be built. The set of implementations is closed: a plan is a
// *Constructor, a *Choice or a *Terminal.
type InjectionPlan interface {
	// Node is the graph node this plan produces.
	Node() graph.Node
	Kind() Kind
	// Children returns the direct sub-plans (constructor arguments or choice
	// alternatives).
	Children() []InjectionPlan

	// NumAlternatives counts the distinct object graphs reachable through
	// the plan. Zero means the plan is infeasible.
	NumAlternatives() int
	IsFeasible() bool
	IsAmbiguous() bool
	IsInjectable() bool
	IsInfeasibleLeaf() bool
	HasFutureDependency() bool

	// String renders the full constructor-call tree.
	String() string
	// ShallowString renders one level, abbreviating composite sub-plans.
	ShallowString() string
	// AmbiguityExplanation panics with a *ContractError unless IsAmbiguous.
	AmbiguityExplanation() string
	// InfeasibilityExplanation panics with a *ContractError unless the plan
	// is infeasible.
	InfeasibilityExplanation() string

	sealed()
}

// props holds the derived properties shared by every variant.
type props struct {
	node         graph.Node
	alternatives int
	ambiguous    bool
	injectable   bool
	future       bool
}

func (p *props) Node() graph.Node { return p.node }

func (p *props) NumAlternatives() int { return p.alternatives }

// IsFeasible reports whether at least one way to build the node exists,
// ambiguous or not.
func (p *props) IsFeasible() bool { return p.alternatives > 0 }

func (p *props) IsAmbiguous() bool { return p.ambiguous }

func (p *props) IsInjectable() bool { return p.injectable }

func (p *props) HasFutureDependency() bool { return p.future }

func (p *props) sealed() {}

func (p *props) fullName() string {
	if p.node == nil {
		return "<nil>"
	}

	return p.node.FullName()
}

// mulSat and addSat saturate at math.MaxInt: large graphs overflow the
// combinatorial count long before they run out of memory.
func mulSat(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}

	if a > math.MaxInt/b {
		return math.MaxInt
	}

	return a * b
}

func addSat(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}

	return a + b
}

// shallowArg abbreviates composite sub-plans to their kind and node name.
func shallowArg(p InjectionPlan) string {
	switch p.Kind() {
	case KindConstructor, KindChoice:
		return p.Kind().String() + ": " + p.Node().FullName()
	default:
		return p.ShallowString()
	}
}
