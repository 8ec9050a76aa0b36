package plan

import (
	"fmt"
	"strings"

	"injection-planner/graph"
)

// Constructor plans a call to one constructor, with one sub-plan per
// declared argument in declaration order.
type Constructor struct {
	props

	def  *graph.ConstructorDef
	args []InjectionPlan
}

// NewConstructor builds a constructor plan. It panics when the number of
// argument plans does not match the constructor signature.
func NewConstructor(cn *graph.ClassNode, def *graph.ConstructorDef, args ...InjectionPlan) *Constructor {
	if def == nil {
		panic("plan: nil constructor definition for " + cn.FullName())
	}

	if len(args) != len(def.Args) {
		panic(fmt.Sprintf("plan: constructor %s%s takes %d arguments, got %d plans",
			cn.FullName(), def, len(def.Args), len(args)))
	}

	c := &Constructor{
		props: props{
			node:         cn,
			alternatives: 1,
			injectable:   true,
		},
		def:  def,
		args: append([]InjectionPlan(nil), args...),
	}

	for _, a := range args {
		c.alternatives = mulSat(c.alternatives, a.NumAlternatives())
		c.ambiguous = c.ambiguous || a.IsAmbiguous()
		c.injectable = c.injectable && a.IsInjectable()
		c.future = c.future || a.HasFutureDependency()
	}

	return c
}

func (c *Constructor) Kind() Kind { return KindConstructor }

// Def is the constructor the executor invokes.
func (c *Constructor) Def() *graph.ConstructorDef { return c.def }

// Class is the node being constructed.
func (c *Constructor) Class() *graph.ClassNode {
	cn, _ := c.node.(*graph.ClassNode)
	return cn
}

// Args returns the argument plans in declaration order.
func (c *Constructor) Args() []InjectionPlan {
	return append([]InjectionPlan(nil), c.args...)
}

func (c *Constructor) Children() []InjectionPlan { return c.Args() }

func (c *Constructor) IsInfeasibleLeaf() bool { return false }

func (c *Constructor) String() string {
	return c.render(InjectionPlan.String)
}

func (c *Constructor) ShallowString() string {
	return c.render(shallowArg)
}

func (c *Constructor) render(arg func(InjectionPlan) string) string {
	parts := make([]string, len(c.args))
	for i, a := range c.args {
		parts[i] = arg(a)
	}

	return "new " + c.fullName() + "(" + strings.Join(parts, ", ") + ")"
}

func (c *Constructor) AmbiguityExplanation() string {
	if !c.ambiguous {
		panic(contractViolation(c, ErrNotAmbiguous))
	}

	var sb strings.Builder

	sb.WriteString(c.fullName() + " has ambiguous arguments: [ ")

	for _, a := range c.args {
		if a.IsAmbiguous() {
			sb.WriteString(a.AmbiguityExplanation())
			sb.WriteByte(' ')
		}
	}

	sb.WriteByte(']')

	return sb.String()
}

// InfeasibilityExplanation reports missing arguments at the level where the
// infeasible leaves are. An infeasible composite argument is explained by
// recursing into it, so a single missing leaf deep in the tree is named at
// its true location.
func (c *Constructor) InfeasibilityExplanation() string {
	if c.IsFeasible() {
		panic(contractViolation(c, ErrNotInfeasible))
	}

	var leaves []InjectionPlan

	for _, a := range c.args {
		if a.IsFeasible() {
			continue
		}

		if !a.IsInfeasibleLeaf() {
			return a.InfeasibilityExplanation()
		}

		leaves = append(leaves, a)
	}

	switch len(leaves) {
	case 0:
		// unreachable: an infeasible constructor has an infeasible argument
		panic(contractViolation(c, ErrNotInfeasible))
	case 1:
		return c.fullName() + " missing argument " + leaves[0].Node().FullName()
	default:
		var sb strings.Builder

		sb.WriteString(c.fullName() + " missing arguments: [ ")

		for _, l := range leaves {
			sb.WriteString(l.Node().FullName())
			sb.WriteByte(' ')
		}

		sb.WriteByte(']')

		return sb.String()
	}
}
