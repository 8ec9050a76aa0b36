package plan

import (
	"strings"

	"injection-planner/graph"
)

// Choice groups the viable ways to build one node. It is ambiguous as soon
// as more than one alternative is feasible.
type Choice struct {
	props

	alts     []InjectionPlan
	selected int
}

// NewChoice builds a choice over alts for node n. A choice without
// alternatives is infeasible.
func NewChoice(n graph.Node, alts ...InjectionPlan) *Choice {
	c := &Choice{
		props:    props{node: n},
		alts:     append([]InjectionPlan(nil), alts...),
		selected: -1,
	}

	feasible := 0

	for i, a := range alts {
		c.alternatives = addSat(c.alternatives, a.NumAlternatives())
		c.ambiguous = c.ambiguous || a.IsAmbiguous()
		c.future = c.future || a.HasFutureDependency()

		if a.IsFeasible() {
			feasible++
			c.selected = i
		}
	}

	if feasible > 1 {
		c.ambiguous = true
	}

	if feasible != 1 {
		c.selected = -1
	}

	c.injectable = !c.ambiguous && c.selected >= 0 && c.alts[c.selected].IsInjectable()

	return c
}

func (c *Choice) Kind() Kind { return KindChoice }

// Alternatives returns the candidate plans in the order they were tried.
func (c *Choice) Alternatives() []InjectionPlan {
	return append([]InjectionPlan(nil), c.alts...)
}

func (c *Choice) Children() []InjectionPlan { return c.Alternatives() }

// Selected returns the only feasible alternative, if there is exactly one.
func (c *Choice) Selected() (InjectionPlan, bool) {
	if c.selected < 0 {
		return nil, false
	}

	return c.alts[c.selected], true
}

func (c *Choice) IsInfeasibleLeaf() bool { return false }

func (c *Choice) String() string {
	return c.render(InjectionPlan.String)
}

func (c *Choice) ShallowString() string {
	return c.render(shallowArg)
}

func (c *Choice) render(alt func(InjectionPlan) string) string {
	if len(c.alts) == 0 {
		return c.fullName() + ": no injectable constructors"
	}

	parts := make([]string, len(c.alts))
	for i, a := range c.alts {
		parts[i] = alt(a)
	}

	return "[" + c.fullName() + " = " + strings.Join(parts, " | ") + "]"
}

func (c *Choice) AmbiguityExplanation() string {
	if !c.ambiguous {
		panic(contractViolation(c, ErrNotAmbiguous))
	}

	var feasible, ambiguous []InjectionPlan

	for _, a := range c.alts {
		if a.IsFeasible() {
			feasible = append(feasible, a)
		}

		if a.IsAmbiguous() {
			ambiguous = append(ambiguous, a)
		}
	}

	var sb strings.Builder

	if len(feasible) <= 1 {
		for i, a := range ambiguous {
			if i > 0 {
				sb.WriteByte('\n')
			}

			sb.WriteString(a.AmbiguityExplanation())
		}

		return sb.String()
	}

	sb.WriteString("Ambiguous subplan " + c.fullName())

	for _, a := range feasible {
		sb.WriteString("\n  " + a.String())
	}

	sb.WriteString("\n]")

	return sb.String()
}

func (c *Choice) InfeasibilityExplanation() string {
	if c.IsFeasible() {
		panic(contractViolation(c, ErrNotInfeasible))
	}

	switch len(c.alts) {
	case 0:
		return "No known implementations / injectable constructors for " + c.fullName()
	case 1:
		return c.alts[0].InfeasibilityExplanation()
	default:
		var sb strings.Builder

		sb.WriteString("Multiple infeasible plans for " + c.fullName() + ": [")

		for _, a := range c.alts {
			sb.WriteString("\n  " + a.InfeasibilityExplanation())
		}

		sb.WriteString("\n]")

		return sb.String()
	}
}
