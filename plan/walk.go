package plan

// Walk visits p and its sub-plans depth first, children before parents.
// Returning false from fn stops the walk.
func Walk(p InjectionPlan, fn func(InjectionPlan) bool) bool {
	if p == nil {
		return true
	}

	for _, c := range p.Children() {
		if !Walk(c, fn) {
			return false
		}
	}

	return fn(p)
}

// ConstructionOrder lists the constructor calls an executor performs for an
// injectable plan, dependencies first. Choices contribute their selected
// alternative only. Plans that cannot be executed yield the Explain error.
func ConstructionOrder(p InjectionPlan) ([]*Constructor, error) {
	if err := Explain(p); err != nil {
		return nil, err
	}

	var order []*Constructor

	var visit func(InjectionPlan)

	visit = func(p InjectionPlan) {
		switch v := p.(type) {
		case *Constructor:
			for _, a := range v.args {
				visit(a)
			}

			order = append(order, v)
		case *Choice:
			if sel, ok := v.Selected(); ok {
				visit(sel)
			}
		case *Terminal:
		}
	}

	visit(p)

	return order, nil
}

// InfeasibleLeaves returns every infeasible leaf below p in walk order.
func InfeasibleLeaves(p InjectionPlan) []*Terminal {
	var leaves []*Terminal

	Walk(p, func(p InjectionPlan) bool {
		if t, ok := p.(*Terminal); ok && t.IsInfeasibleLeaf() {
			leaves = append(leaves, t)
		}

		return true
	})

	return leaves
}
