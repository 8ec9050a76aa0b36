package plan

import (
	"errors"
	"fmt"
	"sort"
)

var errScheduleCycle = errors.New("cycle detected")

// Schedule lists each distinct constructor plan of an injectable plan once,
// every constructor after the constructors its arguments need. Plans shared
// through the planner memo are built once. When several constructors are
// ready, the one discovered first goes first.
func Schedule(p InjectionPlan) ([]*Constructor, error) {
	if err := Explain(p); err != nil {
		return nil, err
	}

	var (
		nodes []*Constructor
		index = make(map[*Constructor]int)
	)

	var collect func(InjectionPlan)

	collect = func(p InjectionPlan) {
		c := resolveConstructor(p)
		if c == nil {
			return
		}

		if _, ok := index[c]; ok {
			return
		}

		index[c] = len(nodes)
		nodes = append(nodes, c)

		for _, a := range c.args {
			collect(a)
		}
	}

	collect(p)

	order, err := topoSort(len(nodes), func(i int) []int {
		var deps []int

		for _, a := range nodes[i].args {
			if c := resolveConstructor(a); c != nil {
				deps = append(deps, index[c])
			}
		}

		return deps
	})
	if err != nil {
		return nil, fmt.Errorf("failed to schedule %s: %w", p.Node().FullName(), err)
	}

	out := make([]*Constructor, len(order))
	for i, idx := range order {
		out[i] = nodes[idx]
	}

	return out, nil
}

// resolveConstructor follows selected choice alternatives down to the
// constructor they stand for. Terminals yield nil.
func resolveConstructor(p InjectionPlan) *Constructor {
	for {
		switch v := p.(type) {
		case *Constructor:
			return v
		case *Choice:
			sel, ok := v.Selected()
			if !ok {
				return nil
			}

			p = sel
		default:
			return nil
		}
	}
}

// topoSort returns indices in execution order; depsFn(i) yields the indices
// that must come before i. Among ready nodes the smallest index goes first.
func topoSort(n int, depsFn func(i int) []int) ([]int, error) {
	if n <= 0 {
		return nil, nil
	}

	indeg := make([]int, n)
	out := make([][]int, n)

	for i := range n {
		for _, d := range depsFn(i) {
			if d < 0 || d >= n {
				return nil, fmt.Errorf("dependency index out of range: %d depends on %d", i, d)
			}

			indeg[i]++
			out[d] = append(out[d], i)
		}
	}

	var ready []int

	for i := range n {
		if indeg[i] == 0 {
			ready = append(ready, i)
		}
	}

	order := make([]int, 0, n)

	for len(ready) > 0 {
		i := ready[0]
		ready = ready[1:]

		order = append(order, i)

		for _, j := range out[i] {
			indeg[j]--
			if indeg[j] == 0 {
				k := sort.SearchInts(ready, j)
				ready = append(ready, 0)
				copy(ready[k+1:], ready[k:])
				ready[k] = j
			}
		}
	}

	if len(order) != n {
		return nil, errScheduleCycle
	}

	return order, nil
}
