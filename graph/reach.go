package graph

// IsImplementationOf reports whether candidate is iface itself or is reachable
// from iface through known-implementation edges, e.g. an interface extended
// by another interface that candidate implements.
//
// Every node is expanded at most once, so cyclic implementation graphs
// terminate.
func IsImplementationOf(candidate, iface *ClassNode) bool {
	if candidate == nil || iface == nil {
		return false
	}

	if Equal(candidate, iface) {
		return true
	}

	found := false

	walkImplementations(iface, func(impl *ClassNode) bool {
		found = Equal(impl, candidate)
		return !found
	})

	return found
}

// Implementations returns every class reachable from iface through
// known-implementation edges, breadth first, in registration order.
// iface itself is not included even when a cycle leads back to it.
func Implementations(iface *ClassNode) []*ClassNode {
	var out []*ClassNode

	walkImplementations(iface, func(impl *ClassNode) bool {
		out = append(out, impl)
		return true
	})

	return out
}

// walkImplementations visits each reachable implementation once; visit
// returns false to stop the walk.
func walkImplementations(root *ClassNode, visit func(*ClassNode) bool) {
	visited := map[*ClassNode]bool{root: true}
	queue := root.KnownImplementations().Values()

	for len(queue) > 0 {
		cn := queue[0]
		queue = queue[1:]

		if visited[cn] {
			continue
		}

		visited[cn] = true

		if !visit(cn) {
			return
		}

		queue = append(queue, cn.KnownImplementations().Values()...)
	}
}
