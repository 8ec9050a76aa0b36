package graph

import (
	"sort"
	"strings"
	"sync"
)

// Node is one entry of the namespace tree.
//
// Nodes are compared by full name. Inside a single Graph every full name is
// registered once, so pointer identity and name identity coincide.
type Node interface {
	SimpleName() string
	FullName() string
	// Parent is the enclosing node, nil for top-level entries.
	// A node never owns its parent.
	Parent() Node
	Kind() NodeKind
	// Children returns the direct children sorted by simple name.
	Children() []Node
	String() string

	base() *baseNode
}

// Equal reports whether two nodes denote the same full name.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return a.FullName() == b.FullName()
}

type baseNode struct {
	simpleName string
	fullName   string

	mu       sync.RWMutex
	parent   Node
	children map[string]Node
}

func (n *baseNode) init(parent Node, simpleName, fullName string) {
	n.simpleName = simpleName
	n.fullName = fullName
	n.parent = parent
}

func (n *baseNode) base() *baseNode { return n }

func (n *baseNode) SimpleName() string { return n.simpleName }

func (n *baseNode) FullName() string { return n.fullName }

func (n *baseNode) Parent() Node {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.parent
}

// setParent moves n under parent when a placeholder is replaced.
func (n *baseNode) setParent(parent Node) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.parent = parent
}

func (n *baseNode) Children() []Node {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]Node, 0, len(n.children))
	for _, c := range n.children {
		out = append(out, c)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].SimpleName() < out[j].SimpleName()
	})

	return out
}

func (n *baseNode) child(simpleName string) (Node, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	c, ok := n.children[simpleName]

	return c, ok
}

func (n *baseNode) putChild(c Node) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.children == nil {
		n.children = make(map[string]Node)
	}

	n.children[c.SimpleName()] = c
}

// PackageNode is a namespace segment. It is created implicitly for every
// prefix of a registered full name that is not itself a class.
type PackageNode struct {
	baseNode
}

func (p *PackageNode) Kind() NodeKind { return KindPackage }

func (p *PackageNode) String() string {
	return "[package " + p.fullName + "]"
}

// splitName splits a full name on '.' and '$' (nested type separator).
func splitName(fullName string) []string {
	return strings.FieldsFunc(fullName, func(r rune) bool {
		return r == '.' || r == '$'
	})
}

// parentName returns the full name of the enclosing scope ("" at top level).
func parentName(fullName string) string {
	i := strings.LastIndexAny(fullName, ".$")
	if i < 0 {
		return ""
	}

	return fullName[:i]
}
