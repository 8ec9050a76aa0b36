package graph

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"injection-planner/internal/match"
)

// maxSuggestions bounds the "did you mean" list of name resolution errors.
const maxSuggestions = 3

// minSuggestionScore is the lowest normalized similarity worth suggesting.
const minSuggestionScore = 0.5

// Graph owns every node of one model. It is safe for concurrent use: binders
// may keep registering nodes and implementation edges while planners read.
type Graph struct {
	mu         sync.RWMutex
	root       PackageNode
	nodes      map[string]Node
	shortNames map[string]*NamedParameterNode
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{
		nodes:      make(map[string]Node),
		shortNames: make(map[string]*NamedParameterNode),
	}
}

// RegisterClass adds a class node. Enclosing package nodes are created on demand.
func (g *Graph) RegisterClass(spec ClassSpec) (*ClassNode, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	parent, simple, err := g.prepareLocked(spec.Name)
	if err != nil {
		return nil, err
	}

	cn, err := newClassNode(parent, simple, spec)
	if err != nil {
		return nil, err
	}

	g.attachLocked(parent, cn)

	return cn, nil
}

// RegisterNamedParameter adds a named parameter node.
func (g *Graph) RegisterNamedParameter(spec NamedParameterSpec) (*NamedParameterNode, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if spec.ValueType == "" {
		return nil, fmt.Errorf("named parameter %s has no value type", spec.Name)
	}

	if spec.ShortName != "" {
		if old, ok := g.shortNames[spec.ShortName]; ok {
			return nil, fmt.Errorf("%w: short name %q already used by %s",
				ErrDuplicateNode, spec.ShortName, old.FullName())
		}
	}

	parent, simple, err := g.prepareLocked(spec.Name)
	if err != nil {
		return nil, err
	}

	np := &NamedParameterNode{
		valueType:  spec.ValueType,
		def:        spec.Default,
		hasDefault: spec.HasDefault,
		shortName:  spec.ShortName,
		doc:        spec.Documentation,
	}
	np.init(parent, simple, spec.Name)

	g.attachLocked(parent, np)

	if spec.ShortName != "" {
		g.shortNames[spec.ShortName] = np
	}

	return np, nil
}

// prepareLocked validates fullName and returns the enclosing node, creating
// package nodes for missing prefixes.
func (g *Graph) prepareLocked(fullName string) (Node, string, error) {
	segments := splitName(fullName)
	if len(segments) == 0 {
		return nil, "", fmt.Errorf("invalid node name %q", fullName)
	}

	if old, ok := g.nodes[fullName]; ok {
		if _, placeholder := old.(*PackageNode); !placeholder {
			return nil, "", fmt.Errorf("%w: %s", ErrDuplicateNode, fullName)
		}
	}

	scope := parentName(fullName)
	if scope == "" {
		return &g.root, segments[len(segments)-1], nil
	}

	parent, err := g.scopeLocked(scope)
	if err != nil {
		return nil, "", err
	}

	return parent, segments[len(segments)-1], nil
}

// scopeLocked returns the node named fullName, creating package nodes for it
// and its prefixes when absent.
func (g *Graph) scopeLocked(fullName string) (Node, error) {
	if n, ok := g.nodes[fullName]; ok {
		if n.Kind() == KindNamedParameter {
			return nil, fmt.Errorf("named parameter %s cannot enclose other nodes", fullName)
		}

		return n, nil
	}

	var parent Node = &g.root

	if scope := parentName(fullName); scope != "" {
		var err error

		parent, err = g.scopeLocked(scope)
		if err != nil {
			return nil, err
		}
	}

	segments := splitName(fullName)
	pkg := &PackageNode{}
	pkg.init(parent, segments[len(segments)-1], fullName)
	g.attachLocked(parent, pkg)

	return pkg, nil
}

// attachLocked links n under parent, taking over the children of a package
// placeholder that was registered under the same name.
func (g *Graph) attachLocked(parent Node, n Node) {
	if old, ok := g.nodes[n.FullName()]; ok {
		for _, c := range old.Children() {
			c.base().setParent(n)
			n.base().putChild(c)
		}
	}

	parent.base().putChild(n)
	g.nodes[n.FullName()] = n
}

// Implements records impl as a known implementation of iface.
func (g *Graph) Implements(implName, ifaceName string) error {
	if implName == ifaceName {
		return fmt.Errorf("%w: %s cannot implement itself", ErrBinding, implName)
	}

	impl, err := g.Class(implName)
	if err != nil {
		return err
	}

	iface, err := g.Class(ifaceName)
	if err != nil {
		return err
	}

	iface.PutImpl(impl)

	return nil
}

// Lookup returns the node registered under fullName. Unknown names yield a
// *NameResolutionError listing the closest registered names.
func (g *Graph) Lookup(fullName string) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if n, ok := g.nodes[fullName]; ok {
		return n, nil
	}

	return nil, &NameResolutionError{Name: fullName, Suggestions: g.suggestLocked(fullName)}
}

// Class returns the class node registered under fullName.
func (g *Graph) Class(fullName string) (*ClassNode, error) {
	n, err := g.Lookup(fullName)
	if err != nil {
		return nil, err
	}

	cn, ok := n.(*ClassNode)
	if !ok {
		return nil, fmt.Errorf("%w: %s is a %s, not a class", ErrBinding, fullName, n.Kind())
	}

	return cn, nil
}

// NamedParameter returns the named parameter registered under fullName.
func (g *Graph) NamedParameter(fullName string) (*NamedParameterNode, error) {
	n, err := g.Lookup(fullName)
	if err != nil {
		return nil, err
	}

	np, ok := n.(*NamedParameterNode)
	if !ok {
		return nil, fmt.Errorf("%w: %s is a %s, not a named parameter", ErrBinding, fullName, n.Kind())
	}

	return np, nil
}

// ShortNames returns all registered short names, sorted.
func (g *Graph) ShortNames() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0, len(g.shortNames))
	for s := range g.shortNames {
		out = append(out, s)
	}

	sort.Strings(out)

	return out
}

// ResolveShortName maps a short name to the full name of its named parameter.
func (g *Graph) ResolveShortName(short string) (string, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	np, ok := g.shortNames[short]
	if !ok {
		return "", false
	}

	return np.FullName(), true
}

// Nodes returns every registered node sorted by full name.
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].FullName() < out[j].FullName()
	})

	return out
}

// ToPrettyString renders the namespace tree, one node per line, indented by depth.
func (g *Graph) ToPrettyString() string {
	var sb strings.Builder

	for _, n := range g.root.Children() {
		writeIndented(&sb, n, 0)
	}

	return sb.String()
}

func writeIndented(sb *strings.Builder, n Node, level int) {
	sb.WriteString(strings.Repeat("\t", level))
	sb.WriteString(n.String())
	sb.WriteByte('\n')

	for _, c := range n.Children() {
		writeIndented(sb, c, level+1)
	}
}

// suggestLocked ranks registered class and parameter names by similarity to name.
func (g *Graph) suggestLocked(name string) []string {
	names := make([]string, 0, len(g.nodes))

	for full, n := range g.nodes {
		if n.Kind() != KindPackage {
			names = append(names, full)
		}
	}

	return match.Rank(name, names).AboveThreshold(minSuggestionScore).Top(maxSuggestions).Names()
}
