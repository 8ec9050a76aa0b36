package plan

import (
	"fmt"
	"sync"

	"injection-planner/graph"
)

// Bindings supplies the explicit choices a binder made on top of the graph.
// Implementations must be safe for concurrent reads.
type Bindings interface {
	// BoundImplementation returns the implementation bound to an interface.
	BoundImplementation(cn *graph.ClassNode) (*graph.ClassNode, bool)
	// BoundConstructor returns the external constructor class that builds cn.
	BoundConstructor(cn *graph.ClassNode) (*graph.ClassNode, bool)
	// LegacyConstructor returns a constructor that is tried before the
	// injectable ones even though it is not marked injectable.
	LegacyConstructor(cn *graph.ClassNode) (*graph.ConstructorDef, bool)
	// Instance returns a value that is already available for n.
	Instance(n graph.Node) (any, bool)
	// NamedValue returns the configured value of a named parameter.
	NamedValue(np *graph.NamedParameterNode) (string, bool)
}

// StaticBindings is a map backed Bindings. Every Bind method validates the
// binding against the graph and refuses to rebind a node to something else.
type StaticBindings struct {
	g *graph.Graph

	mu           sync.RWMutex
	impls        map[string]*graph.ClassNode
	constructors map[string]*graph.ClassNode
	legacy       map[string]*graph.ConstructorDef
	instances    map[string]any
	values       map[string]string
}

// NewStaticBindings creates empty bindings validated against g.
func NewStaticBindings(g *graph.Graph) *StaticBindings {
	return &StaticBindings{
		g:            g,
		impls:        make(map[string]*graph.ClassNode),
		constructors: make(map[string]*graph.ClassNode),
		legacy:       make(map[string]*graph.ConstructorDef),
		instances:    make(map[string]any),
		values:       make(map[string]string),
	}
}

// BindImplementation binds iface to impl, which must be a known
// implementation of it.
func (s *StaticBindings) BindImplementation(ifaceName, implName string) error {
	iface, err := s.g.Class(ifaceName)
	if err != nil {
		return err
	}

	impl, err := s.g.Class(implName)
	if err != nil {
		return err
	}

	if !impl.IsImplementationOf(iface) {
		return fmt.Errorf("%w: %s does not implement %s", graph.ErrBinding, implName, ifaceName)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return bindOnce(s.impls, ifaceName, impl, sameClass)
}

// BindConstructor binds cn to an external constructor class.
func (s *StaticBindings) BindConstructor(className, factoryName string) error {
	cn, err := s.g.Class(className)
	if err != nil {
		return err
	}

	factory, err := s.g.Class(factoryName)
	if err != nil {
		return err
	}

	if !factory.IsExternalConstructor() {
		return fmt.Errorf("%w: %s is not an external constructor", graph.ErrBinding, factoryName)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return bindOnce(s.constructors, cn.FullName(), factory, sameClass)
}

// BindLegacyConstructor selects the declared constructor of className
// taking exactly the given argument nodes.
func (s *StaticBindings) BindLegacyConstructor(className string, argNames ...string) error {
	cn, err := s.g.Class(className)
	if err != nil {
		return err
	}

	params := make([]graph.Node, len(argNames))

	for i, name := range argNames {
		params[i], err = s.g.Lookup(name)
		if err != nil {
			return err
		}
	}

	def, err := cn.ConstructorDef(params...)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return bindOnce(s.legacy, className, def, func(a, b *graph.ConstructorDef) bool { return a == b })
}

// BindInstance binds a ready value to the node registered under name.
func (s *StaticBindings) BindInstance(name string, v any) error {
	if _, err := s.g.Lookup(name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.instances[name]; ok {
		return fmt.Errorf("%w: %s already bound to an instance", graph.ErrBinding, name)
	}

	s.instances[name] = v

	return nil
}

// BindNamedParameter sets the value of a named parameter. name may be the
// full name or the short name of the parameter.
func (s *StaticBindings) BindNamedParameter(name, value string) error {
	np, err := s.g.NamedParameter(name)
	if err != nil {
		full, ok := s.g.ResolveShortName(name)
		if !ok {
			return err
		}

		if np, err = s.g.NamedParameter(full); err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return bindOnce(s.values, np.FullName(), value, func(a, b string) bool { return a == b })
}

func sameClass(a, b *graph.ClassNode) bool { return graph.Equal(a, b) }

func bindOnce[V any](m map[string]V, key string, v V, same func(a, b V) bool) error {
	if old, ok := m[key]; ok {
		if same(old, v) {
			return nil
		}

		return fmt.Errorf("%w: %s already bound to %v, cannot rebind to %v", graph.ErrBinding, key, old, v)
	}

	m[key] = v

	return nil
}

func (s *StaticBindings) BoundImplementation(cn *graph.ClassNode) (*graph.ClassNode, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	impl, ok := s.impls[cn.FullName()]

	return impl, ok
}

func (s *StaticBindings) BoundConstructor(cn *graph.ClassNode) (*graph.ClassNode, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.constructors[cn.FullName()]

	return f, ok
}

func (s *StaticBindings) LegacyConstructor(cn *graph.ClassNode) (*graph.ConstructorDef, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	def, ok := s.legacy[cn.FullName()]

	return def, ok
}

func (s *StaticBindings) Instance(n graph.Node) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.instances[n.FullName()]

	return v, ok
}

func (s *StaticBindings) NamedValue(np *graph.NamedParameterNode) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[np.FullName()]

	return v, ok
}

// noBindings is used when the planner is created without bindings.
type noBindings struct{}

func (noBindings) BoundImplementation(*graph.ClassNode) (*graph.ClassNode, bool) {
	return nil, false
}

func (noBindings) BoundConstructor(*graph.ClassNode) (*graph.ClassNode, bool) {
	return nil, false
}

func (noBindings) LegacyConstructor(*graph.ClassNode) (*graph.ConstructorDef, bool) {
	return nil, false
}

func (noBindings) Instance(graph.Node) (any, bool) {
	return nil, false
}

func (noBindings) NamedValue(*graph.NamedParameterNode) (string, bool) {
	return "", false
}
