package graph

import (
	"fmt"
	"strings"

	"injection-planner/monotonic"
)

// ClassSpec is what a binder knows about a class when registering it.
type ClassSpec struct {
	// Name is the full name, segments separated by '.' ('$' for nested types).
	Name string
	// Injectable is false for types that can never be injected, e.g. nested
	// types that need an enclosing instance nobody supplies.
	Injectable bool
	// Unit marks an enclosing type whose nested types are built from one
	// shared instance of it.
	Unit bool
	// ExternalConstructor marks factory types: the object they produce is
	// the injection result, not the factory itself.
	ExternalConstructor bool
	// InjectableConstructors are eligible for automatic injection; the order
	// is the preference order.
	InjectableConstructors []*ConstructorDef
	// AllConstructors lists every declared constructor. Injectable ones that
	// are missing here are appended.
	AllConstructors []*ConstructorDef
	// DefaultImplementation names the implementation preferred when nothing
	// is bound explicitly. Empty means none.
	DefaultImplementation string
}

// ClassNode models one class or interface.
type ClassNode struct {
	baseNode

	injectable          bool
	unit                bool
	externalConstructor bool

	injectableConstructors []*ConstructorDef
	allConstructors        []*ConstructorDef

	knownImpls  monotonic.Set[*ClassNode]
	defaultImpl string
}

func newClassNode(parent Node, simpleName string, spec ClassSpec) (*ClassNode, error) {
	if !spec.Injectable && len(spec.InjectableConstructors) > 0 {
		return nil, fmt.Errorf("%w: cannot inject non-static member/local class %s",
			ErrInvalidConstructor, spec.Name)
	}

	cn := &ClassNode{
		injectable:          spec.Injectable,
		unit:                spec.Unit,
		externalConstructor: spec.ExternalConstructor,
		defaultImpl:         spec.DefaultImplementation,
	}
	cn.init(parent, simpleName, spec.Name)

	for _, def := range spec.InjectableConstructors {
		def, err := ownConstructor(spec.Name, def)
		if err != nil {
			return nil, err
		}

		for _, prev := range cn.injectableConstructors {
			if prev.EqualsIgnoreOrder(def) {
				return nil, fmt.Errorf("%w: ambiguous constructors in %s: %s differs from %s only by parameter order",
					ErrInvalidConstructor, spec.Name, def, prev)
			}
		}

		cn.injectableConstructors = append(cn.injectableConstructors, def)
	}

	for _, def := range spec.AllConstructors {
		def, err := ownConstructor(spec.Name, def)
		if err != nil {
			return nil, err
		}

		cn.allConstructors = append(cn.allConstructors, def)
	}

	for _, def := range cn.injectableConstructors {
		if !containsConstructor(cn.allConstructors, def) {
			cn.allConstructors = append(cn.allConstructors, def)
		}
	}

	return cn, nil
}

// ownConstructor checks that def belongs to class and stamps the class name
// on definitions that omitted it.
func ownConstructor(class string, def *ConstructorDef) (*ConstructorDef, error) {
	if def == nil {
		return nil, fmt.Errorf("%w: nil constructor for %s", ErrInvalidConstructor, class)
	}

	switch def.ClassName {
	case class:
		return def, nil
	case "":
		cp := *def
		cp.ClassName = class

		return &cp, nil
	default:
		return nil, fmt.Errorf("%w: constructor of %s registered on %s",
			ErrInvalidConstructor, def.ClassName, class)
	}
}

func containsConstructor(defs []*ConstructorDef, def *ConstructorDef) bool {
	for _, d := range defs {
		if d == def || (len(d.Args) == len(def.Args) && d.String() == def.String()) {
			return true
		}
	}

	return false
}

func (c *ClassNode) Kind() NodeKind { return KindClass }

// IsInjectionCandidate reports whether the class is a valid injection target.
func (c *ClassNode) IsInjectionCandidate() bool { return c.injectable }

func (c *ClassNode) IsUnit() bool { return c.unit }

func (c *ClassNode) IsExternalConstructor() bool { return c.externalConstructor }

// InjectableConstructors returns the constructors eligible for automatic
// injection, in preference order.
func (c *ClassNode) InjectableConstructors() []*ConstructorDef {
	return append([]*ConstructorDef(nil), c.injectableConstructors...)
}

// AllConstructors returns every declared constructor.
func (c *ClassNode) AllConstructors() []*ConstructorDef {
	return append([]*ConstructorDef(nil), c.allConstructors...)
}

// DefaultImplementation returns the preferred implementation name, or "".
func (c *ClassNode) DefaultImplementation() string { return c.defaultImpl }

// PutImpl records impl as a known implementation. Recording it again is a no-op.
func (c *ClassNode) PutImpl(impl *ClassNode) {
	c.knownImpls.Add(impl)
}

// KnownImplementations returns a point-in-time snapshot of the implementations
// registered so far. The caller may grow the snapshot freely.
func (c *ClassNode) KnownImplementations() *monotonic.Set[*ClassNode] {
	return c.knownImpls.Snapshot()
}

// ConstructorDef returns the declared constructor taking exactly params.
// The error wraps ErrBinding when the class is not injectable or no
// constructor matches.
func (c *ClassNode) ConstructorDef(params ...Node) (*ConstructorDef, error) {
	if !c.injectable {
		return nil, fmt.Errorf("%w: cannot inject non-static member/local class %s", ErrBinding, c.fullName)
	}

	for _, def := range c.allConstructors {
		if def.TakesParameters(params) {
			return def, nil
		}
	}

	names := make([]string, len(params))
	for i, p := range params {
		if p != nil {
			names[i] = p.FullName()
		}
	}

	return nil, fmt.Errorf("%w: could not find requested constructor (%s) for class %s",
		ErrBinding, strings.Join(names, ","), c.fullName)
}

// IsImplementationOf reports whether c is iface or a (possibly transitive)
// known implementation of it.
func (c *ClassNode) IsImplementationOf(iface *ClassNode) bool {
	return IsImplementationOf(c, iface)
}

func (c *ClassNode) String() string {
	parts := make([]string, len(c.injectableConstructors))
	for i, def := range c.injectableConstructors {
		parts[i] = def.String()
	}

	if len(parts) == 0 {
		return "[class " + c.fullName + "]"
	}

	return "[class " + c.fullName + "]: " + strings.Join(parts, ", ")
}
