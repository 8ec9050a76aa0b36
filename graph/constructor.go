package graph

import (
	"fmt"
	"strings"
)

// ConstructorArg is one parameter of a constructor.
type ConstructorArg struct {
	// Type is the full name of the parameter type.
	Type string
	// Name is the full name of the named parameter bound to this argument,
	// empty when the argument is resolved by type.
	Name string
	// Future marks a late-bound argument: the constructor receives a handle
	// that is resolved after the enclosing object exists.
	Future bool
}

// Target returns the full name of the node that satisfies the argument.
func (a ConstructorArg) Target() string {
	if a.Name != "" {
		return a.Name
	}

	return a.Type
}

func (a ConstructorArg) String() string {
	s := a.Type
	if a.Name != "" {
		s += " @Parameter(" + a.Name + ")"
	}

	if a.Future {
		s = "InjectionFuture<" + s + ">"
	}

	return s
}

// ConstructorDef describes the signature of one constructor.
type ConstructorDef struct {
	// ClassName is the full name of the declaring class.
	ClassName string
	Args      []ConstructorArg
}

// NewConstructorDef validates and builds a constructor description.
// A constructor that repeats a parameter cannot be injected and is rejected.
func NewConstructorDef(className string, args ...ConstructorArg) (*ConstructorDef, error) {
	for i := range args {
		if args[i].Type == "" {
			return nil, fmt.Errorf("%w: %s: argument %d has no type", ErrInvalidConstructor, className, i)
		}

		for j := i + 1; j < len(args); j++ {
			if args[i] == args[j] {
				return nil, fmt.Errorf("%w: %s: repeated constructor parameter %s",
					ErrInvalidConstructor, className, args[i])
			}
		}
	}

	return &ConstructorDef{ClassName: className, Args: args}, nil
}

// TakesParameters reports whether the constructor is invoked with exactly
// the given parameter nodes, in order, with no extras and no gaps.
func (c *ConstructorDef) TakesParameters(params []Node) bool {
	if len(params) != len(c.Args) {
		return false
	}

	for i, p := range params {
		if p == nil || p.FullName() != c.Args[i].Target() {
			return false
		}
	}

	return true
}

// EqualsIgnoreOrder reports whether both constructors take the same
// parameters, regardless of their order.
func (c *ConstructorDef) EqualsIgnoreOrder(other *ConstructorDef) bool {
	if len(c.Args) != len(other.Args) {
		return false
	}

	for _, a := range c.Args {
		if !other.hasArg(a) {
			return false
		}
	}

	return true
}

// IsMoreSpecificThan reports whether c takes every parameter of other plus
// at least one more.
func (c *ConstructorDef) IsMoreSpecificThan(other *ConstructorDef) bool {
	for _, a := range other.Args {
		if !c.hasArg(a) {
			return false
		}
	}

	return len(c.Args) > len(other.Args)
}

func (c *ConstructorDef) hasArg(a ConstructorArg) bool {
	for _, b := range c.Args {
		if a == b {
			return true
		}
	}

	return false
}

func (c *ConstructorDef) String() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.String()
	}

	return "(" + strings.Join(parts, ",") + ")"
}
