package graph

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrBinding reports a request that is inconsistent with the model, e.g.
	// asking for a constructor that a class does not declare.
	ErrBinding = errors.New("binding error")
	// ErrNameResolution is returned when a full name is not registered.
	ErrNameResolution = errors.New("name resolution error")
	// ErrDuplicateNode is returned when a full name is registered twice.
	ErrDuplicateNode = errors.New("node already registered")
	// ErrInvalidConstructor is returned for malformed constructor declarations.
	ErrInvalidConstructor = errors.New("invalid constructor")
)

// NameResolutionError carries the unresolved name and the closest registered names.
type NameResolutionError struct {
	Name        string
	Suggestions []string
}

func (e *NameResolutionError) Error() string {
	msg := fmt.Sprintf("%v: %q is not registered", ErrNameResolution, e.Name)
	if len(e.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(e.Suggestions, ", ") + "?)"
	}

	return msg
}

func (e *NameResolutionError) Unwrap() error {
	return ErrNameResolution
}
