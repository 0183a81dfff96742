package serviceprovider

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/victormf2/serviceprovider/internal"
)

type ErrorKind int

const (
	// The requested type, or one of its dependencies, has no service
	// definition, no open generic definition and no factory.
	UnregisteredType ErrorKind = iota + 1
	// The container found an implementation but has no way to build it.
	ConstructionFailure
)

func (k ErrorKind) String() string {
	switch k {
	case UnregisteredType:
		return "UnregisteredType"
	case ConstructionFailure:
		return "ConstructionFailure"
	default:
		return "Unknown"
	}
}

var (
	ErrUnregisteredType    = errors.New("unregistered type")
	ErrConstructionFailure = errors.New("construction failure")
)

// ResolutionError is returned by Get when there is no path from the requested
// type to an implementation.
//
// Type is the deepest type that could not be resolved and Root is the type
// originally passed to Get. When both are the same a shorter message is used.
type ResolutionError struct {
	Type reflect.Type
	Root reflect.Type
}

func (e *ResolutionError) Kind() ErrorKind {
	return UnregisteredType
}

func (e *ResolutionError) Error() string {
	if e.Type == e.Root {
		return fmt.Sprintf("Unable to activate type '%s'.", internal.FullName(e.Type))
	}
	return fmt.Sprintf(
		"Unable to resolve type '%s' while attempting to activate '%s'.",
		internal.FullName(e.Type),
		internal.FullName(e.Root),
	)
}

func (e *ResolutionError) Unwrap() error {
	return ErrUnregisteredType
}

func unregisteredType(resolutionType reflect.Type, root reflect.Type) error {
	return &ResolutionError{
		Type: resolutionType,
		Root: root,
	}
}

// ConstructionError is returned when an implementation was selected but the
// container itself cannot build it: an interface type without constructor,
// or a generic specialization that was never declared.
//
// Errors returned by constructors and factories are never wrapped in it.
type ConstructionError struct {
	Implementation string
	Reason         string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("Unable to construct type '%s': %s.", e.Implementation, e.Reason)
}

func (e *ConstructionError) Unwrap() error {
	return ErrConstructionFailure
}

func (e *ConstructionError) Kind() ErrorKind {
	return ConstructionFailure
}

// KindOf reports the ErrorKind of an error produced by the container, or zero
// for errors that came from a constructor or a factory.
func KindOf(err error) ErrorKind {
	var kinded interface{ Kind() ErrorKind }
	if errors.As(err, &kinded) {
		return kinded.Kind()
	}
	return 0
}
