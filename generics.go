package serviceprovider

import (
	"fmt"
	"reflect"

	"github.com/sirupsen/logrus"
	"github.com/victormf2/serviceprovider/internal"
)

// OpenType identifies a generic type without its type arguments, like
// Repository in Repository[User].
//
// Go has no value for an uninstantiated generic type, so an OpenType is
// obtained from any instantiation of it with OpenTypeOf.
type OpenType struct {
	name string
}

// OpenTypeOf returns the open form of the instantiated generic type T. The
// type arguments used to instantiate T don't matter:
//
//	serviceprovider.OpenTypeOf[Repository[any]]()
//
// Pointers are part of the open form, so OpenTypeOf[*SqlRepository[any]]()
// is not the same as OpenTypeOf[SqlRepository[any]]().
//
// Panics if T is not an instantiated generic type.
func OpenTypeOf[T any]() OpenType {
	t := reflect.TypeFor[T]()
	open, _, ok := internal.GenericName(t)
	if !ok {
		panic(fmt.Sprintf("%v is not an instantiated generic type", t))
	}
	return OpenType{name: open}
}

func (o OpenType) String() string {
	return o.name
}

// A generic instantiation is found by its open form plus the type arguments
// exactly as reflect spells them.
type templateKey struct {
	open      OpenType
	arguments string
}

// Registers the open generic implementation to specialize when an
// instantiation of the open generic service is requested.
//
// A more specific registration of an instantiation, with Add, AddInstance or
// AddFactory, takes precedence over the open one.
//
// Go cannot instantiate generic types at runtime, so every instantiation of
// the implementation that should be resolved must be known by the container,
// either through Provide or through Declare.
func (c *Container) AddOpen(serviceType OpenType, implementationType OpenType) {
	if serviceType.name == "" || implementationType.name == "" {
		panic("open types must be obtained with OpenTypeOf")
	}

	c.openDefinitions[serviceType] = implementationType

	c.logger.WithFields(logrus.Fields{
		"type":           serviceType.name,
		"implementation": implementationType.name,
	}).Debug("open service definition added")
}

// Makes TImplementation known to the container without a constructor. It
// will be built from its zero value.
//
// This is only needed for instantiations of generic types that should be
// found by an open registration. Provide already declares its type.
func Declare[TImplementation any](c *Container) {
	c.declare(reflect.TypeFor[TImplementation]())
}

func (c *Container) declare(implementationType reflect.Type) {
	open, arguments, ok := internal.GenericName(implementationType)
	if !ok {
		return
	}

	c.templates[templateKey{open: OpenType{name: open}, arguments: arguments}] = implementationType
}

func isGeneric(t reflect.Type) bool {
	_, _, ok := internal.GenericName(t)
	return ok
}

// Finds the implementation of a generic instantiation that has no service
// definition of its own, by pairing the open implementation registered for
// its open form with its type arguments.
func (c *Container) specialize(requestedType reflect.Type, rootType reflect.Type) (reflect.Type, error) {
	open, arguments, _ := internal.GenericName(requestedType)

	openImplementation, found := c.openDefinitions[OpenType{name: open}]
	if !found {
		return nil, unregisteredType(requestedType, rootType)
	}

	implementationType, found := c.templates[templateKey{open: openImplementation, arguments: arguments}]
	if !found {
		return nil, &ConstructionError{
			Implementation: fmt.Sprintf("%s[%s]", openImplementation.name, arguments),
			Reason:         "the instantiation was never declared with Provide or Declare",
		}
	}

	c.logger.WithFields(logrus.Fields{
		"type":           internal.FullName(requestedType),
		"implementation": internal.FullName(implementationType),
	}).Debug("open service definition specialized")

	return implementationType, nil
}
