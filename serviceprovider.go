package serviceprovider

import (
	"fmt"
	"reflect"

	"github.com/sirupsen/logrus"
	"github.com/victormf2/serviceprovider/internal"
)

// Container is the main object to register and resolve dependencies.
//
// The generic part of the API is exposed as function calls instead of
// methods, because Go does not allow methods with type parameters.
//
// You can read more about it here:
// https://go.googlesource.com/proposal/+/refs/heads/master/design/43651-type-parameters.md#No-parameterized-methods
//
// Every Container owns its own registrations and caches, there is no shared
// or global state between two containers. A Container does no locking: either
// build your object graph during a single threaded startup, or guard every
// registration, resolution, Clear and Reset with the same lock.
type Container struct {
	// Service type -> implementation type. Last registration wins.
	serviceDefinitions map[reflect.Type]reflect.Type
	// Same as serviceDefinitions, for uninstantiated generic types.
	openDefinitions map[OpenType]OpenType
	// Known instantiations of generic implementations, so that an open
	// definition can be specialized with the requested type arguments.
	templates map[templateKey]reflect.Type
	// Implementation type -> constructor. Implementations without one are
	// built from their zero value.
	constructors map[reflect.Type]constructor
	// Service type -> factory. First registration wins.
	factories map[reflect.Type]Factory
	// Implementation type -> instance built during resolution. You can think
	// of it as a cache, emptied by Clear and Reset.
	resolvedInstances map[reflect.Type]any
	// Implementation type -> instance registered with AddInstance. Takes
	// priority over resolvedInstances and is only emptied by Reset.
	addedInstances map[reflect.Type]any

	logger *logrus.Entry
}

// Factory builds an instance on every resolution of the service it was
// registered for. Its result is never cached by the container.
type Factory func(c *Container) (any, error)

type Option func(c *Container)

// WithLogger sets the entry used for the container debug logs.
func WithLogger(logger *logrus.Entry) Option {
	return func(c *Container) {
		c.logger = logger
	}
}

// Instantiates a new, empty Container.
func NewContainer(options ...Option) *Container {
	c := &Container{
		serviceDefinitions: map[reflect.Type]reflect.Type{},
		openDefinitions:    map[OpenType]OpenType{},
		templates:          map[templateKey]reflect.Type{},
		constructors:       map[reflect.Type]constructor{},
		factories:          map[reflect.Type]Factory{},
		resolvedInstances:  map[reflect.Type]any{},
		addedInstances:     map[reflect.Type]any{},
		logger:             logrus.NewEntry(logrus.StandardLogger()),
	}

	for _, option := range options {
		option(c)
	}
	c.logger = c.logger.WithField("component", "serviceprovider")

	return c
}

// Registers TImplementation as the implementation to build when TService is
// requested.
//
// TImplementation must be assignable to TService. If Add is called multiple
// times for the same TService, the last registration is considered for
// resolution.
//
// Nothing checks that TImplementation can be built until it is resolved.
// Use Provide to tell the container how to build it.
func Add[TService any, TImplementation any](c *Container) {
	c.Add(reflect.TypeFor[TService](), reflect.TypeFor[TImplementation]())
}

// Registers T as its own implementation.
func AddSelf[T any](c *Container) {
	t := reflect.TypeFor[T]()
	c.Add(t, t)
}

// Registers implementationType as the implementation to build when
// serviceType is requested. It's the non generic version of Add.
func (c *Container) Add(serviceType reflect.Type, implementationType reflect.Type) {
	if serviceType == nil || implementationType == nil {
		panic("service and implementation types must not be nil")
	}
	if !implementationType.AssignableTo(serviceType) {
		panic(fmt.Sprintf("the implementation type %v is not assignable to the service type %v", implementationType, serviceType))
	}

	c.addServiceDefinition(serviceType, implementationType)
}

// Registers an instance to be returned whenever TService is requested.
//
// The instance is cached under its dynamic type, so any other service
// mapped to that same type also resolves to it. It survives Clear, and is
// only removed by Reset.
func AddInstance[TService any](c *Container, instance TService) {
	instanceValue := any(instance)
	if instanceValue == nil {
		panic(fmt.Sprintf("cannot register a nil instance for %v", reflect.TypeFor[TService]()))
	}

	instanceType := reflect.TypeOf(instanceValue)
	c.addServiceDefinition(reflect.TypeFor[TService](), instanceType)
	c.addedInstances[instanceType] = instanceValue

	c.logger.WithField("implementation", internal.FullName(instanceType)).Debug("instance added")
}

// Registers a factory to be called whenever TService is requested.
//
// Factories take precedence over Add registrations of the same TService, and
// their results are not cached. Only the first factory registered for a type
// is kept, later ones are ignored.
func AddFactory[TService any](c *Container, factory func(c *Container) (TService, error)) {
	c.AddFactory(reflect.TypeFor[TService](), func(c *Container) (any, error) {
		return factory(c)
	})
}

// Non generic version of AddFactory.
func (c *Container) AddFactory(serviceType reflect.Type, factory Factory) {
	if serviceType == nil || factory == nil {
		panic("service type and factory must not be nil")
	}

	logger := c.logger.WithField("type", internal.FullName(serviceType))
	if _, found := c.factories[serviceType]; found {
		logger.Debug("factory already registered, ignoring")
		return
	}

	c.factories[serviceType] = factory
	logger.Debug("factory added")
}

// Tells the container how to build TImplementation.
//
// constructor must be a function returning exactly one value or a (value, error) tuple.
// The type of the return value must be exactly equal to the type parameter TImplementation.
// The constructor parameters are resolved from the container when TImplementation is built.
//
// If Provide is called multiple times, the last constructor is considered for resolution.
func Provide[TImplementation any](c *Container, constructor any) {
	implementationType := reflect.TypeFor[TImplementation]()
	c.constructors[implementationType] = newConstructor(implementationType, constructor)
	c.declare(implementationType)

	c.logger.WithFields(logrus.Fields{
		"implementation": internal.FullName(implementationType),
		"dependencies":   internal.FullNames(c.constructors[implementationType].arguments),
	}).Debug("constructor provided")
}

// Removes the instances built during resolution from the cache. Instances
// registered with AddInstance are kept.
func (c *Container) Clear() {
	clear(c.resolvedInstances)
	c.logger.Debug("resolved instances cleared")
}

// Removes every cached instance, including the ones registered with
// AddInstance. Registrations, constructors and factories are kept.
func (c *Container) Reset() {
	clear(c.resolvedInstances)
	clear(c.addedInstances)
	c.logger.Debug("resolved and added instances cleared")
}

func (c *Container) addServiceDefinition(serviceType reflect.Type, implementationType reflect.Type) {
	c.serviceDefinitions[serviceType] = implementationType

	c.logger.WithFields(logrus.Fields{
		"type":           internal.FullName(serviceType),
		"implementation": internal.FullName(implementationType),
	}).Debug("service definition added")
}
