package serviceprovider

import (
	"fmt"
	"reflect"

	"github.com/sirupsen/logrus"
	"github.com/victormf2/serviceprovider/internal"
)

// Builds, or retrieves from the cache, the instance registered for T.
//
// If T was registered with AddFactory, the factory is called every time.
// Otherwise the implementation registered for T is looked up in the added
// instances, then in the resolved instances, and only built when neither has
// it. Instances are cached per implementation: two services mapped to the
// same implementation share one instance.
//
// Circular dependencies are not detected and will exhaust the stack.
func Get[T any](c *Container) (T, error) {
	var zero T // small trick since x := T{} is not possible

	requestedType := reflect.TypeFor[T]()
	instance, err := c.Get(requestedType)
	if err != nil {
		return zero, err
	}
	if instance == nil {
		return zero, nil
	}

	value, ok := instance.(T)
	if !ok {
		return zero, fmt.Errorf("resolved instance of type %T is not assignable to %v", instance, requestedType)
	}

	return value, nil
}

// Non generic version of Get, mostly useful inside factories.
func (c *Container) Get(requestedType reflect.Type) (any, error) {
	if requestedType == nil {
		panic("requested type must not be nil")
	}
	return c.resolve(requestedType, requestedType)
}

// rootType is the type originally requested, kept only for error messages.
func (c *Container) resolve(requestedType reflect.Type, rootType reflect.Type) (any, error) {
	logger := c.logger.WithField("type", internal.FullName(requestedType))

	var implementationType reflect.Type
	_, defined := c.serviceDefinitions[requestedType]

	if !defined && isGeneric(requestedType) {
		specialized, err := c.specialize(requestedType, rootType)
		if err != nil {
			return nil, err
		}
		implementationType = specialized
	} else if factory, found := c.factories[requestedType]; found {
		logger.Debug("calling factory")
		return factory(c)
	} else if !defined {
		return nil, unregisteredType(requestedType, rootType)
	} else {
		implementationType = c.serviceDefinitions[requestedType]
	}

	logger = logger.WithField("implementation", internal.FullName(implementationType))

	if instance, found := c.addedInstances[implementationType]; found {
		logger.Debug("using added instance")
		return instance, nil
	}

	if instance, found := c.resolvedInstances[implementationType]; found {
		logger.Debug("using resolved instance")
		return instance, nil
	}

	instance, err := c.construct(implementationType, rootType)
	if err != nil {
		return nil, err
	}

	c.resolvedInstances[implementationType] = instance
	logger.Debug("instance resolved")

	return instance, nil
}

// Here is where the reflection dark magic happens.
//
// Recursively resolves all parameters of the implementation constructor, then
// calls it with the resolved dependencies.
func (c *Container) construct(implementationType reflect.Type, rootType reflect.Type) (any, error) {
	ctor, found := c.constructors[implementationType]
	if !found {
		return constructZero(implementationType)
	}

	callArguments := make([]reflect.Value, len(ctor.arguments))
	for argumentIndex, argumentType := range ctor.arguments {
		argument, found := c.resolvedInstances[argumentType]
		if !found {
			var err error
			argument, err = c.resolve(argumentType, rootType)
			if err != nil {
				return nil, err
			}
		}

		value, err := argumentValue(argument, argumentType)
		if err != nil {
			return nil, err
		}
		callArguments[argumentIndex] = value
	}

	c.logger.WithFields(logrus.Fields{
		"implementation": internal.FullName(implementationType),
		"arguments":      len(callArguments),
	}).Debug("calling constructor")

	return ctor.call(callArguments)
}

// reflect.ValueOf(nil) is not a valid argument, factories are allowed to
// return nil for interfaces, pointers, slices and so on.
func argumentValue(argument any, argumentType reflect.Type) (reflect.Value, error) {
	if argument == nil {
		return reflect.Zero(argumentType), nil
	}

	value := reflect.ValueOf(argument)
	if !value.Type().AssignableTo(argumentType) {
		return reflect.Value{}, fmt.Errorf("resolved instance of type %T is not assignable to %v", argument, argumentType)
	}
	return value, nil
}
