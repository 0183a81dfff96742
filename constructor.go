package serviceprovider

import (
	"fmt"
	"reflect"

	"github.com/victormf2/serviceprovider/internal"
)

// A constructor is how the container learns the dependencies of an
// implementation: its parameters are the types to resolve, in order, and its
// first result is the implementation itself.
type constructor struct {
	function  reflect.Value
	arguments []reflect.Type
	// The constructor returns a (value, error) tuple.
	fallible bool
}

var errorType = reflect.TypeFor[error]()

func newConstructor(implementationType reflect.Type, constructorFunctionInstance any) constructor {
	constructorFunction := reflect.ValueOf(constructorFunctionInstance)
	if !constructorFunction.IsValid() || constructorFunction.Kind() != reflect.Func || constructorFunction.IsNil() {
		panic("constructor must be a function returning exactly one value, or a value and an error")
	}

	constructorType := constructorFunction.Type()
	if constructorType.NumOut() < 1 || constructorType.NumOut() > 2 || constructorType.IsVariadic() {
		panic("constructor must be a function returning exactly one value, or a value and an error")
	}

	if constructorType.NumOut() == 2 && !constructorType.Out(1).AssignableTo(errorType) {
		panic("constructor must be a function returning exactly one value, or a value and an error")
	}

	if constructorType.Out(0) != implementationType {
		panic(fmt.Sprintf("the type parameter %v is not the same as the return type of the constructor %v", implementationType, constructorType.Out(0)))
	}

	arguments := make([]reflect.Type, constructorType.NumIn())
	for i := range arguments {
		arguments[i] = constructorType.In(i)
	}

	return constructor{
		function:  constructorFunction,
		arguments: arguments,
		fallible:  constructorType.NumOut() == 2,
	}
}

// Errors returned by the constructor are handed back untouched.
func (ctor constructor) call(arguments []reflect.Value) (any, error) {
	results := ctor.function.Call(arguments)

	if ctor.fallible {
		if err, _ := results[1].Interface().(error); err != nil {
			return nil, err
		}
	}

	return results[0].Interface(), nil
}

// Builds an implementation that has no registered constructor, the same way
// a parameterless constructor would: a pointer to a fresh zero value, or the
// zero value itself.
func constructZero(implementationType reflect.Type) (any, error) {
	switch implementationType.Kind() {
	case reflect.Pointer:
		return reflect.New(implementationType.Elem()).Interface(), nil
	case reflect.Interface:
		return nil, &ConstructionError{
			Implementation: internal.FullName(implementationType),
			Reason:         "interface types need a registered constructor",
		}
	default:
		return reflect.New(implementationType).Elem().Interface(), nil
	}
}
