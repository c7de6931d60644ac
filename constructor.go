package inject

import (
	"fmt"
	"reflect"
)

// AnyConstructor is the type-erased view of a Constructor. The injector uses
// it as the key for both the instance cache and the binding registry: two
// requests land in the same slot only when they carry the same handle, so
// identity is by handle reference, never by name or shape.
type AnyConstructor interface {
	// Name returns the diagnostic name of the constructor.
	Name() string

	construct(in *Injector, args []any) (any, error)
}

// Constructor is an instantiable handle for a value of type T. Handles are
// created once with NewConstructor, typically as package-level variables, and
// passed to Inject, Resolve and Bind. Two handles created from the same build
// function are still distinct constructors.
type Constructor[T any] struct {
	name  string
	build func(in *Injector, args ...any) (T, error)
}

// NewConstructor creates a constructor handle that builds its value with the
// given function. The build function receives the injector so it can request
// its own dependencies, plus any arguments forwarded by the resolver path;
// the singleton path always calls it with no arguments.
//
// If name is empty it is derived from T. A nil build function panics: there
// is no way to resolve such a handle later, so this fails at creation.
func NewConstructor[T any](name string, build func(in *Injector, args ...any) (T, error)) *Constructor[T] {
	if build == nil {
		panic("constructor must have a build function")
	}
	if name == "" {
		name = reflect.TypeOf((*T)(nil)).Elem().String()
	}
	return &Constructor[T]{
		name:  name,
		build: build,
	}
}

// Name returns the diagnostic name of the constructor.
func (c *Constructor[T]) Name() string {
	return c.name
}

// String returns a string representation of the constructor.
func (c *Constructor[T]) String() string {
	return fmt.Sprintf("Constructor[%v](%s)", reflect.TypeOf((*T)(nil)).Elem(), c.name)
}

func (c *Constructor[T]) construct(in *Injector, args []any) (any, error) {
	v, err := c.build(in, args...)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// typed converts a stored value back to its constructor's type. Values enter
// the maps either from a typed build function or a typed Bind call, so the
// assertion cannot fail for real constructors.
func typed[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}
	return v.(T)
}
