package inject

// Resolver is the factory side of the injector: construction that bypasses
// the singleton cache and the binding registry, producing a brand-new value
// on every call.
//
// The injector itself satisfies Resolver and is reachable through the Self
// constructor, so application code that needs per-call construction obtains
// its Resolver with Inject(in, Self). Tests can Bind a substitute Resolver
// over Self to intercept factory construction and assert on the requests
// without building real values.
type Resolver interface {
	// ResolveAny constructs a new value for c, forwarding args to the build
	// function in order. The result is never cached, and any binding for c
	// is ignored.
	ResolveAny(c AnyConstructor, args ...any) (any, error)
}

// Self is the well-known constructor that resolves to the injector's own
// Resolver. It behaves like any other constructor: cacheable, bindable,
// shadowed by a binding until ResetBindings.
var Self = NewConstructor("inject.Injector", func(in *Injector, _ ...any) (Resolver, error) {
	return in.Root(), nil
})

// ResolveAny constructs a new value for c with the given arguments. Unlike
// Inject this performs no cache lookup, no cache write and no binding check
// on c itself, so every call returns a distinct value even for the same
// constructor and arguments. Build failures are wrapped in a
// ConstructionError; re-entrant resolution of a constructor already being
// built on this chain fails with a CyclicDependencyError.
func (in *Injector) ResolveAny(c AnyConstructor, args ...any) (any, error) {
	child, release, err := in.enterConstruction(c)
	if err != nil {
		return nil, err
	}
	defer release()

	v, err := runBuild(child, c, args)
	if err != nil {
		return nil, &ConstructionError{
			Constructor: c,
			Status:      in.Status(),
			SourceError: err,
		}
	}
	return v, nil
}

// Resolve constructs a fresh value for c through r, forwarding args to the
// build function. It panics if construction fails; use ResolveWithError to
// receive the error instead.
func Resolve[T any](r Resolver, c *Constructor[T], args ...any) T {
	v, err := ResolveWithError(r, c, args...)
	if err != nil {
		panic(err)
	}
	return v
}

// ResolveWithError behaves exactly like Resolve but returns construction
// failures as an error value.
func ResolveWithError[T any](r Resolver, c *Constructor[T], args ...any) (T, error) {
	v, err := r.ResolveAny(c, args...)
	if err != nil {
		var zero T
		return zero, err
	}
	return typed[T](v), nil
}
