package inject

import (
	"context"
	"reflect"
	"sync"
)

// Injector is the resolution engine. It owns two maps keyed by constructor
// identity: the instance cache, which holds the memoized singleton for every
// constructor resolved so far, and the binding registry, which holds
// substitute values that take precedence over real construction.
//
// Resolution of a constructor C goes through three steps, in order:
//
//  1. If a binding exists for C, the bound value is returned. Nothing is
//     constructed and the instance cache is neither consulted nor written.
//  2. If the instance cache holds a value for C, it is returned.
//  3. Otherwise C's build function runs with no arguments, the result is
//     stored in the instance cache, and returned. The build function receives
//     a derived injector, so any Inject calls it makes resolve nested
//     dependencies through this same algorithm before the build returns. The
//     graph is therefore completed depth-first, on demand, at first use.
//
// Step 3 writes the cache at most once per constructor, and only when the
// build function returns without error. A failed or panicking build leaves
// no cache entry behind, and re-entrant resolution of a constructor that is
// still being built fails with a CyclicDependencyError instead of recursing
// forever.
//
// The maps are guarded for concurrent use; construction itself runs outside
// the lock so nested resolution cannot deadlock. When two goroutines race to
// construct the same singleton, the first completed construction wins the
// cache slot and both receive the same instance.
//
// An Injector is also a Resolver, reachable through the Self constructor, so
// the fresh-instance factory path is available behind a bindable seam.
type Injector struct {
	state *state

	// frame is non-nil only on the derived injectors handed to build
	// functions. It carries the in-progress markers for one resolution
	// chain.
	frame *frame
}

// state is shared between the root injector and every injector derived from
// it during resolution.
type state struct {
	lock      sync.RWMutex
	instances map[AnyConstructor]any
	bindings  map[AnyConstructor]any

	// order records successful constructions for reverse-order teardown.
	order []AnyConstructor

	cleanupEnabled bool
	cleanupFuncs   map[reflect.Type]func(any)

	timingRoot context.Context

	root *Injector
}

// New creates an empty injector. Options are applied in order.
func New(opts ...Option) *Injector {
	in := &Injector{
		state: &state{
			instances: map[AnyConstructor]any{},
			bindings:  map[AnyConstructor]any{},
		},
	}
	in.state.root = in
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Root returns the root injector owning the shared state. Build functions
// receive derived injectors that only live for one resolution chain; Root
// gets back to the handle that outlives it.
func (in *Injector) Root() *Injector {
	return in.state.root
}

// Inject returns the singleton for c, constructing and caching it on first
// use. While a binding exists for c the bound substitute is returned instead.
// For any constructor that stays unbound, repeated calls return the identical
// value. Inject panics if construction fails; use InjectWithError to receive
// the error instead.
func Inject[T any](in *Injector, c *Constructor[T]) T {
	v, err := InjectWithError(in, c)
	if err != nil {
		panic(err)
	}
	return v
}

// InjectWithError behaves exactly like Inject but returns construction
// failures as an error value.
func InjectWithError[T any](in *Injector, c *Constructor[T]) (T, error) {
	v, err := in.injectAny(c)
	if err != nil {
		var zero T
		return zero, err
	}
	return typed[T](v), nil
}

func (in *Injector) injectAny(c AnyConstructor) (any, error) {
	s := in.state

	// Bindings are consulted on every call rather than memoized, so
	// resetting them restores real resolution immediately.
	s.lock.RLock()
	if v, ok := s.bindings[c]; ok {
		s.lock.RUnlock()
		return v, nil
	}
	if v, ok := s.instances[c]; ok {
		s.lock.RUnlock()
		return v, nil
	}
	s.lock.RUnlock()

	child, release, err := in.enterConstruction(c)
	if err != nil {
		return nil, err
	}
	defer release()

	v, err := runBuild(child, c, nil)
	if err != nil {
		return nil, &ConstructionError{
			Constructor: c,
			Status:      in.Status(),
			SourceError: err,
		}
	}

	s.lock.Lock()
	if prior, ok := s.instances[c]; ok {
		// A concurrent resolution finished first; keep its instance so the
		// identity guarantee holds.
		s.lock.Unlock()
		return prior, nil
	}
	s.instances[c] = v
	s.order = append(s.order, c)
	s.lock.Unlock()
	return v, nil
}

// runBuild invokes c's build function on the derived injector, under a
// timing context when timing is enabled.
func runBuild(child *Injector, c AnyConstructor, args []any) (any, error) {
	if EnableTiming == TimingConstructors {
		done := child.frame.startTiming(c)
		defer done()
	}
	return c.construct(child, args)
}
