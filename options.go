package inject

import (
	"context"
	"reflect"
)

// Option is a functional option for configuring an Injector.
type Option func(*Injector)

// CleanupFunc represents a function that cleans up a singleton of type T.
type CleanupFunc[T any] func(T)

// WithCleanup enables teardown for the injector. When Close is called,
// cached singletons implementing io.Closer will have their Close method
// called automatically, in reverse construction order. This must be used to
// enable any cleanup behavior.
func WithCleanup() Option {
	return func(in *Injector) {
		in.state.cleanupEnabled = true
	}
}

// WithCleanupFunc registers a custom cleanup function for singletons of type
// T. This automatically enables cleanup if not already enabled. Custom
// cleanup functions take precedence over automatic io.Closer cleanup.
func WithCleanupFunc[T any](cleanup CleanupFunc[T]) Option {
	var zero T
	cleanupType := reflect.TypeOf(&zero).Elem()
	return func(in *Injector) {
		in.state.cleanupEnabled = true
		if in.state.cleanupFuncs == nil {
			in.state.cleanupFuncs = map[reflect.Type]func(any){}
		}
		in.state.cleanupFuncs[cleanupType] = func(v any) {
			cleanup(v.(T))
		}
	}
}

// WithTimingRoot attaches ctx as the root under which construction timing
// contexts are started. It has no effect unless EnableTiming is set to
// TimingConstructors. Passing a timing.Root context makes the recorded tree
// inspectable by the caller afterwards.
func WithTimingRoot(ctx context.Context) Option {
	return func(in *Injector) {
		in.state.timingRoot = ctx
	}
}
