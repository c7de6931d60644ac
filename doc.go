// Package inject provides a small dependency-resolution engine built around
// constructor handles. Asking an Injector for a constructor's value returns a
// memoized singleton, constructed lazily on first use; requests made from
// inside a build function resolve recursively through the same injector, so
// the dependency graph is discovered and completed depth-first at runtime.
// Bindings let tests substitute an arbitrary value for real construction, and
// the resolver side produces fresh, non-memoized values with caller-supplied
// arguments.
//
// The Injector object has comprehensive documentation about how it works.
//
// There are also generic helper functions that make using this more concise.
package inject
