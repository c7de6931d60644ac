package inject

import (
	"io"
	"reflect"
)

// Close tears down the injector. The instance cache and binding registry are
// emptied, and when cleanup is enabled (WithCleanup or WithCleanupFunc) every
// cached singleton is cleaned up in reverse construction order: a custom
// cleanup function registered for its type runs if there is one, otherwise a
// singleton implementing io.Closer has its Close method called.
//
// The first error returned by a singleton's Close is reported after all
// teardown has run. Without cleanup enabled, Close only empties the maps.
func (in *Injector) Close() error {
	s := in.state

	s.lock.Lock()
	order := s.order
	instances := s.instances
	s.instances = map[AnyConstructor]any{}
	s.bindings = map[AnyConstructor]any{}
	s.order = nil
	s.lock.Unlock()

	if !s.cleanupEnabled {
		return nil
	}

	var firstErr error
	for i := len(order) - 1; i >= 0; i-- {
		v := instances[order[i]]
		if inner, ok := v.(*Injector); ok && inner.state == s {
			// The injector caches itself under Self; closing it again here
			// would be a pointless re-entry.
			continue
		}
		if cleanup := s.cleanupFor(v); cleanup != nil {
			cleanup(v)
			continue
		}
		if closer, ok := v.(io.Closer); ok {
			if err := closer.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// cleanupFor finds the registered cleanup function for a value: an exact
// type match first, then any registered interface type the value implements.
func (s *state) cleanupFor(v any) func(any) {
	if len(s.cleanupFuncs) == 0 || v == nil {
		return nil
	}
	t := reflect.TypeOf(v)
	if cleanup, ok := s.cleanupFuncs[t]; ok {
		return cleanup
	}
	for ct, cleanup := range s.cleanupFuncs {
		if ct.Kind() == reflect.Interface && t.Implements(ct) {
			return cleanup
		}
	}
	return nil
}
