package inject

// Bind registers substitute as the override for c, replacing any prior
// binding for the same constructor. While the binding is in place, Inject
// returns substitute without constructing anything and without touching the
// instance cache; a singleton cached earlier is shadowed, not discarded.
//
// This is the seam tests use to stand in mocks for real dependencies, even
// for dependencies that only get requested deep inside another constructor's
// build function.
func Bind[T any](in *Injector, c *Constructor[T], substitute T) {
	s := in.state
	s.lock.Lock()
	s.bindings[c] = substitute
	s.lock.Unlock()
}

// ResetBindings drops every binding currently registered, as if none had
// ever existed. The instance cache is deliberately left alone: a singleton
// constructed before the reset keeps being returned afterwards, while a
// constructor that was only ever reached through its binding gets a real
// construction on the next request.
func (in *Injector) ResetBindings() {
	s := in.state
	s.lock.Lock()
	s.bindings = map[AnyConstructor]any{}
	s.lock.Unlock()
}

// Cached returns the value Inject would return without triggering any
// construction: the bound substitute if c is bound, otherwise the cached
// singleton if one exists. The second result reports whether either was
// found.
func Cached[T any](in *Injector, c *Constructor[T]) (T, bool) {
	s := in.state
	s.lock.RLock()
	defer s.lock.RUnlock()
	if v, ok := s.bindings[c]; ok {
		return typed[T](v), true
	}
	if v, ok := s.instances[c]; ok {
		return typed[T](v), true
	}
	var zero T
	return zero, false
}
