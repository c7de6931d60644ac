package inject

// Prime eagerly resolves the given constructors through the normal singleton
// path, so later Inject calls find them already cached. Bound or previously
// cached constructors are no-ops, same as any other resolution. Prime stops
// at the first failure and returns it.
func Prime(in *Injector, constructors ...AnyConstructor) error {
	for _, c := range constructors {
		if _, err := in.injectAny(c); err != nil {
			return err
		}
	}
	return nil
}
