package inject

import "context"

// frame tracks one resolution chain: which constructors are currently being
// built, in entry order, plus the timing context the chain is nested under.
// A frame lives on the derived injectors handed to build functions and never
// escapes its chain, so it needs no locking. Parallel resolutions each get
// their own frame and cannot see each other as cycles.
type frame struct {
	inProgress map[AnyConstructor]bool
	path       []AnyConstructor
	timingCtx  context.Context
}

type releaser func()

// enterConstruction marks c as under construction and returns the injector
// the build function should see. If c is already in progress on this chain
// the resolution is cyclic and fails instead of recursing.
//
// The releaser must run when construction finishes, normally via defer so a
// panicking build function still unwinds its marker.
func (in *Injector) enterConstruction(c AnyConstructor) (*Injector, releaser, error) {
	f := in.frame
	child := in
	if f == nil {
		f = &frame{
			inProgress: map[AnyConstructor]bool{},
			timingCtx:  in.state.timingRoot,
		}
		child = &Injector{state: in.state, frame: f}
	}

	if f.inProgress[c] {
		chain := make([]AnyConstructor, 0, len(f.path)+1)
		chain = append(chain, f.path...)
		chain = append(chain, c)
		return nil, func() {}, &CyclicDependencyError{
			Constructor: c,
			Chain:       chain,
			Status:      in.Status(),
		}
	}

	f.inProgress[c] = true
	f.path = append(f.path, c)
	return child, func() {
		delete(f.inProgress, c)
		f.path = f.path[:len(f.path)-1]
	}, nil
}
