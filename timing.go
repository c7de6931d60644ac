package inject

import (
	"context"

	"github.com/gburgyan/go-timing"
)

// TimingMode selects how much timing instrumentation resolution collects.
type TimingMode int

const (
	// TimingDisable will disable timing for all injectors.
	TimingDisable TimingMode = iota

	// TimingConstructors will start a timing context for each construction.
	// Nested dependencies nest in the timing tree, so the resulting report
	// mirrors the dependency graph as it was discovered at runtime.
	TimingConstructors
)

// EnableTiming controls construction timing globally.
var EnableTiming = TimingDisable

// startTiming opens a timing child for c's construction and makes it the
// current timing location for the rest of the chain until the returned
// function runs.
func (f *frame) startTiming(c AnyConstructor) func() {
	parent := f.timingCtx
	if parent == nil {
		parent = timing.Root(context.Background())
	}
	tCtx, complete := timing.Start(parent, c.Name())
	f.timingCtx = tCtx
	return func() {
		complete()
		f.timingCtx = parent
	}
}
