package inject

import (
	"context"
	"testing"
	"time"

	"github.com/gburgyan/go-timing"
	"github.com/stretchr/testify/assert"
)

func TestTiming_ConstructionStillResolves(t *testing.T) {
	EnableTiming = TimingConstructors
	defer func() { EnableTiming = TimingDisable }()

	timingCtx := timing.Root(context.Background())
	in := New(WithTimingRoot(timingCtx))

	calls := 0
	widget := widgetConstructor(&calls)
	slow := NewConstructor("slow", func(in *Injector, _ ...any) (*testDoodad, error) {
		time.Sleep(10 * time.Millisecond)
		Inject(in, widget)
		return &testDoodad{val: "timed"}, nil
	})

	d := Inject(in, slow)

	assert.Equal(t, "timed", d.val)
	assert.Equal(t, 1, calls)
	assert.Same(t, d, Inject(in, slow))
}

func TestTiming_NoRootStillResolves(t *testing.T) {
	EnableTiming = TimingConstructors
	defer func() { EnableTiming = TimingDisable }()

	calls := 0
	widget := widgetConstructor(&calls)
	in := New()

	w := Inject(in, widget)
	assert.Equal(t, 42, w.val)
}

func TestTiming_DisabledByDefault(t *testing.T) {
	assert.Equal(t, TimingDisable, EnableTiming)
}
