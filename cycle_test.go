package inject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCycle_SelfDependency(t *testing.T) {
	var selfish *Constructor[*testWidget]
	selfish = NewConstructor("selfish", func(in *Injector, _ ...any) (*testWidget, error) {
		return InjectWithError(in, selfish)
	})
	in := New()

	_, err := InjectWithError(in, selfish)
	require.Error(t, err)

	var cycErr *CyclicDependencyError
	require.ErrorAs(t, err, &cycErr)
	assert.Same(t, AnyConstructor(selfish), cycErr.Constructor)
	assert.Equal(t, "cyclic dependency error constructing selfish: selfish -> selfish", cycErr.Error())
}

func TestCycle_MutualDependency(t *testing.T) {
	var widget *Constructor[*testWidget]
	var doodad *Constructor[*testDoodad]

	widget = NewConstructor("widget", func(in *Injector, _ ...any) (*testWidget, error) {
		if _, err := InjectWithError(in, doodad); err != nil {
			return nil, err
		}
		return &testWidget{}, nil
	})
	doodad = NewConstructor("doodad", func(in *Injector, _ ...any) (*testDoodad, error) {
		if _, err := InjectWithError(in, widget); err != nil {
			return nil, err
		}
		return &testDoodad{}, nil
	})
	in := New()

	_, err := InjectWithError(in, widget)
	require.Error(t, err)

	var cycErr *CyclicDependencyError
	require.ErrorAs(t, err, &cycErr)
	assert.Same(t, AnyConstructor(widget), cycErr.Constructor)

	names := make([]string, len(cycErr.Chain))
	for i, c := range cycErr.Chain {
		names[i] = c.Name()
	}
	assert.Equal(t, []string{"widget", "doodad", "widget"}, names)

	// Neither partial construction was cached.
	_, ok := Cached(in, widget)
	assert.False(t, ok)
	_, okDoodad := Cached(in, doodad)
	assert.False(t, okDoodad)
}

func TestCycle_MarkersReleasedAfterFailure(t *testing.T) {
	recurse := true
	var wary *Constructor[*testWidget]
	wary = NewConstructor("wary", func(in *Injector, _ ...any) (*testWidget, error) {
		if recurse {
			return InjectWithError(in, wary)
		}
		return &testWidget{val: 5}, nil
	})
	in := New()

	_, err := InjectWithError(in, wary)
	require.Error(t, err)

	recurse = false
	w, err := InjectWithError(in, wary)
	require.NoError(t, err)
	assert.Equal(t, 5, w.val)
}

func TestCycle_FactoryPathDetectsReentry(t *testing.T) {
	var echo *Constructor[*testWidget]
	echo = NewConstructor("echo", func(in *Injector, _ ...any) (*testWidget, error) {
		return ResolveWithError[*testWidget](in, echo)
	})
	in := New()

	_, err := ResolveWithError[*testWidget](in, echo)
	require.Error(t, err)

	var cycErr *CyclicDependencyError
	require.ErrorAs(t, err, &cycErr)
	assert.Same(t, AnyConstructor(echo), cycErr.Constructor)
}

func TestCycle_ParallelChainsDoNotInterfere(t *testing.T) {
	shared := NewConstructor("shared", func(in *Injector, _ ...any) (*testWidget, error) {
		return &testWidget{val: 1}, nil
	})
	left := NewConstructor("left", func(in *Injector, _ ...any) (*testDoodad, error) {
		Inject(in, shared)
		return &testDoodad{val: "left"}, nil
	})
	right := NewConstructor("right", func(in *Injector, _ ...any) (*testDoodad, error) {
		Inject(in, shared)
		return &testDoodad{val: "right"}, nil
	})
	in := New()

	done := make(chan error, 2)
	go func() {
		_, err := InjectWithError(in, left)
		done <- err
	}()
	go func() {
		_, err := InjectWithError(in, right)
		done <- err
	}()

	assert.NoError(t, <-done)
	assert.NoError(t, <-done)
}
