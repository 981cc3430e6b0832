package breakpoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinding_NeverAttachedKeepsFallback(t *testing.T) {
	b := NewBinding(scenarioTable())
	assert.Equal(t, Unbound, b.State())
	assert.Equal(t, "sm", b.Output().String())
	_, measured := b.Width()
	assert.False(t, measured)
}

func TestBind_MeasuresImmediately(t *testing.T) {
	s := NewSurface(700)
	b, dispose := Bind(s, scenarioTable())
	defer dispose()

	assert.Equal(t, Bound, b.State())
	assert.Equal(t, "md", b.Output().String())
	w, measured := b.Width()
	assert.True(t, measured)
	assert.Equal(t, 700, w)
	assert.Equal(t, 1, s.Observers())
}

func TestBinding_RecomputesOnResize(t *testing.T) {
	s := NewSurface(100)
	b, dispose := Bind(s, scenarioTable())
	defer dispose()

	s.Resize(1200)
	assert.Equal(t, "lg", b.Output().String())
	s.Resize(641)
	assert.Equal(t, "md", b.Output().String())
	s.Resize(-5)
	assert.Equal(t, "sm", b.Output().String())
}

func TestBinding_TeardownFinality(t *testing.T) {
	s := NewSurface(1200)
	b, dispose := Bind(s, scenarioTable())
	require.Equal(t, "lg", b.Output().String())

	dispose()
	assert.Equal(t, Unbound, b.State())
	assert.Equal(t, 0, s.Observers())

	s.Resize(100)
	assert.Equal(t, "lg", b.Output().String())
}

func TestBinding_InFlightNotificationAfterDetachIsDropped(t *testing.T) {
	el := &fakeElement{width: 1200}
	b := NewBinding(scenarioTable())
	b.Attach(el)
	require.Len(t, el.fns, 1)

	b.Detach()
	assert.Equal(t, 1, el.released)

	el.fire(100)
	assert.Equal(t, "lg", b.Output().String())
}

func TestBinding_DisposeTwiceIsHarmless(t *testing.T) {
	el := &fakeElement{width: 10}
	_, dispose := Bind(el, scenarioTable())
	dispose()
	dispose()
	assert.Equal(t, 1, el.released)
}

func TestBinding_PanickingReleaseStillDetaches(t *testing.T) {
	el := &fakeElement{width: 10, panicOnRelease: true}
	b, dispose := Bind(el, scenarioTable())
	assert.NotPanics(t, func() { dispose() })
	assert.Equal(t, Unbound, b.State())

	el.fire(2000)
	assert.Equal(t, "sm", b.Output().String())
}

func TestBinding_RebindReleasesPreviousFirst(t *testing.T) {
	first := NewSurface(100)
	second := NewSurface(900)
	b := NewBinding(scenarioTable())

	b.Attach(first)
	require.Equal(t, 1, first.Observers())
	b.Attach(second)

	assert.Equal(t, 0, first.Observers())
	assert.Equal(t, 1, second.Observers())
	assert.Equal(t, "md", b.Output().String())

	first.Resize(5000)
	assert.Equal(t, "md", b.Output().String())
	second.Resize(5000)
	assert.Equal(t, "lg", b.Output().String())
}

func TestBinding_StaleCallbackFromPreviousElementIsDropped(t *testing.T) {
	old := &fakeElement{width: 100}
	b := NewBinding(scenarioTable())
	b.Attach(old)
	b.Attach(NewSurface(900))

	old.fire(5000)
	assert.Equal(t, "md", b.Output().String())
}

func TestBinding_ReattachSameElementIsNoop(t *testing.T) {
	s := NewSurface(100)
	b := NewBinding(scenarioTable())
	b.Attach(s)
	b.Attach(s)
	assert.Equal(t, 1, s.Observers())
	b.Attach(nil)
	assert.Equal(t, Unbound, b.State())
	assert.Equal(t, 0, s.Observers())
}

func TestBinding_SetTableRecomputesAgainstLastWidth(t *testing.T) {
	s := NewSurface(700)
	b, dispose := Bind(s, scenarioTable())
	defer dispose()

	b.SetTable(NewTable(
		When(Between(0, 699), ClassName("narrow")),
		When(AtLeast(700), ClassName("wide")),
	))
	assert.Equal(t, "wide", b.Output().String())
}

func TestBinding_SetTableAfterDetachKeepsOutput(t *testing.T) {
	s := NewSurface(1200)
	b, dispose := Bind(s, scenarioTable())
	dispose()

	var seen []Output
	b.OnChange(func(o Output) { seen = append(seen, o) })
	b.SetTable(NewTable(When(AtLeast(0), ClassName("changed"))))
	assert.Equal(t, "lg", b.Output().String())
	assert.Empty(t, seen)

	s.Resize(10)
	assert.Equal(t, "lg", b.Output().String())
}

func TestBinding_SetTableNeverAttachedKeepsInitialOutput(t *testing.T) {
	b := NewBinding(scenarioTable())
	b.SetTable(NewTable(When(Between(5, 9), ClassName("x"))).WithDefault(ClassName("other")))
	assert.Equal(t, "sm", b.Output().String())
	assert.Equal(t, Unbound, b.State())
}

func TestBinding_AttachAfterSetTableUsesNewTable(t *testing.T) {
	b := NewBinding(scenarioTable())
	b.SetTable(NewTable(When(AtLeast(0), ClassName("fresh"))))

	b.Attach(NewSurface(700))
	defer b.Detach()
	assert.Equal(t, "fresh", b.Output().String())
}

func TestBinding_TypedNilElementDetaches(t *testing.T) {
	s := NewSurface(700)
	b, dispose := Bind(s, scenarioTable())
	defer dispose()

	var none *Surface
	assert.NotPanics(t, func() { b.Attach(none) })
	assert.Equal(t, Unbound, b.State())
	assert.Equal(t, 0, s.Observers())
	assert.Equal(t, "md", b.Output().String())
}

// sliceElement has a non-comparable dynamic type.
type sliceElement []int

func (e sliceElement) Width() int { return e[0] }

func (e sliceElement) Observe(func(int)) func() { return func() {} }

func TestBinding_NonComparableElementRebinds(t *testing.T) {
	el := sliceElement{1200}
	b := NewBinding(scenarioTable())
	assert.NotPanics(t, func() {
		b.Attach(el)
		b.Attach(el)
	})
	assert.Equal(t, Bound, b.State())
	assert.Equal(t, "lg", b.Output().String())
	b.Detach()
}

func TestBinding_OnChangeRepublishes(t *testing.T) {
	s := NewSurface(100)
	b := NewBinding(scenarioTable())
	var seen []string
	b.OnChange(func(o Output) { seen = append(seen, o.String()) })

	b.Attach(s)
	s.Resize(900)
	s.Resize(900)
	s.Resize(2000)
	b.Detach()
	s.Resize(10)

	assert.Equal(t, []string{"sm", "md", "lg"}, seen)
}

func TestBinding_DetachFromListener(t *testing.T) {
	s := NewSurface(100)
	b := NewBinding(scenarioTable())
	b.OnChange(func(o Output) {
		if o.String() == "lg" {
			b.Detach()
		}
	})
	b.Attach(s)
	s.Resize(2000)
	assert.Equal(t, Unbound, b.State())
	assert.Equal(t, 0, s.Observers())
}
