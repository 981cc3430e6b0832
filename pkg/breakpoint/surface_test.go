package breakpoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSurface_NotifiesOnlyOnWidthChange(t *testing.T) {
	s := NewSurface(80)
	var got []int
	release := s.Observe(func(w int) { got = append(got, w) })

	s.SetSize(80, 40)
	s.SetSize(100, 40)
	s.Resize(100)
	release()
	s.Resize(120)

	assert.Equal(t, []int{100}, got)
	assert.Equal(t, 40, s.Height())
	assert.NotEmpty(t, s.ID())
	assert.NotEqual(t, s.ID(), NewSurface(80).ID())
}

func TestSurface_ObserverReleasedDuringNotify(t *testing.T) {
	s := NewSurface(0)
	var release2 func()
	calls := 0
	s.Observe(func(int) { release2() })
	release2 = s.Observe(func(int) { calls++ })

	s.Resize(10)
	assert.Equal(t, 0, calls)
	assert.Equal(t, 1, s.Observers())
}

func TestSurface_NilObserver(t *testing.T) {
	s := NewSurface(0)
	release := s.Observe(nil)
	release()
	assert.Equal(t, 0, s.Observers())
}
