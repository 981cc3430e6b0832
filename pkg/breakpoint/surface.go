package breakpoint

import (
	"sort"

	"github.com/google/uuid"
)

// Surface is a host region driven by explicit resize calls, typically from a
// Bubble Tea WindowSizeMsg or a parent's SetSize. It implements Element.
type Surface struct {
	id        string
	width     int
	height    int
	next      int
	observers map[int]func(int)
}

// NewSurface returns a surface with the given initial width.
func NewSurface(width int) *Surface {
	return &Surface{
		id:        uuid.NewString(),
		width:     clampWidth(width),
		observers: map[int]func(int){},
	}
}

// ID identifies the surface in logs.
func (s *Surface) ID() string { return s.id }

// Width implements Element.
func (s *Surface) Width() int { return s.width }

// Height returns the last height passed to SetSize.
func (s *Surface) Height() int { return s.height }

// Observe implements Element.
func (s *Surface) Observe(fn func(width int)) func() {
	if fn == nil {
		return func() {}
	}
	id := s.next
	s.next++
	s.observers[id] = fn
	return func() { delete(s.observers, id) }
}

// Observers returns the number of active registrations.
func (s *Surface) Observers() int { return len(s.observers) }

// Resize sets the width and notifies observers when it changed. Negative
// widths are treated as zero.
func (s *Surface) Resize(width int) {
	width = clampWidth(width)
	if width == s.width {
		return
	}
	s.width = width
	s.notify()
}

// SetSize records both dimensions. Only width changes notify observers.
func (s *Surface) SetSize(width, height int) {
	s.height = height
	s.Resize(width)
}

func (s *Surface) notify() {
	ids := make([]int, 0, len(s.observers))
	for id := range s.observers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		// An earlier observer may have released this one.
		if fn, ok := s.observers[id]; ok {
			fn(s.width)
		}
	}
}

func clampWidth(w int) int {
	if w < 0 {
		return 0
	}
	return w
}
