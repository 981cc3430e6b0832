package breakpoint

// scenarioTable is the sm/md/lg table used across tests.
func scenarioTable() Table {
	return NewTable(
		When(Between(0, 640), ClassName("sm")),
		When(Between(641, 1080), ClassName("md")),
		When(AtLeast(1081), ClassName("lg")),
	)
}

// fakeElement records observers so tests can deliver notifications after a
// release, the way an in-flight platform callback would.
type fakeElement struct {
	width          int
	fns            []func(int)
	released       int
	panicOnRelease bool
}

func (f *fakeElement) Width() int { return f.width }

func (f *fakeElement) Observe(fn func(int)) func() {
	f.fns = append(f.fns, fn)
	return func() {
		f.released++
		if f.panicOnRelease {
			panic("element gone")
		}
	}
}

func (f *fakeElement) fire(width int) {
	f.width = width
	for _, fn := range f.fns {
		fn(width)
	}
}
