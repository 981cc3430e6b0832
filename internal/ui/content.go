package ui

import (
	"github.com/oakwood-commons/bpx/pkg/breakpoint"
)

// BindContent returns a copy of t in which text content naming a key of reg
// is replaced by the registered renderable. Config files can only express
// text, so this is how they select a substitute component by name.
func BindContent(t breakpoint.Table, reg map[string]breakpoint.Renderable) breakpoint.Table {
	out := t
	out.Entries = make([]breakpoint.Entry, len(t.Entries))
	for i, e := range t.Entries {
		out.Entries[i] = breakpoint.When(e.Interval, substitute(e.Output, reg))
	}
	out.Default = substitute(t.Default, reg)
	return out
}

func substitute(o breakpoint.Output, reg map[string]breakpoint.Renderable) breakpoint.Output {
	r, ok := o.Renderable()
	if !ok {
		return o
	}
	text, ok := r.(breakpoint.Text)
	if !ok {
		return o
	}
	if named, ok := reg[string(text)]; ok {
		return breakpoint.Content(named)
	}
	return o
}
