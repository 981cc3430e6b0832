// Package breakpoint derives presentation values from the live width of a
// host element.
//
// A Table maps inclusive width intervals to outputs (a style class token or
// substitute content). Resolve picks the first matching entry. A Binding
// attaches to one Element, measures it immediately, and recomputes the output
// on every width notification until it is detached.
//
// Two calling conventions sit on top of Binding:
//
//	// accessor form: caller owns the host element
//	handle, current := breakpoint.Use(table)
//	handle.Ref(footer)
//	defer handle.Release()
//	cls := current.Class()
//
//	// scoped form
//	b, dispose := breakpoint.Bind(pane, table)
//	defer dispose()
//
// The declarative wrapper lives in the UI layer (ui.Responsive) because it
// renders terminal output.
package breakpoint
