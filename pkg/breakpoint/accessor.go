package breakpoint

// Handle is the non-owning reference half of the accessor form. Attach it to
// exactly one element at a time.
type Handle struct {
	binding *Binding
}

// Current reads the accessor's last computed output.
type Current struct {
	binding *Binding
}

// Use creates an independent binding and returns its handle and output
// reader. Nothing is shared between calls, even for identical tables.
func Use(t Table, opts ...Option) (*Handle, Current) {
	b := NewBinding(t, opts...)
	return &Handle{binding: b}, Current{binding: b}
}

// Ref attaches el, or detaches when el is nil.
func (h *Handle) Ref(el Element) {
	h.binding.Attach(el)
}

// Update replaces the table and recomputes against the last known width.
func (h *Handle) Update(t Table) {
	h.binding.SetTable(t)
}

// Release detaches the bound element, if any.
func (h *Handle) Release() {
	h.binding.Detach()
}

// Binding exposes the underlying binding for listeners and state checks.
func (h *Handle) Binding() *Binding { return h.binding }

// Get returns the last computed output.
func (c Current) Get() Output {
	return c.binding.Output()
}

// Class returns the class token, or "" when the output is content.
func (c Current) Class() string {
	cls, _ := c.binding.Output().Class()
	return cls
}
