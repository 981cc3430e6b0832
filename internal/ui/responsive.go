package ui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/oakwood-commons/bpx/pkg/breakpoint"
)

// Responsive is a region whose class or content is picked by a breakpoint
// table against the region's own width. It binds on the first SetSize, the
// terminal equivalent of being mounted, and stays bound until Close.
//
// With a class output the body is Body(output) when Body is set, otherwise
// Children, styled by the merged class. With a content output the content is
// rendered in place of the body and Class is not applied.
type Responsive struct {
	Class    string
	Children string
	Body     func(out breakpoint.Output) string

	title    string
	sheet    *StyleSheet
	bindOpts []breakpoint.Option
	surface  *breakpoint.Surface
	binding  *breakpoint.Binding
	mounted  bool
	closed   bool
}

// ResponsiveOption configures a Responsive.
type ResponsiveOption func(*Responsive)

// WithClass sets the caller class merged ahead of the resolved class.
func WithClass(class string) ResponsiveOption {
	return func(r *Responsive) { r.Class = class }
}

// WithChildren sets the static body.
func WithChildren(children string) ResponsiveOption {
	return func(r *Responsive) { r.Children = children }
}

// WithBody sets a body function that receives the resolved output.
func WithBody(fn func(breakpoint.Output) string) ResponsiveOption {
	return func(r *Responsive) { r.Body = fn }
}

// WithStyleSheet sets the sheet used to style class outputs.
func WithStyleSheet(sheet *StyleSheet) ResponsiveOption {
	return func(r *Responsive) { r.sheet = sheet }
}

// WithTitle names the region.
func WithTitle(title string) ResponsiveOption {
	return func(r *Responsive) { r.title = title }
}

// WithBindingOptions passes options through to the underlying binding.
func WithBindingOptions(opts ...breakpoint.Option) ResponsiveOption {
	return func(r *Responsive) { r.bindOpts = append(r.bindOpts, opts...) }
}

// NewResponsive creates an unmounted region over t.
func NewResponsive(t breakpoint.Table, opts ...ResponsiveOption) *Responsive {
	r := &Responsive{surface: breakpoint.NewSurface(0)}
	for _, opt := range opts {
		opt(r)
	}
	if r.sheet == nil {
		r.sheet = NewStyleSheet(nil, false)
	}
	name := r.title
	if name == "" {
		name = r.surface.ID()
	}
	bindOpts := append([]breakpoint.Option{breakpoint.WithName(name)}, r.bindOpts...)
	r.binding = breakpoint.NewBinding(t, bindOpts...)
	return r
}

// Init implements ChildModel; the region has no startup commands.
func (r *Responsive) Init() tea.Cmd { return nil }

// Update handles window sizes. Other messages are ignored.
func (r *Responsive) Update(msg tea.Msg) (ChildModel, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		r.SetSize(msg.Width, msg.Height)
	}
	return r, nil
}

// SetSize resizes the region. The first call attaches the binding, which
// measures synchronously; later calls notify it through the surface.
func (r *Responsive) SetSize(width, height int) {
	r.surface.SetSize(width, height)
	if !r.mounted && !r.closed {
		r.mounted = true
		r.binding.Attach(r.surface)
	}
}

// SetTable swaps the table. A mounted region re-resolves against its current
// width; before mounting or after Close the output is left unchanged.
func (r *Responsive) SetTable(t breakpoint.Table) {
	r.binding.SetTable(t)
}

// Output returns the resolved output.
func (r *Responsive) Output() breakpoint.Output { return r.binding.Output() }

// ClassName returns the merged class applied to the body, or "" while the
// output is content.
func (r *Responsive) ClassName() string {
	class, ok := r.binding.Output().Class()
	if !ok {
		return ""
	}
	return MergeClass(r.Class, class)
}

// Width returns the region width in cells.
func (r *Responsive) Width() int { return r.surface.Width() }

// Height returns the region height in rows.
func (r *Responsive) Height() int { return r.surface.Height() }

// Binding exposes the underlying binding.
func (r *Responsive) Binding() *breakpoint.Binding { return r.binding }

// Title returns the region name given with WithTitle.
func (r *Responsive) Title() string { return r.title }

// View renders the resolved class around the body, or the content.
func (r *Responsive) View() string {
	out := r.binding.Output()
	width := r.surface.Width()
	return breakpoint.MatchOutput(out,
		func(class string) string {
			body := r.Children
			if r.Body != nil {
				body = r.Body(out)
			}
			return r.sheet.Render(MergeClass(r.Class, class), width, body)
		},
		func(content breakpoint.Renderable) string {
			return r.sheet.Render("", width, content.Render())
		},
	)
}

// Close releases the binding. The region keeps rendering its last output.
func (r *Responsive) Close() {
	r.closed = true
	r.binding.Detach()
}
