package breakpoint

import (
	"fmt"
	"reflect"

	"github.com/go-logr/logr"
)

// Element is a host region whose width can be measured and observed.
// Implementations should be comparable (typically pointers) so a binding can
// tell a re-attachment of the same element from a replacement; a
// non-comparable element is rebound on every Attach. A typed nil detaches.
type Element interface {
	// Width returns the current width in cells.
	Width() int
	// Observe registers fn for width-change notifications and returns a
	// function that releases the registration.
	Observe(fn func(width int)) (release func())
}

// State is the lifecycle state of a Binding.
type State int

const (
	// Unbound means no element is attached.
	Unbound State = iota
	// Bound means an element is attached and observed.
	Bound
)

func (s State) String() string {
	if s == Bound {
		return "bound"
	}
	return "unbound"
}

// Option configures a Binding.
type Option func(*Binding)

// WithLogger sets the logger used for lifecycle events (logged at V(1)).
func WithLogger(log logr.Logger) Option {
	return func(b *Binding) { b.log = log }
}

// WithName labels the binding in log output.
func WithName(name string) Option {
	return func(b *Binding) { b.name = name }
}

// Binding links one element's width to a resolved Output. It is not safe for
// concurrent use; all calls and notifications must happen on one goroutine.
//
// A binding that is never attached keeps its table's fallback output forever.
type Binding struct {
	table    Table
	el       Element
	release  func()
	gen      uint64
	width    int
	measured bool
	output   Output

	listeners []func(Output)
	name      string
	log       logr.Logger
}

// NewBinding returns an unbound binding whose output is t.Fallback().
func NewBinding(t Table, opts ...Option) *Binding {
	b := &Binding{
		table: t,
		log:   logr.Discard(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.name != "" {
		b.log = b.log.WithValues("binding", b.name)
	}
	b.output = t.Fallback()
	return b
}

// Disposer releases a binding. Calling it more than once is harmless.
type Disposer func()

// Bind creates a binding attached to el. The returned disposer must be called
// to release the subscription.
func Bind(el Element, t Table, opts ...Option) (*Binding, Disposer) {
	b := NewBinding(t, opts...)
	b.Attach(el)
	return b, b.Detach
}

// State reports whether an element is attached.
func (b *Binding) State() State {
	if b.el != nil {
		return Bound
	}
	return Unbound
}

// Output returns the last published output.
func (b *Binding) Output() Output { return b.output }

// Table returns the current table.
func (b *Binding) Table() Table { return b.table }

// Width returns the last measured width and whether any measurement happened.
func (b *Binding) Width() (int, bool) { return b.width, b.measured }

// OnChange registers fn to be called with every republished output.
func (b *Binding) OnChange(fn func(Output)) {
	if fn != nil {
		b.listeners = append(b.listeners, fn)
	}
}

// Attach binds el, measuring it synchronously. Attaching the element that is
// already bound does nothing; attaching a different one releases the old
// subscription first. A nil element detaches.
func (b *Binding) Attach(el Element) {
	if isNilElement(el) {
		b.Detach()
		return
	}
	if sameElement(b.el, el) {
		return
	}
	if b.el != nil {
		b.Detach()
	}

	b.gen++
	gen := b.gen
	b.el = el
	b.log.V(1).Info("attach", "width", el.Width())
	b.apply(el.Width())

	release := el.Observe(func(width int) {
		if b.gen != gen || b.el == nil {
			return
		}
		b.apply(width)
	})
	// A notification during Observe may have replaced or dropped the element.
	if b.gen != gen {
		safeRelease(b.log, release)
		return
	}
	b.release = release
}

// Detach releases the subscription. It never fails and may be called on an
// unbound binding. The last output is kept.
func (b *Binding) Detach() {
	if b.el == nil {
		return
	}
	b.gen++
	release := b.release
	b.el = nil
	b.release = nil
	safeRelease(b.log, release)
	b.log.V(1).Info("detach")
}

// SetTable swaps the table. A bound binding recomputes immediately against
// the element's last measured width. An unbound binding only stores the table;
// its output stays as it is until the next Attach.
func (b *Binding) SetTable(t Table) {
	b.table = t
	if b.el == nil {
		return
	}
	b.publish(Resolve(b.width, t))
}

func (b *Binding) apply(width int) {
	b.width = width
	b.measured = true
	b.publish(Resolve(width, b.table))
}

func (b *Binding) publish(out Output) {
	b.output = out
	for _, fn := range b.listeners {
		fn(out)
	}
}

func safeRelease(log logr.Logger, release func()) {
	if release == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Error(fmt.Errorf("release panicked: %v", r), "detach")
		}
	}()
	release()
}

// isNilElement reports whether el is nil or an interface holding a nil
// pointer, map, slice, func or channel.
func isNilElement(el Element) bool {
	if el == nil {
		return true
	}
	v := reflect.ValueOf(el)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// sameElement compares elements by identity. Elements of non-comparable
// dynamic types are never considered the same.
func sameElement(a, b Element) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
