package breakpoint

// Renderable is substitute content a wrapper can render in place of its children.
type Renderable interface {
	Render() string
}

// Text is a Renderable holding fixed text.
type Text string

// Render implements Renderable.
func (t Text) Render() string { return string(t) }

// RenderFunc adapts a function to Renderable.
type RenderFunc func() string

// Render implements Renderable.
func (f RenderFunc) Render() string { return f() }

// Kind tags which variant an Output holds.
type Kind int

const (
	// KindUnset is the zero Output. The resolver never returns it.
	KindUnset Kind = iota
	// KindClass is a style class token.
	KindClass
	// KindContent is substitute content.
	KindContent
)

func (k Kind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindContent:
		return "content"
	default:
		return "unset"
	}
}

// Output is the value a table entry produces: either a class token or content.
// Construct it with ClassName or Content.
type Output struct {
	kind    Kind
	class   string
	content Renderable
}

// ClassName returns a class-token output. The empty class is the sentinel
// returned for an empty table.
func ClassName(class string) Output {
	return Output{kind: KindClass, class: class}
}

// Content returns a substitute-content output. A nil Renderable yields the
// empty class instead.
func Content(r Renderable) Output {
	if r == nil {
		return ClassName("")
	}
	return Output{kind: KindContent, content: r}
}

// Kind reports the variant.
func (o Output) Kind() Kind { return o.kind }

// IsZero reports whether the output was never set.
func (o Output) IsZero() bool { return o.kind == KindUnset }

// Class returns the class token and true for class outputs.
func (o Output) Class() (string, bool) {
	return o.class, o.kind == KindClass
}

// Renderable returns the content and true for content outputs.
func (o Output) Renderable() (Renderable, bool) {
	return o.content, o.kind == KindContent
}

// String renders the output for logs and the CLI.
func (o Output) String() string {
	switch o.kind {
	case KindClass:
		return o.class
	case KindContent:
		return o.content.Render()
	default:
		return ""
	}
}

// MatchOutput dispatches on the variant. An unset output is treated as the
// empty class so callers always receive one of the two branches.
func MatchOutput[R any](o Output, onClass func(class string) R, onContent func(r Renderable) R) R {
	if o.kind == KindContent {
		return onContent(o.content)
	}
	return onClass(o.class)
}
