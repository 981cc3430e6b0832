package ui

import (
	"image/color"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/oakwood-commons/bpx/internal/config"
)

// Theme holds the fixed palette used by the playground chrome.
type Theme struct {
	Accent     color.Color
	Muted      color.Color
	HeaderFG   color.Color
	SelectedFG color.Color
	SelectedBG color.Color
	FooterFG   color.Color
	FooterBG   color.Color
	KeyFG      color.Color
	KeyBG      color.Color
}

// DefaultTheme returns the dark palette.
func DefaultTheme() Theme {
	return Theme{
		Accent:     lipgloss.Color("81"),
		Muted:      lipgloss.Color("245"),
		HeaderFG:   lipgloss.Color("81"),
		SelectedFG: lipgloss.Color("250"),
		SelectedBG: lipgloss.Color("24"),
		FooterFG:   lipgloss.Color("244"),
		FooterBG:   lipgloss.Color("236"),
		KeyFG:      lipgloss.Color("15"),
		KeyBG:      lipgloss.Color("240"),
	}
}

// maxExtendsDepth bounds class inheritance so cycles terminate.
const maxExtendsDepth = 8

// StyleSheet turns class strings into lipgloss styles. A class string is a
// whitespace-separated list of tokens applied left to right; later tokens
// override earlier ones. Tokens are either named classes from the config or
// built-in utilities:
//
//	p-N px-N py-N pt-N pr-N pb-N pl-N   padding in cells
//	m-N mx-N my-N                       margin in cells
//	w-N max-w-N                         width and maximum width
//	bold italic underline faint muted reverse
//	border rounded border-thick border-double
//	text-left text-center text-right
//	fg-COLOR bg-COLOR                   ANSI number or hex without '#'
//	hidden                              render nothing
//
// Unknown tokens are ignored.
type StyleSheet struct {
	classes map[string]config.ClassSpec
	noColor bool
}

// NewStyleSheet builds a sheet over the named classes.
func NewStyleSheet(classes map[string]config.ClassSpec, noColor bool) *StyleSheet {
	if classes == nil {
		classes = map[string]config.ClassSpec{}
	}
	return &StyleSheet{classes: classes, noColor: noColor}
}

// NoColor reports whether color tokens are ignored.
func (s *StyleSheet) NoColor() bool { return s.noColor }

// Style resolves class onto an empty style.
func (s *StyleSheet) Style(class string) lipgloss.Style {
	return s.Apply(lipgloss.NewStyle(), class)
}

// Apply resolves class onto base.
func (s *StyleSheet) Apply(base lipgloss.Style, class string) lipgloss.Style {
	for _, tok := range ClassTokens(class) {
		base = s.applyToken(base, tok, 0)
	}
	return base
}

// Hidden reports whether class contains the hidden utility.
func (s *StyleSheet) Hidden(class string) bool {
	for _, tok := range ClassTokens(class) {
		if tok == "hidden" {
			return true
		}
	}
	return false
}

// Known reports whether tok is a named class or a recognised utility.
func (s *StyleSheet) Known(tok string) bool {
	if _, ok := s.classes[tok]; ok {
		return true
	}
	_, ok := applyUtility(lipgloss.NewStyle(), tok, s.noColor)
	return ok
}

// Render styles body with class inside a region width cells wide. A width
// of zero or less leaves the body unconstrained.
func (s *StyleSheet) Render(class string, width int, body string) string {
	if s.Hidden(class) {
		return ""
	}
	style := s.Apply(lipgloss.NewStyle(), class)
	if width > 0 && (style.GetMaxWidth() == 0 || style.GetMaxWidth() > width) {
		style = style.MaxWidth(width)
	}
	return style.Render(body)
}

func (s *StyleSheet) applyToken(st lipgloss.Style, tok string, depth int) lipgloss.Style {
	if spec, ok := s.classes[tok]; ok {
		if depth >= maxExtendsDepth {
			return st
		}
		for _, parent := range spec.Extends {
			for _, p := range ClassTokens(parent) {
				st = s.applyToken(st, p, depth+1)
			}
		}
		return s.applySpec(st, spec)
	}
	st, _ = applyUtility(st, tok, s.noColor)
	return st
}

func (s *StyleSheet) applySpec(st lipgloss.Style, spec config.ClassSpec) lipgloss.Style {
	if len(spec.Padding) > 0 {
		st = st.Padding(clampSides(spec.Padding)...)
	}
	if len(spec.Margin) > 0 {
		st = st.Margin(clampSides(spec.Margin)...)
	}
	if spec.MaxWidth > 0 {
		st = st.MaxWidth(spec.MaxWidth)
	}
	if !s.noColor && spec.Foreground != "" {
		st = st.Foreground(lipgloss.Color(spec.Foreground))
	}
	if !s.noColor && spec.Background != "" {
		st = st.Background(lipgloss.Color(spec.Background))
	}
	if spec.Bold {
		st = st.Bold(true)
	}
	if spec.Faint {
		st = st.Faint(true)
	}
	if spec.Border != "" {
		st = st.Border(borderForStyle(spec.Border))
	}
	if spec.Align != "" {
		st = st.Align(alignFor(spec.Align))
	}
	return st
}

// applyUtility applies a built-in token and reports whether it was recognised.
func applyUtility(st lipgloss.Style, tok string, noColor bool) (lipgloss.Style, bool) {
	switch tok {
	case "bold":
		return st.Bold(true), true
	case "italic":
		return st.Italic(true), true
	case "underline":
		return st.Underline(true), true
	case "faint", "muted":
		return st.Faint(true), true
	case "reverse":
		return st.Reverse(true), true
	case "border":
		return st.Border(lipgloss.NormalBorder()), true
	case "rounded":
		return st.Border(lipgloss.RoundedBorder()), true
	case "border-thick":
		return st.Border(lipgloss.ThickBorder()), true
	case "border-double":
		return st.Border(lipgloss.DoubleBorder()), true
	case "text-left":
		return st.Align(lipgloss.Left), true
	case "text-center":
		return st.Align(lipgloss.Center), true
	case "text-right":
		return st.Align(lipgloss.Right), true
	case "hidden":
		return st, true
	}

	if c, ok := strings.CutPrefix(tok, "fg-"); ok && c != "" {
		if !noColor {
			st = st.Foreground(lipgloss.Color(colorToken(c)))
		}
		return st, true
	}
	if c, ok := strings.CutPrefix(tok, "bg-"); ok && c != "" {
		if !noColor {
			st = st.Background(lipgloss.Color(colorToken(c)))
		}
		return st, true
	}

	name, n, ok := splitSize(tok)
	if !ok {
		return st, false
	}
	switch name {
	case "p":
		return st.Padding(n), true
	case "px":
		return st.PaddingLeft(n).PaddingRight(n), true
	case "py":
		return st.PaddingTop(n).PaddingBottom(n), true
	case "pt":
		return st.PaddingTop(n), true
	case "pr":
		return st.PaddingRight(n), true
	case "pb":
		return st.PaddingBottom(n), true
	case "pl":
		return st.PaddingLeft(n), true
	case "m":
		return st.Margin(n), true
	case "mx":
		return st.MarginLeft(n).MarginRight(n), true
	case "my":
		return st.MarginTop(n).MarginBottom(n), true
	case "w":
		return st.Width(n), true
	case "max-w":
		return st.MaxWidth(n), true
	}
	return st, false
}

// splitSize splits "px-4" into ("px", 4).
func splitSize(tok string) (string, int, bool) {
	i := strings.LastIndexByte(tok, '-')
	if i <= 0 || i == len(tok)-1 {
		return "", 0, false
	}
	n, err := strconv.Atoi(tok[i+1:])
	if err != nil || n < 0 {
		return "", 0, false
	}
	return tok[:i], n, true
}

func colorToken(c string) string {
	if _, err := strconv.Atoi(c); err == nil {
		return c
	}
	if len(c) == 6 || len(c) == 3 {
		return "#" + c
	}
	return c
}

func normalizeBorderStyle(val string) string {
	switch strings.TrimSpace(strings.ToLower(val)) {
	case "rounded", "round":
		return "rounded"
	case "thick":
		return "thick"
	case "double":
		return "double"
	default:
		return "normal"
	}
}

func borderForStyle(style string) lipgloss.Border {
	switch normalizeBorderStyle(style) {
	case "rounded":
		return lipgloss.RoundedBorder()
	case "thick":
		return lipgloss.ThickBorder()
	case "double":
		return lipgloss.DoubleBorder()
	default:
		return lipgloss.NormalBorder()
	}
}

func alignFor(val string) lipgloss.Position {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "center", "middle":
		return lipgloss.Center
	case "right":
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

// clampSides keeps at most the four CSS-style shorthand values.
func clampSides(v []int) []int {
	if len(v) > 4 {
		return v[:4]
	}
	return v
}

// ClassTokens splits a class string into its tokens.
func ClassTokens(class string) []string {
	return strings.Fields(class)
}

// MergeClass joins the caller's class with a resolved class, separated by a
// single space. Empty sides contribute nothing.
func MergeClass(caller, resolved string) string {
	return strings.Join(append(ClassTokens(caller), ClassTokens(resolved)...), " ")
}
