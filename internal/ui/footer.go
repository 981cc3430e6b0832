package ui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/oakwood-commons/bpx/pkg/breakpoint"
)

// footerBaseClass is merged ahead of the class resolved for the footer.
const footerBaseClass = "footer-bar"

// KeyHint is one key binding shown in the footer.
type KeyHint struct {
	Key   string
	Label string
}

// DefaultKeyHints lists the playground bindings.
func DefaultKeyHints() []KeyHint {
	return []KeyHint{
		{Key: "tab", Label: "next"},
		{Key: "shift+tab", Label: "prev"},
		{Key: "1-9", Label: "page"},
		{Key: "q", Label: "quit"},
	}
}

// FooterModel is the key hint strip. It owns its surface and reads its
// padding class through an accessor handle.
type FooterModel struct {
	sheet   *StyleSheet
	theme   Theme
	hints   []KeyHint
	surface *breakpoint.Surface
	handle  *breakpoint.Handle
	current breakpoint.Current
	closed  bool
}

// NewFooterModel creates a footer whose class comes from t.
func NewFooterModel(t breakpoint.Table, sheet *StyleSheet, opts ...breakpoint.Option) *FooterModel {
	if sheet == nil {
		sheet = NewStyleSheet(nil, false)
	}
	handle, current := breakpoint.Use(t, append([]breakpoint.Option{breakpoint.WithName("footer")}, opts...)...)
	return &FooterModel{
		sheet:   sheet,
		theme:   DefaultTheme(),
		hints:   DefaultKeyHints(),
		surface: breakpoint.NewSurface(0),
		handle:  handle,
		current: current,
	}
}

func (m *FooterModel) Init() tea.Cmd { return nil }

func (m *FooterModel) Update(msg tea.Msg) (ChildModel, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.SetSize(msg.Width, msg.Height)
	}
	return m, nil
}

// SetSize resizes the strip and attaches the handle on first use.
func (m *FooterModel) SetSize(width, height int) {
	m.surface.SetSize(width, height)
	if !m.closed {
		m.handle.Ref(m.surface)
	}
}

// SetHints replaces the key hints.
func (m *FooterModel) SetHints(hints []KeyHint) {
	m.hints = hints
}

// SetTable swaps the footer's breakpoint table.
func (m *FooterModel) SetTable(t breakpoint.Table) {
	m.handle.Update(t)
}

// Class returns the resolved class.
func (m *FooterModel) Class() string {
	return m.current.Class()
}

func (m *FooterModel) View() string {
	class := MergeClass(footerBaseClass, m.current.Class())
	width := m.surface.Width()

	line := m.hintLine(true)
	if width > 0 {
		pad := m.sheet.Style(class)
		avail := width - pad.GetHorizontalPadding() - pad.GetHorizontalMargins()
		if lipgloss.Width(line) > avail {
			line = m.hintLine(false)
		}
	}
	return m.sheet.Render(class, width, line)
}

// hintLine renders the hints, dropping labels when withLabels is false.
func (m *FooterModel) hintLine(withLabels bool) string {
	keyStyle := lipgloss.NewStyle().Bold(true)
	if m.sheet.NoColor() {
		keyStyle = keyStyle.Reverse(true)
	} else {
		keyStyle = keyStyle.Foreground(m.theme.KeyFG).Background(m.theme.KeyBG)
	}

	parts := make([]string, 0, len(m.hints)*2)
	for _, h := range m.hints {
		parts = append(parts, keyStyle.Render(h.Key))
		if withLabels && h.Label != "" {
			parts = append(parts, h.Label)
		}
	}
	return strings.Join(parts, " ")
}

// Close releases the handle.
func (m *FooterModel) Close() {
	m.closed = true
	m.handle.Release()
}
