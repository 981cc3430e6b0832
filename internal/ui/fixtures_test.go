package ui

import (
	tea "charm.land/bubbletea/v2"

	bp "github.com/oakwood-commons/bpx/pkg/breakpoint"
)

// regionTable: narrow and medium widths yield padding classes, wide widths
// substitute content.
func regionTable() bp.Table {
	return bp.NewTable(
		bp.When(bp.Between(0, 40), bp.ClassName("px-1")),
		bp.When(bp.Between(41, 80), bp.ClassName("px-2")),
		bp.When(bp.AtLeast(81), bp.Content(bp.Text("wide"))),
	)
}

func plainSheet() *StyleSheet {
	return NewStyleSheet(nil, true)
}

type mockChild struct {
	title       string
	initCalled  bool
	updateCalls int
	lastMsg     tea.Msg
	width       int
	height      int
	closed      bool
}

func newMockChild(title string) *mockChild {
	return &mockChild{title: title}
}

func (m *mockChild) Init() tea.Cmd {
	m.initCalled = true
	return nil
}

func (m *mockChild) Update(msg tea.Msg) (ChildModel, tea.Cmd) {
	m.updateCalls++
	m.lastMsg = msg
	return m, nil
}

func (m *mockChild) View() string { return m.title + " view" }

func (m *mockChild) Title() string { return m.title }

func (m *mockChild) Status() string { return m.title + " status" }

func (m *mockChild) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *mockChild) Close() { m.closed = true }

func key(s string) tea.KeyPressMsg {
	switch s {
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "shift+tab":
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	case "ctrl+c":
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}
