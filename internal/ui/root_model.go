package ui

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/go-logr/logr"

	"github.com/oakwood-commons/bpx/pkg/breakpoint"
)

// RootModel is the playground shell. It routes window sizes to the header,
// the pages and the footer, and keys to the active page.
type RootModel struct {
	pages  []ChildModel
	active int

	header *Responsive
	footer *FooterModel
	layout *LayoutManager
	sheet  *StyleSheet
	theme  Theme
	log    logr.Logger

	width      int
	height     int
	showStatus bool
	quitting   bool
}

// RootOptions configures NewRootModel.
type RootOptions struct {
	Header     breakpoint.Table
	Footer     breakpoint.Table
	Sheet      *StyleSheet
	Theme      Theme
	ShowStatus bool
	Logger     logr.Logger
}

// NewRootModel creates a shell over pages.
func NewRootModel(pages []ChildModel, opts RootOptions) *RootModel {
	sheet := opts.Sheet
	if sheet == nil {
		sheet = NewStyleSheet(nil, false)
	}
	log := opts.Logger
	if log.GetSink() == nil {
		log = logr.Discard()
	}
	m := &RootModel{
		pages:      pages,
		layout:     NewLayoutManager(80, 24),
		sheet:      sheet,
		theme:      opts.Theme,
		log:        log,
		width:      80,
		height:     24,
		showStatus: opts.ShowStatus,
	}
	bindOpts := []breakpoint.Option{breakpoint.WithLogger(log)}
	header := BindContent(opts.Header, map[string]breakpoint.Renderable{
		"title": breakpoint.RenderFunc(m.activeTitle),
	})
	m.header = NewResponsive(header,
		WithTitle("header"),
		WithStyleSheet(sheet),
		WithBody(func(breakpoint.Output) string { return m.tabs() }),
		WithBindingOptions(bindOpts...),
	)
	m.footer = NewFooterModel(opts.Footer, sheet, bindOpts...)
	return m
}

func (m *RootModel) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.pages))
	for _, p := range m.pages {
		cmds = append(cmds, p.Init())
	}
	return tea.Batch(cmds...)
}

func (m *RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyPressMsg:
		switch key := msg.String(); key {
		case "ctrl+c", "q":
			m.quitting = true
			m.Close()
			return m, tea.Quit
		case "tab", "right":
			m.SetActive(m.active + 1)
			return m, nil
		case "shift+tab", "left":
			m.SetActive(m.active - 1)
			return m, nil
		default:
			if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(m.pages) {
				m.SetActive(n - 1)
				return m, nil
			}
		}
		return m, m.updateActive(msg)
	}

	// Anything else (spinner ticks included) goes to every page, since
	// inactive pages keep their commands running.
	var cmds []tea.Cmd
	for i := range m.pages {
		var cmd tea.Cmd
		m.pages[i], cmd = m.pages[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *RootModel) updateActive(msg tea.Msg) tea.Cmd {
	if len(m.pages) == 0 {
		return nil
	}
	var cmd tea.Cmd
	m.pages[m.active], cmd = m.pages[m.active].Update(msg)
	return cmd
}

func (m *RootModel) resize(width, height int) {
	m.width = width
	m.height = height
	m.layout.SetDimensions(width, height)
	heights := m.layout.CalculateHeights(m.showStatus)
	contentWidth := m.layout.ContentWidth()

	m.header.SetSize(contentWidth, heights.HeaderHeight)
	for _, p := range m.pages {
		if sized, ok := p.(ModelWithSize); ok {
			sized.SetSize(contentWidth, heights.ContentHeight)
		}
	}
	m.footer.SetSize(contentWidth, heights.FooterHeight)
	m.log.V(1).Info("resize", "width", width, "height", height, "content", heights.ContentHeight)
}

// SetActive switches pages, wrapping around at both ends.
func (m *RootModel) SetActive(i int) {
	if len(m.pages) == 0 {
		return
	}
	n := len(m.pages)
	m.active = ((i % n) + n) % n
}

// Active returns the active page index.
func (m *RootModel) Active() int { return m.active }

// Header returns the header region.
func (m *RootModel) Header() *Responsive { return m.header }

// Footer returns the footer strip.
func (m *RootModel) Footer() *FooterModel { return m.footer }

// Pages returns the pages in tab order.
func (m *RootModel) Pages() []ChildModel { return m.pages }

func (m *RootModel) activeTitle() string {
	if len(m.pages) == 0 {
		return ""
	}
	return pageTitle(m.pages[m.active], m.active)
}

func pageTitle(p ChildModel, i int) string {
	if titled, ok := p.(ModelWithTitle); ok {
		return titled.Title()
	}
	return "Page " + strconv.Itoa(i+1)
}

func (m *RootModel) tabs() string {
	activeStyle := lipgloss.NewStyle().Bold(true)
	if m.sheet.NoColor() {
		activeStyle = activeStyle.Reverse(true)
	} else if m.theme.Accent != nil {
		activeStyle = activeStyle.Foreground(m.theme.Accent).Underline(true)
	}
	parts := make([]string, len(m.pages))
	for i, p := range m.pages {
		label := strconv.Itoa(i+1) + " " + pageTitle(p, i)
		if i == m.active {
			label = activeStyle.Render(label)
		}
		parts[i] = label
	}
	return strings.Join(parts, "  ")
}

// Render composes the frame as plain text.
func (m *RootModel) Render() string {
	if m.quitting {
		return ""
	}
	heights := m.layout.CalculateHeights(m.showStatus)

	var rows []string
	if heights.HeaderHeight > 0 {
		rows = append(rows, clip(m.header.View(), heights.HeaderHeight))
	}
	body := ""
	if len(m.pages) > 0 {
		body = m.pages[m.active].View()
	}
	rows = append(rows, lipgloss.NewStyle().Height(heights.ContentHeight).MaxHeight(heights.ContentHeight).Render(body))
	if heights.StatusHeight > 0 {
		rows = append(rows, clip(m.status(), heights.StatusHeight))
	}
	if heights.FooterHeight > 0 {
		rows = append(rows, clip(m.footer.View(), heights.FooterHeight))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *RootModel) status() string {
	text := ""
	if len(m.pages) > 0 {
		if s, ok := m.pages[m.active].(ModelWithStatus); ok {
			text = s.Status()
		}
	}
	style := lipgloss.NewStyle().MaxWidth(max(m.width, 1))
	if !m.sheet.NoColor() && m.theme.Muted != nil {
		style = style.Foreground(m.theme.Muted)
	}
	return style.Render(text)
}

func (m *RootModel) View() tea.View {
	v := tea.NewView(m.Render())
	v.AltScreen = true
	return v
}

// Close releases every binding held by the shell and its pages.
func (m *RootModel) Close() {
	m.header.Close()
	m.footer.Close()
	for _, p := range m.pages {
		if c, ok := p.(Closer); ok {
			c.Close()
		}
	}
}

// clip keeps at most n lines of s.
func clip(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	return strings.Join(lines, "\n")
}
