// Package table is a generic data table built on the bubbles table. Column
// widths are recomputed from the available width on every resize, so the
// table can sit inside a responsive region.
package table

import (
	"fmt"
	"image/color"
	"strings"

	bubtable "charm.land/bubbles/v2/table"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// Row is re-exported so callers can build rows without importing bubbles.
type Row = bubtable.Row

// Column describes one column. Weight controls how spare width is shared;
// MinWidth is never undercut unless the total width is too small for all
// minimums.
type Column struct {
	Title    string
	MinWidth int
	Weight   int
}

// Model displays rows of V.
type Model[V any] struct {
	table    bubtable.Model
	styles   bubtable.Styles
	columns  []Column
	rows     []V
	filter   string
	filtered []V

	toRow   func(V) Row
	keyFunc func(V) string

	width   int
	height  int
	noColor bool

	headerFG   color.Color
	selectedFG color.Color
	selectedBG color.Color
}

// NewModel creates a table. toRow renders a value; keyFunc returns the text
// matched by SetFilter.
func NewModel[V any](columns []Column, toRow func(V) Row, keyFunc func(V) string) *Model[V] {
	t := bubtable.New(
		bubtable.WithFocused(true),
		bubtable.WithHeight(5),
	)

	s := bubtable.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Bold(true).
		PaddingLeft(0).
		PaddingRight(1)
	s.Selected = s.Selected.PaddingLeft(0).PaddingRight(0)
	s.Cell = lipgloss.NewStyle().PaddingLeft(0).PaddingRight(1)
	t.SetStyles(s)

	m := &Model[V]{
		table:   t,
		styles:  s,
		columns: columns,
		toRow:   toRow,
		keyFunc: keyFunc,
		height:  5,
	}
	m.SetSize(80, 5)
	return m
}

// SetRows replaces the data.
func (m *Model[V]) SetRows(rows []V) {
	m.rows = rows
	m.applyFilter()
}

// Rows returns the rows passing the current filter.
func (m *Model[V]) Rows() []V {
	return m.filtered
}

// SetFilter keeps rows whose key contains filter, ignoring case.
func (m *Model[V]) SetFilter(filter string) {
	m.filter = filter
	m.applyFilter()
}

func (m *Model[V]) applyFilter() {
	needle := strings.ToLower(strings.TrimSpace(m.filter))
	m.filtered = make([]V, 0, len(m.rows))
	for _, row := range m.rows {
		if needle == "" || strings.Contains(strings.ToLower(m.keyFunc(row)), needle) {
			m.filtered = append(m.filtered, row)
		}
	}

	out := make([]Row, len(m.filtered))
	for i, row := range m.filtered {
		out[i] = m.toRow(row)
	}
	m.table.SetRows(out)
	if m.table.Cursor() >= len(m.filtered) && len(m.filtered) > 0 {
		m.table.SetCursor(0)
	}
}

// Cursor returns the selected row index.
func (m *Model[V]) Cursor() int {
	return m.table.Cursor()
}

// SelectedRow returns the row under the cursor, or nil when empty.
func (m *Model[V]) SelectedRow() *V {
	c := m.table.Cursor()
	if c < 0 || c >= len(m.filtered) {
		return nil
	}
	return &m.filtered[c]
}

// SetSize fits the columns to width and the body to height rows.
func (m *Model[V]) SetSize(width, height int) {
	m.width = width
	m.height = height
	widths := FitColumns(m.columns, width)
	cols := make([]bubtable.Column, len(m.columns))
	for i, c := range m.columns {
		cols[i] = bubtable.Column{Title: c.Title, Width: widths[i]}
	}
	m.table.SetColumns(cols)
	m.table.SetHeight(height)
}

// FitColumns shares width among columns: each gets its minimum, then the
// remainder is split by weight with leftovers going to the earliest columns.
// One cell per column is reserved for the cell padding.
func FitColumns(columns []Column, width int) []int {
	widths := make([]int, len(columns))
	if len(columns) == 0 {
		return widths
	}
	avail := width - len(columns)
	weights := make([]int, len(columns))
	totalWeight := 0
	for i, c := range columns {
		widths[i] = c.MinWidth
		avail -= c.MinWidth
		weights[i] = max(c.Weight, 0)
		totalWeight += weights[i]
	}
	if avail <= 0 {
		return widths
	}
	if totalWeight == 0 {
		for i := range weights {
			weights[i] = 1
		}
		totalWeight = len(weights)
	}
	spent := 0
	for i, w := range weights {
		share := avail * w / totalWeight
		widths[i] += share
		spent += share
	}
	for i := 0; spent < avail; i = (i + 1) % len(widths) {
		if weights[i] > 0 {
			widths[i]++
			spent++
		}
	}
	return widths
}

// SetNoColor toggles colors.
func (m *Model[V]) SetNoColor(noColor bool) {
	m.noColor = noColor
	m.applyColorScheme()
}

// SetColors sets header and selection colors.
func (m *Model[V]) SetColors(headerFG, selectedFG, selectedBG color.Color) {
	m.headerFG = headerFG
	m.selectedFG = selectedFG
	m.selectedBG = selectedBG
	m.applyColorScheme()
}

func (m *Model[V]) applyColorScheme() {
	s := m.styles
	if m.noColor {
		s.Header = s.Header.UnsetForeground().UnsetBackground()
		s.Selected = s.Selected.UnsetForeground().UnsetBackground().Reverse(true)
		s.Cell = s.Cell.UnsetForeground().UnsetBackground()
	} else {
		if m.headerFG != nil {
			s.Header = s.Header.Foreground(m.headerFG)
		}
		if m.selectedFG != nil {
			s.Selected = s.Selected.Foreground(m.selectedFG)
		}
		if m.selectedBG != nil {
			s.Selected = s.Selected.Background(m.selectedBG)
		}
	}
	m.table.SetStyles(s)
	m.styles = s
}

// Update forwards navigation keys to the bubbles table.
func (m *Model[V]) Update(msg tea.Msg) (*Model[V], tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the table.
func (m *Model[V]) View() string {
	return m.table.View()
}

func (m *Model[V]) String() string {
	return fmt.Sprintf("Table[rows=%d, filtered=%d, cursor=%d, width=%d]",
		len(m.rows), len(m.filtered), m.Cursor(), m.width)
}
