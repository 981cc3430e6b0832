package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/oakwood-commons/bpx/internal/ui/table"
	"github.com/oakwood-commons/bpx/pkg/breakpoint"
)

// Sample is a row of mock service data shown by the data and chart pages.
type Sample struct {
	Name    string
	Region  string
	Latency int
	Healthy bool
}

// SampleRows returns the built-in mock data.
func SampleRows() []Sample {
	return []Sample{
		{Name: "gateway", Region: "us-east-1", Latency: 42, Healthy: true},
		{Name: "billing", Region: "eu-west-1", Latency: 118, Healthy: true},
		{Name: "search", Region: "us-west-2", Latency: 76, Healthy: false},
		{Name: "notifications", Region: "ap-south-1", Latency: 203, Healthy: true},
		{Name: "inventory", Region: "eu-central-1", Latency: 58, Healthy: true},
		{Name: "reports", Region: "us-east-2", Latency: 164, Healthy: false},
	}
}

func healthGlyph(ok bool) string {
	if ok {
		return "●"
	}
	return "○"
}

// describeMatch summarises which entry of the region's table is active.
func describeMatch(r *Responsive) string {
	width := r.Width()
	out, idx, ok := breakpoint.Match(width, r.Binding().Table())
	where := "fallback"
	if ok {
		where = fmt.Sprintf("entry %d", idx)
	}
	what := "content"
	if class, isClass := out.Class(); isClass {
		what = fmt.Sprintf("class %q", class)
	}
	return fmt.Sprintf("%s  w=%d  %s  %s", r.Title(), width, where, what)
}

// LayoutPage shows the padding table in action: its body lists the table
// entries and marks the active one.
type LayoutPage struct {
	region *Responsive
}

// NewLayoutPage creates the layout page over t.
func NewLayoutPage(t breakpoint.Table, sheet *StyleSheet) *LayoutPage {
	p := &LayoutPage{}
	p.region = NewResponsive(t,
		WithTitle("layout"),
		WithClass("card"),
		WithStyleSheet(sheet),
	)
	p.region.Body = p.body
	return p
}

func (p *LayoutPage) body(out breakpoint.Output) string {
	tbl := p.region.Binding().Table()
	_, active, matched := breakpoint.Match(p.region.Width(), tbl)

	var b strings.Builder
	fmt.Fprintf(&b, "This card is %d cells wide and resolved to %q.\n\n", p.region.Width(), out.String())
	for i, e := range tbl.Entries {
		marker := "  "
		if matched && i == active {
			marker = "▶ "
		}
		fmt.Fprintf(&b, "%s%-12s %s\n", marker, e.Interval, e.Output)
	}
	if !matched {
		fmt.Fprintf(&b, "▶ fallback     %s\n", tbl.Fallback())
	}
	return strings.TrimRight(b.String(), "\n")
}

func (p *LayoutPage) Init() tea.Cmd { return nil }

func (p *LayoutPage) Update(msg tea.Msg) (ChildModel, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		p.SetSize(msg.Width, msg.Height)
	}
	return p, nil
}

func (p *LayoutPage) SetSize(width, height int) { p.region.SetSize(width, height) }

func (p *LayoutPage) View() string { return p.region.View() }

func (p *LayoutPage) Title() string { return "Layout" }

func (p *LayoutPage) Status() string { return describeMatch(p.region) }

func (p *LayoutPage) Close() { p.region.Close() }

// DataPage shows mock data as a table when there is room and as a compact
// list substituted through the "compact" content name otherwise.
type DataPage struct {
	region *Responsive
	sheet  *StyleSheet
	table  *table.Model[Sample]
}

// NewDataPage creates the data page over t.
func NewDataPage(t breakpoint.Table, sheet *StyleSheet, theme Theme, rows []Sample) *DataPage {
	p := &DataPage{sheet: sheet}
	p.table = table.NewModel(
		[]table.Column{
			{Title: "SERVICE", MinWidth: 8, Weight: 3},
			{Title: "REGION", MinWidth: 8, Weight: 2},
			{Title: "LATENCY", MinWidth: 7, Weight: 1},
			{Title: "OK", MinWidth: 2},
		},
		func(s Sample) table.Row {
			return table.Row{s.Name, s.Region, fmt.Sprintf("%dms", s.Latency), healthGlyph(s.Healthy)}
		},
		func(s Sample) string { return s.Name + " " + s.Region },
	)
	p.table.SetColors(theme.HeaderFG, theme.SelectedFG, theme.SelectedBG)
	p.table.SetNoColor(sheet.NoColor())
	p.table.SetRows(rows)

	t = BindContent(t, map[string]breakpoint.Renderable{
		"compact": breakpoint.RenderFunc(p.compactList),
	})
	p.region = NewResponsive(t,
		WithTitle("data"),
		WithStyleSheet(sheet),
		WithBody(func(breakpoint.Output) string { return p.table.View() }),
	)
	return p
}

// compactList renders one truncated line per row.
func (p *DataPage) compactList() string {
	width := p.region.Width()
	limit := p.region.Height()
	rows := p.table.Rows()
	lines := make([]string, 0, len(rows))
	for i, s := range rows {
		if limit > 0 && i >= limit {
			break
		}
		line := fmt.Sprintf("%s %s %dms", healthGlyph(s.Healthy), s.Name, s.Latency)
		if width > 0 {
			line = runewidth.Truncate(line, width, "…")
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (p *DataPage) Init() tea.Cmd { return nil }

func (p *DataPage) Update(msg tea.Msg) (ChildModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.SetSize(msg.Width, msg.Height)
		return p, nil
	case tea.KeyPressMsg:
		var cmd tea.Cmd
		p.table, cmd = p.table.Update(msg)
		return p, cmd
	}
	return p, nil
}

// SetSize resizes the region first so the table is fitted inside the frame
// of the class that applies at the new width.
func (p *DataPage) SetSize(width, height int) {
	p.region.SetSize(width, height)
	frame := p.sheet.Style(p.region.ClassName())
	p.table.SetSize(
		max(width-frame.GetHorizontalFrameSize(), 0),
		max(height-frame.GetVerticalFrameSize(), 1),
	)
}

// SetFilter narrows the rows shown in both renderings.
func (p *DataPage) SetFilter(filter string) { p.table.SetFilter(filter) }

func (p *DataPage) View() string { return p.region.View() }

func (p *DataPage) Title() string { return "Data" }

func (p *DataPage) Status() string { return describeMatch(p.region) }

func (p *DataPage) Close() { p.region.Close() }

// ChartPage draws latency bars when wide enough and a spinner placeholder,
// substituted through the "placeholder" content name, when not.
type ChartPage struct {
	region  *Responsive
	sheet   *StyleSheet
	theme   Theme
	spinner spinner.Model
	rows    []Sample
}

// NewChartPage creates the chart page over t.
func NewChartPage(t breakpoint.Table, sheet *StyleSheet, theme Theme, rows []Sample) *ChartPage {
	s := spinner.New()
	s.Spinner = spinner.Dot
	p := &ChartPage{sheet: sheet, theme: theme, spinner: s, rows: rows}

	t = BindContent(t, map[string]breakpoint.Renderable{
		"placeholder": breakpoint.RenderFunc(p.placeholder),
	})
	p.region = NewResponsive(t,
		WithTitle("chart"),
		WithStyleSheet(sheet),
		WithBody(func(breakpoint.Output) string { return p.chart() }),
	)
	return p
}

// minChartWidth is the narrowest width at which the table yields a class.
func (p *ChartPage) minChartWidth() int {
	for _, e := range p.region.Binding().Table().Entries {
		if e.Output.Kind() == breakpoint.KindClass {
			return e.Interval.Min
		}
	}
	return 0
}

func (p *ChartPage) placeholder() string {
	msg := fmt.Sprintf("%s chart needs %d columns", p.spinner.View(), p.minChartWidth())
	if w := p.region.Width(); w > 0 {
		msg = runewidth.Truncate(msg, w, "…")
	}
	return msg
}

func (p *ChartPage) chart() string {
	if len(p.rows) == 0 {
		return "no data"
	}
	frame := p.sheet.Style(p.region.ClassName()).GetHorizontalFrameSize()
	labelWidth, peak := 0, 1
	for _, s := range p.rows {
		labelWidth = max(labelWidth, runewidth.StringWidth(s.Name))
		peak = max(peak, s.Latency)
	}
	suffix := len(fmt.Sprintf(" %dms", peak))
	barSpace := max(p.region.Width()-frame-labelWidth-1-suffix, 1)

	bar := lipgloss.NewStyle()
	if !p.sheet.NoColor() {
		bar = bar.Foreground(p.theme.Accent)
	}
	lines := make([]string, 0, len(p.rows))
	for _, s := range p.rows {
		n := max(s.Latency*barSpace/peak, 1)
		lines = append(lines, fmt.Sprintf("%s %s %dms",
			runewidth.FillRight(s.Name, labelWidth),
			bar.Render(strings.Repeat("█", n)),
			s.Latency))
	}
	return strings.Join(lines, "\n")
}

func (p *ChartPage) Init() tea.Cmd { return p.spinner.Tick }

func (p *ChartPage) Update(msg tea.Msg) (ChildModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.SetSize(msg.Width, msg.Height)
	case spinner.TickMsg:
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd
	}
	return p, nil
}

func (p *ChartPage) SetSize(width, height int) { p.region.SetSize(width, height) }

func (p *ChartPage) View() string { return p.region.View() }

func (p *ChartPage) Title() string { return "Chart" }

func (p *ChartPage) Status() string { return describeMatch(p.region) }

func (p *ChartPage) Close() { p.region.Close() }
