package ui

import (
	"fmt"

	"github.com/go-logr/logr"

	"github.com/oakwood-commons/bpx/internal/config"
	"github.com/oakwood-commons/bpx/pkg/breakpoint"
	"github.com/oakwood-commons/bpx/pkg/loader"
)

// Table names the playground reads from the config.
const (
	TableHeader  = "header"
	TableFooter  = "footer"
	TableContent = "content"
	TableData    = "data"
	TableChart   = "chart"
)

// PlaygroundOptions configures NewPlayground.
type PlaygroundOptions struct {
	NoColor bool
	Status  bool
	Logger  logr.Logger
	Rows    []Sample
}

// LoadTables parses every configured table against the config tokens.
func LoadTables(cfg config.Config) (map[string]breakpoint.Table, error) {
	tables := make(map[string]breakpoint.Table, len(cfg.Tables))
	for _, name := range cfg.TableNames() {
		t, err := loader.Parse(cfg.Tables[name], cfg.Tokens)
		if err != nil {
			return nil, fmt.Errorf("table %q: %w", name, err)
		}
		tables[name] = t
	}
	return tables, nil
}

// NewPlayground builds the shell with the layout, data and chart pages.
// A table missing from the config leaves its region at the empty class.
func NewPlayground(cfg config.Config, opts PlaygroundOptions) (*RootModel, error) {
	tables, err := LoadTables(cfg)
	if err != nil {
		return nil, err
	}
	rows := opts.Rows
	if rows == nil {
		rows = SampleRows()
	}
	sheet := NewStyleSheet(cfg.Classes, opts.NoColor)
	theme := DefaultTheme()

	pages := []ChildModel{
		NewLayoutPage(tables[TableContent], sheet),
		NewDataPage(tables[TableData], sheet, theme, rows),
		NewChartPage(tables[TableChart], sheet, theme, rows),
	}
	return NewRootModel(pages, RootOptions{
		Header:     tables[TableHeader],
		Footer:     tables[TableFooter],
		Sheet:      sheet,
		Theme:      theme,
		ShowStatus: opts.Status,
		Logger:     opts.Logger,
	}), nil
}
