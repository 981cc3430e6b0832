package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/bpx/pkg/breakpoint"
	"github.com/oakwood-commons/bpx/pkg/logger"
)

// resolution is the structured result for one width.
type resolution struct {
	Width    int    `json:"width" yaml:"width"`
	Matched  bool   `json:"matched" yaml:"matched"`
	Index    int    `json:"index" yaml:"index"`
	Interval string `json:"interval,omitempty" yaml:"interval,omitempty"`
	Kind     string `json:"kind" yaml:"kind"`
	Class    string `json:"class,omitempty" yaml:"class,omitempty"`
	Content  string `json:"content,omitempty" yaml:"content,omitempty"`
}

func resolveWidth(width int, t breakpoint.Table) resolution {
	out, idx, ok := breakpoint.Match(width, t)
	r := resolution{Width: width, Matched: ok, Index: idx, Kind: out.Kind().String()}
	if ok {
		r.Interval = t.Entries[idx].Interval.String()
	}
	if class, isClass := out.Class(); isClass {
		r.Class = class
	} else if c, isContent := out.Renderable(); isContent {
		r.Content = c.Render()
	}
	return r
}

func (r resolution) text() string {
	value := fmt.Sprintf("class %q", r.Class)
	if r.Kind == breakpoint.KindContent.String() {
		value = fmt.Sprintf("content %q", r.Content)
	}
	where := "fallback"
	if r.Matched {
		where = fmt.Sprintf("entry %d %s", r.Index, r.Interval)
	}
	return fmt.Sprintf("%d\t%s\t(%s)", r.Width, value, where)
}

type resolveOptions struct {
	widths []int
	source tableSource
	output outputFormat
}

func newResolveCommand() *cobra.Command {
	opts := &resolveOptions{}
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a table at one or more widths",
		Example: `  bpx resolve --width 700 --table "0..640 => sm; 641..1080 => md; 1081.. => lg"
  bpx resolve -w 60,100 --name footer -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runResolve(cmd, opts)
		},
	}
	cmd.Flags().IntSliceVarP(&opts.widths, "width", "w", nil, "width in cells; repeat or comma-separate for several")
	_ = cmd.MarkFlagRequired("width")
	opts.source.addFlags(cmd.Flags())
	addOutputFlag(cmd.Flags(), &opts.output)
	return cmd
}

func runResolve(cmd *cobra.Command, opts *resolveOptions) error {
	ctx := cmd.Context()
	lgr := logger.FromContext(ctx)

	for _, w := range opts.widths {
		if w < 0 {
			return fmt.Errorf("invalid width %d: must not be negative", w)
		}
	}
	if len(opts.widths) == 0 {
		return errors.New("--width is required")
	}

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	t, origin, err := opts.source.load(cfg)
	if err != nil {
		return err
	}
	lgr.V(1).Info("table loaded", "origin", origin, "entries", t.Len(), "strict", t.Strict)

	results := make([]resolution, 0, len(opts.widths))
	for _, w := range opts.widths {
		results = append(results, resolveWidth(w, t))
	}
	return printResolutions(cmd.OutOrStdout(), opts.output, results)
}

func printResolutions(w io.Writer, format outputFormat, results []resolution) error {
	if ok, err := writeStructured(w, format, results); ok {
		return err
	}
	for _, r := range results {
		if _, err := fmt.Fprintln(w, r.text()); err != nil {
			return err
		}
	}
	return nil
}
