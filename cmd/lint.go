package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/bpx/internal/config"
	"github.com/oakwood-commons/bpx/internal/ui"
	"github.com/oakwood-commons/bpx/pkg/breakpoint"
)

// errFindings is returned with --fail when the table has findings.
var errFindings = errors.New("table has lint findings")

// lintFinding is the structured form of a finding.
type lintFinding struct {
	Kind    string `json:"kind" yaml:"kind"`
	Entry   int    `json:"entry" yaml:"entry"`
	Other   *int   `json:"other,omitempty" yaml:"other,omitempty"`
	Message string `json:"message" yaml:"message"`
}

type lintOptions struct {
	source  tableSource
	output  outputFormat
	fail    bool
	classes bool
}

func newLintCommand() *cobra.Command {
	opts := &lintOptions{}
	cmd := &cobra.Command{
		Use:   "lint",
		Short: "Report overlaps, gaps and unreachable entries in a table",
		Long: `lint reports advisory findings. Overlaps are legal: the earlier entry wins.
Gaps fall back to the table default. Findings never change resolution.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLint(cmd, opts)
		},
	}
	opts.source.addFlags(cmd.Flags())
	addOutputFlag(cmd.Flags(), &opts.output)
	cmd.Flags().BoolVar(&opts.fail, "fail", false, "exit non-zero when there are findings")
	cmd.Flags().BoolVar(&opts.classes, "check-classes", true, "report class tokens unknown to the style sheet")
	return cmd
}

func runLint(cmd *cobra.Command, opts *lintOptions) error {
	cfg, err := loadConfig(cmd.Context())
	if err != nil {
		return err
	}
	t, _, err := opts.source.load(cfg)
	if err != nil {
		return err
	}

	findings := lintTable(t, cfg, opts.classes)
	if err := printFindings(cmd.OutOrStdout(), opts.output, findings); err != nil {
		return err
	}
	if opts.fail && len(findings) > 0 {
		return errFindings
	}
	return nil
}

func lintTable(t breakpoint.Table, cfg config.Config, checkClasses bool) []lintFinding {
	out := []lintFinding{}
	for _, f := range t.Lint() {
		lf := lintFinding{Kind: f.Kind.String(), Entry: f.Index, Message: f.Message}
		if f.Other >= 0 {
			other := f.Other
			lf.Other = &other
		}
		out = append(out, lf)
	}
	if !checkClasses {
		return out
	}

	sheet := ui.NewStyleSheet(cfg.Classes, true)
	for i, e := range t.Entries {
		class, ok := e.Output.Class()
		if !ok {
			continue
		}
		for _, tok := range ui.ClassTokens(class) {
			if !sheet.Known(tok) {
				out = append(out, lintFinding{
					Kind:    "unknown-class",
					Entry:   i,
					Message: fmt.Sprintf("entry %d uses class %q which is neither configured nor a utility", i, tok),
				})
			}
		}
	}
	return out
}

func printFindings(w io.Writer, format outputFormat, findings []lintFinding) error {
	if ok, err := writeStructured(w, format, findings); ok {
		return err
	}
	if len(findings) == 0 {
		_, err := fmt.Fprintln(w, "no findings")
		return err
	}
	for _, f := range findings {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", f.Kind, f.Message); err != nil {
			return err
		}
	}
	return nil
}
