package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/bpx/internal/ui"
	"github.com/oakwood-commons/bpx/pkg/logger"
	"github.com/oakwood-commons/bpx/pkg/settings"
)

type previewOptions struct {
	width    int
	height   int
	snapshot bool
	status   bool
	page     int
}

func newPreviewCommand() *cobra.Command {
	opts := &previewOptions{}
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Run the interactive playground",
		Long: `preview opens a terminal playground whose header, pages and footer are
driven by the tables in the config. Resize the terminal to watch the
resolved classes and substitute content change.`,
		Example: `  bpx preview
  bpx preview --snapshot --width 60 --height 20 --page 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPreview(cmd, opts)
		},
	}
	f := cmd.Flags()
	f.IntVar(&opts.width, "width", 0, "force the window width in cells")
	f.IntVar(&opts.height, "height", 0, "force the window height in rows")
	f.BoolVar(&opts.snapshot, "snapshot", false, "render a single frame to stdout and exit")
	f.BoolVar(&opts.status, "status", true, "show the resolution status line")
	f.IntVar(&opts.page, "page", 1, "initial page (1-based)")
	return cmd
}

func runPreview(cmd *cobra.Command, opts *previewOptions) error {
	ctx := cmd.Context()
	run := settings.FromContextOrDefault(ctx)
	lgr := logger.FromContext(ctx)

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	if opts.snapshot {
		w, h := ui.DetectTerminalSize(opts.width, opts.height)
		frame, err := ui.RenderSnapshot(cfg, ui.SnapshotOptions{
			Width:   w,
			Height:  h,
			NoColor: run.NoColor,
			Status:  opts.status,
			Page:    opts.page - 1,
		})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), frame)
		return err
	}

	progOpts, cleanup := getProgramOptions(ctx)
	defer cleanup()
	lgr.V(1).Info("starting preview", "width", opts.width, "height", opts.height)
	return ui.Run(ctx, cfg, ui.RunOptions{
		Width:          opts.width,
		Height:         opts.height,
		NoColor:        run.NoColor,
		Status:         opts.status,
		Page:           opts.page - 1,
		Logger:         *lgr,
		ProgramOptions: progOpts,
	})
}
