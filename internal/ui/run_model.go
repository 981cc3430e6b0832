package ui

import (
	"context"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/go-logr/logr"
	"golang.org/x/term"

	"github.com/oakwood-commons/bpx/internal/config"
)

// Fallback terminal size when detection fails.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// RunOptions configures Run.
type RunOptions struct {
	// Width and Height force a window size; zero means use the terminal.
	Width   int
	Height  int
	NoColor bool
	Status  bool
	Page    int
	Logger  logr.Logger
	// ProgramOptions are appended to the Bubble Tea program options.
	ProgramOptions []tea.ProgramOption
}

// Run starts the playground and blocks until it exits or ctx is done.
func Run(ctx context.Context, cfg config.Config, opts RunOptions) error {
	root, err := NewPlayground(cfg, PlaygroundOptions{
		NoColor: opts.NoColor,
		Status:  opts.Status,
		Logger:  opts.Logger,
	})
	if err != nil {
		return err
	}
	defer root.Close()
	root.SetActive(opts.Page)

	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.Width > 0 || opts.Height > 0 {
		w, h := DetectTerminalSize(opts.Width, opts.Height)
		progOpts = append(progOpts, tea.WithWindowSize(w, h))
	}
	progOpts = append(progOpts, opts.ProgramOptions...)

	_, err = tea.NewProgram(root, progOpts...).Run()
	return err
}

// DetectTerminalSize fills non-positive dimensions from the terminal attached
// to stdout, falling back to DefaultWidth x DefaultHeight.
func DetectTerminalSize(width, height int) (int, int) {
	if width <= 0 || height <= 0 {
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			if width <= 0 {
				width = w
			}
			if height <= 0 {
				height = h
			}
		}
	}
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return width, height
}
