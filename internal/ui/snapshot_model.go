package ui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/oakwood-commons/bpx/internal/config"
)

// SnapshotOptions configures RenderSnapshot.
type SnapshotOptions struct {
	Width   int
	Height  int
	NoColor bool
	Status  bool
	// Page selects the active page by index.
	Page int
}

// RenderSnapshot renders a single playground frame without a terminal.
func RenderSnapshot(cfg config.Config, opts SnapshotOptions) (string, error) {
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}
	height := opts.Height
	if height <= 0 {
		height = DefaultHeight
	}

	root, err := NewPlayground(cfg, PlaygroundOptions{NoColor: opts.NoColor, Status: opts.Status})
	if err != nil {
		return "", err
	}
	defer root.Close()

	root.SetActive(opts.Page)
	root.Update(tea.WindowSizeMsg{Width: width, Height: height})

	view := root.Render()
	if opts.NoColor {
		view = ansi.Strip(view)
	}
	return padSnapshotHeight(view, height, width), nil
}

func padSnapshotHeight(view string, height, width int) string {
	lines := strings.Split(strings.TrimRight(view, "\n"), "\n")
	if len(lines) >= height {
		return strings.Join(lines[:height], "\n")
	}
	pad := strings.Repeat(" ", max(width, 1))
	for len(lines) < height {
		lines = append(lines, pad)
	}
	return strings.Join(lines, "\n")
}
