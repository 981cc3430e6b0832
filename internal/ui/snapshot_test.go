package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/bpx/internal/config"
)

func defaultConfig(t *testing.T) config.Config {
	t.Helper()
	cfg, err := config.Default()
	require.NoError(t, err)
	return cfg
}

func snapshot(t *testing.T, width, page int) string {
	t.Helper()
	out, err := RenderSnapshot(defaultConfig(t), SnapshotOptions{
		Width:   width,
		Height:  20,
		NoColor: true,
		Status:  true,
		Page:    page,
	})
	require.NoError(t, err)
	assert.Len(t, strings.Split(out, "\n"), 20)
	assert.NotContains(t, out, "\x1b[")
	return out
}

func TestSnapshot_HeaderSwapsToTitleWhenNarrow(t *testing.T) {
	wide := snapshot(t, 140, 0)
	assert.Contains(t, wide, "1 Layout")
	assert.Contains(t, wide, "3 Chart")

	narrow := snapshot(t, 60, 0)
	assert.NotContains(t, narrow, "3 Chart")
	assert.True(t, strings.HasPrefix(narrow, "Layout"))
}

func TestSnapshot_LayoutPageMarksActiveEntry(t *testing.T) {
	out := snapshot(t, 100, 0)
	assert.Contains(t, out, "100 cells wide")
	assert.Contains(t, out, `resolved to "px-4"`)
	assert.Contains(t, out, "▶ [81, 120]")
	assert.Contains(t, out, "layout  w=100  entry 1")
}

func TestSnapshot_DataPageSwitchesRendering(t *testing.T) {
	wide := snapshot(t, 120, 1)
	assert.Contains(t, wide, "SERVICE")
	assert.Contains(t, wide, "gateway")
	assert.Contains(t, wide, "╭")

	narrow := snapshot(t, 50, 1)
	assert.NotContains(t, narrow, "SERVICE")
	assert.Contains(t, narrow, "● gateway 42ms")
	assert.Contains(t, narrow, "○ search 76ms")
}

func TestSnapshot_ChartPagePlaceholder(t *testing.T) {
	narrow := snapshot(t, 60, 2)
	assert.Contains(t, narrow, "chart needs 81 columns")
	assert.NotContains(t, narrow, "█")

	wide := snapshot(t, 120, 2)
	assert.Contains(t, wide, "notifications")
	assert.Contains(t, wide, "█")
	assert.Contains(t, wide, "203ms")
}

func TestSnapshot_BadTableFails(t *testing.T) {
	cfg := defaultConfig(t)
	cfg.Tables = map[string]string{"footer": "0..nope => px-1"}
	_, err := RenderSnapshot(cfg, SnapshotOptions{Width: 80, Height: 10})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `table "footer"`)
}

func TestPadSnapshotHeight(t *testing.T) {
	assert.Equal(t, "a\n  \n  ", padSnapshotHeight("a\n", 3, 2))
	assert.Equal(t, "a\nb", padSnapshotHeight("a\nb\nc", 2, 2))
}

func TestDetectTerminalSize_Explicit(t *testing.T) {
	w, h := DetectTerminalSize(100, 30)
	assert.Equal(t, 100, w)
	assert.Equal(t, 30, h)
}

func TestSnapshot_StatusSummarisesContent(t *testing.T) {
	out := snapshot(t, 50, 1)
	assert.Contains(t, out, "data  w=50  entry 0  content")
	out = snapshot(t, 120, 1)
	assert.Contains(t, out, `data  w=120  entry 1  class "card"`)
}
