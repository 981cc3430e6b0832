package cmd

import (
	"context"
	"errors"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreview_Snapshot(t *testing.T) {
	out := mustExecute(t, "--no-color", "preview", "--snapshot", "--width", "100", "--height", "12")
	assert.Len(t, strings.Split(strings.TrimSuffix(out, "\n"), "\n"), 12)
	assert.Contains(t, out, "1 Layout")
	assert.Contains(t, out, `resolved to "px-4"`)
	assert.NotContains(t, out, "\x1b[")
}

func TestPreview_SnapshotPage(t *testing.T) {
	out := mustExecute(t, "--no-color", "preview", "--snapshot", "--width", "50", "--height", "12", "--page", "3")
	assert.Contains(t, out, "chart needs")
}

func TestTerminalDeviceNames(t *testing.T) {
	t.Parallel()

	in, out := terminalDeviceNames("windows")
	assert.Equal(t, "CONIN$", in)
	assert.Equal(t, "CONOUT$", out)

	for _, goos := range []string{"linux", "darwin"} {
		in, out := terminalDeviceNames(goos)
		assert.Equal(t, "/dev/tty", in)
		assert.Equal(t, "/dev/tty", out)
	}
}

func TestGetProgramOptions_NotPiped(t *testing.T) {
	orig := stdinIsPiped
	stdinIsPiped = func() bool { return false }
	t.Cleanup(func() { stdinIsPiped = orig })

	opts, cleanup := getProgramOptions(context.Background())
	assert.Nil(t, opts)
	cleanup()
}

func TestGetProgramOptions_NoTTY(t *testing.T) {
	origPiped, origOpen := stdinIsPiped, openTerminalIOFn
	stdinIsPiped = func() bool { return true }
	openTerminalIOFn = func() (*os.File, *os.File, error) { return nil, nil, errors.New("no tty") }
	t.Cleanup(func() {
		stdinIsPiped = origPiped
		openTerminalIOFn = origOpen
	})

	opts, cleanup := getProgramOptions(context.Background())
	assert.Nil(t, opts)
	cleanup()
}

type fakeResizeTicker struct {
	ch chan time.Time
}

func (f *fakeResizeTicker) C() <-chan time.Time { return f.ch }
func (f *fakeResizeTicker) Stop()               {}

func TestWithTTYResizeWatcher_SendsOnlyChanges(t *testing.T) {
	origSize, origTicker, origSend := termGetSize, newResizeTicker, sendWindowSize
	t.Cleanup(func() {
		termGetSize = origSize
		newResizeTicker = origTicker
		sendWindowSize = origSend
	})

	calls := atomic.Int32{}
	termGetSize = func(int) (int, int, error) {
		switch calls.Add(1) {
		case 1, 2:
			return 80, 24, nil
		default:
			return 120, 24, nil
		}
	}
	ticks := make(chan time.Time, 3)
	newResizeTicker = func(time.Duration) resizeTicker { return &fakeResizeTicker{ch: ticks} }
	msgs := make(chan tea.WindowSizeMsg, 3)
	sendWindowSize = func(_ *tea.Program, msg tea.WindowSizeMsg) { msgs <- msg }

	f, err := os.CreateTemp(t.TempDir(), "tty")
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	var p tea.Program
	withTTYResizeWatcher(ctx, f)(&p)
	for range 3 {
		ticks <- time.Now()
	}

	recv := func() tea.WindowSizeMsg {
		select {
		case m := <-msgs:
			return m
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for resize message")
			return tea.WindowSizeMsg{}
		}
	}
	assert.Equal(t, tea.WindowSizeMsg{Width: 80, Height: 24}, recv())
	assert.Equal(t, tea.WindowSizeMsg{Width: 120, Height: 24}, recv())
	cancel()
}
