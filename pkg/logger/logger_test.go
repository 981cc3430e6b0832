package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mockLogLevel int8 = 0

func TestGetReturnsSameInstanceOnSubsequentCalls(t *testing.T) {
	logger1 := Get(mockLogLevel)
	logger2 := Get(mockLogLevel)
	require.NotNil(t, logger1)
	assert.Same(t, logger1, logger2)
	assert.Same(t, logger1, Setup(Options{Level: -1}))
}

func TestGetReturnsNoopLoggerIfGlobalLoggerNil(t *testing.T) {
	_ = Get(mockLogLevel)
	orig := globalLogrLogger
	globalLogrLogger = nil
	defer func() { globalLogrLogger = orig }()

	assert.Same(t, &defaultNoopLogger, Get(mockLogLevel))
}

func TestWithLoggerReturnsSameContextIfLoggerAlreadySet(t *testing.T) {
	logger := Get(mockLogLevel)
	ctx := WithLogger(context.Background(), logger)
	assert.Equal(t, ctx, WithLogger(ctx, logger))
}

func TestWithLoggerReplacesLoggerIfDifferent(t *testing.T) {
	ctx := WithLogger(context.Background(), Get(mockLogLevel))
	other := logr.Discard()
	assert.Same(t, &other, FromContext(WithLogger(ctx, &other)))
}

func TestFromContextFallsBackToGlobal(t *testing.T) {
	global := Get(mockLogLevel)
	assert.Same(t, global, FromContext(context.Background()))
}

func TestFromContextReturnsNoopLoggerIfNoGlobalOrContextLogger(t *testing.T) {
	orig := globalLogrLogger
	globalLogrLogger = nil
	defer func() { globalLogrLogger = orig }()

	assert.Same(t, &defaultNoopLogger, FromContext(context.Background()))
}

func TestSyncDoesNotPanicWhenGlobalZapLoggerIsNil(t *testing.T) {
	orig := globalZapLogger
	globalZapLogger = nil
	defer func() { globalZapLogger = orig }()

	assert.NotPanics(t, Sync)
}

func TestNewWritesJSONToWriter(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: -1, Writer: &buf})
	log.V(1).Info("attach", WidthKey, 80)

	out := buf.String()
	assert.Contains(t, out, `"message":"attach"`)
	assert.Contains(t, out, `"width":80`)
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: 0, Writer: &buf})
	log.V(1).Info("hidden")
	assert.Empty(t, buf.String())
}

func TestWithValuesReturnsNewLogger(t *testing.T) {
	logger := Get(mockLogLevel)
	newLogger := WithValues(logger, "k", "v")
	require.NotNil(t, newLogger)
	assert.NotSame(t, logger, newLogger)
}

func TestGetNoopLoggerIsNoop(t *testing.T) {
	assert.NotPanics(t, func() { GetNoopLogger().Info("nothing") })
}
