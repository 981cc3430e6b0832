package cel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateInt(t *testing.T) {
	ev, err := NewEvaluator(map[string]int{"sm": 640, "md": 1080, "x-large": 1600})
	require.NoError(t, err)

	tests := []struct {
		expr string
		want int
	}{
		{"sm", 640},
		{"sm + 1", 641},
		{"md - sm", 440},
		{"math.greatest(sm, 900)", 900},
		{`tokens["x-large"] + 1`, 1601},
		{"1081", 1081},
		{"md / 2", 540},
		{"2.0 * 10.0", 20},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := ev.EvaluateInt(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluateInt_Errors(t *testing.T) {
	ev, err := NewEvaluator(map[string]int{"sm": 640})
	require.NoError(t, err)

	for _, expr := range []string{
		"lg + 1",
		`"wide"`,
		"1.5",
		"sm +",
	} {
		_, err := ev.EvaluateInt(expr)
		assert.Error(t, err, "expr %q", expr)
	}
}

func TestNewEvaluator_NoTokens(t *testing.T) {
	ev, err := NewEvaluator(nil)
	require.NoError(t, err)
	require.NotNil(t, ev.GetEnvironment())

	got, err := ev.EvaluateInt("10 + 5")
	require.NoError(t, err)
	assert.Equal(t, 15, got)
}
