package breakpoint

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(findings []Finding) []FindingKind {
	out := make([]FindingKind, 0, len(findings))
	for _, f := range findings {
		out = append(out, f.Kind)
	}
	return out
}

func TestLint_CleanTable(t *testing.T) {
	assert.Empty(t, scenarioTable().Lint())
}

func TestLint_Overlap(t *testing.T) {
	table := NewTable(
		When(Between(0, 700), ClassName("sm")),
		When(Between(641, 1080), ClassName("md")),
		When(AtLeast(1081), ClassName("lg")),
	)
	findings := table.Lint()
	require.Len(t, findings, 1)
	assert.Equal(t, FindingOverlap, findings[0].Kind)
	assert.Equal(t, 1, findings[0].Index)
	assert.Equal(t, 0, findings[0].Other)
}

func TestLint_Gaps(t *testing.T) {
	table := NewTable(
		When(Between(100, 640), ClassName("sm")),
		When(AtLeast(700), ClassName("lg")),
	)
	findings := table.Lint()
	require.Len(t, findings, 2)
	assert.Equal(t, []FindingKind{FindingGap, FindingGap}, kinds(findings))
	assert.Contains(t, findings[0].Message, "[0, 99]")
	assert.Contains(t, findings[1].Message, "[641, 699]")
}

func TestLint_OpenTail(t *testing.T) {
	table := NewTable(When(Between(0, 10), ClassName("x")))
	findings := table.Lint()
	require.Len(t, findings, 1)
	assert.Contains(t, findings[0].Message, "[11, ∞)")
}

// lintWithin runs Lint and fails the test if it does not return in time.
func lintWithin(t *testing.T, table Table) []Finding {
	t.Helper()
	done := make(chan []Finding, 1)
	go func() { done <- table.Lint() }()
	select {
	case findings := <-done:
		return findings
	case <-time.After(2 * time.Second):
		t.Fatal("Lint did not return")
		return nil
	}
}

func TestLint_MaxIntBoundShadowsLaterEntries(t *testing.T) {
	table := NewTable(
		When(Between(math.MinInt, math.MaxInt), ClassName("a")),
		When(AtLeast(0), ClassName("b")),
	)
	findings := lintWithin(t, table)
	require.Len(t, findings, 1)
	assert.Equal(t, FindingShadowed, findings[0].Kind)
	assert.Equal(t, 1, findings[0].Index)
}

func TestLint_MaxIntBoundLeavesNoGap(t *testing.T) {
	table := NewTable(When(Between(0, math.MaxInt), ClassName("a")))
	assert.Empty(t, lintWithin(t, table))
}

func TestLint_ShadowedAndEmpty(t *testing.T) {
	table := NewTable(
		When(AtLeast(0), ClassName("all")),
		When(Between(0, 10), ClassName("never")),
		When(Between(10, 5), ClassName("empty")),
	)
	assert.Equal(t, []FindingKind{FindingShadowed, FindingEmpty}, kinds(table.Lint()))
}

func TestLint_ShadowedByChain(t *testing.T) {
	table := NewTable(
		When(Between(0, 50), ClassName("a")),
		When(Between(51, 100), ClassName("b")),
		When(Between(20, 80), ClassName("c")),
		When(AtLeast(101), ClassName("d")),
	)
	findings := table.Lint()
	require.Len(t, findings, 1)
	assert.Equal(t, FindingShadowed, findings[0].Kind)
	assert.Equal(t, 2, findings[0].Index)
}

func TestLint_DoesNotChangeResolution(t *testing.T) {
	table := NewTable(
		When(Between(0, 700), ClassName("sm")),
		When(Between(641, 1080), ClassName("md")),
	)
	_ = table.Lint()
	assert.Equal(t, "sm", Resolve(650, table).String())
}

func TestTable_Fallback(t *testing.T) {
	assert.Equal(t, "sm", scenarioTable().Fallback().String())
	assert.Equal(t, "", Table{}.Fallback().String())
	assert.Equal(t, "", scenarioTable().WithStrict(true).Fallback().String())
	assert.Equal(t, "d", Table{}.WithDefault(ClassName("d")).Fallback().String())
}
