package breakpoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUse_InstancesAreIndependent(t *testing.T) {
	table := scenarioTable()
	h1, c1 := Use(table)
	h2, c2 := Use(table)

	s1 := NewSurface(700)
	s2 := NewSurface(700)
	h1.Ref(s1)
	h2.Ref(s2)
	defer h1.Release()
	defer h2.Release()

	assert.Equal(t, "md", c1.Class())
	assert.Equal(t, "md", c2.Class())

	s1.Resize(2000)
	assert.Equal(t, "lg", c1.Class())
	assert.Equal(t, "md", c2.Class())

	calls := 0
	h2.Binding().OnChange(func(Output) { calls++ })
	s1.Resize(100)
	assert.Equal(t, 0, calls)
}

func TestUse_UnattachedHandleStaysAtDefault(t *testing.T) {
	_, current := Use(scenarioTable().WithDefault(ClassName("pending")))
	assert.Equal(t, "pending", current.Get().String())
}

func TestUse_UpdateAndRelease(t *testing.T) {
	h, current := Use(scenarioTable())
	s := NewSurface(1000)
	h.Ref(s)
	assert.Equal(t, "md", current.Class())

	h.Update(NewTable(When(AtLeast(900), Content(Text("big")))))
	assert.Equal(t, "", current.Class())
	assert.Equal(t, "big", current.Get().String())

	h.Ref(nil)
	assert.Equal(t, Unbound, h.Binding().State())
	h.Release()
	assert.Equal(t, 0, s.Observers())
}
