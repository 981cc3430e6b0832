package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayoutManager_CalculateHeights(t *testing.T) {
	tests := []struct {
		name   string
		height int
		status bool
		want   ComponentHeights
	}{
		{"roomy with status", 24, true, ComponentHeights{HeaderHeight: 1, ContentHeight: 21, StatusHeight: 1, FooterHeight: 1}},
		{"roomy without status", 24, false, ComponentHeights{HeaderHeight: 1, ContentHeight: 22, FooterHeight: 1}},
		{"status dropped first", 3, true, ComponentHeights{HeaderHeight: 1, ContentHeight: 1, FooterHeight: 1}},
		{"header dropped next", 2, true, ComponentHeights{ContentHeight: 1, FooterHeight: 1}},
		{"only content", 1, true, ComponentHeights{ContentHeight: 1}},
		{"zero height", 0, false, ComponentHeights{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lm := NewLayoutManager(80, tt.height)
			assert.Equal(t, tt.want, lm.CalculateHeights(tt.status))
		})
	}
}

func TestLayoutManager_Dimensions(t *testing.T) {
	lm := NewLayoutManager(80, 24)
	lm.SetDimensions(-5, 10)
	assert.Equal(t, 0, lm.ContentWidth())
	assert.Equal(t, -5, lm.GetWidth())
	assert.Equal(t, 10, lm.GetHeight())
}
