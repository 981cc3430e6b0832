package ui

// Line counts for the fixed playground rows.
const (
	HeaderLineCount  = 1
	StatusLineCount  = 1
	FooterLineCount  = 1
	MinContentHeight = 1
)

// LayoutManager splits the window into header, content, status and footer.
type LayoutManager struct {
	width  int
	height int
}

// ComponentHeights holds the rows assigned to each part.
type ComponentHeights struct {
	HeaderHeight  int
	ContentHeight int
	StatusHeight  int
	FooterHeight  int
}

// NewLayoutManager creates a layout for the given window size.
func NewLayoutManager(width, height int) *LayoutManager {
	return &LayoutManager{width: width, height: height}
}

// SetDimensions updates the window size.
func (lm *LayoutManager) SetDimensions(width, height int) {
	lm.width = width
	lm.height = height
}

// CalculateHeights assigns rows. The content keeps at least MinContentHeight
// rows; when the window is too short the status and then the header give up
// their row, and the footer goes last.
func (lm *LayoutManager) CalculateHeights(showStatus bool) ComponentHeights {
	h := ComponentHeights{
		HeaderHeight: HeaderLineCount,
		FooterHeight: FooterLineCount,
	}
	if showStatus {
		h.StatusHeight = StatusLineCount
	}

	fixed := func() int { return h.HeaderHeight + h.StatusHeight + h.FooterHeight }
	shrink := []*int{&h.StatusHeight, &h.HeaderHeight, &h.FooterHeight}
	for _, row := range shrink {
		if lm.height-fixed() >= MinContentHeight {
			break
		}
		*row = 0
	}

	h.ContentHeight = max(lm.height-fixed(), 0)
	return h
}

// ContentWidth returns the width available to pages.
func (lm *LayoutManager) ContentWidth() int {
	return max(lm.width, 0)
}

func (lm *LayoutManager) GetWidth() int { return lm.width }

func (lm *LayoutManager) GetHeight() int { return lm.height }
