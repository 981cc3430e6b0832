package breakpoint

import (
	"fmt"
	"math"
	"strconv"
)

// Interval is an inclusive width range [Min, Max]. When Unbounded is set the
// range has no upper end and Max is ignored.
type Interval struct {
	Min       int
	Max       int
	Unbounded bool
}

// Between returns the closed interval [min, max].
func Between(min, max int) Interval {
	return Interval{Min: min, Max: max}
}

// AtLeast returns the interval [min, ∞).
func AtLeast(min int) Interval {
	return Interval{Min: min, Unbounded: true}
}

// Contains reports whether width falls inside the interval. Both bounds are inclusive.
func (iv Interval) Contains(width int) bool {
	if width < iv.Min {
		return false
	}
	return iv.Unbounded || width <= iv.Max
}

// Empty reports whether no width can match (Max below Min on a bounded interval).
func (iv Interval) Empty() bool {
	return !iv.Unbounded && iv.Max < iv.Min
}

// openEnded reports whether nothing lies above the interval, so scans must
// not step past Max.
func (iv Interval) openEnded() bool {
	return iv.Unbounded || iv.Max == math.MaxInt
}

// Overlaps reports whether some width is contained in both intervals.
func (iv Interval) Overlaps(other Interval) bool {
	if iv.Empty() || other.Empty() {
		return false
	}
	lo := iv.Min
	if other.Min > lo {
		lo = other.Min
	}
	return iv.Contains(lo) && other.Contains(lo)
}

func (iv Interval) String() string {
	if iv.Unbounded {
		return "[" + strconv.Itoa(iv.Min) + ", ∞)"
	}
	return fmt.Sprintf("[%d, %d]", iv.Min, iv.Max)
}
