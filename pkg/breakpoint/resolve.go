package breakpoint

// Resolve returns the output of the first entry whose interval contains
// width. When nothing matches it returns t.Fallback().
func Resolve(width int, t Table) Output {
	out, _, _ := Match(width, t)
	return out
}

// Match is Resolve that also reports which entry matched. On a miss the
// index is -1 and ok is false, while out still carries the fallback.
func Match(width int, t Table) (out Output, index int, ok bool) {
	for i, e := range t.Entries {
		if e.Interval.Contains(width) {
			if e.Output.IsZero() {
				return ClassName(""), i, true
			}
			return e.Output, i, true
		}
	}
	return t.Fallback(), -1, false
}
