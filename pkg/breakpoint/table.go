package breakpoint

import "fmt"

// Entry pairs a width interval with the output it produces.
type Entry struct {
	Interval Interval
	Output   Output
}

// Table is an ordered list of entries. Order is match priority: entries need
// not be sorted and may overlap or leave gaps.
//
// When no entry matches, the table falls back to Default if it is set, and
// otherwise to the first entry's output. Strict tables skip the first-entry
// fallback so a miss yields Default or the empty class.
type Table struct {
	Entries []Entry
	Default Output
	Strict  bool
}

// NewTable builds a table from entries.
func NewTable(entries ...Entry) Table {
	return Table{Entries: entries}
}

// When is shorthand for an Entry.
func When(iv Interval, out Output) Entry {
	return Entry{Interval: iv, Output: out}
}

// WithDefault returns a copy of the table with an explicit fallback output.
func (t Table) WithDefault(out Output) Table {
	t.Default = out
	return t
}

// WithStrict returns a copy of the table with strict fallback enabled.
func (t Table) WithStrict(strict bool) Table {
	t.Strict = strict
	return t
}

// Len returns the number of entries.
func (t Table) Len() int { return len(t.Entries) }

// Fallback returns the output used when no entry matches, including before
// any width is known.
func (t Table) Fallback() Output {
	if !t.Default.IsZero() {
		return t.Default
	}
	if !t.Strict && len(t.Entries) > 0 && !t.Entries[0].Output.IsZero() {
		return t.Entries[0].Output
	}
	return ClassName("")
}

// FindingKind classifies a Lint finding.
type FindingKind int

const (
	// FindingOverlap means two entries share widths; the earlier one wins.
	FindingOverlap FindingKind = iota
	// FindingGap means a width range between entries is not covered.
	FindingGap
	// FindingEmpty means an entry can never match.
	FindingEmpty
	// FindingShadowed means an entry is fully covered by earlier entries.
	FindingShadowed
)

func (k FindingKind) String() string {
	switch k {
	case FindingOverlap:
		return "overlap"
	case FindingGap:
		return "gap"
	case FindingEmpty:
		return "empty"
	case FindingShadowed:
		return "shadowed"
	default:
		return "unknown"
	}
}

// Finding is an advisory observation about a table. Findings never change
// resolution.
type Finding struct {
	Kind    FindingKind
	Index   int
	Other   int
	Message string
}

// Lint reports overlaps, gaps, empty and shadowed entries. Tables are never
// rejected; first-match-wins is the only precedence rule.
func (t Table) Lint() []Finding {
	var findings []Finding
	for i, e := range t.Entries {
		if e.Interval.Empty() {
			findings = append(findings, Finding{
				Kind:    FindingEmpty,
				Index:   i,
				Other:   -1,
				Message: fmt.Sprintf("entry %d %s can never match", i, e.Interval),
			})
			continue
		}
		if t.shadowed(i) {
			findings = append(findings, Finding{
				Kind:    FindingShadowed,
				Index:   i,
				Other:   -1,
				Message: fmt.Sprintf("entry %d %s is covered by earlier entries", i, e.Interval),
			})
			continue
		}
		for j := 0; j < i; j++ {
			if t.Entries[j].Interval.Overlaps(e.Interval) {
				findings = append(findings, Finding{
					Kind:    FindingOverlap,
					Index:   i,
					Other:   j,
					Message: fmt.Sprintf("entry %d %s overlaps entry %d %s; entry %d wins", i, e.Interval, j, t.Entries[j].Interval, j),
				})
			}
		}
	}
	return append(findings, t.gaps()...)
}

// shadowed reports whether every width of entry i matches an earlier entry.
func (t Table) shadowed(i int) bool {
	iv := t.Entries[i].Interval
	w := iv.Min
	for {
		covered := false
		for j := 0; j < i; j++ {
			other := t.Entries[j].Interval
			if !other.Contains(w) {
				continue
			}
			covered = true
			if other.openEnded() {
				return true
			}
			if !iv.Unbounded && other.Max >= iv.Max {
				return true
			}
			w = other.Max + 1
			break
		}
		if !covered {
			return false
		}
	}
}

// gaps scans the covered widths from 0 upward and reports holes.
func (t Table) gaps() []Finding {
	var findings []Finding
	w := 0
	for {
		next, covered := t.coverFrom(w)
		if covered {
			if next < 0 {
				return findings
			}
			w = next
			continue
		}
		start := nextStart(t.Entries, w)
		if start < 0 {
			findings = append(findings, Finding{
				Kind:    FindingGap,
				Index:   -1,
				Other:   -1,
				Message: fmt.Sprintf("widths %s match no entry", AtLeast(w)),
			})
			return findings
		}
		findings = append(findings, Finding{
			Kind:    FindingGap,
			Index:   -1,
			Other:   -1,
			Message: fmt.Sprintf("widths %s match no entry", Between(w, start-1)),
		})
		w = start
	}
}

// coverFrom returns the first width past the entry covering w, or -1 when the
// covering entry is unbounded.
func (t Table) coverFrom(w int) (int, bool) {
	best := -2
	for _, e := range t.Entries {
		if e.Interval.Empty() || !e.Interval.Contains(w) {
			continue
		}
		if e.Interval.openEnded() {
			return -1, true
		}
		if e.Interval.Max+1 > best {
			best = e.Interval.Max + 1
		}
	}
	if best == -2 {
		return 0, false
	}
	return best, true
}

func nextStart(entries []Entry, w int) int {
	start := -1
	for _, e := range entries {
		if e.Interval.Empty() || e.Interval.Min <= w {
			continue
		}
		if start < 0 || e.Interval.Min < start {
			start = e.Interval.Min
		}
	}
	return start
}
