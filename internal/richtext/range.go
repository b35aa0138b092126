// Package richtext holds the paragraph/span tree at the heart of the
// engine: spans of styled text (possibly nested), paragraphs grouping
// top-level spans, and the document as an ordered paragraph list whose
// concatenated text mirrors the externally observed flat buffer.
//
// All indices are byte offsets into the UTF-8 text. Handing the tree an
// index outside the current text length is a caller bug and panics;
// continuing would silently corrupt the text/tree invariant.
package richtext

import "fmt"

// Range is a half-open [Start, End) byte interval.
type Range struct {
	Start int
	End   int
}

// NewRange builds a range and panics when start > end or start < 0.
func NewRange(start, end int) Range {
	if start < 0 || start > end {
		panic(fmt.Sprintf("richtext: invalid range [%d, %d)", start, end))
	}
	return Range{Start: start, End: end}
}

// Len returns the number of bytes covered.
func (r Range) Len() int {
	return r.End - r.Start
}

// Empty reports whether the range covers nothing.
func (r Range) Empty() bool {
	return r.Start >= r.End
}

// Contains reports whether index falls inside the half-open interval.
func (r Range) Contains(index int) bool {
	return index >= r.Start && index < r.End
}

// Overlaps reports whether the two half-open ranges share any position.
func (r Range) Overlaps(o Range) bool {
	return r.Start < o.End && r.End > o.Start
}

// Covers reports whether o lies entirely inside r.
func (r Range) Covers(o Range) bool {
	return r.Start <= o.Start && o.End <= r.End
}

// Shift returns the range translated by delta.
func (r Range) Shift(delta int) Range {
	return Range{Start: r.Start + delta, End: r.End + delta}
}
