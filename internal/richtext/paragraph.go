package richtext

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zjrosen/quill/internal/style"
)

// ParagraphKind classifies a paragraph.
type ParagraphKind int

const (
	KindDefault ParagraphKind = iota
	KindUnorderedList
	KindOrderedList
)

// ParagraphType tags a paragraph with its list membership. Level is
// 1-based nesting depth; Number is the ordinal for ordered items and is
// maintained by Document.Renumber.
type ParagraphType struct {
	Kind   ParagraphKind
	Level  int
	Number int
}

// DefaultType returns the plain paragraph type.
func DefaultType() ParagraphType {
	return ParagraphType{Kind: KindDefault}
}

// UnorderedList returns an unordered list item type at the given level.
func UnorderedList(level int) ParagraphType {
	return ParagraphType{Kind: KindUnorderedList, Level: level}
}

// OrderedList returns an ordered list item type.
func OrderedList(number, level int) ParagraphType {
	return ParagraphType{Kind: KindOrderedList, Level: level, Number: number}
}

// IsList reports whether the paragraph belongs to a list.
func (t ParagraphType) IsList() bool {
	return t.Kind == KindUnorderedList || t.Kind == KindOrderedList
}

// Marker returns the generated start marker rendered before the
// paragraph's text: a bullet glyph or "N. " for ordered items. The marker
// is not part of the editable buffer.
func (t ParagraphType) Marker(glyphs []string) string {
	switch t.Kind {
	case KindUnorderedList:
		return Bullet(t.Level, glyphs) + " "
	case KindOrderedList:
		return strconv.Itoa(t.Number) + ". "
	default:
		return ""
	}
}

// Paragraph is an ordered grouping of top-level spans sharing a paragraph
// style and a list classification.
type Paragraph struct {
	Style style.ParagraphStyle
	Type  ParagraphType

	children []*Span
	doc      *Document
}

// NewParagraph returns an empty paragraph holding the placeholder span
// every empty paragraph materializes, so lookups never run against an
// empty child list.
func NewParagraph() *Paragraph {
	p := &Paragraph{}
	p.AppendSpan(NewTextSpan(""))
	return p
}

// Spans returns the ordered top-level span list. Use the span mutators
// for structural changes.
func (p *Paragraph) Spans() []*Span {
	return p.children
}

// AppendSpan adds s as the last top-level span.
func (p *Paragraph) AppendSpan(s *Span) {
	p.InsertSpan(len(p.children), s)
}

// InsertSpan adds s at position i in the top-level span list.
func (p *Paragraph) InsertSpan(i int, s *Span) {
	s.parent = nil
	s.adopt(p)
	p.children = append(p.children, nil)
	copy(p.children[i+1:], p.children[i:])
	p.children[i] = s
}

// RemoveSpan detaches s from the top-level span list.
func (p *Paragraph) RemoveSpan(s *Span) {
	for i, got := range p.children {
		if got == s {
			p.children = append(p.children[:i], p.children[i+1:]...)
			s.adopt(nil)
			break
		}
	}
	p.EnsureSpan()
}

func (p *Paragraph) indexOf(s *Span) int {
	for i, got := range p.children {
		if got == s {
			return i
		}
	}
	return -1
}

// ReplaceSpans swaps the whole top-level span list. An empty list leaves
// the placeholder span behind.
func (p *Paragraph) ReplaceSpans(spans []*Span) {
	for _, s := range p.children {
		s.adopt(nil)
	}
	p.children = nil
	for _, s := range spans {
		p.AppendSpan(s)
	}
	p.EnsureSpan()
}

// EnsureSpan re-materializes the placeholder span if the paragraph has
// become empty.
func (p *Paragraph) EnsureSpan() {
	if len(p.children) == 0 {
		p.AppendSpan(NewTextSpan(""))
	}
}

// Text returns the paragraph's user-editable text, start marker excluded.
func (p *Paragraph) Text() string {
	var b strings.Builder
	for _, s := range p.children {
		s.writeText(&b)
	}
	return b.String()
}

// Length returns the byte length of the paragraph's text.
func (p *Paragraph) Length() int {
	n := 0
	for _, s := range p.children {
		n += s.Length()
	}
	return n
}

// measure runs a depth-first pass assigning each span its own and full
// text ranges in paragraph-local coordinates, and returns the total
// length. Ranges stay valid until the next mutation.
func (p *Paragraph) measure() int {
	off := 0
	for _, s := range p.children {
		off = s.measure(off)
	}
	return off
}

func (s *Span) measure(off int) int {
	start := off
	s.own = Range{Start: off, End: off + len(s.Text)}
	off = s.own.End
	for _, c := range s.children {
		off = c.measure(off)
	}
	s.full = Range{Start: start, End: off}
	return off
}

// SpanAtIndex locates the span whose own text holds the given
// paragraph-local index and returns it with the offset into its Text.
//
// When the index falls exactly on a span boundary the span that accepts
// edge insertion wins: a span refusing insertion at its trailing edge
// (a link, say) yields to the following sibling. A nil span means no
// owner accepts the position and the caller should append a new span.
func (p *Paragraph) SpanAtIndex(index int) (*Span, int) {
	length := p.measure()
	if index < 0 || index > length {
		panic(fmt.Sprintf("richtext: index %d outside paragraph of length %d", index, length))
	}

	var atEnd, atStart *Span
	var found *Span
	p.walk(func(s *Span) bool {
		if s.own.Contains(index) && index > s.own.Start {
			found = s
			return false
		}
		if index == s.own.End && atEnd == nil && s.Rich.AcceptsEdgeInsertion() {
			atEnd = s
		}
		if index == s.own.Start && atStart == nil && s.Rich.AcceptsEdgeInsertion() {
			if index < s.own.End || s.own.Empty() {
				atStart = s
			}
		}
		return true
	})

	switch {
	case found != nil:
		return found, index - found.own.Start
	case atEnd != nil:
		return atEnd, index - atEnd.own.Start
	case atStart != nil:
		return atStart, index - atStart.own.Start
	default:
		return nil, 0
	}
}

// SpanAtChar returns the span whose own text contains the character
// starting at the given paragraph-local index, with no boundary
// tie-breaking. Used for "style of the character at index" queries, where
// the index always names a character rather than an insertion point.
func (p *Paragraph) SpanAtChar(index int) *Span {
	p.measure()
	var found *Span
	p.walk(func(s *Span) bool {
		if s.own.Contains(index) {
			found = s
			return false
		}
		return true
	})
	return found
}

// SpansInRange collects every span whose full range overlaps r, in
// document order. Ranges follow the measure pass triggered here.
func (p *Paragraph) SpansInRange(r Range) []*Span {
	p.measure()
	var out []*Span
	p.walk(func(s *Span) bool {
		if r.Start < s.full.End && r.End > s.full.Start {
			out = append(out, s)
		}
		return true
	})
	return out
}

// FirstNonEmptyChild returns the first span in document order with
// non-empty own text, or nil.
func (p *Paragraph) FirstNonEmptyChild() *Span {
	var found *Span
	p.walk(func(s *Span) bool {
		if s.Text != "" {
			found = s
			return false
		}
		return true
	})
	return found
}

// walk visits spans depth-first, own text before children. Returning
// false from fn stops the walk.
func (p *Paragraph) walk(fn func(*Span) bool) {
	for _, s := range p.children {
		if !s.walkSpan(fn) {
			return
		}
	}
}

func (s *Span) walkSpan(fn func(*Span) bool) bool {
	if !fn(s) {
		return false
	}
	for _, c := range s.children {
		if !c.walkSpan(fn) {
			return false
		}
	}
	return true
}
