package richtext

import (
	"fmt"

	"github.com/zjrosen/quill/internal/style"
)

// RemoveRange excises the paragraph-local byte range r from the span
// tree, bottom-up. Spans left without any text or children are removed;
// a span reduced to a single child with no own text is spliced out, its
// style merged into the child so the net visual effect is preserved.
// Removing an empty range is a no-op and never mutates structure.
func (p *Paragraph) RemoveRange(r Range) {
	length := p.measure()
	if r.Start < 0 || r.Start > r.End || r.End > length {
		panic(fmt.Sprintf("richtext: remove range [%d, %d) outside paragraph of length %d", r.Start, r.End, length))
	}
	if r.Empty() {
		return
	}

	kept := p.children[:0]
	for _, s := range p.children {
		if replacement := removeFromSpan(s, r); replacement != nil {
			replacement.parent = nil
			replacement.adopt(p)
			kept = append(kept, replacement)
		}
	}
	p.children = kept
	p.EnsureSpan()
}

// removeFromSpan cuts r out of s using the ranges assigned by the last
// measure pass. It returns s, a spliced replacement, or nil when the span
// ends up entirely empty and should be dropped by its owner.
func removeFromSpan(s *Span, r Range) *Span {
	if !s.full.Overlaps(r) {
		return s
	}

	if s.own.Overlaps(r) {
		lo := max(r.Start, s.own.Start) - s.own.Start
		hi := min(r.End, s.own.End) - s.own.Start
		s.Text = s.Text[:lo] + s.Text[hi:]
	}

	kept := s.children[:0]
	for _, c := range s.children {
		if replacement := removeFromSpan(c, r); replacement != nil {
			replacement.parent = s
			kept = append(kept, replacement)
		}
	}
	s.children = kept

	if s.Text == "" {
		switch len(s.children) {
		case 0:
			return nil
		case 1:
			// Splice the lone child into this span's position, folding
			// this span's style underneath the child's overrides.
			child := s.children[0]
			child.Style = s.Style.Merge(child.Style)
			if child.Rich.Kind == style.SpanDefault {
				child.Rich = s.Rich
			}
			s.children = nil
			child.parent = s.parent
			return child
		}
	}
	return s
}
