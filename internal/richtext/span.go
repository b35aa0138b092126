package richtext

import (
	"strings"

	"github.com/zjrosen/quill/internal/style"
)

// Span is a run of text sharing one character style. A span may carry
// nested child spans for sub-ranges with overriding styles; its own Text
// always precedes the children's text within the span's full extent.
//
// The parent and paragraph references are non-owning back-pointers used
// for upward style lookup only. Ownership runs strictly top-down:
// Document owns Paragraphs, a Paragraph owns its top-level Spans, a Span
// owns its children.
type Span struct {
	Text  string
	Style style.CharacterStyle
	Rich  style.RichSpanStyle

	children []*Span
	parent   *Span
	para     *Paragraph

	// Scratch ranges assigned by the last measure pass. Mutation
	// invalidates them, so they are recomputed per query rather than
	// kept authoritative.
	full Range // own text plus all children
	own  Range // own leading text only
}

// NewSpan builds a detached span.
func NewSpan(text string, cs style.CharacterStyle, rich style.RichSpanStyle) *Span {
	return &Span{Text: text, Style: cs, Rich: rich}
}

// NewTextSpan builds a detached span with default styles.
func NewTextSpan(text string) *Span {
	return &Span{Text: text}
}

// Children returns the ordered child list. Callers must not mutate it
// structurally; use the child mutators so back-references stay coherent.
func (s *Span) Children() []*Span {
	return s.children
}

// Parent returns the parent span, or nil for a paragraph-level span.
func (s *Span) Parent() *Span {
	return s.parent
}

// Paragraph returns the owning paragraph.
func (s *Span) Paragraph() *Paragraph {
	return s.para
}

// OwnRange returns the range of the span's own leading text as of the
// last measure pass. Valid after any query that measures, such as
// SpansInRange.
func (s *Span) OwnRange() Range {
	return s.own
}

// FullText returns the span's own text followed by the recursive
// concatenation of its children's text.
func (s *Span) FullText() string {
	if len(s.children) == 0 {
		return s.Text
	}
	var b strings.Builder
	s.writeText(&b)
	return b.String()
}

func (s *Span) writeText(b *strings.Builder) {
	b.WriteString(s.Text)
	for _, c := range s.children {
		c.writeText(b)
	}
}

// Length returns the byte length of the span's full text.
func (s *Span) Length() int {
	n := len(s.Text)
	for _, c := range s.children {
		n += c.Length()
	}
	return n
}

// IsBlank reports whether the span holds no text at all, directly or in
// any descendant. A blank span is removable.
func (s *Span) IsBlank() bool {
	if s.Text != "" {
		return false
	}
	for _, c := range s.children {
		if !c.IsBlank() {
			return false
		}
	}
	return true
}

// FullStyle returns the top-down merge of all ancestor styles with this
// span's own style. The span's own specified fields win.
func (s *Span) FullStyle() style.CharacterStyle {
	if s.parent == nil {
		return s.Style
	}
	return s.parent.FullStyle().Merge(s.Style)
}

// AppendChild adds c as the last child.
func (s *Span) AppendChild(c *Span) {
	s.InsertChild(len(s.children), c)
}

// InsertChild adds c at position i in the child list.
func (s *Span) InsertChild(i int, c *Span) {
	c.parent = s
	c.adopt(s.para)
	s.children = append(s.children, nil)
	copy(s.children[i+1:], s.children[i:])
	s.children[i] = c
}

// RemoveChild detaches c from the child list. Unknown children are
// ignored.
func (s *Span) RemoveChild(c *Span) {
	for i, got := range s.children {
		if got == c {
			s.children = append(s.children[:i], s.children[i+1:]...)
			c.parent = nil
			c.adopt(nil)
			return
		}
	}
}

// indexIn returns c's position in the child list, or -1.
func (s *Span) indexOf(c *Span) int {
	for i, got := range s.children {
		if got == c {
			return i
		}
	}
	return -1
}

// adopt updates the paragraph back-reference for the whole subtree.
func (s *Span) adopt(p *Paragraph) {
	s.para = p
	for _, c := range s.children {
		c.adopt(p)
	}
}

// InsertSiblingAfter places n immediately after ref in ref's owner, which
// is either the parent span's child list or the paragraph's top-level
// span list.
func InsertSiblingAfter(ref, n *Span) {
	if ref.parent != nil {
		ref.parent.InsertChild(ref.parent.indexOf(ref)+1, n)
		return
	}
	if ref.para != nil {
		ref.para.InsertSpan(ref.para.indexOf(ref)+1, n)
	}
}
