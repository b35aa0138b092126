package richtext

import (
	"fmt"
	"strings"

	"github.com/zjrosen/quill/internal/style"
)

// Document is the ordered paragraph list. Outside an in-flight mutation,
// joining all paragraph texts with a single line break equals the flat
// buffer the editing surface displays.
type Document struct {
	paragraphs []*Paragraph
}

// New returns a document holding one empty paragraph.
func New() *Document {
	d := &Document{}
	d.AppendParagraph(NewParagraph())
	return d
}

// Paragraphs returns the ordered paragraph list.
func (d *Document) Paragraphs() []*Paragraph {
	return d.paragraphs
}

// ParagraphCount returns the number of paragraphs.
func (d *Document) ParagraphCount() int {
	return len(d.paragraphs)
}

// AppendParagraph adds p at the end.
func (d *Document) AppendParagraph(p *Paragraph) {
	d.InsertParagraph(len(d.paragraphs), p)
}

// InsertParagraph adds p at position i.
func (d *Document) InsertParagraph(i int, p *Paragraph) {
	p.doc = d
	d.paragraphs = append(d.paragraphs, nil)
	copy(d.paragraphs[i+1:], d.paragraphs[i:])
	d.paragraphs[i] = p
}

// RemoveParagraphs drops paragraphs [i, j). A document never goes below
// one paragraph; removing everything leaves a fresh empty paragraph.
func (d *Document) RemoveParagraphs(i, j int) {
	if i < 0 || i > j || j > len(d.paragraphs) {
		panic(fmt.Sprintf("richtext: paragraph range [%d, %d) outside document of %d paragraphs", i, j, len(d.paragraphs)))
	}
	for _, p := range d.paragraphs[i:j] {
		p.doc = nil
	}
	d.paragraphs = append(d.paragraphs[:i], d.paragraphs[j:]...)
	if len(d.paragraphs) == 0 {
		d.AppendParagraph(NewParagraph())
	}
}

// Text returns the flat buffer projection: paragraph texts joined by one
// line break, none after the last.
func (d *Document) Text() string {
	var b strings.Builder
	for i, p := range d.paragraphs {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(p.Text())
	}
	return b.String()
}

// Length returns the byte length of the flat projection.
func (d *Document) Length() int {
	n := 0
	for i, p := range d.paragraphs {
		if i > 0 {
			n++ // inter-paragraph line break
		}
		n += p.Length()
	}
	return n
}

// Locate maps a global byte offset to (paragraph index, local offset).
// An offset sitting on an inter-paragraph line break resolves to the end
// of the preceding paragraph.
func (d *Document) Locate(index int) (int, int) {
	if index < 0 {
		panic(fmt.Sprintf("richtext: negative index %d", index))
	}
	off := 0
	for i, p := range d.paragraphs {
		l := p.Length()
		if index <= off+l {
			return i, index - off
		}
		off += l + 1
	}
	panic(fmt.Sprintf("richtext: index %d outside document of length %d", index, d.Length()))
}

// ParagraphRange returns the global byte range of paragraph i's text,
// excluding surrounding line breaks.
func (d *Document) ParagraphRange(i int) Range {
	off := 0
	for j, p := range d.paragraphs {
		l := p.Length()
		if j == i {
			return Range{Start: off, End: off + l}
		}
		off += l + 1
	}
	panic(fmt.Sprintf("richtext: paragraph %d outside document of %d paragraphs", i, len(d.paragraphs)))
}

// Run is one segment of the flat styled projection handed to renderers:
// a stretch of text under a single fully-merged character style.
type Run struct {
	Text  string
	Style style.CharacterStyle
	Rich  style.RichSpanStyle
}

// Runs flattens the document into the styled projection. Paragraph
// separators appear as plain "\n" runs.
func (d *Document) Runs() []Run {
	var out []Run
	for i, p := range d.paragraphs {
		if i > 0 {
			out = append(out, Run{Text: "\n"})
		}
		out = append(out, p.Runs()...)
	}
	return out
}

// Runs flattens a paragraph into styled segments, skipping empty own-text
// wrappers.
func (p *Paragraph) Runs() []Run {
	var out []Run
	p.walk(func(s *Span) bool {
		if s.Text != "" {
			out = append(out, Run{Text: s.Text, Style: s.FullStyle(), Rich: s.Rich})
		} else if s.Rich.Kind == style.SpanImage {
			out = append(out, Run{Style: s.FullStyle(), Rich: s.Rich})
		}
		return true
	})
	return out
}

// StyleAt returns the fully merged character style of the character at
// the given paragraph-local index.
func (p *Paragraph) StyleAt(index int) style.CharacterStyle {
	s := p.SpanAtChar(index)
	if s == nil {
		return style.CharacterStyle{}
	}
	return s.FullStyle()
}

// SplitAt divides the paragraph at a local index, truncating the receiver
// and returning a new paragraph carrying everything from index on. The
// tail keeps the paragraph style and list type so a list item split by a
// line break stays a list item.
func (p *Paragraph) SplitAt(index int) *Paragraph {
	length := p.measure()
	if index < 0 || index > length {
		panic(fmt.Sprintf("richtext: split index %d outside paragraph of length %d", index, length))
	}

	tail := NewParagraph()
	tail.Style = p.Style
	tail.Type = p.Type

	if index < length {
		runs := p.runsFrom(index)
		tail.children = nil
		for _, r := range runs {
			tail.AppendSpan(NewSpan(r.Text, r.Style, r.Rich))
		}
		tail.EnsureSpan()
		p.RemoveRange(Range{Start: index, End: length})
	}
	return tail
}

// runsFrom returns the styled segments covering [index, length). Assumes
// a fresh measure pass.
func (p *Paragraph) runsFrom(index int) []Run {
	var out []Run
	p.walk(func(s *Span) bool {
		if s.Text == "" || s.own.End <= index {
			return true
		}
		text := s.Text
		if s.own.Start < index {
			text = text[index-s.own.Start:]
		}
		out = append(out, Run{Text: text, Style: s.FullStyle(), Rich: s.Rich})
		return true
	})
	return out
}
