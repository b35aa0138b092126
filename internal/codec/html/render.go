package html

import (
	"strconv"
	"strings"

	xhtml "golang.org/x/net/html"

	"github.com/zjrosen/quill/internal/css"
	"github.com/zjrosen/quill/internal/richtext"
	"github.com/zjrosen/quill/internal/style"
)

// Render emits the document as HTML. Consecutive list paragraphs are
// grouped under ul/ol wrappers nested by level, empty default paragraphs
// become explicit line breaks, and span styles come out as inline CSS.
func Render(doc *richtext.Document) string {
	var b strings.Builder
	var groups []richtext.ParagraphKind // open list wrappers, outermost first

	closeTo := func(depth int) {
		for len(groups) > depth {
			b.WriteString("</" + groupTag(groups[len(groups)-1]) + ">")
			groups = groups[:len(groups)-1]
		}
	}

	for _, p := range doc.Paragraphs() {
		if !p.Type.IsList() {
			closeTo(0)
			renderBlock(&b, p)
			continue
		}

		level := p.Type.Level
		if level < 1 {
			level = 1
		}
		// Close wrappers that are too deep or of the wrong kind.
		for len(groups) > level || (len(groups) == level && groups[len(groups)-1] != p.Type.Kind) {
			closeTo(len(groups) - 1)
		}
		for len(groups) < level {
			b.WriteString("<" + groupTag(p.Type.Kind))
			if p.Type.Kind == richtext.KindOrderedList && len(groups) == level-1 && p.Type.Number > 1 {
				b.WriteString(` start="` + strconv.Itoa(p.Type.Number) + `"`)
			}
			b.WriteString(">")
			groups = append(groups, p.Type.Kind)
		}

		b.WriteString("<li")
		writeParagraphStyle(&b, p.Style)
		b.WriteString(">")
		renderSpans(&b, p.Spans())
		b.WriteString("</li>")
	}
	closeTo(0)
	return b.String()
}

func groupTag(k richtext.ParagraphKind) string {
	if k == richtext.KindOrderedList {
		return "ol"
	}
	return "ul"
}

func renderBlock(b *strings.Builder, p *richtext.Paragraph) {
	if p.Length() == 0 && p.Style.IsZero() {
		b.WriteString("<br>")
		return
	}
	b.WriteString("<p")
	writeParagraphStyle(b, p.Style)
	b.WriteString(">")
	renderSpans(b, p.Spans())
	b.WriteString("</p>")
}

func writeParagraphStyle(b *strings.Builder, ps style.ParagraphStyle) {
	if ps.IsZero() {
		return
	}
	b.WriteString(` style="` + css.FormatDeclarations(css.ParagraphDeclarations(ps)) + `"`)
}

func renderSpans(b *strings.Builder, spans []*richtext.Span) {
	for _, s := range spans {
		renderSpan(b, s)
	}
}

func renderSpan(b *strings.Builder, s *richtext.Span) {
	attr := ""
	if !s.Style.IsZero() {
		attr = css.FormatDeclarations(css.StyleDeclarations(s.Style))
	}

	switch s.Rich.Kind {
	case style.SpanImage:
		b.WriteString(`<img src="` + escapeAttr(s.Rich.Source) + `"`)
		if s.Rich.Alt != "" {
			b.WriteString(` alt="` + escapeAttr(s.Rich.Alt) + `"`)
		}
		if attr != "" {
			b.WriteString(` style="` + escapeAttr(attr) + `"`)
		}
		b.WriteString(">")
		return
	case style.SpanLink:
		b.WriteString(`<a href="` + escapeAttr(s.Rich.URL) + `"`)
		writeStyleAttr(b, attr)
		b.WriteString(">")
		writeInner(b, s)
		b.WriteString("</a>")
	case style.SpanCode:
		b.WriteString("<code")
		writeStyleAttr(b, attr)
		b.WriteString(">")
		writeInner(b, s)
		b.WriteString("</code>")
	default:
		if attr == "" {
			// Generic wrapper with nothing to say: emit content bare.
			writeInner(b, s)
			return
		}
		b.WriteString(`<span style="` + escapeAttr(attr) + `">`)
		writeInner(b, s)
		b.WriteString("</span>")
	}
}

func writeStyleAttr(b *strings.Builder, attr string) {
	if attr != "" {
		b.WriteString(` style="` + escapeAttr(attr) + `"`)
	}
}

func writeInner(b *strings.Builder, s *richtext.Span) {
	if s.Text != "" {
		b.WriteString(xhtml.EscapeString(s.Text))
	}
	renderSpans(b, s.Children())
}

func escapeAttr(s string) string {
	return xhtml.EscapeString(s)
}
