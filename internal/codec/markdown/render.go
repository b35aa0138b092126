package markdown

import (
	"strconv"
	"strings"

	"github.com/zjrosen/quill/internal/richtext"
	"github.com/zjrosen/quill/internal/style"
)

// Render emits the document as Markdown. Styles Markdown can express use
// emphasis markers; underline falls back to a raw <u> passthrough. List
// items carry their level as indentation.
func Render(doc *richtext.Document) string {
	var blocks []string
	var listRun []string

	flushList := func() {
		if len(listRun) > 0 {
			blocks = append(blocks, strings.Join(listRun, "\n"))
			listRun = nil
		}
	}

	for _, p := range doc.Paragraphs() {
		var b strings.Builder
		renderSpans(&b, p.Spans())
		line := b.String()

		if p.Type.IsList() {
			level := p.Type.Level
			if level < 1 {
				level = 1
			}
			indent := strings.Repeat("  ", level-1)
			if p.Type.Kind == richtext.KindOrderedList {
				listRun = append(listRun, indent+strconv.Itoa(p.Type.Number)+". "+line)
			} else {
				listRun = append(listRun, indent+"- "+line)
			}
			continue
		}
		flushList()
		blocks = append(blocks, line)
	}
	flushList()
	return strings.Join(blocks, "\n\n")
}

func renderSpans(b *strings.Builder, spans []*richtext.Span) {
	for _, s := range spans {
		renderSpan(b, s)
	}
}

func renderSpan(b *strings.Builder, s *richtext.Span) {
	switch s.Rich.Kind {
	case style.SpanImage:
		b.WriteString("![" + s.Rich.Alt + "](" + s.Rich.Source + ")")
		return
	case style.SpanLink:
		b.WriteString("[")
		writeStyled(b, s)
		b.WriteString("](" + s.Rich.URL + ")")
		return
	case style.SpanCode:
		writeCodeSpan(b, s.FullText())
		return
	}
	writeStyled(b, s)
}

// writeStyled wraps the span's content in the markers its own style
// calls for.
func writeStyled(b *strings.Builder, s *richtext.Span) {
	pre, post := markers(s.Style)
	b.WriteString(pre)
	writeInner(b, s)
	b.WriteString(post)
}

func markers(cs style.CharacterStyle) (string, string) {
	var pre, post string
	if cs.FontWeight != nil && *cs.FontWeight >= style.WeightBold {
		pre += "**"
		post = "**" + post
	}
	if cs.Italic != nil && *cs.Italic {
		pre += "*"
		post = "*" + post
	}
	if cs.Decoration != nil {
		if cs.Decoration.Has(style.DecorationLineThrough) {
			pre += "~~"
			post = "~~" + post
		}
		if cs.Decoration.Has(style.DecorationUnderline) {
			pre += "<u>"
			post = "</u>" + post
		}
	}
	return pre, post
}

// writeCodeSpan emits content verbatim inside a backtick fence one longer
// than the longest backtick run in the content. Backslash escapes are
// inert inside code spans, so fencing is the only way to protect
// backticks. Content touching a backtick at either end gets a space pad,
// which the parser strips again.
func writeCodeSpan(b *strings.Builder, content string) {
	longest, run := 0, 0
	for _, r := range content {
		if r == '`' {
			run++
			longest = max(longest, run)
		} else {
			run = 0
		}
	}
	fence := strings.Repeat("`", longest+1)
	pad := ""
	if strings.HasPrefix(content, "`") || strings.HasSuffix(content, "`") {
		pad = " "
	}
	b.WriteString(fence + pad + content + pad + fence)
}

func writeInner(b *strings.Builder, s *richtext.Span) {
	if s.Text != "" {
		b.WriteString(escape(s.Text))
	}
	renderSpans(b, s.Children())
}

// escape protects characters Markdown would read as markers.
func escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '*', '_', '`', '[', ']', '\\', '~':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
