// Package markdown converts between documents and Markdown. Parsing
// walks the goldmark AST; rendering emits emphasis markers, with a raw
// HTML passthrough for underline, which Markdown cannot express.
package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/zjrosen/quill/internal/richtext"
	"github.com/zjrosen/quill/internal/style"
)

var parser = goldmark.New(goldmark.WithExtensions(extension.Strikethrough))

// Parse builds a document from Markdown.
func Parse(src string) (*richtext.Document, error) {
	source := []byte(src)
	root := parser.Parser().Parse(text.NewReader(source))

	b := &builder{doc: richtext.New(), source: source}
	b.para = b.doc.Paragraphs()[0]
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		b.block(n, 0)
	}
	b.doc.Renumber()
	return b.doc, nil
}

type builder struct {
	doc    *richtext.Document
	para   *richtext.Paragraph
	source []byte
	used   bool

	// underline is toggled by raw <u>/</u> passthrough while walking
	// inline content.
	underline bool
}

// nextParagraph starts a block, reusing the initial untouched paragraph.
func (b *builder) nextParagraph() *richtext.Paragraph {
	if !b.used {
		b.used = true
		return b.para
	}
	p := richtext.NewParagraph()
	b.doc.AppendParagraph(p)
	b.para = p
	return p
}

func (b *builder) block(n ast.Node, listLevel int) {
	switch v := n.(type) {
	case *ast.Paragraph:
		p := b.nextParagraph()
		b.inlines(p, nil, n)
	case *ast.TextBlock:
		p := b.nextParagraph()
		b.inlines(p, nil, n)
	case *ast.Heading:
		p := b.nextParagraph()
		wrap := richtext.NewSpan("", style.Bold(), style.RichSpanStyle{})
		p.AppendSpan(wrap)
		b.inlines(p, wrap, n)
	case *ast.List:
		b.list(v, listLevel+1)
	case *ast.FencedCodeBlock:
		p := b.nextParagraph()
		p.AppendSpan(richtext.NewSpan(b.codeLines(n), style.CharacterStyle{}, style.Code()))
	case *ast.CodeBlock:
		p := b.nextParagraph()
		p.AppendSpan(richtext.NewSpan(b.codeLines(n), style.CharacterStyle{}, style.Code()))
	case *ast.Blockquote:
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			b.block(c, listLevel)
		}
	case *ast.ThematicBreak:
		b.nextParagraph()
	case *ast.HTMLBlock:
		// Raw blocks carry no document content we can represent.
	default:
		p := b.nextParagraph()
		b.inlines(p, nil, n)
	}
}

func (b *builder) list(l *ast.List, level int) {
	number := 1
	if l.IsOrdered() {
		number = l.Start
	}
	for item := l.FirstChild(); item != nil; item = item.NextSibling() {
		for c := item.FirstChild(); c != nil; c = c.NextSibling() {
			if nested, ok := c.(*ast.List); ok {
				b.list(nested, level+1)
				continue
			}
			b.block(c, level)
			if l.IsOrdered() {
				b.para.Type = richtext.OrderedList(number, level)
				number++
			} else {
				b.para.Type = richtext.UnorderedList(level)
			}
		}
	}
}

func (b *builder) codeLines(n ast.Node) string {
	var sb strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(b.source))
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// inlines walks n's inline children, appending spans to parent (or the
// paragraph when parent is nil).
func (b *builder) inlines(p *richtext.Paragraph, parent *richtext.Span, n ast.Node) {
	attach := func(s *richtext.Span) {
		if parent != nil {
			parent.AppendChild(s)
		} else {
			p.AppendSpan(s)
		}
	}

	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch v := c.(type) {
		case *ast.Text:
			t := string(v.Segment.Value(b.source))
			if v.SoftLineBreak() || v.HardLineBreak() {
				t += " "
			}
			cs := style.CharacterStyle{}
			if b.underline {
				cs = style.Underlined()
			}
			attach(richtext.NewSpan(t, cs, style.RichSpanStyle{}))
		case *ast.String:
			attach(richtext.NewTextSpan(string(v.Value)))
		case *ast.Emphasis:
			cs := style.Italic()
			if v.Level >= 2 {
				cs = style.Bold()
			}
			wrap := richtext.NewSpan("", cs, style.RichSpanStyle{})
			attach(wrap)
			b.inlines(p, wrap, c)
		case *extast.Strikethrough:
			wrap := richtext.NewSpan("", style.Struck(), style.RichSpanStyle{})
			attach(wrap)
			b.inlines(p, wrap, c)
		case *ast.CodeSpan:
			attach(richtext.NewSpan(b.inlineText(c), style.CharacterStyle{}, style.Code()))
		case *ast.Link:
			wrap := richtext.NewSpan("", style.CharacterStyle{}, style.Link(string(v.Destination)))
			attach(wrap)
			b.inlines(p, wrap, c)
		case *ast.AutoLink:
			url := string(v.URL(b.source))
			attach(richtext.NewSpan(url, style.CharacterStyle{}, style.Link(url)))
		case *ast.Image:
			attach(richtext.NewSpan("", style.CharacterStyle{}, style.Image(string(v.Destination), b.inlineText(c))))
		case *ast.RawHTML:
			switch strings.ToLower(b.rawText(v)) {
			case "<u>":
				b.underline = true
			case "</u>":
				b.underline = false
			}
		default:
			b.inlines(p, parent, c)
		}
	}
}

func (b *builder) inlineText(n ast.Node) string {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			sb.Write(t.Segment.Value(b.source))
		}
	}
	return sb.String()
}

func (b *builder) rawText(n *ast.RawHTML) string {
	var sb strings.Builder
	for i := 0; i < n.Segments.Len(); i++ {
		seg := n.Segments.At(i)
		sb.Write(seg.Value(b.source))
	}
	return sb.String()
}
