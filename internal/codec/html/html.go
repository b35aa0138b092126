// Package html converts between documents and an HTML dialect. Parsing
// drives the tokenizer from golang.org/x/net/html through a tag stack,
// building paragraphs and nested spans; rendering walks the tree back out
// to markup with inline styles expressed as CSS declarations.
package html

import (
	"errors"
	"io"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	xhtml "golang.org/x/net/html"

	"github.com/zjrosen/quill/internal/css"
	"github.com/zjrosen/quill/internal/log"
	"github.com/zjrosen/quill/internal/richtext"
	"github.com/zjrosen/quill/internal/style"
)

// blockTags force a new paragraph when opened.
var blockTags = map[string]bool{
	"p": true, "div": true, "li": true, "blockquote": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"tr": true, "td": true,
}

// skipTags discard all nested text.
var skipTags = map[string]bool{
	"head": true, "title": true, "meta": true, "link": true,
	"script": true, "style": true,
}

// passTags are structural containers with no effect of their own.
var passTags = map[string]bool{
	"html": true, "body": true, "main": true, "section": true,
	"article": true, "header": true, "footer": true, "nav": true,
	"table": true, "thead": true, "tbody": true,
}

// styleCache memoizes parsed style attributes. Documents repeat the same
// attribute strings heavily, so parses are shared across calls.
var styleCache = cache.New(5*time.Minute, 10*time.Minute)

func parseStyleAttr(attr string) style.CharacterStyle {
	if attr == "" {
		return style.CharacterStyle{}
	}
	if v, ok := styleCache.Get(attr); ok {
		return v.(style.CharacterStyle)
	}
	cs := css.ParseStyle(css.ParseDeclarations(attr))
	styleCache.Set(attr, cs, cache.DefaultExpiration)
	return cs
}

// semanticStyles maps inline tag names to the style they imply.
func semanticStyle(tag string) (style.CharacterStyle, bool) {
	switch tag {
	case "b", "strong":
		return style.Bold(), true
	case "i", "em":
		return style.Italic(), true
	case "u", "ins":
		return style.Underlined(), true
	case "s", "del", "strike":
		return style.Struck(), true
	case "sub":
		return style.CharacterStyle{Baseline: style.Ptr(style.ShiftSubscript)}, true
	case "sup":
		return style.CharacterStyle{Baseline: style.Ptr(style.ShiftSuperscript)}, true
	case "span", "font":
		return style.CharacterStyle{}, true
	default:
		return style.CharacterStyle{}, false
	}
}

// parser accumulates the document while tokens stream in.
type parser struct {
	doc   *richtext.Document
	para  *richtext.Paragraph
	open  []*richtext.Span // open inline spans, innermost last
	tags  []string         // open inline tag names, parallel to open
	fresh bool             // current paragraph has received no content

	skipDepth int
	lists     []listFrame
}

type listFrame struct {
	kind  richtext.ParagraphKind
	start int
}

// Parse builds a document from HTML. Unknown tags are treated as generic
// inline wrappers; tags in the skip set swallow their content.
func Parse(src string) (*richtext.Document, error) {
	p := &parser{doc: richtext.New(), fresh: true}
	p.para = p.doc.Paragraphs()[0]

	z := xhtml.NewTokenizer(strings.NewReader(src))
	for {
		tt := z.Next()
		switch tt {
		case xhtml.ErrorToken:
			if err := z.Err(); err != nil && !errors.Is(err, io.EOF) {
				log.ErrorErr(log.CatHTML, "tokenizer failed", err)
				return nil, err
			}
			p.finish()
			return p.doc, nil
		case xhtml.TextToken:
			p.text(string(z.Text()))
		case xhtml.StartTagToken:
			name, attrs := tokenAttrs(z)
			p.openTag(name, attrs)
		case xhtml.SelfClosingTagToken:
			name, attrs := tokenAttrs(z)
			p.openTag(name, attrs)
			p.closeTag(name)
		case xhtml.EndTagToken:
			name, _ := tokenAttrs(z)
			p.closeTag(name)
		}
	}
}

func tokenAttrs(z *xhtml.Tokenizer) (string, map[string]string) {
	name, hasAttr := z.TagName()
	var attrs map[string]string
	for hasAttr {
		var k, v []byte
		k, v, hasAttr = z.TagAttr()
		if attrs == nil {
			attrs = make(map[string]string)
		}
		attrs[string(k)] = string(v)
	}
	return string(name), attrs
}

func (p *parser) openTag(name string, attrs map[string]string) {
	if p.skipDepth > 0 {
		p.skipDepth++
		return
	}
	if skipTags[name] {
		p.skipDepth = 1
		return
	}
	if passTags[name] {
		return
	}

	switch {
	case name == "br":
		p.breakParagraph()
	case name == "img":
		p.appendSpan(richtext.NewSpan("", parseStyleAttr(attrs["style"]), style.Image(attrs["src"], attrs["alt"])))
		p.fresh = false
	case name == "ul":
		p.lists = append(p.lists, listFrame{kind: richtext.KindUnorderedList})
	case name == "ol":
		start := 0
		if s := attrs["start"]; s != "" {
			start = atoiDefault(s, 0)
		}
		p.lists = append(p.lists, listFrame{kind: richtext.KindOrderedList, start: start})
	case blockTags[name]:
		p.newParagraph()
		if name == "li" && len(p.lists) > 0 {
			frame := &p.lists[len(p.lists)-1]
			if frame.kind == richtext.KindOrderedList {
				p.para.Type = richtext.OrderedList(frame.start, len(p.lists))
				frame.start = 0 // only the first item carries the explicit start
			} else {
				p.para.Type = richtext.UnorderedList(len(p.lists))
			}
		}
		if attr := attrs["style"]; attr != "" {
			p.para.Style = css.ParseParagraphStyle(css.ParseDeclarations(attr))
		}
	case name == "a":
		cs := parseStyleAttr(attrs["style"])
		p.pushSpan(name, richtext.NewSpan("", cs, style.Link(attrs["href"])))
	case name == "code":
		cs := parseStyleAttr(attrs["style"])
		p.pushSpan(name, richtext.NewSpan("", cs, style.Code()))
	default:
		sem, _ := semanticStyle(name)
		cs := sem.Merge(parseStyleAttr(attrs["style"]))
		p.pushSpan(name, richtext.NewSpan("", cs, style.RichSpanStyle{}))
	}
}

func (p *parser) closeTag(name string) {
	if p.skipDepth > 0 {
		p.skipDepth--
		return
	}
	switch {
	case name == "ul" || name == "ol":
		if len(p.lists) > 0 {
			p.lists = p.lists[:len(p.lists)-1]
		}
	case blockTags[name] || name == "br" || name == "img":
		// Block tags close paragraphs implicitly; nothing to pop.
	default:
		// Pop up to and including the matching inline tag; tolerate
		// misnested markup by popping nothing when the tag is not open.
		for i := len(p.tags) - 1; i >= 0; i-- {
			if p.tags[i] == name {
				p.open = p.open[:i]
				p.tags = p.tags[:i]
				return
			}
		}
	}
}

// text appends a text event to the insertion point, collapsing runs of
// whitespace to a single space.
func (p *parser) text(content string) {
	if p.skipDepth > 0 {
		return
	}
	collapsed := collapseWhitespace(content)
	if strings.HasPrefix(collapsed, " ") && p.atBlockEdge() {
		collapsed = collapsed[1:]
	}
	if collapsed == "" {
		return
	}

	if len(p.open) == 0 {
		p.appendSpan(richtext.NewTextSpan(collapsed))
	} else {
		top := p.open[len(p.open)-1]
		if top.Text == "" && len(top.Children()) == 0 {
			top.Text = collapsed
		} else {
			top.AppendChild(richtext.NewTextSpan(collapsed))
		}
	}
	p.fresh = false
}

// atBlockEdge reports whether inserted text sits at the start of the
// paragraph or directly after whitespace.
func (p *parser) atBlockEdge() bool {
	t := p.para.Text()
	return t == "" || strings.HasSuffix(t, " ")
}

// appendSpan adds a top-level span, attaching under the innermost open
// inline span when one exists.
func (p *parser) appendSpan(s *richtext.Span) {
	if len(p.open) > 0 {
		p.open[len(p.open)-1].AppendChild(s)
		return
	}
	p.para.AppendSpan(s)
}

// pushSpan opens an inline wrapper: it becomes both a child of the
// current insertion point and the new insertion point.
func (p *parser) pushSpan(tag string, s *richtext.Span) {
	p.appendSpan(s)
	p.open = append(p.open, s)
	p.tags = append(p.tags, tag)
}

// newParagraph starts a block. The initial paragraph is reused while it
// is still untouched so a leading block tag does not leave an empty
// paragraph above it.
func (p *parser) newParagraph() {
	p.open = nil
	p.tags = nil
	if p.fresh {
		p.fresh = false
		return
	}
	p.para = richtext.NewParagraph()
	p.doc.AppendParagraph(p.para)
}

// breakParagraph inserts a hard boundary: the current paragraph is kept
// as-is and a fresh one follows.
func (p *parser) breakParagraph() {
	p.open = nil
	p.tags = nil
	p.para = richtext.NewParagraph()
	p.doc.AppendParagraph(p.para)
	p.fresh = true
}

// finish drops a trailing paragraph that never received content (left
// behind by a trailing break) and fixes up list numbering.
func (p *parser) finish() {
	paras := p.doc.Paragraphs()
	if p.fresh && len(paras) > 1 && paras[len(paras)-1].Length() == 0 {
		p.doc.RemoveParagraphs(len(paras)-1, len(paras))
	}
	p.doc.Renumber()
}

func collapseWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inWS := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f' {
			inWS = true
			continue
		}
		if inWS {
			b.WriteByte(' ')
		}
		inWS = false
		b.WriteRune(r)
	}
	if inWS {
		b.WriteByte(' ')
	}
	return b.String()
}

func atoiDefault(s string, def int) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return def
		}
		n = n*10 + int(r-'0')
	}
	if s == "" {
		return def
	}
	return n
}
