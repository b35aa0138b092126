package render

import (
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/quill/internal/richtext"
	"github.com/zjrosen/quill/internal/style"
)

func ascii(opts ...Option) *Renderer {
	return New(append([]Option{WithProfile(termenv.Ascii)}, opts...)...)
}

func TestDocument_PlainParagraphs(t *testing.T) {
	doc := richtext.New()
	doc.Paragraphs()[0].AppendSpan(richtext.NewTextSpan("hello"))
	p := richtext.NewParagraph()
	p.AppendSpan(richtext.NewTextSpan("world"))
	doc.AppendParagraph(p)

	assert.Equal(t, "hello\nworld", ascii().Document(doc))
}

func TestDocument_ListMarkers(t *testing.T) {
	doc := richtext.New()
	first := doc.Paragraphs()[0]
	first.AppendSpan(richtext.NewTextSpan("one"))
	first.Type = richtext.OrderedList(1, 1)

	sub := richtext.NewParagraph()
	sub.AppendSpan(richtext.NewTextSpan("sub"))
	sub.Type = richtext.UnorderedList(2)
	doc.AppendParagraph(sub)
	doc.Renumber()

	out := ascii().Document(doc)
	lines := splitLines(out)
	require.Len(t, lines, 2)
	assert.Equal(t, "1. one", lines[0])
	assert.Equal(t, "  ◦  sub", lines[1])
}

func TestDocument_CustomBullets(t *testing.T) {
	doc := richtext.New()
	first := doc.Paragraphs()[0]
	first.AppendSpan(richtext.NewTextSpan("item"))
	first.Type = richtext.UnorderedList(1)

	out := ascii(WithBullets([]string{"-"})).Document(doc)
	assert.Equal(t, "- item", out)
}

func TestDocument_ImageRunUsesAltText(t *testing.T) {
	doc := richtext.New()
	doc.Paragraphs()[0].AppendSpan(richtext.NewSpan("", style.CharacterStyle{}, style.Image("pic.png", "a pic")))

	assert.Equal(t, "[a pic]", ascii().Document(doc))
}

func TestDocument_AsciiProfileDropsStyling(t *testing.T) {
	doc := richtext.New()
	doc.Paragraphs()[0].AppendSpan(richtext.NewSpan("bold", style.Bold(), style.RichSpanStyle{}))

	// Ascii emits no escape sequences at all.
	assert.Equal(t, "bold", ascii().Document(doc))
}

func splitLines(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	return append(out, s[start:])
}
