package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/quill/internal/richtext"
	"github.com/zjrosen/quill/internal/style"
)

func TestParse_EmphasisMarkers(t *testing.T) {
	doc, err := Parse("plain **bold** *italic* ~~struck~~ `code`")
	require.NoError(t, err)

	p := doc.Paragraphs()[0]
	require.Equal(t, "plain bold italic struck code", p.Text())

	assert.Nil(t, p.StyleAt(0).FontWeight)

	bold := p.StyleAt(6)
	require.NotNil(t, bold.FontWeight)
	assert.Equal(t, style.WeightBold, *bold.FontWeight)

	italic := p.StyleAt(11)
	require.NotNil(t, italic.Italic)
	assert.True(t, *italic.Italic)

	struck := p.StyleAt(18)
	require.NotNil(t, struck.Decoration)
	assert.True(t, struck.Decoration.Has(style.DecorationLineThrough))

	code := p.SpanAtChar(25)
	require.NotNil(t, code)
	assert.Equal(t, style.SpanCode, code.Rich.Kind)
}

func TestParse_UnderlinePassthrough(t *testing.T) {
	doc, err := Parse("a <u>under</u> b")
	require.NoError(t, err)

	p := doc.Paragraphs()[0]
	require.Equal(t, "a under b", p.Text())

	under := p.StyleAt(3)
	require.NotNil(t, under.Decoration)
	assert.True(t, under.Decoration.Has(style.DecorationUnderline))
	assert.Nil(t, p.StyleAt(0).Decoration)
}

func TestParse_LinksAndImages(t *testing.T) {
	doc, err := Parse("see [docs](https://example.com) and ![alt text](pic.png)")
	require.NoError(t, err)

	p := doc.Paragraphs()[0]
	var link, img *richtext.Span
	p.SpansInRange(richtext.Range{Start: 0, End: p.Length()})
	for _, s := range flatten(p.Spans()) {
		switch s.Rich.Kind {
		case style.SpanLink:
			link = s
		case style.SpanImage:
			img = s
		}
	}
	require.NotNil(t, link)
	assert.Equal(t, "https://example.com", link.Rich.URL)
	require.NotNil(t, img)
	assert.Equal(t, "pic.png", img.Rich.Source)
	assert.Equal(t, "alt text", img.Rich.Alt)
}

func TestParse_NestedLists(t *testing.T) {
	doc, err := Parse("1. one\n2. two\n   - sub\n3. three")
	require.NoError(t, err)

	var listParas []*richtext.Paragraph
	for _, p := range doc.Paragraphs() {
		if p.Type.IsList() {
			listParas = append(listParas, p)
		}
	}
	require.Len(t, listParas, 4)
	assert.Equal(t, richtext.OrderedList(1, 1), listParas[0].Type)
	assert.Equal(t, richtext.OrderedList(2, 1), listParas[1].Type)
	assert.Equal(t, richtext.UnorderedList(2), listParas[2].Type)
	assert.Equal(t, richtext.OrderedList(3, 1), listParas[3].Type)
}

func TestParse_OrderedListStart(t *testing.T) {
	doc, err := Parse("5. five\n6. six")
	require.NoError(t, err)

	paras := doc.Paragraphs()
	assert.Equal(t, 5, paras[0].Type.Number)
	assert.Equal(t, 6, paras[1].Type.Number)
}

func TestRender_EmphasisMarkers(t *testing.T) {
	doc := richtext.New()
	p := doc.Paragraphs()[0]
	p.AppendSpan(richtext.NewTextSpan("plain "))
	p.AppendSpan(richtext.NewSpan("bold", style.Bold(), style.RichSpanStyle{}))
	p.AppendSpan(richtext.NewTextSpan(" "))
	p.AppendSpan(richtext.NewSpan("both", style.Bold().Merge(style.Italic()), style.RichSpanStyle{}))

	assert.Equal(t, "plain **bold** ***both***", Render(doc))
}

func TestRender_UnderlineUsesRawHTML(t *testing.T) {
	doc := richtext.New()
	doc.Paragraphs()[0].AppendSpan(richtext.NewSpan("under", style.Underlined(), style.RichSpanStyle{}))

	assert.Equal(t, "<u>under</u>", Render(doc))
}

func TestRender_ListsAndParagraphs(t *testing.T) {
	doc := richtext.New()
	first := doc.Paragraphs()[0]
	first.AppendSpan(richtext.NewTextSpan("intro"))

	for i, txt := range []string{"one", "two"} {
		p := richtext.NewParagraph()
		p.AppendSpan(richtext.NewTextSpan(txt))
		p.Type = richtext.OrderedList(i+1, 1)
		doc.AppendParagraph(p)
	}
	sub := richtext.NewParagraph()
	sub.AppendSpan(richtext.NewTextSpan("sub"))
	sub.Type = richtext.UnorderedList(2)
	doc.AppendParagraph(sub)

	assert.Equal(t, "intro\n\n1. one\n2. two\n  - sub", Render(doc))
}

func TestRender_EscapesMarkerCharacters(t *testing.T) {
	doc := richtext.New()
	doc.Paragraphs()[0].AppendSpan(richtext.NewTextSpan("2 * 3 [x]"))

	assert.Equal(t, `2 \* 3 \[x\]`, Render(doc))
}

func TestRoundTrip_StyledText(t *testing.T) {
	const src = "plain **bold** and [docs](https://example.com)"
	doc, err := Parse(src)
	require.NoError(t, err)
	assert.Equal(t, src, Render(doc))
}

func TestRoundTrip_CodeSpanBackticks(t *testing.T) {
	cases := []struct {
		name string
		src  string
		text string
	}{
		{"interior backtick", "``a`b``", "a`b"},
		{"leading backtick", "``` `x ```", "`x"},
		{"double run", "``` a``b ```", "a``b"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := Parse(tc.src)
			require.NoError(t, err)
			require.Equal(t, tc.text, doc.Paragraphs()[0].Text())

			again, err := Parse(Render(doc))
			require.NoError(t, err)
			assert.Equal(t, tc.text, again.Paragraphs()[0].Text())

			code := again.Paragraphs()[0].SpanAtChar(0)
			require.NotNil(t, code)
			assert.Equal(t, style.SpanCode, code.Rich.Kind)
		})
	}
}

func flatten(spans []*richtext.Span) []*richtext.Span {
	var out []*richtext.Span
	for _, s := range spans {
		out = append(out, s)
		out = append(out, flatten(s.Children())...)
	}
	return out
}
