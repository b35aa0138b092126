package richtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/quill/internal/style"
)

// buildMixed returns a paragraph reading "plain bold nested tail":
// a plain span, then a bold span whose children carry an italic override,
// then a trailing plain span.
func buildMixed() *Paragraph {
	p := &Paragraph{}
	p.AppendSpan(NewTextSpan("plain "))

	bold := NewSpan("bold ", style.Bold(), style.RichSpanStyle{})
	bold.AppendChild(NewSpan("nested ", style.Italic(), style.RichSpanStyle{}))
	p.AppendSpan(bold)

	p.AppendSpan(NewTextSpan("tail"))
	return p
}

func TestParagraph_TextAndLength(t *testing.T) {
	p := buildMixed()
	assert.Equal(t, "plain bold nested tail", p.Text())
	assert.Equal(t, len("plain bold nested tail"), p.Length())
}

func TestNewParagraph_HasPlaceholder(t *testing.T) {
	p := NewParagraph()
	require.Len(t, p.Spans(), 1)
	assert.Equal(t, "", p.Spans()[0].Text)
	assert.Equal(t, "", p.Text())
}

func TestSpan_FullStyle(t *testing.T) {
	p := buildMixed()
	nested := p.Spans()[1].Children()[0]

	full := nested.FullStyle()
	require.NotNil(t, full.FontWeight)
	assert.Equal(t, style.WeightBold, *full.FontWeight)
	require.NotNil(t, full.Italic)
	assert.True(t, *full.Italic)
}

func TestSpanAtIndex(t *testing.T) {
	p := buildMixed()
	// "plain " [0,6)  "bold " [6,11)  "nested " [11,18)  "tail" [18,22)

	tests := []struct {
		name       string
		index      int
		wantText   string
		wantOffset int
	}{
		{"inside first", 2, "plain ", 2},
		{"boundary extends previous run", 6, "plain ", 6},
		{"inside bold", 8, "bold ", 2},
		{"inside nested", 12, "nested ", 1},
		{"boundary between nested and tail", 18, "nested ", 7},
		{"paragraph end", 22, "tail", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, off := p.SpanAtIndex(tt.index)
			require.NotNil(t, s)
			assert.Equal(t, tt.wantText, s.Text)
			assert.Equal(t, tt.wantOffset, off)
		})
	}
}

func TestSpanAtIndex_LinkRefusesTrailingEdge(t *testing.T) {
	p := &Paragraph{}
	p.AppendSpan(NewSpan("click", style.CharacterStyle{}, style.Link("https://example.com")))
	p.AppendSpan(NewTextSpan(" after"))

	s, off := p.SpanAtIndex(5)
	require.NotNil(t, s)
	assert.Equal(t, " after", s.Text)
	assert.Equal(t, 0, off)
}

func TestSpanAtIndex_LinkRefusesLeadingEdge(t *testing.T) {
	p := &Paragraph{}
	p.AppendSpan(NewTextSpan("before "))
	p.AppendSpan(NewSpan("click", style.CharacterStyle{}, style.Link("https://example.com")))

	s, _ := p.SpanAtIndex(7)
	require.NotNil(t, s)
	assert.Equal(t, "before ", s.Text)
}

func TestSpanAtIndex_LinkOnlyParagraph(t *testing.T) {
	p := &Paragraph{}
	p.AppendSpan(NewSpan("click", style.CharacterStyle{}, style.Link("https://example.com")))

	s, _ := p.SpanAtIndex(5)
	assert.Nil(t, s)
}

func TestSpanAtIndex_PlaceholderEmptyParagraph(t *testing.T) {
	p := NewParagraph()
	s, off := p.SpanAtIndex(0)
	require.NotNil(t, s)
	assert.Equal(t, 0, off)
}

func TestSpanAtIndex_OutOfRangePanics(t *testing.T) {
	p := buildMixed()
	assert.Panics(t, func() { p.SpanAtIndex(-1) })
	assert.Panics(t, func() { p.SpanAtIndex(1000) })
}

func TestSpansInRange(t *testing.T) {
	p := buildMixed()

	spans := p.SpansInRange(Range{Start: 8, End: 13})
	texts := make([]string, 0, len(spans))
	for _, s := range spans {
		texts = append(texts, s.Text)
	}
	assert.Equal(t, []string{"bold ", "nested "}, texts)
}

func TestSpansInRange_EmptyQuery(t *testing.T) {
	p := buildMixed()
	assert.Empty(t, p.SpansInRange(Range{Start: 3, End: 3}))
}

func TestFirstNonEmptyChild(t *testing.T) {
	p := &Paragraph{}
	wrapper := NewSpan("", style.Bold(), style.RichSpanStyle{})
	wrapper.AppendChild(NewTextSpan("inner"))
	p.AppendSpan(NewTextSpan(""))
	p.AppendSpan(wrapper)

	s := p.FirstNonEmptyChild()
	require.NotNil(t, s)
	assert.Equal(t, "inner", s.Text)
}

func TestRange_Semantics(t *testing.T) {
	r := Range{Start: 2, End: 5}
	assert.True(t, r.Overlaps(Range{Start: 4, End: 9}))
	assert.False(t, r.Overlaps(Range{Start: 5, End: 9}))
	assert.True(t, r.Contains(2))
	assert.False(t, r.Contains(5))
	assert.True(t, r.Covers(Range{Start: 3, End: 5}))
	assert.Panics(t, func() { NewRange(5, 2) })
}
