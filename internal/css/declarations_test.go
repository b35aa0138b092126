package css

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/quill/internal/style"
)

func TestFormatDeclarations(t *testing.T) {
	out := FormatDeclarations([]Declaration{
		{"font-weight", "bold"},
		{"color", "#ff0000"},
		{"font-size", "12px"},
	})
	assert.Equal(t, "font-weight: bold; color: #ff0000; font-size: 12px;", out)
}

func TestFormatDeclarations_Empty(t *testing.T) {
	assert.Equal(t, "", FormatDeclarations(nil))
}

func TestParseDeclarations(t *testing.T) {
	props := ParseDeclarations("font-weight: bold; color:#ff0000 ; font-size: 12px;")
	assert.Equal(t, map[string]string{
		"font-weight": "bold",
		"color":       "#ff0000",
		"font-size":   "12px",
	}, props)
}

func TestParseDeclarations_MalformedEntriesDropped(t *testing.T) {
	props := ParseDeclarations("color: red; garbage; : nope; empty:; font-style: italic")
	assert.Equal(t, map[string]string{
		"color":      "red",
		"font-style": "italic",
	}, props)
}

func TestParseStyle(t *testing.T) {
	s := ParseStyle(map[string]string{
		"color":           "#ff0000",
		"font-weight":     "bold",
		"font-size":       "12pt",
		"font-style":      "italic",
		"text-decoration": "underline",
		"baseline-shift":  "super",
		"text-shadow":     "1px 1px 2px black",
		"mystery":         "ignored",
	})

	require.NotNil(t, s.Color)
	assert.Equal(t, style.RGB(255, 0, 0), *s.Color)
	require.NotNil(t, s.FontWeight)
	assert.Equal(t, style.WeightBold, *s.FontWeight)
	require.NotNil(t, s.FontSize)
	assert.Equal(t, 16.0, *s.FontSize)
	require.NotNil(t, s.Italic)
	assert.True(t, *s.Italic)
	require.NotNil(t, s.Decoration)
	assert.Equal(t, style.DecorationUnderline, *s.Decoration)
	require.NotNil(t, s.Baseline)
	assert.Equal(t, style.ShiftSuperscript, *s.Baseline)
	require.NotNil(t, s.Shadow)
	assert.Equal(t, style.Shadow{OffsetX: 1, OffsetY: 1, Blur: 2, Color: style.RGB(0, 0, 0)}, *s.Shadow)
}

func TestStyleDeclarations_RoundTrip(t *testing.T) {
	orig := style.CharacterStyle{
		Color:      style.Ptr(style.RGB(255, 0, 0)),
		FontSize:   style.Ptr(12.0),
		FontWeight: style.Ptr(style.WeightBold),
		Italic:     style.Ptr(true),
		Decoration: style.Ptr(style.DecorationUnderline | style.DecorationLineThrough),
		Baseline:   style.Ptr(style.ShiftSubscript),
	}

	parsed := ParseStyle(ParseDeclarations(FormatDeclarations(StyleDeclarations(orig))))
	assert.True(t, parsed.SpecifiedFieldsEqual(orig, true))
	assert.True(t, orig.SpecifiedFieldsEqual(parsed, true))
}

func TestParagraphDeclarations_RoundTrip(t *testing.T) {
	orig := style.ParagraphStyle{
		Align:     style.Ptr(style.AlignCenter),
		Direction: style.Ptr(style.DirectionRTL),
	}

	parsed := ParseParagraphStyle(ParseDeclarations(FormatDeclarations(ParagraphDeclarations(orig))))
	assert.True(t, parsed.SpecifiedFieldsEqual(orig, true))
}
