package css

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/quill/internal/style"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *style.Color
	}{
		{"six digit hex", "#ff0000", style.Ptr(style.RGB(255, 0, 0))},
		{"hex without hash", "00ff00", style.Ptr(style.RGB(0, 255, 0))},
		{"three digit hex", "#abc", style.Ptr(style.RGB(0xAA, 0xBB, 0xCC))},
		{"rgb", "rgb(1, 2, 3)", style.Ptr(style.RGB(1, 2, 3))},
		{"rgba half alpha", "rgba(255, 0, 0, 0.5)", style.Ptr(style.RGBA(255, 0, 0, 127))},
		{"named", "rebeccapurple", style.Ptr(style.RGB(0x66, 0x33, 0x99))},
		{"named case insensitive", "Red", style.Ptr(style.RGB(255, 0, 0))},
		{"out of range channel", "rgb(300, 0, 0)", nil},
		{"garbage", "not-a-color", nil},
		{"empty", "", nil},
		{"rgba channel count", "rgba(1, 2, 3)", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseColor(tt.input)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestFormatColor(t *testing.T) {
	assert.Equal(t, "rgba(255, 0, 0, 1)", FormatColor(style.RGB(255, 0, 0)))
	assert.Equal(t, "rgba(0, 0, 0, 0.5)", FormatColor(style.RGBA(0, 0, 0, 127)))
	assert.Equal(t, "rgba(1, 2, 3, 0)", FormatColor(style.RGBA(1, 2, 3, 0)))
}

func TestParseLength(t *testing.T) {
	tests := []struct {
		input string
		want  *float64
	}{
		{"12px", style.Ptr(12.0)},
		{"12pt", style.Ptr(16.0)}, // 12 * 1.333 rounded
		{"1em", style.Ptr(16.0)},
		{"1.5rem", style.Ptr(24.0)},
		{"100%", style.Ptr(16.0)},
		{"0", style.Ptr(0.0)},
		{"12", nil}, // bare numbers other than 0 are rejected
		{"px", nil},
		{"abcpx", nil},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseLength(tt.input)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 1e-9)
		})
	}
}

func TestFormatLength(t *testing.T) {
	assert.Equal(t, "12px", FormatLength(12))
	assert.Equal(t, "12.5px", FormatLength(12.5))
}

func TestParseFontWeight(t *testing.T) {
	tests := []struct {
		input string
		want  *style.FontWeight
	}{
		{"bold", style.Ptr(style.WeightBold)},
		{"bolder", style.Ptr(style.WeightBlack)},
		{"lighter", style.Ptr(style.WeightThin)},
		{"normal", style.Ptr(style.WeightNormal)},
		{"semibold", style.Ptr(style.WeightSemiBold)},
		{"700", style.Ptr(style.WeightBold)},
		{"350", style.Ptr(style.FontWeight(350))},
		{"1000", nil},
		{"42", nil},
		{"wiggly", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseFontWeight(tt.input)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestFormatFontWeight(t *testing.T) {
	assert.Equal(t, "bold", FormatFontWeight(style.WeightBold))
	assert.Equal(t, "thin", FormatFontWeight(style.WeightThin))
	assert.Equal(t, "black", FormatFontWeight(style.WeightBlack))
	// Off-bucket weights print the raw number.
	assert.Equal(t, "450", FormatFontWeight(style.FontWeight(450)))
}

func TestParseDecoration(t *testing.T) {
	both := style.DecorationUnderline | style.DecorationLineThrough

	tests := []struct {
		input string
		want  *style.Decoration
	}{
		{"none", style.Ptr(style.DecorationNone)},
		{"underline", style.Ptr(style.DecorationUnderline)},
		{"line-through", style.Ptr(style.DecorationLineThrough)},
		{"underline line-through", &both},
		{"line-through underline", &both},
		{"overline", nil},
		{"underline overline", nil},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseDecoration(tt.input)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestFormatDecoration(t *testing.T) {
	assert.Equal(t, "none", FormatDecoration(style.DecorationNone))
	assert.Equal(t, "underline", FormatDecoration(style.DecorationUnderline))
	assert.Equal(t, "line-through", FormatDecoration(style.DecorationLineThrough))
	assert.Equal(t, "underline line-through",
		FormatDecoration(style.DecorationUnderline|style.DecorationLineThrough))
}

func TestBaselineShift(t *testing.T) {
	require.NotNil(t, ParseBaselineShift("sub"))
	assert.Equal(t, style.ShiftSubscript, *ParseBaselineShift("sub"))
	assert.Equal(t, style.ShiftSuperscript, *ParseBaselineShift("super"))
	assert.Equal(t, style.ShiftNone, *ParseBaselineShift("baseline"))
	require.NotNil(t, ParseBaselineShift("25%"))
	assert.InDelta(t, 0.25, float64(*ParseBaselineShift("25%")), 1e-9)
	assert.Nil(t, ParseBaselineShift("top"))

	assert.Equal(t, "sub", FormatBaselineShift(style.ShiftSubscript))
	assert.Equal(t, "super", FormatBaselineShift(style.ShiftSuperscript))
	assert.Equal(t, "baseline", FormatBaselineShift(style.ShiftNone))
	assert.Equal(t, "25%", FormatBaselineShift(style.BaselineShift(0.25)))
}

func TestParseShadow(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *style.Shadow
	}{
		{
			name:  "four tokens color last",
			input: "2px 2px 4px rgba(0, 0, 0, 1)",
			want:  &style.Shadow{OffsetX: 2, OffsetY: 2, Blur: 4, Color: style.RGB(0, 0, 0)},
		},
		{
			name:  "four tokens color first",
			input: "red 1px 2px 3px",
			want:  &style.Shadow{OffsetX: 1, OffsetY: 2, Blur: 3, Color: style.RGB(255, 0, 0)},
		},
		{
			name:  "three tokens no blur",
			input: "1px 2px #00ff00",
			want:  &style.Shadow{OffsetX: 1, OffsetY: 2, Color: style.RGB(0, 255, 0)},
		},
		{name: "too few tokens", input: "1px red"},
		{name: "too many tokens", input: "1px 2px 3px 4px red"},
		{name: "no color", input: "1px 2px 3px"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseShadow(tt.input)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestFormatShadow(t *testing.T) {
	sh := style.Shadow{OffsetX: 2, OffsetY: 3, Blur: 4, Color: style.RGB(0, 0, 0)}
	assert.Equal(t, "2px 3px 4px rgba(0, 0, 0, 1)", FormatShadow(sh))
}
