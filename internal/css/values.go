// Package css implements the inline-style mini-language used by the markup
// codecs: colors, lengths, font weights, text decorations, baseline shifts
// and shadows, in both directions.
//
// Parsing is deliberately more permissive than serialization. A malformed
// value parses to nil rather than an error; callers treat nil as
// "inherit/default". Serialization always emits one canonical form.
package css

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/zjrosen/quill/internal/style"
)

// Conversion factors into the canonical px unit.
const (
	ptToPx      = 1.333
	emToPx      = 16.0
	percentToPx = 16.0 / 100.0
)

// ParseColor parses hex (3 or 6 digits, # optional), rgb(), rgba() and
// named colors. Anything else yields nil.
func ParseColor(s string) *style.Color {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return nil
	}

	switch {
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		return parseRGBFunc(s[len("rgba("):len(s)-1], true)
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseRGBFunc(s[len("rgb("):len(s)-1], false)
	}

	if c, ok := namedColors[s]; ok {
		return &c
	}
	return parseHex(strings.TrimPrefix(s, "#"))
}

func parseRGBFunc(body string, hasAlpha bool) *style.Color {
	parts := strings.Split(body, ",")
	want := 3
	if hasAlpha {
		want = 4
	}
	if len(parts) != want {
		return nil
	}

	var ch [3]uint8
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 || n > 255 {
			return nil
		}
		ch[i] = uint8(n)
	}

	alpha := uint8(255)
	if hasAlpha {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return nil
		}
		alpha = uint8(a * 255)
	}
	c := style.RGBA(ch[0], ch[1], ch[2], alpha)
	return &c
}

func parseHex(s string) *style.Color {
	if len(s) == 3 {
		// #abc expands to #aabbcc.
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return nil
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return nil
	}
	c := style.RGB(uint8(n>>16), uint8(n>>8), uint8(n))
	return &c
}

// FormatColor serializes a color as rgba(r, g, b, a) with the alpha channel
// rounded to at most two decimal digits.
func FormatColor(c style.Color) string {
	alpha := math.Round(float64(c.A)/255*100) / 100
	return fmt.Sprintf("rgba(%d, %d, %d, %s)",
		c.R, c.G, c.B, strconv.FormatFloat(alpha, 'f', -1, 64))
}

// ParseLength parses a CSS length into canonical px. Accepted units are
// px, pt, em, rem and %. Bare numbers are rejected except the literal "0".
func ParseLength(s string) *float64 {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return nil
	}
	if s == "0" {
		return style.Ptr(0.0)
	}

	parse := func(num string) (float64, bool) {
		v, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
		return v, err == nil
	}

	switch {
	case strings.HasSuffix(s, "px"):
		if v, ok := parse(s[:len(s)-2]); ok {
			return &v
		}
	case strings.HasSuffix(s, "pt"):
		if v, ok := parse(s[:len(s)-2]); ok {
			return style.Ptr(math.Round(v * ptToPx))
		}
	case strings.HasSuffix(s, "rem"):
		if v, ok := parse(s[:len(s)-3]); ok {
			return style.Ptr(v * emToPx)
		}
	case strings.HasSuffix(s, "em"):
		if v, ok := parse(s[:len(s)-2]); ok {
			return style.Ptr(v * emToPx)
		}
	case strings.HasSuffix(s, "%"):
		if v, ok := parse(s[:len(s)-1]); ok {
			return style.Ptr(v * percentToPx)
		}
	}
	return nil
}

// FormatLength serializes a length in the one canonical unit, px.
func FormatLength(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

var weightKeywords = map[string]style.FontWeight{
	"thin":       style.WeightThin,
	"hairline":   style.WeightThin,
	"extralight": style.WeightExtraLight,
	"ultralight": style.WeightExtraLight,
	"light":      style.WeightLight,
	"normal":     style.WeightNormal,
	"regular":    style.WeightNormal,
	"medium":     style.WeightMedium,
	"semibold":   style.WeightSemiBold,
	"demibold":   style.WeightSemiBold,
	"bold":       style.WeightBold,
	"extrabold":  style.WeightExtraBold,
	"ultrabold":  style.WeightExtraBold,
	"black":      style.WeightBlack,
	"heavy":      style.WeightBlack,
	"bolder":     style.WeightBlack,
	"lighter":    style.WeightThin,
}

// ParseFontWeight parses numeric weights (100-900) and the keyword table.
func ParseFontWeight(s string) *style.FontWeight {
	s = strings.ToLower(strings.TrimSpace(s))
	if w, ok := weightKeywords[s]; ok {
		return &w
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 100 || n > 900 {
		return nil
	}
	w := style.FontWeight(n)
	return &w
}

var weightNames = map[style.FontWeight]string{
	style.WeightThin:       "thin",
	style.WeightExtraLight: "extralight",
	style.WeightLight:      "light",
	style.WeightNormal:     "normal",
	style.WeightMedium:     "medium",
	style.WeightSemiBold:   "semibold",
	style.WeightBold:       "bold",
	style.WeightExtraBold:  "extrabold",
	style.WeightBlack:      "black",
}

// FormatFontWeight emits the keyword for the nine 100-multiple buckets and
// falls back to the raw number for anything off-scale.
func FormatFontWeight(w style.FontWeight) string {
	if name, ok := weightNames[w]; ok {
		return name
	}
	return strconv.Itoa(int(w))
}

// ParseDecoration parses "none", "underline", "line-through" or the
// space-joined pair in either order. "overline" is unsupported and, like
// any other unknown token, yields nil.
func ParseDecoration(s string) *style.Decoration {
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) == 0 || len(fields) > 2 {
		return nil
	}
	if len(fields) == 1 && fields[0] == "none" {
		d := style.DecorationNone
		return &d
	}

	var d style.Decoration
	for _, f := range fields {
		switch f {
		case "underline":
			d = d.Union(style.DecorationUnderline)
		case "line-through":
			d = d.Union(style.DecorationLineThrough)
		default:
			return nil
		}
	}
	return &d
}

// FormatDecoration serializes a decoration set.
func FormatDecoration(d style.Decoration) string {
	switch {
	case d.Has(style.DecorationUnderline) && d.Has(style.DecorationLineThrough):
		return "underline line-through"
	case d.Has(style.DecorationUnderline):
		return "underline"
	case d.Has(style.DecorationLineThrough):
		return "line-through"
	default:
		return "none"
	}
}

// ParseBaselineShift parses the sub/super/baseline keywords or a
// percentage value.
func ParseBaselineShift(s string) *style.BaselineShift {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "sub":
		return style.Ptr(style.ShiftSubscript)
	case "super":
		return style.Ptr(style.ShiftSuperscript)
	case "baseline":
		return style.Ptr(style.ShiftNone)
	}
	if strings.HasSuffix(s, "%") {
		v, err := strconv.ParseFloat(s[:len(s)-1], 64)
		if err != nil {
			return nil
		}
		return style.Ptr(style.BaselineShift(v / 100))
	}
	return nil
}

// FormatBaselineShift serializes the three keyword shifts and renders any
// other ratio as a rounded percentage.
func FormatBaselineShift(b style.BaselineShift) string {
	switch b {
	case style.ShiftSubscript:
		return "sub"
	case style.ShiftSuperscript:
		return "super"
	case style.ShiftNone:
		return "baseline"
	}
	return strconv.Itoa(int(math.Round(float64(b)*100))) + "%"
}

// ParseShadow parses the 3-token (dx dy color, color dx dy) and 4-token
// (with blur) shadow shorthands. The color may come first or last;
// whichever end fails color parsing is taken as the offset list.
func ParseShadow(s string) *style.Shadow {
	tokens := splitTopLevel(s)

	var colorTok string
	var nums []string
	switch len(tokens) {
	case 3, 4:
		if c := ParseColor(tokens[0]); c != nil {
			colorTok, nums = tokens[0], tokens[1:]
		} else {
			colorTok, nums = tokens[len(tokens)-1], tokens[:len(tokens)-1]
		}
	default:
		return nil
	}

	c := ParseColor(colorTok)
	if c == nil {
		return nil
	}

	var vals []float64
	for _, n := range nums {
		v := ParseLength(n)
		if v == nil {
			return nil
		}
		vals = append(vals, *v)
	}

	sh := style.Shadow{OffsetX: vals[0], OffsetY: vals[1], Color: *c}
	if len(vals) == 3 {
		sh.Blur = vals[2]
	}
	return &sh
}

// FormatShadow serializes a shadow as "dx dy blur color".
func FormatShadow(sh style.Shadow) string {
	return fmt.Sprintf("%s %s %s %s",
		FormatLength(sh.OffsetX), FormatLength(sh.OffsetY),
		FormatLength(sh.Blur), FormatColor(sh.Color))
}

// splitTopLevel splits on spaces that are not inside parentheses, so
// "2px 2px rgba(0, 0, 0, 1)" stays three tokens.
func splitTopLevel(s string) []string {
	var tokens []string
	var buf strings.Builder
	depth := 0
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch == '(':
			depth++
			buf.WriteByte(ch)
		case ch == ')':
			depth--
			buf.WriteByte(ch)
		case ch == ' ' && depth == 0:
			if buf.Len() > 0 {
				tokens = append(tokens, buf.String())
				buf.Reset()
			}
		default:
			buf.WriteByte(ch)
		}
	}
	if buf.Len() > 0 {
		tokens = append(tokens, buf.String())
	}
	return tokens
}
