package css

import (
	"strings"

	"github.com/zjrosen/quill/internal/style"
)

// Declaration is one "property: value" pair. Serialization uses an ordered
// slice so output is deterministic; parsing returns a map because the last
// occurrence of a property wins.
type Declaration struct {
	Property string
	Value    string
}

// FormatDeclarations joins declarations as "k: v; k2: v2;".
func FormatDeclarations(decls []Declaration) string {
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		parts = append(parts, d.Property+": "+d.Value+";")
	}
	return strings.Join(parts, " ")
}

// ParseDeclarations splits a style string on ';' then ':'. Malformed
// entries are dropped silently; parsing never fails.
func ParseDeclarations(s string) map[string]string {
	out := make(map[string]string)
	for _, entry := range strings.Split(s, ";") {
		parts := strings.SplitN(entry, ":", 2)
		if len(parts) != 2 {
			continue
		}
		prop := strings.ToLower(strings.TrimSpace(parts[0]))
		val := strings.TrimSpace(parts[1])
		if prop == "" || val == "" {
			continue
		}
		out[prop] = val
	}
	return out
}

// CSS property names understood by the style bridge.
const (
	propColor         = "color"
	propBackground    = "background-color"
	propFontFamily    = "font-family"
	propFontSize      = "font-size"
	propFontWeight    = "font-weight"
	propFontStyle     = "font-style"
	propLetterSpacing = "letter-spacing"
	propBaselineShift = "baseline-shift"
	propDecoration    = "text-decoration"
	propShadow        = "text-shadow"
	propTextAlign     = "text-align"
	propDirection     = "direction"
	propLineHeight    = "line-height"
)

// StyleDeclarations serializes the specified fields of a character style
// into declarations, in a fixed field order.
func StyleDeclarations(s style.CharacterStyle) []Declaration {
	var decls []Declaration
	if s.Color != nil {
		decls = append(decls, Declaration{propColor, FormatColor(*s.Color)})
	}
	if s.Background != nil {
		decls = append(decls, Declaration{propBackground, FormatColor(*s.Background)})
	}
	if s.FontFamily != nil {
		decls = append(decls, Declaration{propFontFamily, *s.FontFamily})
	}
	if s.FontSize != nil {
		decls = append(decls, Declaration{propFontSize, FormatLength(*s.FontSize)})
	}
	if s.FontWeight != nil {
		decls = append(decls, Declaration{propFontWeight, FormatFontWeight(*s.FontWeight)})
	}
	if s.Italic != nil {
		v := "normal"
		if *s.Italic {
			v = "italic"
		}
		decls = append(decls, Declaration{propFontStyle, v})
	}
	if s.LetterSpacing != nil {
		decls = append(decls, Declaration{propLetterSpacing, FormatLength(*s.LetterSpacing)})
	}
	if s.Baseline != nil {
		decls = append(decls, Declaration{propBaselineShift, FormatBaselineShift(*s.Baseline)})
	}
	if s.Decoration != nil {
		decls = append(decls, Declaration{propDecoration, FormatDecoration(*s.Decoration)})
	}
	if s.Shadow != nil {
		decls = append(decls, Declaration{propShadow, FormatShadow(*s.Shadow)})
	}
	return decls
}

// ParagraphDeclarations serializes the specified fields of a paragraph
// style.
func ParagraphDeclarations(s style.ParagraphStyle) []Declaration {
	var decls []Declaration
	if s.Align != nil {
		var v string
		switch *s.Align {
		case style.AlignCenter:
			v = "center"
		case style.AlignRight:
			v = "right"
		case style.AlignJustify:
			v = "justify"
		default:
			v = "left"
		}
		decls = append(decls, Declaration{propTextAlign, v})
	}
	if s.Direction != nil {
		v := "ltr"
		if *s.Direction == style.DirectionRTL {
			v = "rtl"
		}
		decls = append(decls, Declaration{propDirection, v})
	}
	if s.LineHeight != nil {
		decls = append(decls, Declaration{propLineHeight, FormatLength(*s.LineHeight)})
	}
	return decls
}

// ParseStyle converts a declaration map into a character style. Unknown
// properties and malformed values are ignored.
func ParseStyle(props map[string]string) style.CharacterStyle {
	var s style.CharacterStyle
	for prop, val := range props {
		switch prop {
		case propColor:
			s.Color = ParseColor(val)
		case propBackground, "background":
			s.Background = ParseColor(val)
		case propFontFamily:
			if v := strings.TrimSpace(val); v != "" {
				s.FontFamily = &v
			}
		case propFontSize:
			s.FontSize = ParseLength(val)
		case propFontWeight:
			s.FontWeight = ParseFontWeight(val)
		case propFontStyle:
			switch strings.ToLower(strings.TrimSpace(val)) {
			case "italic", "oblique":
				s.Italic = style.Ptr(true)
			case "normal":
				s.Italic = style.Ptr(false)
			}
		case propLetterSpacing:
			s.LetterSpacing = ParseLength(val)
		case propBaselineShift:
			s.Baseline = ParseBaselineShift(val)
		case "vertical-align":
			// Only the baseline keywords overlap with our model.
			if b := ParseBaselineShift(val); b != nil {
				s.Baseline = b
			}
		case propDecoration, "text-decoration-line":
			s.Decoration = ParseDecoration(val)
		case propShadow:
			s.Shadow = ParseShadow(val)
		}
	}
	return s
}

// ParseParagraphStyle converts a declaration map into a paragraph style.
func ParseParagraphStyle(props map[string]string) style.ParagraphStyle {
	var s style.ParagraphStyle
	for prop, val := range props {
		switch prop {
		case propTextAlign:
			switch strings.ToLower(strings.TrimSpace(val)) {
			case "left", "start":
				s.Align = style.Ptr(style.AlignLeft)
			case "center":
				s.Align = style.Ptr(style.AlignCenter)
			case "right", "end":
				s.Align = style.Ptr(style.AlignRight)
			case "justify":
				s.Align = style.Ptr(style.AlignJustify)
			}
		case propDirection:
			switch strings.ToLower(strings.TrimSpace(val)) {
			case "ltr":
				s.Direction = style.Ptr(style.DirectionLTR)
			case "rtl":
				s.Direction = style.Ptr(style.DirectionRTL)
			}
		case propLineHeight:
			s.LineHeight = ParseLength(val)
		}
	}
	return s
}
