// Package style defines the value types for character-level and
// paragraph-level styling, plus the merge/unmerge algebra used to compose
// styles top-down through the span tree.
//
// Every field of CharacterStyle and ParagraphStyle is optional: a nil
// pointer means "unspecified", which never overrides a specified value
// when styles are composed. The algebra treats absent fields as
// "don't care" everywhere; none of the operations can fail.
package style

// Color is an sRGB color with 0-255 channels. Alpha 255 is fully opaque.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA returns a color with an explicit alpha channel.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// FontWeight is a numeric weight on the CSS 100-900 scale.
type FontWeight int

const (
	WeightThin       FontWeight = 100
	WeightExtraLight FontWeight = 200
	WeightLight      FontWeight = 300
	WeightNormal     FontWeight = 400
	WeightMedium     FontWeight = 500
	WeightSemiBold   FontWeight = 600
	WeightBold       FontWeight = 700
	WeightExtraBold  FontWeight = 800
	WeightBlack      FontWeight = 900
)

// Decoration is a set of text decoration lines.
type Decoration uint8

const (
	DecorationUnderline Decoration = 1 << iota
	DecorationLineThrough

	// DecorationNone is a specified-but-empty decoration set. Distinct from
	// an unspecified decoration, which is a nil *Decoration.
	DecorationNone Decoration = 0
)

// Has reports whether every line in d2 is present in d.
func (d Decoration) Has(d2 Decoration) bool {
	return d&d2 == d2
}

// Union returns the set union of both decorations.
func (d Decoration) Union(d2 Decoration) Decoration {
	return d | d2
}

// BaselineShift is the vertical shift of a span's baseline expressed as a
// ratio of the line height. Negative shifts move text down.
type BaselineShift float64

const (
	ShiftNone        BaselineShift = 0
	ShiftSubscript   BaselineShift = -0.5
	ShiftSuperscript BaselineShift = 0.5
)

// Shadow describes a drop shadow behind a span's glyphs.
type Shadow struct {
	OffsetX float64
	OffsetY float64
	Blur    float64
	Color   Color
}

// CharacterStyle is the set of character-level attributes a span may carry.
// Nil fields are unspecified and inherit from ancestor spans.
type CharacterStyle struct {
	Color         *Color
	Background    *Color
	FontFamily    *string
	FontSize      *float64
	FontWeight    *FontWeight
	Italic        *bool
	LetterSpacing *float64
	Baseline      *BaselineShift
	Decoration    *Decoration
	Shadow        *Shadow
}

// IsZero reports whether no field is specified.
func (s CharacterStyle) IsZero() bool {
	return s.Color == nil && s.Background == nil && s.FontFamily == nil &&
		s.FontSize == nil && s.FontWeight == nil && s.Italic == nil &&
		s.LetterSpacing == nil && s.Baseline == nil && s.Decoration == nil &&
		s.Shadow == nil
}

// TextAlign is the horizontal alignment of a paragraph.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
	AlignJustify
)

// TextDirection is the writing direction of a paragraph.
type TextDirection int

const (
	DirectionLTR TextDirection = iota
	DirectionRTL
)

// LineBreakMode controls how lines are broken inside a paragraph.
type LineBreakMode int

const (
	LineBreakNormal LineBreakMode = iota
	LineBreakLoose
	LineBreakStrict
)

// Hyphens controls automatic hyphenation.
type Hyphens int

const (
	HyphensNone Hyphens = iota
	HyphensAuto
)

// ParagraphStyle is the set of paragraph-level attributes. Nil fields are
// unspecified, with the same composition semantics as CharacterStyle.
type ParagraphStyle struct {
	Align      *TextAlign
	Direction  *TextDirection
	LineHeight *float64
	LineBreak  *LineBreakMode
	Hyphens    *Hyphens
}

// IsZero reports whether no field is specified.
func (s ParagraphStyle) IsZero() bool {
	return s.Align == nil && s.Direction == nil && s.LineHeight == nil &&
		s.LineBreak == nil && s.Hyphens == nil
}

// Convenience constructors for the common toggles.

// Bold returns a style specifying only bold weight.
func Bold() CharacterStyle {
	w := WeightBold
	return CharacterStyle{FontWeight: &w}
}

// Italic returns a style specifying only italics.
func Italic() CharacterStyle {
	i := true
	return CharacterStyle{Italic: &i}
}

// Underlined returns a style specifying only an underline decoration.
func Underlined() CharacterStyle {
	d := DecorationUnderline
	return CharacterStyle{Decoration: &d}
}

// Struck returns a style specifying only a line-through decoration.
func Struck() CharacterStyle {
	d := DecorationLineThrough
	return CharacterStyle{Decoration: &d}
}

// Ptr returns a pointer to v. Handy when building styles field by field.
func Ptr[T any](v T) *T {
	return &v
}
