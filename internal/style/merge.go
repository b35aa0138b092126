package style

// Merge composes overlay on top of s: for every field overlay specifies,
// overlay wins; unspecified overlay fields keep s's value. Decorations
// merge as a set union so underline + line-through coexist.
//
// Styles are treated as immutable values; the result shares pointers with
// its inputs and callers must not mutate pointed-to values in place.
func (s CharacterStyle) Merge(overlay CharacterStyle) CharacterStyle {
	out := s
	if overlay.Color != nil {
		out.Color = overlay.Color
	}
	if overlay.Background != nil {
		out.Background = overlay.Background
	}
	if overlay.FontFamily != nil {
		out.FontFamily = overlay.FontFamily
	}
	if overlay.FontSize != nil {
		out.FontSize = overlay.FontSize
	}
	if overlay.FontWeight != nil {
		out.FontWeight = overlay.FontWeight
	}
	if overlay.Italic != nil {
		out.Italic = overlay.Italic
	}
	if overlay.LetterSpacing != nil {
		out.LetterSpacing = overlay.LetterSpacing
	}
	if overlay.Baseline != nil {
		out.Baseline = overlay.Baseline
	}
	if overlay.Decoration != nil {
		if s.Decoration != nil {
			u := s.Decoration.Union(*overlay.Decoration)
			out.Decoration = &u
		} else {
			out.Decoration = overlay.Decoration
		}
	}
	if overlay.Shadow != nil {
		out.Shadow = overlay.Shadow
	}
	return out
}

// Unmerge resets every field that remove specifies back to unspecified.
// Fields remove leaves unspecified keep s's value. This is how "remove
// bold" works without disturbing the other attributes.
func (s CharacterStyle) Unmerge(remove CharacterStyle) CharacterStyle {
	out := s
	if remove.Color != nil {
		out.Color = nil
	}
	if remove.Background != nil {
		out.Background = nil
	}
	if remove.FontFamily != nil {
		out.FontFamily = nil
	}
	if remove.FontSize != nil {
		out.FontSize = nil
	}
	if remove.FontWeight != nil {
		out.FontWeight = nil
	}
	if remove.Italic != nil {
		out.Italic = nil
	}
	if remove.LetterSpacing != nil {
		out.LetterSpacing = nil
	}
	if remove.Baseline != nil {
		out.Baseline = nil
	}
	if remove.Decoration != nil {
		if s.Decoration != nil && *remove.Decoration != DecorationNone {
			d := *s.Decoration &^ *remove.Decoration
			if d == DecorationNone {
				out.Decoration = nil
			} else {
				out.Decoration = &d
			}
		} else {
			out.Decoration = nil
		}
	}
	if remove.Shadow != nil {
		out.Shadow = nil
	}
	return out
}

// SpecifiedFieldsEqual reports whether s agrees with other on every field
// other specifies; fields other leaves unspecified are ignored. With
// strict set, fields other leaves unspecified must also be unspecified in
// s, making the comparison an exact equality of specified sets.
func (s CharacterStyle) SpecifiedFieldsEqual(other CharacterStyle, strict bool) bool {
	if !fieldEqual(s.Color, other.Color, strict) {
		return false
	}
	if !fieldEqual(s.Background, other.Background, strict) {
		return false
	}
	if !fieldEqual(s.FontFamily, other.FontFamily, strict) {
		return false
	}
	if !fieldEqual(s.FontSize, other.FontSize, strict) {
		return false
	}
	if !fieldEqual(s.FontWeight, other.FontWeight, strict) {
		return false
	}
	if !fieldEqual(s.Italic, other.Italic, strict) {
		return false
	}
	if !fieldEqual(s.LetterSpacing, other.LetterSpacing, strict) {
		return false
	}
	if !fieldEqual(s.Baseline, other.Baseline, strict) {
		return false
	}
	if other.Decoration != nil {
		if s.Decoration == nil || !s.Decoration.Has(*other.Decoration) {
			return false
		}
	} else if strict && s.Decoration != nil {
		return false
	}
	if !fieldEqual(s.Shadow, other.Shadow, strict) {
		return false
	}
	return true
}

// Merge composes overlay on top of s with the same semantics as
// CharacterStyle.Merge.
func (s ParagraphStyle) Merge(overlay ParagraphStyle) ParagraphStyle {
	out := s
	if overlay.Align != nil {
		out.Align = overlay.Align
	}
	if overlay.Direction != nil {
		out.Direction = overlay.Direction
	}
	if overlay.LineHeight != nil {
		out.LineHeight = overlay.LineHeight
	}
	if overlay.LineBreak != nil {
		out.LineBreak = overlay.LineBreak
	}
	if overlay.Hyphens != nil {
		out.Hyphens = overlay.Hyphens
	}
	return out
}

// Unmerge resets every field that remove specifies back to unspecified.
func (s ParagraphStyle) Unmerge(remove ParagraphStyle) ParagraphStyle {
	out := s
	if remove.Align != nil {
		out.Align = nil
	}
	if remove.Direction != nil {
		out.Direction = nil
	}
	if remove.LineHeight != nil {
		out.LineHeight = nil
	}
	if remove.LineBreak != nil {
		out.LineBreak = nil
	}
	if remove.Hyphens != nil {
		out.Hyphens = nil
	}
	return out
}

// SpecifiedFieldsEqual mirrors CharacterStyle.SpecifiedFieldsEqual.
func (s ParagraphStyle) SpecifiedFieldsEqual(other ParagraphStyle, strict bool) bool {
	return fieldEqual(s.Align, other.Align, strict) &&
		fieldEqual(s.Direction, other.Direction, strict) &&
		fieldEqual(s.LineHeight, other.LineHeight, strict) &&
		fieldEqual(s.LineBreak, other.LineBreak, strict) &&
		fieldEqual(s.Hyphens, other.Hyphens, strict)
}

func fieldEqual[T comparable](a, b *T, strict bool) bool {
	if b == nil {
		return !strict || a == nil
	}
	return a != nil && *a == *b
}
