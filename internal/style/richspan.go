package style

// SpanKind discriminates the semantic variants a span can carry on top of
// its character style. The set is closed; every consumer switches over it
// exhaustively.
type SpanKind int

const (
	// SpanDefault is plain styled text with no semantic tag.
	SpanDefault SpanKind = iota
	// SpanLink is a hyperlink; URL holds the target.
	SpanLink
	// SpanCode is an inline code fragment.
	SpanCode
	// SpanImage is an embedded image; Source and Alt hold its payload.
	SpanImage
)

func (k SpanKind) String() string {
	switch k {
	case SpanLink:
		return "link"
	case SpanCode:
		return "code"
	case SpanImage:
		return "image"
	default:
		return "default"
	}
}

// RichSpanStyle is the tagged union of span semantics. Only the fields
// belonging to Kind are meaningful; the rest stay zero.
type RichSpanStyle struct {
	Kind   SpanKind
	URL    string // SpanLink
	Source string // SpanImage
	Alt    string // SpanImage
}

// Link returns a link span style for the given target.
func Link(url string) RichSpanStyle {
	return RichSpanStyle{Kind: SpanLink, URL: url}
}

// Code returns an inline-code span style.
func Code() RichSpanStyle {
	return RichSpanStyle{Kind: SpanCode}
}

// Image returns an image span style.
func Image(source, alt string) RichSpanStyle {
	return RichSpanStyle{Kind: SpanImage, Source: source, Alt: alt}
}

// AcceptsEdgeInsertion reports whether text typed exactly at the first or
// last character boundary of a span with this style should extend the
// span. Links and images refuse edge insertion: typing at their boundary
// starts a new sibling span instead, so the link target never silently
// absorbs adjacent typing.
func (r RichSpanStyle) AcceptsEdgeInsertion() bool {
	switch r.Kind {
	case SpanLink, SpanImage:
		return false
	default:
		return true
	}
}
