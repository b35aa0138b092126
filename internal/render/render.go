// Package render projects a document's styled runs onto terminal output.
// It exists for the CLI's render command and for previewing a document
// without an HTML viewer; markup codecs remain the canonical serialized
// form.
package render

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"github.com/zjrosen/quill/internal/richtext"
	"github.com/zjrosen/quill/internal/style"
)

// Renderer turns documents into styled terminal text.
type Renderer struct {
	lip     *lipgloss.Renderer
	bullets []string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithProfile pins the color profile. Tests use termenv.Ascii so output
// stays byte-stable.
func WithProfile(p termenv.Profile) Option {
	return func(r *Renderer) { r.lip.SetColorProfile(p) }
}

// WithBullets overrides the per-level bullet glyphs.
func WithBullets(glyphs []string) Option {
	return func(r *Renderer) { r.bullets = glyphs }
}

// New returns a renderer writing for the current terminal.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		lip:     lipgloss.NewRenderer(os.Stdout),
		bullets: richtext.DefaultBullets,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Document renders every paragraph, one line each, with list markers
// indented by nesting level.
func (r *Renderer) Document(doc *richtext.Document) string {
	var lines []string
	markerWidth := 0
	for _, p := range doc.Paragraphs() {
		if w := runewidth.StringWidth(p.Type.Marker(r.bullets)); w > markerWidth {
			markerWidth = w
		}
	}

	for _, p := range doc.Paragraphs() {
		var b strings.Builder
		if p.Type.IsList() {
			level := p.Type.Level
			if level < 1 {
				level = 1
			}
			marker := p.Type.Marker(r.bullets)
			b.WriteString(strings.Repeat("  ", level-1))
			b.WriteString(marker)
			b.WriteString(strings.Repeat(" ", markerWidth-runewidth.StringWidth(marker)))
		}
		for _, run := range p.Runs() {
			b.WriteString(r.styleFor(run).Render(runText(run)))
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

func runText(run richtext.Run) string {
	if run.Rich.Kind == style.SpanImage {
		if run.Rich.Alt != "" {
			return "[" + run.Rich.Alt + "]"
		}
		return "[image]"
	}
	return run.Text
}

// styleFor maps a run's merged character style onto a lipgloss style.
// Attributes a terminal cannot express (shadow, letter spacing, baseline
// shift) are dropped.
func (r *Renderer) styleFor(run richtext.Run) lipgloss.Style {
	s := r.lip.NewStyle()
	cs := run.Style

	if cs.FontWeight != nil && *cs.FontWeight >= style.WeightSemiBold {
		s = s.Bold(true)
	}
	if cs.FontWeight != nil && *cs.FontWeight <= style.WeightLight {
		s = s.Faint(true)
	}
	if cs.Italic != nil && *cs.Italic {
		s = s.Italic(true)
	}
	if cs.Decoration != nil {
		if cs.Decoration.Has(style.DecorationUnderline) {
			s = s.Underline(true)
		}
		if cs.Decoration.Has(style.DecorationLineThrough) {
			s = s.Strikethrough(true)
		}
	}
	if cs.Color != nil {
		s = s.Foreground(lipgloss.Color(hex(*cs.Color)))
	}
	if cs.Background != nil {
		s = s.Background(lipgloss.Color(hex(*cs.Background)))
	}
	switch run.Rich.Kind {
	case style.SpanLink:
		s = s.Underline(true)
	case style.SpanCode:
		s = s.Reverse(true)
	}
	return s
}

func hex(c style.Color) string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}
