package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/zjrosen/quill/internal/css"
	"github.com/zjrosen/quill/internal/richtext"
	"github.com/zjrosen/quill/internal/style"
)

var inspectFrom string

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Dump a document's span tree as YAML",
	Long:  `Inspect parses a document and prints its paragraph and span structure, with styles shown as CSS declarations. Useful for debugging conversions.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().StringVarP(&inspectFrom, "from", "f", "",
		"source dialect: html or markdown (default: by file extension)")
	rootCmd.AddCommand(inspectCmd)
}

// spanDump mirrors a span for YAML output.
type spanDump struct {
	Text     string     `yaml:"text,omitempty"`
	Style    string     `yaml:"style,omitempty"`
	Kind     string     `yaml:"kind,omitempty"`
	URL      string     `yaml:"url,omitempty"`
	Source   string     `yaml:"source,omitempty"`
	Alt      string     `yaml:"alt,omitempty"`
	Children []spanDump `yaml:"children,omitempty"`
}

type paragraphDump struct {
	Type   string     `yaml:"type,omitempty"`
	Level  int        `yaml:"level,omitempty"`
	Number int        `yaml:"number,omitempty"`
	Style  string     `yaml:"style,omitempty"`
	Spans  []spanDump `yaml:"spans"`
}

type documentDump struct {
	Paragraphs []paragraphDump `yaml:"paragraphs"`
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	from, err := resolveFormat(inspectFrom, path)
	if err != nil {
		return err
	}
	src, err := readSource(path)
	if err != nil {
		return err
	}
	doc, err := parseDocument(from, src)
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(dumpDocument(doc))
	if err != nil {
		return fmt.Errorf("marshaling tree: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), string(out))
	return nil
}

func dumpDocument(doc *richtext.Document) documentDump {
	var out documentDump
	for _, p := range doc.Paragraphs() {
		pd := paragraphDump{
			Type:   kindName(p.Type.Kind),
			Level:  p.Type.Level,
			Number: p.Type.Number,
		}
		if !p.Style.IsZero() {
			pd.Style = css.FormatDeclarations(css.ParagraphDeclarations(p.Style))
		}
		for _, s := range p.Spans() {
			if s.IsBlank() && len(p.Spans()) > 1 {
				continue
			}
			pd.Spans = append(pd.Spans, dumpSpan(s))
		}
		out.Paragraphs = append(out.Paragraphs, pd)
	}
	return out
}

func dumpSpan(s *richtext.Span) spanDump {
	d := spanDump{
		Text:   s.Text,
		URL:    s.Rich.URL,
		Source: s.Rich.Source,
		Alt:    s.Rich.Alt,
	}
	if s.Rich.Kind != style.SpanDefault {
		d.Kind = s.Rich.Kind.String()
	}
	if !s.Style.IsZero() {
		d.Style = css.FormatDeclarations(css.StyleDeclarations(s.Style))
	}
	for _, c := range s.Children() {
		d.Children = append(d.Children, dumpSpan(c))
	}
	return d
}

func kindName(k richtext.ParagraphKind) string {
	switch k {
	case richtext.KindUnorderedList:
		return "unordered-list"
	case richtext.KindOrderedList:
		return "ordered-list"
	default:
		return ""
	}
}
