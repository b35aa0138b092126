package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/zjrosen/quill/internal/codec/markdown"
)

var previewFrom string

var previewCmd = &cobra.Command{
	Use:   "preview [file]",
	Short: "Preview a document in the terminal",
	Long:  `Preview parses a document, converts it to Markdown, and pretty-prints it with glamour using the configured style and width.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPreview,
}

func init() {
	previewCmd.Flags().StringVarP(&previewFrom, "from", "f", "",
		"source dialect: html or markdown (default: by file extension)")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	from, err := resolveFormat(previewFrom, path)
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

	opts := []glamour.TermRendererOption{
		glamour.WithWordWrap(cfg.Preview.Width),
	}
	switch cfg.Preview.Style {
	case "", "auto":
		opts = append(opts, glamour.WithAutoStyle())
	default:
		opts = append(opts, glamour.WithStandardStyle(cfg.Preview.Style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}
	out, err := r.Render(markdown.Render(doc))
	if err != nil {
		return fmt.Errorf("rendering preview: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
