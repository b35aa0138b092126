package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/zjrosen/quill/internal/codec/html"
	"github.com/zjrosen/quill/internal/codec/markdown"
	"github.com/zjrosen/quill/internal/config"
	"github.com/zjrosen/quill/internal/log"
	"github.com/zjrosen/quill/internal/richtext"
	"github.com/zjrosen/quill/internal/watcher"
)

var (
	convertFrom  string
	convertTo    string
	convertOut   string
	convertWatch bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Convert a document between HTML and Markdown",
	Long:  `Convert reads a document (from a file or stdin), parses it into a span tree, and writes it back out in the target dialect. With --watch it keeps running and reconverts whenever the source file changes.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertFrom, "from", "f", "",
		"source dialect: html or markdown (default: by file extension)")
	convertCmd.Flags().StringVarP(&convertTo, "to", "t", "",
		"target dialect: html or markdown (default: the other dialect)")
	convertCmd.Flags().StringVarP(&convertOut, "out", "o", "",
		"output file (default: stdout)")
	convertCmd.Flags().BoolVarP(&convertWatch, "watch", "w", false,
		"reconvert whenever the source file changes")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	from, err := resolveFormat(convertFrom, path)
	if err != nil {
		return err
	}
	to := convertTo
	if to == "" {
		to = otherFormat(from)
	}
	if err := config.ValidateFormat(to); err != nil {
		return err
	}

	if convertWatch {
		if path == "" {
			return fmt.Errorf("--watch requires a source file")
		}
		return watchConvert(path, from, to)
	}

	src, err := readSource(path)
	if err != nil {
		return err
	}
	out, err := convertOnce(src, from, to)
	if err != nil {
		return err
	}
	return writeOutput(cmd.OutOrStdout(), out)
}

func watchConvert(path, from, to string) error {
	w, err := watcher.New(watcher.Config{
		Path:        path,
		DebounceDur: time.Duration(cfg.Watch.DebounceMS) * time.Millisecond,
	})
	if err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()

	onChange, err := w.Start()
	if err != nil {
		return err
	}

	convert := func() {
		src, err := readSource(path)
		if err != nil {
			log.ErrorErr(log.CatWatcher, "read failed", err, "path", path)
			fmt.Fprintln(os.Stderr, "read failed:", err)
			return
		}
		out, err := convertOnce(src, from, to)
		if err != nil {
			fmt.Fprintln(os.Stderr, "convert failed:", err)
			return
		}
		if err := writeOutput(os.Stdout, out); err != nil {
			fmt.Fprintln(os.Stderr, "write failed:", err)
		}
	}

	convert()
	for range onChange {
		log.Debug(log.CatWatcher, "source changed", "path", path)
		convert()
	}
	return nil
}

func convertOnce(src, from, to string) (string, error) {
	doc, err := parseDocument(from, src)
	if err != nil {
		return "", err
	}
	return renderDocument(to, doc)
}

func parseDocument(format, src string) (*richtext.Document, error) {
	switch format {
	case "markdown":
		return markdown.Parse(src)
	default:
		return html.Parse(src)
	}
}

func renderDocument(format string, doc *richtext.Document) (string, error) {
	switch format {
	case "markdown":
		return markdown.Render(doc), nil
	case "html":
		return html.Render(doc), nil
	default:
		return "", fmt.Errorf("unknown target format %q", format)
	}
}

// resolveFormat picks the source dialect: explicit flag, then file
// extension, then the configured default.
func resolveFormat(flag, path string) (string, error) {
	if flag != "" {
		if err := config.ValidateFormat(flag); err != nil {
			return "", err
		}
		return flag, nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return "markdown", nil
	case ".html", ".htm":
		return "html", nil
	}
	if cfg.Format != "" {
		return cfg.Format, nil
	}
	return "html", nil
}

func otherFormat(format string) string {
	if format == "html" {
		return "markdown"
	}
	return "html"
}

func readSource(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // G304: user-supplied document path
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

func writeOutput(stdout io.Writer, content string) error {
	if convertOut == "" {
		_, err := fmt.Fprintln(stdout, content)
		return err
	}
	return os.WriteFile(convertOut, []byte(content+"\n"), 0644) //nolint:gosec // G306: converted document, not a secret
}
