package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/quill/internal/render"
)

var renderFrom string

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render a document's styled runs to the terminal",
	Long:  `Render parses a document and prints it with ANSI styling applied directly from the span tree: bold and italic runs, colors, list markers. Unlike preview it does not go through Markdown.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderFrom, "from", "f", "",
		"source dialect: html or markdown (default: by file extension)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	from, err := resolveFormat(renderFrom, path)
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

	r := render.New(render.WithBullets(cfg.Bullets))
	fmt.Fprintln(cmd.OutOrStdout(), r.Document(doc))
	return nil
}
