package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/outlinekit/pdfoutline/internal/outline"
	"github.com/outlinekit/pdfoutline/internal/pdfdoc"
	"github.com/outlinekit/pdfoutline/internal/render"
)

var (
	maxDepth     int
	treeFormat   bool
	indentWidth  int
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "pdfoutline FILE.pdf",
	Short: "Print a PDF's embedded outline as markdown, a tree, or HTML",
	Long: `pdfoutline reads the bookmark tree embedded in a PDF document and prints
it as a nested markdown list (default), a box-drawing tree, or a standalone
HTML page, annotated with page numbers where the document resolves them.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExtract(cmd, args[0])
	},
}

func init() {
	rootCmd.Flags().IntVarP(&maxDepth, "depth", "d", 0, "maximum outline depth to display")
	rootCmd.Flags().BoolVarP(&treeFormat, "tree", "t", false, "print a box-drawing tree (same as --format tree)")
	rootCmd.Flags().IntVarP(&indentWidth, "indent", "i", 2, "markdown indent width in spaces")
	rootCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format: markdown, tree or html")

	rootCmd.AddCommand(serveCmd, versionCmd)
}

func runExtract(cmd *cobra.Command, path string) error {
	if cmd.Flags().Changed("depth") && maxDepth <= 0 {
		return errors.New("depth must be a positive integer")
	}
	if indentWidth <= 0 {
		return errors.New("indent must be a positive integer")
	}
	format := outputFormat
	if format == "" {
		format = "markdown"
		if treeFormat {
			format = "tree"
		}
	}
	switch format {
	case "markdown", "tree", "html":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("file not found: %s", path)
	}
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return fmt.Errorf("not a PDF file: %s", path)
	}

	doc, err := pdfdoc.Open(path)
	if err != nil {
		return err
	}
	defer doc.Close()

	// A missing outline is an informational result, not a failure.
	recs, err := outline.Extract(doc)
	if err != nil && !errors.Is(err, outline.ErrNoOutline) {
		return fmt.Errorf("failed to read outline: %w", err)
	}

	name := filepath.Base(path)
	opts := render.Options{MaxDepth: maxDepth, Indent: indentWidth}

	var out string
	switch format {
	case "tree":
		out = render.Tree(name, recs, opts)
	case "html":
		out, err = render.HTML(name, recs, opts)
		if err != nil {
			return err
		}
	default:
		out = render.Markdown(name, recs, opts)
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
