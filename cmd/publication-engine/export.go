// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/publication-engine/internal/export"
	"github.com/pdiddy/publication-engine/internal/session"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a publication list as BibTeX or a PDF layout",
	Long: `Export serializes a publication list to publications.bib (BibTeX entries)
or publications.txt (the paginated PDF layout rendered as text). The list
comes from a file saved by "fetch --save", or is fetched fresh when
--author is given. Filter, sort, and group flags shape the exported
sequence the same way they shape the display.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("input", "", "read publications from a saved list file")
	exportCmd.Flags().String("author", "", "fetch publications for this researcher instead")
	exportCmd.Flags().String("format", "bib", "export format: bib or pdf")
	exportCmd.Flags().String("output", "", "output file (default <output-dir>/publications.<ext>)")
	exportCmd.Flags().Int("year", 0, "only export publications from this year")
	exportCmd.Flags().String("sort-by", "year", "sort key: year or title")
	exportCmd.Flags().String("sort-order", "asc", "sort direction: asc or desc")
	exportCmd.Flags().String("group-by", "", "group by: year, type, author, or none")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	author, _ := cmd.Flags().GetString("author")
	if input == "" && author == "" {
		return fmt.Errorf("provide --input or --author")
	}

	cfg := pipelineConfig(cmd)
	s := session.New(cfg, &http.Client{Timeout: cfg.Source.Timeout})

	if input != "" {
		lf, err := session.ReadListFile(input)
		if err != nil {
			return err
		}
		s.SetPublications(lf.Query.Author, lf.Publications)
	} else {
		if err := s.Fetch(cmd.Context(), author); err != nil {
			if errors.Is(err, session.ErrNoMatch) {
				fmt.Fprintf(os.Stderr, "No publications found for the exact author name %q.\n", author)
				return nil
			}
			return err
		}
	}

	items := s.Apply(displayOptions(cmd))

	format, _ := cmd.Flags().GetString("format")
	// Render fully in memory first so a failure never leaves a partial
	// file behind looking like a successful export.
	var content []byte
	var ext string
	switch format {
	case "bib":
		content = []byte(export.ToBibTeX(items))
		ext = "bib"
	case "pdf":
		var buf bytes.Buffer
		if err := export.BuildDocument(items).WriteText(&buf); err != nil {
			return fmt.Errorf("rendering layout: %w", err)
		}
		content = buf.Bytes()
		ext = "txt"
	default:
		return fmt.Errorf("unknown export format %q (want bib or pdf)", format)
	}

	out, _ := cmd.Flags().GetString("output")
	if out == "" {
		dir := cfg.Export.OutputDir
		if dir == "" {
			dir = "."
		}
		out = filepath.Join(dir, "publications."+ext)
	}
	if err := os.WriteFile(out, content, 0o644); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}

	count := 0
	for _, it := range items {
		if !it.IsHeader() {
			count++
		}
	}
	fmt.Fprintf(os.Stderr, "Exported %d publications to %s\n", count, out)
	return nil
}
