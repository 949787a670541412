// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/publication-engine/internal/names"
	"github.com/pdiddy/publication-engine/internal/page"
	"github.com/pdiddy/publication-engine/internal/query"
	"github.com/pdiddy/publication-engine/internal/session"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <researcher name>",
	Short: "Fetch and display a researcher's publication list",
	Long: `Fetch queries DBLP for publications whose author list contains the exact
researcher name, enriches them with institution data, and prints one page of
the filtered, sorted, grouped result. Author names carry resolved profile
links and occurrences of the searched name are highlighted.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().Int("year", 0, "only show publications from this year")
	fetchCmd.Flags().String("sort-by", "year", "sort key: year or title")
	fetchCmd.Flags().String("sort-order", "asc", "sort direction: asc or desc")
	fetchCmd.Flags().String("group-by", "", "group by: year, type, author, or none")
	fetchCmd.Flags().Int("page", 1, "page number to display")
	fetchCmd.Flags().Int("page-size", 0, "items per page (default 10)")
	fetchCmd.Flags().Bool("json", false, "output the full display sequence as JSON")
	fetchCmd.Flags().Bool("histogram", false, "print the publications-per-year distribution")
	fetchCmd.Flags().String("save", "", "save the fetched list to a YAML file")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide a researcher name")
	}
	name := strings.Join(args, " ")

	cfg := pipelineConfig(cmd)
	client := &http.Client{Timeout: cfg.Source.Timeout}

	s := session.New(cfg, client)
	s.Highlighter = names.Highlighter{Open: "\x1b[1;33m", Close: "\x1b[0m"}

	ctx := cmd.Context()
	if err := s.Fetch(ctx, name); err != nil {
		switch {
		case errors.Is(err, session.ErrEmptyName):
			fmt.Fprintln(os.Stderr, "Please enter a researcher name.")
		case errors.Is(err, session.ErrNoMatch):
			fmt.Fprintf(os.Stderr, "No publications found for the exact author name %q. Try checking the exact name spelling.\n", s.Name())
		default:
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
		return nil
	}

	if path, _ := cmd.Flags().GetString("save"); path != "" {
		if err := s.WriteListFile(path); err != nil {
			return fmt.Errorf("saving list: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Saved %d publications to %s\n", len(s.Publications()), path)
	}

	items := s.Apply(displayOptions(cmd))

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return session.FormatJSON(os.Stdout, items)
	}

	pageNum, _ := cmd.Flags().GetInt("page")
	pageSize, _ := cmd.Flags().GetInt("page-size")
	if pageSize <= 0 {
		pageSize = cfg.Display.PageSize
	}
	if pageSize <= 0 {
		pageSize = 10
	}

	pageItems, controls := s.PageItems(pageNum, pageSize)
	urls := s.ResolvePageAuthors(ctx, pageItems)
	s.FormatList(os.Stdout, pageItems, urls)
	session.FormatControls(os.Stdout, controls, pageNum, page.TotalPages(len(items), pageSize))

	if histogram, _ := cmd.Flags().GetBool("histogram"); histogram {
		fmt.Fprintln(os.Stdout)
		session.FormatHistogram(os.Stdout, query.PublicationsPerYear(s.Publications()))
	}
	return nil
}

// displayOptions builds the filter/sort/group options from flags, falling
// back to the configured display defaults.
func displayOptions(cmd *cobra.Command) query.Options {
	opts := query.Options{}
	opts.YearFilter, _ = cmd.Flags().GetInt("year")
	opts.SortBy, _ = cmd.Flags().GetString("sort-by")
	opts.SortOrder, _ = cmd.Flags().GetString("sort-order")
	opts.GroupBy, _ = cmd.Flags().GetString("group-by")

	if !cmd.Flags().Changed("sort-by") && viper.GetString("display.sort_by") != "" {
		opts.SortBy = viper.GetString("display.sort_by")
	}
	if !cmd.Flags().Changed("sort-order") && viper.GetString("display.sort_order") != "" {
		opts.SortOrder = viper.GetString("display.sort_order")
	}
	if !cmd.Flags().Changed("group-by") && viper.GetString("display.group_by") != "" {
		opts.GroupBy = viper.GetString("display.group_by")
	}
	return opts
}
