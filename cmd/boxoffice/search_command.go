package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"boxoffice/internal/omdb"
	"boxoffice/internal/textutil"
)

const posterColumnWidth = 48

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var mediaType string
	var year string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "search <query...>",
		Short: "Search OMDb titles",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := ctx.openLookupSession(cmd)
			if err != nil {
				return err
			}
			query := strings.Join(args, " ")
			results := session.client.Search(session.ctx, query, session.cfg.OMDb.APIKey, omdb.SearchOptions{
				MediaType: strings.ToLower(strings.TrimSpace(mediaType)),
				Year:      strings.TrimSpace(year),
			})

			if err := session.ctx.Err(); err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, results)
			}

			out := cmd.OutOrStdout()
			if len(results) == 0 {
				fmt.Fprintf(out, "No results for %q\n", query)
				if !session.cfg.Configured() {
					fmt.Fprintln(cmd.ErrOrStderr(), "OMDb API key not set; run `boxoffice config init` or export OMDB_API_KEY.")
				}
				return nil
			}
			fmt.Fprintln(out, renderSearchResults(results, session.cfg.Display.ShowPosters))
			return nil
		},
	}

	cmd.Flags().StringVar(&mediaType, "type", "", "Restrict results to movie, series, or episode")
	cmd.Flags().StringVar(&year, "year", "", "Restrict results to a release year")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
	return cmd
}

func renderSearchResults(results []omdb.SearchResult, showPosters bool) string {
	columns := []column{
		{header: "ID"},
		{header: "Title"},
		{header: "Year", align: alignRight},
		{header: "Type"},
	}
	if showPosters {
		columns = append(columns, column{header: "Poster", maxWidth: posterColumnWidth})
	}

	rows := make([][]string, 0, len(results))
	for _, result := range results {
		row := []string{
			result.ExternalID,
			result.Title,
			textutil.DisplayValue(result.Year),
			textutil.MediaTypeLabel(result.MediaType),
		}
		if showPosters {
			row = append(row, textutil.DisplayValue(result.PosterURL))
		}
		rows = append(rows, row)
	}
	return renderTable(columns, rows)
}
