package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"boxoffice/internal/logging"
	"boxoffice/internal/omdb"
	"boxoffice/internal/ratings"
	"boxoffice/internal/textutil"
)

// detailsView is the JSON shape of the details command.
type detailsView struct {
	Details *omdb.DetailRecord `json:"details"`
	Summary *ratings.Summary   `json:"summary"`
}

func newDetailsCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "details <imdb-id>",
		Short: "Show the full record and rating summary for a title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := ctx.openLookupSession(cmd)
			if err != nil {
				return err
			}
			id := strings.TrimSpace(args[0])
			record := session.client.GetDetails(session.ctx, id, session.cfg.OMDb.APIKey)

			var summary *ratings.Summary
			if record != nil {
				summary = ratings.Summarize(record.Ratings)
			}
			if summary != nil {
				logging.WithContext(session.ctx, session.logger).Debug("rating summary computed",
					logging.String("external_id", id),
					logging.String("average", summary.Average),
					logging.Float64("percentage", summary.Percentage),
				)
			}
			if err := session.ctx.Err(); err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, detailsView{Details: record, Summary: summary})
			}

			out := cmd.OutOrStdout()
			if record == nil {
				fmt.Fprintf(out, "No details available for %s\n", id)
				if !session.cfg.Configured() {
					fmt.Fprintln(cmd.ErrOrStderr(), "OMDb API key not set; run `boxoffice config init` or export OMDB_API_KEY.")
				}
				return nil
			}
			colorize := colorEnabled(session.cfg, out)
			writeDetails(out, record, summary, session.cfg.Display.ShowPosters, colorize)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the record and summary as JSON")
	return cmd
}

func writeDetails(out io.Writer, record *omdb.DetailRecord, summary *ratings.Summary, showPosters, colorize bool) {
	fmt.Fprintln(out, renderHeading(record.Title, colorize))
	fmt.Fprintln(out, textutil.YearAndType(record.Year, record.Type))
	fmt.Fprintln(out)

	fields := [][2]string{
		{"IMDb ID", record.ImdbID},
		{"Rated", record.Rated},
		{"Released", record.Released},
		{"Runtime", record.Runtime},
		{"Genre", record.Genre},
		{"Director", record.Director},
		{"Writer", record.Writer},
		{"Actors", record.Actors},
		{"Language", record.Language},
		{"Country", record.Country},
		{"Awards", record.Awards},
		{"Box office", record.BoxOffice},
	}
	if record.TomatoMeter != "" {
		fields = append(fields, [2]string{"Tomatometer", record.TomatoMeter})
	}
	if record.TotalSeasons != "" {
		fields = append(fields, [2]string{"Seasons", record.TotalSeasons})
	}
	if showPosters {
		fields = append(fields, [2]string{"Poster", record.Poster})
	}
	for _, field := range fields {
		fmt.Fprintf(out, "  %-12s %s\n", field[0]+":", textutil.DisplayValue(field[1]))
	}

	if plot := textutil.DisplayValue(record.Plot); plot != textutil.Placeholder {
		fmt.Fprintln(out)
		fmt.Fprintln(out, plot)
	}

	fmt.Fprintln(out)
	if len(record.Ratings) == 0 {
		fmt.Fprintln(out, "No ratings available")
		return
	}
	fmt.Fprintln(out, renderRatingsTable(record.Ratings))
	if summary != nil {
		fmt.Fprintf(out, "Average: %s %s\n", summary.Average, renderSummaryBar(summary.Percentage, colorize))
	}
}

func renderRatingsTable(entries []ratings.Entry) string {
	columns := []column{
		{header: "Source"},
		{header: "Rating", align: alignRight},
		{header: "Score", align: alignRight},
	}
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{
			entry.Source,
			entry.Value,
			ratings.FormatRating(entry.Value),
		})
	}
	return renderTable(columns, rows)
}
