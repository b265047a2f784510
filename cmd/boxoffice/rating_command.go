package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"boxoffice/internal/ratings"
)

func newRatingCommand() *cobra.Command {
	ratingCmd := &cobra.Command{
		Use:         "rating",
		Short:       "Normalize rating strings to a 0-100 scale",
		Annotations: map[string]string{"skipConfigLoad": "true"},
	}

	ratingCmd.AddCommand(&cobra.Command{
		Use:   "format <raw...>",
		Short: "Normalize each rating string",
		Long:  "Normalize each rating string. \"7.5/10\" becomes 75, \"87/100\" becomes 87, \"94%\" becomes 94; anything else is printed unchanged.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, raw := range args {
				fmt.Fprintln(out, ratings.FormatRating(raw))
			}
			return nil
		},
	})

	ratingCmd.AddCommand(&cobra.Command{
		Use:   "average <raw...>",
		Short: "Average the normalized ratings",
		Long:  "Average the normalized ratings, skipping values that do not parse. Prints N/A when nothing parses.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), ratings.AverageRating(args))
			return nil
		},
	})

	return ratingCmd
}
