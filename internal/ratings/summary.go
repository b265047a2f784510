package ratings

// Entry is one source's score for a title in the source's own notation
// (for example {"Internet Movie Database", "7.8/10"}).
type Entry struct {
	Source string `json:"Source"`
	Value  string `json:"Value"`
}

// Summary is the aggregated view of a rating list.
type Summary struct {
	// Average is the AverageRating display string ("80", "75.5" or "N/A").
	Average string `json:"average"`
	// Percentage is Average as a number, 0 when Average is not numeric.
	Percentage float64 `json:"percentage"`
}

// Summarize aggregates entries into a Summary. It returns nil when there is
// nothing to show, which callers must keep distinct from a 0% score.
func Summarize(entries []Entry) *Summary {
	if len(entries) == 0 {
		return nil
	}
	values := make([]string, 0, len(entries))
	for _, entry := range entries {
		values = append(values, entry.Value)
	}
	average := AverageRating(values)
	percentage, ok := parseLeadingFloat(average)
	if !ok {
		percentage = 0
	}
	return &Summary{Average: average, Percentage: percentage}
}
