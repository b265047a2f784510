package textutil

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Placeholder is shown in place of missing values.
const Placeholder = "-"

// MediaTypeLabel title-cases an OMDb media type ("series" becomes "Series").
func MediaTypeLabel(mediaType string) string {
	mediaType = strings.TrimSpace(mediaType)
	if mediaType == "" {
		return "Unknown"
	}
	return cases.Title(language.Und).String(mediaType)
}

// YearAndType renders the "1999 - Movie" subtitle used under a title.
func YearAndType(year, mediaType string) string {
	year = strings.TrimSpace(year)
	if year == "" {
		return MediaTypeLabel(mediaType)
	}
	return year + " - " + MediaTypeLabel(mediaType)
}

// DisplayValue returns Placeholder for empty values and the OMDb "N/A" marker.
func DisplayValue(value string) string {
	value = strings.TrimSpace(value)
	if value == "" || value == "N/A" {
		return Placeholder
	}
	return value
}

// Truncate shortens value to at most limit runes, marking the cut with "…".
func Truncate(value string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(value) <= limit {
		return value
	}
	if limit == 1 {
		return "…"
	}
	runes := []rune(value)
	return string(runes[:limit-1]) + "…"
}
