package ratings

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// NotAvailable is returned by AverageRating when no usable rating remains.
const NotAvailable = "N/A"

// FormatRating normalizes a single rating string onto the 0-100 scale.
//
// Detection order matters: "/100" also contains "/10", so the ten-point branch
// only applies when "/100" is absent. Strings that match no notation are
// returned unchanged.
func FormatRating(raw string) string {
	perTen := strings.Contains(raw, "/10")
	perHundred := strings.Contains(raw, "/100")

	switch {
	case perTen && !perHundred:
		normalized := strings.Replace(raw, ",", ".", 1)
		value, ok := parseLeadingFloat(normalized)
		if !ok {
			return raw
		}
		return formatNumber(value * 10)
	case perHundred:
		head, _, _ := strings.Cut(raw, "/")
		return strings.TrimSpace(head)
	case strings.Contains(raw, "%"):
		return strings.TrimSpace(strings.Replace(raw, "%", "", 1))
	default:
		return raw
	}
}

// AverageRating normalizes every value with FormatRating and returns the mean.
// Whole means are rendered without decimals, others with exactly one decimal.
// NotAvailable is returned when no value could be parsed.
func AverageRating(values []string) string {
	var sum float64
	var count int
	for _, raw := range values {
		value, ok := parseLeadingFloat(FormatRating(raw))
		if !ok {
			continue
		}
		sum += value
		count++
	}
	if count == 0 {
		return NotAvailable
	}
	average := sum / float64(count)
	if average == math.Trunc(average) {
		return formatNumber(average)
	}
	rounded := math.Round(average*10) / 10
	return strconv.FormatFloat(rounded, 'f', 1, 64)
}

func formatNumber(value float64) string {
	if value == 0 {
		// avoid "-0"
		return "0"
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// parseLeadingFloat reads the longest numeric prefix of s, ignoring leading
// whitespace and any trailing text ("7.5/10" yields 7.5). It reports false when
// no digits are present or the value is not finite.
func parseLeadingFloat(s string) (float64, bool) {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := 0
	for end < len(s) && isDigit(s[end]) {
		end++
		digits++
	}
	if end < len(s) && s[end] == '.' {
		end++
		for end < len(s) && isDigit(s[end]) {
			end++
			digits++
		}
	}
	if digits == 0 {
		return 0, false
	}
	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		exp := end + 1
		if exp < len(s) && (s[exp] == '+' || s[exp] == '-') {
			exp++
		}
		start := exp
		for exp < len(s) && isDigit(s[exp]) {
			exp++
		}
		if exp > start {
			end = exp
		}
	}

	value, err := strconv.ParseFloat(s[:end], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, false
	}
	return value, true
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
