// Package ratings converts critic scores published in different notations
// into one 0-100 scale and combines them into a single summary score.
//
// Upstream sources report ratings as "7.8/10", "76/100", "92%" or bare
// numbers. FormatRating maps each of those onto the 0-100 scale, AverageRating
// folds a list of them into one display string, and Summarize produces the
// average/percentage pair a renderer needs to draw a fill bar. All functions
// are pure and never fail: values that cannot be read are dropped from the
// average instead of surfacing as errors.
package ratings
