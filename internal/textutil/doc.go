// Package textutil provides small text helpers for presenting lookup results:
// media type labels, placeholder handling for OMDb's "N/A" marker, and
// rune-aware truncation for table cells.
package textutil
