package main

import (
	"io"
	"math"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	"boxoffice/internal/config"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBold   = "\x1b[1m"
)

const summaryBarWidth = 20

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// colorEnabled applies the display.color setting; "auto" colors only terminals.
func colorEnabled(cfg *config.Config, writer io.Writer) bool {
	if cfg == nil {
		return shouldColorize(writer)
	}
	switch cfg.Display.Color {
	case "always":
		return true
	case "never":
		return false
	default:
		return shouldColorize(writer)
	}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// clampPercentage bounds a summary percentage to [0,100] for the fill bar.
func clampPercentage(value float64) float64 {
	switch {
	case math.IsNaN(value) || value < 0:
		return 0
	case value > 100:
		return 100
	default:
		return value
	}
}

func renderSummaryBar(percentage float64, colorize bool) string {
	pct := clampPercentage(percentage)
	filled := int(math.Round(pct / 100 * summaryBarWidth))
	bar := "[" + strings.Repeat("#", filled) + strings.Repeat(".", summaryBarWidth-filled) + "]"
	if !colorize {
		return bar
	}
	return summaryColor(pct) + bar + ansiReset
}

func summaryColor(pct float64) string {
	switch {
	case pct >= 70:
		return ansiGreen
	case pct >= 50:
		return ansiYellow
	default:
		return ansiRed
	}
}

func renderHeading(title string, colorize bool) string {
	if colorize {
		return ansiBold + title + ansiReset
	}
	return title
}
