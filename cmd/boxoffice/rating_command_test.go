package main

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestRatingFormatCommand(t *testing.T) {
	stdout, _, err := runCLI(t, []string{"rating", "format", "7/10", "87/100", "94%", "PG-13"}, "")
	if err != nil {
		t.Fatalf("rating format: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	want := []string{"70", "87", "94", "PG-13"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %q", len(want), stdout)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestRatingAverageCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "mixed", args: []string{"7.5/10", "87/100", "94%"}, want: "85.3"},
		{name: "whole", args: []string{"8/10", "90%"}, want: "85"},
		{name: "nothing parses", args: []string{"abc", "N/A"}, want: "N/A"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := runCLI(t, append([]string{"rating", "average"}, tt.args...), "")
			if err != nil {
				t.Fatalf("rating average: %v", err)
			}
			if got := strings.TrimSpace(stdout); got != tt.want {
				t.Fatalf("average = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRatingCommandSkipsConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.toml")
	writeRaw(t, path, "not = [valid")
	if _, _, err := runCLI(t, []string{"rating", "format", "50%"}, path); err != nil {
		t.Fatalf("rating format with broken config: %v", err)
	}
}
