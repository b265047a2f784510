package main

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
)

type cliTestEnv struct {
	configPath string
	baseDir    string
	server     *httptest.Server
	calls      *atomic.Int32
}

// setupCLITestEnv isolates HOME and the working directory, starts a fake
// OMDb server, and writes a config pointing at it.
func setupCLITestEnv(t *testing.T, apiKey string, handler http.HandlerFunc) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	workDir := filepath.Join(base, "work")
	for _, dir := range []string{homeDir, workDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("OMDB_API_KEY", "")
	t.Chdir(workDir)

	calls := &atomic.Int32{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if handler == nil {
			http.Error(w, "unexpected request", http.StatusTeapot)
			return
		}
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	configPath := filepath.Join(homeDir, ".config", "boxoffice", "config.toml")
	writeTestConfig(t, configPath, apiKey, server.URL)

	return &cliTestEnv{
		configPath: configPath,
		baseDir:    base,
		server:     server,
		calls:      calls,
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTestConfig(t *testing.T, path, apiKey, baseURL string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	content := fmt.Sprintf(
		"[omdb]\napi_key = %q\nbase_url = %q\n\n[lookup]\ntimeout_seconds = 5\nmax_attempts = 3\n\n[logging]\nlevel = \"error\"\n\n[display]\ncolor = \"never\"\n",
		apiKey,
		baseURL,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func requireNotContains(t *testing.T, output, substr string) {
	t.Helper()
	if strings.Contains(output, substr) {
		t.Fatalf("expected %q not to contain %q", output, substr)
	}
}
