package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	configPath string
	baseDir    string
	dataDir    string
	dropDir    string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	env := &cliTestEnv{
		baseDir: base,
		dataDir: filepath.Join(base, "data"),
		dropDir: filepath.Join(base, "drop"),
	}
	env.configPath = filepath.Join(base, "config.toml")
	writeTestConfig(t, env.configPath, env)
	return env
}

func writeTestConfig(t *testing.T, path string, env *cliTestEnv) {
	t.Helper()
	content := fmt.Sprintf(
		"[paths]\ndata_dir = %q\nlog_dir = %q\n\n[watch]\ndir = %q\n",
		env.dataDir,
		filepath.Join(env.baseDir, "logs"),
		env.dropDir,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func writeTranscriptFile(t *testing.T, path string, durationMinutes float64, lines ...string) string {
	t.Helper()
	var chunks []string
	for _, line := range lines {
		chunks = append(chunks, fmt.Sprintf(`{"text": %q, "final": true}`, line))
	}
	content := fmt.Sprintf(`{"duration_minutes": %g, "chunks": [%s]}`, durationMinutes, strings.Join(chunks, ", "))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write transcript: %v", err)
	}
	return path
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	flags := []string{}
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
