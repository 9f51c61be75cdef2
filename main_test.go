package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

const passingScene = `
name: pass
viewport: {width: 200, height: 200}
widget: {kind: panel, anchor: a, panel: p}
nodes:
  - id: a
    rect: {top: 10, left: 10, width: 20, height: 10}
  - id: p
    rect: {width: 30, height: 30}
expect:
  position: bottom
  alignment: left
`

func TestScenePaths(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.yaml"), passingScene)
	writeFile(t, filepath.Join(dir, "b.yml"), passingScene)
	writeFile(t, filepath.Join(dir, "notes.txt"), "")

	paths, err := scenePaths(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 2 {
		t.Errorf("paths = %v, want the two fixtures", paths)
	}

	single := filepath.Join(dir, "a.yaml")
	if paths, err := scenePaths(single); err != nil || len(paths) != 1 || paths[0] != single {
		t.Errorf("scenePaths(file) = %v, %v", paths, err)
	}

	if _, err := scenePaths(t.TempDir()); err == nil {
		t.Error("expected an error for an empty directory")
	}
	if _, err := scenePaths(filepath.Join(dir, "missing")); err == nil {
		t.Error("expected an error for a missing path")
	}
}

func TestRunScenesReportsFailures(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "pass.yaml"), passingScene)
	if err := runScenes(dir, false, logger); err != nil {
		t.Fatalf("runScenes: %v", err)
	}

	failing := strings.Replace(passingScene, "position: bottom", "position: top", 1)
	writeFile(t, filepath.Join(dir, "fail.yaml"), failing)
	err := runScenes(dir, true, logger)
	if err == nil || !strings.Contains(err.Error(), "1 of 2 scenes failed") {
		t.Errorf("err = %v, want one failure", err)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"loud":  slog.LevelInfo,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
