package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/uberjump/internal/storage"
)

// withFlags points the global flags at a scratch directory for one test.
func withFlags(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	saved := []string{flagDBPath, flagConfig, flagLevelsDir, flagLogFile}
	t.Cleanup(func() {
		flagDBPath, flagConfig, flagLevelsDir, flagLogFile = saved[0], saved[1], saved[2], saved[3]
	})

	flagDBPath = filepath.Join(dir, "progress.db")
	flagConfig = ""
	flagLevelsDir = filepath.Join(dir, "levels")
	flagLogFile = filepath.Join(dir, "uberjump.log")

	if err := os.MkdirAll(flagLevelsDir, 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	return dir
}

func TestRunPlayMissingLevelReturnsExitCode(t *testing.T) {
	withFlags(t)

	if code := runPlay([]string{"nowhere"}); code != 1 {
		t.Fatalf("runPlay() = %d, expected 1", code)
	}

	data, err := os.ReadFile(flagLogFile)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "cannot load level") || !strings.Contains(string(data), "nowhere") {
		t.Errorf("log file missing the load error:\n%s", data)
	}
	if _, err := os.Stat(flagDBPath); !os.IsNotExist(err) {
		t.Error("progress database should not be opened when the level fails to load")
	}
}

func TestRunLevels(t *testing.T) {
	withFlags(t)

	if code := runLevels(nil); code != 0 {
		t.Errorf("runLevels() on an empty directory = %d, expected 0", code)
	}

	level := "ID: tower\nName: Tower\nEndY: 1200\n"
	if err := os.WriteFile(filepath.Join(flagLevelsDir, "tower.yaml"), []byte(level), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if code := runLevels(nil); code != 0 {
		t.Errorf("runLevels() = %d, expected 0", code)
	}
}

func TestRunScoresClosesStore(t *testing.T) {
	withFlags(t)

	if code := runScores([]string{"level01"}); code != 0 {
		t.Fatalf("runScores() = %d, expected 0", code)
	}

	// The command has released the database, so it can be reopened and cleared.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		t.Fatalf("Open() after runScores failed: %v", err)
	}
	if _, err := store.SaveScore("level01", 900); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	flagClear = true
	t.Cleanup(func() { flagClear = false })
	if code := runScores([]string{"level01"}); code != 0 {
		t.Fatalf("runScores --clear = %d, expected 0", code)
	}

	store, err = storage.Open(flagDBPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	if scores, _ := store.TopScores("level01", 10); len(scores) != 0 {
		t.Errorf("expected history cleared, got %d runs", len(scores))
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in, expected string
	}{
		{"~/.uberjump/progress.db", filepath.Join(home, ".uberjump/progress.db")},
		{"/tmp/progress.db", "/tmp/progress.db"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := expandHome(tc.in); got != tc.expected {
			t.Errorf("expandHome(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}
