package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/uberjump/internal/config"
	"github.com/vovakirdan/uberjump/internal/core"
	"github.com/vovakirdan/uberjump/internal/levels"
	"github.com/vovakirdan/uberjump/internal/progress"
	"github.com/vovakirdan/uberjump/internal/storage"
)

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(p string) string {
	if !strings.HasPrefix(p, "~") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[1:])
}

// newLogger returns a logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "uberjump",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// fileLogger opens the --log-file for use while the terminal belongs to the
// UI. When the file cannot be opened, logs are discarded.
func fileLogger() (*log.Logger, func()) {
	if flagLogFile == "" {
		return newLogger(io.Discard), func() {}
	}
	p := expandHome(flagLogFile)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return newLogger(io.Discard), func() {}
	}
	f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return newLogger(io.Discard), func() {}
	}
	return newLogger(f), func() { f.Close() }
}

// levelSource returns the directory given by --levels or the built-in set.
func levelSource() fs.FS {
	if flagLevelsDir != "" {
		return os.DirFS(expandHome(flagLevelsDir))
	}
	return levels.Builtin()
}

// loadTunables loads --config, or the default search path.
func loadTunables() (config.JumpConfig, error) {
	cfg, err := config.LoadJump(flagConfig)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// openProgress opens the progress database. When it cannot be opened the
// game keeps progress in memory and says so in the log. The returned store
// is nil in that case.
func openProgress(logger *log.Logger) (*storage.Store, *progress.Tracker) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("progress will not be saved",
			"db", flagDBPath,
			"error", fmt.Errorf("%w: %v", progress.ErrStorageUnavailable, err))
		return nil, progress.Load(progress.NewMemoryBackend(progress.Record{}), logger)
	}
	return store, progress.Load(store, logger)
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}
