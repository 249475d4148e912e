// Package logging configures the application logger.
//
// The terminal belongs to the UI, so logs go to a file under the XDG
// state directory. Tail it in a second terminal when something
// misbehaves.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}

// LogPath resolves the log file path in priority order:
// 1. BOOKWORM_LOG environment variable
// 2. $XDG_STATE_HOME/bookworm/bookworm.log
// 3. ~/.local/state/bookworm/bookworm.log
func LogPath() (string, error) {
	if p := os.Getenv("BOOKWORM_LOG"); p != "" {
		return p, ensureDir(p)
	}

	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}

	p := filepath.Join(stateHome, "bookworm", "bookworm.log")
	return p, ensureDir(p)
}

// New opens the log file and returns a logger writing to it, plus a
// close func for shutdown. A broken log destination falls back to a
// disabled logger rather than taking the app down.
func New() (zerolog.Logger, func() error) {
	path, err := LogPath()
	if err != nil {
		return zerolog.Nop(), func() error { return nil }
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), func() error { return nil }
	}

	level := zerolog.InfoLevel
	if lv, err := zerolog.ParseLevel(os.Getenv("BOOKWORM_LOG_LEVEL")); err == nil && lv != zerolog.NoLevel {
		level = lv
	}

	log := zerolog.New(f).Level(level).With().Timestamp().Logger()
	return log, f.Close
}

// NewWriter returns a logger writing to w, for tests and tooling.
func NewWriter(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}

func ensureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
