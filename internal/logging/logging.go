// Package logging builds the slog logger used by the menu and commands,
// and adapts it into an observer of cipher transforms.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/idelchi/govig/internal/config"
	"github.com/idelchi/govig/internal/vigenere"
)

// New creates a logger writing to cfg.File. An empty file discards all records.
// The returned function closes the log file.
func New(cfg config.Log) (*slog.Logger, func() error, error) {
	if cfg.File == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() error { return nil }, nil
	}

	if dir := filepath.Dir(cfg.File); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("creating log directory: %w", err)
		}
	}

	file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644) //nolint:gosec // path is user configuration
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	return slog.New(NewHandler(file, cfg)), file.Close, nil
}

// NewHandler returns a text or JSON handler for w at the configured level.
func NewHandler(w io.Writer, cfg config.Log) slog.Handler {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	if strings.EqualFold(cfg.Format, "json") {
		return slog.NewJSONHandler(w, opts)
	}

	return slog.NewTextHandler(w, opts)
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Observer logs every cipher transform.
type Observer struct {
	Logger *slog.Logger
}

// Observe implements vigenere.Observer.
func (o Observer) Observe(e vigenere.Event) {
	o.Logger.Info("text "+e.Op.String()+"ed", "letters", e.Letters, "key_length", e.KeyLength)
}
