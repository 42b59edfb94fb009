package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Options selects where and how log lines are written.
type Options struct {
	File   string // empty discards everything
	Level  string
	Format string // "json" or "human"
}

// New builds the session logger. The returned closer must be called on exit.
// Logs never go to stdout because the interactive screen owns it.
func New(opt Options) (zerolog.Logger, io.Closer, error) {
	if opt.File == "" {
		return zerolog.Nop(), io.NopCloser(nil), nil
	}

	if err := os.MkdirAll(filepath.Dir(opt.File), 0o755); err != nil {
		return zerolog.Nop(), io.NopCloser(nil), fmt.Errorf("mkdir: %w", err)
	}
	f, err := os.OpenFile(opt.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), io.NopCloser(nil), fmt.Errorf("open log file: %w", err)
	}

	return NewWriter(f, opt), f, nil
}

// NewWriter builds a logger on top of an existing writer.
func NewWriter(w io.Writer, opt Options) zerolog.Logger {
	level, err := zerolog.ParseLevel(opt.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	output := w
	if opt.Format == "human" {
		output = zerolog.ConsoleWriter{Out: w, NoColor: true}
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}
