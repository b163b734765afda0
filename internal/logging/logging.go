// Package logging builds the run logger: one slog.Logger whose output lands
// on stdout and in a persistent log file, so a run is inspectable live and
// after the fact.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// New opens the log file at path (created if absent, appended across runs)
// and returns a logger fanned out to stdout and that file, plus a close
// function for the file. An empty path logs to stdout only.
func New(path string) (*slog.Logger, func() error, error) {
	if path == "" {
		return newLogger(os.Stdout), func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	return newLogger(io.MultiWriter(os.Stdout, f)), f.Close, nil
}

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
}
