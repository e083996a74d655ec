package cmd

import (
	"io"
	"log/slog"
	"os"
)

const (
	envLog     = "FENCEDIT_LOG"
	envLogFile = "FENCEDIT_LOG_FILE"
)

// newLogger returns a JSON logger enabled by FENCEDIT_LOG_FILE (appending to
// that file) or a truthy FENCEDIT_LOG (writing to stderr). Otherwise all
// records are discarded. The returned func releases the log file.
func newLogger(stderr io.Writer) (*slog.Logger, func()) {
	opts := &slog.HandlerOptions{Level: slog.LevelDebug}

	if lf := os.Getenv(envLogFile); len(lf) != 0 {
		f, err := os.OpenFile(lf, os.O_CREATE|os.O_APPEND|os.O_WRONLY, fileMode)
		if err == nil {
			return slog.New(slog.NewJSONHandler(f, opts)), func() { _ = f.Close() }
		}
	}

	if v := os.Getenv(envLog); len(v) != 0 && v != "0" && v != "false" {
		return slog.New(slog.NewJSONHandler(stderr, opts)), func() {}
	}

	return slog.New(slog.NewJSONHandler(io.Discard, nil)), func() {}
}
