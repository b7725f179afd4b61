package app

import (
	"bytes"
	"log/slog"

	"quark/hal"
)

// halWriter feeds slog output into a HAL log sink one line at a time.
type halWriter struct {
	l hal.Logger
}

func (w halWriter) Write(p []byte) (int, error) {
	for _, line := range bytes.Split(bytes.TrimRight(p, "\n"), []byte{'\n'}) {
		w.l.WriteLineBytes(line)
	}
	return len(p), nil
}

func newLogger(l hal.Logger) *slog.Logger {
	if l == nil {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(halWriter{l: l}, nil))
}
