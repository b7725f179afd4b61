package app

import (
	"errors"
	"fmt"
	"log/slog"

	"quark/quarkgl"
	"quark/quarkgl/snapshot"
)

// ErrQuit is returned by the step function once the user asks to exit.
var ErrQuit = errors.New("quit")

const maxDimension = 4096

// Config selects what the viewer draws and how.
type Config struct {
	Width  int
	Height int

	// Model names an entry of Models.
	Model     string
	Primitive quarkgl.Primitive

	HUD bool

	// Snapshot, when set, receives the first rendered frame. The extension
	// picks the encoder.
	Snapshot string

	ClearColor quarkgl.Color

	// SpinRate is the model rotation in radians per millisecond tick.
	SpinRate float32

	// Logger overrides the default logger that writes to the HAL log sink.
	Logger *slog.Logger
}

// DefaultConfig is an 800x450 spinning cube on a dark grey background.
func DefaultConfig() Config {
	return Config{
		Width:      800,
		Height:     450,
		Model:      "cube",
		Primitive:  quarkgl.Triangles,
		HUD:        true,
		ClearColor: quarkgl.RGB(0x33, 0x33, 0x33),
		SpinRate:   0.001,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 || c.Width > maxDimension || c.Height > maxDimension {
		return fmt.Errorf("app: invalid size %dx%d", c.Width, c.Height)
	}
	if _, ok := Models[c.Model]; !ok {
		return fmt.Errorf("app: unknown model %q", c.Model)
	}
	if c.Primitive > quarkgl.Points {
		return fmt.Errorf("app: invalid primitive %d", c.Primitive)
	}
	if c.Snapshot != "" {
		if _, err := snapshot.FormatFromPath(c.Snapshot); err != nil {
			return fmt.Errorf("app: snapshot %q: %w", c.Snapshot, err)
		}
	}
	return nil
}
