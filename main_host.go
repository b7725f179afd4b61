package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"quark/app"
	"quark/hal"
	"quark/quarkgl"
)

func main() {
	var hcfg hal.HeadlessConfig
	var debug bool
	var mode string
	cfg := app.DefaultConfig()

	flag.BoolVar(&hcfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&hcfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&hcfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "Framebuffer width in pixels.")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "Framebuffer height in pixels.")
	flag.StringVar(&cfg.Model, "model", cfg.Model, "Model to show: "+strings.Join(app.ModelNames(), "|")+".")
	flag.StringVar(&mode, "mode", cfg.Primitive.String(), "Primitive mode: triangles|lines|points.")
	flag.BoolVar(&cfg.HUD, "hud", cfg.HUD, "Draw the on-screen overlay.")
	flag.BoolVar(&debug, "debug", false, "Log per-frame render stats to stderr.")
	flag.StringVar(&cfg.Snapshot, "snapshot", "", "Write the first frame to this .png, .bmp or .tiff file.")
	flag.Parse()

	prim, err := quarkgl.ParsePrimitive(mode)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
	cfg.Primitive = prim
	if debug {
		cfg.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}

	hc := hal.Config{Width: cfg.Width, Height: cfg.Height, Format: hal.PixelFormatRGBA8888}
	newApp := func(h hal.HAL) (func() error, error) {
		return app.NewWithConfig(h, cfg)
	}

	if hcfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = hal.RunHeadless(ctx, hc, newApp, hcfg)
	} else {
		err = hal.RunWindow(hc, newApp)
	}
	if err != nil && !errors.Is(err, app.ErrQuit) && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
