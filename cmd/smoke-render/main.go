// Command smoke-render runs the smoke gate headless for a fixed number of
// frames and writes the rendered field as PNG.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"smokegate/internal/app"
	"smokegate/internal/core"
	"smokegate/internal/telemetry"
)

func main() {
	flags := app.NewConfig()
	flags.Bind(flag.CommandLine)
	frames := flag.Int("frames", 120, "frames to simulate")
	dt := flag.Float64("dt", 1.0/60, "fixed step in seconds")
	out := flag.String("out", "smoke.png", "PNG written after the last frame")
	every := flag.Int("every", 0, "also write a numbered PNG every N frames (0 disables)")
	strokeSpec := flag.String("stroke", "", "scripted drag x0,y0,x1,y1 in surface pixels")
	strokeFrames := flag.Int("stroke-frames", 10, "frames the scripted drag lasts")
	writeConfig := flag.String("write-config", "", "write the effective YAML config to this path")
	debug := flag.Bool("debug", false, "log at debug level")
	var overrides app.Overrides
	flag.Var(&overrides, "set", "physics override in key=value form (repeatable)")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := flags.Resolve()
	if err != nil {
		log.Fatal(err)
	}
	stroke, err := app.ParseStroke(*strokeSpec, *strokeFrames)
	if err != nil {
		log.Fatal(err)
	}
	if *writeConfig != "" {
		if err := cfg.WriteYAML(*writeConfig); err != nil {
			log.Fatal(err)
		}
	}

	rec, err := telemetry.NewRecorder(cfg.Telemetry.Path, cfg.Telemetry.Every, logger)
	if err != nil {
		log.Fatal(err)
	}
	defer rec.Close()

	session := app.NewSession(context.Background(), cfg, rec, logger)
	defer session.Close()
	session.Wait()
	session.Tune(overrides.Map())

	g := session.World().Grid()
	logger.Info("rendering",
		"grid", fmt.Sprintf("%dx%d@%d", g.Cols(), g.Rows(), g.CellSize()),
		"source", session.Source().String(),
		"frames", *frames,
		"dt", *dt)

	var loop *core.Loop
	physics := func(step float64) {
		stroke.Apply(session, int(loop.Frames()))
		session.Step(step)
	}
	render := func() {
		n := int(loop.Frames()) + 1
		if *every <= 0 || n%*every != 0 {
			return
		}
		if err := writePNG(numbered(*out, n), session.Render()); err != nil {
			logger.Warn("snapshot failed", "frame", n, "err", err)
		}
	}
	loop = core.NewLoop(cfg.TPS, physics, render)
	loop.RunFrames(*frames, *dt)

	if err := writePNG(*out, session.Render()); err != nil {
		log.Fatal(err)
	}
	stats := session.World().Grid().Stats()
	logger.Info("done",
		"out", *out,
		"steps", session.World().Steps(),
		"max_divergence", stats.MaxDivergence,
		"kinetic_energy", stats.KineticEnergy,
		"smoke_mass", stats.SmokeMass,
		"telemetry_rows", rec.Written())
}

func numbered(path string, frame int) string {
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s_%04d%s", strings.TrimSuffix(path, ext), frame, ext)
}

func writePNG(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
