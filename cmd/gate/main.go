//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"smokegate/internal/app"
	"smokegate/internal/telemetry"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flags := app.NewConfig()
	flags.Bind(flag.CommandLine)
	debug := flag.Bool("debug", false, "log at debug level")
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
	rec, err := telemetry.NewRecorder(cfg.Telemetry.Path, cfg.Telemetry.Every, logger)
	if err != nil {
		log.Fatal(err)
	}
	defer rec.Close()

	session := app.NewSession(context.Background(), cfg, rec, logger)
	defer session.Close()
	game := app.New(session, cfg.HUD, logger)

	w, h := app.WindowSize(cfg)
	ebiten.SetWindowTitle("smokegate")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
