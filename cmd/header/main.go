//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"headerlife/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := log.New(os.Stderr, "header: ", log.LstdFlags)

	game, err := app.New(cfg, logger)
	if app.IsSurfaceError(err) {
		logger.Printf("no render surface, animation disabled: %v", err)
		return
	}
	if err != nil {
		logger.Fatalf("configure backdrop: %v", err)
	}

	ebiten.SetWindowTitle("headerlife")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal(err)
	}
}
