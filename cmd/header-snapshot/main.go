package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"headerlife/internal/header"
	"headerlife/internal/render"
)

func main() {
	cfg := header.DefaultConfig()
	cfg.Bind(flag.CommandLine)
	width := flag.Int("width", 960, "surface width in pixels")
	height := flag.Int("height", 180, "surface height in pixels")
	ticks := flag.Int("ticks", 50, "generations to simulate")
	every := flag.Int("every", 10, "write a frame every N generations (0 writes only the last)")
	out := flag.String("out", "frames", "output directory")
	thumb := flag.Bool("thumb", false, "also write the final grid at one pixel per cell")
	flag.Parse()

	surface := render.NewImageSurface(*width, *height)
	b, err := header.New(cfg, surface)
	if err != nil {
		log.Fatalf("configure backdrop: %v", err)
	}
	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatalf("create output dir: %v", err)
	}

	for i := 1; i <= *ticks; i++ {
		b.Tick()
		if (*every > 0 && i%*every == 0) || i == *ticks {
			path := filepath.Join(*out, fmt.Sprintf("frame-%04d.png", i))
			if err := writePNG(path, surface.Image()); err != nil {
				log.Fatalf("write frame: %v", err)
			}
		}
	}
	if *thumb {
		w, h := b.Grid().Size()
		img := render.CellImage(w, h, b.Grid().Cells(), color.Black, color.White)
		if err := writePNG(filepath.Join(*out, "grid.png"), img); err != nil {
			log.Fatalf("write thumbnail: %v", err)
		}
	}
	st := b.Stats()
	log.Printf("generation %d: population %d on %dx%d grid", st.Generation, st.Population, st.Grid.W, st.Grid.H)
}

func writePNG(path string, img image.Image) error {
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
