package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"headerlife/internal/app"
	"headerlife/internal/header"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := header.DefaultConfig()
	cfg.Bind(flag.CommandLine)
	logPath := flag.String("log", "", "append log output to this file instead of discarding it")
	flag.Parse()

	// The terminal is the display, so logs go to a file or nowhere.
	logger := log.New(io.Discard, "header-term: ", log.LstdFlags)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("open log: %v", err)
		}
		defer f.Close()
		logger.SetOutput(f)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Printf("no terminal screen, animation disabled: %v", err)
		return
	}
	if err := screen.Init(); err != nil {
		log.Printf("no terminal screen, animation disabled: %v", err)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = app.RunTerminal(ctx, screen, app.TerminalOptions{
		Header:    cfg,
		Navigator: app.BrowserNavigator{Logger: logger},
		Logger:    logger,
	})
	screen.Fini()
	if errors.Is(err, header.ErrSurfaceUnavailable) {
		log.Printf("animation disabled: %v", err)
		return
	}
	if err != nil {
		log.Fatalf("run: %v", err)
	}
}

