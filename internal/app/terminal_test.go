package app

import (
	"context"
	"testing"
	"time"

	"headerlife/internal/core"
	"headerlife/internal/header"

	"github.com/gdamore/tcell/v2"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(s.Fini)
	s.SetSize(w, h)
	return s
}

func runUntilDone(t *testing.T, screen tcell.Screen, opts TerminalOptions) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := RunTerminal(ctx, screen, opts); err != nil {
		t.Fatalf("RunTerminal: %v", err)
	}
	if ctx.Err() != nil {
		t.Fatal("terminal loop did not stop on the quit key")
	}
}

func quietConfig() header.Config {
	cfg := header.DefaultConfig()
	cfg.SeedProbability = 0
	cfg.Fade = false
	cfg.TickInterval = time.Hour
	return cfg
}

func TestRunTerminalPaintsUnderMouse(t *testing.T) {
	screen := newScreen(t, 20, 6)
	screen.InjectMouse(4, 2, tcell.ButtonNone, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	runUntilDone(t, screen, TerminalOptions{Header: quietConfig()})

	_, _, style, _ := screen.GetContent(4, 2)
	if _, bg, _ := style.Decompose(); bg != tcell.NewRGBColor(0, 0, 0) {
		t.Fatalf("painted cell background=%v, expected black", bg)
	}
	_, _, style, _ = screen.GetContent(0, 0)
	if _, bg, _ := style.Decompose(); bg != tcell.NewRGBColor(255, 255, 255) {
		t.Fatalf("untouched cell background=%v, expected white", bg)
	}
}

func TestRunTerminalClearKey(t *testing.T) {
	screen := newScreen(t, 20, 6)
	screen.InjectMouse(4, 2, tcell.ButtonNone, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'c', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	runUntilDone(t, screen, TerminalOptions{Header: quietConfig()})

	_, _, style, _ := screen.GetContent(4, 2)
	if _, bg, _ := style.Decompose(); bg != tcell.NewRGBColor(255, 255, 255) {
		t.Fatalf("cleared cell background=%v, expected white", bg)
	}
}

func TestRunTerminalClickNavigates(t *testing.T) {
	cfg := quietConfig()
	cfg.Special = true
	cfg.Target = "https://example.com"
	var targets []string
	nav := core.NavigatorFunc(func(target string) error {
		targets = append(targets, target)
		return nil
	})

	screen := newScreen(t, 20, 6)
	screen.InjectMouse(3, 3, tcell.Button1, tcell.ModNone)
	screen.InjectMouse(18, 1, tcell.ButtonNone, tcell.ModNone)
	screen.InjectMouse(18, 1, tcell.Button1, tcell.ModNone)
	screen.InjectMouse(18, 1, tcell.Button1, tcell.ModNone)
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	runUntilDone(t, screen, TerminalOptions{Header: cfg, Navigator: nav})

	if len(targets) != 1 || targets[0] != "https://example.com" {
		t.Fatalf("navigations=%v, expected one to the target", targets)
	}
}

func TestRunTerminalInvalidConfig(t *testing.T) {
	cfg := quietConfig()
	cfg.SeedProbability = 2
	screen := newScreen(t, 10, 4)
	if err := RunTerminal(context.Background(), screen, TerminalOptions{Header: cfg}); err == nil {
		t.Fatal("expected configuration error")
	}
}
