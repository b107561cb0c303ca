package app

import (
	"context"
	"log"
	"time"

	"headerlife/internal/core"
	"headerlife/internal/header"
	"headerlife/internal/render"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

// TerminalOptions configures RunTerminal.
type TerminalOptions struct {
	Header    header.Config
	Navigator core.Navigator
	Logger    *log.Logger
}

// RunTerminal animates a backdrop on an initialised tcell screen until the
// user quits or ctx is cancelled. Every character cell is one grid cell.
//
// Events are pumped on a separate goroutine but only the loop goroutine
// touches the backdrop, so ticks and pointer events never interleave.
func RunTerminal(ctx context.Context, screen tcell.Screen, opts TerminalOptions) error {
	cfg := opts.Header
	cfg.CellSize, cfg.CellBorder = 1, 0

	surface := render.NewTerminal(screen)
	var hopts []header.Option
	if opts.Navigator != nil {
		hopts = append(hopts, header.WithNavigator(opts.Navigator))
	}
	b, err := header.New(cfg, surface, hopts...)
	if err != nil {
		return err
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	surface.Show()

	g, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, 32)
	quit := make(chan struct{})

	g.Go(func() error {
		screen.ChannelEvents(events, quit)
		return nil
	})
	g.Go(func() error {
		defer close(quit)
		loop := terminalLoop{backdrop: b, screen: screen, logger: opts.Logger}
		ticker := time.NewTicker(cfg.TickInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				b.Tick()
			case ev, ok := <-events:
				if !ok || !loop.handle(ev) {
					return nil
				}
			}
			surface.Show()
		}
	})
	return g.Wait()
}

type terminalLoop struct {
	backdrop *header.Backdrop
	screen   tcell.Screen
	logger   *log.Logger
	pressed  bool
}

// handle applies one event and reports whether the loop should continue.
func (l *terminalLoop) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
			return false
		case ev.Rune() == 'r':
			l.backdrop.Reset(time.Now().UnixNano())
		case ev.Rune() == 'c':
			l.backdrop.Clear()
		}
	case *tcell.EventResize:
		l.screen.Sync()
	case *tcell.EventMouse:
		x, y := ev.Position()
		l.backdrop.OnPointerMove(x, y)
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !l.pressed {
			if _, err := l.backdrop.OnPointerClick(x, y); err != nil && l.logger != nil {
				l.logger.Printf("special cell: %v", err)
			}
		}
		l.pressed = down
	}
	return true
}
