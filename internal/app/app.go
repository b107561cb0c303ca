//go:build ebiten

package app

import (
	"errors"
	"image"
	"log"
	"time"

	"headerlife/internal/core"
	"headerlife/internal/header"
	"headerlife/internal/render"
	"headerlife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a header backdrop to the ebiten.Game interface.
type Game struct {
	backdrop *header.Backdrop
	canvas   *render.Canvas
	overlay  *ui.Overlay
	ticker   *core.FixedStep
	logger   *log.Logger

	paused   bool
	tickOnce bool
	lastPtr  image.Point
	hasPtr   bool
}

// New constructs a Game drawing a backdrop into a canvas of the configured
// window size.
func New(cfg *Config, logger *log.Logger) (*Game, error) {
	canvas := render.NewCanvas(cfg.Width, cfg.Height)
	nav := BrowserNavigator{Logger: logger}
	b, err := header.New(cfg.Header, canvas, header.WithNavigator(nav))
	if err != nil {
		return nil, err
	}
	g := &Game{
		backdrop: b,
		canvas:   canvas,
		overlay:  ui.NewOverlay(b),
		ticker:   core.NewFixedInterval(cfg.Header.TickInterval),
		logger:   logger,
	}
	if cfg.Overlay {
		g.overlay.Toggle()
	}
	return g, nil
}

// Reset reinitializes the backdrop with the provided seed.
func (g *Game) Reset(seed int64) {
	g.backdrop.Reset(seed)
	g.tickOnce = false
}

// Update handles input and advances the backdrop whenever the tick interval
// has elapsed.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.backdrop.Config().Seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.backdrop.Clear()
	}
	g.overlay.Update()

	// Layout may have reallocated the canvas; repaint even while paused.
	g.backdrop.SyncSize()
	g.handlePointer()

	if (!g.paused && g.ticker.ShouldStep()) || g.tickOnce {
		g.backdrop.Tick()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) handlePointer() {
	var touches []ebiten.TouchID
	touches = ebiten.AppendTouchIDs(touches)

	var pos image.Point
	switch {
	case len(touches) > 0:
		pos.X, pos.Y = ebiten.TouchPosition(touches[0])
	default:
		pos.X, pos.Y = ebiten.CursorPosition()
	}
	bounds := image.Rectangle{Max: image.Point{X: g.canvas.Size().W, Y: g.canvas.Size().H}}
	inside := pos.In(bounds)

	switch {
	case inside && (!g.hasPtr || pos != g.lastPtr):
		g.backdrop.OnPointerMove(pos.X, pos.Y)
		g.lastPtr, g.hasPtr = pos, true
	case !inside && g.hasPtr:
		g.backdrop.OnPointerLeave()
		g.hasPtr = false
	}

	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	if tapped := inpututil.AppendJustPressedTouchIDs(nil); len(tapped) > 0 {
		pos.X, pos.Y = ebiten.TouchPosition(tapped[0])
		clicked = true
	}
	if !clicked {
		return
	}
	if _, err := g.backdrop.OnPointerClick(pos.X, pos.Y); err != nil && g.logger != nil {
		g.logger.Printf("special cell: %v", err)
	}
}

// Draw blits the persistent canvas and the overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Blit(screen)
	g.overlay.Draw(screen)
}

// Layout tracks the window size; the backdrop picks the change up on its
// next tick.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.canvas.SetSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// IsSurfaceError reports whether err means the backdrop had nothing to draw on.
func IsSurfaceError(err error) bool {
	return errors.Is(err, header.ErrSurfaceUnavailable)
}
