package header

import (
	"errors"
	"fmt"
	"image/color"
	"reflect"

	"headerlife/internal/core"
	pcore "headerlife/pkg/core"
	"headerlife/pkg/life"
)

// ErrSurfaceUnavailable is returned by New when there is nothing to draw on.
// Hosts treat it as "do not animate" rather than as a fatal error.
var ErrSurfaceUnavailable = errors.New("render surface unavailable")

// specialOffset places the special cell one cell in from the top-right corner.
const specialOffset = 1

// Backdrop drives one Game of Life grid sized to a render surface. It is not
// safe for concurrent use; hosts deliver ticks and pointer events from a
// single loop.
type Backdrop struct {
	cfg     Config
	surface core.Surface
	nav     core.Navigator
	palette *Palette

	grid *life.Grid
	rng  *pcore.RNG
	seed life.SeedFunc
	msg  life.Message

	// last surface size seen by Tick; a change triggers resize and full redraw
	surfaceSize core.Size

	pointer    core.Point
	hasPointer bool

	// special cell drawn during the last hover update
	lastSpecial    core.Point
	hasLastSpecial bool

	navigations int
	navErr      error
}

// Option customises a Backdrop.
type Option func(*Backdrop)

// WithNavigator sets the collaborator invoked when the special cell is clicked.
func WithNavigator(n core.Navigator) Option {
	return func(b *Backdrop) { b.nav = n }
}

// WithMessage replaces the banner used when Config.Message is set.
func WithMessage(m life.Message) Option {
	return func(b *Backdrop) { b.msg = m }
}

// New builds a backdrop covering surface. A nil surface, including a typed
// nil pointer, yields ErrSurfaceUnavailable.
func New(cfg Config, surface core.Surface, opts ...Option) (*Backdrop, error) {
	if isNil(surface) {
		return nil, ErrSurfaceUnavailable
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b := &Backdrop{
		cfg:     cfg,
		surface: surface,
		palette: NewPalette(cfg.Palette, cfg.Fade),
		msg:     life.DefaultMessage(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.Reset(cfg.Seed)
	return b, nil
}

func isNil(s core.Surface) bool {
	if s == nil {
		return true
	}
	v := reflect.ValueOf(s)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// Reset re-seeds the grid at the current surface size, forgets the pointer
// and redraws everything.
func (b *Backdrop) Reset(seed int64) {
	b.cfg.Seed = seed
	b.rng = pcore.NewRNG(seed)
	random := life.RandomSeed(b.rng, b.cfg.SeedProbability)
	b.seed = random
	if b.cfg.Message {
		b.seed = b.msg.Seed
	}
	b.surfaceSize = b.surface.Size()
	w, h := b.gridSizeFor(b.surfaceSize)
	b.grid = life.New(w, h, b.seed)
	// Cells uncovered by later resizes are filled randomly; the banner only
	// makes sense where it was first laid out.
	b.seed = random
	b.hasPointer = false
	b.hasLastSpecial = false
	b.RedrawAll()
}

// Grid exposes the underlying engine.
func (b *Backdrop) Grid() *life.Grid { return b.grid }

// Config returns the active configuration.
func (b *Backdrop) Config() Config { return b.cfg }

func (b *Backdrop) gridSizeFor(s core.Size) (int, int) {
	pitch := b.cfg.Pitch()
	w, h := s.W/pitch, s.H/pitch
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return w, h
}

// CellToPixelRect returns the pixel rectangle covered by cell (x, y).
func (b *Backdrop) CellToPixelRect(x, y int) core.Rect {
	pitch := b.cfg.Pitch()
	return core.Rect{X: x * pitch, Y: y * pitch, W: b.cfg.CellSize, H: b.cfg.CellSize}
}

// PointerToCell maps a pixel position to the cell containing it. The result
// may lie outside the grid, including negative coordinates.
func (b *Backdrop) PointerToCell(px, py int) core.Point {
	pitch := b.cfg.Pitch()
	return core.Point{X: floorDiv(px, pitch), Y: floorDiv(py, pitch)}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// SpecialCell returns the interactive cell near the top-right corner when the
// feature is enabled and the grid is large enough to hold it.
func (b *Backdrop) SpecialCell() (core.Point, bool) {
	if !b.cfg.Special {
		return core.Point{}, false
	}
	w, h := b.grid.Size()
	p := core.Point{X: w - 1 - specialOffset, Y: specialOffset}
	if !b.grid.InBounds(p.X, p.Y) || h == 0 {
		return core.Point{}, false
	}
	return p, true
}

// Pointer returns the last pointer cell, if any has been reported.
func (b *Backdrop) Pointer() (core.Point, bool) { return b.pointer, b.hasPointer }

func (b *Backdrop) kindAt(x, y int) CellKind {
	if sp, ok := b.SpecialCell(); ok && sp.X == x && sp.Y == y {
		if b.hasPointer && b.pointer == sp {
			return KindSpecialHover
		}
		return KindSpecial
	}
	if b.grid.Alive(x, y) {
		return KindAlive
	}
	return KindDead
}

// ColorFor returns the fill of cell (x, y) given the grid, pointer and
// surface height.
func (b *Backdrop) ColorFor(x, y int) color.RGBA {
	r := b.CellToPixelRect(x, y)
	return b.palette.Color(b.kindAt(x, y), r.Y, b.surfaceSize.H)
}

// Redraw fills the rectangle of a single cell.
func (b *Backdrop) Redraw(x, y int) {
	if !b.grid.InBounds(x, y) {
		return
	}
	b.surface.FillRect(b.CellToPixelRect(x, y), b.ColorFor(x, y))
}

// RedrawAll clears the surface to the background and redraws every cell.
func (b *Backdrop) RedrawAll() {
	s := b.surfaceSize
	b.surface.FillRect(core.Rect{W: s.W, H: s.H}, b.palette.Background())
	w, h := b.grid.Size()
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			b.Redraw(x, y)
		}
	}
}

// SyncSize resizes the grid to the surface and repaints everything when the
// surface dimensions changed since the last call. It reports whether a
// resize happened. Hosts whose surface loses its contents on resize call it
// straight away rather than waiting for the next tick.
func (b *Backdrop) SyncSize() bool {
	size := b.surface.Size()
	if size == b.surfaceSize {
		return false
	}
	b.surfaceSize = size
	w, h := b.gridSizeFor(size)
	b.grid.Resize(w, h, b.seed)
	b.hasLastSpecial = false
	b.RedrawAll()
	return true
}

// Clear kills every cell and repaints the surface.
func (b *Backdrop) Clear() {
	b.grid.Clear()
	b.RedrawAll()
}

// Tick runs one generation: it resizes the grid if the surface changed size,
// steps the simulation and redraws the cells that changed.
func (b *Backdrop) Tick() {
	b.SyncSize()

	births, deaths := b.grid.Step()
	for _, c := range births {
		b.Redraw(c.X, c.Y)
	}
	for _, c := range deaths {
		b.Redraw(c.X, c.Y)
	}
	if sp, ok := b.SpecialCell(); ok {
		b.Redraw(sp.X, sp.Y)
	}
}

// OnPointerMove records the pointer and, when interaction is enabled, brings
// the cell under it to life.
func (b *Backdrop) OnPointerMove(px, py int) {
	cell := b.PointerToCell(px, py)
	b.pointer = cell
	b.hasPointer = true

	if b.cfg.Interactive && b.grid.Paint(cell.X, cell.Y) {
		b.Redraw(cell.X, cell.Y)
	}

	if b.hasLastSpecial {
		b.Redraw(b.lastSpecial.X, b.lastSpecial.Y)
		b.hasLastSpecial = false
	}
	if sp, ok := b.SpecialCell(); ok {
		b.Redraw(sp.X, sp.Y)
		b.lastSpecial = sp
		b.hasLastSpecial = true
	}
}

// OnPointerLeave forgets the pointer so the special cell loses its hover state.
func (b *Backdrop) OnPointerLeave() {
	b.hasPointer = false
	if sp, ok := b.SpecialCell(); ok {
		b.Redraw(sp.X, sp.Y)
	}
}

// OnPointerClick navigates to the configured target when the click lands on
// the special cell. It reports whether navigation was attempted; the
// navigator's error, if any, is returned.
func (b *Backdrop) OnPointerClick(px, py int) (bool, error) {
	sp, ok := b.SpecialCell()
	if !ok || b.PointerToCell(px, py) != sp {
		return false, nil
	}
	if b.nav == nil {
		return false, nil
	}
	b.navigations++
	if err := b.nav.Navigate(b.cfg.Target); err != nil {
		b.navErr = err
		return true, fmt.Errorf("navigate to %q: %w", b.cfg.Target, err)
	}
	b.navErr = nil
	return true, nil
}
