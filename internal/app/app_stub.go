//go:build !ebiten

package app

import (
	"errors"
	"log"
)

// ErrGUIUnavailable is returned by the headless build.
var ErrGUIUnavailable = errors.New("app.Game requires building with the 'ebiten' tag")

// Game is a placeholder that satisfies the API expected by the GUI build.
type Game struct{}

// New reports that the ebiten build tag is required for GUI support.
func New(*Config, *log.Logger) (*Game, error) {
	return nil, ErrGUIUnavailable
}

// Reset is a no-op placeholder.
func (g *Game) Reset(int64) {}

// Update always reports that the GUI build tag is missing.
func (g *Game) Update() error { return ErrGUIUnavailable }

// Draw is a no-op placeholder to satisfy the interface shape.
func (g *Game) Draw(any) {}

// Layout returns zeros in the headless build.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }

// IsSurfaceError always reports false in the headless build.
func IsSurfaceError(error) bool { return false }
