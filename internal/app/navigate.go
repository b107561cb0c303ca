package app

import (
	"fmt"
	"log"

	"headerlife/internal/core"

	"github.com/pkg/browser"
)

// BrowserNavigator opens targets in the user's default browser.
type BrowserNavigator struct {
	// Logger receives one line per navigation. Nil disables logging.
	Logger *log.Logger
}

// Navigate opens target.
func (n BrowserNavigator) Navigate(target string) error {
	if n.Logger != nil {
		n.Logger.Printf("opening %s", target)
	}
	if err := browser.OpenURL(target); err != nil {
		return fmt.Errorf("open browser: %w", err)
	}
	return nil
}

var _ core.Navigator = BrowserNavigator{}
