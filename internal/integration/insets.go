package integration

import (
	"fyne.io/fyne/v2"

	"github.com/asgardex/asgardex-native/internal/capability"
)

// Insets are the distances from each window edge to the interactive area.
type Insets struct {
	Top, Left, Bottom, Right float32
}

// SafeArea reports the window insets not covered by notches, system bars, or
// rounded corners.
type SafeArea struct {
	window fyne.Window
}

// Insets returns the current insets. Desktop windows report zero.
func (s *SafeArea) Insets() Insets {
	return InsetsOf(s.window.Canvas())
}

// InsetsOf computes the insets of c.
func InsetsOf(c fyne.Canvas) Insets {
	size := c.Size()
	pos, area := c.InteractiveArea()
	return Insets{
		Top:    pos.Y,
		Left:   pos.X,
		Bottom: max(0, size.Height-pos.Y-area.Height),
		Right:  max(0, size.Width-pos.X-area.Width),
	}
}

// InsetsProvider attaches SafeArea.
type InsetsProvider struct{}

// ID returns the safe-area-insets integration id.
func (p *InsetsProvider) ID() capability.ID { return capability.SafeAreaInsets }

// Attach publishes SafeArea for the main window.
func (p *InsetsProvider) Attach(h Host) error {
	h.Provide(p.ID(), &SafeArea{window: h.Window()})
	return nil
}
