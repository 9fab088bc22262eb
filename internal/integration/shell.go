package integration

import (
	"fmt"
	"net/url"

	"fyne.io/fyne/v2"

	"github.com/asgardex/asgardex-native/internal/capability"
)

// Shell opens URLs through the host application.
type Shell struct {
	app fyne.App
}

// Open opens rawURL with the platform handler.
func (s *Shell) Open(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", rawURL, err)
	}
	return s.app.OpenURL(u)
}

// ShellProvider attaches Shell.
type ShellProvider struct{}

// ID returns the shell integration id.
func (p *ShellProvider) ID() capability.ID { return capability.Shell }

// Attach publishes a Shell backed by the host app.
func (p *ShellProvider) Attach(h Host) error {
	h.Provide(p.ID(), &Shell{app: h.App()})
	return nil
}
