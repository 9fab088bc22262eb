package integration

import (
	"fmt"
	"net/url"

	"github.com/pkg/browser"

	"github.com/asgardex/asgardex-native/internal/capability"
	"github.com/asgardex/asgardex-native/internal/platform"
)

// Opener hands URLs and files to the default system application.
type Opener struct{}

// OpenURL opens an http(s) or mailto URL.
func (o *Opener) OpenURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", rawURL, err)
	}
	switch u.Scheme {
	case "http", "https", "mailto":
	default:
		return fmt.Errorf("refusing to open %q: scheme %q not allowed", rawURL, u.Scheme)
	}
	return browser.OpenURL(u.String())
}

// OpenPath opens a local file with its default application.
func (o *Opener) OpenPath(path string) error {
	return browser.OpenFile(path)
}

// Reveal shows the file in the system file manager.
func (o *Opener) Reveal(path string) error {
	return platform.RevealInManager(path)
}

// OpenerProvider attaches Opener.
type OpenerProvider struct{}

// ID returns the opener integration id.
func (p *OpenerProvider) ID() capability.ID { return capability.Opener }

// Attach publishes an Opener.
func (p *OpenerProvider) Attach(h Host) error {
	h.Provide(p.ID(), &Opener{})
	return nil
}
