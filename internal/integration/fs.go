package integration

import (
	"fmt"
	"io"
	"slices"

	"fyne.io/fyne/v2"

	"github.com/asgardex/asgardex-native/internal/capability"
)

// Files reads and writes documents in the app's private storage.
type Files struct {
	storage fyne.Storage
}

// NewFiles wraps a fyne storage.
func NewFiles(storage fyne.Storage) *Files {
	return &Files{storage: storage}
}

// ReadFile returns the content of name.
func (f *Files) ReadFile(name string) ([]byte, error) {
	r, err := f.storage.Open(name)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", name, err)
	}
	defer r.Close()
	return io.ReadAll(r)
}

// WriteFile replaces the content of name, creating it if needed.
func (f *Files) WriteFile(name string, data []byte) error {
	var (
		w   fyne.URIWriteCloser
		err error
	)
	if slices.Contains(f.storage.List(), name) {
		w, err = f.storage.Save(name)
	} else {
		w, err = f.storage.Create(name)
	}
	if err != nil {
		return fmt.Errorf("opening %s for writing: %w", name, err)
	}
	if _, err := w.Write(data); err != nil {
		w.Close()
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return w.Close()
}

// Remove deletes name.
func (f *Files) Remove(name string) error {
	return f.storage.Remove(name)
}

// List returns the stored document names.
func (f *Files) List() []string {
	return f.storage.List()
}

// FSProvider attaches Files over the app storage.
type FSProvider struct{}

// ID returns the fs integration id.
func (p *FSProvider) ID() capability.ID { return capability.FS }

// Attach publishes Files over the app storage root.
func (p *FSProvider) Attach(h Host) error {
	h.Provide(p.ID(), NewFiles(h.App().Storage()))
	return nil
}
