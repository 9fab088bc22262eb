package integration

import (
	"fmt"

	"fyne.io/fyne/v2"

	"github.com/asgardex/asgardex-native/internal/capability"
	"github.com/asgardex/asgardex-native/internal/logging"
	"github.com/asgardex/asgardex-native/internal/platform"
)

// Host is the part of the application host a provider may touch while it is
// being attached.
type Host interface {
	App() fyne.App
	Window() fyne.Window
	Platform() platform.Descriptor
	Logger() *logging.Logger
	Provide(id capability.ID, service any)
}

// Provider attaches one integration to the host.
type Provider interface {
	ID() capability.ID
	Attach(h Host) error
}

// Options carries the settings providers cannot derive from the host.
type Options struct {
	// SecureStorageDir overrides <app storage root>/secure.
	SecureStorageDir string
	// DownloadsDir overrides the public Download directory.
	DownloadsDir string
	// MediaScan overrides the Android media scanner notification.
	MediaScan MediaScanFunc
	// Prompter backs the biometric integration; nil means unavailable.
	Prompter Prompter
}

// Catalog maps every known integration to its provider constructor.
type Catalog map[capability.ID]func() Provider

// NewCatalog returns the provider catalog for opts.
func NewCatalog(opts Options) Catalog {
	return Catalog{
		capability.Dialog:         func() Provider { return &DialogProvider{} },
		capability.Opener:         func() Provider { return &OpenerProvider{} },
		capability.Shell:          func() Provider { return &ShellProvider{} },
		capability.FS:             func() Provider { return &FSProvider{} },
		capability.Log:            func() Provider { return &LogProvider{} },
		capability.Store:          func() Provider { return &StoreProvider{} },
		capability.Notification:   func() Provider { return &NotificationProvider{} },
		capability.SecureStorage:  func() Provider { return &SecureStorageProvider{Dir: opts.SecureStorageDir} },
		capability.Biometric:      func() Provider { return &BiometricProvider{Prompter: opts.Prompter} },
		capability.SafeAreaInsets: func() Provider { return &InsetsProvider{} },
		capability.AndroidFS:      func() Provider { return &AndroidFSProvider{DownloadsDir: opts.DownloadsDir, MediaScan: opts.MediaScan} },
	}
}

// Resolve returns providers for set in attach order. An id without a
// provider is an error, reported before anything is attached.
func (c Catalog) Resolve(set capability.Set) ([]Provider, error) {
	providers := make([]Provider, 0, set.Len())
	for _, id := range set.IDs() {
		newProvider, ok := c[id]
		if !ok {
			return nil, fmt.Errorf("no provider for integration %q", id)
		}
		providers = append(providers, newProvider())
	}
	return providers, nil
}
