package integration

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asgardex/asgardex-native/internal/capability"
	"github.com/asgardex/asgardex-native/internal/export"
	"github.com/asgardex/asgardex-native/internal/platform"
)

// TestCatalogCoversEveryProfile verifies each composed set resolves fully.
func TestCatalogCoversEveryProfile(t *testing.T) {
	catalog := NewCatalog(Options{})

	for _, name := range capability.ProfileNames() {
		profile, err := capability.ParseProfile(name)
		require.NoError(t, err)

		set := capability.Compose(profile)
		providers, err := catalog.Resolve(set)
		require.NoError(t, err, name)
		require.Len(t, providers, set.Len())

		for i, id := range set.IDs() {
			assert.Equal(t, id, providers[i].ID(), "%s provider %d", name, i)
		}
	}
}

func TestCatalogMissingProvider(t *testing.T) {
	catalog := NewCatalog(Options{})
	delete(catalog, capability.Biometric)

	_, err := catalog.Resolve(capability.Compose(capability.ProfileAndroid))
	assert.ErrorContains(t, err, "biometric")
}

// TestAttachAndroidProfile attaches every Android provider and checks the
// published service types.
func TestAttachAndroidProfile(t *testing.T) {
	host := newFakeHost(t, platform.Android)
	catalog := NewCatalog(Options{
		SecureStorageDir: t.TempDir(),
		DownloadsDir:     t.TempDir(),
	})

	providers, err := catalog.Resolve(capability.Compose(capability.ProfileAndroid))
	require.NoError(t, err)
	for _, p := range providers {
		require.NoError(t, p.Attach(host), p.ID())
		if c, ok := p.(io.Closer); ok {
			t.Cleanup(func() { c.Close() })
		}
	}

	assert.IsType(t, &Dialogs{}, host.services[capability.Dialog])
	assert.IsType(t, &Opener{}, host.services[capability.Opener])
	assert.IsType(t, &Files{}, host.services[capability.FS])
	assert.Same(t, host.logger, host.services[capability.Log])
	assert.IsType(t, &Store{}, host.services[capability.Store])
	assert.IsType(t, &Notifier{}, host.services[capability.Notification])
	assert.IsType(t, &SecureStore{}, host.services[capability.SecureStorage])
	assert.IsType(t, &Biometrics{}, host.services[capability.Biometric])
	assert.IsType(t, &SafeArea{}, host.services[capability.SafeAreaInsets])
	assert.IsType(t, &PublicStorage{}, host.services[capability.AndroidFS])
}

// TestAndroidFSProviderMediaScan verifies the scanner gets the host's
// android-fs logger rather than the global one.
func TestAndroidFSProviderMediaScan(t *testing.T) {
	host := newFakeHost(t, platform.Android)
	var scanned []string
	var components []any
	p := &AndroidFSProvider{
		DownloadsDir: t.TempDir(),
		MediaScan: func(path string, log *logrus.Entry) error {
			scanned = append(scanned, filepath.Base(path))
			components = append(components, log.Data["component"])
			return nil
		},
	}
	require.NoError(t, p.Attach(host))

	storage := host.services[capability.AndroidFS].(*PublicStorage)
	require.NoError(t, storage.WriteNew(context.Background(), export.DirDownload, "keystore.json", "", []byte("{}")))

	assert.Equal(t, []string{"keystore.json"}, scanned)
	assert.Equal(t, []any{"android-fs"}, components)
	assert.Same(t, host.logger.Logger, storage.log.Logger)
}

type stubPrompter struct {
	reasons []string
	err     error
}

func (p *stubPrompter) Authenticate(_ context.Context, reason string) error {
	p.reasons = append(p.reasons, reason)
	return p.err
}

func TestBiometrics(t *testing.T) {
	unavailable := &Biometrics{}
	assert.False(t, unavailable.Available())
	assert.ErrorIs(t, unavailable.Authenticate(context.Background(), "unlock"), ErrBiometryUnavailable)

	prompter := &stubPrompter{}
	b := &Biometrics{prompter: prompter}
	assert.True(t, b.Available())
	require.NoError(t, b.Authenticate(context.Background(), "unlock wallet"))
	assert.Equal(t, []string{"unlock wallet"}, prompter.reasons)
}

func TestStore(t *testing.T) {
	host := newFakeHost(t, platform.Desktop)
	store := NewStore(host.app.Preferences())

	_, ok := store.Get("theme")
	assert.False(t, ok)

	store.Set("theme", "dark")
	v, ok := store.Get("theme")
	assert.True(t, ok)
	assert.Equal(t, "dark", v)

	store.Set("empty", "")
	v, ok = store.Get("empty")
	assert.True(t, ok)
	assert.Equal(t, "", v)

	store.Delete("theme")
	_, ok = store.Get("theme")
	assert.False(t, ok)
}

func TestOpenerRejectsSchemes(t *testing.T) {
	o := &Opener{}
	assert.Error(t, o.OpenURL("file:///etc/passwd"))
	assert.Error(t, o.OpenURL("javascript:alert(1)"))
}
