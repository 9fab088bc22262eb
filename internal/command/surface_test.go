package command

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asgardex/asgardex-native/internal/capability"
	"github.com/asgardex/asgardex-native/internal/export"
	"github.com/asgardex/asgardex-native/internal/platform"
)

type recordingStorage struct {
	mu    sync.Mutex
	err   error
	names []string
	mimes []string
	data  [][]byte
}

func (s *recordingStorage) WriteNew(_ context.Context, _ export.PublicDir, name, mimeType string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.names = append(s.names, name)
	s.mimes = append(s.mimes, mimeType)
	s.data = append(s.data, data)
	return s.err
}

type services map[capability.ID]any

func (s services) Service(id capability.ID) (any, bool) {
	v, ok := s[id]
	return v, ok
}

func surfaceFor(t *testing.T, p capability.TargetProfile, svc services) *Surface {
	t.Helper()
	cmds, err := Entitled(p.Platform, capability.Compose(p), svc)
	require.NoError(t, err)
	s, err := NewSurface(cmds...)
	require.NoError(t, err)
	require.NoError(t, s.Validate(capability.Compose(p)))
	return s
}

// TestEntitledCommands enumerates the registered names per profile.
func TestEntitledCommands(t *testing.T) {
	svc := services{capability.AndroidFS: &recordingStorage{}}

	tests := []struct {
		profile  capability.TargetProfile
		expected []string
	}{
		{capability.ProfileDesktop, []string{ResolveDeviceType}},
		{capability.ProfileIOS, []string{ResolveDeviceType}},
		{capability.ProfileAndroid, []string{ResolveDeviceType, SaveKeystoreToDownloadsAndroid}},
		{capability.ProfileLegacyDesktop, []string{ResolveDeviceType}},
		{capability.ProfileLegacyIOS, []string{ResolveDeviceType}},
		// the legacy android build has no public storage provider
		{capability.ProfileLegacyAndroid, []string{ResolveDeviceType}},
	}

	for _, tt := range tests {
		t.Run(tt.profile.Name(), func(t *testing.T) {
			s := surfaceFor(t, tt.profile, svc)
			assert.Equal(t, tt.expected, s.Names())
			_, ok := s.Lookup(SaveKeystoreToDownloadsAndroid)
			assert.Equal(t, len(tt.expected) == 2, ok)
		})
	}
}

func TestEntitledMissingService(t *testing.T) {
	_, err := Entitled(platform.Android, capability.Compose(capability.ProfileAndroid), services{})
	assert.ErrorIs(t, err, ErrMissingIntegration)

	_, err = Entitled(platform.Android, capability.Compose(capability.ProfileAndroid), services{capability.AndroidFS: "not storage"})
	assert.Error(t, err)
}

func TestResolveDeviceType(t *testing.T) {
	tests := []struct {
		platform platform.Descriptor
		expected string
	}{
		{platform.Desktop, "desktop"},
		{platform.Android, "mobile"},
		{platform.IOS, "mobile"},
	}

	for _, tt := range tests {
		t.Run(tt.platform.String(), func(t *testing.T) {
			s, err := NewSurface(DeviceType(tt.platform))
			require.NoError(t, err)

			resp := s.Invoke(context.Background(), ResolveDeviceType, nil)
			assert.True(t, resp.OK())
			assert.Equal(t, tt.expected, resp.Value)

			resp = s.Invoke(context.Background(), ResolveDeviceType, json.RawMessage(`{}`))
			assert.Equal(t, tt.expected, resp.Value)
		})
	}
}

// TestValidateFailsFast verifies a command without its integration is
// rejected before serving.
func TestValidateFailsFast(t *testing.T) {
	s, err := NewSurface(DeviceType(platform.Desktop), SaveKeystore(&recordingStorage{}))
	require.NoError(t, err)

	err = s.Validate(capability.Compose(capability.ProfileDesktop))
	assert.ErrorIs(t, err, ErrMissingIntegration)
	assert.ErrorContains(t, err, SaveKeystoreToDownloadsAndroid)
}

func TestNewSurfaceRejectsDuplicates(t *testing.T) {
	_, err := NewSurface(DeviceType(platform.Desktop), DeviceType(platform.Android))
	assert.ErrorIs(t, err, ErrDuplicateCommand)

	_, err = NewSurface(Command{Name: "no-handler"})
	assert.Error(t, err)
}

func TestInvokeUnknownCommand(t *testing.T) {
	s := surfaceFor(t, capability.ProfileDesktop, services{})

	resp := s.Invoke(context.Background(), SaveKeystoreToDownloadsAndroid, nil)
	assert.False(t, resp.OK())
	assert.Contains(t, resp.Error, "unknown command")
}

func TestInvokeRecoversPanic(t *testing.T) {
	s, err := NewSurface(Command{
		Name: "explode",
		Handler: func(context.Context, json.RawMessage) (any, error) {
			panic("boom")
		},
	})
	require.NoError(t, err)

	resp := s.Invoke(context.Background(), "explode", nil)
	assert.Contains(t, resp.Error, "boom")
}

func TestSaveKeystore(t *testing.T) {
	storage := &recordingStorage{}
	s := surfaceFor(t, capability.ProfileAndroid, services{capability.AndroidFS: storage})

	args, err := json.Marshal(map[string]any{
		"filename": "keystore.json",
		"mime":     "application/json",
		"dataB64":  base64.StdEncoding.EncodeToString([]byte(`{"id":1}`)),
	})
	require.NoError(t, err)

	resp := s.Invoke(context.Background(), SaveKeystoreToDownloadsAndroid, args)
	require.True(t, resp.OK(), resp.Error)
	assert.Nil(t, resp.Value)
	assert.Equal(t, []string{"keystore.json"}, storage.names)
	assert.Equal(t, []string{"application/json"}, storage.mimes)
	assert.Equal(t, `{"id":1}`, string(storage.data[0]))
}

func TestSaveKeystoreNullMIME(t *testing.T) {
	storage := &recordingStorage{}
	s := surfaceFor(t, capability.ProfileAndroid, services{capability.AndroidFS: storage})

	resp := s.Invoke(context.Background(), SaveKeystoreToDownloadsAndroid,
		json.RawMessage(`{"filename":"k.json","mime":null,"dataB64":"e30="}`))
	require.True(t, resp.OK(), resp.Error)
	assert.Equal(t, []string{""}, storage.mimes)
}

func TestSaveKeystoreErrors(t *testing.T) {
	tests := []struct {
		name       string
		args       string
		storageErr error
		contains   string
		writes     int
	}{
		{"bad base64", `{"filename":"k.json","dataB64":"not-base64-!!"}`, nil, "illegal base64", 0},
		{"storage denied", `{"filename":"k.json","dataB64":"e30="}`, errors.New("permission denied"), "permission denied", 1},
		{"missing filename", `{"dataB64":"e30="}`, nil, "missing filename", 0},
		{"missing data", `{"filename":"k.json"}`, nil, "missing dataB64", 0},
		{"not json", `[1,2`, nil, "invalid arguments", 0},
		{"no args", ``, nil, "missing filename", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := &recordingStorage{err: tt.storageErr}
			s := surfaceFor(t, capability.ProfileAndroid, services{capability.AndroidFS: storage})

			resp := s.Invoke(context.Background(), SaveKeystoreToDownloadsAndroid, json.RawMessage(tt.args))

			assert.False(t, resp.OK())
			assert.Contains(t, resp.Error, tt.contains)
			assert.Len(t, storage.names, tt.writes)
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "sync", DeviceType(platform.Desktop).Kind.String())
	assert.Equal(t, "async", SaveKeystore(nil).Kind.String())
}
