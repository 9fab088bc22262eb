package integration

import (
	"bytes"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/require"

	"github.com/asgardex/asgardex-native/internal/capability"
	"github.com/asgardex/asgardex-native/internal/logging"
	"github.com/asgardex/asgardex-native/internal/platform"
)

// fakeHost records provided services.
type fakeHost struct {
	app      fyne.App
	window   fyne.Window
	platform platform.Descriptor
	logger   *logging.Logger
	services map[capability.ID]any
}

func newFakeHost(t *testing.T, d platform.Descriptor) *fakeHost {
	t.Helper()

	opts := logging.DefaultOptions(t.TempDir(), "test.log")
	opts.Stdout = &bytes.Buffer{}
	logger, err := logging.Apply(logging.SelectSinks(logging.MapEnvironment{}), opts)
	require.NoError(t, err)
	t.Cleanup(func() { logger.Close() })

	app := test.NewApp()
	t.Cleanup(app.Quit)

	return &fakeHost{
		app:      app,
		window:   test.NewWindow(nil),
		platform: d,
		logger:   logger,
		services: make(map[capability.ID]any),
	}
}

func (h *fakeHost) App() fyne.App                 { return h.app }
func (h *fakeHost) Window() fyne.Window           { return h.window }
func (h *fakeHost) Platform() platform.Descriptor { return h.platform }
func (h *fakeHost) Logger() *logging.Logger       { return h.logger }

func (h *fakeHost) Provide(id capability.ID, service any) {
	h.services[id] = service
}
