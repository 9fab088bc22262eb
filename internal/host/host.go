package host

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"fyne.io/fyne/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/asgardex/asgardex-native/internal/capability"
	"github.com/asgardex/asgardex-native/internal/command"
	"github.com/asgardex/asgardex-native/internal/integration"
	"github.com/asgardex/asgardex-native/internal/logging"
	"github.com/asgardex/asgardex-native/internal/platform"
)

// Host owns the fyne app, the attached integrations and the command surface.
type Host struct {
	app    fyne.App
	window fyne.Window
	cfg    Config
	logger *logging.Logger
	log    *logrus.Entry

	services  map[capability.ID]any
	providers []integration.Provider
	surface   *command.Surface
	sealed    bool

	// deliver runs async command callbacks on the UI thread
	deliver func(func())
}

var _ integration.Host = (*Host)(nil)

// New attaches every integration in cfg and registers the entitled commands.
// Any failure here is a startup failure; the host must not be run.
func New(app fyne.App, window fyne.Window, logger *logging.Logger, cfg Config) (*Host, error) {
	h := &Host{
		app:      app,
		window:   window,
		cfg:      cfg,
		logger:   logger,
		log:      logger.Component("host"),
		services: make(map[capability.ID]any, cfg.integrations.Len()),
		deliver:  fyne.Do,
	}

	providers, err := integration.NewCatalog(cfg.options).Resolve(cfg.integrations)
	if err != nil {
		return nil, err
	}

	for _, p := range providers {
		if err := p.Attach(h); err != nil {
			h.Close()
			return nil, fmt.Errorf("attaching %s: %w", p.ID(), err)
		}
		h.providers = append(h.providers, p)
		h.log.Debugf("Attached %s", p.ID())
	}

	cmds, err := command.Entitled(cfg.profile.Platform, cfg.integrations, h)
	if err != nil {
		h.Close()
		return nil, err
	}
	surface, err := command.NewSurface(cmds...)
	if err == nil {
		err = surface.Validate(cfg.integrations)
	}
	if err != nil {
		h.Close()
		return nil, fmt.Errorf("registering commands: %w", err)
	}

	h.surface = surface
	h.sealed = true
	h.log.Infof("Host ready: profile=%s integrations=%s commands=%v",
		cfg.profile.Name(), cfg.integrations, surface.Names())
	return h, nil
}

// App returns the fyne application.
func (h *Host) App() fyne.App { return h.app }

// Window returns the main window.
func (h *Host) Window() fyne.Window { return h.window }

// Platform returns the platform descriptor of the profile.
func (h *Host) Platform() platform.Descriptor { return h.cfg.profile.Platform }

// Logger returns the configured logger.
func (h *Host) Logger() *logging.Logger { return h.logger }

// Config returns the configuration the host was built from.
func (h *Host) Config() Config { return h.cfg }

// Provide publishes an integration service. Integrations can only be
// provided while the host is being built.
func (h *Host) Provide(id capability.ID, service any) {
	if h.sealed {
		panic(fmt.Sprintf("host: %s provided after startup", id))
	}
	h.services[id] = service
}

// Service returns the service published by an attached integration.
func (h *Host) Service(id capability.ID) (any, bool) {
	svc, ok := h.services[id]
	return svc, ok
}

// ServiceAs returns the service for id typed as T.
func ServiceAs[T any](h *Host, id capability.ID) (T, bool) {
	svc, ok := h.services[id].(T)
	return svc, ok
}

// Commands returns the registered command names.
func (h *Host) Commands() []string {
	return h.surface.Names()
}

// Invoke runs a command and waits for its response.
func (h *Host) Invoke(ctx context.Context, name string, args json.RawMessage) command.Response {
	log := h.log.WithFields(logrus.Fields{"command": name, "invocation": uuid.NewString()})
	start := time.Now()

	resp := h.surface.Invoke(ctx, name, args)
	if resp.OK() {
		log.Debugf("Command finished in %s", time.Since(start))
	} else {
		log.Warnf("Command failed after %s: %s", time.Since(start), resp.Error)
	}
	return resp
}

// Dispatch runs a command without blocking the caller on async work. Sync
// commands answer inline; async commands run on their own goroutine and
// deliver the response on the UI thread.
func (h *Host) Dispatch(ctx context.Context, name string, args json.RawMessage, done func(command.Response)) {
	cmd, ok := h.surface.Lookup(name)
	if !ok || cmd.Kind == command.Sync {
		done(h.Invoke(ctx, name, args))
		return
	}

	go func() {
		resp := h.Invoke(ctx, name, args)
		h.deliver(func() { done(resp) })
	}()
}

// Run shows the main window and blocks in the fyne event loop.
func (h *Host) Run() {
	h.app.Lifecycle().SetOnStarted(func() {
		h.log.Info("Event loop started")
	})
	h.app.Lifecycle().SetOnStopped(func() {
		h.log.Info("Event loop stopped")
	})
	h.window.ShowAndRun()
}

// Close releases integrations in reverse attach order.
func (h *Host) Close() error {
	var first error
	for i := len(h.providers) - 1; i >= 0; i-- {
		c, ok := h.providers[i].(io.Closer)
		if !ok {
			continue
		}
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	h.providers = nil
	return first
}
