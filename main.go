package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/sirupsen/logrus"

	"github.com/asgardex/asgardex-native/internal/capability"
	"github.com/asgardex/asgardex-native/internal/config"
	"github.com/asgardex/asgardex-native/internal/host"
	"github.com/asgardex/asgardex-native/internal/integration"
	"github.com/asgardex/asgardex-native/internal/logging"
	"github.com/asgardex/asgardex-native/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "org.thorchain.asgardex"
	AppName = "ASGARDEX"

	WindowWidth  = 900
	WindowHeight = 640
)

func main() {
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	settings := config.NewSettings(myApp)

	sinks := logging.SelectSinks(logging.OSEnvironment)
	logger, err := logging.Apply(sinks, settings.LoggingOptions())
	if err != nil {
		logrus.Fatalf("failed to set up logging: %v", err)
	}
	defer logger.Close()

	profile := capability.CurrentProfile()
	logger.WithFields(logrus.Fields{
		"version": version,
		"profile": profile.Name(),
		"sinks":   sinks.String(),
	}).Infof("%s starting", AppName)

	myWindow := myApp.NewWindow(AppName + " v" + version)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	cfg := host.NewConfig(profile, sinks, integration.Options{})
	h, err := host.New(myApp, myWindow, logger, cfg)
	if err != nil {
		logger.Fatalf("failed to start host: %v", err)
	}
	defer h.Close()

	shell := ui.NewRootUI(h, settings)
	defer shell.Close()

	h.Run()
}
