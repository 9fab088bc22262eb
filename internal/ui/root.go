package ui

import (
	"context"
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/asgardex/asgardex-native/internal/capability"
	"github.com/asgardex/asgardex-native/internal/command"
	"github.com/asgardex/asgardex-native/internal/config"
	"github.com/asgardex/asgardex-native/internal/host"
	"github.com/asgardex/asgardex-native/internal/integration"
	"github.com/asgardex/asgardex-native/internal/logging"
)

// RootUI is the host shell window content.
type RootUI struct {
	host     *host.Host
	settings *config.Settings

	deviceLabel *widget.Label
	logView     *LogView
}

// NewRootUI builds the shell and sets it as the window content.
func NewRootUI(h *host.Host, settings *config.Settings) *RootUI {
	ui := &RootUI{
		host:        h,
		settings:    settings,
		deviceLabel: widget.NewLabel("Device: …"),
	}

	content := container.NewBorder(ui.header(), nil, nil, nil, ui.body())
	h.Window().SetContent(ui.padForSafeArea(content))

	h.Dispatch(context.Background(), command.ResolveDeviceType, nil, func(resp command.Response) {
		if !resp.OK() {
			ui.showError(fmt.Errorf("%s", resp.Error))
			return
		}
		ui.deviceLabel.SetText(fmt.Sprintf("Device: %v", resp.Value))
	})

	return ui
}

func (ui *RootUI) header() fyne.CanvasObject {
	cfg := ui.host.Config()
	profile := widget.NewLabel("Profile: " + cfg.Profile().Name())
	commands := widget.NewLabel("Commands: " + strings.Join(ui.host.Commands(), ", "))
	commands.Wrapping = fyne.TextWrapWord

	settingsBtn := widget.NewButton("Settings", func() {
		NewSettingsDialog(ui.settings, ui.host.Window()).Show()
	})
	revealBtn := widget.NewButton("Show log file", ui.revealLogFile)
	if ui.host.Logger().FilePath() == "" {
		revealBtn.Disable()
	}

	return container.NewVBox(
		container.NewHBox(ui.deviceLabel, layout.NewSpacer(), revealBtn, settingsBtn),
		profile,
		commands,
		widget.NewSeparator(),
	)
}

func (ui *RootUI) body() fyne.CanvasObject {
	ids := ui.host.Config().Integrations().Strings()
	integrations := widget.NewList(
		func() int { return len(ids) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			obj.(*widget.Label).SetText(ids[id])
		},
	)
	left := container.NewBorder(widget.NewLabelWithStyle("Integrations", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}), nil, nil, nil, integrations)

	var right fyne.CanvasObject
	if hook := ui.host.Logger().Webview(); hook != nil {
		ui.logView = NewLogView(hook)
		right = ui.logView.Object()
	} else {
		right = widget.NewLabel(fmt.Sprintf("In-app log viewer is off. Start with %s=true to enable it.", logging.EnvLogToWebview))
	}

	split := container.NewHSplit(left, right)
	split.Offset = 0.25
	return split
}

// padForSafeArea keeps content clear of notches and system bars on mobile.
func (ui *RootUI) padForSafeArea(content fyne.CanvasObject) fyne.CanvasObject {
	area, ok := host.ServiceAs[*integration.SafeArea](ui.host, capability.SafeAreaInsets)
	if !ok {
		return content
	}
	return container.New(newSafeAreaLayout(area.Insets), content)
}

func (ui *RootUI) revealLogFile() {
	path := ui.host.Logger().FilePath()
	if opener, ok := host.ServiceAs[*integration.Opener](ui.host, capability.Opener); ok {
		if err := opener.Reveal(path); err != nil {
			ui.showError(err)
		}
		return
	}
	if shell, ok := host.ServiceAs[*integration.Shell](ui.host, capability.Shell); ok {
		if err := shell.Open("file://" + path); err != nil {
			ui.showError(err)
		}
		return
	}
	ui.showError(fmt.Errorf("no opener available"))
}

func (ui *RootUI) showError(err error) {
	ui.host.Logger().Component("ui").Error(err)
	if dialogs, ok := host.ServiceAs[*integration.Dialogs](ui.host, capability.Dialog); ok {
		dialogs.ShowError(err)
	}
}

// Close releases the log viewer subscription.
func (ui *RootUI) Close() {
	if ui.logView != nil {
		ui.logView.Close()
	}
}
