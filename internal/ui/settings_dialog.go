package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"github.com/asgardex/asgardex-native/internal/config"
)

// SettingsDialog edits the logging settings. Changes apply on next start.
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	dialog   *dialog.ConfirmDialog

	levelSelect   *widget.Select
	dirEntry      *widget.Entry
	bufferEntry   *widget.Entry
	compressCheck *widget.Check
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	levels := []string{}
	for _, level := range sd.settings.GetLogLevelOptions() {
		levels = append(levels, level.String())
	}
	sd.levelSelect = widget.NewSelect(levels, nil)

	sd.dirEntry = widget.NewEntry()
	sd.dirEntry.SetPlaceHolder("Log directory path")

	sd.bufferEntry = widget.NewEntry()
	sd.bufferEntry.SetPlaceHolder(strconv.Itoa(config.MinWebviewBufferSize) + "-" + strconv.Itoa(config.MaxWebviewBufferSize))

	sd.compressCheck = widget.NewCheck("Compress rotated log files", nil)

	form := container.NewVBox(
		widget.NewLabel("Log Level:"),
		sd.levelSelect,

		widget.NewLabel("Log Directory:"),
		sd.dirEntry,

		widget.NewLabel("In-app Viewer Lines:"),
		sd.bufferEntry,

		sd.compressCheck,
		widget.NewSeparator(),
		widget.NewLabel("Changes apply on next start."),
	)

	sd.dialog = dialog.NewCustomConfirm("Logging", "Save", "Cancel", form, sd.onSave, sd.window)
	sd.dialog.Resize(fyne.NewSize(460, 360))
}

func (sd *SettingsDialog) loadCurrentSettings() {
	sd.levelSelect.SetSelected(sd.settings.GetLogLevel().String())
	sd.dirEntry.SetText(sd.settings.GetLogDirectory())
	sd.bufferEntry.SetText(strconv.Itoa(sd.settings.GetWebviewBufferSize()))
	sd.compressCheck.SetChecked(sd.settings.GetLogCompress())
}

func (sd *SettingsDialog) onSave(save bool) {
	if !save {
		return
	}

	if level, err := logrus.ParseLevel(sd.levelSelect.Selected); err == nil {
		sd.settings.SetLogLevel(level)
	}
	if sd.dirEntry.Text != "" {
		sd.settings.SetLogDirectory(sd.dirEntry.Text)
	}
	if size, err := strconv.Atoi(sd.bufferEntry.Text); err == nil {
		sd.settings.SetWebviewBufferSize(size)
	} else {
		dialog.ShowError(err, sd.window)
	}
	sd.settings.SetLogCompress(sd.compressCheck.Checked)
}
