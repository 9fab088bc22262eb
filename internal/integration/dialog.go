package integration

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"github.com/asgardex/asgardex-native/internal/capability"
)

// Dialogs shows native-looking dialogs on the host window.
type Dialogs struct {
	window fyne.Window
}

// ShowError shows err to the user.
func (d *Dialogs) ShowError(err error) {
	dialog.ShowError(err, d.window)
}

// Confirm asks a yes/no question.
func (d *Dialogs) Confirm(title, message string, callback func(bool)) {
	dialog.ShowConfirm(title, message, callback, d.window)
}

// SaveFile lets the user pick a destination to write to.
func (d *Dialogs) SaveFile(callback func(fyne.URIWriteCloser, error)) {
	dialog.ShowFileSave(callback, d.window)
}

// DialogProvider attaches Dialogs.
type DialogProvider struct{}

// ID returns the dialog integration id.
func (p *DialogProvider) ID() capability.ID { return capability.Dialog }

// Attach publishes Dialogs for the main window.
func (p *DialogProvider) Attach(h Host) error {
	h.Provide(p.ID(), &Dialogs{window: h.Window()})
	return nil
}
