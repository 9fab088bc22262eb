package integration

import (
	"fyne.io/fyne/v2"
	"github.com/gen2brain/beeep"
	"github.com/sirupsen/logrus"

	"github.com/asgardex/asgardex-native/internal/capability"
)

// Notifier posts user notifications.
type Notifier struct {
	app    fyne.App
	native bool
	log    *logrus.Entry
}

// Send posts a notification. Desktop builds use the OS notification center
// directly and fall back to the host app when that fails.
func (n *Notifier) Send(title, body string) {
	if n.native {
		err := beeep.Notify(title, body, "")
		if err == nil {
			return
		}
		n.log.Warnf("Native notification failed, using app notification: %v", err)
	}
	n.app.SendNotification(fyne.NewNotification(title, body))
}

// NotificationProvider attaches Notifier.
type NotificationProvider struct{}

// ID returns the notification integration id.
func (p *NotificationProvider) ID() capability.ID { return capability.Notification }

// Attach publishes a Notifier, native on desktop.
func (p *NotificationProvider) Attach(h Host) error {
	h.Provide(p.ID(), &Notifier{
		app:    h.App(),
		native: !h.Platform().IsMobile(),
		log:    h.Logger().Component("notification"),
	})
	return nil
}
