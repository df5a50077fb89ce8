package desktop

import (
	"github.com/gen2brain/beeep"
)

// Notifier shows a desktop notification.
type Notifier interface {
	Notify(title, body string) error
}

type beeepNotifier struct {
	icon []byte
}

// NewNotifier returns a Notifier backed by the OS notification center.
func NewNotifier(appName string, icon []byte) Notifier {
	beeep.AppName = appName
	return beeepNotifier{icon: icon}
}

func (n beeepNotifier) Notify(title, body string) error {
	if len(n.icon) == 0 {
		return beeep.Notify(title, body, "")
	}
	return beeep.Notify(title, body, n.icon)
}
