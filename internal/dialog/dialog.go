package dialog

import (
	"log/slog"

	"github.com/ncruces/zenity"
)

// Notifier surfaces a non-fatal error to the user and waits until it is
// dismissed.
type Notifier interface {
	Error(title, msg string)
}

var _ Notifier = Zenity{}

// Zenity shows native modal dialogs. If no dialog can be shown (no display,
// no zenity backend) the message is only logged.
type Zenity struct {
	Log *slog.Logger
}

func (z Zenity) Error(title, msg string) {
	if z.Log != nil {
		z.Log.Warn(title, slog.String("msg", msg))
	}
	err := zenity.Error(msg, zenity.Title(title), zenity.ErrorIcon)
	if err != nil && z.Log != nil {
		z.Log.Error("error dialog failed", slog.Any("err", err))
	}
}
