package notify

import (
	"github.com/gen2brain/beeep"
)

// DesktopTitle is the title of desktop notifications.
const DesktopTitle = "Jira"

// DesktopSurface sends messages as desktop notifications.
// Desktop notifications expire on their own, so Hide does nothing.
type DesktopSurface struct {
	notify func(title, message string) error
	title  string
}

// NewDesktopSurface creates a surface backed by the OS notification center.
func NewDesktopSurface() *DesktopSurface {
	return &DesktopSurface{
		notify: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
		title: DesktopTitle,
	}
}

// Style is a no-op.
func (*DesktopSurface) Style() {}

// Show sends text. Delivery failures are ignored.
func (d *DesktopSurface) Show(text string) {
	_ = d.notify(d.title, text)
}

// Hide is a no-op.
func (*DesktopSurface) Hide() {}
