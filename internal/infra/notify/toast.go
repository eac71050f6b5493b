// Package notify shows short-lived confirmation messages.
//
// A Toast owns one surface and at most one pending dismiss timer.
// Showing a new message while one is visible replaces it and restarts
// the dismiss delay.
package notify

import (
	"sync"
	"time"

	"github.com/runoshun/jira-clean-copy/internal/domain"
)

// Ensure Toast implements domain.Notifier.
var _ domain.Notifier = (*Toast)(nil)

// Surface is a place a message can be displayed.
type Surface interface {
	// Style prepares the surface for display. Called once per surface.
	Style()
	// Show displays text.
	Show(text string)
	// Hide removes any visible text. Hiding an empty surface is a no-op.
	Hide()
}

// SurfaceFactory creates the surface on first use. It returns false when
// there is nowhere to attach a surface yet.
type SurfaceFactory func() (Surface, bool)

// Timer is the subset of *time.Timer used by Toast.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f to run after d.
type AfterFunc func(d time.Duration, f func()) Timer

func realAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Toast is safe for concurrent use.
// Fields are ordered to minimize memory padding.
type Toast struct {
	surface   Surface
	timer     Timer
	factory   SurfaceFactory
	afterFunc AfterFunc
	delay     time.Duration
	gen       uint64
	mu        sync.Mutex
}

// Option configures a Toast.
type Option func(*Toast)

// WithAfterFunc replaces the timer scheduler. This is useful for testing.
func WithAfterFunc(fn AfterFunc) Option {
	return func(t *Toast) { t.afterFunc = fn }
}

// NewToast creates a Toast that hides messages after delay.
func NewToast(factory SurfaceFactory, delay time.Duration, opts ...Option) *Toast {
	if delay <= 0 {
		delay = time.Duration(domain.DefaultDismissDelay) * time.Millisecond
	}
	t := &Toast{
		factory:   factory,
		afterFunc: realAfterFunc,
		delay:     delay,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// StaticSurface returns a factory that always yields s.
func StaticSurface(s Surface) SurfaceFactory {
	return func() (Surface, bool) { return s, s != nil }
}

// Show displays text, replacing any visible message.
// It is a no-op while the factory reports that no surface can be created.
func (t *Toast) Show(text string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.surface == nil {
		if t.factory == nil {
			return
		}
		s, ok := t.factory()
		if !ok || s == nil {
			return
		}
		s.Style()
		t.surface = s
	}

	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}

	// Hide first so the surface restarts its entrance.
	t.surface.Hide()
	t.surface.Show(text)

	t.gen++
	gen := t.gen
	t.timer = t.afterFunc(t.delay, func() { t.dismiss(gen) })
}

// Close cancels the pending dismiss timer and hides the message.
func (t *Toast) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.gen++
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	if t.surface != nil {
		t.surface.Hide()
	}
}

func (t *Toast) dismiss(gen uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	// A newer Show owns the surface now.
	if gen != t.gen || t.surface == nil {
		return
	}
	t.timer = nil
	t.surface.Hide()
}
