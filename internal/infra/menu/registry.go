// Package menu provides an in-process command registry that hosts use to
// list and invoke registered commands by label.
package menu

import (
	"fmt"
	"sync"

	"github.com/runoshun/jira-clean-copy/internal/domain"
)

// Ensure Registry implements domain.CommandRegistry.
var _ domain.CommandRegistry = (*Registry)(nil)

// Registry keeps commands in registration order. Labels are unique.
type Registry struct {
	callbacks map[string]func()
	labels    []string
	mu        sync.RWMutex
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{callbacks: make(map[string]func())}
}

// Register adds a command under label.
func (r *Registry) Register(label string, callback func()) error {
	if callback == nil {
		return fmt.Errorf("register %q: nil callback", label)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.callbacks[label]; ok {
		return fmt.Errorf("%w: %q", domain.ErrDuplicateLabel, label)
	}
	r.callbacks[label] = callback
	r.labels = append(r.labels, label)
	return nil
}

// Commands returns the registered labels in registration order.
func (r *Registry) Commands() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.labels))
	copy(out, r.labels)
	return out
}

// Run invokes the command registered under label.
// The callback runs outside the registry lock.
func (r *Registry) Run(label string) error {
	r.mu.RLock()
	cb, ok := r.callbacks[label]
	r.mu.RUnlock()

	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrUnknownCommand, label)
	}
	cb()
	return nil
}
