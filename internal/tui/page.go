package tui

import (
	"net/url"
	"strings"
	"sync"

	"github.com/runoshun/jira-clean-copy/internal/domain"
)

// Ensure locationBar implements domain.Page.
var _ domain.Page = (*locationBar)(nil)

// locationBar is the page shown in the UI. It is written by the update
// loop and read by commands running on other goroutines.
type locationBar struct {
	loc      *url.URL
	selected string
	mu       sync.RWMutex
}

// set records the location text and whether all of it is selected.
// Text that does not parse as an absolute URL leaves the page without
// a location.
func (p *locationBar) set(raw string, selected bool) {
	raw = strings.TrimSpace(raw)

	var loc *url.URL
	if u, err := url.Parse(raw); err == nil && u.Scheme != "" && u.Host != "" {
		loc = u
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.loc = loc
	p.selected = ""
	if selected {
		p.selected = raw
	}
}

// Location returns a copy of the current location, or nil.
func (p *locationBar) Location() *url.URL {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.loc == nil {
		return nil
	}
	u := *p.loc
	return &u
}

// Selection returns the selected text.
func (p *locationBar) Selection() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.selected
}
