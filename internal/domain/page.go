package domain

import "net/url"

// StaticPage is a Page with a fixed location and selection.
// The CLI uses it for pages given on the command line.
type StaticPage struct {
	URL      *url.URL
	Selected string
}

// Location returns the page URL.
func (p StaticPage) Location() *url.URL {
	return p.URL
}

// Selection returns the selected text.
func (p StaticPage) Selection() string {
	return p.Selected
}
