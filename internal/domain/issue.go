// Package domain contains the core types and rules of jira-clean-copy.
package domain

import (
	"net/url"
	"strings"
)

// Issue is the part of a Jira issue the copy formats need.
// It is fetched fresh on every trigger and never cached.
type Issue struct {
	Key     string `json:"key" yaml:"key"`
	Summary string `json:"summary" yaml:"summary"`
}

// Origin returns the scheme://host part of a page URL.
func Origin(u *url.URL) string {
	if u == nil {
		return ""
	}
	return u.Scheme + "://" + u.Host
}

// BrowseURL returns the browse URL of an issue.
// Format: <origin>/browse/<key>
func BrowseURL(origin, key string) string {
	return strings.TrimRight(origin, "/") + "/browse/" + key
}

// IssueAPIURL returns the REST endpoint for a single issue.
// Format: <origin>/rest/api/latest/issue/<key>
func IssueAPIURL(origin, key string) string {
	return strings.TrimRight(origin, "/") + "/rest/api/latest/issue/" + url.PathEscape(key)
}
