package domain

import (
	"net/url"
	"regexp"
	"strings"
)

// SelectedIssueParam is the query parameter Jira boards use for the open issue.
const SelectedIssueParam = "selectedIssue"

// browsePattern matches the issue segment of a /browse/ path.
// The segment must contain a hyphen.
var browsePattern = regexp.MustCompile(`/browse/([^/]*-[^/]*)`)

// keyPattern matches a bare issue key such as ABC-123.
var keyPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*-\d+$`)

// LocateIssueKey extracts the issue key from a page URL.
// The selectedIssue query parameter wins over the path.
// Returns "" and false when neither source yields a key.
func LocateIssueKey(u *url.URL) (string, bool) {
	if u == nil {
		return "", false
	}

	if selected := u.Query().Get(SelectedIssueParam); selected != "" {
		return selected, true
	}

	matches := browsePattern.FindStringSubmatch(u.Path)
	if matches == nil {
		return "", false
	}
	return matches[1], true
}

// IsIssueKey reports whether s looks like PROJECT-NUMBER.
func IsIssueKey(s string) bool {
	return keyPattern.MatchString(s)
}

// ResolvePageURL turns a command-line argument into a page URL.
// An absolute URL is used as is; a bare issue key is resolved
// against baseURL.
func ResolvePageURL(arg, baseURL string) (*url.URL, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return nil, ErrInvalidPageURL
	}

	if IsIssueKey(arg) {
		if baseURL == "" {
			return nil, ErrNoBaseURL
		}
		return parseAbsoluteURL(BrowseURL(baseURL, arg))
	}

	return parseAbsoluteURL(arg)
}

func parseAbsoluteURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, ErrInvalidPageURL
	}
	return u, nil
}
