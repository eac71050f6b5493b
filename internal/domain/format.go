package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// Mode selects the representation copied to the clipboard.
type Mode string

// Copy modes.
const (
	ModeBranch   Mode = "branch"
	ModePlain    Mode = "plain"
	ModeMarkdown Mode = "markdown"
	ModeURL      Mode = "url"
)

// AllModes returns every mode in display order.
func AllModes() []Mode {
	return []Mode{ModeBranch, ModePlain, ModeMarkdown, ModeURL}
}

// IsValid reports whether m is a known mode.
func (m Mode) IsValid() bool {
	switch m {
	case ModeBranch, ModePlain, ModeMarkdown, ModeURL:
		return true
	}
	return false
}

// ParseMode parses a mode name.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if !m.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
	return m, nil
}

var (
	nonWordPattern        = regexp.MustCompile(`\W`)
	repeatedDashesPattern = regexp.MustCompile(`-+`)
	trailingNonWord       = regexp.MustCompile(`\W$`)
)

// BranchSlug normalizes a summary for use in a branch name.
// Non-word characters become single hyphens with none at either end.
func BranchSlug(summary string) string {
	s := nonWordPattern.ReplaceAllString(summary, "-")
	s = repeatedDashesPattern.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// PlainSummary strips one trailing non-word character from summary.
func PlainSummary(summary string) string {
	return trailingNonWord.ReplaceAllString(summary, "")
}

// Format renders the issue in the given mode.
// origin is used for the markdown and url modes.
func Format(issue Issue, origin string, mode Mode) string {
	switch mode {
	case ModeBranch:
		return issue.Key + "-" + BranchSlug(issue.Summary)
	case ModeMarkdown:
		plain := issue.Key + ": " + PlainSummary(issue.Summary)
		return "[" + plain + "](" + BrowseURL(origin, issue.Key) + ")"
	case ModeURL:
		return BrowseURL(origin, issue.Key)
	default:
		return issue.Key + ": " + PlainSummary(issue.Summary)
	}
}

// StatusMessage returns the confirmation shown after a copy.
func StatusMessage(key string, mode Mode) string {
	switch mode {
	case ModeBranch:
		return fmt.Sprintf("Issue '%s' copied to clipboard as branch name", key)
	case ModeURL:
		return fmt.Sprintf("Issue '%s' URL copied to clipboard", key)
	default:
		return fmt.Sprintf("Issue '%s' copied to clipboard", key)
	}
}
