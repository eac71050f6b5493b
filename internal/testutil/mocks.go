// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"

	"github.com/runoshun/jira-clean-copy/internal/domain"
)

// MockIssueFetcher is a test double for domain.IssueFetcher.
// Fields are ordered to minimize memory padding.
type MockIssueFetcher struct {
	Issues  map[string]*domain.Issue
	Err     error
	Origins []string
	Keys    []string
	mu      sync.Mutex
}

// NewMockIssueFetcher creates a MockIssueFetcher serving the given issues.
func NewMockIssueFetcher(issues ...domain.Issue) *MockIssueFetcher {
	m := &MockIssueFetcher{Issues: make(map[string]*domain.Issue)}
	for i := range issues {
		issue := issues[i]
		m.Issues[issue.Key] = &issue
	}
	return m
}

// GetIssue returns the configured issue or error.
func (m *MockIssueFetcher) GetIssue(_ context.Context, origin, key string) (*domain.Issue, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Origins = append(m.Origins, origin)
	m.Keys = append(m.Keys, key)
	if m.Err != nil {
		return nil, m.Err
	}
	issue, ok := m.Issues[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s: status 404", domain.ErrIssueLookup, key)
	}
	copied := *issue
	return &copied, nil
}

// Calls returns the number of lookups made.
func (m *MockIssueFetcher) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Keys)
}

// MockClipboard is a test double for domain.Clipboard.
type MockClipboard struct {
	Err    error
	Writes []string
	mu     sync.Mutex
}

// SetText records the text.
func (m *MockClipboard) SetText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Writes = append(m.Writes, text)
	return nil
}

// Last returns the most recent write, or "".
func (m *MockClipboard) Last() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Writes) == 0 {
		return ""
	}
	return m.Writes[len(m.Writes)-1]
}

// MockNotifier is a test double for domain.Notifier.
type MockNotifier struct {
	Messages []string
	mu       sync.Mutex
}

// Show records the message.
func (m *MockNotifier) Show(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Messages = append(m.Messages, text)
}

// Count returns the number of messages shown.
func (m *MockNotifier) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Messages)
}

// MockCommandRegistry is a test double for domain.CommandRegistry.
type MockCommandRegistry struct {
	Callbacks map[string]func()
	Labels    []string
	Err       error
}

// NewMockCommandRegistry creates an empty MockCommandRegistry.
func NewMockCommandRegistry() *MockCommandRegistry {
	return &MockCommandRegistry{Callbacks: make(map[string]func())}
}

// Register records the command.
func (m *MockCommandRegistry) Register(label string, callback func()) error {
	if m.Err != nil {
		return m.Err
	}
	m.Labels = append(m.Labels, label)
	m.Callbacks[label] = callback
	return nil
}

// Invoke runs a registered callback. It returns false if label is unknown.
func (m *MockCommandRegistry) Invoke(label string) bool {
	cb, ok := m.Callbacks[label]
	if !ok {
		return false
	}
	cb()
	return true
}

// MockPage is a mutable test double for domain.Page.
type MockPage struct {
	URL      *url.URL
	Selected string
}

// NewMockPage parses rawURL into a MockPage. It panics on a bad URL.
func NewMockPage(rawURL string) *MockPage {
	u, err := url.Parse(rawURL)
	if err != nil {
		panic(err)
	}
	return &MockPage{URL: u}
}

// Location returns the page URL.
func (m *MockPage) Location() *url.URL {
	return m.URL
}

// Selection returns the selected text.
func (m *MockPage) Selection() string {
	return m.Selected
}

// MockBranchCreator is a test double for domain.BranchCreator.
// Fields are ordered to minimize memory padding.
type MockBranchCreator struct {
	Existing   map[string]bool
	ExistsErr  error
	CreateErr  error
	CurrentErr error
	Current    string
	Created    []string
	Checkout   bool
}

// NewMockBranchCreator creates a MockBranchCreator with the given existing branches.
func NewMockBranchCreator(existing ...string) *MockBranchCreator {
	m := &MockBranchCreator{Existing: make(map[string]bool), Current: "main"}
	for _, b := range existing {
		m.Existing[b] = true
	}
	return m
}

// CurrentBranch returns Current.
func (m *MockBranchCreator) CurrentBranch() (string, error) {
	if m.CurrentErr != nil {
		return "", m.CurrentErr
	}
	return m.Current, nil
}

// BranchExists reports whether name was registered as existing.
func (m *MockBranchCreator) BranchExists(name string) (bool, error) {
	if m.ExistsErr != nil {
		return false, m.ExistsErr
	}
	return m.Existing[name], nil
}

// CreateBranch records the branch.
func (m *MockBranchCreator) CreateBranch(name string, checkout bool) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.Created = append(m.Created, name)
	m.Existing[name] = true
	m.Checkout = checkout
	if checkout {
		m.Current = name
	}
	return nil
}

// LogEntry is a single entry captured by MockLogger.
type LogEntry struct {
	Level    string
	IssueKey string
	Category string
	Msg      string
}

// MockLogger is a test double for domain.Logger.
type MockLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

func (m *MockLogger) add(level, key, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, LogEntry{Level: level, IssueKey: key, Category: category, Msg: msg})
}

// Debug records a debug entry.
func (m *MockLogger) Debug(key, category, msg string) { m.add("DEBUG", key, category, msg) }

// Info records an info entry.
func (m *MockLogger) Info(key, category, msg string) { m.add("INFO", key, category, msg) }

// Warn records a warning entry.
func (m *MockLogger) Warn(key, category, msg string) { m.add("WARN", key, category, msg) }

// Error records an error entry.
func (m *MockLogger) Error(key, category, msg string) { m.add("ERROR", key, category, msg) }

// HasLevel reports whether any entry was logged at level.
func (m *MockLogger) HasLevel(level string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.Entries {
		if e.Level == level {
			return true
		}
	}
	return false
}

// ErrMock is a generic error for failure-path tests.
var ErrMock = errors.New("mock error")

// Compile-time interface checks.
var (
	_ domain.IssueFetcher    = (*MockIssueFetcher)(nil)
	_ domain.Clipboard       = (*MockClipboard)(nil)
	_ domain.Notifier        = (*MockNotifier)(nil)
	_ domain.CommandRegistry = (*MockCommandRegistry)(nil)
	_ domain.Page            = (*MockPage)(nil)
	_ domain.BranchCreator   = (*MockBranchCreator)(nil)
	_ domain.Logger          = (*MockLogger)(nil)
)
