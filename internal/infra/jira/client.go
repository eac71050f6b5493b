// Package jira looks up issues through the Jira REST API.
package jira

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/runoshun/jira-clean-copy/internal/domain"
)

// Ensure Client implements domain.IssueFetcher.
var _ domain.IssueFetcher = (*Client)(nil)

// maxErrorBody caps how much of an error response is kept.
const maxErrorBody = 512

// Client fetches single issues. It carries no auth logic of its own;
// an optional session cookie is forwarded verbatim.
type Client struct {
	httpClient    *http.Client
	sessionCookie string
}

// issueResponse is the subset of the issue payload that is consumed.
type issueResponse struct {
	Key    string `json:"key"`
	Fields struct {
		Summary *string `json:"summary"`
	} `json:"fields"`
}

// NewClient creates a new Client.
func NewClient(sessionCookie string, timeout time.Duration) *Client {
	return NewClientWithHTTP(&http.Client{Timeout: timeout}, sessionCookie)
}

// NewClientWithHTTP creates a new Client using httpClient.
// This is useful for testing.
func NewClientWithHTTP(httpClient *http.Client, sessionCookie string) *Client {
	return &Client{
		httpClient:    httpClient,
		sessionCookie: sessionCookie,
	}
}

// GetIssue fetches <origin>/rest/api/latest/issue/<key>.
func (c *Client) GetIssue(ctx context.Context, origin, key string) (*domain.Issue, error) {
	endpoint := domain.IssueAPIURL(origin, key)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.sessionCookie != "" {
		req.Header.Set("Cookie", c.sessionCookie)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrIssueLookup, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("%w: %s: status %d: %s", domain.ErrIssueLookup, key, resp.StatusCode, string(body))
	}

	var payload issueResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode issue %s: %w", key, err)
	}
	if payload.Fields.Summary == nil {
		return nil, fmt.Errorf("decode issue %s: missing fields.summary", key)
	}

	issueKey := payload.Key
	if issueKey == "" {
		issueKey = key
	}
	return &domain.Issue{Key: issueKey, Summary: *payload.Fields.Summary}, nil
}
