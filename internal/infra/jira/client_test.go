package jira

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/runoshun/jira-clean-copy/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GetIssue(t *testing.T) {
	var gotPath, gotCookie, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotCookie = r.Header.Get("Cookie")
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"10001","key":"ABC-123","fields":{"summary":"Fix login bug!","status":{"name":"To Do"}}}`))
	}))
	defer srv.Close()

	c := NewClient("tenant.session.token=abc", 5*time.Second)
	issue, err := c.GetIssue(context.Background(), srv.URL, "ABC-123")

	require.NoError(t, err)
	assert.Equal(t, domain.Issue{Key: "ABC-123", Summary: "Fix login bug!"}, *issue)
	assert.Equal(t, "/rest/api/latest/issue/ABC-123", gotPath)
	assert.Equal(t, "tenant.session.token=abc", gotCookie)
	assert.Equal(t, "application/json", gotAccept)
}

func TestClient_GetIssue_NoCookie(t *testing.T) {
	var hadCookie bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hadCookie = r.Header["Cookie"]
		_, _ = w.Write([]byte(`{"fields":{"summary":""}}`))
	}))
	defer srv.Close()

	issue, err := NewClientWithHTTP(srv.Client(), "").GetIssue(context.Background(), srv.URL, "ABC-1")

	require.NoError(t, err)
	assert.False(t, hadCookie)
	assert.Equal(t, "ABC-1", issue.Key, "falls back to the requested key")
	assert.Equal(t, "", issue.Summary)
}

func TestClient_GetIssue_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"errorMessages":["Issue does not exist or you do not have permission to see it."]}`))
	}))
	defer srv.Close()

	_, err := NewClientWithHTTP(srv.Client(), "").GetIssue(context.Background(), srv.URL, "NOPE-1")

	require.ErrorIs(t, err, domain.ErrIssueLookup)
	assert.Contains(t, err.Error(), "status 404")
}

func TestClient_GetIssue_MalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>login</html>`))
	}))
	defer srv.Close()

	_, err := NewClientWithHTTP(srv.Client(), "").GetIssue(context.Background(), srv.URL, "ABC-1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode issue ABC-1")
}

func TestClient_GetIssue_MissingSummary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"key":"ABC-1","fields":{}}`))
	}))
	defer srv.Close()

	_, err := NewClientWithHTTP(srv.Client(), "").GetIssue(context.Background(), srv.URL, "ABC-1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing fields.summary")
}

func TestClient_GetIssue_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient("", time.Second).GetIssue(context.Background(), url, "ABC-1")

	assert.ErrorIs(t, err, domain.ErrIssueLookup)
}

func TestClient_GetIssue_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"fields":{"summary":"x"}}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClientWithHTTP(srv.Client(), "").GetIssue(ctx, srv.URL, "ABC-1")

	assert.ErrorIs(t, err, domain.ErrIssueLookup)
}
