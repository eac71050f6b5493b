// Package logging provides file-based logging for jira-clean-copy.
// It outputs logs to both a global log file (<state>/logs/jiracopy.log)
// and issue-specific log files (<state>/logs/issue-KEY.log).
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/runoshun/jira-clean-copy/internal/domain"
)

// Ensure Logger implements domain.Logger interface.
var _ domain.Logger = (*Logger)(nil)

// Logger wraps slog.Logger with file-based output support.
// Fields are ordered to minimize memory padding.
type Logger struct {
	globalFile *os.File
	issueFiles map[string]*os.File
	stateDir   string
	mu         sync.Mutex
	level      slog.Level
}

// New creates a new Logger that writes below stateDir.
// If stateDir is empty, logging is disabled.
func New(stateDir string, level slog.Level) *Logger {
	return &Logger{
		stateDir:   stateDir,
		level:      level,
		issueFiles: make(map[string]*os.File),
	}
}

// DefaultStateDir returns $XDG_STATE_HOME/jira-clean-copy or
// ~/.local/state/jira-clean-copy. It returns "" if neither resolves.
func DefaultStateDir() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return domain.StateDir(stateHome)
}

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ensureLogsDir creates the logs directory if it doesn't exist.
func (l *Logger) ensureLogsDir() error {
	logsDir := filepath.Join(l.stateDir, "logs")
	return os.MkdirAll(logsDir, 0o750)
}

// ensureGlobalFile opens or returns the global log file.
func (l *Logger) ensureGlobalFile() (*os.File, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.globalFile != nil {
		return l.globalFile, nil
	}

	if err := l.ensureLogsDir(); err != nil {
		return nil, fmt.Errorf("create logs directory: %w", err)
	}

	path := domain.GlobalLogPath(l.stateDir)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open global log file: %w", err)
	}
	l.globalFile = f
	return f, nil
}

// ensureIssueFile opens or returns the issue log file.
func (l *Logger) ensureIssueFile(key string) (*os.File, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if f, ok := l.issueFiles[key]; ok {
		return f, nil
	}

	if err := l.ensureLogsDir(); err != nil {
		return nil, fmt.Errorf("create logs directory: %w", err)
	}

	path := domain.IssueLogPath(l.stateDir, key)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open issue log file: %w", err)
	}
	l.issueFiles[key] = f
	return f, nil
}

// Close closes all open log files.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var lastErr error
	if l.globalFile != nil {
		if err := l.globalFile.Close(); err != nil {
			lastErr = err
		}
		l.globalFile = nil
	}
	for key, f := range l.issueFiles {
		if err := f.Close(); err != nil {
			lastErr = err
		}
		delete(l.issueFiles, key)
	}
	return lastErr
}

// formatLog formats a log entry in the specified format.
// Format: [2025-12-30 09:32:51] [INFO] [ABC-123] [category] message
func formatLog(t time.Time, level slog.Level, issueKey, category, msg string) string {
	levelStr := levelToString(level)
	scope := "global"
	if issueKey != "" {
		scope = issueKey
	}
	return fmt.Sprintf("[%s] [%s] [%s] [%s] %s\n",
		t.Format("2006-01-02 15:04:05"),
		levelStr,
		scope,
		category,
		msg,
	)
}

func levelToString(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "DEBUG"
	case slog.LevelInfo:
		return "INFO"
	case slog.LevelWarn:
		return "WARN"
	case slog.LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// log writes a log entry to appropriate files based on issueKey.
// An empty key logs only to the global log; otherwise the entry
// also goes to the issue log.
func (l *Logger) log(level slog.Level, issueKey, category, msg string) {
	if l.stateDir == "" {
		return // Logging disabled
	}

	if level < l.level {
		return // Skip if below minimum level
	}

	now := time.Now()
	entry := formatLog(now, level, issueKey, category, msg)

	// Write to global log
	if gf, err := l.ensureGlobalFile(); err == nil {
		_, _ = io.WriteString(gf, entry)
	}

	// Issue keys come from page URLs; only well-formed keys get their own file.
	if issueKey != "" && domain.IsIssueKey(issueKey) {
		if f, err := l.ensureIssueFile(issueKey); err == nil {
			_, _ = io.WriteString(f, entry)
		}
	}
}

// Info logs an info message.
func (l *Logger) Info(issueKey, category, msg string) {
	l.log(slog.LevelInfo, issueKey, category, msg)
}

// Debug logs a debug message.
func (l *Logger) Debug(issueKey, category, msg string) {
	l.log(slog.LevelDebug, issueKey, category, msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(issueKey, category, msg string) {
	l.log(slog.LevelWarn, issueKey, category, msg)
}

// Error logs an error message.
func (l *Logger) Error(issueKey, category, msg string) {
	l.log(slog.LevelError, issueKey, category, msg)
}
