package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"path/filepath"
	"text/template"
	"time"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string     `toml:"-"`
	Jira     JiraConfig   `toml:"jira"`
	Keys     KeysConfig   `toml:"keys"`
	Log      LogConfig    `toml:"log"`
	Notify   NotifyConfig `toml:"notify"`
}

// JiraConfig holds settings from the [jira] section.
type JiraConfig struct {
	BaseURL       string `toml:"base_url,omitempty"`       // Origin used to resolve bare issue keys
	SessionCookie string `toml:"session_cookie,omitempty"` // Cookie header sent verbatim with lookups
	Timeout       int    `toml:"timeout,omitempty"`        // Lookup timeout in seconds
}

// NotifyConfig holds settings from the [notify] section.
type NotifyConfig struct {
	DismissDelay int  `toml:"dismiss_delay,omitempty"` // Toast lifetime in milliseconds
	Desktop      bool `toml:"desktop,omitempty"`       // Also raise a desktop notification
}

// KeysConfig holds shortcut key codes from the [keys] section.
type KeysConfig struct {
	Branch   string `toml:"branch,omitempty"`
	URL      string `toml:"url,omitempty"`
	Markdown string `toml:"markdown,omitempty"`
	Plain    string `toml:"plain,omitempty"`
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // Log level: debug, info, warn, error
}

// Default configuration values.
const (
	DefaultLogLevel     = "info"
	DefaultDismissDelay = 2000
	DefaultTimeout      = 10
)

// Directory and file names for jira-clean-copy.
const (
	AppDirName          = "jira-clean-copy" // Directory name under XDG config/state homes
	ConfigFileName      = "config.toml"     // Global config file name
	LocalConfigFileName = ".jiracopy.toml"  // Config file name in the working directory
)

// GlobalConfigDir returns the global config directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// GlobalConfigPath returns the global config path.
func GlobalConfigPath(configHome string) string {
	return filepath.Join(GlobalConfigDir(configHome), ConfigFileName)
}

// LocalConfigPath returns the working-directory config path.
func LocalConfigPath(dir string) string {
	return filepath.Join(dir, LocalConfigFileName)
}

// StateDir returns the state directory for logs.
// stateHome is typically XDG_STATE_HOME or ~/.local/state.
func StateDir(stateHome string) string {
	return filepath.Join(stateHome, AppDirName)
}

// GlobalLogPath returns the path to the global log file.
func GlobalLogPath(stateDir string) string {
	return filepath.Join(stateDir, "logs", "jiracopy.log")
}

// IssueLogPath returns the path to the per-issue log file.
func IssueLogPath(stateDir, key string) string {
	return filepath.Join(stateDir, "logs", fmt.Sprintf("issue-%s.log", key))
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Jira: JiraConfig{
			Timeout: DefaultTimeout,
		},
		Keys: KeysConfig{
			Branch:   DefaultBranchKey,
			URL:      DefaultURLKey,
			Markdown: DefaultMarkdownKey,
			Plain:    DefaultPlainKey,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		Notify: NotifyConfig{
			DismissDelay: DefaultDismissDelay,
		},
	}
}

// DismissDelay returns the toast lifetime.
func (c *Config) DismissDelay() time.Duration {
	if c.Notify.DismissDelay <= 0 {
		return DefaultDismissDelay * time.Millisecond
	}
	return time.Duration(c.Notify.DismissDelay) * time.Millisecond
}

// LookupTimeout returns the remote lookup timeout.
func (c *Config) LookupTimeout() time.Duration {
	if c.Jira.Timeout <= 0 {
		return DefaultTimeout * time.Second
	}
	return time.Duration(c.Jira.Timeout) * time.Second
}

// KeyBindings builds the shortcut table from the [keys] section.
// Invalid or clashing codes are reported as warnings and the mode falls
// back to its default key. A mode whose default is also taken is left
// without a shortcut.
func (c *Config) KeyBindings() (KeyBindings, []string) {
	bindings := make(KeyBindings, 4)
	var warnings []string

	entries := []struct {
		mode     Mode
		code     string
		fallback string
	}{
		{ModeBranch, c.Keys.Branch, DefaultBranchKey},
		{ModeURL, c.Keys.URL, DefaultURLKey},
		{ModeMarkdown, c.Keys.Markdown, DefaultMarkdownKey},
		{ModePlain, c.Keys.Plain, DefaultPlainKey},
	}

	for _, e := range entries {
		code := e.code
		if code == "" {
			code = e.fallback
		}
		if err := ValidateKeyCode(code); err != nil {
			warnings = append(warnings, fmt.Sprintf("[keys] %s: %v", e.mode, err))
			code = e.fallback
		}
		if other, taken := bindings[code]; taken {
			if _, fallbackTaken := bindings[e.fallback]; code == e.fallback || fallbackTaken {
				warnings = append(warnings, fmt.Sprintf("[keys] %s: %s already bound to %s", e.mode, code, other))
				continue
			}
			warnings = append(warnings, fmt.Sprintf("[keys] %s: %s already bound to %s, using %s", e.mode, code, other, e.fallback))
			code = e.fallback
		}
		bindings[code] = e.mode
	}

	return bindings, warnings
}

// RenderConfigTemplate renders the commented starter config.
func RenderConfigTemplate(cfg *Config) string {
	tmpl, err := template.New("config").Parse(configTemplateContent)
	if err != nil {
		return configTemplateContent
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, cfg); err != nil {
		return configTemplateContent
	}
	return buf.String()
}
