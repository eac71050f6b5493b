// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/jira-clean-copy/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	localDir      string // Working directory holding .jiracopy.toml
	globalConfDir string // Path to global config directory (e.g., ~/.config/jira-clean-copy)
}

// NewLoader creates a new Loader.
func NewLoader(localDir string) *Loader {
	return &Loader{
		localDir:      localDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(localDir, globalConfDir string) *Loader {
	return &Loader{
		localDir:      localDir,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// fileConfig mirrors domain.Config with pointer fields so that a value
// explicitly set to its zero value still overrides a lower layer.
type fileConfig struct {
	Jira struct {
		BaseURL       *string `toml:"base_url"`
		SessionCookie *string `toml:"session_cookie"`
		Timeout       *int    `toml:"timeout"`
	} `toml:"jira"`
	Notify struct {
		DismissDelay *int  `toml:"dismiss_delay"`
		Desktop      *bool `toml:"desktop"`
	} `toml:"notify"`
	Keys struct {
		Branch   *string `toml:"branch"`
		URL      *string `toml:"url"`
		Markdown *string `toml:"markdown"`
		Plain    *string `toml:"plain"`
	} `toml:"keys"`
	Log struct {
		Level *string `toml:"level"`
	} `toml:"log"`
}

// knownKeys lists the accepted keys per section.
var knownKeys = map[string][]string{
	"jira":   {"base_url", "session_cookie", "timeout"},
	"notify": {"dismiss_delay", "desktop"},
	"keys":   {"branch", "url", "markdown", "plain"},
	"log":    {"level"},
}

// Load returns the merged configuration (global + local).
// Local config takes precedence over global config.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()

	// Merge: default <- global <- local (later takes precedence)
	paths := []string{l.globalPath(), domain.LocalConfigPath(l.localDir)}
	for _, path := range paths {
		if path == "" {
			continue
		}
		fc, warnings, err := loadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		applyFileConfig(base, fc)
		base.Warnings = append(base.Warnings, warnings...)
	}

	_, keyWarnings := base.KeyBindings()
	base.Warnings = append(base.Warnings, keyWarnings...)

	return base, nil
}

func (l *Loader) globalPath() string {
	if l.globalConfDir == "" {
		return ""
	}
	return filepath.Join(l.globalConfDir, domain.ConfigFileName)
}

// loadFile loads a configuration file and collects unknown-key warnings.
func loadFile(path string) (*fileConfig, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return nil, nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, nil, err
	}

	return &fc, unknownKeyWarnings(raw), nil
}

// unknownKeyWarnings reports sections and keys the loader does not understand.
func unknownKeyWarnings(raw map[string]any) []string {
	var warnings []string

	sections := make([]string, 0, len(raw))
	for section := range raw {
		sections = append(sections, section)
	}
	sort.Strings(sections)

	for _, section := range sections {
		known, ok := knownKeys[section]
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
			continue
		}
		m, ok := raw[section].(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("[%s] is not a table", section))
			continue
		}
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if !contains(known, k) {
				warnings = append(warnings, fmt.Sprintf("unknown key in [%s]: %s", section, k))
			}
		}
	}

	return warnings
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// applyFileConfig overlays the values set in fc onto cfg.
func applyFileConfig(cfg *domain.Config, fc *fileConfig) {
	setString(&cfg.Jira.BaseURL, fc.Jira.BaseURL)
	setString(&cfg.Jira.SessionCookie, fc.Jira.SessionCookie)
	if fc.Jira.Timeout != nil {
		cfg.Jira.Timeout = *fc.Jira.Timeout
	}
	if fc.Notify.DismissDelay != nil {
		cfg.Notify.DismissDelay = *fc.Notify.DismissDelay
	}
	if fc.Notify.Desktop != nil {
		cfg.Notify.Desktop = *fc.Notify.Desktop
	}
	setString(&cfg.Keys.Branch, fc.Keys.Branch)
	setString(&cfg.Keys.URL, fc.Keys.URL)
	setString(&cfg.Keys.Markdown, fc.Keys.Markdown)
	setString(&cfg.Keys.Plain, fc.Keys.Plain)
	setString(&cfg.Log.Level, fc.Log.Level)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
