package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/runoshun/jira-clean-copy/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager manages configuration files.
type Manager struct {
	localDir      string // Working directory holding .jiracopy.toml
	globalConfDir string // Path to global config directory
}

// NewManager creates a new Manager.
func NewManager(localDir string) *Manager {
	return &Manager{
		localDir:      localDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewManagerWithGlobalDir creates a new Manager with a custom global config directory.
// This is useful for testing.
func NewManagerWithGlobalDir(localDir, globalConfDir string) *Manager {
	return &Manager{
		localDir:      localDir,
		globalConfDir: globalConfDir,
	}
}

// LocalConfigInfo returns information about the working-directory config file.
func (m *Manager) LocalConfigInfo() domain.ConfigInfo {
	return configInfo(domain.LocalConfigPath(m.localDir))
}

// GlobalConfigInfo returns information about the global config file.
func (m *Manager) GlobalConfigInfo() domain.ConfigInfo {
	if m.globalConfDir == "" {
		return domain.ConfigInfo{}
	}
	return configInfo(filepath.Join(m.globalConfDir, domain.ConfigFileName))
}

func configInfo(path string) domain.ConfigInfo {
	_, err := os.Stat(path)
	return domain.ConfigInfo{
		Path:   path,
		Exists: err == nil,
	}
}

// InitLocalConfig creates a working-directory config file with default template.
func (m *Manager) InitLocalConfig(cfg *domain.Config) error {
	return initConfig(domain.LocalConfigPath(m.localDir), cfg)
}

// InitGlobalConfig creates a global config file with default template.
func (m *Manager) InitGlobalConfig(cfg *domain.Config) error {
	if m.globalConfDir == "" {
		return errors.New("global config directory not available")
	}

	// Create parent directory if it doesn't exist
	if err := os.MkdirAll(m.globalConfDir, 0o700); err != nil {
		return err
	}

	return initConfig(filepath.Join(m.globalConfDir, domain.ConfigFileName), cfg)
}

// initConfig creates a config file with default template.
func initConfig(path string, cfg *domain.Config) error {
	if _, err := os.Stat(path); err == nil {
		return domain.ErrConfigExists
	}

	content := domain.RenderConfigTemplate(cfg)

	// The file may hold a session cookie.
	return os.WriteFile(path, []byte(content), 0o600)
}
