package domain

import (
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, 2*time.Second, cfg.DismissDelay())
	assert.Equal(t, 10*time.Second, cfg.LookupTimeout())
	assert.False(t, cfg.Notify.Desktop)
}

func TestConfig_DurationFallbacks(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, 2*time.Second, cfg.DismissDelay())
	assert.Equal(t, 10*time.Second, cfg.LookupTimeout())

	cfg.Notify.DismissDelay = 500
	cfg.Jira.Timeout = 3
	assert.Equal(t, 500*time.Millisecond, cfg.DismissDelay())
	assert.Equal(t, 3*time.Second, cfg.LookupTimeout())
}

func TestConfig_KeyBindings_Defaults(t *testing.T) {
	bindings, warnings := NewDefaultConfig().KeyBindings()
	assert.Empty(t, warnings)
	assert.Equal(t, DefaultKeyBindings(), bindings)
}

func TestConfig_KeyBindings_Custom(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Keys.Branch = "KeyB"
	cfg.Keys.URL = "Digit1"

	bindings, warnings := cfg.KeyBindings()
	assert.Empty(t, warnings)
	assert.Equal(t, ModeBranch, bindings["KeyB"])
	assert.Equal(t, ModeURL, bindings["Digit1"])
	_, stillBound := bindings["KeyC"]
	assert.False(t, stillBound)
}

func TestConfig_KeyBindings_InvalidFallsBack(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Keys.Plain = "enter"

	bindings, warnings := cfg.KeyBindings()
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "[keys] plain")
	assert.Equal(t, ModePlain, bindings[DefaultPlainKey])
}

func TestConfig_KeyBindings_Clash(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Keys.URL = "KeyC"

	bindings, warnings := cfg.KeyBindings()
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "already bound to branch, using KeyZ")
	assert.Equal(t, ModeBranch, bindings["KeyC"])
	assert.Equal(t, ModeURL, bindings[DefaultURLKey])
	assert.Len(t, bindings, 4)
}

func TestConfig_KeyBindings_ClashWithDefaultTaken(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Keys.Branch = "KeyZ"

	bindings, warnings := cfg.KeyBindings()
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "[keys] url: KeyZ already bound to branch")
	assert.Equal(t, ModeBranch, bindings["KeyZ"])
	assert.NotContains(t, bindings, DefaultBranchKey)
	assert.Len(t, bindings, 3)
}

func TestRenderConfigTemplate_IsValidTOML(t *testing.T) {
	out := RenderConfigTemplate(NewDefaultConfig())

	var cfg Config
	require.NoError(t, toml.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, DefaultDismissDelay, cfg.Notify.DismissDelay)
	assert.Equal(t, DefaultBranchKey, cfg.Keys.Branch)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
}

func TestPaths(t *testing.T) {
	assert.Equal(t, "/cfg/jira-clean-copy/config.toml", GlobalConfigPath("/cfg"))
	assert.Equal(t, "/work/.jiracopy.toml", LocalConfigPath("/work"))
	assert.Equal(t, "/state/jira-clean-copy/logs/jiracopy.log", GlobalLogPath(StateDir("/state")))
	assert.Equal(t, "/s/logs/issue-ABC-1.log", IssueLogPath("/s", "ABC-1"))
}
