package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"), nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultColumnWidth, cfg.Editor.DefaultColumnWidth)
	assert.Equal(t, DefaultMaxNotifications, cfg.Editor.MaxNotifications)
	assert.Equal(t, 0, cfg.Editor.UndoLimit)
	assert.Equal(t, "info", cfg.Logger.LogLevel)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[logger]
log_level = "debug"
enabled_tags = ["history"]

[editor]
default_column_width = 12
max_notifications = 8
undo_limit = 100
system_clipboard = true
`)
	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logger.LogLevel)
	assert.Equal(t, []string{"history"}, cfg.Logger.EnabledTags)
	assert.Equal(t, 12, cfg.Editor.DefaultColumnWidth)
	assert.Equal(t, 8, cfg.Editor.MaxNotifications)
	assert.Equal(t, 100, cfg.Editor.UndoLimit)
	assert.True(t, cfg.Editor.SystemClipboard)
	assert.Equal(t, DefaultMinColumnWidth, cfg.Editor.MinColumnWidth)
}

func TestValidateResetsBadValues(t *testing.T) {
	path := writeConfig(t, `
[editor]
default_column_width = -3
min_column_width = 10
max_column_width = 4
undo_limit = -1
scroll_off = -2
`)
	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultColumnWidth, cfg.Editor.DefaultColumnWidth)
	assert.Equal(t, 10, cfg.Editor.MinColumnWidth)
	assert.Equal(t, DefaultMaxColumnWidth, cfg.Editor.MaxColumnWidth)
	assert.Equal(t, DefaultUndoLimit, cfg.Editor.UndoLimit)
	assert.Equal(t, DefaultScrollOff, cfg.Editor.ScrollOff)
}

func TestParseErrorFallsBackToDefaults(t *testing.T) {
	path := writeConfig(t, "[editor\nbroken")
	cfg, err := Load(path, nil)
	assert.Error(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, DefaultColumnWidth, cfg.Editor.DefaultColumnWidth)
}

func TestFlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, `
[editor]
scroll_off = 4
`)
	flags := NewFlags("tabula")
	rest, err := flags.Parse([]string{"-scrolloff", "0", "-log-tags", "history, find", "-undo-limit", "3", "data.csv"})
	require.NoError(t, err)
	assert.Equal(t, []string{"data.csv"}, rest)

	cfg, err := Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Editor.ScrollOff)
	assert.Equal(t, 3, cfg.Editor.UndoLimit)
	assert.Equal(t, []string{"history", "find"}, cfg.Logger.EnabledTags)
}

func TestUnsetFlagsDoNotOverride(t *testing.T) {
	path := writeConfig(t, `
[editor]
scroll_off = 4
`)
	flags := NewFlags("tabula")
	_, err := flags.Parse(nil)
	require.NoError(t, err)

	cfg, err := Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Editor.ScrollOff)
}

func TestSplitCommaList(t *testing.T) {
	assert.Nil(t, splitCommaList(""))
	assert.Equal(t, []string{"a", "b"}, splitCommaList(" a, ,b "))
}

func TestPluginValues(t *testing.T) {
	path := writeConfig(t, `
[plugins.autosave]
enabled = true
interval = "30s"
`)
	cfg, err := Load(path, nil)
	require.NoError(t, err)

	val, ok := cfg.PluginValue("autosave", "enabled")
	require.True(t, ok)
	assert.Equal(t, true, val)

	val, ok = cfg.PluginValue("autosave", "interval")
	require.True(t, ok)
	assert.Equal(t, "30s", val)

	_, ok = cfg.PluginValue("autosave", "missing")
	assert.False(t, ok)
	_, ok = cfg.PluginValue("cellstats", "enabled")
	assert.False(t, ok)
}
