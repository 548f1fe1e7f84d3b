package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/tabula/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger  logger.Config                     `toml:"logger"`
	Editor  EditorConfig                      `toml:"editor"`
	Plugins map[string]map[string]interface{} `toml:"plugins"`
}

// EditorConfig holds grid editor settings.
type EditorConfig struct {
	DefaultColumnWidth int    `toml:"default_column_width"`
	MinColumnWidth     int    `toml:"min_column_width"`
	MaxColumnWidth     int    `toml:"max_column_width"`
	MaxNotifications   int    `toml:"max_notifications"`
	UndoLimit          int    `toml:"undo_limit"`
	ScrollOff          int    `toml:"scroll_off"`
	SystemClipboard    bool   `toml:"system_clipboard"`
	ThemeFile          string `toml:"theme_file"`
}

// NewDefaultConfig creates a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.Config{
			LogLevel:    "info",
			LogFilePath: DefaultLogFileName,
		},
		Editor: EditorConfig{
			DefaultColumnWidth: DefaultColumnWidth,
			MinColumnWidth:     DefaultMinColumnWidth,
			MaxColumnWidth:     DefaultMaxColumnWidth,
			MaxNotifications:   DefaultMaxNotifications,
			UndoLimit:          DefaultUndoLimit,
			ScrollOff:          DefaultScrollOff,
			SystemClipboard:    SystemClipboard,
		},
		Plugins: make(map[string]map[string]interface{}),
	}
}

// PluginValue returns a value from the [plugins.<name>] table.
func (c *Config) PluginValue(pluginName, key string) (interface{}, bool) {
	table, ok := c.Plugins[pluginName]
	if !ok {
		return nil, false
	}
	val, ok := table[key]
	return val, ok
}

// DefaultPath returns the config file location under the user config dir,
// or "" when that directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, DefaultConfigFileName)
}

// ThemesDir returns the directory scanned for custom themes, next to the
// default config file.
func ThemesDir() string {
	path := DefaultPath()
	if path == "" {
		return ""
	}
	return filepath.Join(filepath.Dir(path), ThemesDirName)
}

// loadFromFile decodes path over cfg. A missing file is not an error.
func loadFromFile(path string, cfg *Config) (toml.MetaData, error) {
	meta, err := toml.DecodeFile(path, cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return meta, nil
	}
	if err != nil {
		return meta, fmt.Errorf("failed to parse config file '%s': %w", path, err)
	}
	return meta, nil
}

// validate resets out-of-range values to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.DefaultColumnWidth <= 0 {
		c.Editor.DefaultColumnWidth = defaults.Editor.DefaultColumnWidth
	}
	if c.Editor.MinColumnWidth <= 0 {
		c.Editor.MinColumnWidth = defaults.Editor.MinColumnWidth
	}
	if c.Editor.MaxColumnWidth < c.Editor.MinColumnWidth {
		c.Editor.MaxColumnWidth = max(defaults.Editor.MaxColumnWidth, c.Editor.MinColumnWidth)
	}
	if c.Editor.MaxNotifications <= 0 {
		c.Editor.MaxNotifications = defaults.Editor.MaxNotifications
	}
	if c.Editor.UndoLimit < 0 {
		c.Editor.UndoLimit = defaults.Editor.UndoLimit
	}
	if c.Editor.ScrollOff < 0 {
		c.Editor.ScrollOff = defaults.Editor.ScrollOff
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}

// Load builds the configuration: defaults, then the TOML file (configPath,
// or the default location when empty), then any flags that were set, then
// validation. Decode errors are returned alongside a usable default config.
func Load(configPath string, flags *Flags) (*Config, error) {
	cfg := NewDefaultConfig()

	path := configPath
	if path == "" {
		path = DefaultPath()
	}

	var loadErr error
	if path != "" {
		meta, err := loadFromFile(path, cfg)
		if err != nil {
			loadErr = err
			cfg = NewDefaultConfig()
		} else if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			logger.WarnTagf("config", "Config file '%s': Unrecognized keys: %v", path, undecoded)
		}
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}
	cfg.validate()
	return cfg, loadErr
}
