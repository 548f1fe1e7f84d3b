// Package logger provides configurable logging capabilities
package logger

import (
	"log/slog"
	"strings"
)

// Config holds all settings for the logger.
type Config struct {
	// LogLevel specifies the minimum level to log (e.g., "debug", "info", "warn", "error").
	LogLevel string `toml:"log_level"`

	// LogFilePath is the path to the output log file. Use empty or "-" for stderr.
	LogFilePath string `toml:"log_file"`

	// --- Filtering Options ---

	// EnabledTags only logs messages with these tags (if non-empty).
	EnabledTags []string `toml:"enabled_tags"`
	// DisabledTags prevents logging messages with these tags. Overrides EnabledTags.
	DisabledTags []string `toml:"disabled_tags"`

	// EnabledPackages only logs messages originating from these packages (if non-empty).
	// Package name is the immediate directory name (e.g., "core", "history", "app").
	EnabledPackages []string `toml:"enabled_packages"`
	// DisabledPackages prevents logging from these packages. Overrides EnabledPackages.
	DisabledPackages []string `toml:"disabled_packages"`

	// EnabledFiles only logs messages originating from these filenames (if non-empty).
	EnabledFiles []string `toml:"enabled_files"`
	// DisabledFiles prevents logging from these filenames. Overrides EnabledFiles.
	DisabledFiles []string `toml:"disabled_files"`

	// --- Internal processed fields ---
	level    slog.Level
	tags     filterSet
	packages filterSet
	files    filterSet
}

// filterSet is an allow/deny pair of lowercase keys. A nil map means "no rule".
type filterSet struct {
	enabled  map[string]struct{}
	disabled map[string]struct{}
}

// allows reports whether key passes the set. Disabled always wins over enabled.
func (f filterSet) allows(key string) bool {
	key = strings.ToLower(key)
	if _, found := f.disabled[key]; found {
		return false
	}
	if f.enabled != nil {
		_, found := f.enabled[key]
		return found
	}
	return true
}

// NewConfig creates a new Config with default values
func NewConfig() Config {
	return Config{
		LogLevel:    "info",
		LogFilePath: "",
	}
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// process parses string levels/lists into efficient internal formats.
func (c *Config) process() {
	c.level = ParseLevel(c.LogLevel)
	c.tags = filterSet{enabled: sliceToSet(c.EnabledTags), disabled: sliceToSet(c.DisabledTags)}
	c.packages = filterSet{enabled: sliceToSet(c.EnabledPackages), disabled: sliceToSet(c.DisabledPackages)}
	c.files = filterSet{enabled: sliceToSet(c.EnabledFiles), disabled: sliceToSet(c.DisabledFiles)}
	debugFilterf("processed config: level=%s tags=%+v packages=%+v files=%+v", c.level, c.tags, c.packages, c.files)
}

// helper function to convert slice to set
func sliceToSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item != "" {
			set[strings.ToLower(item)] = struct{}{}
		}
	}
	if len(set) == 0 {
		return nil // Use nil map if empty, simplifies checks later
	}
	return set
}
