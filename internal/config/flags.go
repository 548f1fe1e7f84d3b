package config

import (
	"flag"
	"fmt"
	"strings"

	"github.com/bethropolis/tabula/internal/logger"
)

// Flags holds values parsed from command-line flags. Pointers let
// ApplyOverrides tell an unset flag from a zero value.
type Flags struct {
	set *flag.FlagSet

	ConfigFilePath  *string
	Version         *bool
	LogLevel        *string
	LogFilePath     *string
	ScrollOff       *int
	ColumnWidth     *int
	UndoLimit       *int
	EnableTags      *string
	DisableTags     *string
	EnablePkgs      *string
	DisablePkgs     *string
	EnableFiles     *string
	DisableFiles    *string
	DebugLog        *bool
	SystemClipboard *bool
	ThemeFile       *string
}

// NewFlags defines every flag on a fresh FlagSet.
func NewFlags(name string) *Flags {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	f := &Flags{set: fs}
	f.ConfigFilePath = fs.String("config", "", fmt.Sprintf("Path to TOML configuration file (default ~/.config/%s/%s)", AppName, DefaultConfigFileName))
	f.Version = fs.Bool("version", false, "Show version information and exit")
	f.LogLevel = fs.String("loglevel", "", "Log level (debug, info, warn, error) - Overrides config file")
	f.LogFilePath = fs.String("logfile", "", "Path to write log file (use '-' for stderr) - Overrides config file")
	f.ScrollOff = fs.Int("scrolloff", -1, "Rows of context above/below the cursor - Overrides config file")
	f.ColumnWidth = fs.Int("colwidth", 0, "Default column width - Overrides config file")
	f.UndoLimit = fs.Int("undo-limit", -1, "Maximum undo depth, 0 for unlimited - Overrides config file")
	f.EnableTags = fs.String("log-tags", "", "Comma-separated list of tags to enable - Overrides config file")
	f.DisableTags = fs.String("log-disable-tags", "", "Comma-separated list of tags to disable - Overrides config file")
	f.EnablePkgs = fs.String("log-packages", "", "Comma-separated list of packages to enable - Overrides config file")
	f.DisablePkgs = fs.String("log-disable-packages", "", "Comma-separated list of packages to disable - Overrides config file")
	f.EnableFiles = fs.String("log-files", "", "Comma-separated list of files to enable - Overrides config file")
	f.DisableFiles = fs.String("log-disable-files", "", "Comma-separated list of files to disable - Overrides config file")
	f.DebugLog = fs.Bool("debug-log", false, "Enable verbose debug logging for the logger filtering system")
	f.SystemClipboard = fs.Bool("system-clipboard", false, "Mirror copies to the system clipboard")
	f.ThemeFile = fs.String("theme", "", "Path to a TOML theme file - Overrides config file")
	return f
}

// Parse parses args and returns the remaining positional arguments
// (the file to open).
func (f *Flags) Parse(args []string) ([]string, error) {
	if err := f.set.Parse(args); err != nil {
		return nil, err
	}
	return f.set.Args(), nil
}

// ApplyOverrides copies every flag that was explicitly set into cfg.
func (f *Flags) ApplyOverrides(cfg *Config) {
	f.set.Visit(func(fl *flag.Flag) {
		logger.DebugTagf("config", "Applying flag override: %s=%s", fl.Name, fl.Value)
		switch fl.Name {
		case "loglevel":
			if *f.LogLevel != "" {
				cfg.Logger.LogLevel = *f.LogLevel
			}
		case "logfile":
			cfg.Logger.LogFilePath = *f.LogFilePath
		case "scrolloff":
			if *f.ScrollOff >= 0 {
				cfg.Editor.ScrollOff = *f.ScrollOff
			}
		case "colwidth":
			if *f.ColumnWidth > 0 {
				cfg.Editor.DefaultColumnWidth = *f.ColumnWidth
			}
		case "undo-limit":
			if *f.UndoLimit >= 0 {
				cfg.Editor.UndoLimit = *f.UndoLimit
			}
		case "system-clipboard":
			cfg.Editor.SystemClipboard = *f.SystemClipboard
		case "theme":
			cfg.Editor.ThemeFile = *f.ThemeFile
		case "log-tags":
			cfg.Logger.EnabledTags = splitCommaList(*f.EnableTags)
		case "log-disable-tags":
			cfg.Logger.DisabledTags = splitCommaList(*f.DisableTags)
		case "log-packages":
			cfg.Logger.EnabledPackages = splitCommaList(*f.EnablePkgs)
		case "log-disable-packages":
			cfg.Logger.DisabledPackages = splitCommaList(*f.DisablePkgs)
		case "log-files":
			cfg.Logger.EnabledFiles = splitCommaList(*f.EnableFiles)
		case "log-disable-files":
			cfg.Logger.DisabledFiles = splitCommaList(*f.DisableFiles)
		}
	})
}

func splitCommaList(list string) []string {
	if list == "" {
		return nil
	}
	items := strings.Split(list, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
