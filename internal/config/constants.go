package config

import "time"

// Base application details
const AppName = "tabula"
const ThemesDirName = "themes"
const DefaultThemeFileName = "theme.toml"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "tabula.log"

// UI Layout
const StatusBarHeight = 1
const ColumnHeaderHeight = 1

// Status Bar
const MessageTimeout = 4 * time.Second

// Grid defaults
const DefaultColumnWidth = 15
const DefaultMinColumnWidth = 5
const DefaultMaxColumnWidth = 50
const DefaultMaxNotifications = 5
const DefaultUndoLimit = 0 // bounded only by memory
const DefaultScrollOff = 1
const SystemClipboard = false
