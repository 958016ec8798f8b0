package config

import (
	"time"

	"github.com/bethropolis/scribe/internal/core"
)

// Base application details
const AppName = "scribe"
const DefaultConfigFileName = "config.toml" // Main config file
const DefaultLogFileName = "scribe.log"

// UI Layout
const StatusBarHeight = 1

// Status Bar
const MessageTimeout = 4 * time.Second

// Editor defaults
const DefaultTabWidth = core.DefaultTabWidth
const DefaultScrollOff = core.DefaultScrollOff
const DefaultMaxHistory = 100
const DefaultStyle = "monokai"
const SystemClipboard = true
