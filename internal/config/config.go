// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/bethropolis/scribe/internal/core"
	"github.com/bethropolis/scribe/internal/core/clipboard"
	"github.com/bethropolis/scribe/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"` // Embed logger config under [logger] table
	Editor EditorConfig  `toml:"editor"` // Editor-specific settings
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	TabWidth        int    `toml:"tab_width"`
	ScrollOff       int    `toml:"scroll_off"`
	SystemClipboard bool   `toml:"system_clipboard"`
	MaxHistory      int    `toml:"max_history"`
	DefaultLanguage string `toml:"default_language"` // Used when the file name gives no hint
	AutosaveDelay   string `toml:"autosave_delay"`   // Go duration; empty disables autosave
	Style           string `toml:"style"`            // Chroma style used for token colours
}

var (
	loadedConfig *Config
	loadOnce     sync.Once
	loadErr      error
)

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.Config{
			LogLevel:    "info",
			LogFilePath: "", // Empty means <config dir>/scribe.log
		},
		Editor: EditorConfig{
			TabWidth:        DefaultTabWidth,
			ScrollOff:       DefaultScrollOff,
			SystemClipboard: SystemClipboard,
			MaxHistory:      DefaultMaxHistory,
			Style:           DefaultStyle,
		},
	}
}

// loadFromFile attempts to load configuration from a TOML file on top of
// cfg. A missing file is not an error.
func loadFromFile(filePath string, cfg *Config, verbose bool) error {
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		if verbose {
			logger.Debugf("Config file not found: %s", filePath)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if len(metadata.Undecoded()) > 0 && verbose {
		logger.Warnf("Config file '%s': Unrecognized keys: %v", filePath, metadata.Undecoded())
	}
	if verbose {
		logger.Infof("Successfully loaded configuration from: %s", filePath)
	}
	return nil
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.TabWidth <= 0 {
		c.Editor.TabWidth = defaults.Editor.TabWidth
	}
	if c.Editor.ScrollOff < 0 { // Allow 0
		c.Editor.ScrollOff = defaults.Editor.ScrollOff
	}
	if c.Editor.MaxHistory <= 0 {
		c.Editor.MaxHistory = defaults.Editor.MaxHistory
	}
	if c.Editor.Style == "" {
		c.Editor.Style = defaults.Editor.Style
	}
	if c.Editor.AutosaveDelay != "" {
		if d, err := time.ParseDuration(c.Editor.AutosaveDelay); err != nil || d < 0 {
			c.Editor.AutosaveDelay = ""
		}
	}

	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}

// DefaultConfigPath returns ~/.config/scribe/config.toml, or "" if the
// user config directory is unknown.
func DefaultConfigPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, AppName, DefaultConfigFileName)
}

// Load builds a configuration from defaults, the TOML file and flag
// overrides, in that order. An empty configFilePath selects the default
// location. The returned config is usable even when err is non-nil.
func Load(configFilePath string, flags *Flags) (*Config, error) {
	// The logger is not initialized yet during startup.
	verbose := false

	cfg := NewDefaultConfig()

	effectivePath := configFilePath
	if effectivePath == "" {
		effectivePath = DefaultConfigPath()
	}

	var err error
	if effectivePath != "" {
		err = loadFromFile(effectivePath, cfg, verbose)
	}

	if flags != nil {
		flags.ApplyOverrides(cfg, verbose)
	}

	cfg.validate()
	return cfg, err
}

// LoadConfig loads the configuration once and stores it for Get.
// It should be called only once, typically from main.
func LoadConfig(configFilePath string, flags *Flags) (*Config, error) {
	loadOnce.Do(func() {
		loadedConfig, loadErr = Load(configFilePath, flags)
	})
	return loadedConfig, loadErr
}

// Get returns the loaded application configuration. Panics if LoadConfig wasn't called.
func Get() *Config {
	if loadedConfig == nil {
		// This indicates a programming error - LoadConfig should be called in main.
		panic("config.Get() called before config.LoadConfig()")
	}
	return loadedConfig
}

// Autosave returns the idle delay before an automatic save; 0 disables it.
func (e EditorConfig) Autosave() time.Duration {
	if e.AutosaveDelay == "" {
		return 0
	}
	d, err := time.ParseDuration(e.AutosaveDelay)
	if err != nil || d < 0 {
		return 0
	}
	return d
}

// CoreOptions converts the editor settings into options for core.NewEditor.
func (e EditorConfig) CoreOptions() core.Options {
	opts := core.Options{
		TabWidth:   e.TabWidth,
		ScrollOff:  e.ScrollOff,
		MaxHistory: e.MaxHistory,
	}
	if e.SystemClipboard {
		opts.Clipboard = clipboard.NewSystemProvider()
	}
	return opts
}
