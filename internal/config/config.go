// ABOUTME: JSON configuration: device filter lists and switch-time extras.
// ABOUTME: A missing or unparseable file silently degrades to the defaults.

package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/sndctl/sndctl/internal/filter"
	"github.com/sndctl/sndctl/internal/logging"
)

// Config is the on-disk configuration. All fields are optional.
type Config struct {
	// IgnoreDevices hides matching devices from every listing (deny-list mode).
	IgnoreDevices filter.List `json:"ignoreDevices"`
	// IncludeDevices, when non-empty, restricts listings to matching devices
	// and overrides IgnoreDevices entirely (allow-list mode).
	IncludeDevices filter.List `json:"includeDevices"`
	// NotifyOnSwitch sends a desktop notification after a successful switch.
	NotifyOnSwitch bool `json:"notifyOnSwitch"`
	// Sounds configures optional audible feedback.
	Sounds SoundsConfig `json:"sounds"`
}

// SoundsConfig points at sound files played for feedback.
type SoundsConfig struct {
	// SwitchConfirm is played on the new device after switching, when set.
	SwitchConfirm string `json:"switchConfirm"`
}

// Default returns the empty configuration: no filters, no extras.
func Default() *Config {
	return &Config{}
}

// DefaultPath returns the conventional config location,
// ~/.config/sndctl/config.json.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "sndctl", "config.json")
}

// Load reads the configuration from path. The loader is fail-open: a missing
// file, unreadable file, or malformed JSON all yield the default config so
// that no device is ever filtered out by accident.
func Load(path string) *Config {
	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logging.Debug("config not loaded from %s: %v", path, err)
		return Default()
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		logging.Debug("config at %s is not valid JSON, ignoring: %v", path, err)
		return Default()
	}
	return cfg
}

// Rules returns the filter rules derived from the configured lists.
func (c *Config) Rules() filter.Rules {
	return filter.Rules{
		Ignore:  c.IgnoreDevices,
		Include: c.IncludeDevices,
	}
}
