package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

const appName = "desksim"

// Config holds all application configuration
type Config struct {
	Clock       ClockConfig         `toml:"clock"`
	Windows     WindowConfig        `toml:"windows"`
	Colors      ColorConfig         `toml:"colors"`
	Keybindings map[string][]string `toml:"keybindings"`
}

// ClockConfig holds taskbar clock settings
type ClockConfig struct {
	Format     string `toml:"format"`      // Go time layout, "15:04" is hours:minutes
	IntervalMs int    `toml:"interval_ms"` // refresh period
	Hidden     bool   `toml:"hidden"`
}

// WindowConfig holds window geometry settings
type WindowConfig struct {
	Width         int `toml:"width"`  // restored width in cells
	Height        int `toml:"height"` // restored height in cells
	DoubleClickMs int `toml:"double_click_ms"`
}

// ColorConfig holds color definitions
type ColorConfig struct {
	Desktop         string `toml:"desktop"`
	Header          string `toml:"header"`
	BorderFocused   string `toml:"border_focused"`
	BorderUnfocused string `toml:"border_unfocused"`
	Taskbar         string `toml:"taskbar"`
	TaskbarActive   string `toml:"taskbar_active"`
	Text            string `toml:"text"`
	Muted           string `toml:"muted"`
	Accent          string `toml:"accent"`
	Danger          string `toml:"danger"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Clock: ClockConfig{
			Format:     "15:04",
			IntervalMs: 1000,
		},
		Windows: WindowConfig{
			Width:         40,
			Height:        14,
			DoubleClickMs: 400,
		},
		Colors: ColorConfig{
			Desktop:         "#1e1e2e",
			Header:          "#89b4fa",
			BorderFocused:   "#89b4fa",
			BorderUnfocused: "#45475a",
			Taskbar:         "#313244",
			TaskbarActive:   "#a6e3a1",
			Text:            "#cdd6f4",
			Muted:           "#6c7086",
			Accent:          "#fab387",
			Danger:          "#f38ba8",
		},
		Keybindings: DefaultKeybindings(),
	}
}

// ClockInterval returns the clock period as a duration
func (c *Config) ClockInterval() time.Duration {
	return time.Duration(c.Clock.IntervalMs) * time.Millisecond
}

// DoubleClick returns the maximum delay between the two presses of a double click
func (c *Config) DoubleClick() time.Duration {
	return time.Duration(c.Windows.DoubleClickMs) * time.Millisecond
}

// Load reads the TOML file at path over the defaults.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes TOML data over the defaults
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	defaults := cfg.Keybindings
	cfg.Keybindings = nil

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Actions the file does not mention keep their default keys
	if cfg.Keybindings == nil {
		cfg.Keybindings = make(map[string][]string, len(defaults))
	}
	for action, keys := range defaults {
		if _, ok := cfg.Keybindings[action]; !ok {
			cfg.Keybindings[action] = keys
		}
	}

	cfg.normalize()
	return cfg, nil
}

// normalize replaces unusable values with defaults
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.Clock.Format == "" {
		c.Clock.Format = def.Clock.Format
	}
	if c.Clock.IntervalMs <= 0 {
		c.Clock.IntervalMs = def.Clock.IntervalMs
	}
	if c.Windows.Width < 12 {
		c.Windows.Width = def.Windows.Width
	}
	if c.Windows.Height < 6 {
		c.Windows.Height = def.Windows.Height
	}
	if c.Windows.DoubleClickMs <= 0 {
		c.Windows.DoubleClickMs = def.Windows.DoubleClickMs
	}
}

// Path returns the config file location, creating its directory if needed
func Path() (string, error) {
	path, err := xdg.ConfigFile(appName + "/config.toml")
	if err != nil {
		return "", fmt.Errorf("could not resolve config path: %w", err)
	}
	return path, nil
}

// LogPath returns the debug log location, creating its directory if needed
func LogPath() (string, error) {
	path, err := xdg.StateFile(appName + "/" + appName + ".log")
	if err != nil {
		return "", fmt.Errorf("could not resolve log path: %w", err)
	}
	return path, nil
}

// Write stores cfg at path as TOML with a short header
func Write(cfg *Config, path string) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# desksim configuration\n")
	sb.WriteString("# Keybindings map an action to a list of keys, e.g. toggle_calculator = [\"alt+1\"]\n")
	sb.WriteString("# Location: " + path + "\n\n")
	sb.Write(data)

	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
