// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Default configuration values.
const (
	DefaultDateFormat     = "January 2, 2006 15:04"
	DefaultNotifyDuration = "3s"
	DefaultTheme          = "light"
)

// Config represents the postboard configuration.
type Config struct {
	Storage StorageConfig `toml:"storage"`
	Board   BoardConfig   `toml:"board"`
	Notify  NotifyConfig  `toml:"notify"`
	Theme   ThemeConfig   `toml:"theme"`
	TUI     TUIConfig     `toml:"tui"`
}

// StorageConfig holds persistence settings.
type StorageConfig struct {
	Path string `toml:"path"` // Board file (empty = default data path)
}

// BoardConfig holds post display settings.
type BoardConfig struct {
	DateFormat    string `toml:"date_format"`    // Go time layout for card dates
	RelativeDates bool   `toml:"relative_dates"` // Show "5 minutes ago" instead
}

// NotifyConfig holds notification settings.
type NotifyConfig struct {
	Duration string `toml:"duration"` // How long messages stay visible
}

// ThemeConfig holds theme settings.
type ThemeConfig struct {
	Default string `toml:"default"` // light or dark
}

// TUIConfig holds TUI-specific settings.
type TUIConfig struct {
	ShowHelp bool `toml:"show_help"` // Show the keybind bar
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Path: "",
		},
		Board: BoardConfig{
			DateFormat:    DefaultDateFormat,
			RelativeDates: false,
		},
		Notify: NotifyConfig{
			Duration: DefaultNotifyDuration,
		},
		Theme: ThemeConfig{
			Default: DefaultTheme,
		},
		TUI: TUIConfig{
			ShowHelp: true,
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "postboard", "config.toml")
}

// DataPath returns the path to the data directory.
// Uses XDG_DATA_HOME if set, otherwise ~/.local/share.
func DataPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "postboard")
}

// BoardPath returns the path to the board storage file, preferring the
// configured override.
func (c *Config) BoardPath() string {
	if c.Storage.Path != "" {
		return c.Storage.Path
	}
	return filepath.Join(DataPath(), "board.json")
}

// NotifyDuration returns the parsed notification lifetime, falling
// back to the default on bad input.
func (c *Config) NotifyDuration() time.Duration {
	d, err := time.ParseDuration(c.Notify.Duration)
	if err != nil || d <= 0 {
		d, _ = time.ParseDuration(DefaultNotifyDuration)
	}
	return d
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	// Start with defaults
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// No config file, use defaults
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the specified path.
// Creates parent directories if needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// EnsureDataDir creates the data directory if it doesn't exist.
func EnsureDataDir() error {
	path := DataPath()
	if path == "" {
		return errors.New("unable to determine data directory")
	}
	return os.MkdirAll(path, 0755)
}
