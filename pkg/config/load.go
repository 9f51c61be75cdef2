package config

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

// appName is the directory name used under the XDG config home.
const appName = "anchorpos"

// Load reads configuration from the standard config path.
// Search order:
//  1. $XDG_CONFIG_HOME/anchorpos/config.toml
//  2. ~/.config/anchorpos/config.toml
//
// If no file exists, returns DefaultConfig() with environment overrides.
func Load() (*Config, error) {
	for _, p := range configSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return LoadFromFile(p)
		}
	}
	cfg := DefaultConfig()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadFromFile reads configuration from a specific file path. A missing
// file is not an error.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, err
	}
	defer f.Close()
	return LoadFromReader(f)
}

// LoadFromReader reads configuration from an io.Reader. Keys absent from
// the input keep their defaults.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, err
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		General: GeneralConfig{
			LogLevel: "info",
			Theme:    "default",
		},
		Dropdown: DropdownConfig{
			Position:           "auto",
			Alignment:          "auto",
			AllowBottomOverlap: true,
			VOffset:            0,
			HOffset:            0,
			PinWideToMargin:    true,
		},
		Tooltip: TooltipConfig{
			Position:  "auto",
			Alignment: "auto",
			ArrowSize: 1,
			ShowDelay: Delay{150 * time.Millisecond},
		},
		Playground: PlaygroundConfig{
			AnchorLabel: "Menu",
			Items:       []string{"Open", "Save as...", "Export", "Preferences", "Quit"},
			TooltipText: "Placement follows the free space",
		},
	}
}

// applyEnvOverrides checks environment variables and overrides config values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ANCHORPOS_LOG_LEVEL"); v != "" {
		cfg.General.LogLevel = v
	}
	if v := os.Getenv("ANCHORPOS_THEME"); v != "" {
		cfg.General.Theme = v
	}
	if v := os.Getenv("ANCHORPOS_RTL"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.General.RTL = b
		}
	}
	if v := os.Getenv("ANCHORPOS_DROPDOWN_POSITION"); v != "" {
		cfg.Dropdown.Position = v
	}
	if v := os.Getenv("ANCHORPOS_DROPDOWN_ALIGNMENT"); v != "" {
		cfg.Dropdown.Alignment = v
	}
}

// configSearchPaths returns the ordered list of config file paths to try.
func configSearchPaths() []string {
	home, _ := os.UserHomeDir()
	var paths []string

	xdg := xdgConfigHome(home)
	paths = append(paths, filepath.Join(xdg, appName, "config.toml"))

	// If XDG_CONFIG_HOME was explicitly set, also try the fallback default.
	defaultXDG := filepath.Join(home, ".config")
	if xdg != defaultXDG {
		paths = append(paths, filepath.Join(defaultXDG, appName, "config.toml"))
	}

	return paths
}

// xdgConfigHome returns XDG_CONFIG_HOME or ~/.config as fallback.
func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}
