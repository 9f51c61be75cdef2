// Package config provides TOML-based configuration for anchorpos.
package config

import (
	"fmt"
	"strings"

	"gitlab.com/tinyland/lab/anchorpos/pkg/position"
	"gitlab.com/tinyland/lab/anchorpos/pkg/theme"
)

// Config is the root of the configuration file.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Dropdown   DropdownConfig   `toml:"dropdown"`
	Tooltip    TooltipConfig    `toml:"tooltip"`
	Playground PlaygroundConfig `toml:"playground"`
}

// GeneralConfig holds process-wide settings.
type GeneralConfig struct {
	LogLevel string `toml:"log_level"`
	RTL      bool   `toml:"rtl"`
	// Theme is a built-in theme name or the path of a .toml theme file.
	Theme string `toml:"theme"`
}

// DropdownConfig configures dropdown panes.
type DropdownConfig struct {
	Position           string  `toml:"position"`
	Alignment          string  `toml:"alignment"`
	AllowOverlap       bool    `toml:"allow_overlap"`
	AllowBottomOverlap bool    `toml:"allow_bottom_overlap"`
	VOffset            float64 `toml:"v_offset"`
	HOffset            float64 `toml:"h_offset"`
	PinWideToMargin    bool    `toml:"pin_wide_to_margin"`
	ParentClass        string  `toml:"parent_class"`
}

// TooltipConfig configures tooltips.
type TooltipConfig struct {
	Position           string  `toml:"position"`
	Alignment          string  `toml:"alignment"`
	AllowOverlap       bool    `toml:"allow_overlap"`
	AllowBottomOverlap bool    `toml:"allow_bottom_overlap"`
	VOffset            float64 `toml:"v_offset"`
	HOffset            float64 `toml:"h_offset"`
	ArrowSize          float64 `toml:"arrow_size"`
	ShowDelay          Delay   `toml:"show_delay"`
}

// PlaygroundConfig configures the interactive demo.
type PlaygroundConfig struct {
	AnchorLabel string   `toml:"anchor_label"`
	Items       []string `toml:"items"`
	TooltipText string   `toml:"tooltip_text"`
}

// Options converts the dropdown section into engine options.
func (c DropdownConfig) Options() (position.Options, error) {
	opts, err := parseOptions(c.Position, c.Alignment)
	if err != nil {
		return position.Options{}, fmt.Errorf("dropdown: %w", err)
	}
	opts.AllowOverlap = c.AllowOverlap
	opts.AllowBottomOverlap = c.AllowBottomOverlap
	opts.VOffset = c.VOffset
	opts.HOffset = c.HOffset
	opts.PinWideToMargin = c.PinWideToMargin
	return opts, nil
}

// Options converts the tooltip section into engine options.
func (c TooltipConfig) Options() (position.Options, error) {
	opts, err := parseOptions(c.Position, c.Alignment)
	if err != nil {
		return position.Options{}, fmt.Errorf("tooltip: %w", err)
	}
	opts.AllowOverlap = c.AllowOverlap
	opts.AllowBottomOverlap = c.AllowBottomOverlap
	opts.VOffset = c.VOffset
	opts.HOffset = c.HOffset
	return opts, nil
}

func parseOptions(pos, align string) (position.Options, error) {
	p, err := position.ParsePosition(pos)
	if err != nil {
		return position.Options{}, err
	}
	a, err := position.ParseAlignment(align)
	if err != nil {
		return position.Options{}, err
	}
	opts := position.Options{Position: p, Alignment: a}
	if err := opts.Validate(); err != nil {
		return position.Options{}, err
	}
	return opts, nil
}

// Validate checks every section and joins the problems into one error.
func (c *Config) Validate() error {
	var errs []string
	switch strings.ToLower(c.General.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("general: unknown log_level %q", c.General.LogLevel))
	}
	if !strings.HasSuffix(c.General.Theme, ".toml") {
		if _, ok := theme.Get(c.General.Theme); !ok {
			errs = append(errs, fmt.Sprintf("general: unknown theme %q (available: %s)", c.General.Theme, strings.Join(theme.Names(), ", ")))
		}
	}
	if _, err := c.Dropdown.Options(); err != nil {
		errs = append(errs, err.Error())
	}
	if _, err := c.Tooltip.Options(); err != nil {
		errs = append(errs, err.Error())
	}
	if c.Tooltip.ArrowSize < 0 {
		errs = append(errs, "tooltip: arrow_size must not be negative")
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(errs, "; "))
	}
	return nil
}
