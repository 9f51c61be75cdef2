package theme

import (
	"bytes"
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
)

// thTOMLTheme is the file format of a custom theme:
//
//	name = "paper"
//	[colors]
//	foreground = "#202020"
//	...
type thTOMLTheme struct {
	Name   string       `toml:"name"`
	Colors thTOMLColors `toml:"colors"`
}

type thTOMLColors struct {
	Foreground    string `toml:"foreground"`
	Dim           string `toml:"dim"`
	Accent        string `toml:"accent"`
	Pane          string `toml:"pane"`
	Overlap       string `toml:"overlap"`
	TipBackground string `toml:"tip_background"`
	TipForeground string `toml:"tip_foreground"`
	HelpKey       string `toml:"help_key"`
	HelpDesc      string `toml:"help_desc"`
}

var thHexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// LoadFromTOML parses a theme definition.
func LoadFromTOML(data []byte) (Theme, error) {
	var tt thTOMLTheme
	if err := toml.Unmarshal(data, &tt); err != nil {
		return Theme{}, fmt.Errorf("theme: parse TOML: %w", err)
	}
	c := tt.Colors
	t := Theme{
		Name:          tt.Name,
		Foreground:    c.Foreground,
		Dim:           c.Dim,
		Accent:        c.Accent,
		Pane:          c.Pane,
		Overlap:       c.Overlap,
		TipBackground: c.TipBackground,
		TipForeground: c.TipForeground,
		HelpKey:       c.HelpKey,
		HelpDesc:      c.HelpDesc,
	}
	if err := thValidateTheme(t); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// LoadFile reads a theme definition from path.
func LoadFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: %w", err)
	}
	return LoadFromTOML(data)
}

// SaveToTOML serializes a theme in the LoadFromTOML format.
func SaveToTOML(t Theme) ([]byte, error) {
	tt := thTOMLTheme{
		Name: t.Name,
		Colors: thTOMLColors{
			Foreground:    t.Foreground,
			Dim:           t.Dim,
			Accent:        t.Accent,
			Pane:          t.Pane,
			Overlap:       t.Overlap,
			TipBackground: t.TipBackground,
			TipForeground: t.TipForeground,
			HelpKey:       t.HelpKey,
			HelpDesc:      t.HelpDesc,
		},
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(tt); err != nil {
		return nil, fmt.Errorf("theme: encode TOML: %w", err)
	}
	return buf.Bytes(), nil
}

// thValidateTheme requires a name and a valid hex value for every color.
func thValidateTheme(t Theme) error {
	if t.Name == "" {
		return fmt.Errorf("theme: missing required field %q", "name")
	}
	colors := []struct{ field, value string }{
		{"foreground", t.Foreground},
		{"dim", t.Dim},
		{"accent", t.Accent},
		{"pane", t.Pane},
		{"overlap", t.Overlap},
		{"tip_background", t.TipBackground},
		{"tip_foreground", t.TipForeground},
		{"help_key", t.HelpKey},
		{"help_desc", t.HelpDesc},
	}
	for _, c := range colors {
		if c.value == "" {
			return fmt.Errorf("theme: missing required field %q", c.field)
		}
		if !thHexColorRegex.MatchString(c.value) {
			return fmt.Errorf("theme: invalid hex color %q for field %q (expected #RRGGBB)", c.value, c.field)
		}
	}
	return nil
}
