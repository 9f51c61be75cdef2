package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gitlab.com/tinyland/lab/anchorpos/pkg/position"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"ANCHORPOS_LOG_LEVEL",
		"ANCHORPOS_THEME",
		"ANCHORPOS_RTL",
		"ANCHORPOS_DROPDOWN_POSITION",
		"ANCHORPOS_DROPDOWN_ALIGNMENT",
	} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	opts, err := cfg.Dropdown.Options()
	if err != nil {
		t.Fatal(err)
	}
	if opts.Position != position.Auto || opts.Alignment != position.AlignAuto {
		t.Errorf("dropdown defaults = %s/%s, want auto/auto", opts.Position, opts.Alignment)
	}
	if !opts.AllowBottomOverlap || !opts.PinWideToMargin {
		t.Errorf("dropdown defaults = %+v", opts)
	}
	if cfg.Tooltip.ShowDelay.Duration != 150*time.Millisecond {
		t.Errorf("tooltip show_delay = %v", cfg.Tooltip.ShowDelay)
	}
}

func TestLoadFromReaderKeepsUnsetDefaults(t *testing.T) {
	clearEnv(t)
	in := `
[general]
rtl = true

[dropdown]
position = "top"
alignment = "center"
v_offset = 2

[tooltip]
show_delay = "1s"
`
	cfg, err := LoadFromReader(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.General.RTL {
		t.Error("rtl not read")
	}
	if cfg.General.LogLevel != "info" {
		t.Errorf("log_level = %q, want default info", cfg.General.LogLevel)
	}
	opts, err := cfg.Dropdown.Options()
	if err != nil {
		t.Fatal(err)
	}
	if opts.Position != position.Top || opts.Alignment != position.AlignCenter || opts.VOffset != 2 {
		t.Errorf("dropdown options = %+v", opts)
	}
	if !opts.AllowBottomOverlap {
		t.Error("allow_bottom_overlap default lost")
	}
	if cfg.Tooltip.ShowDelay.Duration != time.Second {
		t.Errorf("show_delay = %v, want 1s", cfg.Tooltip.ShowDelay)
	}
	if len(cfg.Playground.Items) == 0 {
		t.Error("playground items default lost")
	}
}

func TestLoadFromReaderRejectsBadTOML(t *testing.T) {
	clearEnv(t)
	if _, err := LoadFromReader(strings.NewReader("[dropdown\n")); err == nil {
		t.Error("expected a parse error")
	}
	if _, err := LoadFromReader(strings.NewReader("[tooltip]\nshow_delay = \"-1s\"\n")); err == nil {
		t.Error("expected an error for a negative duration")
	}
}

func TestLoadFromFileMissingReturnsDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Playground.AnchorLabel != "Menu" {
		t.Errorf("anchor_label = %q", cfg.Playground.AnchorLabel)
	}
}

func TestLoadUsesXDGConfigHome(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if err := os.MkdirAll(filepath.Join(dir, appName), 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, appName, "config.toml")
	if err := os.WriteFile(path, []byte("[general]\nlog_level = \"debug\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.General.LogLevel != "debug" {
		t.Errorf("log_level = %q, want debug", cfg.General.LogLevel)
	}
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ANCHORPOS_LOG_LEVEL", "warn")
	t.Setenv("ANCHORPOS_RTL", "true")
	t.Setenv("ANCHORPOS_DROPDOWN_POSITION", "left")
	t.Setenv("ANCHORPOS_DROPDOWN_ALIGNMENT", "bottom")
	t.Setenv("ANCHORPOS_THEME", "dracula")

	cfg, err := LoadFromReader(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.General.LogLevel != "warn" || !cfg.General.RTL || cfg.General.Theme != "dracula" {
		t.Errorf("general = %+v", cfg.General)
	}
	opts, err := cfg.Dropdown.Options()
	if err != nil {
		t.Fatal(err)
	}
	if opts.Position != position.Left || opts.Alignment != position.AlignBottom {
		t.Errorf("dropdown = %s/%s, want left/bottom", opts.Position, opts.Alignment)
	}

	// Unparseable booleans are ignored.
	t.Setenv("ANCHORPOS_RTL", "maybe")
	cfg, err = LoadFromReader(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.General.RTL {
		t.Error("rtl set from an unparseable value")
	}
}

func TestValidateCollectsEveryProblem(t *testing.T) {
	cfg := DefaultConfig()
	cfg.General.LogLevel = "loud"
	cfg.Dropdown.Position = "left"
	cfg.Dropdown.Alignment = "left"
	cfg.Tooltip.Position = "sideways"
	cfg.Tooltip.ArrowSize = -1
	cfg.General.Theme = "neon"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected an error")
	}
	for _, want := range []string{"log_level", "dropdown", "tooltip: invalid argument", "arrow_size", `unknown theme "neon"`} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
}

func TestValidateAcceptsThemeFiles(t *testing.T) {
	cfg := DefaultConfig()
	cfg.General.Theme = "/home/me/.config/anchorpos/paper.toml"
	if err := cfg.Validate(); err != nil {
		t.Errorf("theme file rejected: %v", err)
	}
	cfg.General.Theme = "Nord"
	if err := cfg.Validate(); err != nil {
		t.Errorf("built-in theme rejected: %v", err)
	}
}

func TestSectionOptionsWrapInvalidArgument(t *testing.T) {
	c := DropdownConfig{Position: "top", Alignment: "top"}
	if _, err := c.Options(); !errors.Is(err, position.ErrInvalidArgument) {
		t.Errorf("err = %v, want ErrInvalidArgument", err)
	}
}

func TestDelayText(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"250ms", 250 * time.Millisecond, false},
		{"1s", time.Second, false},
		{"400", 400 * time.Millisecond, false},
		{"", 0, false},
		{"soon", 0, true},
		{"-5ms", 0, true},
		{"-5", 0, true},
		{"11s", 0, true},
	}
	for _, tt := range tests {
		var d Delay
		err := d.UnmarshalText([]byte(tt.in))
		if (err != nil) != tt.wantErr {
			t.Errorf("UnmarshalText(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && d.Duration != tt.want {
			t.Errorf("UnmarshalText(%q) = %v, want %v", tt.in, d.Duration, tt.want)
		}
	}

	b, _ := Delay{250 * time.Millisecond}.MarshalText()
	if string(b) != "250ms" {
		t.Errorf("MarshalText = %q", b)
	}
}
