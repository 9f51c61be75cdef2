package terminal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/muesli/termenv"
)

var termEnvVars = []string{
	"TMUX", "STY",
	"SSH_TTY", "SSH_CONNECTION", "SSH_CLIENT",
	"COLUMNS", "LINES",
}

func clearTermEnv(t *testing.T) {
	t.Helper()
	for _, v := range termEnvVars {
		t.Setenv(v, "")
		os.Unsetenv(v)
	}
}

func tempFile(t *testing.T) *os.File {
	t.Helper()
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

// --- size ---

func TestPositiveEnv(t *testing.T) {
	clearTermEnv(t)
	tests := []struct {
		val  string
		want int
	}{
		{"", 80},
		{"132", 132},
		{"0", 80},
		{"-4", 80},
		{"wide", 80},
	}
	for _, tt := range tests {
		t.Setenv("COLUMNS", tt.val)
		if got := positiveEnv("COLUMNS", 80); got != tt.want {
			t.Errorf("positiveEnv(%q) = %d, want %d", tt.val, got, tt.want)
		}
	}
}

func TestGetSizeFromFdFallsBackToEnv(t *testing.T) {
	clearTermEnv(t)
	t.Setenv("COLUMNS", "100")
	t.Setenv("LINES", "30")

	s := GetSizeFromFd(tempFile(t).Fd())
	if s.Cols != 100 || s.Rows != 30 {
		t.Errorf("size = %dx%d, want 100x30", s.Cols, s.Rows)
	}
}

func TestGetSizeDefault(t *testing.T) {
	clearTermEnv(t)
	s := getSizeFromEnv()
	if s.Cols != 80 || s.Rows != 24 {
		t.Errorf("size = %dx%d, want 80x24", s.Cols, s.Rows)
	}
}

func TestSizeViewport(t *testing.T) {
	w, h := Size{Cols: 120, Rows: 40}.Viewport()
	if w != 120 || h != 40 {
		t.Errorf("Viewport() = %v, %v", w, h)
	}
}

// --- capabilities ---

func TestDetectNonInteractive(t *testing.T) {
	clearTermEnv(t)
	t.Setenv("COLUMNS", "90")

	c := Detect(tempFile(t))
	if c.Interactive {
		t.Error("regular file reported as a terminal")
	}
	if c.Profile != termenv.Ascii {
		t.Errorf("profile = %v, want Ascii", c.Profile)
	}
	if c.ProfileName() != "ascii" {
		t.Errorf("ProfileName() = %q", c.ProfileName())
	}
	if c.Size.Cols != 90 {
		t.Errorf("cols = %d, want 90", c.Size.Cols)
	}
}

func TestDetectSessionFlags(t *testing.T) {
	clearTermEnv(t)
	f := tempFile(t)
	if c := Detect(f); c.SSH || c.Mux {
		t.Errorf("flags set with a clean env: %+v", c)
	}

	t.Setenv("SSH_CONNECTION", "10.0.0.1 22 10.0.0.2 22")
	t.Setenv("TMUX", "/tmp/tmux-1000/default,1,0")
	c := Detect(f)
	if !c.SSH {
		t.Error("SSH not detected")
	}
	if !c.Mux {
		t.Error("tmux not detected")
	}
}

func TestIsInteractiveNil(t *testing.T) {
	if IsInteractive(nil) {
		t.Error("nil file reported as a terminal")
	}
}

func TestProfileNames(t *testing.T) {
	tests := map[termenv.Profile]string{
		termenv.TrueColor: "truecolor",
		termenv.ANSI256:   "ansi256",
		termenv.ANSI:      "ansi",
		termenv.Ascii:     "ascii",
	}
	for p, want := range tests {
		c := &Capabilities{Profile: p}
		if got := c.ProfileName(); got != want {
			t.Errorf("ProfileName(%v) = %q, want %q", p, got, want)
		}
	}
}

func TestForceRefreshReplacesCache(t *testing.T) {
	first := DetectCapabilities()
	if first == nil {
		t.Fatal("DetectCapabilities returned nil")
	}
	if DetectCapabilities() != first {
		t.Error("second call re-detected")
	}
	if ForceRefresh() == first {
		t.Error("ForceRefresh returned the old value")
	}
	if DetectCapabilities() == first {
		t.Error("cache not replaced by ForceRefresh")
	}
}
