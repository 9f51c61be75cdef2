// Package terminal answers the questions the playground asks about the
// terminal it runs in: how big it is, whether it is interactive at all and
// how many colors it can show.
package terminal

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Capabilities summarizes the terminal behind one output file.
type Capabilities struct {
	Interactive bool            // Output is a terminal
	Profile     termenv.Profile // Color profile; Ascii when not interactive
	Size        Size            // Terminal dimensions
	SSH         bool            // Running over SSH
	Mux         bool            // Inside tmux or screen
}

var (
	cached     *Capabilities
	detectOnce sync.Once
	mu         sync.Mutex
)

// DetectCapabilities inspects stdout once and caches the result.
func DetectCapabilities() *Capabilities {
	mu.Lock()
	defer mu.Unlock()
	detectOnce.Do(func() {
		cached = Detect(os.Stdout)
	})
	return cached
}

// ForceRefresh re-detects stdout, replacing the cached value.
func ForceRefresh() *Capabilities {
	mu.Lock()
	defer mu.Unlock()
	detectOnce = sync.Once{}
	detectOnce.Do(func() {
		cached = Detect(os.Stdout)
	})
	return cached
}

// Detect inspects f without caching.
func Detect(f *os.File) *Capabilities {
	interactive := IsInteractive(f)
	c := &Capabilities{
		Interactive: interactive,
		Profile:     termenv.Ascii,
		SSH:         isSSH(),
		Mux:         os.Getenv("TMUX") != "" || os.Getenv("STY") != "",
	}
	if interactive {
		c.Profile = termenv.NewOutput(f).EnvColorProfile()
		c.Size = GetSizeFromFd(f.Fd())
	} else {
		c.Size = getSizeFromEnv()
	}
	return c
}

// IsInteractive reports whether f is a terminal.
func IsInteractive(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ApplyColorProfile makes lipgloss render with the detected profile.
func (c *Capabilities) ApplyColorProfile() {
	lipgloss.SetColorProfile(c.Profile)
}

// ProfileName is a short label for the color profile.
func (c *Capabilities) ProfileName() string {
	switch c.Profile {
	case termenv.TrueColor:
		return "truecolor"
	case termenv.ANSI256:
		return "ansi256"
	case termenv.ANSI:
		return "ansi"
	default:
		return "ascii"
	}
}

func isSSH() bool {
	return os.Getenv("SSH_TTY") != "" || os.Getenv("SSH_CONNECTION") != "" || os.Getenv("SSH_CLIENT") != ""
}
