package terminal

import (
	"os"
	"strconv"

	"github.com/charmbracelet/x/term"
	"golang.org/x/sys/unix"
)

// Size is a terminal area in character cells.
type Size struct {
	Cols int
	Rows int
}

// Viewport converts s to placement units: one cell per unit.
func (s Size) Viewport() (width, height float64) {
	return float64(s.Cols), float64(s.Rows)
}

func (s Size) valid() bool { return s.Cols > 0 && s.Rows > 0 }

// GetSizeFromFd asks the terminal on fd for its size. The winsize ioctl
// goes first, x/term second, and COLUMNS/LINES (default 80x24) last.
func GetSizeFromFd(fd uintptr) Size {
	if ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ); err == nil {
		if s := (Size{Cols: int(ws.Col), Rows: int(ws.Row)}); s.valid() {
			return s
		}
	}
	if w, h, err := term.GetSize(fd); err == nil {
		if s := (Size{Cols: w, Rows: h}); s.valid() {
			return s
		}
	}
	return getSizeFromEnv()
}

func getSizeFromEnv() Size {
	return Size{Cols: positiveEnv("COLUMNS", 80), Rows: positiveEnv("LINES", 24)}
}

func positiveEnv(name string, fallback int) int {
	if n, err := strconv.Atoi(os.Getenv(name)); err == nil && n > 0 {
		return n
	}
	return fallback
}
