// Package theme holds the color palettes of the playground. Themes are
// registered by name; custom ones can be loaded from TOML files.
package theme

import (
	"sort"
	"strings"
	"sync"
)

// Theme is a playground palette. Every color is a "#RRGGBB" hex string;
// lipgloss downsamples it to the terminal's color profile.
type Theme struct {
	Name string

	Foreground string // panel text
	Dim        string // unfocused borders, status line
	Accent     string // the anchor button

	Pane    string // dropdown border on a clean fit
	Overlap string // dropdown border when no placement fits

	TipBackground string
	TipForeground string

	HelpKey  string
	HelpDesc string
}

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}
)

func init() {
	thRegisterBuiltins()
}

// Get returns a registered theme by name, case-insensitively.
func Get(name string) (Theme, bool) {
	mu.RLock()
	defer mu.RUnlock()
	t, ok := registry[strings.ToLower(name)]
	return t, ok
}

// Default returns the default theme.
func Default() Theme {
	t, _ := Get("default")
	return t
}

// Names returns all registered theme names sorted alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Register adds t under its lowercase name, replacing any theme with the
// same name.
func Register(t Theme) error {
	if err := thValidateTheme(t); err != nil {
		return err
	}
	thRegister(t)
	return nil
}

func thRegister(t Theme) {
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(t.Name)] = t
}
