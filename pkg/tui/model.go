// Package tui is an interactive playground for the placement engine. The
// terminal is the viewport and one cell is one unit: an anchor button can
// be moved around while a dropdown and a tooltip follow it.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/anchorpos/pkg/config"
	"gitlab.com/tinyland/lab/anchorpos/pkg/position"
)

// anchorZone is the mouse zone id of the anchor button.
const anchorZone = "anchor"

// showTooltipMsg fires once the tooltip delay has passed. Stale messages
// (seq no longer current) are dropped.
type showTooltipMsg struct {
	seq int
}

// Model is the bubbletea model of the playground.
type Model struct {
	keys   keyMap
	help   help.Model
	zones  *zone.Manager
	logger *slog.Logger
	pal    palette

	label     string
	items     []string
	tipText   string
	showDelay time.Duration
	dropdown  position.Options
	tooltip   position.Options
	arrowSize float64
	profile   string

	width, height int
	anchorX       int
	anchorY       int
	placed        bool

	rtl          bool
	allowOverlap bool
	dropdownOpen bool
	tipVisible   bool
	tipPending   bool
	tipSeq       int

	frame frame
	err   error
}

// New builds a playground model from cfg. profile is shown in the status
// line.
func New(cfg *config.Config, profile string, logger *slog.Logger) (Model, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	dd, err := cfg.Dropdown.Options()
	if err != nil {
		return Model{}, err
	}
	tt, err := cfg.Tooltip.Options()
	if err != nil {
		return Model{}, err
	}
	items := cfg.Playground.Items
	if len(items) == 0 {
		items = []string{"(empty)"}
	}
	th, err := resolveTheme(cfg.General.Theme)
	if err != nil {
		return Model{}, err
	}
	hm := help.New()
	hm.Styles = helpStyles(th)

	label := cfg.Playground.AnchorLabel
	if label == "" {
		label = "Menu"
	}
	return Model{
		keys:         defaultKeyMap(),
		help:         hm,
		zones:        zone.New(),
		logger:       logger,
		pal:          newPalette(th),
		label:        label,
		items:        items,
		tipText:      cfg.Playground.TooltipText,
		showDelay:    cfg.Tooltip.ShowDelay.Duration,
		dropdown:     dd,
		tooltip:      tt,
		arrowSize:    cfg.Tooltip.ArrowSize,
		profile:      profile,
		rtl:          cfg.General.RTL,
		allowOverlap: dd.AllowOverlap,
	}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		if !m.placed {
			m.center()
			m.placed = true
		}
		m.clamp()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			break
		}
		if z := m.zones.Get(anchorZone); z != nil && z.InBounds(msg) {
			m.dropdownOpen = !m.dropdownOpen
		}

	case showTooltipMsg:
		if m.tipPending && msg.seq == m.tipSeq {
			m.tipPending = false
			m.tipVisible = true
		}
	}

	m.relayout()
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.anchorY--
	case key.Matches(msg, m.keys.Down):
		m.anchorY++
	case key.Matches(msg, m.keys.Left):
		m.anchorX--
	case key.Matches(msg, m.keys.Right):
		m.anchorX++
	case key.Matches(msg, m.keys.Center):
		m.center()
	case key.Matches(msg, m.keys.Dropdown):
		m.dropdownOpen = !m.dropdownOpen
	case key.Matches(msg, m.keys.Tooltip):
		cmd = m.toggleTooltip()
	case key.Matches(msg, m.keys.Overlap):
		m.allowOverlap = !m.allowOverlap
	case key.Matches(msg, m.keys.RTL):
		m.rtl = !m.rtl
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	m.clamp()
	m.relayout()
	return m, cmd
}

// toggleTooltip hides a visible (or pending) tooltip, or schedules it to
// appear after the show delay.
func (m *Model) toggleTooltip() tea.Cmd {
	m.tipSeq++
	if m.tipVisible || m.tipPending {
		m.tipVisible, m.tipPending = false, false
		return nil
	}
	if m.showDelay <= 0 {
		m.tipVisible = true
		return nil
	}
	m.tipPending = true
	seq := m.tipSeq
	return tea.Tick(m.showDelay, func(time.Time) tea.Msg {
		return showTooltipMsg{seq: seq}
	})
}

// anchorSize is the button size in cells: the label, one cell of padding
// on each side and a border.
func (m Model) anchorSize() (int, int) {
	return ansi.StringWidth(m.label) + 4, 3
}

// canvasSize is the part of the terminal above the status line.
func (m Model) canvasSize() (int, int) {
	return m.width, max(m.height-m.footerHeight(), 0)
}

func (m *Model) center() {
	w, h := m.canvasSize()
	aw, ah := m.anchorSize()
	m.anchorX = (w - aw) / 2
	m.anchorY = (h - ah) / 2
}

// clamp keeps the anchor fully on screen.
func (m *Model) clamp() {
	w, h := m.canvasSize()
	aw, ah := m.anchorSize()
	m.anchorX = min(max(m.anchorX, 0), max(w-aw, 0))
	m.anchorY = min(max(m.anchorY, 0), max(h-ah, 0))
}

func (m *Model) relayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	f, err := m.layout()
	if err != nil {
		m.logger.Error("layout failed", "error", err)
		m.err = err
		return
	}
	m.frame, m.err = f, nil
}

// DropdownOpen reports whether the dropdown is shown.
func (m Model) DropdownOpen() bool { return m.dropdownOpen }

// TooltipVisible reports whether the tooltip is shown.
func (m Model) TooltipVisible() bool { return m.tipVisible }

// Anchor returns the anchor's top-left cell.
func (m Model) Anchor() (x, y int) { return m.anchorX, m.anchorY }

// RTL reports whether right-to-left defaults are active.
func (m Model) RTL() bool { return m.rtl }

// AllowOverlap reports whether the collision search is disabled.
func (m Model) AllowOverlap() bool { return m.allowOverlap }

// Err returns the last layout error.
func (m Model) Err() error { return m.err }

// Run starts the playground on the alternate screen with mouse support.
// Cancelling ctx stops it.
func Run(ctx context.Context, cfg *config.Config, profile string, logger *slog.Logger) error {
	m, err := New(cfg, profile, logger)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("playground: %w", err)
	}
	return nil
}
