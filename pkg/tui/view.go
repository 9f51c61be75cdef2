package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"gitlab.com/tinyland/lab/anchorpos/pkg/position"
	"gitlab.com/tinyland/lab/anchorpos/pkg/theme"
)

// palette holds the lipgloss styles derived from a theme.
type palette struct {
	anchor  lipgloss.Style
	pane    lipgloss.Style
	overlap lipgloss.Style
	item    lipgloss.Style
	tip     lipgloss.Style
	arrow   lipgloss.Style
	status  lipgloss.Style
	err     lipgloss.Style
}

func newPalette(t theme.Theme) palette {
	return palette{
		anchor:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)).Bold(true),
		pane:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Pane)),
		overlap: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Overlap)),
		item:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Foreground)),
		tip: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TipForeground)).
			Background(lipgloss.Color(t.TipBackground)),
		arrow:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.TipBackground)),
		status: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Dim)),
		err:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Overlap)),
	}
}

// helpStyles colors the key help with the theme.
func helpStyles(t theme.Theme) help.Styles {
	s := help.New().Styles
	key := lipgloss.NewStyle().Foreground(lipgloss.Color(t.HelpKey))
	desc := lipgloss.NewStyle().Foreground(lipgloss.Color(t.HelpDesc))
	s.ShortKey, s.FullKey = key, key
	s.ShortDesc, s.FullDesc = desc, desc
	return s
}

// resolveTheme accepts a built-in theme name or a .toml theme file.
func resolveTheme(name string) (theme.Theme, error) {
	if strings.HasSuffix(name, ".toml") {
		return theme.LoadFile(name)
	}
	if name == "" {
		return theme.Default(), nil
	}
	t, ok := theme.Get(name)
	if !ok {
		return theme.Theme{}, fmt.Errorf("unknown theme %q", name)
	}
	return t, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	c := m.draw()
	styles := map[layer]lipgloss.Style{
		layerAnchor:   m.pal.anchor,
		layerPane:     m.pal.pane,
		layerPaneItem: m.pal.item,
		layerTip:      m.pal.tip,
		layerArrow:    m.pal.arrow,
	}
	if d := m.frame.dropdown; d != nil && d.res.Fallback {
		styles[layerPane] = m.pal.overlap
	}
	body := c.render(styles, m.zones.Mark)
	return m.zones.Scan(body + "\n" + m.footer())
}

// draw paints the current frame onto a canvas.
func (m Model) draw() *canvas {
	w, h := m.canvasSize()
	c := newCanvas(w, h)

	f := m.frame
	c.box(f.anchor, "", []string{m.label}, layerAnchor, layerAnchor)
	_, ay, _, _ := cells(f.anchor)
	c.mark(anchorZone, ay+1, layerAnchor)

	if d := f.dropdown; d != nil {
		c.box(d.rect, m.label, m.items, layerPane, layerPaneItem)
	}
	if t := f.tooltip; t != nil {
		x, y, tw, _ := cells(t.rect)
		c.fill(x, y, tw, 1, layerTip)
		c.text(x+1, y, m.tipText, tw-2, layerTip)
		if m.arrowSize > 0 {
			m.drawArrow(c, t)
		}
	}
	return c
}

// drawArrow points from the tooltip at the anchor, in the gap reserved
// by the arrow size.
func (m Model) drawArrow(c *canvas, t *placed) {
	x, y, w, h := cells(t.rect)
	ax, ay, aw, ah := cells(m.frame.anchor)
	col := min(max(ax+aw/2, x), x+w-1)
	row := min(max(ay+ah/2, y), y+h-1)
	switch t.res.Position {
	case position.Top:
		c.put(col, y+h, '▼', layerArrow)
	case position.Bottom:
		c.put(col, y-1, '▲', layerArrow)
	case position.Left:
		c.put(x+w, row, '▶', layerArrow)
	case position.Right:
		c.put(x-1, row, '◀', layerArrow)
	}
}

// footer is the status line followed by the key help.
func (m Model) footer() string {
	return m.status() + "\n" + m.help.View(m.keys)
}

func (m Model) footerHeight() int {
	return 1 + lipgloss.Height(m.help.View(m.keys))
}

// status summarizes the last placements and the active toggles.
func (m Model) status() string {
	if m.err != nil {
		return m.pal.err.Render(truncate("error: "+m.err.Error(), m.width))
	}
	var parts []string
	if d := m.frame.dropdown; d != nil {
		parts = append(parts, "dropdown "+describe(d))
	}
	if t := m.frame.tooltip; t != nil {
		parts = append(parts, "tooltip "+describe(t))
	}
	if m.rtl {
		parts = append(parts, "rtl")
	}
	if m.allowOverlap {
		parts = append(parts, "overlap allowed")
	}
	parts = append(parts, fmt.Sprintf("%dx%d %s", m.width, m.height, m.profile))
	return m.pal.status.Render(truncate(strings.Join(parts, " · "), m.width))
}

func describe(p *placed) string {
	s := p.res.Position.String() + "/" + p.res.Alignment.String()
	if p.res.Fallback {
		s += fmt.Sprintf(" (overlap %.1f)", p.res.Overlap)
	}
	return s
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}
