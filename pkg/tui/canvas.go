package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"gitlab.com/tinyland/lab/anchorpos/pkg/geometry"
)

// layer tags every canvas cell with what drew it, so each run of cells
// can be styled once when the canvas is turned into a string.
type layer uint8

const (
	layerBlank layer = iota
	layerAnchor
	layerPane
	layerPaneItem
	layerTip
	layerArrow
)

// Rounded box-drawing characters.
const (
	cornerTL = '╭'
	cornerTR = '╮'
	cornerBL = '╰'
	cornerBR = '╯'
	edgeH    = '─'
	edgeV    = '│'
)

// zoneMark wraps the run of cells on one row in a mouse zone.
type zoneMark struct {
	id string
	y  int
	l  layer
}

// canvas is a fixed grid of cells. Everything drawn is clipped to it.
type canvas struct {
	w, h   int
	cells  [][]rune
	layers [][]layer
	marks  []zoneMark
}

func newCanvas(w, h int) *canvas {
	w, h = max(w, 0), max(h, 0)
	c := &canvas{w: w, h: h, cells: make([][]rune, h), layers: make([][]layer, h)}
	for y := range h {
		c.cells[y] = []rune(strings.Repeat(" ", w))
		c.layers[y] = make([]layer, w)
	}
	return c
}

func (c *canvas) put(x, y int, r rune, l layer) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y][x] = r
	c.layers[y][x] = l
}

// text writes s starting at x, cut to at most width cells.
func (c *canvas) text(x, y int, s string, width int, l layer) {
	if width <= 0 {
		return
	}
	s = ansi.Truncate(ansi.Strip(s), width, "…")
	for i, r := range []rune(s) {
		c.put(x+i, y, r, l)
	}
}

// fill paints the rectangle with spaces on layer l.
func (c *canvas) fill(x, y, w, h int, l layer) {
	for dy := range h {
		for dx := range w {
			c.put(x+dx, y+dy, ' ', l)
		}
	}
}

// box draws a rounded border around r with lines inside. Boxes smaller
// than 2x2 are filled instead.
func (c *canvas) box(r geometry.Rectangle, title string, lines []string, frame, inner layer) {
	x, y, w, h := cells(r)
	if w < 2 || h < 2 {
		c.fill(x, y, w, h, frame)
		return
	}
	c.fill(x, y, w, h, inner)
	for dx := 1; dx < w-1; dx++ {
		c.put(x+dx, y, edgeH, frame)
		c.put(x+dx, y+h-1, edgeH, frame)
	}
	for dy := 1; dy < h-1; dy++ {
		c.put(x, y+dy, edgeV, frame)
		c.put(x+w-1, y+dy, edgeV, frame)
	}
	c.put(x, y, cornerTL, frame)
	c.put(x+w-1, y, cornerTR, frame)
	c.put(x, y+h-1, cornerBL, frame)
	c.put(x+w-1, y+h-1, cornerBR, frame)
	if title != "" && w > 4 {
		c.text(x+2, y, title, w-4, frame)
	}
	for i, line := range lines {
		if i >= h-2 {
			break
		}
		c.text(x+2, y+1+i, line, w-4, inner)
	}
}

// mark registers a mouse zone over the cells of layer l on row y.
func (c *canvas) mark(id string, y int, l layer) {
	c.marks = append(c.marks, zoneMark{id: id, y: y, l: l})
}

// render joins the rows, styling each run of equal layers with styles
// and wrapping marked runs with wrap.
func (c *canvas) render(styles map[layer]lipgloss.Style, wrap func(id, s string) string) string {
	lines := make([]string, c.h)
	for y := range c.h {
		var b strings.Builder
		row, tags := c.cells[y], c.layers[y]
		for x := 0; x < c.w; {
			end := x + 1
			for end < c.w && tags[end] == tags[x] {
				end++
			}
			run := string(row[x:end])
			if st, ok := styles[tags[x]]; ok {
				run = st.Render(run)
			}
			if wrap != nil {
				for _, m := range c.marks {
					if m.y == y && m.l == tags[x] {
						run = wrap(m.id, run)
					}
				}
			}
			b.WriteString(run)
			x = end
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

// plain returns the canvas without styling.
func (c *canvas) plain() string {
	lines := make([]string, c.h)
	for y, row := range c.cells {
		lines[y] = string(row)
	}
	return strings.Join(lines, "\n")
}

// cells rounds a geometry rectangle to whole terminal cells.
func cells(r geometry.Rectangle) (x, y, w, h int) {
	return int(math.Round(r.Offset.Left)), int(math.Round(r.Offset.Top)),
		int(math.Round(r.Width)), int(math.Round(r.Height))
}
