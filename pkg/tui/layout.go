package tui

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"

	"gitlab.com/tinyland/lab/anchorpos/pkg/dom"
	"gitlab.com/tinyland/lab/anchorpos/pkg/geometry"
	"gitlab.com/tinyland/lab/anchorpos/pkg/position"
	"gitlab.com/tinyland/lab/anchorpos/pkg/terminal"
	"gitlab.com/tinyland/lab/anchorpos/pkg/widget"
)

// placed is one positioned panel of a frame.
type placed struct {
	rect geometry.Rectangle
	res  position.Result
}

// frame is the geometry of one screen.
type frame struct {
	anchor   geometry.Rectangle
	dropdown *placed
	tooltip  *placed
}

// layout rebuilds the element tree for the current screen and runs the
// dropdown and tooltip over it.
func (m Model) layout() (frame, error) {
	w, h := m.canvasSize()
	doc := dom.NewDocument(terminal.Size{Cols: w, Rows: h}.Viewport())

	aw, ah := m.anchorSize()
	f := frame{anchor: geometry.Rect(float64(m.anchorY), float64(m.anchorX), float64(aw), float64(ah))}

	// The tooltip gets its own anchor node so the dropdown's
	// aria-expanded state never suppresses it.
	button, err := m.node(doc, "anchor", f.anchor, "button")
	if err != nil {
		return frame{}, err
	}
	tipAnchor, err := m.node(doc, "anchor-tip", f.anchor)
	if err != nil {
		return frame{}, err
	}

	pw, ph := m.paneSize()
	pane, err := m.node(doc, "menu", geometry.Rect(0, 0, float64(pw), float64(ph)), "dropdown-pane")
	if err != nil {
		return frame{}, err
	}
	tip, err := m.node(doc, "tip", geometry.Rect(0, 0, float64(ansi.StringWidth(m.tipText)+2), 1))
	if err != nil {
		return frame{}, err
	}

	ddOpts := m.dropdown
	ddOpts.AllowOverlap = m.allowOverlap
	dd, err := widget.NewDropdown(button, pane, widget.DropdownConfig{Options: ddOpts, RTL: m.rtl}, m.logger)
	if err != nil {
		return frame{}, err
	}
	if m.dropdownOpen {
		res, err := dd.Open()
		if err != nil {
			return frame{}, fmt.Errorf("open dropdown: %w", err)
		}
		f.dropdown = &placed{rect: pane.Bounds(), res: res}
	}

	ttOpts := m.tooltip
	ttOpts.AllowOverlap = m.allowOverlap
	tt, err := widget.NewTooltip(tipAnchor, tip, widget.TooltipConfig{Options: ttOpts, ArrowSize: m.arrowSize, RTL: m.rtl}, m.logger)
	if err != nil {
		return frame{}, err
	}
	if m.tipVisible && m.tipText != "" {
		res, err := tt.Show()
		if err != nil {
			return frame{}, fmt.Errorf("show tooltip: %w", err)
		}
		f.tooltip = &placed{rect: tip.Bounds(), res: res}
	}
	return f, nil
}

func (m Model) node(doc *dom.Document, id string, r geometry.Rectangle, classes ...string) (*dom.Node, error) {
	n, err := doc.CreateElement(id, classes...)
	if err != nil {
		return nil, err
	}
	n.SetBounds(r)
	if err := doc.Body().AppendChild(n); err != nil {
		return nil, err
	}
	return n, nil
}

// paneSize fits the longest item plus padding and a border.
func (m Model) paneSize() (int, int) {
	widest := ansi.StringWidth(m.label)
	for _, it := range m.items {
		widest = max(widest, ansi.StringWidth(it))
	}
	return widest + 4, len(m.items) + 2
}
