package widget

import (
	"log/slog"

	"gitlab.com/tinyland/lab/anchorpos/pkg/dom"
	"gitlab.com/tinyland/lab/anchorpos/pkg/position"
)

// DropdownConfig configures a Dropdown.
type DropdownConfig struct {
	Options position.Options
	// ParentClass names an ancestor class whose box bounds the collision
	// search instead of the viewport.
	ParentClass string
	RTL         bool
}

// Dropdown is a pane that opens next to its anchor.
type Dropdown struct {
	placement
}

// NewDropdown wires pane to anchor. The anchor starts collapsed.
func NewDropdown(anchor, pane *dom.Node, cfg DropdownConfig, logger *slog.Logger) (*Dropdown, error) {
	p, err := newPlacement("dropdown", anchor, pane, cfg.Options, position.DropdownPolicy{}, cfg.RTL, logger)
	if err != nil {
		return nil, err
	}
	p.expands = true
	if cfg.ParentClass != "" {
		p.container = pane.Closest(cfg.ParentClass)
		if p.container == nil {
			p.logger.Warn("parent class not found, bounding by viewport", "parent_class", cfg.ParentClass)
		}
	}
	d := &Dropdown{placement: p}
	d.hide()
	return d, nil
}

// Open shows the pane and positions it.
func (d *Dropdown) Open() (position.Result, error) {
	d.show()
	res, err := d.Reposition()
	if err != nil {
		return res, err
	}
	d.logger.Debug("dropdown opened", "position", res.Position.String(), "alignment", res.Alignment.String())
	return res, nil
}

// Close hides the pane. Repositioning a closed dropdown is a no-op.
func (d *Dropdown) Close() {
	d.hide()
}

// Toggle opens a closed dropdown and closes an open one.
func (d *Dropdown) Toggle() (position.Result, error) {
	if d.IsOpen() {
		d.Close()
		return position.Result{Position: d.Position(), Alignment: d.Alignment(), Skipped: true}, nil
	}
	return d.Open()
}
