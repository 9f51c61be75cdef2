package widget

import (
	"log/slog"

	"gitlab.com/tinyland/lab/anchorpos/pkg/dom"
	"gitlab.com/tinyland/lab/anchorpos/pkg/position"
)

// TooltipConfig configures a Tooltip.
type TooltipConfig struct {
	Options position.Options
	// ArrowSize is the room reserved for the arrow between the tooltip
	// and its anchor, added on the side facing the anchor.
	ArrowSize float64
	RTL       bool
}

// Tooltip is a short label shown beside its anchor. It always collides
// against the viewport.
type Tooltip struct {
	placement
}

// NewTooltip wires tip to anchor. The tooltip starts hidden.
func NewTooltip(anchor, tip *dom.Node, cfg TooltipConfig, logger *slog.Logger) (*Tooltip, error) {
	arrow := cfg.ArrowSize
	offsets := func(p position.Position, o position.Options) (float64, float64) {
		if p.Vertical() {
			return o.VOffset + arrow, o.HOffset
		}
		return o.VOffset, o.HOffset + arrow
	}
	p, err := newPlacement("tooltip", anchor, tip, cfg.Options, position.TooltipPolicy{}, cfg.RTL, logger,
		position.WithOffsets(offsets))
	if err != nil {
		return nil, err
	}
	t := &Tooltip{placement: p}
	t.hide()
	return t, nil
}

// Show positions and reveals the tooltip.
func (t *Tooltip) Show() (position.Result, error) {
	t.show()
	return t.Reposition()
}

// Hide conceals the tooltip.
func (t *Tooltip) Hide() {
	t.hide()
}
