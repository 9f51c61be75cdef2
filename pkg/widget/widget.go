// Package widget holds the collaborators that consume the positioning
// engine: a dropdown pane and a tooltip. They own open/closed state on the
// dom nodes and mirror the chosen placement as has-position-* and
// has-alignment-* classes.
package widget

import (
	"fmt"
	"log/slog"
	"strings"

	"gitlab.com/tinyland/lab/anchorpos/pkg/dom"
	"gitlab.com/tinyland/lab/anchorpos/pkg/position"
)

const (
	positionClassPrefix  = "has-position-"
	alignmentClassPrefix = "has-alignment-"

	// OpenClass marks a visible panel.
	OpenClass = "is-open"
)

// placement is the part shared by every positioned widget.
type placement struct {
	kind      string
	anchor    *dom.Node
	panel     *dom.Node
	container *dom.Node
	engine    *position.Positionable
	logger    *slog.Logger
	// expands mirrors the open state onto the anchor's aria-expanded.
	expands bool
}

func newPlacement(kind string, anchor, panel *dom.Node, opts position.Options, policy position.DefaultPlacementPolicy, rtl bool, logger *slog.Logger, extra ...position.Option) (placement, error) {
	if panel == nil {
		return placement{}, fmt.Errorf("%s: nil panel", kind)
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("widget", kind, "panel", panel.ID())

	ctx := position.Context{RTL: rtl, ElementClasses: panel.Classes()}
	if anchor != nil {
		ctx.AnchorClasses = anchor.Classes()
	}

	options := append([]position.Option{position.WithLogger(logger)}, extra...)
	engine, err := position.New(opts, policy, ctx, options...)
	if err != nil {
		return placement{}, fmt.Errorf("%s %q: %w", kind, panel.ID(), err)
	}
	return placement{kind: kind, anchor: anchor, panel: panel, engine: engine, logger: logger}, nil
}

// Position returns the last placement side.
func (p *placement) Position() position.Position { return p.engine.Position() }

// Alignment returns the last placement alignment.
func (p *placement) Alignment() position.Alignment { return p.engine.Alignment() }

// Panel returns the positioned node.
func (p *placement) Panel() *dom.Node { return p.panel }

// Anchor returns the anchor node, which may be nil.
func (p *placement) Anchor() *dom.Node { return p.anchor }

// IsOpen reports whether the panel is shown.
func (p *placement) IsOpen() bool { return p.panel.HasClass(OpenClass) }

// Reposition reruns the engine and refreshes the presentation classes.
func (p *placement) Reposition() (position.Result, error) {
	p.panel.RemoveClassFunc(isPlacementClass)
	res, err := p.engine.SetPosition(p.anchor, p.panel, p.container)
	p.panel.AddClass(PositionClass(p.engine.Position()), AlignmentClass(p.engine.Alignment()))
	if err != nil {
		return res, fmt.Errorf("%s %q: %w", p.kind, p.panel.ID(), err)
	}
	if res.Fallback {
		p.logger.Debug("placed with overlap", "overlap", res.Overlap)
	}
	return res, nil
}

func (p *placement) show() {
	if p.expands && p.anchor != nil {
		p.anchor.SetAttr(dom.ExpandedAttr, "true")
	}
	p.panel.SetAttr("aria-hidden", "false")
	p.panel.AddClass(OpenClass)
}

func (p *placement) hide() {
	if p.expands && p.anchor != nil {
		p.anchor.SetAttr(dom.ExpandedAttr, "false")
	}
	p.panel.SetAttr("aria-hidden", "true")
	p.panel.RemoveClass(OpenClass)
}

// PositionClass is the presentation class for a position.
func PositionClass(p position.Position) string {
	return positionClassPrefix + p.String()
}

// AlignmentClass is the presentation class for an alignment.
func AlignmentClass(a position.Alignment) string {
	return alignmentClassPrefix + a.String()
}

func isPlacementClass(c string) bool {
	return strings.HasPrefix(c, positionClassPrefix) || strings.HasPrefix(c, alignmentClassPrefix)
}
