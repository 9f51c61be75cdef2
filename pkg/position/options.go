package position

import (
	"fmt"

	"gitlab.com/tinyland/lab/anchorpos/pkg/geometry"
)

// Options is the fully resolved configuration of one positionable widget.
type Options struct {
	// Position and Alignment may be Auto, in which case the widget's
	// DefaultPlacementPolicy chooses.
	Position  Position
	Alignment Alignment

	// AllowOverlap skips the collision search entirely.
	AllowOverlap bool
	// AllowBottomOverlap never penalizes spilling past the bottom edge.
	AllowBottomOverlap bool

	// VOffset and HOffset separate the panel from its anchor.
	VOffset float64
	HOffset float64

	// PinWideToMargin pins a centred panel to the margin when it is at
	// least as wide as its collision boundary.
	PinWideToMargin bool
}

// DefaultOptions returns auto/auto with collision search on and bottom
// overflow tolerated.
func DefaultOptions() Options {
	return Options{
		Position:           Auto,
		Alignment:          AlignAuto,
		AllowBottomOverlap: true,
	}
}

// Validate checks that an explicit alignment suits an explicit position.
func (o Options) Validate() error {
	if o.Position == Auto || o.Alignment == AlignAuto {
		return nil
	}
	if !o.Position.Accepts(o.Alignment) {
		return fmt.Errorf("%w: alignment %s is not valid for position %s", ErrInvalidArgument, o.Alignment, o.Position)
	}
	return nil
}

// OffsetFunc returns the vertical and horizontal separation to use for a
// given position. Widgets with decorations such as a tooltip arrow use it
// to add room on the side facing the anchor.
type OffsetFunc func(p Position, opts Options) (vOffset, hOffset float64)

// StaticOffsets uses the configured offsets unchanged.
func StaticOffsets(_ Position, opts Options) (float64, float64) {
	return opts.VOffset, opts.HOffset
}

// ParsePosition parses a position name; "auto" and "" yield Auto.
func ParsePosition(s string) (Position, error) {
	return geometry.ParsePosition(s)
}

// ParseAlignment parses an alignment name; "auto" and "" yield AlignAuto.
func ParseAlignment(s string) (Alignment, error) {
	return geometry.ParseAlignment(s)
}
