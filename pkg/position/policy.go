package position

import "strings"

// Context is what a policy may look at when resolving "auto".
type Context struct {
	// RTL is true for right-to-left documents.
	RTL bool
	// ElementClasses are the classes on the positioned panel.
	ElementClasses []string
	// AnchorClasses are the classes on the anchor.
	AnchorClasses []string
}

// DefaultPlacementPolicy resolves the starting position and alignment for
// a widget type when its options say "auto".
type DefaultPlacementPolicy interface {
	DefaultPosition(ctx Context) Position
	DefaultAlignment(ctx Context, p Position) Alignment
}

// BasePolicy places panels below the anchor, flush with its start edge.
type BasePolicy struct{}

func (BasePolicy) DefaultPosition(Context) Position {
	return Bottom
}

func (BasePolicy) DefaultAlignment(ctx Context, p Position) Alignment {
	switch p {
	case Top, Bottom:
		if ctx.RTL {
			return AlignRight
		}
		return AlignLeft
	case Left, Right:
		return AlignBottom
	}
	return AlignAuto
}

// DropdownPolicy honours legacy class hints: a side name among the panel's
// classes picks the position and a float-<side> class on the anchor picks
// the alignment. Anything else falls back to BasePolicy.
type DropdownPolicy struct{}

func (DropdownPolicy) DefaultPosition(ctx Context) Position {
	for _, c := range ctx.ElementClasses {
		switch c {
		case "left":
			return Left
		case "right":
			return Right
		case "top":
			return Top
		case "bottom":
			return Bottom
		}
	}
	return BasePolicy{}.DefaultPosition(ctx)
}

func (DropdownPolicy) DefaultAlignment(ctx Context, p Position) Alignment {
	for _, c := range ctx.AnchorClasses {
		side, ok := strings.CutPrefix(c, "float-")
		if !ok {
			continue
		}
		var a Alignment
		switch side {
		case "left":
			a = AlignLeft
		case "right":
			a = AlignRight
		case "center":
			a = AlignCenter
		case "top":
			a = AlignTop
		case "bottom":
			a = AlignBottom
		default:
			continue
		}
		if p.Accepts(a) {
			return a
		}
	}
	return BasePolicy{}.DefaultAlignment(ctx, p)
}

// TooltipPolicy centres tooltips above their anchor.
type TooltipPolicy struct{}

func (TooltipPolicy) DefaultPosition(Context) Position {
	return Top
}

func (TooltipPolicy) DefaultAlignment(Context, Position) Alignment {
	return AlignCenter
}
