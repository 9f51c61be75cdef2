package geometry

import (
	"fmt"
	"math"
)

// GetDimensions measures el, its parent and the viewport in one pass and
// returns them in document coordinates.
//
// el must be a concrete element with a parent. The viewport itself, the
// root node and detached nodes are rejected with ErrInvalidArgument.
func GetDimensions(el Element) (DimensionSet, error) {
	if IsNil(el) {
		return DimensionSet{}, fmt.Errorf("%w: cannot measure a nil element", ErrInvalidArgument)
	}
	if _, ok := el.(Viewport); ok {
		return DimensionSet{}, fmt.Errorf("%w: cannot measure the viewport", ErrInvalidArgument)
	}
	parent := el.ParentElement()
	if parent == nil {
		return DimensionSet{}, fmt.Errorf("%w: element has no parent", ErrInvalidArgument)
	}
	vp := el.Viewport()
	if vp == nil {
		return DimensionSet{}, fmt.Errorf("%w: element is not attached to a viewport", ErrInvalidArgument)
	}

	scroll := vp.Scroll()
	width, height := vp.InnerSize()

	return DimensionSet{
		Rectangle: el.BoundingClientRect().Translate(scroll),
		Parent:    parent.BoundingClientRect().Translate(scroll),
		Window:    Rectangle{Width: width, Height: height, Offset: scroll},
	}, nil
}

// OverlapArea measures how far el spills out of container, or out of the
// viewport when container is nil. See OverlapRect for the meaning of the
// flags and the returned value.
func OverlapArea(el, container Element, lrOnly, tbOnly, ignoreBottom bool) (float64, error) {
	ele, err := GetDimensions(el)
	if err != nil {
		return 0, fmt.Errorf("measure element: %w", err)
	}

	bounds := ele.Window
	if !IsNil(container) {
		par, err := GetDimensions(container)
		if err != nil {
			return 0, fmt.Errorf("measure container: %w", err)
		}
		bounds = par.Rectangle
	}

	return OverlapRect(ele.Rectangle, bounds, lrOnly, tbOnly, ignoreBottom), nil
}

// OverlapRect computes the overshoot of ele past each edge of bounds.
// Each edge contributes a value <= 0; zero means that edge is respected.
//
// ignoreBottom forces the bottom overshoot to zero. With lrOnly the signed
// sum left+right is returned; otherwise with tbOnly the signed sum
// top+bottom. With neither, the result is the Euclidean norm of all four
// overshoots, a non-negative severity used to rank candidate placements.
func OverlapRect(ele, bounds Rectangle, lrOnly, tbOnly, ignoreBottom bool) float64 {
	topOver := math.Min(ele.Offset.Top-bounds.Offset.Top, 0)
	bottomOver := math.Min(bounds.Bottom()-ele.Bottom(), 0)
	leftOver := math.Min(ele.Offset.Left-bounds.Offset.Left, 0)
	rightOver := math.Min(bounds.Right()-ele.Right(), 0)
	if ignoreBottom {
		bottomOver = 0
	}

	if lrOnly {
		return leftOver + rightOver
	}
	if tbOnly {
		return topOver + bottomOver
	}
	return math.Sqrt(topOver*topOver + bottomOver*bottomOver + leftOver*leftOver + rightOver*rightOver)
}

// ImNotTouchingYou reports whether el stays entirely inside container (or
// the viewport) on every evaluated edge.
func ImNotTouchingYou(el, container Element, lrOnly, tbOnly, ignoreBottom bool) (bool, error) {
	overlap, err := OverlapArea(el, container, lrOnly, tbOnly, ignoreBottom)
	if err != nil {
		return false, err
	}
	return overlap == 0, nil
}

// GetExplicitOffsets measures el and anchor and returns the document
// offsets that put el on the given side of anchor. A nil anchor, typed or
// not, is not an error: the returned bool is false and the caller should leave el where
// it is.
func GetExplicitOffsets(el, anchor Element, pos Position, align Alignment, vOffset, hOffset float64, isOverflow bool) (Offset, bool, error) {
	if !pos.Accepts(align) {
		return Offset{}, false, fmt.Errorf("%w: alignment %s is not valid for position %s", ErrInvalidArgument, align, pos)
	}
	ele, err := GetDimensions(el)
	if err != nil {
		return Offset{}, false, fmt.Errorf("measure element: %w", err)
	}
	if IsNil(anchor) {
		return Offset{}, false, nil
	}
	anc, err := GetDimensions(anchor)
	if err != nil {
		return Offset{}, false, fmt.Errorf("measure anchor: %w", err)
	}
	off, ok := ExplicitOffsets(&ele, &anc, pos, align, vOffset, hOffset, isOverflow)
	return off, ok, nil
}

// ExplicitOffsets is the arithmetic behind GetExplicitOffsets.
//
// The position decides the main axis: the panel's near edge sits vOffset
// (top/bottom) or hOffset (left/right) away from the anchor's facing edge.
// The alignment decides the cross axis: flush with the anchor's start edge
// plus the offset, flush with its end edge minus the offset, or centred.
// When isOverflow is set a centred panel is instead pinned to the offset
// itself, for panels too large to centre safely.
//
// It returns false when anchor is nil or pos does not accept align.
func ExplicitOffsets(ele, anchor *DimensionSet, pos Position, align Alignment, vOffset, hOffset float64, isOverflow bool) (Offset, bool) {
	if ele == nil || anchor == nil || !pos.Accepts(align) {
		return Offset{}, false
	}

	var off Offset
	a := anchor.Offset

	switch pos {
	case Top:
		off.Top = a.Top - (ele.Height + vOffset)
	case Bottom:
		off.Top = a.Top + anchor.Height + vOffset
	case Left:
		off.Left = a.Left - (ele.Width + hOffset)
	case Right:
		off.Left = a.Left + anchor.Width + hOffset
	}

	if pos.Vertical() {
		switch align {
		case AlignLeft:
			off.Left = a.Left + hOffset
		case AlignRight:
			off.Left = a.Left - ele.Width + anchor.Width - hOffset
		case AlignCenter:
			if isOverflow {
				off.Left = hOffset
			} else {
				off.Left = (a.Left + anchor.Width/2) - ele.Width/2 + hOffset
			}
		}
	} else {
		switch align {
		case AlignTop:
			off.Top = a.Top + vOffset
		case AlignBottom:
			off.Top = a.Top - vOffset + anchor.Height - ele.Height
		case AlignCenter:
			if isOverflow {
				off.Top = vOffset
			} else {
				off.Top = (a.Top + vOffset + anchor.Height/2) - ele.Height/2
			}
		}
	}

	return off, true
}
