package geometry

import (
	"fmt"
	"strings"
)

// Position names the side of an anchor a floating panel is attached to.
// The zero value is PositionAuto, meaning "let a policy decide".
type Position int

const (
	PositionAuto Position = iota
	Left
	Right
	Top
	Bottom
)

var positionNames = [...]string{
	PositionAuto: "auto",
	Left:         "left",
	Right:        "right",
	Top:          "top",
	Bottom:       "bottom",
}

// String returns the lowercase name used in configuration and class names.
func (p Position) String() string {
	if p >= 0 && int(p) < len(positionNames) {
		return positionNames[p]
	}
	return fmt.Sprintf("position(%d)", int(p))
}

// Vertical reports whether the panel sits above or below the anchor.
func (p Position) Vertical() bool {
	return p == Top || p == Bottom
}

// Horizontal reports whether the panel sits beside the anchor.
func (p Position) Horizontal() bool {
	return p == Left || p == Right
}

// ParsePosition converts a configuration string to a Position. The empty
// string and "auto" both map to PositionAuto.
func ParsePosition(s string) (Position, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return PositionAuto, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	case "top":
		return Top, nil
	case "bottom":
		return Bottom, nil
	}
	return PositionAuto, fmt.Errorf("%w: unknown position %q", ErrInvalidArgument, s)
}

// Alignment is the cross-axis alignment of a panel for a given Position.
// The zero value is AlignAuto.
type Alignment int

const (
	AlignAuto Alignment = iota
	AlignLeft
	AlignRight
	AlignTop
	AlignBottom
	AlignCenter
)

var alignmentNames = [...]string{
	AlignAuto:   "auto",
	AlignLeft:   "left",
	AlignRight:  "right",
	AlignTop:    "top",
	AlignBottom: "bottom",
	AlignCenter: "center",
}

// String returns the lowercase name used in configuration and class names.
func (a Alignment) String() string {
	if a >= 0 && int(a) < len(alignmentNames) {
		return alignmentNames[a]
	}
	return fmt.Sprintf("alignment(%d)", int(a))
}

// ParseAlignment converts a configuration string to an Alignment. The empty
// string and "auto" both map to AlignAuto.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return AlignAuto, nil
	case "left":
		return AlignLeft, nil
	case "right":
		return AlignRight, nil
	case "top":
		return AlignTop, nil
	case "bottom":
		return AlignBottom, nil
	case "center":
		return AlignCenter, nil
	}
	return AlignAuto, fmt.Errorf("%w: unknown alignment %q", ErrInvalidArgument, s)
}

// Accepts reports whether a is a valid alignment for p. Top and bottom
// positions align along the horizontal axis (left, right, center); left
// and right positions align along the vertical axis (top, bottom, center).
func (p Position) Accepts(a Alignment) bool {
	switch {
	case p.Vertical():
		return a == AlignLeft || a == AlignRight || a == AlignCenter
	case p.Horizontal():
		return a == AlignTop || a == AlignBottom || a == AlignCenter
	}
	return false
}
