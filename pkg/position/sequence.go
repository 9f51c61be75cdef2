package position

import (
	"fmt"
	"slices"

	"gitlab.com/tinyland/lab/anchorpos/pkg/geometry"
)

// Re-exported so callers rarely need to import geometry directly.
type (
	Position  = geometry.Position
	Alignment = geometry.Alignment
)

const (
	Auto   = geometry.PositionAuto
	Left   = geometry.Left
	Right  = geometry.Right
	Top    = geometry.Top
	Bottom = geometry.Bottom

	AlignAuto   = geometry.AlignAuto
	AlignLeft   = geometry.AlignLeft
	AlignRight  = geometry.AlignRight
	AlignTop    = geometry.AlignTop
	AlignBottom = geometry.AlignBottom
	AlignCenter = geometry.AlignCenter
)

// ErrInvalidArgument is geometry.ErrInvalidArgument.
var ErrInvalidArgument = geometry.ErrInvalidArgument

// positionCycle is the order in which positions are tried.
var positionCycle = []Position{Left, Right, Top, Bottom}

var (
	verticalAlignments   = []Alignment{AlignTop, AlignBottom, AlignCenter}
	horizontalAlignments = []Alignment{AlignLeft, AlignRight, AlignCenter}
)

// Positions returns the positions in search order.
func Positions() []Position {
	return slices.Clone(positionCycle)
}

// ValidAlignments returns the alignments allowed for p in search order.
func ValidAlignments(p Position) ([]Alignment, error) {
	seq, err := alignmentCycle(p)
	if err != nil {
		return nil, err
	}
	return slices.Clone(seq), nil
}

func alignmentCycle(p Position) ([]Alignment, error) {
	switch {
	case p.Vertical():
		return horizontalAlignments, nil
	case p.Horizontal():
		return verticalAlignments, nil
	}
	return nil, fmt.Errorf("%w: no alignments for position %s", ErrInvalidArgument, p)
}

// Next returns the element after item in seq, wrapping to the start.
// An item that is not in seq is an error.
func Next[T comparable](item T, seq []T) (T, error) {
	idx := slices.Index(seq, item)
	if idx < 0 {
		var zero T
		return zero, fmt.Errorf("%w: %v is not in %v", ErrInvalidArgument, item, seq)
	}
	return seq[(idx+1)%len(seq)], nil
}

// NextPosition returns the position tried after p.
func NextPosition(p Position) (Position, error) {
	return Next(p, positionCycle)
}

// NextAlignment returns the alignment tried after a for position p.
func NextAlignment(p Position, a Alignment) (Alignment, error) {
	seq, err := alignmentCycle(p)
	if err != nil {
		return AlignAuto, err
	}
	return Next(a, seq)
}

// TriedPositions records which alignments have been attempted per position
// during one placement search.
type TriedPositions map[Position][]Alignment

// Add records that a was tried for p. Repeats are ignored.
func (t TriedPositions) Add(p Position, a Alignment) {
	if slices.Contains(t[p], a) {
		return
	}
	t[p] = append(t[p], a)
}

// Exhausted reports whether every valid alignment of p has been tried.
func (t TriedPositions) Exhausted(p Position) bool {
	seq, err := alignmentCycle(p)
	if err != nil {
		return false
	}
	return len(t[p]) == len(seq)
}

// AllExhausted reports whether every position is exhausted.
func (t TriedPositions) AllExhausted() bool {
	for _, p := range positionCycle {
		if !t.Exhausted(p) {
			return false
		}
	}
	return true
}

// Reset forgets every attempt.
func (t TriedPositions) Reset() {
	clear(t)
}
