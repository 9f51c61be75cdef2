// Package geometry measures elements and computes placement arithmetic for
// anchored panels: bounding boxes in document coordinates, explicit offsets
// for a side/alignment pair, and how far a box spills out of its container.
//
// Nothing here is cached. Every call re-reads the element tree so results
// always reflect the current layout.
package geometry

// Offset is a point in document coordinates, measured from the document
// origin including scroll.
type Offset struct {
	Top  float64
	Left float64
}

// Rectangle is an axis-aligned box in document coordinates.
type Rectangle struct {
	Width  float64
	Height float64
	Offset Offset
}

// Rect is shorthand for building a Rectangle from top, left, width, height.
func Rect(top, left, width, height float64) Rectangle {
	return Rectangle{Width: width, Height: height, Offset: Offset{Top: top, Left: left}}
}

// Right returns the x coordinate of the right edge.
func (r Rectangle) Right() float64 {
	return r.Offset.Left + r.Width
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rectangle) Bottom() float64 {
	return r.Offset.Top + r.Height
}

// Translate returns r moved by d.
func (r Rectangle) Translate(d Offset) Rectangle {
	r.Offset.Top += d.Top
	r.Offset.Left += d.Left
	return r
}

// Contains reports whether other lies entirely inside r. Shared edges count
// as inside.
func (r Rectangle) Contains(other Rectangle) bool {
	return other.Offset.Left >= r.Offset.Left &&
		other.Offset.Top >= r.Offset.Top &&
		other.Right() <= r.Right() &&
		other.Bottom() <= r.Bottom()
}

// DimensionSet is a snapshot of an element, its immediate parent and the
// viewport, all taken in the same read.
type DimensionSet struct {
	Rectangle
	Parent Rectangle
	Window Rectangle
}
