package geometry

import "reflect"

// Viewport is the visible window onto a document.
type Viewport interface {
	// InnerSize returns the visible width and height.
	InnerSize() (width, height float64)
	// Scroll returns how far the document is scrolled.
	Scroll() Offset
}

// Element is anything that can be measured.
type Element interface {
	// BoundingClientRect returns the element's box relative to the
	// viewport (document coordinates minus scroll).
	BoundingClientRect() Rectangle
	// ParentElement returns the immediate parent, or nil at the root.
	ParentElement() Element
	// Viewport returns the viewport the element is rendered in.
	Viewport() Viewport
}

// Positioner is an Element that can be moved.
type Positioner interface {
	Element
	// SetOffset moves the element so that its top-left corner sits at o
	// in document coordinates.
	SetOffset(o Offset)
}

// IsNil reports whether el is absent: a nil interface, or an interface
// holding a nil pointer such as a (*Node)(nil).
func IsNil(el Element) bool {
	if el == nil {
		return true
	}
	v := reflect.ValueOf(el)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
