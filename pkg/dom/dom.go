// Package dom is a small retained element tree that can be measured by the
// geometry package. Node boxes are stored in document coordinates; the
// Document owns the viewport size and scroll position.
package dom

import (
	"fmt"
	"slices"

	"gitlab.com/tinyland/lab/anchorpos/pkg/geometry"
)

// ExpandedAttr is the attribute that marks an anchor open or closed.
const ExpandedAttr = "aria-expanded"

// Document is the viewport plus the tree rooted at its body.
type Document struct {
	width, height float64
	scroll        geometry.Offset
	body          *Node
	index         map[string]*Node
}

// NewDocument creates a document whose body covers a width x height
// viewport.
func NewDocument(width, height float64) *Document {
	d := &Document{
		width:  width,
		height: height,
		index:  make(map[string]*Node),
	}
	d.body = &Node{id: "body", doc: d, rect: geometry.Rect(0, 0, width, height)}
	d.index["body"] = d.body
	return d
}

// InnerSize implements geometry.Viewport.
func (d *Document) InnerSize() (float64, float64) { return d.width, d.height }

// Scroll implements geometry.Viewport.
func (d *Document) Scroll() geometry.Offset { return d.scroll }

// BoundingClientRect returns the viewport box. A Document is measurable as
// an element only so that geometry can reject it.
func (d *Document) BoundingClientRect() geometry.Rectangle {
	return geometry.Rect(0, 0, d.width, d.height)
}

// ParentElement always returns nil.
func (d *Document) ParentElement() geometry.Element { return nil }

// Viewport returns d.
func (d *Document) Viewport() geometry.Viewport { return d }

// ScrollTo sets the scroll position.
func (d *Document) ScrollTo(top, left float64) {
	d.scroll = geometry.Offset{Top: top, Left: left}
}

// Resize changes the viewport size. The body follows it.
func (d *Document) Resize(width, height float64) {
	d.width, d.height = width, height
	d.body.rect.Width, d.body.rect.Height = width, height
}

// Body returns the root node.
func (d *Document) Body() *Node { return d.body }

// ByID returns the node with the given id, or nil.
func (d *Document) ByID(id string) *Node { return d.index[id] }

// CreateElement returns a detached node. Ids must be unique per document.
func (d *Document) CreateElement(id string, classes ...string) (*Node, error) {
	if id == "" {
		return nil, fmt.Errorf("create element: empty id")
	}
	if _, ok := d.index[id]; ok {
		return nil, fmt.Errorf("create element: duplicate id %q", id)
	}
	n := &Node{id: id, doc: d, classes: slices.Clone(classes)}
	d.index[id] = n
	return n, nil
}

// Node is one element in the tree.
type Node struct {
	id       string
	doc      *Document
	parent   *Node
	children []*Node
	classes  []string
	attrs    map[string]string
	rect     geometry.Rectangle
}

// ID returns the node id.
func (n *Node) ID() string { return n.id }

// BoundingClientRect implements geometry.Element.
func (n *Node) BoundingClientRect() geometry.Rectangle {
	s := n.doc.scroll
	return n.rect.Translate(geometry.Offset{Top: -s.Top, Left: -s.Left})
}

// ParentElement implements geometry.Element. It returns an untyped nil for
// the body and for detached nodes.
func (n *Node) ParentElement() geometry.Element {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// Viewport implements geometry.Element.
func (n *Node) Viewport() geometry.Viewport { return n.doc }

// Parent returns the parent node or nil.
func (n *Node) Parent() *Node { return n.parent }

// Children returns a copy of the child list.
func (n *Node) Children() []*Node { return slices.Clone(n.children) }

// AppendChild attaches c as the last child of n, detaching it from any
// previous parent.
func (n *Node) AppendChild(c *Node) error {
	if c == nil {
		return fmt.Errorf("append child: nil node")
	}
	if c.doc != n.doc {
		return fmt.Errorf("append child %q: node belongs to another document", c.id)
	}
	for p := n; p != nil; p = p.parent {
		if p == c {
			return fmt.Errorf("append child %q: would create a cycle", c.id)
		}
	}
	c.Detach()
	c.parent = n
	n.children = append(n.children, c)
	return nil
}

// Detach removes n from its parent.
func (n *Node) Detach() {
	if n.parent == nil {
		return
	}
	p := n.parent
	if i := slices.Index(p.children, n); i >= 0 {
		p.children = slices.Delete(p.children, i, i+1)
	}
	n.parent = nil
}

// Closest returns the nearest ancestor (not n itself) carrying class, or
// nil.
func (n *Node) Closest(class string) *Node {
	for p := n.parent; p != nil; p = p.parent {
		if p.HasClass(class) {
			return p
		}
	}
	return nil
}

// Bounds returns the node box in document coordinates.
func (n *Node) Bounds() geometry.Rectangle { return n.rect }

// SetBounds replaces the node box (document coordinates).
func (n *Node) SetBounds(r geometry.Rectangle) { n.rect = r }

// SetOffset implements geometry.Positioner.
func (n *Node) SetOffset(o geometry.Offset) { n.rect.Offset = o }

// Resize changes the node size, keeping its offset.
func (n *Node) Resize(width, height float64) {
	n.rect.Width, n.rect.Height = width, height
}

// Classes returns a copy of the class list.
func (n *Node) Classes() []string { return slices.Clone(n.classes) }

// HasClass reports whether n carries class.
func (n *Node) HasClass(class string) bool { return slices.Contains(n.classes, class) }

// AddClass adds classes that are not already present.
func (n *Node) AddClass(classes ...string) {
	for _, c := range classes {
		if c != "" && !n.HasClass(c) {
			n.classes = append(n.classes, c)
		}
	}
}

// RemoveClass removes classes if present.
func (n *Node) RemoveClass(classes ...string) {
	n.classes = slices.DeleteFunc(n.classes, func(c string) bool {
		return slices.Contains(classes, c)
	})
}

// RemoveClassFunc removes every class for which drop returns true.
func (n *Node) RemoveClassFunc(drop func(string) bool) {
	n.classes = slices.DeleteFunc(n.classes, drop)
}

// Attr returns an attribute value.
func (n *Node) Attr(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

// SetAttr sets an attribute value.
func (n *Node) SetAttr(name, value string) {
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[name] = value
}

// Collapsed reports whether the node is explicitly marked not expanded.
func (n *Node) Collapsed() bool {
	if n == nil {
		return false
	}
	v, ok := n.attrs[ExpandedAttr]
	return ok && v == "false"
}
