package dom

import (
	"errors"
	"testing"

	"gitlab.com/tinyland/lab/anchorpos/pkg/geometry"
)

func mustCreate(t *testing.T, d *Document, parent *Node, id string, r geometry.Rectangle, classes ...string) *Node {
	t.Helper()
	n, err := d.CreateElement(id, classes...)
	if err != nil {
		t.Fatalf("CreateElement(%q): %v", id, err)
	}
	n.SetBounds(r)
	if err := parent.AppendChild(n); err != nil {
		t.Fatalf("AppendChild(%q): %v", id, err)
	}
	return n
}

func TestCreateElementRejectsDuplicates(t *testing.T) {
	d := NewDocument(100, 100)
	if _, err := d.CreateElement("a"); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := d.CreateElement("a"); err == nil {
		t.Error("expected duplicate id error")
	}
	if _, err := d.CreateElement(""); err == nil {
		t.Error("expected empty id error")
	}
	if d.ByID("a") == nil {
		t.Error("ByID(a) = nil")
	}
}

func TestBoundingClientRectSubtractsScroll(t *testing.T) {
	d := NewDocument(320, 480)
	n := mustCreate(t, d, d.Body(), "n", geometry.Rect(500, 40, 10, 10))
	d.ScrollTo(450, 30)

	got := n.BoundingClientRect()
	if got != geometry.Rect(50, 10, 10, 10) {
		t.Errorf("client rect = %+v", got)
	}

	dims, err := geometry.GetDimensions(n)
	if err != nil {
		t.Fatalf("GetDimensions: %v", err)
	}
	if dims.Rectangle != n.Bounds() {
		t.Errorf("document rect = %+v, want %+v", dims.Rectangle, n.Bounds())
	}
}

func TestBodyAndDocumentAreNotMeasurable(t *testing.T) {
	d := NewDocument(100, 100)
	for name, el := range map[string]geometry.Element{"document": d, "body": d.Body()} {
		if _, err := geometry.GetDimensions(el); !errors.Is(err, geometry.ErrInvalidArgument) {
			t.Errorf("%s: err = %v, want ErrInvalidArgument", name, err)
		}
	}
}

func TestAppendChildMovesAndRejectsCycles(t *testing.T) {
	d := NewDocument(100, 100)
	a := mustCreate(t, d, d.Body(), "a", geometry.Rect(0, 0, 50, 50))
	b := mustCreate(t, d, a, "b", geometry.Rect(0, 0, 10, 10))

	if err := b.AppendChild(a); err == nil {
		t.Error("expected cycle error")
	}
	if err := d.Body().AppendChild(b); err != nil {
		t.Fatalf("move b: %v", err)
	}
	if b.Parent() != d.Body() {
		t.Error("b was not moved under body")
	}
	if len(a.Children()) != 0 {
		t.Errorf("a still has %d children", len(a.Children()))
	}

	other := NewDocument(10, 10)
	stray, _ := other.CreateElement("stray")
	if err := a.AppendChild(stray); err == nil {
		t.Error("expected cross-document error")
	}
}

func TestClosestSkipsSelf(t *testing.T) {
	d := NewDocument(100, 100)
	outer := mustCreate(t, d, d.Body(), "outer", geometry.Rect(0, 0, 100, 100), "frame")
	inner := mustCreate(t, d, outer, "inner", geometry.Rect(0, 0, 50, 50), "frame")
	leaf := mustCreate(t, d, inner, "leaf", geometry.Rect(0, 0, 5, 5))

	if got := leaf.Closest("frame"); got != inner {
		t.Errorf("leaf.Closest = %v, want inner", got)
	}
	if got := inner.Closest("frame"); got != outer {
		t.Errorf("inner.Closest = %v, want outer", got)
	}
	if got := outer.Closest("frame"); got != nil {
		t.Errorf("outer.Closest = %v, want nil", got)
	}
}

func TestClassesAndCollapsed(t *testing.T) {
	d := NewDocument(100, 100)
	n := mustCreate(t, d, d.Body(), "n", geometry.Rect(0, 0, 1, 1), "a")

	n.AddClass("b", "a", "")
	if got := n.Classes(); len(got) != 2 {
		t.Errorf("classes = %v, want [a b]", got)
	}
	n.RemoveClass("a")
	if n.HasClass("a") || !n.HasClass("b") {
		t.Errorf("classes = %v after remove", n.Classes())
	}

	if n.Collapsed() {
		t.Error("node without aria-expanded reported collapsed")
	}
	n.SetAttr(ExpandedAttr, "false")
	if !n.Collapsed() {
		t.Error("aria-expanded=false not collapsed")
	}
	n.SetAttr(ExpandedAttr, "true")
	if n.Collapsed() {
		t.Error("aria-expanded=true reported collapsed")
	}

	var none *Node
	if none.Collapsed() {
		t.Error("nil node reported collapsed")
	}
}
