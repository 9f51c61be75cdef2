// Package scene loads YAML placement fixtures, builds them into a dom tree
// and runs a widget over them. Fixtures double as end-to-end tests and as
// input to the report mode of the CLI.
package scene

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"gitlab.com/tinyland/lab/anchorpos/pkg/dom"
	"gitlab.com/tinyland/lab/anchorpos/pkg/geometry"
	"gitlab.com/tinyland/lab/anchorpos/pkg/position"
)

// Widget kinds understood by Run.
const (
	KindDropdown = "dropdown"
	KindTooltip  = "tooltip"
	// KindPanel drives the engine directly, without widget state.
	KindPanel = "panel"
)

// Scene is one fixture file.
type Scene struct {
	Name     string  `yaml:"name"`
	Viewport Size    `yaml:"viewport"`
	Scroll   Point   `yaml:"scroll"`
	RTL      bool    `yaml:"rtl"`
	Widget   Widget  `yaml:"widget"`
	Nodes    []Node  `yaml:"nodes"`
	Expect   *Expect `yaml:"expect,omitempty"`
}

// Size is a width and height pair.
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Point is a top/left pair.
type Point struct {
	Top  float64 `yaml:"top"`
	Left float64 `yaml:"left"`
}

// Box is a node rectangle in document coordinates.
type Box struct {
	Top    float64 `yaml:"top"`
	Left   float64 `yaml:"left"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Rect converts b to a geometry rectangle.
func (b Box) Rect() geometry.Rectangle {
	return geometry.Rect(b.Top, b.Left, b.Width, b.Height)
}

// Node declares one element. An empty Parent attaches it to the body.
// Parents must be declared before their children.
type Node struct {
	ID      string            `yaml:"id"`
	Parent  string            `yaml:"parent,omitempty"`
	Rect    Box               `yaml:"rect"`
	Classes []string          `yaml:"classes,omitempty"`
	Attrs   map[string]string `yaml:"attrs,omitempty"`
}

// Widget selects the nodes to position and the options to use. Nil
// booleans keep the engine defaults.
type Widget struct {
	Kind      string `yaml:"kind"`
	Anchor    string `yaml:"anchor"`
	Panel     string `yaml:"panel"`
	Container string `yaml:"container,omitempty"`

	Position           string  `yaml:"position,omitempty"`
	Alignment          string  `yaml:"alignment,omitempty"`
	AllowOverlap       *bool   `yaml:"allow_overlap,omitempty"`
	AllowBottomOverlap *bool   `yaml:"allow_bottom_overlap,omitempty"`
	VOffset            float64 `yaml:"v_offset,omitempty"`
	HOffset            float64 `yaml:"h_offset,omitempty"`
	PinWideToMargin    bool    `yaml:"pin_wide_to_margin,omitempty"`
	ParentClass        string  `yaml:"parent_class,omitempty"`
	ArrowSize          float64 `yaml:"arrow_size,omitempty"`
}

// Expect holds optional assertions checked by Check.
type Expect struct {
	Position  string   `yaml:"position,omitempty"`
	Alignment string   `yaml:"alignment,omitempty"`
	Offset    *Point   `yaml:"offset,omitempty"`
	Fallback  *bool    `yaml:"fallback,omitempty"`
	Overlap   *float64 `yaml:"overlap,omitempty"`
	Attempts  int      `yaml:"attempts,omitempty"`
}

// Load reads and parses a fixture file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a fixture and checks that it is complete.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the fields that Build and Run rely on.
func (s *Scene) Validate() error {
	var errs []error
	if s.Viewport.Width <= 0 || s.Viewport.Height <= 0 {
		errs = append(errs, fmt.Errorf("viewport must have a positive size, got %gx%g", s.Viewport.Width, s.Viewport.Height))
	}
	switch s.kind() {
	case KindDropdown, KindTooltip, KindPanel:
	default:
		errs = append(errs, fmt.Errorf("unknown widget kind %q", s.Widget.Kind))
	}
	if s.Widget.Panel == "" {
		errs = append(errs, errors.New("widget.panel is required"))
	}
	if _, err := s.Options(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (s *Scene) kind() string {
	if s.Widget.Kind == "" {
		return KindPanel
	}
	return strings.ToLower(s.Widget.Kind)
}

// Options resolves the widget options on top of position.DefaultOptions.
func (s *Scene) Options() (position.Options, error) {
	opts := position.DefaultOptions()
	var err error
	if opts.Position, err = position.ParsePosition(s.Widget.Position); err != nil {
		return opts, fmt.Errorf("widget: %w", err)
	}
	if opts.Alignment, err = position.ParseAlignment(s.Widget.Alignment); err != nil {
		return opts, fmt.Errorf("widget: %w", err)
	}
	if s.Widget.AllowOverlap != nil {
		opts.AllowOverlap = *s.Widget.AllowOverlap
	}
	if s.Widget.AllowBottomOverlap != nil {
		opts.AllowBottomOverlap = *s.Widget.AllowBottomOverlap
	}
	opts.VOffset = s.Widget.VOffset
	opts.HOffset = s.Widget.HOffset
	opts.PinWideToMargin = s.Widget.PinWideToMargin
	if err := opts.Validate(); err != nil {
		return opts, fmt.Errorf("widget: %w", err)
	}
	return opts, nil
}

// Build creates the document described by s.
func (s *Scene) Build() (*dom.Document, error) {
	doc := dom.NewDocument(s.Viewport.Width, s.Viewport.Height)
	doc.ScrollTo(s.Scroll.Top, s.Scroll.Left)

	for _, n := range s.Nodes {
		el, err := doc.CreateElement(n.ID, n.Classes...)
		if err != nil {
			return nil, err
		}
		el.SetBounds(n.Rect.Rect())
		for k, v := range n.Attrs {
			el.SetAttr(k, v)
		}

		parent := doc.Body()
		if n.Parent != "" {
			if parent = doc.ByID(n.Parent); parent == nil {
				return nil, fmt.Errorf("node %q: unknown parent %q", n.ID, n.Parent)
			}
		}
		if err := parent.AppendChild(el); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// lookup resolves an optional node id.
func lookup(doc *dom.Document, role, id string) (*dom.Node, error) {
	if id == "" {
		return nil, nil
	}
	n := doc.ByID(id)
	if n == nil {
		return nil, fmt.Errorf("widget.%s: no node %q", role, id)
	}
	return n, nil
}
