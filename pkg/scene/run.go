package scene

import (
	"fmt"
	"log/slog"
	"strings"

	"gitlab.com/tinyland/lab/anchorpos/pkg/dom"
	"gitlab.com/tinyland/lab/anchorpos/pkg/position"
	"gitlab.com/tinyland/lab/anchorpos/pkg/widget"
)

// Report is the outcome of running a scene.
type Report struct {
	Scene     string   `json:"scene"`
	Kind      string   `json:"kind"`
	Position  string   `json:"position"`
	Alignment string   `json:"alignment"`
	Top       float64  `json:"top"`
	Left      float64  `json:"left"`
	Defined   bool     `json:"defined"`
	Skipped   bool     `json:"skipped"`
	Fallback  bool     `json:"fallback"`
	Overlap   float64  `json:"overlap"`
	Attempts  int      `json:"attempts"`
	Classes   []string `json:"classes,omitempty"`
}

// String renders the report on one line.
func (r Report) String() string {
	var b strings.Builder
	name := r.Scene
	if name == "" {
		name = "scene"
	}
	fmt.Fprintf(&b, "%s: %s %s/%s", name, r.Kind, r.Position, r.Alignment)
	switch {
	case r.Skipped:
		b.WriteString(" skipped (anchor collapsed)")
		return b.String()
	case !r.Defined:
		b.WriteString(" undefined (no anchor)")
		return b.String()
	}
	fmt.Fprintf(&b, " at top=%g left=%g attempts=%d", r.Top, r.Left, r.Attempts)
	if r.Fallback {
		fmt.Fprintf(&b, " fallback overlap=%g", r.Overlap)
	}
	return b.String()
}

// Run builds the scene and positions its panel once.
func Run(s *Scene, logger *slog.Logger) (Report, error) {
	if logger == nil {
		logger = slog.Default()
	}
	doc, err := s.Build()
	if err != nil {
		return Report{}, err
	}
	anchor, err := lookup(doc, "anchor", s.Widget.Anchor)
	if err != nil {
		return Report{}, err
	}
	panel, err := lookup(doc, "panel", s.Widget.Panel)
	if err != nil {
		return Report{}, err
	}
	container, err := lookup(doc, "container", s.Widget.Container)
	if err != nil {
		return Report{}, err
	}
	opts, err := s.Options()
	if err != nil {
		return Report{}, err
	}

	var res position.Result
	switch s.kind() {
	case KindDropdown:
		dd, err := widget.NewDropdown(anchor, panel, widget.DropdownConfig{
			Options:     opts,
			ParentClass: s.Widget.ParentClass,
			RTL:         s.RTL,
		}, logger)
		if err != nil {
			return Report{}, err
		}
		res, err = dd.Open()
		if err != nil {
			return Report{}, err
		}
	case KindTooltip:
		tt, err := widget.NewTooltip(anchor, panel, widget.TooltipConfig{
			Options:   opts,
			ArrowSize: s.Widget.ArrowSize,
			RTL:       s.RTL,
		}, logger)
		if err != nil {
			return Report{}, err
		}
		res, err = tt.Show()
		if err != nil {
			return Report{}, err
		}
	default:
		res, err = runPanel(anchor, panel, container, opts, s.RTL, logger)
		if err != nil {
			return Report{}, err
		}
	}

	return Report{
		Scene:     s.Name,
		Kind:      s.kind(),
		Position:  res.Position.String(),
		Alignment: res.Alignment.String(),
		Top:       res.Offset.Top,
		Left:      res.Offset.Left,
		Defined:   res.Defined,
		Skipped:   res.Skipped,
		Fallback:  res.Fallback,
		Overlap:   res.Overlap,
		Attempts:  res.Attempts,
		Classes:   panel.Classes(),
	}, nil
}

func runPanel(anchor, panel, container *dom.Node, opts position.Options, rtl bool, logger *slog.Logger) (position.Result, error) {
	ctx := position.Context{RTL: rtl, ElementClasses: panel.Classes()}
	if anchor != nil {
		ctx.AnchorClasses = anchor.Classes()
	}
	p, err := position.New(opts, position.BasePolicy{}, ctx, position.WithLogger(logger))
	if err != nil {
		return position.Result{}, err
	}
	return p.SetPosition(anchor, panel, container)
}

// Check compares r with the scene's expectations.
func (s *Scene) Check(r Report) error {
	e := s.Expect
	if e == nil {
		return nil
	}
	var diffs []string
	if e.Position != "" && !strings.EqualFold(e.Position, r.Position) {
		diffs = append(diffs, fmt.Sprintf("position %s, want %s", r.Position, e.Position))
	}
	if e.Alignment != "" && !strings.EqualFold(e.Alignment, r.Alignment) {
		diffs = append(diffs, fmt.Sprintf("alignment %s, want %s", r.Alignment, e.Alignment))
	}
	if e.Offset != nil && (e.Offset.Top != r.Top || e.Offset.Left != r.Left) {
		diffs = append(diffs, fmt.Sprintf("offset top=%g left=%g, want top=%g left=%g", r.Top, r.Left, e.Offset.Top, e.Offset.Left))
	}
	if e.Fallback != nil && *e.Fallback != r.Fallback {
		diffs = append(diffs, fmt.Sprintf("fallback %t, want %t", r.Fallback, *e.Fallback))
	}
	if e.Overlap != nil && *e.Overlap != r.Overlap {
		diffs = append(diffs, fmt.Sprintf("overlap %g, want %g", r.Overlap, *e.Overlap))
	}
	if e.Attempts != 0 && e.Attempts != r.Attempts {
		diffs = append(diffs, fmt.Sprintf("attempts %d, want %d", r.Attempts, e.Attempts))
	}
	if len(diffs) > 0 {
		return fmt.Errorf("%s: %s", s.Name, strings.Join(diffs, "; "))
	}
	return nil
}
