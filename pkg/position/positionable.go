// Package position places floating panels next to an anchor and, unless
// overlap is allowed, searches the side/alignment combinations for one
// that keeps the panel inside its container.
//
// A Positionable belongs to one widget instance. It is not safe for
// concurrent use; independent instances share nothing.
package position

import (
	"fmt"
	"io"
	"log/slog"
	"math"

	"gitlab.com/tinyland/lab/anchorpos/pkg/geometry"
)

// Collapser is implemented by anchors that can be in a collapsed state.
// A collapsed anchor is never positioned against.
type Collapser interface {
	Collapsed() bool
}

// Result describes the outcome of one SetPosition call.
type Result struct {
	Position  Position
	Alignment Alignment
	Offset    geometry.Offset

	// Defined is false when no offsets could be computed (no anchor) and
	// the panel was left where it was.
	Defined bool
	// Overlap is the overlap of the final placement; zero on a clean fit
	// and when overlap checking is disabled.
	Overlap float64
	// Attempts counts the placements evaluated by the search.
	Attempts int
	// Fallback is true when no combination fit and the least overlapping
	// one was used.
	Fallback bool
	// Skipped is true when the anchor was collapsed.
	Skipped bool
}

// Option customises a Positionable.
type Option func(*Positionable)

// WithLogger sets the logger used for search tracing.
func WithLogger(l *slog.Logger) Option {
	return func(p *Positionable) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithOffsets replaces the offset strategy.
func WithOffsets(f OffsetFunc) Option {
	return func(p *Positionable) {
		if f != nil {
			p.offsets = f
		}
	}
}

// Positionable owns the placement state of one widget.
type Positionable struct {
	opts    Options
	offsets OffsetFunc
	logger  *slog.Logger

	position          Position
	alignment         Alignment
	originalPosition  Position
	originalAlignment Alignment
	tried             TriedPositions
}

// New resolves the starting position and alignment from opts, asking
// policy for anything left on auto.
func New(opts Options, policy DefaultPlacementPolicy, ctx Context, options ...Option) (*Positionable, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if policy == nil {
		policy = BasePolicy{}
	}

	p := &Positionable{
		opts:    opts,
		offsets: StaticOffsets,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		tried:   TriedPositions{},
	}
	for _, o := range options {
		o(p)
	}

	p.position = opts.Position
	if p.position == Auto {
		p.position = policy.DefaultPosition(ctx)
	}
	if _, err := alignmentCycle(p.position); err != nil {
		return nil, fmt.Errorf("resolve default position: %w", err)
	}

	p.alignment = opts.Alignment
	if p.alignment == AlignAuto {
		p.alignment = policy.DefaultAlignment(ctx, p.position)
	}
	if !p.position.Accepts(p.alignment) {
		return nil, fmt.Errorf("%w: alignment %s is not valid for position %s", ErrInvalidArgument, p.alignment, p.position)
	}

	p.originalPosition = p.position
	p.originalAlignment = p.alignment
	return p, nil
}

// Position returns the current (or final) position.
func (p *Positionable) Position() Position { return p.position }

// Alignment returns the current (or final) alignment.
func (p *Positionable) Alignment() Alignment { return p.alignment }

// Options returns the options the instance was built with.
func (p *Positionable) Options() Options { return p.opts }

// SetPosition places el relative to anchor. Unless overlap is allowed it
// restores the original position and alignment, then walks the
// combinations until el fits inside container (the viewport when nil). If
// nothing fits, the least overlapping combination seen first wins.
func (p *Positionable) SetPosition(anchor geometry.Element, el geometry.Positioner, container geometry.Element) (Result, error) {
	if geometry.IsNil(anchor) {
		anchor = nil
	}
	if geometry.IsNil(container) {
		container = nil
	}
	if c, ok := anchor.(Collapser); ok && c.Collapsed() {
		return Result{Position: p.position, Alignment: p.alignment, Skipped: true}, nil
	}

	if !p.opts.AllowOverlap {
		p.position = p.originalPosition
		p.alignment = p.originalAlignment
		p.tried.Reset()
	}

	off, defined, err := p.place(anchor, el, container)
	if err != nil {
		return Result{}, err
	}
	res := Result{Position: p.position, Alignment: p.alignment, Offset: off, Defined: defined}
	if !defined {
		p.logger.Debug("no anchor, panel left unplaced")
		return res, nil
	}
	if p.opts.AllowOverlap {
		return res, nil
	}

	minOverlap := math.Inf(1)
	bestPosition, bestAlignment := p.position, p.alignment

	for !p.tried.AllExhausted() {
		overlap, err := geometry.OverlapArea(el, container, false, false, p.opts.AllowBottomOverlap)
		if err != nil {
			return Result{}, fmt.Errorf("evaluate %s/%s: %w", p.position, p.alignment, err)
		}
		res.Attempts++
		p.logger.Debug("placement attempt",
			"position", p.position.String(),
			"alignment", p.alignment.String(),
			"overlap", overlap)

		if overlap == 0 {
			res.Position, res.Alignment, res.Offset = p.position, p.alignment, off
			return res, nil
		}
		if overlap < minOverlap {
			minOverlap = overlap
			bestPosition, bestAlignment = p.position, p.alignment
		}

		if err := p.advance(); err != nil {
			return Result{}, err
		}
		if p.tried.AllExhausted() {
			break
		}
		if off, _, err = p.place(anchor, el, container); err != nil {
			return Result{}, err
		}
	}

	p.position, p.alignment = bestPosition, bestAlignment
	if off, _, err = p.place(anchor, el, container); err != nil {
		return Result{}, err
	}
	p.logger.Info("no placement fits, using least overlap",
		"position", p.position.String(),
		"alignment", p.alignment.String(),
		"overlap", minOverlap,
		"attempts", res.Attempts)

	res.Position, res.Alignment, res.Offset = p.position, p.alignment, off
	res.Overlap = minOverlap
	res.Fallback = true
	return res, nil
}

// advance records the current pair and moves to the next alignment, or to
// the next position once every alignment of this one has been tried.
func (p *Positionable) advance() error {
	p.tried.Add(p.position, p.alignment)

	if p.tried.Exhausted(p.position) {
		next, err := NextPosition(p.position)
		if err != nil {
			return err
		}
		seq, err := alignmentCycle(next)
		if err != nil {
			return err
		}
		p.position, p.alignment = next, seq[0]
		return nil
	}

	next, err := NextAlignment(p.position, p.alignment)
	if err != nil {
		return err
	}
	p.alignment = next
	return nil
}

// place computes offsets for the current pair and moves el there.
func (p *Positionable) place(anchor geometry.Element, el geometry.Positioner, container geometry.Element) (geometry.Offset, bool, error) {
	overflow, err := p.overflows(el, container)
	if err != nil {
		return geometry.Offset{}, false, err
	}
	v, h := p.offsets(p.position, p.opts)
	off, ok, err := geometry.GetExplicitOffsets(el, anchor, p.position, p.alignment, v, h, overflow)
	if err != nil {
		return geometry.Offset{}, false, fmt.Errorf("place %s/%s: %w", p.position, p.alignment, err)
	}
	if ok {
		el.SetOffset(off)
	}
	return off, ok, nil
}

// overflows reports whether el is at least as wide as its boundary.
func (p *Positionable) overflows(el, container geometry.Element) (bool, error) {
	if !p.opts.PinWideToMargin {
		return false, nil
	}
	ele, err := geometry.GetDimensions(el)
	if err != nil {
		return false, fmt.Errorf("measure element: %w", err)
	}
	bound := ele.Window.Width
	if container != nil {
		c, err := geometry.GetDimensions(container)
		if err != nil {
			return false, fmt.Errorf("measure container: %w", err)
		}
		bound = c.Width
	}
	return ele.Width >= bound, nil
}
