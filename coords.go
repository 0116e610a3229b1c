package pathdml

import (
	"fmt"
	"math"
)

// Space tags coordinate values with the system they belong to, preventing
// source-space values from leaking into target-space math.
type Space uint8

const (
	// SpaceSource is the SVG user coordinate space of parsed path data.
	SpaceSource Space = iota

	// SpaceTarget is the DrawingML path space (bounds-relative 0-100000).
	SpaceTarget
)

const (
	// RelSpace is the extent of DrawingML's bounds-relative coordinate
	// space: geometry is normalized so the path bounds span 0-100000.
	RelSpace = 100000

	// EMUPerInch is the number of English Metric Units per inch, the
	// native DrawingML length unit.
	EMUPerInch = 914400

	// DefaultDPI is the SVG user-unit resolution assumed when none is
	// configured.
	DefaultDPI = 96
)

// Bounds is an axis-aligned bounding box tagged with its coordinate space.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
	Space      Space
}

// Width returns the horizontal extent of the bounds.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent of the bounds.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Degenerate reports whether the bounds cannot serve as a normalization
// box because either extent is zero (or inverted).
func (b Bounds) Degenerate() bool {
	return b.Width() <= 0 || b.Height() <= 0
}

// BoundsOf computes the bounding box of a path with a single min/max pass
// over every coordinate, including curve control points and arc endpoints.
// An empty path yields zero bounds.
func BoundsOf(p *Path) Bounds {
	b := Bounds{Space: SpaceSource}
	if p == nil || p.Empty() {
		return b
	}

	b.MinX, b.MinY = math.Inf(1), math.Inf(1)
	b.MaxX, b.MaxY = math.Inf(-1), math.Inf(-1)

	grow := func(pt Point) {
		b.MinX = math.Min(b.MinX, pt.X)
		b.MinY = math.Min(b.MinY, pt.Y)
		b.MaxX = math.Max(b.MaxX, pt.X)
		b.MaxY = math.Max(b.MaxY, pt.Y)
	}

	sc := p.Scanner()
	for sc.Scan() {
		seg := sc.Segment()
		switch seg.Kind {
		case SegMove, SegLine, SegArc:
			grow(seg.End)
		case SegQuad:
			grow(seg.C1)
			grow(seg.End)
		case SegCubic:
			grow(seg.C1)
			grow(seg.C2)
			grow(seg.End)
		}
	}

	if math.IsInf(b.MinX, 1) {
		// Only close commands: degrade to zero bounds.
		return Bounds{Space: SpaceSource}
	}
	return b
}

// ViewBox describes an SVG viewBox attribute.
type ViewBox struct {
	MinX, MinY    float64
	Width, Height float64
}

// CoordinateSystem maps SVG source coordinates to the DrawingML target
// space: viewport scaling, unit conversion to EMUs, and bounds-relative
// normalization. The zero value is usable and behaves as an identity
// viewport at DefaultDPI; call Configure to set real dimensions.
type CoordinateSystem struct {
	width, height float64
	viewBox       *ViewBox
	dpi           float64
	configured    bool
}

// Configure sets the viewport dimensions, optional viewBox, and resolution.
// It must run before viewport-dependent transforms. Fails with
// ErrConfiguration when a dimension is not positive; a dpi of 0 selects
// DefaultDPI.
func (cs *CoordinateSystem) Configure(width, height float64, viewBox *ViewBox, dpi float64) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: viewport %gx%g", ErrConfiguration, width, height)
	}
	if viewBox != nil && (viewBox.Width <= 0 || viewBox.Height <= 0) {
		return fmt.Errorf("%w: viewBox %gx%g", ErrConfiguration, viewBox.Width, viewBox.Height)
	}
	if dpi < 0 {
		return fmt.Errorf("%w: dpi %g", ErrConfiguration, dpi)
	}
	if dpi == 0 {
		dpi = DefaultDPI
	}

	cs.width, cs.height = width, height
	cs.dpi = dpi
	cs.viewBox = nil
	if viewBox != nil {
		vb := *viewBox
		cs.viewBox = &vb
	}
	cs.configured = true
	return nil
}

// Configured reports whether Configure has run.
func (cs *CoordinateSystem) Configured() bool {
	return cs.configured
}

// ViewportMatrix returns the affine matrix mapping viewBox coordinates onto
// the viewport. Without a viewBox (or before Configure) it is the identity.
func (cs *CoordinateSystem) ViewportMatrix() Matrix {
	if !cs.configured || cs.viewBox == nil {
		return Identity()
	}
	sx := cs.width / cs.viewBox.Width
	sy := cs.height / cs.viewBox.Height
	return Scale(sx, sy).Multiply(Translate(-cs.viewBox.MinX, -cs.viewBox.MinY))
}

// EMU converts an SVG length to English Metric Units at the configured
// resolution, rounding to the nearest unit.
func (cs *CoordinateSystem) EMU(v float64) int64 {
	dpi := cs.dpi
	if dpi == 0 {
		dpi = DefaultDPI
	}
	return int64(math.Round(v / dpi * EMUPerInch))
}

// ToRelative affinely maps a source point into the 0-100000 target space
// using bounds as the unit square. Fails with ErrTransform when the bounds
// are degenerate or tagged with the wrong space.
func (cs *CoordinateSystem) ToRelative(x, y float64, b Bounds) (float64, float64, error) {
	if b.Space != SpaceSource {
		return 0, 0, fmt.Errorf("%w: bounds not in source space", ErrTransform)
	}
	if b.Degenerate() {
		return 0, 0, fmt.Errorf("%w: degenerate bounds %gx%g", ErrTransform, b.Width(), b.Height())
	}
	rx := (x - b.MinX) / b.Width() * RelSpace
	ry := (y - b.MinY) / b.Height() * RelSpace
	return rx, ry, nil
}
