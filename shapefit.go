package pathdml

import (
	"fmt"
	"math"
)

// ShapeKind identifies a primitive a path can be fitted against.
type ShapeKind int

const (
	// ShapeRect fits an axis-aligned rectangle to the path bounds.
	ShapeRect ShapeKind = iota

	// ShapeCircle fits a circle through the flattened path vertices.
	ShapeCircle
)

// ShapeFit holds the parameters of a fitted shape. Which fields are
// meaningful depends on Kind.
type ShapeFit struct {
	Kind   ShapeKind
	Center Point

	// Width and Height are set for ShapeRect.
	Width, Height float64

	// Radius is set for ShapeCircle.
	Radius float64

	// FitError measures how far the path deviates from the fitted shape.
	// For circles it is the standard deviation of vertex distances from
	// the center, not a least-squares residual.
	FitError float64
}

// FitShape fits the requested primitive to the path. Curves are sampled at
// the flattener's fixed subdivision. An empty path degrades to a zero-value
// fit; an unsupported kind fails with ErrInvalidArgument.
func (f Flattener) FitShape(p *Path, kind ShapeKind) (ShapeFit, error) {
	switch kind {
	case ShapeRect:
		return f.fitRect(p)
	case ShapeCircle:
		return f.fitCircle(p)
	}
	return ShapeFit{}, fmt.Errorf("%w: shape kind %d", ErrInvalidArgument, kind)
}

// fitRect returns the path bounds as center and size.
func (f Flattener) fitRect(p *Path) (ShapeFit, error) {
	b := BoundsOf(p)
	return ShapeFit{
		Kind:   ShapeRect,
		Center: Pt((b.MinX+b.MaxX)/2, (b.MinY+b.MaxY)/2),
		Width:  b.Width(),
		Height: b.Height(),
	}, nil
}

// fitCircle uses the vertex centroid as the center and the mean vertex
// distance as the radius. The reported fit error is the standard deviation
// of the distances, which is a documented approximation rather than a
// least-squares circle fit.
func (f Flattener) fitCircle(p *Path) (ShapeFit, error) {
	verts, err := f.Polygon(p)
	if err != nil {
		return ShapeFit{}, err
	}
	if len(verts) == 0 {
		return ShapeFit{Kind: ShapeCircle}, nil
	}

	var center Point
	for _, v := range verts {
		center = center.Add(v)
	}
	center = center.Mul(1 / float64(len(verts)))

	var mean float64
	dists := make([]float64, len(verts))
	for i, v := range verts {
		dists[i] = center.Distance(v)
		mean += dists[i]
	}
	mean /= float64(len(dists))

	var variance float64
	for _, d := range dists {
		variance += (d - mean) * (d - mean)
	}
	variance /= float64(len(dists))

	return ShapeFit{
		Kind:     ShapeCircle,
		Center:   center,
		Radius:   mean,
		FitError: math.Sqrt(variance),
	}, nil
}
