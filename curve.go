package pathdml

import "github.com/svgeom/pathdml/cache"

// DefaultSamples is the default number of evenly spaced parameter values
// used when sampling curves for flattening, intersection, and shape fitting.
const DefaultSamples = 20

// Line represents a line segment from P0 to P1.
type Line struct {
	P0, P1 Point
}

// Eval evaluates the line at parameter t (0 to 1).
func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Length returns the length of the line segment.
func (l Line) Length() float64 {
	return l.P0.Distance(l.P1)
}

// QuadBez represents a quadratic Bezier curve with control points P0, P1, P2.
// P0 is the start point, P1 is the control point, P2 is the end point.
type QuadBez struct {
	P0, P1, P2 Point
}

// Eval evaluates the curve at parameter t (0 to 1).
func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	// (1-t)^2 * P0 + 2(1-t)t * P1 + t^2 * P2
	return Point{
		X: mt*mt*q.P0.X + 2*mt*t*q.P1.X + t*t*q.P2.X,
		Y: mt*mt*q.P0.Y + 2*mt*t*q.P1.Y + t*t*q.P2.Y,
	}
}

// Raise elevates the quadratic to a cubic Bezier curve.
// The endpoints are preserved exactly:
//
//	C1 = P0 + 2/3 * (P1 - P0)
//	C2 = P2 + 2/3 * (P1 - P2)
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		P0: q.P0,
		P1: Point{
			X: q.P0.X + (2.0/3.0)*(q.P1.X-q.P0.X),
			Y: q.P0.Y + (2.0/3.0)*(q.P1.Y-q.P0.Y),
		},
		P2: Point{
			X: q.P2.X + (2.0/3.0)*(q.P1.X-q.P2.X),
			Y: q.P2.Y + (2.0/3.0)*(q.P1.Y-q.P2.Y),
		},
		P3: q.P2,
	}
}

// CubicBez represents a cubic Bezier curve with control points P0, P1, P2, P3.
// P0 is the start point, P1 and P2 are control points, P3 is the end point.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// Eval evaluates the curve at parameter t (0 to 1).
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	t2 := t * t
	t3 := t2 * t

	// (1-t)^3 * P0 + 3(1-t)^2*t * P1 + 3(1-t)*t^2 * P2 + t^3 * P3
	return Point{
		X: mt3*c.P0.X + 3*mt2*t*c.P1.X + 3*mt*t2*c.P2.X + t3*c.P3.X,
		Y: mt3*c.P0.Y + 3*mt2*t*c.P1.Y + 3*mt*t2*c.P2.Y + t3*c.P3.Y,
	}
}

// Split subdivides the curve at parameter t into two geometrically
// equivalent cubics using De Casteljau's construction.
func (c CubicBez) Split(t float64) (CubicBez, CubicBez) {
	p01 := c.P0.Lerp(c.P1, t)
	p12 := c.P1.Lerp(c.P2, t)
	p23 := c.P2.Lerp(c.P3, t)
	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)
	mid := p012.Lerp(p123, t)

	return CubicBez{P0: c.P0, P1: p01, P2: p012, P3: mid},
		CubicBez{P0: mid, P1: p123, P2: p23, P3: c.P3}
}

// SampleGrid holds a shared, evenly spaced parameter grid. Many curves are
// evaluated against one grid so the parameter setup cost is paid once per
// batch rather than once per curve.
type SampleGrid struct {
	ts []float64
}

// NewSampleGrid creates a grid of n evenly spaced parameters from 0 to 1
// inclusive. n values below 2 are raised to 2.
func NewSampleGrid(n int) *SampleGrid {
	if n < 2 {
		n = 2
	}
	ts := make([]float64, n)
	step := 1.0 / float64(n-1)
	for i := range ts {
		ts[i] = float64(i) * step
	}
	ts[n-1] = 1 // exact endpoint regardless of step rounding
	return &SampleGrid{ts: ts}
}

// gridFromPool builds a grid using a scratch buffer from pool when one is
// supplied. The returned release function must be called when the grid is
// no longer needed.
func gridFromPool(pool *cache.BufferPool, n int) (*SampleGrid, func()) {
	if pool == nil {
		return NewSampleGrid(n), func() {}
	}
	if n < 2 {
		n = 2
	}
	ts := pool.Get(n)
	step := 1.0 / float64(n-1)
	for i := range ts {
		ts[i] = float64(i) * step
	}
	ts[n-1] = 1
	g := &SampleGrid{ts: ts}
	return g, func() { pool.Put(ts) }
}

// Len returns the number of samples in the grid.
func (g *SampleGrid) Len() int {
	return len(g.ts)
}

// Cubic appends the curve evaluated at every grid parameter to dst.
func (g *SampleGrid) Cubic(dst []Point, c CubicBez) []Point {
	for _, t := range g.ts {
		dst = append(dst, c.Eval(t))
	}
	return dst
}

// Quad appends the curve evaluated at every grid parameter to dst. The
// quadratic is raised to its exactly-equivalent cubic first so batches mix
// curve orders freely.
func (g *SampleGrid) Quad(dst []Point, q QuadBez) []Point {
	return g.Cubic(dst, q.Raise())
}

// Flattener converts curved paths into polylines at a fixed subdivision.
// The zero value flattens at DefaultSamples without buffer reuse.
type Flattener struct {
	// Samples is the per-curve sample count. Values below 2 fall back to
	// DefaultSamples.
	Samples int

	// Pool, when set, supplies the scratch parameter buffer.
	Pool *cache.BufferPool
}

// samples returns the effective sample count.
func (f Flattener) samples() int {
	if f.Samples < 2 {
		return DefaultSamples
	}
	return f.Samples
}

// Flatten resolves the path and samples every curve on a shared grid,
// returning one polyline per subpath. Arcs are expanded to Bezier segments
// first. An empty path yields no polylines.
func (f Flattener) Flatten(p *Path) ([][]Point, error) {
	norm, err := p.Normalized()
	if err != nil {
		return nil, err
	}

	grid, release := gridFromPool(f.Pool, f.samples())
	defer release()

	var polys [][]Point
	var cur []Point

	flush := func() {
		if len(cur) > 0 {
			polys = append(polys, cur)
			cur = nil
		}
	}

	sc := norm.Scanner()
	for sc.Scan() {
		seg := sc.Segment()
		switch seg.Kind {
		case SegMove:
			flush()
			cur = append(cur, seg.End)
		case SegLine:
			cur = append(cur, seg.End)
		case SegCubic:
			c := CubicBez{P0: seg.Start, P1: seg.C1, P2: seg.C2, P3: seg.End}
			// Skip the first grid sample: it equals the previous point.
			pts := grid.Cubic(nil, c)
			cur = append(cur, pts[1:]...)
		case SegClose:
			// Append the closing edge unless the polyline already ends on
			// the subpath start.
			if len(cur) > 0 && cur[len(cur)-1] != seg.End {
				cur = append(cur, seg.End)
			}
			flush()
		}
	}
	flush()
	return polys, nil
}

// Polygon flattens the path and concatenates all subpath polylines into a
// single vertex list for shape fitting.
func (f Flattener) Polygon(p *Path) ([]Point, error) {
	polys, err := f.Flatten(p)
	if err != nil {
		return nil, err
	}
	var verts []Point
	for _, poly := range polys {
		verts = append(verts, poly...)
	}
	return verts, nil
}
