package pathdml

import "math"

// Default tolerances for the optimization passes.
const (
	// DefaultTolerance is the distance below which points are considered
	// coincident and control points considered on the chord.
	DefaultTolerance = 1e-6

	// DefaultAngleTolerance is the turn angle in radians below which
	// consecutive line segments are considered collinear.
	DefaultAngleTolerance = 1e-3
)

// Optimizer rewrites paths into geometrically equivalent but smaller forms.
// Passes are idempotent: optimizing an already-optimized path returns an
// identical buffer. The zero value uses the default tolerances.
type Optimizer struct {
	// Tolerance is the coincidence/flatness distance threshold.
	Tolerance float64

	// AngleTolerance is the collinearity turn-angle threshold in radians.
	AngleTolerance float64
}

func (o Optimizer) tolerance() float64 {
	if o.Tolerance <= 0 {
		return DefaultTolerance
	}
	return o.Tolerance
}

func (o Optimizer) angleTolerance() float64 {
	if o.AngleTolerance <= 0 {
		return DefaultAngleTolerance
	}
	return o.AngleTolerance
}

// Optimize normalizes the path and applies three passes: zero-length lines
// are dropped, curves whose control points lie within tolerance of the
// endpoint chord collapse to lines, and runs of near-collinear lines are
// merged by keeping only vertices whose turn angle exceeds the threshold.
// A new path is returned; the input is never mutated.
func (o Optimizer) Optimize(p *Path) (*Path, error) {
	norm, err := p.Normalized()
	if err != nil {
		return nil, err
	}

	tol := o.tolerance()

	// Pass 1 and 2: drop degenerate lines, collapse flat curves. A close
	// moves the current point back to the subpath start, so the start is
	// tracked alongside the cursor.
	reduced := &Path{cmds: make([]Command, 0, len(norm.cmds))}
	cur := Point{}
	start := Point{}
	for _, cmd := range norm.cmds {
		switch c := cmd.(type) {
		case MoveTo:
			reduced.append(c)
			cur = c.P
			start = c.P
		case LineTo:
			if cur.Distance(c.P) < tol {
				continue
			}
			reduced.append(c)
			cur = c.P
		case CubicTo:
			if chordDistance(cur, c.P, c.C1) < tol && chordDistance(cur, c.P, c.C2) < tol {
				if cur.Distance(c.P) < tol {
					continue // fully degenerate curve
				}
				reduced.append(LineTo{P: c.P})
			} else {
				reduced.append(c)
			}
			cur = c.P
		case Close:
			reduced.append(c)
			cur = start
		}
	}

	// Pass 3: merge collinear line runs, iterated to a fixpoint so the
	// result is stable under re-optimization.
	merged := o.mergeCollinear(reduced)
	return merged, nil
}

// mergeCollinear collapses runs of consecutive LineTo commands, keeping a
// vertex only when the direction change at it exceeds the angle tolerance.
func (o Optimizer) mergeCollinear(p *Path) *Path {
	angleTol := o.angleTolerance()

	out := &Path{cmds: make([]Command, 0, len(p.cmds))}
	cur := Point{}
	start := Point{}

	var run []Point // line run vertices, excluding the anchor
	anchor := Point{}

	flush := func() {
		if len(run) == 0 {
			return
		}
		kept := simplifyRun(anchor, run, angleTol)
		for _, pt := range kept {
			out.append(LineTo{P: pt})
		}
		run = nil
	}

	for _, cmd := range p.cmds {
		switch c := cmd.(type) {
		case LineTo:
			if len(run) == 0 {
				anchor = cur
			}
			run = append(run, c.P)
			cur = c.P
		case MoveTo:
			flush()
			out.append(c)
			cur = c.P
			start = c.P
		case CubicTo:
			flush()
			out.append(c)
			cur = c.P
		case Close:
			flush()
			out.append(c)
			cur = start
		}
	}
	flush()
	return out
}

// simplifyRun reduces a polyline starting at anchor, iterating until no
// vertex with a sub-threshold turn angle remains.
func simplifyRun(anchor Point, pts []Point, angleTol float64) []Point {
	for {
		if len(pts) < 2 {
			return pts
		}
		kept := pts[:0:0]
		prev := anchor
		removed := false
		for i := 0; i < len(pts); i++ {
			if i == len(pts)-1 {
				kept = append(kept, pts[i])
				break
			}
			if turnAngle(prev, pts[i], pts[i+1]) <= angleTol {
				removed = true
				continue
			}
			kept = append(kept, pts[i])
			prev = pts[i]
		}
		if !removed {
			return kept
		}
		pts = kept
	}
}

// turnAngle returns the absolute direction change at b along a->b->c.
func turnAngle(a, b, c Point) float64 {
	d1 := b.Sub(a)
	d2 := c.Sub(b)
	if d1.Length() == 0 || d2.Length() == 0 {
		return 0
	}
	return math.Abs(math.Atan2(d1.Cross(d2), d1.Dot(d2)))
}

// chordDistance returns the perpendicular distance from pt to the chord
// a->b, falling back to point distance for a degenerate chord.
func chordDistance(a, b, pt Point) float64 {
	chord := b.Sub(a)
	length := chord.Length()
	if length == 0 {
		return pt.Distance(a)
	}
	return math.Abs(chord.Cross(pt.Sub(a))) / length
}
