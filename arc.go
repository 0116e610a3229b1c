package pathdml

import (
	"fmt"
	"math"
)

// arcCenter holds an arc converted from SVG endpoint parameterization to
// center parameterization.
type arcCenter struct {
	center Point
	rx, ry float64
	phi    float64 // x-axis rotation in radians
	theta  float64 // start angle
	delta  float64 // signed sweep
}

// ArcToBeziers converts an elliptical arc from start to arc.P into an
// ordered list of cubic Bezier segments in source coordinates. Arcs
// sweeping more than 90 degrees are split into the minimum number of
// sub-arcs of at most 90 degrees each. Radii too small to span the
// endpoints are scaled up uniformly, per SVG arc semantics.
//
// Fails with ErrArcConversion when rx or ry is not positive. An arc whose
// endpoints coincide produces no segments.
func ArcToBeziers(start Point, arc ArcTo) ([]CubicBez, error) {
	if arc.Rx <= 0 || arc.Ry <= 0 {
		return nil, fmt.Errorf("%w: radii %g, %g", ErrArcConversion, arc.Rx, arc.Ry)
	}
	if start == arc.P {
		return nil, nil
	}

	c := arcToCenter(start, arc)

	// Minimum number of sub-arcs of at most 90 degrees.
	n := int(math.Ceil(math.Abs(c.delta) / (math.Pi / 2)))
	if n < 1 {
		n = 1
	}
	step := c.delta / float64(n)

	curves := make([]CubicBez, 0, n)
	for i := 0; i < n; i++ {
		t1 := c.theta + float64(i)*step
		curves = append(curves, c.segment(t1, t1+step))
	}

	// Pin the construction to the exact endpoints, absorbing the rounding
	// accumulated through the trigonometric round trip.
	curves[0].P0 = start
	curves[n-1].P3 = arc.P
	return curves, nil
}

// arcToCenter converts endpoint parameterization to center parameterization
// (SVG 1.1 appendix F.6.5), scaling the radii up uniformly when they cannot
// span the endpoints.
func arcToCenter(start Point, arc ArcTo) arcCenter {
	rx, ry := math.Abs(arc.Rx), math.Abs(arc.Ry)
	phi := arc.Rotation * math.Pi / 180
	sinPhi, cosPhi := math.Sincos(phi)

	// Midpoint form in the rotated frame.
	dx := (start.X - arc.P.X) / 2
	dy := (start.Y - arc.P.Y) / 2
	x1 := cosPhi*dx + sinPhi*dy
	y1 := -sinPhi*dx + cosPhi*dy

	// Scale radii up if the ellipse cannot reach both endpoints.
	lambda := x1*x1/(rx*rx) + y1*y1/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	num := rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
	den := rx*rx*y1*y1 + ry*ry*x1*x1
	sq := num / den
	if sq < 0 {
		sq = 0 // clamp rounding noise after radius scaling
	}
	coef := math.Sqrt(sq)
	if arc.LargeArc == arc.Sweep {
		coef = -coef
	}

	cx1 := coef * rx * y1 / ry
	cy1 := -coef * ry * x1 / rx

	center := Point{
		X: cosPhi*cx1 - sinPhi*cy1 + (start.X+arc.P.X)/2,
		Y: sinPhi*cx1 + cosPhi*cy1 + (start.Y+arc.P.Y)/2,
	}

	theta := angleFrom(1, 0, (x1-cx1)/rx, (y1-cy1)/ry)
	delta := angleFrom((x1-cx1)/rx, (y1-cy1)/ry, (-x1-cx1)/rx, (-y1-cy1)/ry)

	if !arc.Sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if arc.Sweep && delta < 0 {
		delta += 2 * math.Pi
	}

	return arcCenter{center: center, rx: rx, ry: ry, phi: phi, theta: theta, delta: delta}
}

// segment builds one cubic Bezier approximating the sub-arc from angle t1
// to t2 (at most 90 degrees apart). The control offset alpha is chosen so
// the cubic passes through the arc midpoint; for a 90-degree sub-arc it
// equals the circle constant 4/3*(sqrt(2)-1).
func (c arcCenter) segment(t1, t2 float64) CubicBez {
	alpha := 4.0 / 3.0 * math.Tan((t2-t1)/4)

	p1 := c.pointAt(t1)
	p2 := c.pointAt(t2)
	d1 := c.derivAt(t1)
	d2 := c.derivAt(t2)

	return CubicBez{
		P0: p1,
		P1: p1.Add(d1.Mul(alpha)),
		P2: p2.Sub(d2.Mul(alpha)),
		P3: p2,
	}
}

// pointAt evaluates the ellipse at angle t: rotate, scale per axis, and
// translate the unit-circle point to the true center.
func (c arcCenter) pointAt(t float64) Point {
	sin, cos := math.Sincos(t)
	p := Point{X: c.rx * cos, Y: c.ry * sin}.Rotate(c.phi)
	return c.center.Add(p)
}

// derivAt evaluates the ellipse derivative at angle t.
func (c arcCenter) derivAt(t float64) Point {
	sin, cos := math.Sincos(t)
	return Point{X: -c.rx * sin, Y: c.ry * cos}.Rotate(c.phi)
}

// angleFrom returns the signed angle between vectors (ux, uy) and (vx, vy).
func angleFrom(ux, uy, vx, vy float64) float64 {
	dot := ux*vx + uy*vy
	norm := math.Sqrt((ux*ux + uy*uy) * (vx*vx + vy*vy))
	cos := dot / norm
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	a := math.Acos(cos)
	if ux*vy-uy*vx < 0 {
		a = -a
	}
	return a
}
