package pathdml

import "math"

// intersectTolerance bounds the cross product below which two segments are
// treated as parallel.
const intersectTolerance = 1e-10

// SegmentIntersection solves the parametric intersection of segments a0->a1
// and b0->b1 with a determinant test. It reports no intersection when the
// segments are parallel (|cross| below tolerance) or when either solved
// parameter falls outside [0, 1].
func SegmentIntersection(a0, a1, b0, b1 Point) (Point, bool) {
	da := a1.Sub(a0)
	db := b1.Sub(b0)

	denom := da.Cross(db)
	if math.Abs(denom) < intersectTolerance {
		return Point{}, false
	}

	diff := b0.Sub(a0)
	t := diff.Cross(db) / denom
	u := diff.Cross(da) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Point{}, false
	}
	return a0.Add(da.Mul(t)), true
}

// PathIntersections returns the intersection points between two paths.
// Curves are flattened to polylines first (callers control the sample count
// through the Flattener), then every segment pair is tested. Coincident
// intersection points from adjacent segment pairs are deduplicated. Either
// path being empty yields an empty result.
func (f Flattener) PathIntersections(a, b *Path) ([]Point, error) {
	pa, err := f.Flatten(a)
	if err != nil {
		return nil, err
	}
	pb, err := f.Flatten(b)
	if err != nil {
		return nil, err
	}

	var hits []Point
	for _, polyA := range pa {
		for i := 0; i+1 < len(polyA); i++ {
			for _, polyB := range pb {
				for j := 0; j+1 < len(polyB); j++ {
					pt, ok := SegmentIntersection(polyA[i], polyA[i+1], polyB[j], polyB[j+1])
					if ok && !containsPoint(hits, pt, 1e-9) {
						hits = append(hits, pt)
					}
				}
			}
		}
	}
	return hits, nil
}

// containsPoint reports whether pts already holds a point within eps of p.
func containsPoint(pts []Point, p Point, eps float64) bool {
	for _, q := range pts {
		if math.Abs(q.X-p.X) < eps && math.Abs(q.Y-p.Y) < eps {
			return true
		}
	}
	return false
}
