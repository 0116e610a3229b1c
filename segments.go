package pathdml

// SegmentKind identifies the geometry of a resolved path segment.
type SegmentKind uint8

const (
	SegMove SegmentKind = iota
	SegLine
	SegQuad
	SegCubic
	SegArc
	SegClose
)

// Segment is one path command resolved into absolute coordinates. Relative
// offsets, horizontal/vertical elision, and smooth control point reflection
// have all been applied.
type Segment struct {
	Kind SegmentKind

	// Start is the current point before the segment. End is the point after.
	// For SegClose, End is the start of the subpath.
	Start, End Point

	// C1 is the control point of a quadratic, or the first control point of
	// a cubic. C2 is the second control point of a cubic.
	C1, C2 Point

	// Arc carries the absolute arc parameters for SegArc.
	Arc ArcTo

	// Index is the index of the originating command in the path.
	Index int
}

// Scanner walks a path's commands and resolves each into an absolute
// Segment, tracking the current point, subpath start, and the trailing
// control points needed for smooth command reflection.
//
//	sc := p.Scanner()
//	for sc.Scan() {
//		seg := sc.Segment()
//		...
//	}
type Scanner struct {
	p   *Path
	i   int
	seg Segment

	cur   Point
	start Point

	// prevCubicC2 and prevQuadC hold the last control points for S/T
	// reflection; the had* flags record whether the previous command was a
	// curve of the matching family.
	prevCubicC2 Point
	prevQuadC   Point
	hadCubic    bool
	hadQuad     bool
}

// Scanner returns a scanner positioned before the first command.
func (p *Path) Scanner() *Scanner {
	return &Scanner{p: p, i: -1}
}

// Scan advances to the next command and resolves it. It must be called
// before Segment.
func (s *Scanner) Scan() bool {
	s.i++
	if s.i >= len(s.p.cmds) {
		return false
	}
	s.resolve(s.p.cmds[s.i])
	return true
}

// Segment returns the segment resolved by the last call to Scan.
func (s *Scanner) Segment() Segment {
	return s.seg
}

// abs resolves a possibly-relative point against the current point.
func (s *Scanner) abs(rel bool, p Point) Point {
	if rel {
		return s.cur.Add(p)
	}
	return p
}

func (s *Scanner) resolve(cmd Command) {
	seg := Segment{Start: s.cur, Index: s.i}
	hadCubic, hadQuad := false, false

	switch c := cmd.(type) {
	case MoveTo:
		seg.Kind = SegMove
		seg.End = s.abs(c.Rel, c.P)
		s.start = seg.End

	case LineTo:
		seg.Kind = SegLine
		seg.End = s.abs(c.Rel, c.P)

	case HLineTo:
		seg.Kind = SegLine
		x := c.X
		if c.Rel {
			x += s.cur.X
		}
		seg.End = Pt(x, s.cur.Y)

	case VLineTo:
		seg.Kind = SegLine
		y := c.Y
		if c.Rel {
			y += s.cur.Y
		}
		seg.End = Pt(s.cur.X, y)

	case CubicTo:
		seg.Kind = SegCubic
		seg.C1 = s.abs(c.Rel, c.C1)
		seg.C2 = s.abs(c.Rel, c.C2)
		seg.End = s.abs(c.Rel, c.P)
		s.prevCubicC2 = seg.C2
		hadCubic = true

	case SmoothCubicTo:
		seg.Kind = SegCubic
		seg.C1 = s.cur
		if s.hadCubic {
			// Reflect the previous second control point across the
			// current point.
			seg.C1 = s.cur.Mul(2).Sub(s.prevCubicC2)
		}
		seg.C2 = s.abs(c.Rel, c.C2)
		seg.End = s.abs(c.Rel, c.P)
		s.prevCubicC2 = seg.C2
		hadCubic = true

	case QuadTo:
		seg.Kind = SegQuad
		seg.C1 = s.abs(c.Rel, c.C)
		seg.End = s.abs(c.Rel, c.P)
		s.prevQuadC = seg.C1
		hadQuad = true

	case SmoothQuadTo:
		seg.Kind = SegQuad
		seg.C1 = s.cur
		if s.hadQuad {
			seg.C1 = s.cur.Mul(2).Sub(s.prevQuadC)
		}
		seg.End = s.abs(c.Rel, c.P)
		s.prevQuadC = seg.C1
		hadQuad = true

	case ArcTo:
		seg.Kind = SegArc
		seg.End = s.abs(c.Rel, c.P)
		seg.Arc = ArcTo{
			Rx:       c.Rx,
			Ry:       c.Ry,
			Rotation: c.Rotation,
			LargeArc: c.LargeArc,
			Sweep:    c.Sweep,
			P:        seg.End,
		}

	case Close:
		seg.Kind = SegClose
		seg.End = s.start
	}

	s.cur = seg.End
	s.hadCubic = hadCubic
	s.hadQuad = hadQuad
	s.seg = seg
}
