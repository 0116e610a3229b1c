package pathdml

// MaxCommands is the maximum number of commands a single path may hold.
// Parse fails with ErrParse when the input exceeds it.
const MaxCommands = 200

// CommandKind identifies the type of a path command.
type CommandKind uint8

const (
	KindMove CommandKind = iota
	KindLine
	KindHLine
	KindVLine
	KindCubic
	KindSmoothCubic
	KindQuad
	KindSmoothQuad
	KindArc
	KindClose
)

// String returns the absolute-form SVG letter for the command kind.
func (k CommandKind) String() string {
	switch k {
	case KindMove:
		return "M"
	case KindLine:
		return "L"
	case KindHLine:
		return "H"
	case KindVLine:
		return "V"
	case KindCubic:
		return "C"
	case KindSmoothCubic:
		return "S"
	case KindQuad:
		return "Q"
	case KindSmoothQuad:
		return "T"
	case KindArc:
		return "A"
	case KindClose:
		return "Z"
	}
	return "?"
}

// Command represents a single parsed path instruction. Commands store their
// coordinates exactly as written in the source text; relative forms keep
// their offsets and the Relative flag set. A Scanner resolves commands into
// absolute geometry.
type Command interface {
	// Kind returns the command type.
	Kind() CommandKind

	// Relative reports whether the command was written in relative form.
	Relative() bool

	// coordCount returns the number of coordinate values the command
	// carries (its arity).
	coordCount() int
}

// MoveTo starts a new subpath at a point.
type MoveTo struct {
	Rel bool
	P   Point
}

func (MoveTo) Kind() CommandKind { return KindMove }
func (c MoveTo) Relative() bool  { return c.Rel }
func (MoveTo) coordCount() int   { return 2 }

// LineTo draws a line to a point.
type LineTo struct {
	Rel bool
	P   Point
}

func (LineTo) Kind() CommandKind { return KindLine }
func (c LineTo) Relative() bool  { return c.Rel }
func (LineTo) coordCount() int   { return 2 }

// HLineTo draws a horizontal line to an x coordinate.
type HLineTo struct {
	Rel bool
	X   float64
}

func (HLineTo) Kind() CommandKind { return KindHLine }
func (c HLineTo) Relative() bool  { return c.Rel }
func (HLineTo) coordCount() int   { return 1 }

// VLineTo draws a vertical line to a y coordinate.
type VLineTo struct {
	Rel bool
	Y   float64
}

func (VLineTo) Kind() CommandKind { return KindVLine }
func (c VLineTo) Relative() bool  { return c.Rel }
func (VLineTo) coordCount() int   { return 1 }

// CubicTo draws a cubic Bezier curve with two control points.
type CubicTo struct {
	Rel    bool
	C1, C2 Point
	P      Point
}

func (CubicTo) Kind() CommandKind { return KindCubic }
func (c CubicTo) Relative() bool  { return c.Rel }
func (CubicTo) coordCount() int   { return 6 }

// SmoothCubicTo draws a cubic Bezier curve whose first control point is the
// reflection of the previous cubic's second control point.
type SmoothCubicTo struct {
	Rel bool
	C2  Point
	P   Point
}

func (SmoothCubicTo) Kind() CommandKind { return KindSmoothCubic }
func (c SmoothCubicTo) Relative() bool  { return c.Rel }
func (SmoothCubicTo) coordCount() int   { return 4 }

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Rel bool
	C   Point
	P   Point
}

func (QuadTo) Kind() CommandKind { return KindQuad }
func (c QuadTo) Relative() bool  { return c.Rel }
func (QuadTo) coordCount() int   { return 4 }

// SmoothQuadTo draws a quadratic Bezier curve whose control point is the
// reflection of the previous quadratic's control point.
type SmoothQuadTo struct {
	Rel bool
	P   Point
}

func (SmoothQuadTo) Kind() CommandKind { return KindSmoothQuad }
func (c SmoothQuadTo) Relative() bool  { return c.Rel }
func (SmoothQuadTo) coordCount() int   { return 2 }

// ArcTo draws an elliptical arc in SVG endpoint parameterization.
// Rotation is the x-axis rotation in degrees, as written in path data.
type ArcTo struct {
	Rel      bool
	Rx, Ry   float64
	Rotation float64
	LargeArc bool
	Sweep    bool
	P        Point
}

func (ArcTo) Kind() CommandKind { return KindArc }
func (c ArcTo) Relative() bool  { return c.Rel }
func (ArcTo) coordCount() int   { return 7 }

// Close closes the current subpath. Both letter cases carry the same
// semantics; the flag only preserves the as-written form for re-emission.
type Close struct {
	Rel bool
}

func (Close) Kind() CommandKind { return KindClose }
func (c Close) Relative() bool  { return c.Rel }
func (Close) coordCount() int   { return 0 }

// Path is an ordered sequence of parsed commands for one path. A Path is
// never mutated after Parse returns it; transforms and optimization passes
// produce new paths.
type Path struct {
	cmds   []Command
	coords int
}

// newPath creates an empty path with room for a typical command count.
func newPath() *Path {
	return &Path{cmds: make([]Command, 0, 16)}
}

// append adds a command, maintaining the coordinate count.
func (p *Path) append(c Command) {
	p.cmds = append(p.cmds, c)
	p.coords += c.coordCount()
}

// Commands returns the command sequence. The returned slice is shared with
// the path and must be treated as read-only.
func (p *Path) Commands() []Command {
	return p.cmds
}

// CommandCount returns the number of commands in the path.
func (p *Path) CommandCount() int {
	return len(p.cmds)
}

// CoordCount returns the total number of coordinate values across all
// commands.
func (p *Path) CoordCount() int {
	return p.coords
}

// Empty reports whether the path has no commands.
func (p *Path) Empty() bool {
	return len(p.cmds) == 0
}

// Clone creates a deep copy of the path. Commands are value types, so a
// slice copy suffices.
func (p *Path) Clone() *Path {
	cmds := make([]Command, len(p.cmds))
	copy(cmds, p.cmds)
	return &Path{cmds: cmds, coords: p.coords}
}

// EstimatedSize returns the approximate memory footprint of the path in
// bytes, for cache accounting.
func (p *Path) EstimatedSize() int {
	size := 64 // header and slice overhead
	for _, c := range p.cmds {
		size += 16 + c.coordCount()*8
	}
	return size
}

// Transform applies an affine matrix to the path and returns a new path in
// normalized form (absolute MoveTo, LineTo, CubicTo, Close). Arcs are
// expanded to cubic Bezier segments and quadratics are raised to cubics
// before the matrix is applied. The receiver is left untouched.
func (p *Path) Transform(m Matrix) (*Path, error) {
	norm, err := p.Normalized()
	if err != nil {
		return nil, err
	}

	out := &Path{cmds: make([]Command, 0, len(norm.cmds))}
	for _, cmd := range norm.cmds {
		switch c := cmd.(type) {
		case MoveTo:
			out.append(MoveTo{P: m.TransformPoint(c.P)})
		case LineTo:
			out.append(LineTo{P: m.TransformPoint(c.P)})
		case CubicTo:
			out.append(CubicTo{
				C1: m.TransformPoint(c.C1),
				C2: m.TransformPoint(c.C2),
				P:  m.TransformPoint(c.P),
			})
		case Close:
			out.append(Close{})
		}
	}
	return out, nil
}

// Normalized returns a new path containing only absolute MoveTo, LineTo,
// CubicTo, and Close commands. Horizontal and vertical lines become full
// lines, smooth control points are reflected, quadratics are raised to
// exactly-equivalent cubics, and arcs are expanded to Bezier segments.
// Fails with ErrArcConversion when an arc carries a non-positive radius.
func (p *Path) Normalized() (*Path, error) {
	out := &Path{cmds: make([]Command, 0, len(p.cmds))}

	sc := p.Scanner()
	for sc.Scan() {
		seg := sc.Segment()
		switch seg.Kind {
		case SegMove:
			out.append(MoveTo{P: seg.End})
		case SegLine:
			out.append(LineTo{P: seg.End})
		case SegQuad:
			c := QuadBez{P0: seg.Start, P1: seg.C1, P2: seg.End}.Raise()
			out.append(CubicTo{C1: c.P1, C2: c.P2, P: c.P3})
		case SegCubic:
			out.append(CubicTo{C1: seg.C1, C2: seg.C2, P: seg.End})
		case SegArc:
			curves, err := ArcToBeziers(seg.Start, seg.Arc)
			if err != nil {
				return nil, err
			}
			for _, c := range curves {
				out.append(CubicTo{C1: c.P1, C2: c.P2, P: c.P3})
			}
		case SegClose:
			out.append(Close{})
		}
	}
	return out, nil
}
