package pathdml

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// xmlEscaper escapes the five reserved markup characters for use in
// attribute values and text content.
var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// GeneratorStats are the running counters of a Generator.
type GeneratorStats struct {
	// Paths is the number of shapes generated.
	Paths uint64

	// Commands is the number of path commands processed.
	Commands uint64

	// Elapsed is the cumulative generation time.
	Elapsed time.Duration
}

// Generator emits DrawingML custom-geometry markup from parsed paths.
// Arcs are expanded to Bezier segments and quadratics raised to cubics
// before emission, so the generator itself performs no geometry math beyond
// coordinate lookup and text formatting.
//
// Generator is not safe for concurrent use.
type Generator struct {
	// Decimals selects the coordinate text form: 0 emits rounded
	// integers (the DrawingML default), 1-10 emits fixed-decimal values.
	Decimals int

	stats GeneratorStats
}

// Stats returns a copy of the running counters.
func (g *Generator) Stats() GeneratorStats {
	return g.stats
}

// ResetStats zeroes the running counters.
func (g *Generator) ResetStats() {
	g.stats = GeneratorStats{}
}

// Shape emits a DrawingML shape element wrapping the path geometry. The
// path bounds are the normalization box: geometry is mapped into the
// 0-100000 path space via cs, and the shape offset and extents are
// expressed in EMUs. Presentation attributes are echoed verbatim (escaped,
// in sorted key order) onto the shape element.
//
// Any transform or arc-conversion failure is wrapped into a
// GenerationError tagged with the index of the failing command.
func (g *Generator) Shape(p *Path, b Bounds, cs *CoordinateSystem, attrs map[string]string) (string, error) {
	started := time.Now()

	var sb strings.Builder
	sb.WriteString("<a:sp")
	for _, k := range sortedKeys(attrs) {
		sb.WriteString(" ")
		sb.WriteString(k)
		sb.WriteString(`="`)
		sb.WriteString(xmlEscaper.Replace(attrs[k]))
		sb.WriteString(`"`)
	}
	sb.WriteString("><a:spPr><a:xfrm><a:off x=\"")
	sb.WriteString(strconv.FormatInt(cs.EMU(b.MinX), 10))
	sb.WriteString("\" y=\"")
	sb.WriteString(strconv.FormatInt(cs.EMU(b.MinY), 10))
	sb.WriteString("\"/><a:ext cx=\"")
	sb.WriteString(strconv.FormatInt(cs.EMU(b.Width()), 10))
	sb.WriteString("\" cy=\"")
	sb.WriteString(strconv.FormatInt(cs.EMU(b.Height()), 10))
	sb.WriteString("\"/></a:xfrm><a:custGeom><a:avLst/><a:gdLst/>")
	sb.WriteString("<a:rect l=\"0\" t=\"0\" r=\"100000\" b=\"100000\"/>")
	sb.WriteString("<a:pathLst><a:path w=\"100000\" h=\"100000\">")

	if err := g.writePath(&sb, p, b, cs); err != nil {
		return "", err
	}

	sb.WriteString("</a:path></a:pathLst></a:custGeom></a:spPr></a:sp>")

	g.stats.Paths++
	g.stats.Commands += uint64(p.CommandCount())
	g.stats.Elapsed += time.Since(started)
	return sb.String(), nil
}

// writePath emits the moveTo/lnTo/cubicBezTo/close primitives.
func (g *Generator) writePath(sb *strings.Builder, p *Path, b Bounds, cs *CoordinateSystem) error {
	sc := p.Scanner()
	for sc.Scan() {
		seg := sc.Segment()
		switch seg.Kind {
		case SegMove:
			if err := g.writePoint(sb, "<a:moveTo>", seg.End, b, cs, seg.Index); err != nil {
				return err
			}
			sb.WriteString("</a:moveTo>")

		case SegLine:
			if err := g.writePoint(sb, "<a:lnTo>", seg.End, b, cs, seg.Index); err != nil {
				return err
			}
			sb.WriteString("</a:lnTo>")

		case SegQuad:
			c := QuadBez{P0: seg.Start, P1: seg.C1, P2: seg.End}.Raise()
			if err := g.writeCubic(sb, c, b, cs, seg.Index); err != nil {
				return err
			}

		case SegCubic:
			c := CubicBez{P0: seg.Start, P1: seg.C1, P2: seg.C2, P3: seg.End}
			if err := g.writeCubic(sb, c, b, cs, seg.Index); err != nil {
				return err
			}

		case SegArc:
			curves, err := ArcToBeziers(seg.Start, seg.Arc)
			if err != nil {
				return &GenerationError{Index: seg.Index, Err: err}
			}
			for _, c := range curves {
				if err := g.writeCubic(sb, c, b, cs, seg.Index); err != nil {
					return err
				}
			}

		case SegClose:
			sb.WriteString("<a:close/>")
		}
	}
	return nil
}

// writeCubic emits one cubicBezTo element with three control points.
func (g *Generator) writeCubic(sb *strings.Builder, c CubicBez, b Bounds, cs *CoordinateSystem, index int) error {
	sb.WriteString("<a:cubicBezTo>")
	for _, pt := range [3]Point{c.P1, c.P2, c.P3} {
		if err := g.writePt(sb, pt, b, cs, index); err != nil {
			return err
		}
	}
	sb.WriteString("</a:cubicBezTo>")
	return nil
}

// writePoint emits an opening tag followed by a single pt element.
func (g *Generator) writePoint(sb *strings.Builder, open string, pt Point, b Bounds, cs *CoordinateSystem, index int) error {
	sb.WriteString(open)
	return g.writePt(sb, pt, b, cs, index)
}

// writePt emits one <a:pt/> element in the 0-100000 path space.
func (g *Generator) writePt(sb *strings.Builder, pt Point, b Bounds, cs *CoordinateSystem, index int) error {
	rx, ry, err := cs.ToRelative(pt.X, pt.Y, b)
	if err != nil {
		return &GenerationError{Index: index, Err: err}
	}
	sb.WriteString("<a:pt x=\"")
	sb.WriteString(g.formatCoord(rx))
	sb.WriteString("\" y=\"")
	sb.WriteString(g.formatCoord(ry))
	sb.WriteString("\"/>")
	return nil
}

// formatCoord prints a target-space coordinate as a rounded integer, or at
// a fixed number of decimals when configured.
func (g *Generator) formatCoord(v float64) string {
	if g.Decimals <= 0 {
		return strconv.FormatInt(int64(math.Round(v)), 10)
	}
	d := g.Decimals
	if d > 10 {
		d = 10
	}
	return strconv.FormatFloat(v, 'f', d, 64)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
