package pathdml

import (
	"fmt"
	"strings"

	"github.com/tdewolff/minify/v2"
)

// DefaultPrecision is the number of significant digits used when printing
// coordinate values to text output.
const DefaultPrecision = 6

// SVG regenerates path data text from the command buffer, preserving the
// command forms as parsed (relative commands stay relative, H/V and smooth
// shorthands are kept). Numbers are printed at DefaultPrecision.
func (p *Path) SVG() string {
	return p.SVGPrecision(DefaultPrecision)
}

// SVGPrecision regenerates path data text at the given number of
// significant digits. Values outside 0-10 are clamped; 0 selects
// DefaultPrecision.
func (p *Path) SVGPrecision(precision int) string {
	if precision <= 0 {
		precision = DefaultPrecision
	} else if precision > 10 {
		precision = 10
	}

	var sb strings.Builder
	for _, cmd := range p.cmds {
		letter := cmd.Kind().String()
		if cmd.Relative() {
			letter = strings.ToLower(letter)
		}
		sb.WriteString(letter)

		switch c := cmd.(type) {
		case MoveTo:
			writeNums(&sb, precision, c.P.X, c.P.Y)
		case LineTo:
			writeNums(&sb, precision, c.P.X, c.P.Y)
		case HLineTo:
			writeNums(&sb, precision, c.X)
		case VLineTo:
			writeNums(&sb, precision, c.Y)
		case CubicTo:
			writeNums(&sb, precision, c.C1.X, c.C1.Y, c.C2.X, c.C2.Y, c.P.X, c.P.Y)
		case SmoothCubicTo:
			writeNums(&sb, precision, c.C2.X, c.C2.Y, c.P.X, c.P.Y)
		case QuadTo:
			writeNums(&sb, precision, c.C.X, c.C.Y, c.P.X, c.P.Y)
		case SmoothQuadTo:
			writeNums(&sb, precision, c.P.X, c.P.Y)
		case ArcTo:
			writeNums(&sb, precision, c.Rx, c.Ry, c.Rotation)
			sb.WriteByte(' ')
			sb.WriteString(flag(c.LargeArc))
			sb.WriteByte(' ')
			sb.WriteString(flag(c.Sweep))
			sb.WriteByte(' ')
			sb.WriteString(numString(c.P.X, precision))
			sb.WriteByte(' ')
			sb.WriteString(numString(c.P.Y, precision))
		}
	}
	return sb.String()
}

// writeNums prints values space-separated after a command letter.
func writeNums(sb *strings.Builder, precision int, vals ...float64) {
	for i, v := range vals {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(numString(v, precision))
	}
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// numString formats a coordinate at the given number of significant digits
// and minifies the textual form (strips trailing zeros, collapses exponent
// notation where shorter).
func numString(v float64, precision int) string {
	s := fmt.Sprintf("%.*g", precision, v)
	return string(minify.Number([]byte(s), precision))
}
