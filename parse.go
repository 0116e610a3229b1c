package pathdml

import (
	"fmt"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
)

// Parse converts SVG path data into a Path. Numbers may be signed,
// fractional, or in exponent notation, separated by commas or whitespace.
//
// Parsing is deliberately tolerant: unknown single-letter tokens and
// everything following them are skipped until the next recognized command
// letter, and a command followed by more coordinate groups than its arity
// implicitly repeats for every command type except Z. Parse fails with
// ErrParse only on structurally unrecoverable input: a numeric token before
// any command, a malformed coordinate group, coordinates following a close,
// or a path longer than MaxCommands.
func Parse(pathData string) (*Path, error) {
	data := []byte(strings.TrimSpace(pathData))
	p := newPath()

	var cmd byte
	i := 0
	for i < len(data) {
		i += skipCommaWhitespace(data[i:])
		if i >= len(data) {
			break
		}

		switch b := data[i]; {
		case isCommandByte(b):
			cmd = b
			i++

		case isNumberStart(b):
			// Implicit repeat of the previous command.
			if cmd == 0 {
				return nil, fmt.Errorf("%w: numeric token at offset %d before any command", ErrParse, i)
			}
			if cmd == 'Z' || cmd == 'z' {
				return nil, fmt.Errorf("%w: coordinates at offset %d after close", ErrParse, i)
			}

		default:
			// Unknown token: skip ahead to the next recognized command.
			j := i
			for j < len(data) && !isCommandByte(data[j]) {
				j++
			}
			Logger().Warn("pathdml: skipping unrecognized path tokens",
				"offset", i, "skipped", string(data[i:j]))
			i = j
			continue
		}

		if cmd == 'Z' || cmd == 'z' {
			if err := appendCommand(p, Close{Rel: cmd == 'z'}); err != nil {
				return nil, err
			}
			continue
		}

		c, err := readCommand(cmd, data, &i)
		if err != nil {
			return nil, err
		}
		if err := appendCommand(p, c); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Validate performs syntax-only checking of path data.
func Validate(pathData string) bool {
	_, err := Parse(pathData)
	return err == nil
}

// appendCommand adds a command, enforcing the path length cap.
func appendCommand(p *Path, c Command) error {
	if p.CommandCount() >= MaxCommands {
		return fmt.Errorf("%w: more than %d commands", ErrParse, MaxCommands)
	}
	p.append(c)
	return nil
}

// readCommand parses one coordinate group for cmd and builds the command.
func readCommand(cmd byte, data []byte, i *int) (Command, error) {
	rel := cmd >= 'a'

	var v [7]float64
	n := arity(cmd)
	for k := 0; k < n; k++ {
		f, err := readNumber(data, i)
		if err != nil {
			return nil, err
		}
		v[k] = f
	}

	switch cmd {
	case 'M', 'm':
		return MoveTo{Rel: rel, P: Pt(v[0], v[1])}, nil
	case 'L', 'l':
		return LineTo{Rel: rel, P: Pt(v[0], v[1])}, nil
	case 'H', 'h':
		return HLineTo{Rel: rel, X: v[0]}, nil
	case 'V', 'v':
		return VLineTo{Rel: rel, Y: v[0]}, nil
	case 'C', 'c':
		return CubicTo{Rel: rel, C1: Pt(v[0], v[1]), C2: Pt(v[2], v[3]), P: Pt(v[4], v[5])}, nil
	case 'S', 's':
		return SmoothCubicTo{Rel: rel, C2: Pt(v[0], v[1]), P: Pt(v[2], v[3])}, nil
	case 'Q', 'q':
		return QuadTo{Rel: rel, C: Pt(v[0], v[1]), P: Pt(v[2], v[3])}, nil
	case 'T', 't':
		return SmoothQuadTo{Rel: rel, P: Pt(v[0], v[1])}, nil
	case 'A', 'a':
		return ArcTo{
			Rel:      rel,
			Rx:       v[0],
			Ry:       v[1],
			Rotation: v[2],
			LargeArc: v[3] != 0,
			Sweep:    v[4] != 0,
			P:        Pt(v[5], v[6]),
		}, nil
	}
	return nil, fmt.Errorf("%w: unhandled command %q", ErrParse, string(cmd))
}

// readNumber parses the next numeric token, advancing *i past it.
func readNumber(data []byte, i *int) (float64, error) {
	*i += skipCommaWhitespace(data[*i:])
	f, n := strconv.ParseFloat(data[*i:])
	if n == 0 {
		return 0, fmt.Errorf("%w: expected number at offset %d", ErrParse, *i)
	}
	*i += n
	return f, nil
}

// arity returns the coordinate count each command consumes per group.
func arity(cmd byte) int {
	switch cmd {
	case 'A', 'a':
		return 7
	case 'C', 'c':
		return 6
	case 'S', 's', 'Q', 'q':
		return 4
	case 'M', 'm', 'L', 'l', 'T', 't':
		return 2
	case 'H', 'h', 'V', 'v':
		return 1
	}
	return 0
}

func isCommandByte(b byte) bool {
	switch b {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v',
		'C', 'c', 'S', 's', 'Q', 'q', 'T', 't', 'A', 'a', 'Z', 'z':
		return true
	}
	return false
}

func isNumberStart(b byte) bool {
	return b >= '0' && b <= '9' || b == '-' || b == '+' || b == '.'
}

func skipCommaWhitespace(data []byte) int {
	i := 0
	for i < len(data) {
		switch data[i] {
		case ' ', ',', '\n', '\r', '\t':
			i++
		default:
			return i
		}
	}
	return i
}
