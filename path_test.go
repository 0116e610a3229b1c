package pathdml

import (
	"reflect"
	"testing"
)

func TestNormalized(t *testing.T) {
	p, err := Parse("m 10 20 h 10 v 10 q 5 5 10 0 z")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	norm, err := p.Normalized()
	if err != nil {
		t.Fatalf("Normalized() error = %v", err)
	}

	for i, cmd := range norm.Commands() {
		if cmd.Relative() {
			t.Errorf("command %d still relative after Normalized()", i)
		}
		switch cmd.Kind() {
		case KindMove, KindLine, KindCubic, KindClose:
		default:
			t.Errorf("command %d kind = %v, want M/L/C/Z only", i, cmd.Kind())
		}
	}

	// The raised quadratic keeps its endpoints exactly.
	cubic, ok := norm.Commands()[3].(CubicTo)
	if !ok {
		t.Fatalf("command 3 = %T, want CubicTo", norm.Commands()[3])
	}
	if cubic.P != Pt(30, 30) {
		t.Errorf("raised quad endpoint = %v, want (30,30)", cubic.P)
	}
}

func TestNormalizedExpandsArcs(t *testing.T) {
	p, err := Parse("M 10 0 A 10 10 0 0 1 0 10")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	norm, err := p.Normalized()
	if err != nil {
		t.Fatalf("Normalized() error = %v", err)
	}
	if norm.CommandCount() != 2 {
		t.Fatalf("CommandCount() = %d, want 2 (move + one cubic)", norm.CommandCount())
	}
	if _, ok := norm.Commands()[1].(CubicTo); !ok {
		t.Errorf("command 1 = %T, want CubicTo", norm.Commands()[1])
	}
}

func TestNormalizedArcError(t *testing.T) {
	p, err := Parse("M 0 0 A 0 10 0 0 1 10 10")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if _, err := p.Normalized(); err == nil {
		t.Error("Normalized() succeeded on a zero-radius arc")
	}
}

func TestTransform(t *testing.T) {
	p, err := Parse("M 0 0 L 10 0 L 10 10 Z")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	moved, err := p.Transform(Translate(100, 200))
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}

	b := BoundsOf(moved)
	want := Bounds{MinX: 100, MinY: 200, MaxX: 110, MaxY: 210, Space: SpaceSource}
	if b != want {
		t.Errorf("bounds after translate = %+v, want %+v", b, want)
	}

	// The receiver is untouched.
	if got := BoundsOf(p); got.MinX != 0 || got.MaxX != 10 {
		t.Errorf("source path mutated: bounds %+v", got)
	}
}

func TestClone(t *testing.T) {
	p, err := Parse("M 1 2 L 3 4")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	c := p.Clone()
	if !reflect.DeepEqual(p.Commands(), c.Commands()) {
		t.Error("clone commands differ from source")
	}
	if p.CoordCount() != c.CoordCount() {
		t.Errorf("clone coord count = %d, want %d", c.CoordCount(), p.CoordCount())
	}
	c.append(Close{})
	if p.CommandCount() == c.CommandCount() {
		t.Error("appending to clone changed the source path")
	}
}

func TestEstimatedSize(t *testing.T) {
	small, _ := Parse("M 0 0")
	large, _ := Parse("M 0 0 C 1 2 3 4 5 6 C 7 8 9 10 11 12")
	if small.EstimatedSize() >= large.EstimatedSize() {
		t.Errorf("EstimatedSize: small %d >= large %d", small.EstimatedSize(), large.EstimatedSize())
	}
}

func TestCommandKindString(t *testing.T) {
	kinds := map[CommandKind]string{
		KindMove: "M", KindLine: "L", KindHLine: "H", KindVLine: "V",
		KindCubic: "C", KindSmoothCubic: "S", KindQuad: "Q",
		KindSmoothQuad: "T", KindArc: "A", KindClose: "Z",
	}
	for k, want := range kinds {
		if got := k.String(); got != want {
			t.Errorf("CommandKind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
