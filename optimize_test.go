package pathdml

import (
	"reflect"
	"testing"
)

func optimizePath(t *testing.T, pathData string) *Path {
	t.Helper()
	p, err := Parse(pathData)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", pathData, err)
	}
	out, err := Optimizer{}.Optimize(p)
	if err != nil {
		t.Fatalf("Optimize(%q) error = %v", pathData, err)
	}
	return out
}

func TestOptimizeDropsZeroLengthLines(t *testing.T) {
	out := optimizePath(t, "M 0 0 L 0 0 L 10 0")
	want := []Command{MoveTo{P: Pt(0, 0)}, LineTo{P: Pt(10, 0)}}
	if !reflect.DeepEqual(out.Commands(), want) {
		t.Errorf("Optimize() = %+v, want %+v", out.Commands(), want)
	}
}

func TestOptimizeMergesCollinear(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Command
	}{
		{
			"three collinear points",
			"M 0 0 L 5 0 L 10 0",
			[]Command{MoveTo{P: Pt(0, 0)}, LineTo{P: Pt(10, 0)}},
		},
		{
			"long collinear run",
			"M 0 0 L 1 0 L 2 0 L 3 0 L 4 0 L 5 0",
			[]Command{MoveTo{P: Pt(0, 0)}, LineTo{P: Pt(5, 0)}},
		},
		{
			"corner survives",
			"M 0 0 L 5 0 L 10 0 L 10 10",
			[]Command{MoveTo{P: Pt(0, 0)}, LineTo{P: Pt(10, 0)}, LineTo{P: Pt(10, 10)}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := optimizePath(t, tt.input)
			if !reflect.DeepEqual(out.Commands(), tt.want) {
				t.Errorf("Optimize(%q) = %+v, want %+v", tt.input, out.Commands(), tt.want)
			}
		})
	}
}

func TestOptimizeCollapsesFlatCubic(t *testing.T) {
	// Control points on the chord: the curve degenerates to a line.
	out := optimizePath(t, "M 0 0 C 2 0 8 0 10 0")
	want := []Command{MoveTo{P: Pt(0, 0)}, LineTo{P: Pt(10, 0)}}
	if !reflect.DeepEqual(out.Commands(), want) {
		t.Errorf("Optimize() = %+v, want %+v", out.Commands(), want)
	}

	// A genuinely curved cubic is kept.
	out = optimizePath(t, "M 0 0 C 0 10 10 10 10 0")
	if _, ok := out.Commands()[1].(CubicTo); !ok {
		t.Errorf("curved cubic collapsed: %+v", out.Commands())
	}
}

func TestOptimizeDropsDegenerateCubic(t *testing.T) {
	out := optimizePath(t, "M 5 5 C 5 5 5 5 5 5 L 10 5")
	want := []Command{MoveTo{P: Pt(5, 5)}, LineTo{P: Pt(10, 5)}}
	if !reflect.DeepEqual(out.Commands(), want) {
		t.Errorf("Optimize() = %+v, want %+v", out.Commands(), want)
	}
}

func TestOptimizeAfterClose(t *testing.T) {
	// A close moves the cursor back to the subpath start. A line drawn
	// after it toward the pre-close point is real geometry, not a
	// zero-length segment.
	out := optimizePath(t, "M 0 0 L 5 5 Z L 5 5 L 10 0")
	want := []Command{
		MoveTo{P: Pt(0, 0)},
		LineTo{P: Pt(5, 5)},
		Close{},
		LineTo{P: Pt(5, 5)},
		LineTo{P: Pt(10, 0)},
	}
	if !reflect.DeepEqual(out.Commands(), want) {
		t.Errorf("Optimize() = %+v, want %+v", out.Commands(), want)
	}

	// A line back to the subpath start right after the close really is
	// zero-length and goes away.
	out = optimizePath(t, "M 0 0 L 5 5 Z L 0 0 L 10 0")
	want = []Command{
		MoveTo{P: Pt(0, 0)},
		LineTo{P: Pt(5, 5)},
		Close{},
		LineTo{P: Pt(10, 0)},
	}
	if !reflect.DeepEqual(out.Commands(), want) {
		t.Errorf("Optimize() = %+v, want %+v", out.Commands(), want)
	}
}

func TestOptimizeIdempotent(t *testing.T) {
	inputs := []string{
		"M 0 0 L 1 0 L 2 0 L 3 0.0000001 L 4 0 L 10 10",
		"M 0 0 L 5 0 L 10 0 C 12 0 18 0 20 0 Z",
		"M 0 0 Q 5 10 10 0 T 20 0",
	}
	o := Optimizer{}
	for _, input := range inputs {
		p, err := Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", input, err)
		}
		once, err := o.Optimize(p)
		if err != nil {
			t.Fatalf("Optimize() error = %v", err)
		}
		twice, err := o.Optimize(once)
		if err != nil {
			t.Fatalf("second Optimize() error = %v", err)
		}
		if !reflect.DeepEqual(once.Commands(), twice.Commands()) {
			t.Errorf("Optimize(%q) not idempotent:\nonce:  %+v\ntwice: %+v",
				input, once.Commands(), twice.Commands())
		}
	}
}

func TestOptimizePreservesClose(t *testing.T) {
	out := optimizePath(t, "M 0 0 L 10 0 L 10 10 Z")
	last := out.Commands()[out.CommandCount()-1]
	if last.Kind() != KindClose {
		t.Errorf("last command = %v, want close", last.Kind())
	}
}
