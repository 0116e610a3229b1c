package pathdml

import (
	"math"
	"testing"
)

const matrixEps = 1e-9

func pointNear(a, b Point, eps float64) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func TestTransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   Point
		want Point
	}{
		{"identity", Identity(), Pt(3, 4), Pt(3, 4)},
		{"translate", Translate(10, 20), Pt(1, 2), Pt(11, 22)},
		{"scale", Scale(2, 3), Pt(4, 5), Pt(8, 15)},
		{"rotate 90", Rotate(math.Pi / 2), Pt(1, 0), Pt(0, 1)},
		{"rotate 180", Rotate(math.Pi), Pt(1, 0), Pt(-1, 0)},
		{"shear x", Shear(0.5, 0), Pt(2, 4), Pt(4, 4)},
		{"shear y", Shear(0, 0.5), Pt(2, 4), Pt(2, 5)},
		{"scale then translate", Translate(10, 0).Multiply(Scale(2, 2)), Pt(1, 1), Pt(12, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint(tt.in)
			if !pointNear(got, tt.want, matrixEps) {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTransformVectorIgnoresTranslation(t *testing.T) {
	m := Translate(100, 100).Multiply(Scale(2, 2))
	got := m.TransformVector(Pt(1, 1))
	if !pointNear(got, Pt(2, 2), matrixEps) {
		t.Errorf("TransformVector(1,1) = %v, want (2,2)", got)
	}
}

func TestInvert(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"identity", Identity()},
		{"translate", Translate(-7, 13)},
		{"scale", Scale(2, 0.5)},
		{"rotate", Rotate(0.7)},
		{"shear", Shear(0.3, 0.7)},
		{"composite", Translate(5, -3).Multiply(Rotate(1.1)).Multiply(Scale(3, 2))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, ok := tt.m.Invert()
			if !ok {
				t.Fatalf("Invert() reported singular matrix")
			}
			p := Pt(3.5, -2.25)
			back := inv.TransformPoint(tt.m.TransformPoint(p))
			if !pointNear(back, p, matrixEps) {
				t.Errorf("inverse round trip = %v, want %v", back, p)
			}
		})
	}
}

func TestInvertSingular(t *testing.T) {
	m := Scale(0, 1)
	if m.Invertible() {
		t.Error("Invertible() = true for zero-determinant matrix")
	}
	if _, ok := m.Invert(); ok {
		t.Error("Invert() = ok for zero-determinant matrix")
	}
}

func TestIsIdentity(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want bool
	}{
		{"identity", Identity(), true},
		{"scale 1,1", Scale(1, 1), true},
		{"translate", Translate(1, 0), false},
		{"scale", Scale(2, 2), false},
		{"zero matrix", Matrix{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.IsIdentity(); got != tt.want {
				t.Errorf("IsIdentity() = %v, want %v", got, tt.want)
			}
		})
	}
}
