package pathdml

import (
	"errors"
	"math"
	"testing"
)

func TestFitRect(t *testing.T) {
	p, err := Parse("M 2 3 L 12 3 L 12 8 L 2 8 Z")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	fit, err := Flattener{}.FitShape(p, ShapeRect)
	if err != nil {
		t.Fatalf("FitShape() error = %v", err)
	}
	if fit.Kind != ShapeRect {
		t.Errorf("Kind = %v, want ShapeRect", fit.Kind)
	}
	if fit.Center != Pt(7, 5.5) {
		t.Errorf("Center = %v, want (7,5.5)", fit.Center)
	}
	if fit.Width != 10 || fit.Height != 5 {
		t.Errorf("size = %gx%g, want 10x5", fit.Width, fit.Height)
	}
}

func TestFitCircle(t *testing.T) {
	// A full circle of radius 10 around (5,5), drawn as two half arcs.
	p, err := Parse("M 15 5 A 10 10 0 0 1 -5 5 A 10 10 0 0 1 15 5")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	fit, err := Flattener{}.FitShape(p, ShapeCircle)
	if err != nil {
		t.Fatalf("FitShape() error = %v", err)
	}
	if !pointNear(fit.Center, Pt(5, 5), 0.1) {
		t.Errorf("Center = %v, want near (5,5)", fit.Center)
	}
	if math.Abs(fit.Radius-10) > 0.1 {
		t.Errorf("Radius = %g, want near 10", fit.Radius)
	}
	if fit.FitError > 0.1 {
		t.Errorf("FitError = %g for a near-perfect circle", fit.FitError)
	}
}

func TestFitCircleDistortion(t *testing.T) {
	circle, _ := Parse("M 15 5 A 10 10 0 0 1 -5 5 A 10 10 0 0 1 15 5")
	ellipse, _ := Parse("M 25 5 A 20 10 0 0 1 -15 5 A 20 10 0 0 1 25 5")

	f := Flattener{}
	round, err := f.FitShape(circle, ShapeCircle)
	if err != nil {
		t.Fatalf("FitShape(circle) error = %v", err)
	}
	flat, err := f.FitShape(ellipse, ShapeCircle)
	if err != nil {
		t.Fatalf("FitShape(ellipse) error = %v", err)
	}
	if flat.FitError <= round.FitError {
		t.Errorf("ellipse fit error %g not worse than circle %g", flat.FitError, round.FitError)
	}
}

func TestFitShapeEmptyPath(t *testing.T) {
	p, _ := Parse("")
	fit, err := Flattener{}.FitShape(p, ShapeCircle)
	if err != nil {
		t.Fatalf("FitShape() error = %v", err)
	}
	if fit != (ShapeFit{Kind: ShapeCircle}) {
		t.Errorf("empty path fit = %+v, want zero-value fit", fit)
	}
}

func TestFitShapeUnknownKind(t *testing.T) {
	p, _ := Parse("M 0 0 L 10 10")
	_, err := Flattener{}.FitShape(p, ShapeKind(99))
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("error = %v, want ErrInvalidArgument", err)
	}
}
