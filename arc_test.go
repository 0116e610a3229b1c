package pathdml

import (
	"errors"
	"math"
	"testing"
)

func TestArcQuarterCircleControlOffset(t *testing.T) {
	// A 90-degree circular arc maps to a single cubic whose control points
	// sit at distance r * 4/3*(sqrt(2)-1) from the endpoints.
	const r = 10.0
	const kappa = 0.5522847498307936

	curves, err := ArcToBeziers(Pt(r, 0), ArcTo{Rx: r, Ry: r, Sweep: true, P: Pt(0, r)})
	if err != nil {
		t.Fatalf("ArcToBeziers() error = %v", err)
	}
	if len(curves) != 1 {
		t.Fatalf("got %d curves, want 1", len(curves))
	}

	c := curves[0]
	if got := c.P1.Distance(c.P0); math.Abs(got-r*kappa) > 1e-9 {
		t.Errorf("first control offset = %.12f, want %.12f", got, r*kappa)
	}
	if got := c.P2.Distance(c.P3); math.Abs(got-r*kappa) > 1e-9 {
		t.Errorf("second control offset = %.12f, want %.12f", got, r*kappa)
	}

	// The cubic passes through the arc midpoint at 45 degrees.
	mid := c.Eval(0.5)
	wantMid := Pt(r*math.Cos(math.Pi/4), r*math.Sin(math.Pi/4))
	if !pointNear(mid, wantMid, 1e-9) {
		t.Errorf("Eval(0.5) = %v, want %v", mid, wantMid)
	}
}

func TestArcSplitting(t *testing.T) {
	tests := []struct {
		name  string
		start Point
		arc   ArcTo
		want  int
	}{
		{
			"90 degrees, one segment",
			Pt(10, 0),
			ArcTo{Rx: 10, Ry: 10, Sweep: true, P: Pt(0, 10)},
			1,
		},
		{
			"180 degrees, two segments",
			Pt(10, 0),
			ArcTo{Rx: 10, Ry: 10, Sweep: true, P: Pt(-10, 0)},
			2,
		},
		{
			"270 degrees, three segments",
			Pt(10, 0),
			ArcTo{Rx: 10, Ry: 10, LargeArc: true, P: Pt(0, 10)},
			3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			curves, err := ArcToBeziers(tt.start, tt.arc)
			if err != nil {
				t.Fatalf("ArcToBeziers() error = %v", err)
			}
			if len(curves) != tt.want {
				t.Errorf("got %d curves, want %d", len(curves), tt.want)
			}
		})
	}
}

func TestArcEndpointsExact(t *testing.T) {
	start := Pt(3.25, -7.5)
	arc := ArcTo{Rx: 12, Ry: 8, Rotation: 30, LargeArc: true, Sweep: true, P: Pt(-4.75, 2.125)}
	curves, err := ArcToBeziers(start, arc)
	if err != nil {
		t.Fatalf("ArcToBeziers() error = %v", err)
	}
	if curves[0].P0 != start {
		t.Errorf("first P0 = %v, want exact start %v", curves[0].P0, start)
	}
	if last := curves[len(curves)-1]; last.P3 != arc.P {
		t.Errorf("last P3 = %v, want exact end %v", last.P3, arc.P)
	}
	// Adjacent curves share their junction point.
	for i := 1; i < len(curves); i++ {
		if !pointNear(curves[i].P0, curves[i-1].P3, 1e-12) {
			t.Errorf("junction %d: %v != %v", i, curves[i].P0, curves[i-1].P3)
		}
	}
}

func TestArcRadiusScaling(t *testing.T) {
	// Radii too small to span the endpoints are scaled up uniformly, so the
	// conversion still reaches both endpoints.
	curves, err := ArcToBeziers(Pt(0, 0), ArcTo{Rx: 1, Ry: 1, Sweep: true, P: Pt(100, 0)})
	if err != nil {
		t.Fatalf("ArcToBeziers() error = %v", err)
	}
	last := curves[len(curves)-1]
	if last.P3 != Pt(100, 0) {
		t.Errorf("scaled arc ends at %v, want (100,0)", last.P3)
	}
}

func TestArcDegenerate(t *testing.T) {
	curves, err := ArcToBeziers(Pt(5, 5), ArcTo{Rx: 10, Ry: 10, P: Pt(5, 5)})
	if err != nil {
		t.Fatalf("coincident endpoints: error = %v", err)
	}
	if curves != nil {
		t.Errorf("coincident endpoints: got %d curves, want none", len(curves))
	}

	_, err = ArcToBeziers(Pt(0, 0), ArcTo{Rx: 0, Ry: 10, P: Pt(10, 0)})
	if !errors.Is(err, ErrArcConversion) {
		t.Errorf("zero radius: error = %v, want ErrArcConversion", err)
	}
	_, err = ArcToBeziers(Pt(0, 0), ArcTo{Rx: 10, Ry: -1, P: Pt(10, 0)})
	if !errors.Is(err, ErrArcConversion) {
		t.Errorf("negative radius: error = %v, want ErrArcConversion", err)
	}
}

func TestArcStaysNearCircle(t *testing.T) {
	// Every sample of the approximation of a circular arc stays within a
	// tight band around the true radius.
	const r = 10.0
	curves, err := ArcToBeziers(Pt(r, 0), ArcTo{Rx: r, Ry: r, Sweep: true, P: Pt(-r, 0)})
	if err != nil {
		t.Fatalf("ArcToBeziers() error = %v", err)
	}
	for _, c := range curves {
		for i := 0; i <= 16; i++ {
			p := c.Eval(float64(i) / 16)
			if d := math.Abs(p.Length() - r); d > r*3e-4 {
				t.Fatalf("sample %v deviates %.2e from radius", p, d)
			}
		}
	}
}
