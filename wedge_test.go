package ringviz

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWedge_Symmetric(t *testing.T) {
	p, err := Wedge(NewWedge(0, 90, 50, 100))
	if err != nil {
		t.Fatalf("Wedge: %v", err)
	}
	want := []PathElement{
		MoveTo{Point: PolarPoint(0, 100)},
		ArcTo{Radius: 100, LargeArc: false, Sweep: true, Point: PolarPoint(90, 100)},
		LineTo{Point: PolarPoint(90, 50)},
		ArcTo{Radius: 50, LargeArc: false, Sweep: false, Point: PolarPoint(0, 50)},
		Close{},
	}
	if diff := cmp.Diff(want, p.Elements()); diff != "" {
		t.Errorf("path mismatch (-want +got):\n%s", diff)
	}
	if !p.Closed() {
		t.Error("fillable wedge must be closed")
	}
}

func TestWedge_LargeArc(t *testing.T) {
	p, err := Wedge(NewWedge(0, 270, 50, 100))
	if err != nil {
		t.Fatalf("Wedge: %v", err)
	}
	outer := p.Elements()[1].(ArcTo)
	if !outer.LargeArc {
		t.Error("270° span must set the large-arc flag")
	}
	inner := p.Elements()[3].(ArcTo)
	if inner.Sweep == outer.Sweep {
		t.Error("inner arc must sweep opposite to the outer arc")
	}
}

func TestWedge_ReversedAngles(t *testing.T) {
	p, err := Wedge(NewWedge(90, 0, 50, 100))
	if err != nil {
		t.Fatalf("Wedge: %v", err)
	}
	outer := p.Elements()[1].(ArcTo)
	if outer.Sweep {
		t.Error("end < start must clear the sweep flag")
	}
}

func TestWedge_AsymmetricInner(t *testing.T) {
	p, err := Wedge(NewAsymmetricWedge(0, 90, 40, 60, 100))
	if err != nil {
		t.Fatalf("Wedge: %v", err)
	}
	// The inner edge is a straight chord between the two inner endpoints,
	// with no inner arc segment.
	want := []PathElement{
		MoveTo{Point: PolarPoint(0, 100)},
		ArcTo{Radius: 100, LargeArc: false, Sweep: true, Point: PolarPoint(90, 100)},
		LineTo{Point: PolarPoint(90, 60)},
		LineTo{Point: PolarPoint(0, 40)},
		Close{},
	}
	if diff := cmp.Diff(want, p.Elements()); diff != "" {
		t.Errorf("path mismatch (-want +got):\n%s", diff)
	}
}

func TestWedge_DegenerateAngle(t *testing.T) {
	// start == end with differing radii: a straight radial segment, not
	// an arc.
	p, err := Wedge(NewWedge(0, 0, 50, 100))
	if err != nil {
		t.Fatalf("Wedge: %v", err)
	}
	want := []PathElement{
		MoveTo{Point: PolarPoint(0, 50)},
		LineTo{Point: PolarPoint(0, 100)},
	}
	if diff := cmp.Diff(want, p.Elements()); diff != "" {
		t.Errorf("path mismatch (-want +got):\n%s", diff)
	}
}

func TestWedge_DegenerateRadius(t *testing.T) {
	// inner == outer: a bare arc stroke, never closed.
	p, err := Wedge(NewWedge(10, 80, 100, 100))
	if err != nil {
		t.Fatalf("Wedge: %v", err)
	}
	want := []PathElement{
		MoveTo{Point: PolarPoint(10, 100)},
		ArcTo{Radius: 100, LargeArc: false, Sweep: true, Point: PolarPoint(80, 100)},
	}
	if diff := cmp.Diff(want, p.Elements()); diff != "" {
		t.Errorf("path mismatch (-want +got):\n%s", diff)
	}
	if p.Closed() {
		t.Error("arc stroke must stay open")
	}
}

func TestWedge_FullCircle(t *testing.T) {
	// A 360° span would make the arc's start and end coincide; the end
	// angle is perturbed to keep the command well-defined.
	p, err := Wedge(NewWedge(0, 360, 100, 100))
	if err != nil {
		t.Fatalf("Wedge: %v", err)
	}
	arc := p.Elements()[1].(ArcTo)
	if arc.Point == PolarPoint(0, 100) {
		t.Error("full-circle arc endpoint must not coincide with its start")
	}
	if !arc.LargeArc {
		t.Error("full-circle arc must set the large-arc flag")
	}
	wantEnd := PolarPoint(360-arcPerturbDeg, 100)
	if diff := cmp.Diff(wantEnd, arc.Point); diff != "" {
		t.Errorf("endpoint mismatch (-want +got):\n%s", diff)
	}
}

func TestWedge_FullCircleAnnulus(t *testing.T) {
	p, err := Wedge(NewWedge(0, 360, 50, 100))
	if err != nil {
		t.Fatalf("Wedge: %v", err)
	}
	outer := p.Elements()[1].(ArcTo)
	if outer.Point == PolarPoint(0, 100) {
		t.Error("perturbation must also apply to fillable full-circle wedges")
	}
	if !p.Closed() {
		t.Error("annulus must close")
	}
}

func TestWedge_ZeroSpanAtEqualRadii(t *testing.T) {
	// Identical start/end angles at one radius still produce a drawable
	// (perturbed) arc rather than a zero-length command.
	p, err := Wedge(NewWedge(45, 45, 100, 100))
	if err != nil {
		t.Fatalf("Wedge: %v", err)
	}
	arc := p.Elements()[1].(ArcTo)
	if arc.Point == PolarPoint(45, 100) {
		t.Error("zero-span arc endpoint must be perturbed")
	}
}

func TestWedge_WrapAroundInput(t *testing.T) {
	// Angles beyond 360° are legal input.
	p, err := Wedge(NewWedge(350, 400, 50, 100))
	if err != nil {
		t.Fatalf("Wedge: %v", err)
	}
	outer := p.Elements()[1].(ArcTo)
	if outer.LargeArc {
		t.Error("50° span must not set the large-arc flag")
	}
	if !outer.Sweep {
		t.Error("increasing angles must set the sweep flag")
	}
}

func TestWedge_Invalid(t *testing.T) {
	if _, err := Wedge(NewWedge(0, 90, -1, 100)); err == nil {
		t.Error("negative radius must fail")
	}
	bad := NewWedge(0, 90, 50, 100)
	bad.EndAngle = math.NaN()
	if _, err := Wedge(bad); err == nil {
		t.Error("non-finite angle must fail")
	}
}
