package ringviz

import (
	"math"
	"testing"
)

func TestPointOps(t *testing.T) {
	p := Pt(3, 4)
	if p.Length() != 5 {
		t.Errorf("Length() = %v, want 5", p.Length())
	}
	if p.Add(Pt(1, 1)) != Pt(4, 5) {
		t.Error("Add failed")
	}
	if p.Sub(Pt(3, 4)) != Pt(0, 0) {
		t.Error("Sub failed")
	}
	if d := Pt(0, 0).Distance(Pt(0, 7)); d != 7 {
		t.Errorf("Distance = %v, want 7", d)
	}
}

func TestPolarPoint(t *testing.T) {
	tests := []struct {
		name     string
		angle, r float64
		want     Point
	}{
		{"east", 0, 100, Pt(100, 0)},
		{"north", 90, 100, Pt(0, 100)},
		{"west", 180, 100, Pt(-100, 0)},
		{"wrap-around", 450, 100, Pt(0, 100)},
		{"zero radius", 123, 0, Pt(0, 0)},
	}
	const tol = 1e-9
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PolarPoint(tt.angle, tt.r)
			if math.Abs(got.X-tt.want.X) > tol || math.Abs(got.Y-tt.want.Y) > tol {
				t.Errorf("PolarPoint(%v, %v) = %v, want %v", tt.angle, tt.r, got, tt.want)
			}
		})
	}
}
