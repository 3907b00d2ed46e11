package ringviz

import (
	"fmt"
	"math"
)

// Angular thresholds for degenerate-arc handling. A span beyond
// fullCircleSpan (or a zero span at equal radii) would produce an SVG arc
// whose start and end coincide, which is mathematically ill-defined; the
// end angle is perturbed by arcPerturbDeg instead.
const (
	fullCircleSpan = 359.99
	arcPerturbDeg  = 0.01
)

// WedgeSpec describes an annular wedge: two angles in degrees (any real,
// order not pre-normalized; wrap-around beyond 360° is permitted), one
// outer radius, and either one inner radius or a pair of distinct inner
// radii for an asymmetric inner edge. Use NewWedge or NewAsymmetricWedge.
type WedgeSpec struct {
	StartAngle  float64
	EndAngle    float64
	OuterRadius float64

	// InnerRadius applies at the start angle; InnerRadiusEnd at the end
	// angle. They are equal for a symmetric wedge.
	InnerRadius    float64
	InnerRadiusEnd float64
}

// NewWedge describes a symmetric annular wedge.
func NewWedge(startAngle, endAngle, innerRadius, outerRadius float64) WedgeSpec {
	return WedgeSpec{
		StartAngle:     startAngle,
		EndAngle:       endAngle,
		InnerRadius:    innerRadius,
		InnerRadiusEnd: innerRadius,
		OuterRadius:    outerRadius,
	}
}

// NewAsymmetricWedge describes a wedge whose inner edge sits at different
// radii at the start and end angles. The inner edge is drawn as a
// straight chord between the two inner endpoints.
func NewAsymmetricWedge(startAngle, endAngle, innerStart, innerEnd, outerRadius float64) WedgeSpec {
	return WedgeSpec{
		StartAngle:     startAngle,
		EndAngle:       endAngle,
		InnerRadius:    innerStart,
		InnerRadiusEnd: innerEnd,
		OuterRadius:    outerRadius,
	}
}

// Wedge computes the boundary path of an annular wedge. The shape is
// keyed by the angle/radius relationships:
//
//   - inner == outer: a bare arc stroke at that radius (no fill is
//     meaningful, so the path stays open). Full-circle or zero spans are
//     perturbed to keep the arc well-defined.
//   - start == end with differing radii: a straight radial line segment.
//   - general symmetric wedge: outer arc, line to the inner edge, inner
//     arc back with the opposite sweep, closed.
//   - general asymmetric wedge: outer arc, then two straight lines
//     through the inner endpoints (no inner arc), closed.
//
// The large-arc flag is set when the angular span exceeds 180°; the sweep
// flag follows the direction from start to end angle.
func Wedge(spec WedgeSpec) (*Path, error) {
	if err := validateWedge(spec); err != nil {
		return nil, err
	}

	start, end := spec.StartAngle, spec.EndAngle
	outer := spec.OuterRadius
	innerStart, innerEnd := spec.InnerRadius, spec.InnerRadiusEnd

	p := NewPath()

	// Degenerate radius: a bare arc stroke.
	if innerStart == outer && innerEnd == outer {
		if span(start, end) > fullCircleSpan || start == end {
			end -= arcPerturbDeg
		}
		p.MoveTo(PolarPoint(start, outer))
		p.ArcTo(outer, span(start, end) > 180, end > start, PolarPoint(end, outer))
		return p, nil
	}

	// Degenerate angle: a straight radial segment.
	if start == end {
		p.MoveTo(PolarPoint(start, innerStart))
		p.LineTo(PolarPoint(end, outer))
		return p, nil
	}

	if span(start, end) > fullCircleSpan {
		end -= arcPerturbDeg
	}
	largeArc := span(start, end) > 180
	sweep := end > start

	p.MoveTo(PolarPoint(start, outer))
	p.ArcTo(outer, largeArc, sweep, PolarPoint(end, outer))
	p.LineTo(PolarPoint(end, innerEnd))
	if innerStart == innerEnd {
		p.ArcTo(innerStart, largeArc, !sweep, PolarPoint(start, innerStart))
	} else {
		p.LineTo(PolarPoint(start, innerStart))
	}
	p.Close()
	return p, nil
}

// span returns the absolute angular span in degrees.
func span(start, end float64) float64 {
	return math.Abs(end - start)
}

func validateWedge(spec WedgeSpec) error {
	for _, v := range []float64{spec.StartAngle, spec.EndAngle, spec.OuterRadius, spec.InnerRadius, spec.InnerRadiusEnd} {
		if !IsFinite(v) {
			return fmt.Errorf("ringviz: non-finite wedge parameter in %+v", spec)
		}
	}
	if spec.OuterRadius < 0 || spec.InnerRadius < 0 || spec.InnerRadiusEnd < 0 {
		return fmt.Errorf("ringviz: negative wedge radius in %+v", spec)
	}
	return nil
}
