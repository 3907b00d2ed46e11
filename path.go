package ringviz

import (
	"fmt"
	"strings"
)

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// ArcTo draws a circular arc from the current point to Point, with the
// SVG large-arc and sweep flag semantics.
type ArcTo struct {
	Radius   float64
	LargeArc bool
	Sweep    bool
	Point    Point
}

func (ArcTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path is an ordered sequence of path elements describing one drawable
// boundary.
type Path struct {
	elements []PathElement
	start    Point
	current  Point
	closed   bool
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{elements: make([]PathElement, 0, 8)}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(pt Point) {
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(pt Point) {
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// ArcTo draws a circular arc of the given radius to a point.
func (p *Path) ArcTo(radius float64, largeArc, sweep bool, pt Point) {
	p.elements = append(p.elements, ArcTo{Radius: radius, LargeArc: largeArc, Sweep: sweep, Point: pt})
	p.current = pt
}

// Close closes the current subpath back to its starting point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
	p.closed = true
}

// Elements returns the path elements in order.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Closed reports whether the path has been closed.
func (p *Path) Closed() bool { return p.closed }

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point { return p.current }

// String renders the path in SVG path-data form, mainly for debugging.
func (p *Path) String() string {
	var sb strings.Builder
	for i, elem := range p.elements {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch e := elem.(type) {
		case MoveTo:
			fmt.Fprintf(&sb, "M %g %g", e.Point.X, e.Point.Y)
		case LineTo:
			fmt.Fprintf(&sb, "L %g %g", e.Point.X, e.Point.Y)
		case ArcTo:
			fmt.Fprintf(&sb, "A %g %g 0 %d %d %g %g",
				e.Radius, e.Radius, boolFlag(e.LargeArc), boolFlag(e.Sweep), e.Point.X, e.Point.Y)
		case Close:
			sb.WriteByte('Z')
		}
	}
	return sb.String()
}

func boolFlag(b bool) int {
	if b {
		return 1
	}
	return 0
}
