package ringviz

// Op is one primitive draw call produced for the output-writer
// collaborator. Every op carries a fully composed Style; wedge ops also
// carry the boundary path.
//
// This is a sealed interface - only types in this package implement it.
type Op interface {
	opMarker()
}

// LineOp draws a straight line segment.
type LineOp struct {
	From, To Point
	Style    Style
}

func (LineOp) opMarker() {}

// CircleOp draws a full circle.
type CircleOp struct {
	Center Point
	Radius float64
	Style  Style
}

func (CircleOp) opMarker() {}

// PolygonOp draws a closed polygon through the given points.
type PolygonOp struct {
	Points []Point
	Style  Style
}

func (PolygonOp) opMarker() {}

// WedgeOp draws an annular wedge described by its boundary path.
type WedgeOp struct {
	Path  *Path
	Style Style
}

func (WedgeOp) opMarker() {}

// TextOp draws a text run anchored at a point, rotated by Angle degrees.
// Font selection and metrics belong to the output collaborator.
type TextOp struct {
	At    Point
	Angle float64
	Text  string
	Style Style
}

func (TextOp) opMarker() {}

// DrawList accumulates the draw calls of one render pass in layout order.
type DrawList struct {
	ops []Op
}

// Append adds ops to the list.
func (d *DrawList) Append(ops ...Op) {
	d.ops = append(d.ops, ops...)
}

// Wedge builds the boundary path for spec and appends a WedgeOp.
func (d *DrawList) Wedge(spec WedgeSpec, style Style) error {
	p, err := Wedge(spec)
	if err != nil {
		return err
	}
	d.Append(WedgeOp{Path: p, Style: style})
	return nil
}

// Ops returns the accumulated draw calls in order.
func (d *DrawList) Ops() []Op {
	return d.ops
}

// Len returns the number of accumulated draw calls.
func (d *DrawList) Len() int { return len(d.ops) }
