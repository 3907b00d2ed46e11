package ringviz

import "math"

// Point represents a 2D point or vector in the image coordinate frame.
// The frame's origin is fixed by the surrounding layout, not by this
// package.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// PolarPoint converts an angle in degrees and a radius to a Cartesian
// point. Angle 0 points along the positive X axis and angles increase
// toward the positive Y axis; callers own any rotation offset.
func PolarPoint(angleDeg, radius float64) Point {
	rad := angleDeg * math.Pi / 180
	return Point{X: radius * math.Cos(rad), Y: radius * math.Sin(rad)}
}
