package hyperbolic

import (
	"fmt"
	"math"
)

// Point is a point of the plane, normally inside the unit disk.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%s, %s)", formatFloat(pt.X), formatFloat(pt.Y))
}

// Equal reports whether both coordinates of pt and o differ by at most
// [Epsilon].
func (pt Point) Equal(o Point) bool {
	return math.Abs(pt.X-o.X) <= Epsilon && math.Abs(pt.Y-o.Y) <= Epsilon
}

// Hypot returns the euclidean distance of pt from the origin.
func (pt Point) Hypot() float64 {
	return math.Hypot(pt.X, pt.Y)
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return x*x + y*y
}

// Circle returns the generalized circle (x−x₀)² + (y−y₀)² = r² centered on pt.
// With r = 0 this is the point-circle of pt.
func (pt Point) Circle(r float64) GeneralizedCircle {
	// The leading coefficient is 1, so this can never be degenerate.
	return GeneralizedCircle{coeffs: [4]float64{
		1,
		-2 * pt.X,
		-2 * pt.Y,
		pt.X*pt.X + pt.Y*pt.Y - r*r,
	}}
}

// Transform applies an isometry to pt by transforming its point-circle and
// taking the center of the image.
func (pt Point) Transform(m Isometry) (Point, error) {
	c, err := m.ApplyCircle(pt.Circle(0))
	if err != nil {
		return Point{}, err
	}
	return c.Center()
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}

// InsideDisk reports whether pt lies strictly inside the unit disk. Points
// with NaN coordinates are outside.
func (pt Point) InsideDisk() bool {
	return !pt.IsNaN() && pt.Hypot() < 1
}

func formatFloat(f float64) string {
	r := math.Round(f*displayScale) / displayScale
	if r == 0 {
		// Avoid printing -0.
		r = 0
	}
	return fmt.Sprintf("%g", r)
}
