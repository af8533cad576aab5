package hyperbolic

import (
	"fmt"
	"math"
)

// OrthogonalCircle returns the unique generalized circle orthogonal to c1, c2
// and c3. It fails with [ErrNoUniqueSolution] when the inputs are dependent.
func OrthogonalCircle(c1, c2, c3 GeneralizedCircle) (GeneralizedCircle, error) {
	basis, err := orthogonalComplement(1, c1, c2, c3)
	if err != nil {
		return GeneralizedCircle{}, fmt.Errorf("circle orthogonal to %s, %s and %s: %w", c1, c2, c3, err)
	}
	return newCircle(basis[0])
}

// Geodesic returns the hyperbolic line through p1 and p2: the generalized
// circle through both points that meets the absolute at right angles. It is a
// line when p1, p2 and the origin are collinear.
func Geodesic(p1, p2 Point) (GeneralizedCircle, error) {
	return OrthogonalCircle(p1.Circle(0), p2.Circle(0), Absolute())
}

// Bisector returns the hyperbolic perpendicular bisector of p1 and p2.
// Reflecting across it exchanges the two points.
func Bisector(p1, p2 Point) (GeneralizedCircle, error) {
	if p1.Equal(p2) {
		return GeneralizedCircle{}, fmt.Errorf("bisector of %s and %s: %w", p1, p2, ErrCoincidentPoints)
	}
	orth, err := NewCirclePencil(p1.Circle(0), p2.Circle(0)).OrthogonalPencil()
	if err != nil {
		return GeneralizedCircle{}, err
	}
	return OrthogonalCircle(orth.C1, orth.C2, Absolute())
}

// Distance returns the hyperbolic distance between p1 and p2. It is +Inf if
// either point lies on or outside the absolute.
func Distance(p1, p2 Point) float64 {
	origin := Point{}
	s1 := 1 - p1.DistanceSquared(origin)
	s2 := 1 - p2.DistanceSquared(origin)
	if s1 <= 0 || s2 <= 0 {
		return math.Inf(1)
	}
	gamma := 2 * p1.DistanceSquared(p2) / (s1 * s2)
	return math.Acosh(1 + gamma)
}
