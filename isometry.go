package hyperbolic

import (
	"fmt"
	"math"
)

// Isometry is a Möbius transformation of the disk, acting on the coefficient
// vectors of generalized circles by left multiplication.
//
// The convention is that (A.Mul(B)).Apply(v) == A.Apply(B.Apply(v)), so B is
// applied first.
type Isometry [4][4]float64

// IdentityIsometry is the identity transformation.
var IdentityIsometry = Isometry{
	{1, 0, 0, 0},
	{0, 1, 0, 0},
	{0, 0, 1, 0},
	{0, 0, 0, 1},
}

// Mul returns the composition of m and o, with o applied first.
func (m Isometry) Mul(o Isometry) Isometry {
	var out Isometry
	for i := range 4 {
		for j := range 4 {
			var s float64
			for k := range 4 {
				s += m[i][k] * o[k][j]
			}
			out[i][j] = s
		}
	}
	return out
}

// Then returns m followed by o.
//
// Equivalent to "o.Mul(m)"
func (m Isometry) Then(o Isometry) Isometry {
	return o.Mul(m)
}

// Apply multiplies m with the column vector v.
func (m Isometry) Apply(v [4]float64) [4]float64 {
	var out [4]float64
	for i := range 4 {
		for j := range 4 {
			out[i] += m[i][j] * v[j]
		}
	}
	return out
}

// ApplyCircle maps a generalized circle through m.
func (m Isometry) ApplyCircle(c GeneralizedCircle) (GeneralizedCircle, error) {
	return newCircle(m.Apply(c.coeffs))
}

// ApproxEqual reports whether every entry of m and o differs by at most tol.
func (m Isometry) ApproxEqual(o Isometry, tol float64) bool {
	for i := range 4 {
		for j := range 4 {
			if math.Abs(m[i][j]-o[i][j]) > tol {
				return false
			}
		}
	}
	return true
}

func (m Isometry) IsNaN() bool {
	for i := range 4 {
		for j := range 4 {
			if math.IsNaN(m[i][j]) {
				return true
			}
		}
	}
	return false
}

// FindIsometry returns the direct isometry that maps p1 to p2 and q1 to q2.
// The segments (p1, q1) and (p2, q2) must have the same hyperbolic length.
//
// The isometry is built from two reflections. The first, across the
// perpendicular bisector of p1 and p2, takes p1 to p2 and q1 to some q′. The
// second, across the bisector of q′ and q2, fixes p2 and takes q′ to q2.
func FindIsometry(p1, q1, p2, q2 Point) (Isometry, error) {
	d1 := Distance(p1, q1)
	d2 := Distance(p2, q2)
	// Also rejects NaN lengths and two infinite ones.
	if !(math.Abs(d1-d2) <= Epsilon) {
		return Isometry{}, fmt.Errorf("%w: %g and %g", ErrLengthMismatch, d1, d2)
	}
	if p1.Equal(q1) {
		return Isometry{}, fmt.Errorf("segment from %s to %s: %w", p1, q1, ErrCoincidentPoints)
	}

	var first GeneralizedCircle
	var err error
	if p1.Equal(p2) {
		// Any line through p1 will do; the geodesic to q1 keeps q1 in place.
		first, err = Geodesic(p1, q1)
	} else {
		first, err = Bisector(p1, p2)
	}
	if err != nil {
		return Isometry{}, err
	}
	r1, err := first.ReflectionMatrix()
	if err != nil {
		return Isometry{}, err
	}
	qPrime, err := q1.Transform(r1)
	if err != nil {
		return Isometry{}, err
	}

	var second GeneralizedCircle
	if qPrime.Equal(q2) {
		// The first reflection already lines up both ends but reverses
		// orientation; reflecting across the target segment restores it.
		second, err = Geodesic(p2, q2)
	} else {
		second, err = Bisector(qPrime, q2)
	}
	if err != nil {
		return Isometry{}, err
	}
	r2, err := second.ReflectionMatrix()
	if err != nil {
		return Isometry{}, err
	}
	m := r2.Mul(r1)
	if m.IsNaN() {
		return Isometry{}, fmt.Errorf("isometry mapping %s, %s to %s, %s: %w", p1, q1, p2, q2, ErrNumericalInstability)
	}
	return m, nil
}
