package hyperbolic

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Epsilon is the tolerance used for all approximate comparisons and degeneracy
// checks.
const Epsilon = 1e-6

// displayScale rounds values to three decimals in String methods.
const displayScale = 1e3

// q is the bilinear form underlying orthogonality, radii and reflections.
var q = [4][4]float64{
	{0, 0, 0, -1},
	{0, 0.5, 0, 0},
	{0, 0, 0.5, 0},
	{-1, 0, 0, 0},
}

// GeneralizedCircle is a circle, line or point, represented by the
// coefficients (a, bx, by, c) of a(x² + y²) + bx·x + by·y + c = 0.
//
// The zero value is not a valid generalized circle. Use
// [NewGeneralizedCircle] or [Point.Circle] to construct one.
type GeneralizedCircle struct {
	coeffs [4]float64
}

// NewGeneralizedCircle returns the generalized circle with the given
// coefficients. Unless a is within [Epsilon] of zero, the coefficients are
// divided by a.
func NewGeneralizedCircle(a, bx, by, c float64) (GeneralizedCircle, error) {
	return newCircle([4]float64{a, bx, by, c})
}

func newCircle(v [4]float64) (GeneralizedCircle, error) {
	degenerate := true
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return GeneralizedCircle{}, fmt.Errorf("%w: coefficients %v", ErrNumericalInstability, v)
		}
		if math.Abs(x) > Epsilon {
			degenerate = false
		}
	}
	if degenerate {
		return GeneralizedCircle{}, ErrDegenerateInput
	}
	if math.Abs(v[0]) > Epsilon {
		a := v[0]
		for i := range v {
			v[i] /= a
		}
	}
	return GeneralizedCircle{coeffs: v}, nil
}

// Absolute returns the boundary of the disk model, the unit circle centered on
// the origin.
func Absolute() GeneralizedCircle {
	return Point{}.Circle(1)
}

// Coefficients returns the coefficients (a, bx, by, c).
func (c GeneralizedCircle) Coefficients() [4]float64 {
	return c.coeffs
}

func (c GeneralizedCircle) String() string {
	return fmt.Sprintf("{%s(x²+y²) + %s·x + %s·y + %s = 0}",
		formatFloat(c.coeffs[0]), formatFloat(c.coeffs[1]), formatFloat(c.coeffs[2]), formatFloat(c.coeffs[3]))
}

// Pair evaluates the bilinear form u·Q·vᵗ on the coefficients of c and o.
//
// Pair is zero when the two circles are orthogonal, or when o is a
// point-circle lying on c. The self-pairing of a circle is twice its squared
// radius.
func (c GeneralizedCircle) Pair(o GeneralizedCircle) float64 {
	return pair(c.coeffs, o.coeffs)
}

func pair(u, v [4]float64) float64 {
	var s float64
	for i := range 4 {
		for j := range 4 {
			s += u[i] * q[i][j] * v[j]
		}
	}
	return s
}

// qTimes returns Q·v.
func qTimes(v [4]float64) [4]float64 {
	var out [4]float64
	for i := range 4 {
		for j := range 4 {
			out[i] += q[i][j] * v[j]
		}
	}
	return out
}

// Equal reports whether c and o describe the same generalized circle, that is,
// whether their coefficient vectors are proportional.
func (c GeneralizedCircle) Equal(o GeneralizedCircle) bool {
	m := mat.NewDense(2, 4, nil)
	m.SetRow(0, c.coeffs[:])
	m.SetRow(1, o.coeffs[:])
	var svd mat.SVD
	if !svd.Factorize(m, mat.SVDNone) {
		return false
	}
	return rank(svd.Values(nil)) == 1
}

// IsPoint reports whether c is a point-circle, a circle of radius zero.
func (c GeneralizedCircle) IsPoint() bool {
	return math.Abs(c.Pair(c)) <= Epsilon
}

// IsLine reports whether c is a line.
func (c GeneralizedCircle) IsLine() bool {
	return math.Abs(c.coeffs[0]) <= Epsilon
}

// Center returns the center of the circle.
func (c GeneralizedCircle) Center() (Point, error) {
	if c.IsLine() {
		return Point{}, fmt.Errorf("center of %s: %w", c, ErrUndefinedForLine)
	}
	a := c.coeffs[0]
	return Point{
		X: -c.coeffs[1] / (2 * a),
		Y: -c.coeffs[2] / (2 * a),
	}, nil
}

// Radius returns the radius of the circle.
func (c GeneralizedCircle) Radius() (float64, error) {
	if c.IsLine() {
		return 0, fmt.Errorf("radius of %s: %w", c, ErrUndefinedForLine)
	}
	r2 := c.Pair(c) / (2 * c.coeffs[0])
	if r2 < 0 {
		if r2 < -Epsilon {
			return 0, fmt.Errorf("radius of %s: %w", c, ErrNumericalInstability)
		}
		// Rounding noise on a point-circle.
		r2 = 0
	}
	return math.Sqrt(r2), nil
}

// Contains reports whether pt satisfies the implicit equation of c within
// [Epsilon], relative to the size of the coefficients.
func (c GeneralizedCircle) Contains(pt Point) bool {
	a, bx, by, k := c.coeffs[0], c.coeffs[1], c.coeffs[2], c.coeffs[3]
	v := a*(pt.X*pt.X+pt.Y*pt.Y) + bx*pt.X + by*pt.Y + k
	norm := math.Sqrt(a*a + bx*bx + by*by + k*k)
	return math.Abs(v) <= Epsilon*max(norm, 1)
}

// ReflectionMatrix returns the involution I − 2·(u·uᵗ·Q)/(u·Q·uᵗ) that
// reflects across c. For circles this is inversion, for lines it is ordinary
// reflection.
func (c GeneralizedCircle) ReflectionMatrix() (Isometry, error) {
	if c.IsPoint() {
		return Isometry{}, fmt.Errorf("reflect across %s: %w", c, ErrZeroRadiusCircle)
	}
	u := c.coeffs
	qu := qTimes(u)
	norm := c.Pair(c)
	m := IdentityIsometry
	for i := range 4 {
		for j := range 4 {
			m[i][j] -= 2 * u[i] * qu[j] / norm
		}
	}
	return m, nil
}

// ReflectCircle reflects o across c.
func (c GeneralizedCircle) ReflectCircle(o GeneralizedCircle) (GeneralizedCircle, error) {
	m, err := c.ReflectionMatrix()
	if err != nil {
		return GeneralizedCircle{}, err
	}
	return m.ApplyCircle(o)
}

// ReflectPoint reflects pt across c.
func (c GeneralizedCircle) ReflectPoint(pt Point) (Point, error) {
	img, err := c.ReflectCircle(pt.Circle(0))
	if err != nil {
		return Point{}, err
	}
	return img.Center()
}
