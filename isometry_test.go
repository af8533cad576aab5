package hyperbolic

import (
	"errors"
	"math"
	"testing"
)

// mirrors returns a helper that turns the result of a geodesic construction
// into the reflection across it.
func mirrors(t *testing.T) func(GeneralizedCircle, error) Isometry {
	return func(c GeneralizedCircle, err error) Isometry {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
		m, err := c.ReflectionMatrix()
		if err != nil {
			t.Fatal(err)
		}
		return m
	}
}

func TestIsometryMul(t *testing.T) {
	reflect := mirrors(t)
	a := reflect(Geodesic(Pt(0.1, 0.5), Pt(-0.4, 0.2)))
	b := reflect(Bisector(Pt(0.2, -0.3), Pt(-0.1, 0.1)))

	for _, p := range testPoints {
		assertNear(t, mustTransform(t, mustTransform(t, p, b), a), mustTransform(t, p, a.Mul(b)), 1e-9)
		assertNear(t, mustTransform(t, p, a.Then(b)), mustTransform(t, mustTransform(t, p, a), b), 1e-9)
	}
	if !a.Mul(IdentityIsometry).ApproxEqual(a, 0) {
		t.Error("multiplying with the identity changed the isometry")
	}
}

func TestIsometryPreservesDistance(t *testing.T) {
	reflect := mirrors(t)
	m := reflect(Geodesic(Pt(0.3, 0.3), Pt(-0.6, 0.1))).
		Mul(reflect(Bisector(Pt(0, 0), Pt(0.4, -0.2))))
	for i, p := range testPoints {
		for _, q := range testPoints[i+1:] {
			want := Distance(p, q)
			got := Distance(mustTransform(t, p, m), mustTransform(t, q, m))
			if math.Abs(got-want) > 1e-6 {
				t.Errorf("distance between %v and %v changed from %v to %v", p, q, want, got)
			}
		}
	}
}

func TestFindIsometry(t *testing.T) {
	reflect := mirrors(t)
	// A known direct isometry, as the product of two reflections.
	known := reflect(Geodesic(Pt(0.1, 0.5), Pt(-0.4, 0.2))).
		Mul(reflect(Bisector(Pt(0.2, -0.3), Pt(-0.1, 0.1))))

	p1, q1 := Pt(0.15, -0.2), Pt(-0.3, 0.45)
	p2, q2 := mustTransform(t, p1, known), mustTransform(t, q1, known)

	m, err := FindIsometry(p1, q1, p2, q2)
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, mustTransform(t, p1, m), p2, Epsilon)
	assertNear(t, mustTransform(t, q1, m), q2, Epsilon)

	// A direct isometry is determined by one segment, so it agrees with the
	// known one everywhere.
	for _, r := range testPoints {
		assertNear(t, mustTransform(t, r, m), mustTransform(t, r, known), Epsilon)
	}
}

func TestFindIsometryDegenerate(t *testing.T) {
	p, q := Pt(0.2, 0.1), Pt(-0.3, 0.4)

	// Mapping a segment onto itself is the identity.
	m, err := FindIsometry(p, q, p, q)
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range testPoints {
		assertNear(t, mustTransform(t, r, m), r, Epsilon)
	}

	// Reversing a segment that is symmetric about the y axis: the bisector of
	// the starting points already swaps the ends.
	a, b := Pt(0.4, 0.2), Pt(-0.4, 0.2)
	m, err = FindIsometry(a, b, b, a)
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, mustTransform(t, a, m), b, Epsilon)
	assertNear(t, mustTransform(t, b, m), a, Epsilon)
	// The result is a half turn about the midpoint, not the mirror image, so
	// points off the segment's line move to the other side.
	off := Pt(0, 0.5)
	img := mustTransform(t, off, m)
	if img.Y >= 0.2 || math.Abs(img.X) > Epsilon {
		t.Errorf("got %v, expected a point on the y axis below the segment", img)
	}
}

func TestFindIsometryLengthMismatch(t *testing.T) {
	// d(0, (r, 0)) = 2·artanh(r), so r = tanh(d/2).
	p1, q1 := Pt(0, 0), Pt(math.Tanh(0.5), 0)
	p2, q2 := Pt(0, 0), Pt(0, math.Tanh(0.75))
	if d := Distance(p1, q1); math.Abs(d-1) > 1e-12 {
		t.Fatalf("got length %v, want 1", d)
	}
	if _, err := FindIsometry(p1, q1, p2, q2); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("got error %v, want %v", err, ErrLengthMismatch)
	}
}

func TestFindIsometryOutsideDisk(t *testing.T) {
	// Both segments have infinite length, which must not count as equal.
	p1, q1 := Pt(1.5, 0), Pt(0, 1.5)
	p2, q2 := Pt(0, -2), Pt(2, 0)
	if _, err := FindIsometry(p1, q1, p2, q2); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("got error %v, want %v", err, ErrLengthMismatch)
	}
}

func TestFindIsometryZeroLength(t *testing.T) {
	p := Pt(0.3, -0.1)
	if _, err := FindIsometry(p, p, p, p); !errors.Is(err, ErrCoincidentPoints) {
		t.Errorf("got error %v, want %v", err, ErrCoincidentPoints)
	}
	q := Pt(-0.2, 0.4)
	if _, err := FindIsometry(p, p, q, q); !errors.Is(err, ErrCoincidentPoints) {
		t.Errorf("got error %v, want %v", err, ErrCoincidentPoints)
	}
}

func TestIsometryIsNaN(t *testing.T) {
	if IdentityIsometry.IsNaN() {
		t.Error("identity reports NaN")
	}
	m := IdentityIsometry
	m[2][3] = math.NaN()
	if !m.IsNaN() {
		t.Error("NaN entry not reported")
	}
	if !IdentityIsometry.Mul(m).IsNaN() {
		t.Error("NaN doesn't survive composition")
	}
}
