package hyperbolic

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, got Point, want Point, epsilon float64) {
	t.Helper()
	if d := got.DistanceSquared(want); d > epsilon*epsilon {
		t.Fatalf("got %v, expected %v", got, want)
	}
}

func mustTransform(t *testing.T, p Point, m Isometry) Point {
	t.Helper()
	tp, err := p.Transform(m)
	if err != nil {
		t.Fatalf("transforming %v: %s", p, err)
	}
	return tp
}
