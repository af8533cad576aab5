package hyperbolic

import "fmt"

// Edge is a hyperbolic line segment between two points.
type Edge struct {
	P0 Point
	P1 Point
	// Index is the position of the edge in its octagon, which is used to
	// match edges with their pairing partners and to color them.
	Index int
}

func (e Edge) String() string {
	return fmt.Sprintf("%s–%s", e.P0, e.P1)
}

// Length returns the hyperbolic length of the edge.
func (e Edge) Length() float64 {
	return Distance(e.P0, e.P1)
}

// Geodesic returns the hyperbolic line carrying the edge. Renderers draw a
// straight segment when it [GeneralizedCircle.IsLine], and an arc of its
// circle otherwise.
func (e Edge) Geodesic() (GeneralizedCircle, error) {
	return Geodesic(e.P0, e.P1)
}

// Reverse returns the edge with its endpoints swapped.
func (e Edge) Reverse() Edge {
	e.P0, e.P1 = e.P1, e.P0
	return e
}

// SameEndpoints reports whether e and o join the same two points, in either
// direction.
func (e Edge) SameEndpoints(o Edge) bool {
	return (e.P0.Equal(o.P0) && e.P1.Equal(o.P1)) ||
		(e.P0.Equal(o.P1) && e.P1.Equal(o.P0))
}

func (e Edge) Transform(m Isometry) (Edge, error) {
	p0, err := e.P0.Transform(m)
	if err != nil {
		return Edge{}, err
	}
	p1, err := e.P1.Transform(m)
	if err != nil {
		return Edge{}, err
	}
	return Edge{P0: p0, P1: p1, Index: e.Index}, nil
}
