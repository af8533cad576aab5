package hyperbolic

import (
	"fmt"
	"iter"
	"math"
	"strings"
)

// OctagonCoordinates is the length of the flat coordinate vector of an
// octagon, x and y for each of the eight vertices.
const OctagonCoordinates = 16

// Octagon is a cyclic polygon with eight vertices whose edges are hyperbolic
// line segments. Vertex and edge indices are taken modulo 8.
type Octagon [8]Point

// OctagonFromCoordinates builds an octagon from (x₀, y₀, x₁, y₁, …).
func OctagonFromCoordinates(coords []float64) (Octagon, error) {
	if len(coords) != OctagonCoordinates {
		return Octagon{}, fmt.Errorf("octagon needs %d coordinates, got %d", OctagonCoordinates, len(coords))
	}
	var o Octagon
	for i := range o {
		o[i] = Pt(coords[2*i], coords[2*i+1])
	}
	return o, nil
}

// RegularOctagon returns the regular octagon centered on the origin whose
// interior angles are all π/4, so that eight copies fit around each vertex.
//
// Its circumradius R satisfies cosh R = cot²(π/8), which places the vertices
// at euclidean distance tanh(R/2) = 2^(−1/4) from the origin.
func RegularOctagon() Octagon {
	r := math.Pow(2, -0.25)
	var o Octagon
	for i := range o {
		sin, cos := math.Sincos(float64(i) * math.Pi / 4)
		o[i] = Pt(r*cos, r*sin)
	}
	return o
}

// Coordinates returns the flat coordinate vector of o.
func (o Octagon) Coordinates() []float64 {
	out := make([]float64, 0, OctagonCoordinates)
	for _, p := range o {
		out = append(out, p.X, p.Y)
	}
	return out
}

// Vertex returns the i-th vertex, with i taken modulo 8.
func (o Octagon) Vertex(i int) Point {
	return o[mod8(i)]
}

// Edge returns the edge from vertex i to vertex i+1.
func (o Octagon) Edge(i int) Edge {
	i = mod8(i)
	return Edge{P0: o[i], P1: o.Vertex(i + 1), Index: i}
}

// Edges yields the eight edges in order.
func (o Octagon) Edges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for i := range o {
			if !yield(o.Edge(i)) {
				return
			}
		}
	}
}

// SideLengths returns the hyperbolic length of each edge.
func (o Octagon) SideLengths() [8]float64 {
	var out [8]float64
	for i := range o {
		out[i] = Distance(o[i], o.Vertex(i+1))
	}
	return out
}

// Diagonals returns the hyperbolic distance from each vertex i to vertex i+2.
func (o Octagon) Diagonals() [8]float64 {
	var out [8]float64
	for i := range o {
		out[i] = Distance(o[i], o.Vertex(i+2))
	}
	return out
}

// InteriorAngles returns the interior angle at each vertex, recovered with the
// hyperbolic law of cosines from the two adjacent sides and the diagonal
// across them. The angle at index i belongs to vertex i+1.
//
// Angles are NaN for configurations where the three lengths do not form a
// triangle.
func (o Octagon) InteriorAngles() [8]float64 {
	sides := o.SideLengths()
	diags := o.Diagonals()
	var out [8]float64
	for i := range out {
		a := sides[i]
		b := sides[mod8(i+1)]
		c := diags[i]
		cos := (math.Cosh(a)*math.Cosh(b) - math.Cosh(c)) / (math.Sinh(a) * math.Sinh(b))
		out[i] = math.Acos(cos)
	}
	return out
}

// AngleSum returns the sum of the interior angles.
func (o Octagon) AngleSum() float64 {
	var s float64
	for _, a := range o.InteriorAngles() {
		s += a
	}
	return s
}

// Inside reports whether every vertex lies strictly inside the unit disk.
func (o Octagon) Inside() bool {
	for _, p := range o {
		if !p.InsideDisk() {
			return false
		}
	}
	return true
}

// Transform applies an isometry to every vertex.
func (o Octagon) Transform(m Isometry) (Octagon, error) {
	var out Octagon
	for i, p := range o {
		tp, err := p.Transform(m)
		if err != nil {
			return Octagon{}, fmt.Errorf("vertex %d: %w", i, err)
		}
		out[i] = tp
	}
	return out, nil
}

func (o Octagon) String() string {
	var sb strings.Builder
	sb.WriteString("octagon[")
	for i, p := range o {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteString("]")
	return sb.String()
}

// pairedSides lists the sides i whose length must equal that of side i+2.
var pairedSides = [4]int{0, 1, 4, 5}

// ErrorFunction is the objective minimized by [Descent]: the squared
// differences between paired side lengths plus the squared deviation of the
// angle sum from 2π. It is zero exactly for octagons that tile around each
// vertex under [DefaultPairing].
//
// coords must have [OctagonCoordinates] elements.
func ErrorFunction(coords []float64) float64 {
	o, err := OctagonFromCoordinates(coords)
	if err != nil {
		return math.NaN()
	}
	return o.Error()
}

// Error evaluates [ErrorFunction] on o.
func (o Octagon) Error() float64 {
	sides := o.SideLengths()
	var result float64
	for _, i := range pairedSides {
		d := sides[i] - sides[i+2]
		result += d * d
	}
	d := o.AngleSum() - 2*math.Pi
	return result + d*d
}

func mod8(i int) int {
	return ((i % 8) + 8) % 8
}
