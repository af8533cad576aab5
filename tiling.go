package hyperbolic

import (
	"fmt"
	"iter"
)

// DefaultDepth is the number of side-pairing isometries composed per starting
// edge by [Generate].
const DefaultDepth = 6

// Pairing identifies each edge of an octagon with a partner edge.
type Pairing [8]int

// DefaultPairing pairs edge 0 with 2, 1 with 3, 4 with 6 and 5 with 7.
var DefaultPairing = Pairing{2, 3, 0, 1, 6, 7, 4, 5}

// Next returns the edge visited after edge j when walking around a vertex: the
// edge preceding j's partner.
func (p Pairing) Next(j int) int {
	return mod8(p[mod8(j)] - 1)
}

// Validate checks that p is an involution without fixed points and that
// following [Pairing.Next] visits all eight edges in a single cycle, so that
// all vertices of the octagon meet at one point of the tiling.
func (p Pairing) Validate() error {
	for j, k := range p {
		if k < 0 || k > 7 {
			return fmt.Errorf("%w: edge %d paired with %d", ErrInvalidPairing, j, k)
		}
		if k == j || p[k] != j {
			return fmt.Errorf("%w: pairing of edge %d is not an involution", ErrInvalidPairing, j)
		}
	}
	j := 0
	for n := 1; n <= 8; n++ {
		j = p.Next(j)
		if j == 0 && n != 8 {
			return fmt.Errorf("%w: vertex cycle has length %d", ErrInvalidPairing, n)
		}
	}
	return nil
}

// SidePairings returns, for every edge j, the isometry that maps edge j onto
// its partner edge with the direction reversed: the start of edge j goes to
// the end of the partner, and the end of edge j to the start of the partner.
func SidePairings(o Octagon, p Pairing) ([8]Isometry, error) {
	var out [8]Isometry
	for j := range out {
		src := o.Edge(j)
		dst := o.Edge(p[j]).Reverse()
		m, err := FindIsometry(src.P0, src.P1, dst.P0, dst.P1)
		if err != nil {
			return out, fmt.Errorf("pairing edge %d with %d: %w", j, p[j], err)
		}
		out[j] = m
	}
	return out, nil
}

// Tiling is the base octagon together with chains of its images under
// composed side pairings.
type Tiling struct {
	Base       Octagon
	Pairing    Pairing
	Isometries [8]Isometry
	// Chains[j] holds the images reached by starting at edge j and composing
	// one more side pairing per element.
	Chains [8][]Octagon
}

// Generate computes the side pairings of base and, for each of the eight
// starting edges, composes depth of them while walking around a vertex,
// recording each intermediate image of base.
func Generate(base Octagon, p Pairing, depth int) (*Tiling, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if depth < 0 {
		return nil, fmt.Errorf("negative depth %d", depth)
	}
	isos, err := SidePairings(base, p)
	if err != nil {
		return nil, err
	}
	t := &Tiling{
		Base:       base,
		Pairing:    p,
		Isometries: isos,
	}
	for j := range t.Chains {
		m := IdentityIsometry
		index := j
		chain := make([]Octagon, 0, depth)
		for k := range depth {
			m = isos[index].Mul(m)
			index = p.Next(index)
			img, err := base.Transform(m)
			if err != nil {
				return nil, fmt.Errorf("chain %d, step %d: %w", j, k, err)
			}
			chain = append(chain, img)
		}
		t.Chains[j] = chain
	}
	return t, nil
}

// Octagons yields the base octagon followed by every image, chain by chain.
func (t *Tiling) Octagons() iter.Seq[Octagon] {
	return func(yield func(Octagon) bool) {
		if !yield(t.Base) {
			return
		}
		for _, chain := range t.Chains {
			for _, o := range chain {
				if !yield(o) {
					return
				}
			}
		}
	}
}

// Edges yields the edges of every octagon of [Tiling.Octagons].
func (t *Tiling) Edges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for o := range t.Octagons() {
			for e := range o.Edges() {
				if !yield(e) {
					return
				}
			}
		}
	}
}

// Len returns the number of octagons, including the base.
func (t *Tiling) Len() int {
	n := 1
	for _, chain := range t.Chains {
		n += len(chain)
	}
	return n
}
