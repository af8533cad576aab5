package hyperbolic

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// CirclePencil is the one-parameter family of generalized circles spanned by
// two generators.
type CirclePencil struct {
	C1 GeneralizedCircle
	C2 GeneralizedCircle
}

// NewCirclePencil returns the pencil spanned by c1 and c2.
func NewCirclePencil(c1, c2 GeneralizedCircle) CirclePencil {
	return CirclePencil{C1: c1, C2: c2}
}

func (p CirclePencil) String() string {
	return fmt.Sprintf("pencil through %s and %s", p.C1, p.C2)
}

// OrthogonalPencil returns the pencil of all generalized circles orthogonal to
// both generators of p.
func (p CirclePencil) OrthogonalPencil() (CirclePencil, error) {
	basis, err := orthogonalComplement(2, p.C1, p.C2)
	if err != nil {
		return CirclePencil{}, fmt.Errorf("orthogonal pencil of %s: %w", p, err)
	}
	d1, err := newCircle(basis[0])
	if err != nil {
		return CirclePencil{}, err
	}
	d2, err := newCircle(basis[1])
	if err != nil {
		return CirclePencil{}, err
	}
	return CirclePencil{C1: d1, C2: d2}, nil
}

// orthogonalComplement returns a basis of the coefficient vectors v with
// u·Q·vᵗ = 0 for every given circle u. It fails with [ErrNoUniqueSolution]
// unless the basis has exactly dim elements.
func orthogonalComplement(dim int, cs ...GeneralizedCircle) ([][4]float64, error) {
	a := mat.NewDense(len(cs), 4, nil)
	for i, c := range cs {
		row := qTimes(c.coeffs)
		a.SetRow(i, row[:])
	}
	basis, err := nullSpace(a)
	if err != nil {
		return nil, err
	}
	if len(basis) != dim {
		return nil, fmt.Errorf("%w: null space has dimension %d, want %d", ErrNoUniqueSolution, len(basis), dim)
	}
	return basis, nil
}

// nullSpace returns an orthonormal basis of the null space of a, which must
// have four columns.
func nullSpace(a *mat.Dense) ([][4]float64, error) {
	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDFull) {
		return nil, fmt.Errorf("%w: singular value decomposition did not converge", ErrNumericalInstability)
	}
	var v mat.Dense
	svd.VTo(&v)
	_, n := v.Dims()
	r := rank(svd.Values(nil))
	basis := make([][4]float64, 0, n-r)
	for j := r; j < n; j++ {
		var b [4]float64
		for i := range b {
			b[i] = v.At(i, j)
		}
		basis = append(basis, b)
	}
	return basis, nil
}

// rank counts the singular values, given in descending order, that are not
// negligible relative to the largest one.
func rank(values []float64) int {
	if len(values) == 0 || values[0] == 0 {
		return 0
	}
	tol := Epsilon * values[0]
	var r int
	for _, s := range values {
		if s > tol {
			r++
		}
	}
	return r
}
