package qexml

import (
	"math"

	"github.com/tsawler/espresso/model"
	"github.com/tsawler/espresso/xmldoc"
)

// extractReciprocal reads the three reciprocal basis vectors and
// scales them into Å⁻¹ with 2π/alat, alat already in Å. The matrix is
// taken from the document as written; it is never derived from the
// direct lattice, whose inverse-transpose need not be numerically
// identical.
func extractReciprocal(root *xmldoc.Element, alat float64) (model.Matrix3, error) {
	const base = "output/basis_set/reciprocal_lattice"

	rl, err := find(root, base, base)
	if err != nil {
		return model.Matrix3{}, err
	}

	var recip model.Matrix3
	for i, name := range [3]string{"b1", "b2", "b3"} {
		loc := base + "/" + name
		el, err := find(rl, name, loc)
		if err != nil {
			return model.Matrix3{}, err
		}
		v, err := vector(el, loc)
		if err != nil {
			return model.Matrix3{}, err
		}
		recip.SetCol(i, v)
	}

	return recip.Scale(2 * math.Pi / alat), nil
}
