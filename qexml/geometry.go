package qexml

import (
	"fmt"

	"github.com/tsawler/espresso/model"
	"github.com/tsawler/espresso/units"
	"github.com/tsawler/espresso/xmldoc"
)

// structureData carries the geometry quantities to the rest of the
// pipeline. lattice and alat are already in Å.
type structureData struct {
	lattice model.Matrix3
	alat    float64
	sites   []model.AtomSite
}

// extractStructure reads the atomic-structure subtree: scale factor,
// atom count, per-atom positions and labels, and the three lattice
// vectors.
//
// Fractional coordinates are computed in the untransformed Bohr system
// first. They are unit-invariant, so inverting before rescaling keeps
// positions and lattice in one consistent unit system throughout; the
// lattice and scale factor are converted to Å only afterwards.
func extractStructure(root *xmldoc.Element) (*structureData, error) {
	const base = "output/atomic_structure"

	as, err := find(root, base, base)
	if err != nil {
		return nil, err
	}

	alat, err := floatAttr(as, "alat", base)
	if err != nil {
		return nil, err
	}
	nat, err := intAttr(as, "nat", base)
	if err != nil {
		return nil, err
	}
	if nat < 0 {
		return nil, fmt.Errorf("%s@nat: %d: %w", base, nat, ErrMalformed)
	}

	positions, err := find(as, "atomic_positions", base+"/atomic_positions")
	if err != nil {
		return nil, err
	}
	atoms := positions.FindAll("atom")
	if len(atoms) != nat {
		return nil, fmt.Errorf("%s: declared %d atoms, found %d: %w",
			base+"/atomic_positions", nat, len(atoms), ErrMalformed)
	}

	labels := make([]string, nat)
	cart := make([]model.Vec3, nat)
	for i, atom := range atoms {
		loc := fmt.Sprintf("%s/atomic_positions/atom[%d]", base, i+1)
		name, ok := atom.Attr("name")
		if !ok {
			return nil, fmt.Errorf("%s@name: %w", loc, ErrNotFound)
		}
		pos, err := vector(atom, loc)
		if err != nil {
			return nil, err
		}
		labels[i] = name
		cart[i] = pos
	}

	var lattice model.Matrix3
	for i, name := range [3]string{"a1", "a2", "a3"} {
		loc := base + "/cell/" + name
		el, err := find(as, "cell/"+name, loc)
		if err != nil {
			return nil, err
		}
		v, err := vector(el, loc)
		if err != nil {
			return nil, err
		}
		lattice.SetCol(i, v)
	}

	inverse, err := lattice.Inverse()
	if err != nil {
		return nil, fmt.Errorf("%s/cell: singular lattice: %w", base, ErrInvariant)
	}

	sites := make([]model.AtomSite, nat)
	for i := range cart {
		sites[i] = model.AtomSite{
			Label:    labels[i],
			Position: inverse.MulVec(cart[i]),
		}
	}

	return &structureData{
		lattice: lattice.Scale(units.BohrToAngstrom),
		alat:    alat * units.BohrToAngstrom,
		sites:   sites,
	}, nil
}
