package qexml

import (
	"fmt"
	"math"

	"github.com/tsawler/espresso/model"
	"github.com/tsawler/espresso/units"
	"github.com/tsawler/espresso/xmldoc"
)

// bandData carries the band-structure quantities to the orchestrator.
// kpoints are fractional, energies in eV.
type bandData struct {
	kpoints []model.KPoint
	bands   model.BandEnergies
	fermi   float64
}

// extractBandStructure reads the band-structure subtree: counts and
// flags, the Fermi level, and one block per k-point. The spin branch
// is decided exactly once, from lsda && !spinorbit; the returned
// BandEnergies variant carries that decision onward.
//
// k-points are stored Cartesian in atomic inverse-length units: after
// the read loop they are scaled by 2π/alat and then taken to
// fractional coordinates through the inverse of the already-scaled
// reciprocal matrix. Eigenvalues convert to eV last.
func extractBandStructure(root *xmldoc.Element, alat float64, recip model.Matrix3) (*bandData, error) {
	const base = "output/band_structure"

	bs, err := find(root, base, base)
	if err != nil {
		return nil, err
	}

	nks, err := intChild(bs, "nks", base+"/nks")
	if err != nil {
		return nil, err
	}
	if nks <= 0 {
		return nil, fmt.Errorf("%s/nks: %d: %w", base, nks, ErrMalformed)
	}
	lsda, err := boolChild(bs, "lsda", base+"/lsda")
	if err != nil {
		return nil, err
	}
	spinorbit, err := boolChild(bs, "spinorbit", base+"/spinorbit")
	if err != nil {
		return nil, err
	}
	fermi, err := floatChild(bs, "fermi_energy", base+"/fermi_energy")
	if err != nil {
		return nil, err
	}
	fermi *= units.HartreeToEV

	polarized := lsda && !spinorbit

	var nbnd int
	var up, down, values [][]float64
	if polarized {
		nbndUp, err := intChild(bs, "nbnd_up", base+"/nbnd_up")
		if err != nil {
			return nil, err
		}
		nbndDw, err := intChild(bs, "nbnd_dw", base+"/nbnd_dw")
		if err != nil {
			return nil, err
		}
		if nbndUp != nbndDw {
			return nil, fmt.Errorf("%s: nbnd_up %d != nbnd_dw %d: %w",
				base, nbndUp, nbndDw, ErrInvariant)
		}
		nbnd = nbndUp
		up = newGrid(nbnd, nks)
		down = newGrid(nbnd, nks)
	} else {
		nbnd, err = intChild(bs, "nbnd", base+"/nbnd")
		if err != nil {
			return nil, err
		}
		values = newGrid(nbnd, nks)
	}

	blocks := bs.FindAll("ks_energies")
	if len(blocks) != nks {
		return nil, fmt.Errorf("%s: declared %d k-points, found %d ks_energies blocks: %w",
			base, nks, len(blocks), ErrMalformed)
	}

	// Document order defines the k-point index.
	cart := make([]model.Vec3, nks)
	for i, block := range blocks {
		loc := fmt.Sprintf("%s/ks_energies[%d]", base, i+1)

		kEl, err := find(block, "k_point", loc+"/k_point")
		if err != nil {
			return nil, err
		}
		kv, err := vector(kEl, loc+"/k_point")
		if err != nil {
			return nil, err
		}
		cart[i] = kv

		eEl, err := find(block, "eigenvalues", loc+"/eigenvalues")
		if err != nil {
			return nil, err
		}
		evs, err := floats(eEl, loc+"/eigenvalues")
		if err != nil {
			return nil, err
		}

		if polarized {
			if len(evs) != 2*nbnd {
				return nil, fmt.Errorf("%s/eigenvalues: expected %d values, found %d: %w",
					loc, 2*nbnd, len(evs), ErrMalformed)
			}
			for b := 0; b < nbnd; b++ {
				up[b][i] = evs[b]
				down[b][i] = evs[nbnd+b]
			}
		} else {
			if len(evs) != nbnd {
				return nil, fmt.Errorf("%s/eigenvalues: expected %d values, found %d: %w",
					loc, nbnd, len(evs), ErrMalformed)
			}
			for b := 0; b < nbnd; b++ {
				values[b][i] = evs[b]
			}
		}
	}

	// Scale to Å⁻¹ first, then change basis: the scale factor is not
	// separable from the raw reciprocal vectors, so the inverse is
	// taken of the already-scaled matrix.
	inverse, err := recip.Inverse()
	if err != nil {
		return nil, fmt.Errorf("output/basis_set/reciprocal_lattice: singular: %w", ErrInvariant)
	}
	scale := 2 * math.Pi / alat
	kpoints := make([]model.KPoint, nks)
	for i, c := range cart {
		kpoints[i] = model.KPoint(inverse.MulVec(c.Scale(scale)))
	}

	var bands model.BandEnergies
	if polarized {
		scaleGrid(up, units.HartreeToEV)
		scaleGrid(down, units.HartreeToEV)
		bands = model.PolarizedBands{Up: up, Down: down}
	} else {
		scaleGrid(values, units.HartreeToEV)
		bands = model.UnpolarizedBands{Values: values}
	}

	return &bandData{kpoints: kpoints, bands: bands, fermi: fermi}, nil
}

func newGrid(bands, kpoints int) [][]float64 {
	grid := make([][]float64, bands)
	for i := range grid {
		grid[i] = make([]float64, kpoints)
	}
	return grid
}

func scaleGrid(grid [][]float64, s float64) {
	for _, row := range grid {
		for i := range row {
			row[i] *= s
		}
	}
}
