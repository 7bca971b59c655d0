package model

// BandEnergies holds the eigenvalue matrices of a band structure. It
// is a closed variant: exactly one of the concrete types below is
// produced per extraction, selected once from the spin-polarization
// and spin-orbit flags of the calculation.
type BandEnergies interface {
	// Polarized reports whether the energies are split into separate
	// spin channels.
	Polarized() bool

	// Shape returns the band and k-point counts of the eigenvalue
	// matrix (of each channel, for polarized energies).
	Shape() (bands, kpoints int)
}

// UnpolarizedBands is the single-channel variant. Values is indexed
// [band][kpoint], in eV.
type UnpolarizedBands struct {
	Values [][]float64
}

func (b UnpolarizedBands) Polarized() bool { return false }

func (b UnpolarizedBands) Shape() (int, int) { return gridShape(b.Values) }

// PolarizedBands is the two-channel variant produced by spin-polarized
// calculations without spin-orbit coupling. Up and Down have identical
// shape, indexed [band][kpoint], in eV.
type PolarizedBands struct {
	Up   [][]float64
	Down [][]float64
}

func (b PolarizedBands) Polarized() bool { return true }

func (b PolarizedBands) Shape() (int, int) { return gridShape(b.Up) }

func gridShape(grid [][]float64) (int, int) {
	if len(grid) == 0 {
		return 0, 0
	}
	return len(grid), len(grid[0])
}
