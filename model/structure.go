package model

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// AtomSite is one atom of the structure: its label exactly as written
// in the output file, and its position in fractional coordinates of
// the lattice.
type AtomSite struct {
	Label    string
	Position Vec3
}

// KPoint is a sampled reciprocal-space point in fractional coordinates
// of the reciprocal lattice.
type KPoint Vec3

// Metadata describes the program that produced the output file.
type Metadata struct {
	Creator string // program name, e.g. "PWSCF"
	Version string // program version
	Format  string // XML format name
}

// ElectronicStructure is the unified extraction result. It is
// constructed once per extraction and never mutated afterwards; it
// has value semantics and no identity beyond its contents.
type ElectronicStructure struct {
	// Lattice holds the three lattice vectors as columns, in Å.
	Lattice Matrix3

	// Alat is the lattice scale parameter in Å.
	Alat float64

	// Sites lists the atoms in document order.
	Sites []AtomSite

	// Reciprocal holds the three reciprocal vectors as columns, in
	// Å⁻¹. It is read from the output file as written, not derived
	// from Lattice.
	Reciprocal Matrix3

	// KPoints lists the sampled k-points in document order.
	KPoints []KPoint

	// Bands holds the eigenvalue matrices, in eV.
	Bands BandEnergies

	// FermiEnergy is the Fermi level in eV.
	FermiEnergy float64

	// Metadata describes the producing program, when recorded.
	Metadata Metadata
}

// ElementSymbol reduces an atom label to its element symbol: trailing
// digits and separators are stripped and casing is normalized, so
// "Fe2", "FE" and "fe" all yield "Fe". Site labels are stored
// verbatim; this is a convenience for grouping sites by species.
func ElementSymbol(label string) string {
	trimmed := strings.TrimRightFunc(label, func(r rune) bool {
		return unicode.IsDigit(r) || r == '_' || r == '-'
	})
	if trimmed == "" {
		return ""
	}
	return cases.Title(language.Und).String(strings.ToLower(trimmed))
}
