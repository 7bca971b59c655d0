// Package units provides the fixed physical conversion factors between
// the atomic units used in plane-wave simulation output and the
// Ångström/electron-volt units used in extracted results.
//
// Values are the CODATA 2018 recommended values.
package units

const (
	// BohrToAngstrom converts lengths from Bohr radii to Ångström.
	BohrToAngstrom = 0.529177210903

	// HartreeToEV converts energies from Hartree to electron volts.
	HartreeToEV = 27.211386245988

	// RydbergToEV converts energies from Rydberg to electron volts.
	RydbergToEV = HartreeToEV / 2
)
