// Package qexml extracts crystal-structure and band-structure data
// from a parsed plane-wave XML output document.
//
// [Extract] runs the whole pipeline over one document: the atomic
// structure (lattice, sites), the reciprocal lattice, and the band
// structure (k-points, eigenvalues, Fermi level), assembled into a
// single unit-consistent [model.ElectronicStructure]. Lengths are
// converted from Bohr to Ångström and energies from Hartree to eV;
// atom positions and k-points are converted to fractional coordinates
// of their respective lattices.
//
// Every consumed schema node is mandatory. Failures carry the schema
// location and wrap exactly one of the three error kinds, so callers
// classify them with errors.Is:
//
//   - [ErrNotFound] - a required element or attribute is absent
//   - [ErrMalformed] - text did not parse into the expected numbers,
//     or a count disagrees with the elements found
//   - [ErrInvariant] - a cross-quantity consistency check failed
//
// No error is downgraded to a default value: extraction either yields
// a fully populated result or fails with the originating error.
package qexml
