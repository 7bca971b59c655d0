// Package model provides the value types produced by extraction.
//
// All extraction operations ultimately produce an
// [ElectronicStructure], making it the primary API for consuming
// extracted data. It aggregates:
//
//   - [Matrix3] - the direct and reciprocal lattices, columns are
//     basis vectors
//   - [AtomSite] - atoms with fractional coordinates and verbatim
//     labels
//   - [KPoint] - sampled reciprocal-space points, fractional
//   - [BandEnergies] - eigenvalue matrices, one variant per spin case
//   - [Metadata] - provenance of the producing program
//
// # Band energies
//
// BandEnergies is a closed variant decided once at extraction time.
// The concrete types are:
//
//   - [UnpolarizedBands] - one matrix, bands × k-points
//   - [PolarizedBands] - separate spin-up and spin-down matrices
//
// # Geometry
//
// [Matrix3] supports the basis changes extraction needs: determinant,
// inversion with an explicit singularity check, and matrix-vector
// products. [Vec3] is a plain 3-component vector.
//
// All types are plain values. A result is constructed once per
// extraction and never mutated afterwards.
package model
