package qexml

import "errors"

var (
	// ErrNotFound reports a missing mandatory element or attribute.
	ErrNotFound = errors.New("qexml: required node not found")

	// ErrMalformed reports text content that does not parse into the
	// expected count or type of numbers, or a declared count that
	// does not match the number of elements found.
	ErrMalformed = errors.New("qexml: malformed data")

	// ErrInvariant reports a cross-quantity consistency failure, such
	// as mismatched spin-channel band counts or a singular lattice.
	ErrInvariant = errors.New("qexml: invariant violation")
)
