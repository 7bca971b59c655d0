// Package espresso provides a fluent API for extracting crystal
// structures and electronic band structures from plane-wave
// simulation XML output files.
//
// Basic usage:
//
//	result, err := espresso.Open("data-file-schema.xml").Result()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(result.FermiEnergy)
//
// Lengths in the result are in Ångström, energies in eV; atom
// positions and k-points are fractional coordinates of the direct and
// reciprocal lattices. For lower-level access the xmldoc and qexml
// packages are also available.
package espresso

import (
	"io"
)

// Open prepares the XML output file at filename for extraction. The
// file is read and parsed on the first terminal operation.
//
// Example:
//
//	result, err := espresso.Open("data-file-schema.xml").Result()
func Open(filename string) *Extractor {
	return &Extractor{filename: filename}
}

// FromReader prepares an Extractor that reads the XML document from r.
// The reader is consumed on the first terminal operation.
//
// Example:
//
//	result, err := espresso.FromReader(f).Result()
func FromReader(r io.Reader) *Extractor {
	return &Extractor{reader: r}
}

// Must is a helper that wraps a call to a function returning
// (T, error) and panics if the error is non-nil. It is intended for
// use in scripts or tests where error handling would be cumbersome.
//
// Example:
//
//	result := espresso.Must(espresso.Open("out.xml").Result())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
