package espresso

import (
	"fmt"
	"io"

	"github.com/tsawler/espresso/model"
	"github.com/tsawler/espresso/qexml"
	"github.com/tsawler/espresso/xmldoc"
)

// Extractor extracts data from one simulation output file. The
// document is parsed once, on the first terminal operation, and held
// in memory; terminal operations may be repeated. An Extractor is not
// safe for concurrent use, but independent Extractors share no state.
type Extractor struct {
	filename string
	reader   io.Reader

	doc    *xmldoc.Document
	opened bool
	err    error
}

// ensureDocument parses the input on first use.
func (e *Extractor) ensureDocument() error {
	if e.err != nil {
		return e.err
	}
	if e.opened {
		return nil
	}

	var doc *xmldoc.Document
	var err error
	switch {
	case e.reader != nil:
		doc, err = xmldoc.Parse(e.reader)
	case e.filename != "":
		doc, err = xmldoc.Open(e.filename)
	default:
		err = fmt.Errorf("no input specified")
	}
	if err != nil {
		e.err = fmt.Errorf("failed to open output document: %w", err)
		return e.err
	}

	e.doc = doc
	e.opened = true
	return nil
}

// Result runs the full extraction pipeline and returns the unified
// electronic-structure result.
//
// Example:
//
//	result, err := espresso.Open("out.xml").Result()
func (e *Extractor) Result() (*model.ElectronicStructure, error) {
	if err := e.ensureDocument(); err != nil {
		return nil, err
	}
	return qexml.Extract(e.doc)
}

// Structure returns the lattice (columns are lattice vectors, in Å)
// and the atom sites in fractional coordinates.
//
// Example:
//
//	lattice, sites, err := espresso.Open("out.xml").Structure()
func (e *Extractor) Structure() (model.Matrix3, []model.AtomSite, error) {
	result, err := e.Result()
	if err != nil {
		return model.Matrix3{}, nil, err
	}
	return result.Lattice, result.Sites, nil
}

// Bands returns the band energies variant and the Fermi level in eV.
//
// Example:
//
//	bands, fermi, err := espresso.Open("out.xml").Bands()
func (e *Extractor) Bands() (model.BandEnergies, float64, error) {
	result, err := e.Result()
	if err != nil {
		return nil, 0, err
	}
	return result.Bands, result.FermiEnergy, nil
}

// Metadata returns the provenance of the producing program. Fields
// are empty when the file does not record them.
func (e *Extractor) Metadata() (model.Metadata, error) {
	result, err := e.Result()
	if err != nil {
		return model.Metadata{}, err
	}
	return result.Metadata, nil
}
