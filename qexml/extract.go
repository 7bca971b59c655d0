package qexml

import (
	"fmt"

	"github.com/tsawler/espresso/model"
	"github.com/tsawler/espresso/xmldoc"
)

// Extract runs the full pipeline over one parsed document and
// assembles the unified result. The converted lattice parameter from
// the geometry stage feeds the reciprocal-lattice and band-structure
// stages; the first failing stage aborts the whole extraction with
// its originating error. There is no partial result.
func Extract(doc *xmldoc.Document) (*model.ElectronicStructure, error) {
	if doc == nil || doc.Root == nil {
		return nil, fmt.Errorf("espresso: %w", ErrNotFound)
	}
	root := doc.Root

	structure, err := extractStructure(root)
	if err != nil {
		return nil, err
	}

	recip, err := extractReciprocal(root, structure.alat)
	if err != nil {
		return nil, err
	}

	bands, err := extractBandStructure(root, structure.alat, recip)
	if err != nil {
		return nil, err
	}

	return &model.ElectronicStructure{
		Lattice:     structure.lattice,
		Alat:        structure.alat,
		Sites:       structure.sites,
		Reciprocal:  recip,
		KPoints:     bands.kpoints,
		Bands:       bands.bands,
		FermiEnergy: bands.fermi,
		Metadata:    extractMetadata(root),
	}, nil
}

// extractMetadata reads program provenance from general_info. The
// subtree is optional: absence leaves the fields empty.
func extractMetadata(root *xmldoc.Element) model.Metadata {
	var md model.Metadata
	if creator := root.Find("general_info/creator"); creator != nil {
		md.Creator, _ = creator.Attr("NAME")
		md.Version, _ = creator.Attr("VERSION")
	}
	if format := root.Find("general_info/xml_format"); format != nil {
		md.Format, _ = format.Attr("NAME")
	}
	return md
}
