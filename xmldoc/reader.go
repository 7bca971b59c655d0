package xmldoc

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html/charset"
)

var (
	// ErrEmptyDocument is returned when the input contains no root
	// element.
	ErrEmptyDocument = errors.New("xmldoc: document has no root element")

	// ErrNotEspresso is returned when the root element is not the
	// espresso output element.
	ErrNotEspresso = errors.New("xmldoc: not a plane-wave output document")
)

// rootName is the expected root element of a plane-wave output file.
const rootName = "espresso"

// Document is a fully parsed XML output file.
type Document struct {
	Root *Element
}

// Open reads and parses the XML output file at filename.
func Open(filename string) (*Document, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads an XML document from r into a navigable element tree.
// Non-UTF-8 encodings are decoded according to the XML declaration.
func Parse(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	var root, elem *Element
	for {
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("parsing XML: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			child := &Element{Name: t.Name.Local, parent: elem}
			if len(t.Attr) > 0 {
				child.Attrs = make(map[string]string, len(t.Attr))
				for _, a := range t.Attr {
					child.Attrs[a.Name.Local] = a.Value
				}
			}
			if elem == nil {
				root = child
			} else {
				elem.Children = append(elem.Children, child)
			}
			elem = child

		case xml.EndElement:
			elem = elem.parent

		case xml.CharData:
			if elem == nil {
				continue
			}
			// Character data can arrive in several chunks; numeric
			// lists stay parseable when chunks are space-joined.
			text := strings.TrimSpace(string(t))
			if text == "" {
				continue
			}
			if elem.Text != "" {
				elem.Text += " "
			}
			elem.Text += text
		}
	}

	if root == nil {
		return nil, ErrEmptyDocument
	}
	if root.Name != rootName {
		return nil, fmt.Errorf("%w: root element is %q", ErrNotEspresso, root.Name)
	}
	return &Document{Root: root}, nil
}
