package qexml

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tsawler/espresso/model"
	"github.com/tsawler/espresso/xmldoc"
)

// The helpers below form the typed boundary over the document tree:
// past this file the pipeline never handles raw text again. Each takes
// the path to search relative to e and the absolute schema location
// loc used in error messages.

// find returns the first element at path below e.
func find(e *xmldoc.Element, path, loc string) (*xmldoc.Element, error) {
	el := e.Find(path)
	if el == nil {
		return nil, fmt.Errorf("%s: %w", loc, ErrNotFound)
	}
	return el, nil
}

// floatAttr reads a named attribute as a float.
func floatAttr(e *xmldoc.Element, name, loc string) (float64, error) {
	s, ok := e.Attr(name)
	if !ok {
		return 0, fmt.Errorf("%s@%s: %w", loc, name, ErrNotFound)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%s@%s: %q: %w", loc, name, s, ErrMalformed)
	}
	return v, nil
}

// intAttr reads a named attribute as an integer.
func intAttr(e *xmldoc.Element, name, loc string) (int, error) {
	s, ok := e.Attr(name)
	if !ok {
		return 0, fmt.Errorf("%s@%s: %w", loc, name, ErrNotFound)
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%s@%s: %q: %w", loc, name, s, ErrMalformed)
	}
	return v, nil
}

// floats parses the element's text as whitespace-separated floats.
func floats(e *xmldoc.Element, loc string) ([]float64, error) {
	fields := strings.Fields(e.Text)
	vals := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %q: %w", loc, f, ErrMalformed)
		}
		vals[i] = v
	}
	return vals, nil
}

// vector parses the element's text as exactly three floats.
func vector(e *xmldoc.Element, loc string) (model.Vec3, error) {
	vals, err := floats(e, loc)
	if err != nil {
		return model.Vec3{}, err
	}
	if len(vals) != 3 {
		return model.Vec3{}, fmt.Errorf("%s: expected 3 values, found %d: %w", loc, len(vals), ErrMalformed)
	}
	return model.Vec3{vals[0], vals[1], vals[2]}, nil
}

// floatChild reads the named child's text as a single float.
func floatChild(e *xmldoc.Element, path, loc string) (float64, error) {
	el, err := find(e, path, loc)
	if err != nil {
		return 0, err
	}
	vals, err := floats(el, loc)
	if err != nil {
		return 0, err
	}
	if len(vals) != 1 {
		return 0, fmt.Errorf("%s: expected 1 value, found %d: %w", loc, len(vals), ErrMalformed)
	}
	return vals[0], nil
}

// intChild reads the named child's text as an integer.
func intChild(e *xmldoc.Element, path, loc string) (int, error) {
	el, err := find(e, path, loc)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(strings.TrimSpace(el.Text))
	if err != nil {
		return 0, fmt.Errorf("%s: %q: %w", loc, el.Text, ErrMalformed)
	}
	return v, nil
}

// boolChild reads the named child's text as a boolean.
func boolChild(e *xmldoc.Element, path, loc string) (bool, error) {
	el, err := find(e, path, loc)
	if err != nil {
		return false, err
	}
	v, err := strconv.ParseBool(strings.TrimSpace(el.Text))
	if err != nil {
		return false, fmt.Errorf("%s: %q: %w", loc, el.Text, ErrMalformed)
	}
	return v, nil
}
