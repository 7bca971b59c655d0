package xmldoc

import "strings"

// Element is one node of a parsed document tree. Children appear in
// document order.
type Element struct {
	// Name is the element's local name, namespace prefix stripped.
	Name string

	// Attrs holds the element's attributes by local name. It is nil
	// for elements without attributes.
	Attrs map[string]string

	// Text is the element's own character data, trimmed of
	// surrounding whitespace.
	Text string

	// Children are the direct child elements in document order.
	Children []*Element

	parent *Element
}

// Attr returns the value of the named attribute and whether it was
// present on the element.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.Attrs[name]
	return v, ok
}

// Find returns the first element matching the slash-separated path of
// element names below e, or nil if no element matches.
func (e *Element) Find(path string) *Element {
	matches := e.findPath(path)
	if len(matches) == 0 {
		return nil
	}
	return matches[0]
}

// FindAll returns every element matching the slash-separated path
// below e, in document order.
func (e *Element) FindAll(path string) []*Element {
	return e.findPath(path)
}

// findPath descends one path segment at a time, keeping all matches at
// each level so sibling repetition anywhere along the path is visible.
func (e *Element) findPath(path string) []*Element {
	current := []*Element{e}
	for _, seg := range strings.Split(path, "/") {
		if seg == "" {
			return nil
		}
		var next []*Element
		for _, el := range current {
			for _, c := range el.Children {
				if c.Name == seg {
					next = append(next, c)
				}
			}
		}
		if len(next) == 0 {
			return nil
		}
		current = next
	}
	return current
}
