// Package xmldoc provides parsing of plane-wave simulation XML output
// into a navigable element tree.
//
// The whole document is read into memory before any extraction starts.
// Queries are path-based: [Element.Find] returns the first element
// matching a slash-separated path of element names, [Element.FindAll]
// returns every match in document order. Namespace prefixes are
// stripped, so documents written with or without a schema prefix
// navigate identically.
package xmldoc
