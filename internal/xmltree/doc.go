// Package xmltree loads an XML document into a generic labeled tree.
//
// Every element becomes a Node holding its tag name, its attributes and its
// child elements in document order. Character data, comments and processing
// instructions are dropped; Rekordbox exports keep everything of interest in
// attributes.
//
// Attribute values are preserved exactly as the standard XML unescaping
// leaves them, because later stages parse structure out of those strings.
// Any syntax error is reported as a *model.DocumentError carrying the line and
// column where decoding stopped.
package xmltree
