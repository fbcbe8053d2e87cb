// Package scanner drives the single-pass line scan over a document: it
// classifies each line as a field declaration, a section or collapse
// directive, or pass-through text, tracks the active section prefix and the
// open collapse block, and assembles the ordered form definition while
// substituting placeholder markers into the output lines.
package scanner
