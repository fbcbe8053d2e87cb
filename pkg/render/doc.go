// Package render converts preprocessed documents to HTML. The markdown
// conversion itself is delegated to blackfriday; this package only wires it
// up and optionally sanitises the output with a bluemonday policy that
// keeps the accordion markers emitted around collapse blocks.
package render
