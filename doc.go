// Package mdform parses form field declarations embedded in markdown
// documents. Each declaration line `label[*] = spec` is replaced with a
// template placeholder and contributes a typed entry to an ordered form
// definition, so downstream template engines and form renderers receive the
// document text and the field structure together.
//
//	name* = ___[30]
//	age   = ###[0:120:1]
//	city  = {BOS, (NYC -> New York City)}
//
// Sections prefix the variable names of subsequent fields:
//
//	[section:user]
//	name = ___
//
// Collapse blocks wrap a region whose visibility is driven by a select
// field option carrying a [c] or [o] marker:
//
//	extra = {Yes, (No[c])}
//	[collapse:extra]
//	details = ___
//	[endcollapse]
//
// Preprocess returns the substituted text and the definition; Parse
// additionally converts the result to HTML through the markdown renderer.
// Unrecognised syntax degrades to plain text, so ordinary markdown
// documents pass through untouched.
package mdform
