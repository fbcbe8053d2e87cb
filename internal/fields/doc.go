// Package fields implements the field declaration grammar: the entry regex
// matching `label[*] = spec` lines and one sub-syntax parser per field type.
// The parser table is built once and shared read-only across parses.
//
// Field specs:
//
//	String      ___[length]             length optional
//	Integer     ###[min:max:step]       all slots optional
//	Decimal     #.#[min:max:step:places]
//	Float       #.#f[min:max:step]
//	TextArea    AAA[length]
//	Date        d/m/y
//	Time        hh:mm
//	Email       @
//	Radio       (x) A () B              x marks the default
//	Checkbox    [x] A [] B              x marks checked defaults
//	Select      {(A), B -> Label}       parentheses mark the default
//	File        ...[ext1,ext2;description]
//
// Exactly three marker characters trigger the String, TextArea, Integer and
// numeric grammars; longer runs fall through to ordinary markdown so the
// syntax does not collide with emphasis and rule punctuation.
package fields
