// Package form defines the typed field model produced by the mdform
// preprocessor. A parsed document yields a Definition: an ordered mapping
// from derived variable names to Field values, where each Field carries the
// original label, the required flag, and one member of the closed Specific
// union (String, TextArea, Integer, Float, Decimal, Email, Date, Time,
// Radio, Checkbox, Select, File). All values are plain data constructed in a
// single parse pass; nothing in this package mutates a Definition after the
// parser returns it, so definitions can be shared freely between goroutines.
package form
