package form

import (
	"regexp"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Sanitizer turns a human readable label into an identifier usable as a
// variable name in templates and submitted form payloads.
type Sanitizer func(string) string

var (
	invalidRunes  = regexp.MustCompile(`[^0-9a-zA-Z_]`)
	leadingDigits = regexp.MustCompile(`^[^a-zA-Z_]+`)

	// NFD decomposition followed by combining-mark removal strips accents
	// so "Año" folds to "Ano" before identifier cleanup.
	asciiFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// DefaultSanitizer transliterates the label to ASCII, replaces every rune
// outside [0-9a-zA-Z_] with an underscore, and collapses a leading
// non-letter run into a single underscore.
func DefaultSanitizer(s string) string {
	out, _, err := transform.String(asciiFold, s)
	if err != nil {
		out = s
	}
	out = invalidRunes.ReplaceAllString(out, "_")
	return leadingDigits.ReplaceAllString(out, "_")
}
