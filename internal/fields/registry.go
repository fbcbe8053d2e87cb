package fields

import (
	"regexp"
	"strings"

	"github.com/hgrecco/mdform/pkg/form"
)

// specParser recognises the right-hand side of one field grammar. It
// returns ok=false when the grammar does not match at all, and a non-nil
// error when the grammar matched but its modifier content is invalid.
type specParser func(spec string) (form.Specific, bool, error)

// Registry holds the ordered table of field grammars. It is immutable after
// construction and safe to share between concurrent parses.
type Registry struct {
	parsers []specParser
}

// NewRegistry builds the standard parser table. Order matters only for
// grammars with a shared prefix; it mirrors the documented syntax listing.
func NewRegistry() *Registry {
	return &Registry{parsers: []specParser{
		parseString,
		parseInteger,
		parseDecimal,
		parseFloat,
		parseTextArea,
		parseDate,
		parseTime,
		parseEmail,
		parseRadio,
		parseCheckbox,
		parseSelect,
		parseFile,
	}}
}

var defaultRegistry = NewRegistry()

// Default returns the shared standard registry.
func Default() *Registry { return defaultRegistry }

// Match runs the spec through the parser table and returns the first hit.
func (r *Registry) Match(spec string) (form.Specific, bool, error) {
	for _, parse := range r.parsers {
		specific, ok, err := parse(spec)
		if err != nil {
			return nil, false, err
		}
		if ok {
			return specific, true, nil
		}
	}
	return nil, false, nil
}

// Labels may contain letters, digits, underscores, spaces and hyphens, and
// must start with a word character. The asterisk before the equals sign
// marks the field as required.
var fieldLineRE = regexp.MustCompile(`^(?P<label>[\p{L}\p{N}_][\p{L}\p{N}_ \t-]*)(?P<required>\*)?[ \t]*=[ \t]*(?P<spec>.*)$`)

var (
	labelIdx    = fieldLineRE.SubexpIndex("label")
	requiredIdx = fieldLineRE.SubexpIndex("required")
	specIdx     = fieldLineRE.SubexpIndex("spec")
)

// MatchLine parses a full `label[*] = spec` line against the registry. A
// line that does not declare a recognisable field returns ok=false so the
// caller can pass it through untouched.
func MatchLine(r *Registry, line string) (form.Field, bool, error) {
	m := fieldLineRE.FindStringSubmatch(line)
	if m == nil {
		return form.Field{}, false, nil
	}

	specific, ok, err := r.Match(strings.TrimSpace(m[specIdx]))
	if err != nil {
		return form.Field{}, false, err
	}
	if !ok {
		return form.Field{}, false, nil
	}

	return form.Field{
		OriginalLabel: strings.TrimSpace(m[labelIdx]),
		Required:      m[requiredIdx] == "*",
		Specific:      specific,
	}, true, nil
}

// choiceKey derives the stable option key from a choice label: transliterate,
// case-fold, then identifier cleanup. Variable names use the same pipeline so
// keys and names stay consistent.
func choiceKey(label string) string {
	return form.DefaultSanitizer(strings.ToLower(label))
}
