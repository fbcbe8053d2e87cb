package fields

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/hgrecco/mdform/pkg/form"
)

// Marker runs are matched exactly: a fourth underscore or numeral makes the
// anchored pattern fail, so runs of punctuation keep their ordinary markdown
// meaning.
var (
	stringRE   = regexp.MustCompile(`^___(?:\[(\d*)\])?$`)
	textAreaRE = regexp.MustCompile(`^AAA(?:\[(\d*)\])?$`)
	integerRE  = regexp.MustCompile(`^###(\[([^\]]*)\])?$`)
	decimalRE  = regexp.MustCompile(`^#\.#(\[([^\]]*)\])?$`)
	floatRE    = regexp.MustCompile(`^#\.#f(\[([^\]]*)\])?$`)

	radioRE    = regexp.MustCompile(`^\([xX]?\)[ \t]*[\p{L}\p{N}_ \t-]+[()\p{L}\p{N}_ \t-]*$`)
	radioSubRE = regexp.MustCompile(`\(([xX]?)\)[ \t]*([\p{L}\p{N}_ \t-]*)`)

	checkboxRE    = regexp.MustCompile(`^\[[xX]?\][ \t]*[\p{L}\p{N}_ \t-]+[\[\]\p{L}\p{N}_ \t-]*$`)
	checkboxSubRE = regexp.MustCompile(`\[([xX]?)\][ \t]*([\p{L}\p{N}_ \t-]*)`)

	selectRE = regexp.MustCompile(`^\{([\p{L}\p{N}_ \t>,()\[\]-]+)\}$`)

	fileRE = regexp.MustCompile(`^\.\.\.(?:\[([\p{L}\p{N}_ \t,;]*)\])?$`)
)

func parseString(spec string) (form.Specific, bool, error) {
	m := stringRE.FindStringSubmatch(spec)
	if m == nil {
		return nil, false, nil
	}
	length, err := bracketLength(m[1])
	if err != nil {
		return nil, false, err
	}
	return form.String{MaxLength: length}, true, nil
}

func parseTextArea(spec string) (form.Specific, bool, error) {
	m := textAreaRE.FindStringSubmatch(spec)
	if m == nil {
		return nil, false, nil
	}
	length, err := bracketLength(m[1])
	if err != nil {
		return nil, false, err
	}
	return form.TextArea{MaxLength: length}, true, nil
}

func parseInteger(spec string) (form.Specific, bool, error) {
	m := integerRE.FindStringSubmatch(spec)
	if m == nil {
		return nil, false, nil
	}
	if m[1] == "" {
		return form.Integer{}, true, nil
	}
	min, max, step, err := intRange(m[2])
	if err != nil {
		return nil, false, err
	}
	return form.Integer{Min: min, Max: max, Step: step}, true, nil
}

func parseFloat(spec string) (form.Specific, bool, error) {
	m := floatRE.FindStringSubmatch(spec)
	if m == nil {
		return nil, false, nil
	}
	if m[1] == "" {
		return form.Float{}, true, nil
	}
	min, max, step, err := floatRange(m[2])
	if err != nil {
		return nil, false, err
	}
	return form.Float{Min: min, Max: max, Step: step}, true, nil
}

func parseDecimal(spec string) (form.Specific, bool, error) {
	m := decimalRE.FindStringSubmatch(spec)
	if m == nil {
		return nil, false, nil
	}
	if m[1] == "" {
		return form.Decimal{Places: 2}, true, nil
	}
	min, max, step, places, err := decimalRange(m[2])
	if err != nil {
		return nil, false, err
	}
	return form.Decimal{Min: min, Max: max, Step: step, Places: places}, true, nil
}

func parseDate(spec string) (form.Specific, bool, error) {
	if spec != "d/m/y" {
		return nil, false, nil
	}
	return form.Date{}, true, nil
}

func parseTime(spec string) (form.Specific, bool, error) {
	if spec != "hh:mm" {
		return nil, false, nil
	}
	return form.Time{}, true, nil
}

func parseEmail(spec string) (form.Specific, bool, error) {
	if spec != "@" {
		return nil, false, nil
	}
	return form.Email{}, true, nil
}

func parseRadio(spec string) (form.Specific, bool, error) {
	if !radioRE.MatchString(spec) {
		return nil, false, nil
	}
	var radio form.Radio
	seen := make(map[string]struct{})
	for _, m := range radioSubRE.FindAllStringSubmatch(spec, -1) {
		label := strings.TrimSpace(m[2])
		key := choiceKey(label)
		if _, dup := seen[key]; dup {
			return nil, false, fmt.Errorf("duplicate choice %q", key)
		}
		seen[key] = struct{}{}
		radio.Choices = append(radio.Choices, form.Choice{Key: key, Label: label})
		if m[1] != "" {
			if radio.Default != "" {
				return nil, false, errors.New("radio fields allow a single default")
			}
			radio.Default = key
		}
	}
	return radio, true, nil
}

func parseCheckbox(spec string) (form.Specific, bool, error) {
	if !checkboxRE.MatchString(spec) {
		return nil, false, nil
	}
	var checkbox form.Checkbox
	seen := make(map[string]struct{})
	for _, m := range checkboxSubRE.FindAllStringSubmatch(spec, -1) {
		label := strings.TrimSpace(m[2])
		key := choiceKey(label)
		if _, dup := seen[key]; dup {
			return nil, false, fmt.Errorf("duplicate choice %q", key)
		}
		seen[key] = struct{}{}
		checkbox.Choices = append(checkbox.Choices, form.Choice{Key: key, Label: label})
		if m[1] != "" {
			checkbox.Defaults = append(checkbox.Defaults, key)
		}
	}
	return checkbox, true, nil
}

func parseSelect(spec string) (form.Specific, bool, error) {
	m := selectRE.FindStringSubmatch(spec)
	if m == nil {
		return nil, false, nil
	}

	var sel form.Select
	for _, raw := range strings.Split(m[1], ",") {
		item := strings.TrimSpace(raw)

		isDefault := false
		if strings.HasPrefix(item, "(") && strings.HasSuffix(item, ")") {
			item = strings.TrimSpace(item[1 : len(item)-1])
			isDefault = true
		}

		key, label := item, item
		if strings.Contains(item, "->") {
			parts := strings.SplitN(item, "->", 2)
			key = strings.TrimSpace(parts[0])
			label = strings.TrimSpace(parts[1])
		}

		// The [c]/[o] suffix rides on the key side; strip it from both
		// halves so the cleaned key identifies the option.
		if strings.Contains(key, "[c]") {
			if sel.Collapse != nil {
				return nil, false, errors.New("select fields allow a single collapse marker")
			}
			key = strings.ReplaceAll(key, "[c]", "")
			label = strings.ReplaceAll(label, "[c]", "")
			sel.Collapse = &form.CollapseTarget{Key: key, Action: form.CollapseClose}
		}
		if strings.Contains(key, "[o]") {
			if sel.Collapse != nil {
				return nil, false, errors.New("select fields allow a single collapse marker")
			}
			key = strings.ReplaceAll(key, "[o]", "")
			label = strings.ReplaceAll(label, "[o]", "")
			sel.Collapse = &form.CollapseTarget{Key: key, Action: form.CollapseOpen}
		}

		sel.Choices = append(sel.Choices, form.Choice{Key: key, Label: label})
		if isDefault {
			sel.Default = key
		}
	}
	return sel, true, nil
}

func parseFile(spec string) (form.Specific, bool, error) {
	m := fileRE.FindStringSubmatch(spec)
	if m == nil {
		return nil, false, nil
	}

	var file form.File
	content := m[1]
	if content != "" {
		extensions := content
		if before, after, found := strings.Cut(content, ";"); found {
			extensions = before
			file.Description = strings.TrimSpace(after)
		}
		seen := make(map[string]struct{})
		for _, ext := range strings.Split(extensions, ",") {
			ext = strings.TrimSpace(ext)
			if ext == "" {
				continue
			}
			if _, dup := seen[ext]; dup {
				continue
			}
			seen[ext] = struct{}{}
			file.Allowed = append(file.Allowed, ext)
		}
	}
	return file, true, nil
}
