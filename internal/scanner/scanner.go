package scanner

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/hgrecco/mdform/internal/fields"
	"github.com/hgrecco/mdform/pkg/form"
)

// Formatter produces the placeholder text that replaces a recognised field
// line. It must be a pure function of its inputs; it is called exactly once
// per field, in document order.
type Formatter func(variableName string, field form.Field) string

// CollapseFormatter produces the markers that replace the open and close
// directives of a collapse block.
type CollapseFormatter func(controlName string, open bool) string

// DefaultFormatter emits a generic double-brace lookup expression.
func DefaultFormatter(variableName string, _ form.Field) string {
	return "{{ form." + variableName + " }}"
}

// DefaultCollapseFormatter wraps collapse regions in accordion divs keyed by
// the controlling field name.
func DefaultCollapseFormatter(controlName string, open bool) string {
	if open {
		return fmt.Sprintf("<div id=%q>", "accordion-"+controlName)
	}
	return "</div>"
}

// Options configures a scan. Zero values select the standard registry,
// sanitizer and formatters.
type Options struct {
	Registry  *fields.Registry
	Sanitize  form.Sanitizer
	Formatter Formatter
	Collapse  CollapseFormatter
}

// Result is the outcome of a successful scan.
type Result struct {
	Lines      []string
	Definition *form.Definition
	Warnings   []form.Warning
}

// Directive syntax is anchored and exact; a line with trailing content after
// the closing bracket is not a directive and passes through as text.
var (
	sectionRE       = regexp.MustCompile(`^\[section[ \t]*(?::(?P<name>.*))?\][ \t]*$`)
	collapseOpenRE  = regexp.MustCompile(`^\[collapse[ \t]*(?::(?P<name>.*))?\][ \t]*$`)
	collapseCloseRE = regexp.MustCompile(`^\[endcollapse\][ \t]*$`)
)

var (
	sectionNameIdx  = sectionRE.SubexpIndex("name")
	collapseNameIdx = collapseOpenRE.SubexpIndex("name")
)

// Scan classifies every line of text and assembles the form definition. All
// state is local to the call; concurrent scans never interfere.
func Scan(text string, opts Options) (Result, error) {
	registry := opts.Registry
	if registry == nil {
		registry = fields.Default()
	}
	sanitize := opts.Sanitize
	if sanitize == nil {
		sanitize = form.DefaultSanitizer
	}
	formatter := opts.Formatter
	if formatter == nil {
		formatter = DefaultFormatter
	}
	collapse := opts.Collapse
	if collapse == nil {
		collapse = DefaultCollapseFormatter
	}

	definition := form.NewDefinition()
	out := make([]string, 0, strings.Count(text, "\n")+1)

	section := ""
	var openBlock *form.Block
	unnamedBlocks := 0

	for i, line := range strings.Split(text, "\n") {
		num := i + 1

		if m := sectionRE.FindStringSubmatch(line); m != nil {
			section = strings.ToLower(strings.TrimSpace(m[sectionNameIdx]))
			continue
		}

		if m := collapseOpenRE.FindStringSubmatch(line); m != nil {
			if openBlock != nil {
				return Result{}, &form.ConfigurationError{
					Directive: strings.TrimSpace(line),
					LineNum:   num,
					Reason:    "collapse blocks cannot nest",
				}
			}
			name := strings.ToLower(strings.TrimSpace(m[collapseNameIdx]))
			named := name != ""
			if named {
				name = sanitize(name)
			} else {
				name = strconv.Itoa(unnamedBlocks)
				unnamedBlocks++
			}
			name = prefixed(section, name)
			openBlock = &form.Block{Control: name, Named: named}
			out = append(out, collapse(name, true))
			continue
		}

		if collapseCloseRE.MatchString(line) {
			if openBlock == nil {
				return Result{}, &form.ConfigurationError{
					Directive: strings.TrimSpace(line),
					LineNum:   num,
					Reason:    "no open collapse block",
				}
			}
			out = append(out, collapse(openBlock.Control, false))
			definition.AddBlock(*openBlock)
			openBlock = nil
			continue
		}

		field, ok, err := fields.MatchLine(registry, line)
		if err != nil {
			return Result{}, &form.ParseError{Line: line, LineNum: num, Err: err}
		}
		if !ok {
			out = append(out, line)
			continue
		}

		name := prefixed(section, sanitize(strings.ToLower(field.Label())))
		if err := definition.Add(name, field); err != nil {
			return Result{}, err
		}
		if openBlock != nil {
			openBlock.Fields = append(openBlock.Fields, name)
		}
		out = append(out, formatter(name, field))
	}

	if openBlock != nil {
		return Result{}, &form.ConfigurationError{
			Reason: fmt.Sprintf("collapse block %q still open at end of input", openBlock.Control),
		}
	}

	return Result{
		Lines:      out,
		Definition: definition,
		Warnings:   crossCheckCollapse(definition),
	}, nil
}

func prefixed(section, name string) string {
	if section == "" {
		return name
	}
	return section + "_" + name
}

// crossCheckCollapse pairs named collapse blocks with the select fields that
// claim to control them. Mismatches degrade to warnings: rendering still
// works, the toggle behaviour is just not wired up.
func crossCheckCollapse(definition *form.Definition) []form.Warning {
	blocks := make(map[string]struct{})
	for _, block := range definition.Blocks() {
		if block.Named {
			blocks[block.Control] = struct{}{}
		}
	}

	controllers := make(map[string]struct{})
	for _, name := range definition.Names() {
		field, _ := definition.Get(name)
		sel, ok := field.Specific.(form.Select)
		if !ok || sel.Collapse == nil {
			continue
		}
		controllers[name] = struct{}{}
	}

	var warnings []form.Warning
	for _, block := range definition.Blocks() {
		if !block.Named {
			continue
		}
		if _, ok := controllers[block.Control]; !ok {
			warnings = append(warnings, form.Warning{
				Code:    form.WarnCollapseControlMissing,
				Name:    block.Control,
				Message: fmt.Sprintf("collapse block %q is not controlled by any select field", block.Control),
			})
		}
	}
	for _, name := range definition.Names() {
		if _, ok := controllers[name]; !ok {
			continue
		}
		if _, ok := blocks[name]; !ok {
			warnings = append(warnings, form.Warning{
				Code:    form.WarnCollapseBlockMissing,
				Name:    name,
				Message: fmt.Sprintf("select field %q has a collapse marker but no collapse block", name),
			})
		}
	}
	return warnings
}
