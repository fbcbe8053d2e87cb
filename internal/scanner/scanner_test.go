package scanner

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hgrecco/mdform/pkg/form"
)

const document = `
Welcome to the form tester

name* = ___[30]
_edad = ___
e-mail* = @
really annoying 323 name = ...

[section:user]
name* = ___

[section]
blip* = @

[collapse]
This is collapsible
[endcollapse]

[collapse:]
This is also collapsible
[endcollapse]

[collapse:named]
This is a named collapsible
[endcollapse]

[section:other_user]
[collapse:other_named]
This is another named collapsible
[endcollapse]
`

const documentLines = `
Welcome to the form tester

{{ form.name }}
{{ form.edad }}
{{ form.e_mail }}
{{ form.really_annoying_323_name }}

{{ form.user_name }}

{{ form.blip }}

<div id="accordion-0">
This is collapsible
</div>

<div id="accordion-1">
This is also collapsible
</div>

<div id="accordion-named">
This is a named collapsible
</div>

<div id="accordion-other_user_other_named">
This is another named collapsible
</div>
`

func scan(t *testing.T, text string, opts Options) Result {
	t.Helper()
	result, err := Scan(text, opts)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	return result
}

func TestScanDocument(t *testing.T) {
	result := scan(t, document, Options{})

	if got := strings.Join(result.Lines, "\n"); got != documentLines {
		t.Fatalf("lines mismatch (-want +got):\n%s", cmp.Diff(documentLines, got))
	}

	wantNames := []string{"name", "edad", "e_mail", "really_annoying_323_name", "user_name", "blip"}
	if diff := cmp.Diff(wantNames, result.Definition.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	name, _ := result.Definition.Get("name")
	if !name.Required || name.Kind() != form.KindString {
		t.Fatalf("name: got %+v", name)
	}
	maxLength := name.Specific.(form.String).MaxLength
	if maxLength == nil || *maxLength != 30 {
		t.Fatalf("name: max length %v, want 30", maxLength)
	}

	edad, _ := result.Definition.Get("edad")
	if edad.Required || !edad.LabelHidden() || edad.Label() != "edad" {
		t.Fatalf("edad: got %+v", edad)
	}

	email, _ := result.Definition.Get("e_mail")
	if !email.Required || email.Kind() != form.KindEmail || email.OriginalLabel != "e-mail" {
		t.Fatalf("e_mail: got %+v", email)
	}

	file, _ := result.Definition.Get("really_annoying_323_name")
	if file.Kind() != form.KindFile {
		t.Fatalf("really_annoying_323_name: kind %q", file.Kind())
	}

	wantBlocks := []form.Block{
		{Control: "0"},
		{Control: "1"},
		{Control: "named", Named: true},
		{Control: "other_user_other_named", Named: true},
	}
	if diff := cmp.Diff(wantBlocks, result.Definition.Blocks()); diff != "" {
		t.Fatalf("blocks mismatch (-want +got):\n%s", diff)
	}

	// Named blocks without a controlling select field degrade to warnings.
	if len(result.Warnings) != 2 {
		t.Fatalf("warnings: got %v, want 2", result.Warnings)
	}
	for i, name := range []string{"named", "other_user_other_named"} {
		warning := result.Warnings[i]
		if warning.Code != form.WarnCollapseControlMissing || warning.Name != name {
			t.Fatalf("warning %d: got %+v", i, warning)
		}
	}
}

func TestScanSectionPrefixes(t *testing.T) {
	text := "[section:a]\nx = ___\n[section]\nx = ___\n"
	result := scan(t, text, Options{})

	wantNames := []string{"a_x", "x"}
	if diff := cmp.Diff(wantNames, result.Definition.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if got := strings.Join(result.Lines, "\n"); got != "{{ form.a_x }}\n{{ form.x }}\n" {
		t.Fatalf("lines: %q", got)
	}
}

func TestScanSectionNameLowered(t *testing.T) {
	result := scan(t, "[section:User]\nName = ___\n", Options{})
	if diff := cmp.Diff([]string{"user_name"}, result.Definition.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestScanDuplicateField(t *testing.T) {
	_, err := Scan("name = ___\nname = @\n", Options{})
	var dup *form.DuplicateFieldError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateFieldError, got %v", err)
	}
	if dup.VariableName != "name" {
		t.Fatalf("duplicate variable %q", dup.VariableName)
	}
}

func TestScanDuplicateAcrossLabels(t *testing.T) {
	// Distinct labels that sanitize to the same variable name collide.
	_, err := Scan("e-mail = @\ne mail = @\n", Options{})
	var dup *form.DuplicateFieldError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateFieldError, got %v", err)
	}
	if dup.VariableName != "e_mail" || dup.PreviousLabel != "e-mail" || dup.Label != "e mail" {
		t.Fatalf("duplicate: %+v", dup)
	}
}

func TestScanFieldSpecError(t *testing.T) {
	_, err := Scan("first = ___\nvalue = ###[0:s:1]\n", Options{})
	var parseErr *form.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if parseErr.LineNum != 2 {
		t.Fatalf("line %d, want 2", parseErr.LineNum)
	}
	if parseErr.Line != "value = ###[0:s:1]" {
		t.Fatalf("line %q", parseErr.Line)
	}
}

func TestScanCollapseBalance(t *testing.T) {
	cases := []struct {
		text   string
		reason string
	}{
		{"[endcollapse]\n", "no open collapse block"},
		{"[collapse]\ntext\n", "still open"},
		{"[collapse]\n[collapse:inner]\n[endcollapse]\n", "cannot nest"},
	}
	for _, tc := range cases {
		_, err := Scan(tc.text, Options{})
		var cfgErr *form.ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Fatalf("Scan(%q): expected ConfigurationError, got %v", tc.text, err)
		}
		if !strings.Contains(cfgErr.Reason, tc.reason) {
			t.Fatalf("Scan(%q): reason %q, want %q", tc.text, cfgErr.Reason, tc.reason)
		}
	}
}

func TestScanCollapseControl(t *testing.T) {
	text := "extra = {Yes, (No[c])}\n[collapse:extra]\nname = ___\n[endcollapse]\n"
	result := scan(t, text, Options{})

	if len(result.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", result.Warnings)
	}

	extra, _ := result.Definition.Get("extra")
	sel := extra.Specific.(form.Select)
	if sel.Default != "No" {
		t.Fatalf("default %q, want %q", sel.Default, "No")
	}
	want := &form.CollapseTarget{Key: "No", Action: form.CollapseClose}
	if diff := cmp.Diff(want, sel.Collapse); diff != "" {
		t.Fatalf("collapse mismatch (-want +got):\n%s", diff)
	}

	wantBlocks := []form.Block{{Control: "extra", Named: true, Fields: []string{"name"}}}
	if diff := cmp.Diff(wantBlocks, result.Definition.Blocks()); diff != "" {
		t.Fatalf("blocks mismatch (-want +got):\n%s", diff)
	}
}

func TestScanCollapseMarkerWithoutBlock(t *testing.T) {
	result := scan(t, "extra = {Yes, (No[c])}\n", Options{})
	if len(result.Warnings) != 1 {
		t.Fatalf("warnings: %v", result.Warnings)
	}
	warning := result.Warnings[0]
	if warning.Code != form.WarnCollapseBlockMissing || warning.Name != "extra" {
		t.Fatalf("warning: %+v", warning)
	}
}

func TestScanDirectiveSyntaxIsExact(t *testing.T) {
	// Trailing content keeps the line out of directive territory.
	for _, line := range []string{
		"[section:user] trailing",
		"[collapse:named] trailing",
		"[endcollapse] trailing",
		"[sections]",
	} {
		result := scan(t, line+"\n", Options{})
		if got := result.Lines[0]; got != line {
			t.Fatalf("line %q became %q", line, got)
		}
	}
}

func TestScanCustomFormatter(t *testing.T) {
	var calls []string
	formatter := func(name string, field form.Field) string {
		calls = append(calls, name)
		return "<" + name + ":" + string(field.Kind()) + ">"
	}
	result := scan(t, "name = ___\nmail = @\n", Options{Formatter: formatter})

	if diff := cmp.Diff([]string{"name", "mail"}, calls); diff != "" {
		t.Fatalf("calls mismatch (-want +got):\n%s", diff)
	}
	want := "<name:string>\n<mail:email>\n"
	if got := strings.Join(result.Lines, "\n"); got != want {
		t.Fatalf("lines %q, want %q", got, want)
	}
}

func TestScanCustomCollapseFormatter(t *testing.T) {
	collapse := func(name string, open bool) string {
		if open {
			return "<details data-control=\"" + name + "\">"
		}
		return "</details>"
	}
	result := scan(t, "[collapse:extra]\nbody\n[endcollapse]\n", Options{Collapse: collapse})

	want := "<details data-control=\"extra\">\nbody\n</details>\n"
	if got := strings.Join(result.Lines, "\n"); got != want {
		t.Fatalf("lines %q, want %q", got, want)
	}
}

func TestScanCustomSanitizer(t *testing.T) {
	sanitize := func(label string) string { return strings.ReplaceAll(label, " ", "") }
	result := scan(t, "first name = ___\n", Options{Sanitize: sanitize})
	if diff := cmp.Diff([]string{"firstname"}, result.Definition.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}
