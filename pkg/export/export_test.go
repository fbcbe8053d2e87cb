package export

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hgrecco/mdform/pkg/form"
)

func intp(v int) *int { return &v }

func sampleDefinition(t *testing.T) *form.Definition {
	t.Helper()
	def := form.NewDefinition()
	add := func(name string, field form.Field) {
		t.Helper()
		if err := def.Add(name, field); err != nil {
			t.Fatalf("Add(%q): %v", name, err)
		}
	}
	add("name", form.Field{OriginalLabel: "name", Required: true, Specific: form.String{MaxLength: intp(30)}})
	add("age", form.Field{OriginalLabel: "age", Specific: form.Integer{Min: intp(0), Max: intp(120)}})
	add("mail", form.Field{OriginalLabel: "mail", Required: true, Specific: form.Email{}})
	add("extra", form.Field{OriginalLabel: "extra", Specific: form.Select{
		Choices:  []form.Choice{{Key: "Yes", Label: "Yes"}, {Key: "No", Label: "No"}},
		Default:  "No",
		Collapse: &form.CollapseTarget{Key: "No", Action: form.CollapseClose},
	}})
	add("fruit", form.Field{OriginalLabel: "fruit", Specific: form.Checkbox{
		Choices:  []form.Choice{{Key: "apple", Label: "Apple"}, {Key: "banana", Label: "Banana"}},
		Defaults: []string{"banana"},
	}})
	return def
}

func TestJSONKeepsOrder(t *testing.T) {
	out, err := JSON(sampleDefinition(t))
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	text := string(out)

	last := -1
	for _, key := range []string{`"name"`, `"age"`, `"mail"`, `"extra"`, `"fruit"`} {
		idx := strings.Index(text, key+": {")
		if idx < 0 {
			t.Fatalf("key %s missing in:\n%s", key, text)
		}
		if idx < last {
			t.Fatalf("key %s out of order in:\n%s", key, text)
		}
		last = idx
	}
	if !strings.Contains(text, `"maxLength": 30`) {
		t.Fatalf("maxLength missing in:\n%s", text)
	}
	if !strings.Contains(text, `"type": "email"`) {
		t.Fatalf("email type missing in:\n%s", text)
	}
}

func TestYAMLKeepsOrder(t *testing.T) {
	out, err := YAML(sampleDefinition(t))
	if err != nil {
		t.Fatalf("YAML: %v", err)
	}
	text := string(out)

	last := -1
	for _, key := range []string{"name:", "age:", "mail:", "extra:", "fruit:"} {
		idx := strings.Index(text, "\n"+key)
		if key == "name:" {
			idx = strings.Index(text, key)
		}
		if idx < 0 {
			t.Fatalf("key %s missing in:\n%s", key, text)
		}
		if idx < last {
			t.Fatalf("key %s out of order in:\n%s", key, text)
		}
		last = idx
	}
	for _, fragment := range []string{"type: string", "type: integer", "type: email", "maxLength: 30", "- banana"} {
		if !strings.Contains(text, fragment) {
			t.Fatalf("fragment %q missing in:\n%s", fragment, text)
		}
	}
}

func TestOpenAPI(t *testing.T) {
	doc, err := OpenAPI(sampleDefinition(t),
		WithTitle("Tester"),
		WithVersion("2.0.0"),
		WithSubmitPath("/submit"),
		WithOperationID("submitTester"),
	)
	if err != nil {
		t.Fatalf("OpenAPI: %v", err)
	}

	if doc.Info.Title != "Tester" || doc.Info.Version != "2.0.0" {
		t.Fatalf("info: %+v", doc.Info)
	}

	item := doc.Paths.Find("/submit")
	if item == nil || item.Post == nil {
		t.Fatalf("post operation missing")
	}
	op := item.Post
	if op.OperationID != "submitTester" {
		t.Fatalf("operation id %q", op.OperationID)
	}

	body := op.RequestBody.Value
	if !body.Required {
		t.Fatal("request body not required")
	}
	payload := body.Content["application/json"].Schema.Value
	if diff := cmp.Diff([]string{"name", "mail"}, payload.Required); diff != "" {
		t.Fatalf("required mismatch (-want +got):\n%s", diff)
	}

	name := payload.Properties["name"].Value
	if name.MaxLength == nil || *name.MaxLength != 30 {
		t.Fatalf("name maxLength: %v", name.MaxLength)
	}

	age := payload.Properties["age"].Value
	if age.Min == nil || *age.Min != 0 || age.Max == nil || *age.Max != 120 {
		t.Fatalf("age bounds: min=%v max=%v", age.Min, age.Max)
	}

	mail := payload.Properties["mail"].Value
	if mail.Format != "email" {
		t.Fatalf("mail format %q", mail.Format)
	}

	extra := payload.Properties["extra"].Value
	if diff := cmp.Diff([]any{"Yes", "No"}, extra.Enum); diff != "" {
		t.Fatalf("enum mismatch (-want +got):\n%s", diff)
	}
	if extra.Default != "No" {
		t.Fatalf("extra default %v", extra.Default)
	}

	fruit := payload.Properties["fruit"].Value
	if fruit.Type == nil || !fruit.Type.Is("array") || !fruit.UniqueItems {
		t.Fatalf("fruit schema: %+v", fruit)
	}
	items := fruit.Items.Value
	if diff := cmp.Diff([]any{"apple", "banana"}, items.Enum); diff != "" {
		t.Fatalf("items enum mismatch (-want +got):\n%s", diff)
	}
}

func TestOpenAPINilDefinition(t *testing.T) {
	if _, err := OpenAPI(nil); err == nil {
		t.Fatal("expected error")
	}
}
