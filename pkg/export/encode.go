package export

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/hgrecco/mdform/pkg/form"
)

// JSON renders the definition as an indented JSON object whose keys keep
// document order.
func JSON(definition *form.Definition) ([]byte, error) {
	return json.MarshalIndent(definition, "", "  ")
}

// fieldDoc mirrors the JSON shape of form.Field for the YAML emitter.
type fieldDoc struct {
	Label    string    `yaml:"label"`
	Required bool      `yaml:"required"`
	Hidden   bool      `yaml:"hidden,omitempty"`
	Type     form.Kind `yaml:"type"`
	Spec     any       `yaml:"spec,omitempty"`
}

func docFor(field form.Field) fieldDoc {
	doc := fieldDoc{
		Label:    field.Label(),
		Required: field.Required,
		Hidden:   field.LabelHidden(),
		Type:     field.Kind(),
	}
	switch field.Specific.(type) {
	case nil, form.Email, form.Date, form.Time:
	default:
		doc.Spec = field.Specific
	}
	return doc
}

// YAML renders the definition as a YAML mapping whose keys keep document
// order.
func YAML(definition *form.Definition) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range definition.Names() {
		field, _ := definition.Get(name)

		var value yaml.Node
		if err := value.Encode(docFor(field)); err != nil {
			return nil, fmt.Errorf("export: encode field %q: %w", name, err)
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: name},
			&value,
		)
	}
	return yaml.Marshal(root)
}
