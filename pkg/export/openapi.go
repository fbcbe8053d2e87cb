package export

import (
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/hgrecco/mdform/pkg/form"
)

// OpenAPIOption customises the generated document.
type OpenAPIOption func(*openapiConfig)

type openapiConfig struct {
	title       string
	version     string
	path        string
	operationID string
}

// WithTitle sets the document title.
func WithTitle(title string) OpenAPIOption {
	return func(cfg *openapiConfig) { cfg.title = title }
}

// WithVersion sets the document version.
func WithVersion(version string) OpenAPIOption {
	return func(cfg *openapiConfig) { cfg.version = version }
}

// WithSubmitPath sets the path of the generated submit operation.
func WithSubmitPath(path string) OpenAPIOption {
	return func(cfg *openapiConfig) { cfg.path = path }
}

// WithOperationID sets the operationId of the generated submit operation.
func WithOperationID(id string) OpenAPIOption {
	return func(cfg *openapiConfig) { cfg.operationID = id }
}

// OpenAPI builds an OpenAPI document with a single POST operation whose
// request body schema describes the payload submitted by the form.
func OpenAPI(definition *form.Definition, opts ...OpenAPIOption) (*openapi3.T, error) {
	if definition == nil {
		return nil, errors.New("export: nil form definition")
	}

	cfg := openapiConfig{
		title:       "Form submission",
		version:     "1.0.0",
		path:        "/form",
		operationID: "submitForm",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	payload := openapi3.NewObjectSchema()
	payload.Properties = make(openapi3.Schemas, definition.Len())
	for _, name := range definition.Names() {
		field, _ := definition.Get(name)
		schema, err := fieldSchema(field)
		if err != nil {
			return nil, fmt.Errorf("export: field %q: %w", name, err)
		}
		payload.Properties[name] = openapi3.NewSchemaRef("", schema)
		if field.Required {
			payload.Required = append(payload.Required, name)
		}
	}

	body := openapi3.NewRequestBody().WithRequired(true)
	body.Content = openapi3.NewContentWithJSONSchema(payload)

	op := openapi3.NewOperation()
	op.OperationID = cfg.operationID
	op.RequestBody = &openapi3.RequestBodyRef{Value: body}
	op.Responses = openapi3.NewResponses()

	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info:    &openapi3.Info{Title: cfg.title, Version: cfg.version},
		Paths:   openapi3.NewPaths(),
	}
	doc.Paths.Set(cfg.path, &openapi3.PathItem{Post: op})

	return doc, nil
}

func fieldSchema(field form.Field) (*openapi3.Schema, error) {
	var schema *openapi3.Schema

	switch spec := field.Specific.(type) {
	case form.String:
		schema = openapi3.NewStringSchema()
		setMaxLength(schema, spec.MaxLength)
	case form.TextArea:
		schema = openapi3.NewStringSchema()
		setMaxLength(schema, spec.MaxLength)
	case form.Integer:
		schema = openapi3.NewIntegerSchema()
		setIntBounds(schema, spec.Min, spec.Max, spec.Step)
	case form.Float:
		schema = openapi3.NewFloat64Schema()
		setFloatBounds(schema, spec.Min, spec.Max, spec.Step)
	case form.Decimal:
		schema = openapi3.NewFloat64Schema()
		setFloatBounds(schema, spec.Min, spec.Max, spec.Step)
	case form.Email:
		schema = openapi3.NewStringSchema()
		schema.Format = "email"
	case form.Date:
		schema = openapi3.NewStringSchema()
		schema.Format = "date"
	case form.Time:
		schema = openapi3.NewStringSchema()
		schema.Format = "time"
	case form.Radio:
		schema = choiceSchema(spec.Choices, spec.Default)
	case form.Select:
		schema = choiceSchema(spec.Choices, spec.Default)
	case form.Checkbox:
		items := choiceSchema(spec.Choices, "")
		schema = openapi3.NewArraySchema()
		schema.Items = openapi3.NewSchemaRef("", items)
		schema.UniqueItems = true
		if len(spec.Defaults) > 0 {
			defaults := make([]any, len(spec.Defaults))
			for i, key := range spec.Defaults {
				defaults[i] = key
			}
			schema.Default = defaults
		}
	case form.File:
		schema = openapi3.NewStringSchema()
		schema.Format = "binary"
		schema.Description = fileDescription(spec)
	default:
		return nil, fmt.Errorf("unsupported field kind %q", field.Kind())
	}

	schema.Title = field.Label()
	return schema, nil
}

func choiceSchema(choices []form.Choice, defaultKey string) *openapi3.Schema {
	schema := openapi3.NewStringSchema()
	for _, choice := range choices {
		schema.Enum = append(schema.Enum, choice.Key)
	}
	if defaultKey != "" {
		schema.Default = defaultKey
	}
	return schema
}

func setMaxLength(schema *openapi3.Schema, max *int) {
	if max == nil {
		return
	}
	value := uint64(*max)
	schema.MaxLength = &value
}

func setIntBounds(schema *openapi3.Schema, min, max, step *int) {
	if min != nil {
		value := float64(*min)
		schema.Min = &value
	}
	if max != nil {
		value := float64(*max)
		schema.Max = &value
	}
	if step != nil {
		value := float64(*step)
		schema.MultipleOf = &value
	}
}

func setFloatBounds(schema *openapi3.Schema, min, max, step *float64) {
	if min != nil {
		value := *min
		schema.Min = &value
	}
	if max != nil {
		value := *max
		schema.Max = &value
	}
	if step != nil {
		value := *step
		schema.MultipleOf = &value
	}
}

func fileDescription(spec form.File) string {
	var parts []string
	if spec.Description != "" {
		parts = append(parts, spec.Description)
	}
	if len(spec.Allowed) > 0 {
		parts = append(parts, "allowed extensions: "+strings.Join(spec.Allowed, ", "))
	}
	return strings.Join(parts, "; ")
}
