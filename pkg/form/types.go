package form

import "strings"

// Kind enumerates the closed set of field types recognised by the parser.
type Kind string

const (
	KindString   Kind = "string"
	KindTextArea Kind = "textarea"
	KindInteger  Kind = "integer"
	KindFloat    Kind = "float"
	KindDecimal  Kind = "decimal"
	KindEmail    Kind = "email"
	KindDate     Kind = "date"
	KindTime     Kind = "time"
	KindRadio    Kind = "radio"
	KindCheckbox Kind = "checkbox"
	KindSelect   Kind = "select"
	KindFile     Kind = "file"
)

// Specific is the per-type payload attached to a Field. The set of
// implementations is closed: one struct per Kind, nothing else satisfies it.
type Specific interface {
	Kind() Kind
}

// Choice is a single selectable option. Key is the stable identifier used in
// submitted data; Label is the human readable text shown to the user.
type Choice struct {
	Key   string `json:"key" yaml:"key"`
	Label string `json:"label" yaml:"label"`
}

// CollapseAction says what choosing the marked option does to the collapse
// block controlled by the field.
type CollapseAction string

const (
	CollapseClose CollapseAction = "close"
	CollapseOpen  CollapseAction = "open"
)

// CollapseTarget records which option of a Select field drives a collapse
// block and in which direction.
type CollapseTarget struct {
	Key    string         `json:"key" yaml:"key"`
	Action CollapseAction `json:"action" yaml:"action"`
}

// String is a single-line text input. A nil MaxLength means unlimited.
type String struct {
	MaxLength *int `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
}

func (String) Kind() Kind { return KindString }

// TextArea is a multi-line text input. A nil MaxLength means unlimited.
type TextArea struct {
	MaxLength *int `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
}

func (TextArea) Kind() Kind { return KindTextArea }

// Integer is a whole-number input with optional bounds and step.
type Integer struct {
	Min  *int `json:"min,omitempty" yaml:"min,omitempty"`
	Max  *int `json:"max,omitempty" yaml:"max,omitempty"`
	Step *int `json:"step,omitempty" yaml:"step,omitempty"`
}

func (Integer) Kind() Kind { return KindInteger }

// Float is a floating point input with optional bounds and step.
type Float struct {
	Min  *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max  *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	Step *float64 `json:"step,omitempty" yaml:"step,omitempty"`
}

func (Float) Kind() Kind { return KindFloat }

// Decimal is a fixed precision numeric input. Places is the number of
// decimal places, defaulting to 2 when the document does not set it.
type Decimal struct {
	Min    *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max    *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	Step   *float64 `json:"step,omitempty" yaml:"step,omitempty"`
	Places int      `json:"places" yaml:"places"`
}

func (Decimal) Kind() Kind { return KindDecimal }

// Email is a string input validated as an email address downstream.
type Email struct{}

func (Email) Kind() Kind { return KindEmail }

// Date is a calendar date input.
type Date struct{}

func (Date) Kind() Kind { return KindDate }

// Time is a time-of-day input.
type Time struct{}

func (Time) Kind() Kind { return KindTime }

// Radio offers mutually exclusive choices. Default is the key of the
// pre-selected choice, empty when none is marked.
type Radio struct {
	Choices []Choice `json:"choices" yaml:"choices"`
	Default string   `json:"default,omitempty" yaml:"default,omitempty"`
}

func (Radio) Kind() Kind { return KindRadio }

// Checkbox offers independent choices. Defaults lists the keys checked by
// default, in document order.
type Checkbox struct {
	Choices  []Choice `json:"choices" yaml:"choices"`
	Defaults []string `json:"defaults,omitempty" yaml:"defaults,omitempty"`
}

func (Checkbox) Kind() Kind { return KindCheckbox }

// Select is a dropdown. Collapse, when set, marks the option that opens or
// closes the collapse block controlled by this field.
type Select struct {
	Choices  []Choice        `json:"choices" yaml:"choices"`
	Default  string          `json:"default,omitempty" yaml:"default,omitempty"`
	Collapse *CollapseTarget `json:"collapse,omitempty" yaml:"collapse,omitempty"`
}

func (Select) Kind() Kind { return KindSelect }

// File is an upload input. An empty Allowed list accepts any file type.
type File struct {
	Allowed     []string `json:"allowed,omitempty" yaml:"allowed,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
}

func (File) Kind() Kind { return KindFile }

// Field is one parsed field declaration: the label exactly as written, the
// required flag, and the type-specific payload.
type Field struct {
	OriginalLabel string
	Required      bool
	Specific      Specific
}

// hiddenLabelPrefix marks labels that should not be rendered.
const hiddenLabelPrefix = "_"

// LabelHidden reports whether the label was declared with the hidden marker.
func (f Field) LabelHidden() bool {
	return strings.HasPrefix(f.OriginalLabel, hiddenLabelPrefix)
}

// Label returns the label with the hidden marker stripped.
func (f Field) Label() string {
	if f.LabelHidden() {
		return f.OriginalLabel[len(hiddenLabelPrefix):]
	}
	return f.OriginalLabel
}

// Kind returns the kind of the specific payload, or the empty Kind for a
// zero Field.
func (f Field) Kind() Kind {
	if f.Specific == nil {
		return Kind("")
	}
	return f.Specific.Kind()
}
