package form

import (
	"bytes"
	"encoding/json"
)

// MarshalJSON serialises the field as {label, required, hidden, type, spec}.
// Kinds without modifiers (email, date, time) omit the spec object.
func (f Field) MarshalJSON() ([]byte, error) {
	type payload struct {
		Label    string   `json:"label"`
		Required bool     `json:"required"`
		Hidden   bool     `json:"hidden,omitempty"`
		Type     Kind     `json:"type"`
		Spec     Specific `json:"spec,omitempty"`
	}

	p := payload{
		Label:    f.Label(),
		Required: f.Required,
		Hidden:   f.LabelHidden(),
		Type:     f.Kind(),
	}
	switch f.Specific.(type) {
	case nil, Email, Date, Time:
	default:
		p.Spec = f.Specific
	}
	return json.Marshal(p)
}

// MarshalJSON serialises the definition as a single JSON object whose keys
// appear in document encounter order.
func (d *Definition) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range d.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(d.fields[name])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
