package form

// Block records a collapse region: the variable name of the controlling
// select field and the variable names declared inside the region, in order.
// Unnamed blocks get a sequential numeric control name and Named is false.
type Block struct {
	Control string
	Named   bool
	Fields  []string
}

// Definition is the ordered mapping from variable name to Field assembled
// during a parse. Iteration order is document encounter order.
type Definition struct {
	names  []string
	fields map[string]Field
	blocks []Block
}

// NewDefinition returns an empty definition.
func NewDefinition() *Definition {
	return &Definition{fields: make(map[string]Field)}
}

// Add appends a field under the given variable name. Adding a name that is
// already present returns a DuplicateFieldError naming both labels.
func (d *Definition) Add(name string, field Field) error {
	if previous, ok := d.fields[name]; ok {
		return &DuplicateFieldError{
			VariableName:  name,
			Label:         field.OriginalLabel,
			PreviousLabel: previous.OriginalLabel,
		}
	}
	d.names = append(d.names, name)
	d.fields[name] = field
	return nil
}

// AddBlock appends a collapse block record.
func (d *Definition) AddBlock(block Block) {
	d.blocks = append(d.blocks, block)
}

// Len returns the number of fields.
func (d *Definition) Len() int { return len(d.names) }

// Names returns the variable names in document order.
func (d *Definition) Names() []string {
	return append([]string(nil), d.names...)
}

// Get returns the field stored under name.
func (d *Definition) Get(name string) (Field, bool) {
	field, ok := d.fields[name]
	return field, ok
}

// Blocks returns the collapse blocks in document order.
func (d *Definition) Blocks() []Block {
	return append([]Block(nil), d.blocks...)
}

// Map returns a copy of the mapping for callers that do not care about
// order.
func (d *Definition) Map() map[string]Field {
	out := make(map[string]Field, len(d.fields))
	for name, field := range d.fields {
		out[name] = field
	}
	return out
}
