package schema

// FieldType is the simplified enum for form-friendly field kinds.
type FieldType string

const (
	// FieldTypeCategorical restricts the value to a closed set of options.
	FieldTypeCategorical FieldType = "categorical"
	// FieldTypeNumber accepts a non-negative floating point value.
	FieldTypeNumber FieldType = "number"
	// FieldTypeInteger accepts a non-negative whole value. Fractional input is
	// tolerated at entry time and truncated during payload construction.
	FieldTypeInteger FieldType = "integer"
)

// Field models a single input of the churn questionnaire. Name doubles as the
// wire key sent to the prediction service, so it is never rewritten by
// overrides or adapters.
type Field struct {
	Name        string    `json:"name" yaml:"name"`
	Label       string    `json:"label,omitempty" yaml:"label,omitempty"`
	Type        FieldType `json:"type" yaml:"type"`
	Options     []string  `json:"options,omitempty" yaml:"options,omitempty"`
	Required    bool      `json:"required" yaml:"required"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Placeholder string    `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
}

// Numeric reports whether the field holds a number or integer value. Numeric
// fields are required in effect regardless of the Required flag.
func (f Field) Numeric() bool {
	return f.Type == FieldTypeNumber || f.Type == FieldTypeInteger
}

// HasOption reports whether value matches one of the declared options.
func (f Field) HasOption(value string) bool {
	for _, option := range f.Options {
		if option == value {
			return true
		}
	}
	return false
}

// Catalog is an ordered field set. Order is the presentation order.
type Catalog []Field

// Find returns the field declared under name.
func (c Catalog) Find(name string) (Field, bool) {
	for _, field := range c {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// Names returns the field names in declaration order.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for _, field := range c {
		names = append(names, field.Name)
	}
	return names
}

// Clone returns a deep copy so callers can mutate labels or options without
// touching the shared catalog.
func (c Catalog) Clone() Catalog {
	if c == nil {
		return nil
	}
	out := make(Catalog, len(c))
	for i, field := range c {
		field.Options = append([]string(nil), field.Options...)
		out[i] = field
	}
	return out
}
