package schema

// Schema is the declarative description of a form: an optional title plus the
// field descriptors in display order. Field names are expected to be unique;
// the compiler rejects duplicates.
type Schema struct {
	Title  string            `json:"title,omitempty" yaml:"title,omitempty"`
	Fields []FieldDescriptor `json:"fields" yaml:"fields"`
}

// FieldDescriptor describes a single schema field as authored in JSON/YAML.
// Type is free-form; unknown values compile to a text field.
type FieldDescriptor struct {
	Label       string      `json:"label" yaml:"label"`
	Name        string      `json:"name" yaml:"name"`
	Type        string      `json:"type" yaml:"type"`
	Required    bool        `json:"required,omitempty" yaml:"required,omitempty"`
	Options     []string    `json:"options,omitempty" yaml:"options,omitempty"`
	Validation  *Validation `json:"validation,omitempty" yaml:"validation,omitempty"`
	Placeholder string      `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Disabled    bool        `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	Value       any         `json:"value,omitempty" yaml:"value,omitempty"`
}

// Validation holds the optional constraint block of a descriptor. Pointer
// members distinguish "absent" from an explicit zero.
type Validation struct {
	Pattern   string   `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Message   string   `json:"message,omitempty" yaml:"message,omitempty"`
	Min       *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max       *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	MinLength *int     `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength *int     `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
}

// Float returns a pointer to v, for building Validation literals.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v, for building Validation literals.
func Int(v int) *int { return &v }
