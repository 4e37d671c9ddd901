package model

// FieldKind is the closed set of input kinds a compiled field can take.
type FieldKind string

const (
	KindText        FieldKind = "text"
	KindEmail       FieldKind = "email"
	KindPassword    FieldKind = "password"
	KindNumber      FieldKind = "number"
	KindDate        FieldKind = "date"
	KindTextarea    FieldKind = "textarea"
	KindCheckbox    FieldKind = "checkbox"
	KindSelect      FieldKind = "select"
	KindMultiselect FieldKind = "multiselect"
	KindRadio       FieldKind = "radio"
)

// Kinds lists every FieldKind in declaration order.
var Kinds = []FieldKind{
	KindText,
	KindEmail,
	KindPassword,
	KindNumber,
	KindDate,
	KindTextarea,
	KindCheckbox,
	KindSelect,
	KindMultiselect,
	KindRadio,
}

// RuleKind identifies a validation rule and, by extension, the failure it
// reports when the rule does not hold.
type RuleKind string

const (
	RuleRequired    RuleKind = "required"
	RuleEmailFormat RuleKind = "email"
	RulePattern     RuleKind = "pattern"
	RuleMin         RuleKind = "min"
	RuleMax         RuleKind = "max"
	RuleMinLength   RuleKind = "minLength"
	RuleMaxLength   RuleKind = "maxLength"
)

// ValidationRule is one constraint attached to a field. Only the members that
// belong to Kind are meaningful: Pattern/Message for RulePattern, Bound for
// RuleMin/RuleMax, Length for RuleMinLength/RuleMaxLength. Use the
// constructors below instead of building values by hand.
type ValidationRule struct {
	Kind    RuleKind `json:"kind"`
	Pattern string   `json:"pattern,omitempty"`
	Message string   `json:"message,omitempty"`
	Bound   float64  `json:"bound,omitempty"`
	Length  int      `json:"length,omitempty"`
}

// Required builds a rule failing on empty values.
func Required() ValidationRule { return ValidationRule{Kind: RuleRequired} }

// EmailFormat builds a rule failing on malformed email addresses.
func EmailFormat() ValidationRule { return ValidationRule{Kind: RuleEmailFormat} }

// Pattern builds a regular expression rule with an optional custom message.
func Pattern(expr, message string) ValidationRule {
	return ValidationRule{Kind: RulePattern, Pattern: expr, Message: message}
}

// Min builds a numeric lower bound.
func Min(n float64) ValidationRule { return ValidationRule{Kind: RuleMin, Bound: n} }

// Max builds a numeric upper bound.
func Max(n float64) ValidationRule { return ValidationRule{Kind: RuleMax, Bound: n} }

// MinLength builds a lower bound on string or list length.
func MinLength(n int) ValidationRule { return ValidationRule{Kind: RuleMinLength, Length: n} }

// MaxLength builds an upper bound on string or list length.
func MaxLength(n int) ValidationRule { return ValidationRule{Kind: RuleMaxLength, Length: n} }

// Option is a selectable choice for select, radio and multiselect fields.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Field is the compiled, typed representation of one schema field.
type Field struct {
	Key          string           `json:"key"`
	Kind         FieldKind        `json:"kind"`
	Label        string           `json:"label"`
	Placeholder  string           `json:"placeholder,omitempty"`
	Required     bool             `json:"required"`
	Disabled     bool             `json:"disabled,omitempty"`
	Options      []Option         `json:"options,omitempty"`
	Validators   []ValidationRule `json:"validators,omitempty"`
	DefaultValue any              `json:"defaultValue"`
}

// Rule returns the first validator of the given kind attached to the field.
func (f Field) Rule(kind RuleKind) (ValidationRule, bool) {
	for _, rule := range f.Validators {
		if rule.Kind == kind {
			return rule, true
		}
	}
	return ValidationRule{}, false
}

// Form is the compiled schema: a title plus fields in schema order.
type Form struct {
	Title  string  `json:"title"`
	Fields []Field `json:"fields"`
}
