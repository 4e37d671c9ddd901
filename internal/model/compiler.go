package model

import (
	"regexp"
	"strings"

	"github.com/goliatone/go-jsonform/pkg/schema"
)

// Compiler converts schemas into compiled forms.
type Compiler struct {
	opts Options
}

// New creates a Compiler with the supplied options.
func New(options Options) *Compiler {
	opts := defaultOptions()
	if options.Labeler != nil {
		opts.Labeler = options.Labeler
	}
	if options.Logger != nil {
		opts.Logger = options.Logger
	}
	return &Compiler{opts: opts}
}

// Compile transforms a schema into a Form. Fields keep schema order 1:1 and
// the title defaults to the empty string. Schemas with unnamed, duplicated or
// badly patterned fields are rejected as a whole.
func (c *Compiler) Compile(s schema.Schema) (Form, error) {
	if err := validateSchema(s); err != nil {
		return Form{}, err
	}

	form := Form{
		Title:  s.Title,
		Fields: make([]Field, 0, len(s.Fields)),
	}
	for _, desc := range s.Fields {
		form.Fields = append(form.Fields, c.compileField(desc))
	}
	return form, nil
}

func (c *Compiler) compileField(desc schema.FieldDescriptor) Field {
	if !IsKnownType(desc.Type) {
		c.opts.Logger.Warn().
			Str("field", desc.Name).
			Str("type", desc.Type).
			Msg("unknown field type, rendering as text")
	}

	kind := MapType(desc.Type)
	label := desc.Label
	if label == "" {
		label = c.opts.Labeler(desc.Name)
	}

	return Field{
		Key:          desc.Name,
		Kind:         kind,
		Label:        label,
		Placeholder:  desc.Placeholder,
		Required:     desc.Required,
		Disabled:     desc.Disabled,
		Options:      DeriveOptions(desc.Options),
		Validators:   AssembleValidators(desc, kind),
		DefaultValue: DefaultValue(kind, desc.Value),
	}
}

// DefaultValue returns explicit when the descriptor declared one, otherwise
// the empty value for the kind: false for checkboxes, an empty list for
// multiselects and the empty string for everything else.
func DefaultValue(kind FieldKind, explicit any) any {
	if explicit != nil {
		return explicit
	}
	switch kind {
	case KindCheckbox:
		return false
	case KindMultiselect:
		return []string{}
	case KindText, KindEmail, KindPassword, KindNumber, KindDate,
		KindTextarea, KindSelect, KindRadio:
		return ""
	default:
		return ""
	}
}

// whitespaceRun matches ASCII and Unicode separator runs.
var whitespaceRun = regexp.MustCompile(`[\s\v\p{Z}\x{feff}]+`)

// DeriveOptions turns display strings into option pairs. The value is the
// lower-cased label with whitespace runs collapsed to a single underscore.
func DeriveOptions(labels []string) []Option {
	if len(labels) == 0 {
		return nil
	}
	out := make([]Option, len(labels))
	for i, label := range labels {
		out[i] = Option{
			Value: OptionValue(label),
			Label: label,
		}
	}
	return out
}

// OptionValue computes the option value for a display label.
func OptionValue(label string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(label), "_")
}
