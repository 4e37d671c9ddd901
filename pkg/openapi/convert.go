package openapi

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-jsonform/pkg/model"
	"github.com/goliatone/go-jsonform/pkg/schema"
)

// convertProperty maps one property schema onto a field descriptor. The
// second result is false when the property has no form representation.
func convertProperty(name string, prop *openapi3.Schema, required bool) (schema.FieldDescriptor, bool) {
	desc := schema.FieldDescriptor{
		Label:       prop.Title,
		Name:        name,
		Required:    required,
		Placeholder: prop.Description,
		Disabled:    prop.ReadOnly,
	}

	switch {
	case isType(prop, openapi3.TypeString):
		if options := enumLabels(prop.Enum); len(options) > 0 {
			desc.Type = "select"
			desc.Options = options
			desc.Value = optionDefault(prop.Default)
			return desc, true
		}
		desc.Type = stringType(prop.Format)
		desc.Value = scalarDefault(prop.Default)
		desc.Validation = validation(prop)
		return desc, true

	case isType(prop, openapi3.TypeInteger), isType(prop, openapi3.TypeNumber):
		desc.Type = "number"
		desc.Value = scalarDefault(prop.Default)
		desc.Validation = validation(prop)
		return desc, true

	case isType(prop, openapi3.TypeBoolean):
		desc.Type = "checkbox"
		if b, ok := prop.Default.(bool); ok {
			desc.Value = b
		}
		return desc, true

	case isType(prop, openapi3.TypeArray):
		if prop.Items == nil || prop.Items.Value == nil {
			return schema.FieldDescriptor{}, false
		}
		options := enumLabels(prop.Items.Value.Enum)
		if len(options) == 0 {
			return schema.FieldDescriptor{}, false
		}
		desc.Type = "multiselect"
		desc.Options = options
		if list, ok := prop.Default.([]any); ok {
			values := make([]string, 0, len(list))
			for _, item := range list {
				if s, ok := item.(string); ok {
					values = append(values, model.OptionValue(s))
				}
			}
			desc.Value = values
		}
		return desc, true
	}
	return schema.FieldDescriptor{}, false
}

func stringType(format string) string {
	switch format {
	case "email", "password", "date", "textarea":
		return format
	default:
		return "text"
	}
}

func validation(prop *openapi3.Schema) *schema.Validation {
	v := &schema.Validation{}
	if prop.Pattern != "" {
		// OpenAPI patterns search the value; form patterns match all of it.
		v.Pattern = ".*(?:" + prop.Pattern + ").*"
	}
	if prop.Min != nil {
		v.Min = schema.Float(*prop.Min)
	}
	if prop.Max != nil {
		v.Max = schema.Float(*prop.Max)
	}
	if prop.MinLength > 0 {
		v.MinLength = schema.Int(int(prop.MinLength))
	}
	if prop.MaxLength != nil {
		v.MaxLength = schema.Int(int(*prop.MaxLength))
	}
	if *v == (schema.Validation{}) {
		return nil
	}
	return v
}

func enumLabels(enum []any) []string {
	if len(enum) == 0 {
		return nil
	}
	out := make([]string, 0, len(enum))
	for _, item := range enum {
		if item == nil {
			continue
		}
		out = append(out, fmt.Sprint(item))
	}
	return out
}

// optionDefault converts an enum default into the derived option value so
// the preselection matches one of the compiled options.
func optionDefault(value any) any {
	if value == nil {
		return nil
	}
	return model.OptionValue(fmt.Sprint(value))
}

func scalarDefault(value any) any {
	switch value.(type) {
	case string, float64, int, int64, bool:
		return value
	default:
		return nil
	}
}
