package model

import "github.com/goliatone/go-jsonform/pkg/schema"

// AssembleValidators derives the ordered rule set for a descriptor. Structural
// rules come first (Required, then EmailFormat for email fields) followed by
// the validation block in fixed order: pattern, min, max, minLength,
// maxLength. A numeric key set to zero still yields its rule.
func AssembleValidators(desc schema.FieldDescriptor, kind FieldKind) []ValidationRule {
	var rules []ValidationRule

	if desc.Required {
		rules = append(rules, Required())
	}
	if kind == KindEmail {
		rules = append(rules, EmailFormat())
	}

	if v := desc.Validation; v != nil {
		if v.Pattern != "" {
			rules = append(rules, Pattern(v.Pattern, v.Message))
		}
		if v.Min != nil {
			rules = append(rules, Min(*v.Min))
		}
		if v.Max != nil {
			rules = append(rules, Max(*v.Max))
		}
		if v.MinLength != nil {
			rules = append(rules, MinLength(*v.MinLength))
		}
		if v.MaxLength != nil {
			rules = append(rules, MaxLength(*v.MaxLength))
		}
	}

	if len(rules) == 0 {
		return nil
	}
	return rules
}
