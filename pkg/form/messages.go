package form

import (
	"strconv"

	"github.com/goliatone/go-jsonform/pkg/model"
)

// Fixed messages for rules that carry no parameters.
const (
	MessageEmail         = "Please enter a valid email address"
	MessageInvalidFormat = "Invalid format"
)

// precedence is the order in which failures are reported, independent of the
// order the rules were assembled in.
var precedence = []model.RuleKind{
	model.RuleRequired,
	model.RuleEmailFormat,
	model.RulePattern,
	model.RuleMin,
	model.RuleMax,
	model.RuleMinLength,
	model.RuleMaxLength,
}

// Resolve returns the message to show for field in state. It reports false
// while the field is untouched, valid or disabled.
func Resolve(field model.Field, state FieldState) (string, bool) {
	if field.Disabled || !state.Touched || state.Valid() {
		return "", false
	}
	for _, kind := range precedence {
		if !state.HasError(kind) {
			continue
		}
		rule, _ := field.Rule(kind)
		switch kind {
		case model.RuleRequired:
			return field.Label + " is required", true
		case model.RuleEmailFormat:
			return MessageEmail, true
		case model.RulePattern:
			if rule.Message != "" {
				return rule.Message, true
			}
			return MessageInvalidFormat, true
		case model.RuleMin:
			return "Minimum value is " + formatNumber(rule.Bound), true
		case model.RuleMax:
			return "Maximum value is " + formatNumber(rule.Bound), true
		case model.RuleMinLength:
			return "Minimum length is " + strconv.Itoa(rule.Length), true
		case model.RuleMaxLength:
			return "Maximum length is " + strconv.Itoa(rule.Length), true
		}
	}
	return "", false
}

// ErrorMessage resolves the visible message for key.
func (f *Form) ErrorMessage(key string) (string, bool) {
	idx, ok := f.index[key]
	if !ok {
		return "", false
	}
	return Resolve(f.fields[idx], f.states[idx])
}

// ErrorMessages returns every visible message keyed by field key.
func (f *Form) ErrorMessages() map[string]string {
	out := make(map[string]string)
	for idx, field := range f.fields {
		if msg, ok := Resolve(field, f.states[idx]); ok {
			out[field.Key] = msg
		}
	}
	return out
}
