package form

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-jsonform/pkg/model"
)

// check is a compiled ValidationRule.
type check struct {
	rule    model.ValidationRule
	pattern *regexp.Regexp
}

func compileChecks(field model.Field) ([]check, error) {
	if len(field.Validators) == 0 {
		return nil, nil
	}
	out := make([]check, 0, len(field.Validators))
	for _, rule := range field.Validators {
		c := check{rule: rule}
		if rule.Kind == model.RulePattern {
			re, err := regexp.Compile(model.AnchorPattern(rule.Pattern))
			if err != nil {
				return nil, fmt.Errorf("%w: field %q: %v", model.ErrInvalidPattern, field.Key, err)
			}
			c.pattern = re
		}
		out = append(out, c)
	}
	return out, nil
}

// evaluate returns the kinds of the failing rules in rule order, without
// duplicates. A nil result means the value is valid.
func evaluate(checks []check, value any) []model.RuleKind {
	var failed []model.RuleKind
	for _, c := range checks {
		if c.holds(value) {
			continue
		}
		if containsKind(failed, c.rule.Kind) {
			continue
		}
		failed = append(failed, c.rule.Kind)
	}
	return failed
}

func (c check) holds(value any) bool {
	if c.rule.Kind == model.RuleRequired {
		return !isEmpty(value)
	}
	// Every other rule accepts an empty value; Required owns emptiness.
	if isEmpty(value) {
		return true
	}

	switch c.rule.Kind {
	case model.RuleEmailFormat:
		s, ok := value.(string)
		return !ok || validEmail(s)
	case model.RulePattern:
		s, ok := value.(string)
		return !ok || c.pattern.MatchString(s)
	case model.RuleMin:
		n, ok := leadingFloat(value)
		return !ok || n >= c.rule.Bound
	case model.RuleMax:
		n, ok := leadingFloat(value)
		return !ok || n <= c.rule.Bound
	case model.RuleMinLength:
		l, ok := length(value)
		return !ok || l >= c.rule.Length
	case model.RuleMaxLength:
		l, ok := length(value)
		return !ok || l <= c.rule.Length
	}
	return true
}

// isEmpty mirrors the empty-input notion of browser forms: nil, "" and empty
// lists are empty; false is a value.
func isEmpty(value any) bool {
	switch t := value.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []string:
		return len(t) == 0
	}
	return false
}

func length(value any) (int, bool) {
	switch t := value.(type) {
	case string:
		return utf8.RuneCountInString(t), true
	case []string:
		return len(t), true
	}
	return 0, false
}

// leadingNumber matches the longest numeric prefix, the way number inputs
// are read leniently: "12kg" is 12.
var leadingNumber = regexp.MustCompile(`^[+-]?(?:Infinity|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)

func leadingFloat(value any) (float64, bool) {
	s, ok := value.(string)
	if !ok {
		return 0, false
	}
	prefix := leadingNumber.FindString(strings.TrimSpace(s))
	if prefix == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		// Out of range prefixes still carry a sign and magnitude.
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return n, true
		}
		return 0, false
	}
	return n, true
}

func containsKind(kinds []model.RuleKind, kind model.RuleKind) bool {
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}
