package model

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/goliatone/go-jsonform/pkg/schema"
)

var (
	// ErrFieldNameMissing reports a descriptor without a name.
	ErrFieldNameMissing = errors.New("compile: field name is required")
	// ErrDuplicateField reports two descriptors sharing a name.
	ErrDuplicateField = errors.New("compile: duplicate field name")
	// ErrInvalidPattern reports a validation pattern that is not a valid
	// regular expression.
	ErrInvalidPattern = errors.New("compile: invalid validation pattern")
)

// validateSchema rejects schemas the compiler cannot turn into a consistent
// field list. It runs before any field is compiled so failures never yield a
// partial form.
func validateSchema(s schema.Schema) error {
	seen := make(map[string]int, len(s.Fields))
	for idx, desc := range s.Fields {
		name := desc.Name
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w (field #%d)", ErrFieldNameMissing, idx)
		}
		if first, exists := seen[name]; exists {
			return fmt.Errorf("%w: %q (fields #%d and #%d)", ErrDuplicateField, name, first, idx)
		}
		seen[name] = idx

		if desc.Validation != nil && desc.Validation.Pattern != "" {
			if _, err := regexp.Compile(AnchorPattern(desc.Validation.Pattern)); err != nil {
				return fmt.Errorf("%w: field %q: %v", ErrInvalidPattern, name, err)
			}
		}
	}
	return nil
}

// AnchorPattern wraps expr with ^ and $ unless it already starts or ends with
// them, so a pattern must match the whole value.
func AnchorPattern(expr string) string {
	var b strings.Builder
	b.Grow(len(expr) + 2)
	if !strings.HasPrefix(expr, "^") {
		b.WriteByte('^')
	}
	b.WriteString(expr)
	if !strings.HasSuffix(expr, "$") {
		b.WriteByte('$')
	}
	return b.String()
}
