package form

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-jsonform/pkg/model"
)

var (
	// ErrUnknownField is returned when a key does not name a field of the form.
	ErrUnknownField = errors.New("form: unknown field")
	// ErrNotMultiselect is returned by ToggleOption on non-multiselect fields.
	ErrNotMultiselect = errors.New("form: field is not a multiselect")
	// ErrValueShape is returned when a value cannot be stored for a field kind.
	ErrValueShape = errors.New("form: value does not fit field kind")
	// ErrInvalid is wrapped by *ValidationError.
	ErrInvalid = errors.New("form: invalid")
)

// FieldErrors pairs a field key with its failing rules.
type FieldErrors struct {
	Key    string
	Errors []model.RuleKind
}

// ValidationError is returned by Submit when at least one field fails a rule.
// Fields lists the failing fields in form order.
type ValidationError struct {
	Fields []FieldErrors
}

func (e *ValidationError) Error() string {
	keys := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		keys[i] = f.Key
	}
	noun := "fields"
	if len(keys) == 1 {
		noun = "field"
	}
	return fmt.Sprintf("form: %d invalid %s: %s", len(keys), noun, strings.Join(keys, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrInvalid }

// AsValidationError extracts a *ValidationError from err.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

func unknownField(key string) error {
	return fmt.Errorf("%w: %q", ErrUnknownField, key)
}
