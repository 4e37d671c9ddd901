package form

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-jsonform/pkg/model"
)

// FieldState is the live status of one field. Errors lists failing rule kinds
// in rule order; an empty list means the value is valid.
type FieldState struct {
	Value   any              `json:"value"`
	Touched bool             `json:"touched"`
	Errors  []model.RuleKind `json:"errors,omitempty"`
}

// Valid reports whether no rule fails.
func (s FieldState) Valid() bool { return len(s.Errors) == 0 }

// HasError reports whether kind is among the failing rules.
func (s FieldState) HasError(kind model.RuleKind) bool {
	return containsKind(s.Errors, kind)
}

func (s FieldState) clone() FieldState {
	out := FieldState{Value: cloneValue(s.Value), Touched: s.Touched}
	if len(s.Errors) > 0 {
		out.Errors = append([]model.RuleKind(nil), s.Errors...)
	}
	return out
}

// Form is the editable state built from a compiled model.Form.
type Form struct {
	title    string
	fields   []model.Field
	index    map[string]int
	checks   [][]check
	defaults []any
	states   []FieldState

	onChange []ChangeFunc
	onReset  []func()
	logger   zerolog.Logger
}

// New initialises a Form: every field starts at its default value, untouched,
// with errors computed. Defaults are normalised to the stored shape of their
// kind; a default that cannot be, a duplicate key or a bad pattern is an error.
func New(compiled model.Form, opts ...Option) (*Form, error) {
	f := &Form{
		title:    compiled.Title,
		fields:   append([]model.Field(nil), compiled.Fields...),
		index:    make(map[string]int, len(compiled.Fields)),
		checks:   make([][]check, len(compiled.Fields)),
		defaults: make([]any, len(compiled.Fields)),
		states:   make([]FieldState, len(compiled.Fields)),
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}

	for i, field := range f.fields {
		if _, exists := f.index[field.Key]; exists {
			return nil, fmt.Errorf("form: %w: %q", model.ErrDuplicateField, field.Key)
		}
		f.index[field.Key] = i

		checks, err := compileChecks(field)
		if err != nil {
			return nil, fmt.Errorf("form: %w", err)
		}
		f.checks[i] = checks

		def, err := normalize(field.Kind, field.DefaultValue)
		if err != nil {
			return nil, fmt.Errorf("form: default of %q: %w", field.Key, err)
		}
		f.defaults[i] = def
		f.states[i] = FieldState{Value: cloneValue(def), Errors: evaluate(checks, def)}
	}
	return f, nil
}

// OnChange registers fn to run after every mutation of a field.
func (f *Form) OnChange(fn ChangeFunc) {
	if fn != nil {
		f.onChange = append(f.onChange, fn)
	}
}

// OnReset registers fn to run after Reset.
func (f *Form) OnReset(fn func()) {
	if fn != nil {
		f.onReset = append(f.onReset, fn)
	}
}

// Title returns the form title.
func (f *Form) Title() string { return f.title }

// Fields returns the compiled fields in order.
func (f *Form) Fields() []model.Field {
	return append([]model.Field(nil), f.fields...)
}

// Field returns the compiled field for key.
func (f *Form) Field(key string) (model.Field, bool) {
	idx, ok := f.index[key]
	if !ok {
		return model.Field{}, false
	}
	return f.fields[idx], true
}

// State returns a copy of the state of key.
func (f *Form) State(key string) (FieldState, bool) {
	idx, ok := f.index[key]
	if !ok {
		return FieldState{}, false
	}
	return f.states[idx].clone(), true
}

// Value returns a copy of the current value of key.
func (f *Form) Value(key string) (any, bool) {
	idx, ok := f.index[key]
	if !ok {
		return nil, false
	}
	return cloneValue(f.states[idx].Value), true
}

// Values returns every current value keyed by field key.
func (f *Form) Values() map[string]any {
	out := make(map[string]any, len(f.states))
	for i, field := range f.fields {
		out[field.Key] = cloneValue(f.states[i].Value)
	}
	return out
}

// Valid reports whether every enabled field passes all of its rules. Disabled
// fields cannot be edited, so their errors never block the form.
func (f *Form) Valid() bool {
	for idx, st := range f.states {
		if !f.fields[idx].Disabled && !st.Valid() {
			return false
		}
	}
	return true
}

// Invalid reports whether key is touched and failing, the condition under
// which a presentation layer shows its error.
func (f *Form) Invalid(key string) bool {
	idx, ok := f.index[key]
	if !ok {
		return false
	}
	st := f.states[idx]
	return !f.fields[idx].Disabled && st.Touched && !st.Valid()
}

// SetValue replaces the value of key and recomputes its errors. The touched
// flag is left alone.
func (f *Form) SetValue(key string, value any) error {
	idx, ok := f.index[key]
	if !ok {
		return unknownField(key)
	}
	normalized, err := normalize(f.fields[idx].Kind, value)
	if err != nil {
		return fmt.Errorf("form: field %q: %w", key, err)
	}
	f.store(idx, normalized)
	f.changed(idx)
	return nil
}

// MarkTouched flags key as touched so its error message becomes visible.
func (f *Form) MarkTouched(key string) error {
	idx, ok := f.index[key]
	if !ok {
		return unknownField(key)
	}
	if !f.states[idx].Touched {
		f.states[idx].Touched = true
		f.changed(idx)
	}
	return nil
}

// MarkAllTouched flags every field as touched.
func (f *Form) MarkAllTouched() {
	for idx := range f.states {
		if !f.states[idx].Touched {
			f.states[idx].Touched = true
			f.changed(idx)
		}
	}
}

// Reset restores every field to its default, clears touched flags and
// recomputes errors, then notifies OnReset callbacks.
func (f *Form) Reset() {
	for idx := range f.states {
		f.states[idx].Touched = false
		f.store(idx, cloneValue(f.defaults[idx]))
	}
	f.logger.Debug().Int("fields", len(f.states)).Msg("form reset")
	for _, fn := range f.onReset {
		fn()
	}
}

// ToggleOption removes option from the multiselect value of key when present
// and appends it otherwise. Remaining elements keep their order.
func (f *Form) ToggleOption(key, option string) error {
	idx, ok := f.index[key]
	if !ok {
		return unknownField(key)
	}
	if f.fields[idx].Kind != model.KindMultiselect {
		return fmt.Errorf("%w: %q is %s", ErrNotMultiselect, key, f.fields[idx].Kind)
	}

	current, _ := f.states[idx].Value.([]string)
	next := make([]string, 0, len(current)+1)
	removed := false
	for _, v := range current {
		if v == option {
			removed = true
			continue
		}
		next = append(next, v)
	}
	if !removed {
		next = append(next, option)
	}

	f.store(idx, next)
	f.changed(idx)
	return nil
}

// IsOptionSelected reports whether option is part of the multiselect value of
// key. Non-list values and unknown keys count as empty.
func (f *Form) IsOptionSelected(key, option string) bool {
	idx, ok := f.index[key]
	if !ok {
		return false
	}
	current, _ := f.states[idx].Value.([]string)
	for _, v := range current {
		if v == option {
			return true
		}
	}
	return false
}

// Submit returns the record of every field value when the form is valid.
// Otherwise it marks every field touched and returns a *ValidationError.
// Repeated calls without edits yield the same outcome.
func (f *Form) Submit() (Record, error) {
	var failed []FieldErrors
	for idx, st := range f.states {
		if f.fields[idx].Disabled {
			continue
		}
		if !st.Valid() {
			failed = append(failed, FieldErrors{
				Key:    f.fields[idx].Key,
				Errors: append([]model.RuleKind(nil), st.Errors...),
			})
		}
	}
	if len(failed) > 0 {
		f.MarkAllTouched()
		f.logger.Debug().Int("invalid", len(failed)).Msg("form submit rejected")
		return Record{}, &ValidationError{Fields: failed}
	}

	rec := newRecord(len(f.fields))
	for idx, field := range f.fields {
		rec.set(field.Key, cloneValue(f.states[idx].Value))
	}
	return rec, nil
}

func (f *Form) store(idx int, value any) {
	f.states[idx].Value = value
	f.states[idx].Errors = evaluate(f.checks[idx], value)
}

func (f *Form) changed(idx int) {
	key := f.fields[idx].Key
	st := f.states[idx]
	f.logger.Debug().
		Str("field", key).
		Bool("touched", st.Touched).
		Bool("valid", st.Valid()).
		Msg("form field changed")
	for _, fn := range f.onChange {
		fn(key, st.clone())
	}
}
