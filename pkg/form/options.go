package form

import "github.com/rs/zerolog"

// ChangeFunc observes a field after a mutation. It runs synchronously and
// receives a copy of the new state.
type ChangeFunc func(key string, state FieldState)

// Option configures a Form.
type Option func(*Form)

// WithLogger sets the logger used for debug traces of state changes.
func WithLogger(logger zerolog.Logger) Option {
	return func(f *Form) {
		f.logger = logger
	}
}

// WithChangeHandler registers fn as an OnChange callback.
func WithChangeHandler(fn ChangeFunc) Option {
	return func(f *Form) {
		f.OnChange(fn)
	}
}

// WithResetHandler registers fn as an OnReset callback.
func WithResetHandler(fn func()) Option {
	return func(f *Form) {
		f.OnReset(fn)
	}
}
