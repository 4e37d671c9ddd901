package openapi

import "github.com/rs/zerolog"

// Options configures Import.
type Options struct {
	// Validate runs the kin-openapi document validator before extraction.
	Validate bool
	// ExternalRefs allows $ref pointers to other documents.
	ExternalRefs bool
	// MediaTypes lists the request body content types tried in order. The
	// first entry present in the operation wins; when none match, any
	// available content type is used.
	MediaTypes []string
	Logger     zerolog.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithValidation toggles document validation.
func WithValidation(enabled bool) Option {
	return func(opts *Options) {
		opts.Validate = enabled
	}
}

// WithExternalRefs toggles loading of external references.
func WithExternalRefs(enabled bool) Option {
	return func(opts *Options) {
		opts.ExternalRefs = enabled
	}
}

// WithMediaTypes overrides the request body content type preference.
func WithMediaTypes(types ...string) Option {
	return func(opts *Options) {
		if len(types) > 0 {
			opts.MediaTypes = append([]string(nil), types...)
		}
	}
}

// WithLogger sets the logger used to report skipped properties.
func WithLogger(logger zerolog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// NewOptions applies options over the defaults.
func NewOptions(options ...Option) Options {
	cfg := Options{
		Validate:   true,
		MediaTypes: []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"},
		Logger:     zerolog.Nop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
