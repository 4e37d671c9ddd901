package session

import (
	"github.com/rs/zerolog"

	"github.com/goliatone/go-jsonform/pkg/dialog"
	"github.com/goliatone/go-jsonform/pkg/form"
	"github.com/goliatone/go-jsonform/pkg/model"
	"github.com/goliatone/go-jsonform/pkg/schema"
)

// Option configures a Session.
type Option func(*Session)

// WithCompiler replaces the default compiler.
func WithCompiler(compiler model.Compiler) Option {
	return func(s *Session) {
		if compiler != nil {
			s.compiler = compiler
		}
	}
}

// WithLoader sets the loader used by Load.
func WithLoader(loader schema.Loader) Option {
	return func(s *Session) {
		s.loader = loader
	}
}

// WithNotifier routes submit and schema notifications to n.
func WithNotifier(n dialog.Notifier) Option {
	return func(s *Session) {
		s.notifier = n
	}
}

// WithCatalog overrides the message catalog.
func WithCatalog(catalog *dialog.Catalog) Option {
	return func(s *Session) {
		if catalog != nil {
			s.catalog = catalog
		}
	}
}

// WithLogger sets the session logger. The logger is also handed to every form
// the session builds.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithFormOptions appends options applied to every form the session builds.
func WithFormOptions(options ...form.Option) Option {
	return func(s *Session) {
		s.formOpts = append(s.formOpts, options...)
	}
}

// WithRecompileHandler registers fn as an OnRecompile callback.
func WithRecompileHandler(fn func(*form.Form)) Option {
	return func(s *Session) {
		if fn != nil {
			s.onRecompile = append(s.onRecompile, fn)
		}
	}
}

// WithSubmitHandler registers fn to receive every accepted record.
func WithSubmitHandler(fn func(form.Record)) Option {
	return func(s *Session) {
		if fn != nil {
			s.onSubmit = append(s.onSubmit, fn)
		}
	}
}
