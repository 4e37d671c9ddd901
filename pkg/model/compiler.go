package model

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-jsonform/internal/model"
	"github.com/goliatone/go-jsonform/pkg/schema"
)

// Compiler converts schemas into compiled forms.
type Compiler interface {
	Compile(s schema.Schema) (Form, error)
}

// CompilerOption configures the compiler behaviour.
type CompilerOption func(*compilerOptions)

type compilerOptions struct {
	labeler    func(string) string
	logger     *zerolog.Logger
	decorators []Decorator
}

// WithLabeler overrides the label generated for descriptors without one.
func WithLabeler(labeler func(string) string) CompilerOption {
	return func(opts *compilerOptions) {
		opts.labeler = labeler
	}
}

// WithLogger routes compiler warnings (unknown field types) to logger.
func WithLogger(logger zerolog.Logger) CompilerOption {
	return func(opts *compilerOptions) {
		opts.logger = &logger
	}
}

// WithDecorators appends decorators run, in order, on every compiled form.
func WithDecorators(decorators ...Decorator) CompilerOption {
	return func(opts *compilerOptions) {
		for _, d := range decorators {
			if d != nil {
				opts.decorators = append(opts.decorators, d)
			}
		}
	}
}

// NewCompiler returns a Compiler backed by the internal implementation.
func NewCompiler(options ...CompilerOption) Compiler {
	cfg := compilerOptions{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	base := model.New(model.Options{
		Labeler: cfg.labeler,
		Logger:  cfg.logger,
	})
	if len(cfg.decorators) == 0 {
		return base
	}
	return &decoratingCompiler{base: base, decorators: cfg.decorators}
}

type decoratingCompiler struct {
	base       Compiler
	decorators []Decorator
}

func (c *decoratingCompiler) Compile(s schema.Schema) (Form, error) {
	form, err := c.base.Compile(s)
	if err != nil {
		return Form{}, err
	}
	for _, d := range c.decorators {
		if err := d.Decorate(&form); err != nil {
			return Form{}, fmt.Errorf("compile: decorate: %w", err)
		}
	}
	return form, nil
}
