package tui

import (
	"github.com/rs/zerolog"

	"github.com/goliatone/go-jsonform/pkg/form"
)

// Theme holds the prefixes used when printing messages.
type Theme struct {
	RequiredMark string
	InfoPrefix   string
	ErrorPrefix  string
}

// DefaultTheme is used unless WithTheme overrides it.
var DefaultTheme = Theme{
	RequiredMark: " *",
	InfoPrefix:   "  ",
	ErrorPrefix:  "  ✘ ",
}

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by the renderer.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutputFormat selects how the submitted record is encoded.
func WithOutputFormat(format form.Format) Option {
	return func(r *Renderer) {
		if format != "" {
			r.format = format
		}
	}
}

// WithTheme applies message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		r.theme = theme
	}
}

// WithMaxAttempts caps how often a single field is re-asked while its answer
// is invalid, and how many correction rounds follow a rejected submit.
func WithMaxAttempts(n int) Option {
	return func(r *Renderer) {
		if n > 0 {
			r.maxAttempts = n
		}
	}
}

// WithLogger sets the logger for prompt traces.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Renderer) {
		r.logger = logger
	}
}
