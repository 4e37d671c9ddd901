// Package tui drives a form from an interactive terminal. Fields are asked in
// order with a prompt matching their kind; every answer goes through the
// form's own operations so rule evaluation and error messages stay in one
// place. Once all fields are answered the form is submitted and the record is
// encoded in the configured format.
package tui

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-jsonform/pkg/form"
	"github.com/goliatone/go-jsonform/pkg/model"
	"github.com/goliatone/go-jsonform/pkg/render"
)

const defaultMaxAttempts = 3

// Renderer implements render.Renderer for terminal sessions.
type Renderer struct {
	driver      PromptDriver
	format      form.Format
	theme       Theme
	maxAttempts int
	logger      zerolog.Logger
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) *Renderer {
	r := &Renderer{
		format:      form.FormatJSON,
		theme:       DefaultTheme,
		maxAttempts: defaultMaxAttempts,
		logger:      zerolog.Nop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	if r.driver == nil {
		r.driver = NewSurveyDriver(nil)
	}
	return r
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the encoding of the bytes returned by Render.
func (r *Renderer) ContentType() string {
	return contentType(r.format)
}

func contentType(format form.Format) string {
	switch format {
	case form.FormatForm:
		return "application/x-www-form-urlencoded"
	case form.FormatPretty:
		return "text/plain"
	default:
		return "application/json"
	}
}

// Render asks for every enabled field, submits the form and returns the
// encoded record. A rejected submit shows the messages and re-asks the failing
// fields; after the configured number of rounds the *form.ValidationError is
// returned.
func (r *Renderer) Render(ctx context.Context, f *form.Form) ([]byte, error) {
	if f == nil {
		return nil, ErrNilForm
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if title := f.Title(); title != "" {
		if err := r.driver.Info(ctx, title); err != nil {
			return nil, err
		}
	}
	for _, field := range f.Fields() {
		if err := r.askField(ctx, f, field); err != nil {
			return nil, err
		}
	}

	for round := 1; ; round++ {
		rec, err := f.Submit()
		if err == nil {
			return rec.Encode(r.format)
		}
		verr, ok := form.AsValidationError(err)
		if !ok || round >= r.maxAttempts {
			return nil, err
		}
		r.logger.Debug().Int("round", round).Int("invalid", len(verr.Fields)).Msg("tui submit rejected")
		for _, failed := range verr.Fields {
			field, _ := f.Field(failed.Key)
			if field.Disabled {
				continue
			}
			if err := r.showError(ctx, f, field); err != nil {
				return nil, err
			}
			if err := r.askField(ctx, f, field); err != nil {
				return nil, err
			}
		}
	}
}

// askField prompts until the field has no visible error or the attempts run
// out.
func (r *Renderer) askField(ctx context.Context, f *form.Form, field model.Field) error {
	if field.Disabled {
		value, _ := f.Value(field.Key)
		return r.driver.Info(ctx, fmt.Sprintf("%s%s: %s (disabled)", r.theme.InfoPrefix, field.Label, display(value)))
	}

	for attempt := 1; ; attempt++ {
		if err := r.ask(ctx, f, field); err != nil {
			return err
		}
		if err := f.MarkTouched(field.Key); err != nil {
			return err
		}
		if _, invalid := f.ErrorMessage(field.Key); !invalid || attempt >= r.maxAttempts {
			return nil
		}
		if err := r.showError(ctx, f, field); err != nil {
			return err
		}
	}
}

func (r *Renderer) showError(ctx context.Context, f *form.Form, field model.Field) error {
	msg, ok := f.ErrorMessage(field.Key)
	if !ok {
		return nil
	}
	return r.driver.Info(ctx, r.theme.ErrorPrefix+msg)
}

// ask shows the prompt matching the field kind and writes the answer back.
func (r *Renderer) ask(ctx context.Context, f *form.Form, field model.Field) error {
	current, _ := f.Value(field.Key)
	message := field.Label
	if field.Required {
		message += r.theme.RequiredMark
	}

	switch field.Kind {
	case model.KindCheckbox:
		checked, _ := current.(bool)
		answer, err := r.driver.Confirm(ctx, YesNoPrompt{Message: message, Default: checked, Help: field.Placeholder})
		if err != nil {
			return err
		}
		return f.SetValue(field.Key, answer)

	case model.KindSelect, model.KindRadio:
		if len(field.Options) == 0 {
			return r.askText(ctx, f, field, message, current)
		}
		labels, values := optionLists(field.Options)
		selected, _ := current.(string)
		idx, err := r.driver.Select(ctx, ChoicePrompt{
			Message:      message,
			Options:      labels,
			DefaultIndex: optionPosition(values, selected),
			Help:         field.Placeholder,
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(values) {
			return f.SetValue(field.Key, "")
		}
		return f.SetValue(field.Key, values[idx])

	case model.KindMultiselect:
		return r.askMultiselect(ctx, f, field, message)

	case model.KindPassword:
		text, _ := current.(string)
		answer, err := r.driver.Password(ctx, TextPrompt{Message: message, Default: text, Help: field.Placeholder})
		if err != nil {
			return err
		}
		return f.SetValue(field.Key, answer)

	case model.KindTextarea:
		text, _ := current.(string)
		answer, err := r.driver.TextArea(ctx, MultilinePrompt{Message: message, Default: text, Help: field.Placeholder})
		if err != nil {
			return err
		}
		return f.SetValue(field.Key, answer)

	case model.KindText, model.KindEmail, model.KindNumber, model.KindDate:
		return r.askText(ctx, f, field, message, current)
	default:
		return r.askText(ctx, f, field, message, current)
	}
}

func (r *Renderer) askText(ctx context.Context, f *form.Form, field model.Field, message string, current any) error {
	text, _ := current.(string)
	help := field.Placeholder
	if field.Kind == model.KindDate && help == "" {
		help = "YYYY-MM-DD"
	}
	answer, err := r.driver.Input(ctx, TextPrompt{Message: message, Default: text, Help: help})
	if err != nil {
		return err
	}
	return f.SetValue(field.Key, answer)
}

// askMultiselect translates the picked indices into ToggleOption calls so the
// stored order follows the form's append semantics: kept values stay in
// place, deselected ones are removed and new ones are appended.
func (r *Renderer) askMultiselect(ctx context.Context, f *form.Form, field model.Field, message string) error {
	labels, values := optionLists(field.Options)

	var defaults []int
	for i, v := range values {
		if f.IsOptionSelected(field.Key, v) {
			defaults = append(defaults, i)
		}
	}

	picked, err := r.driver.MultiSelect(ctx, ChoicePrompt{
		Message:  message,
		Options:  labels,
		Defaults: defaults,
		Help:     field.Placeholder,
	})
	if err != nil {
		return err
	}

	want := make(map[string]bool, len(picked))
	for _, idx := range picked {
		if idx >= 0 && idx < len(values) {
			want[values[idx]] = true
		}
	}

	current, _ := f.Value(field.Key)
	selected, _ := current.([]string)
	for _, v := range selected {
		if !want[v] {
			if err := f.ToggleOption(field.Key, v); err != nil {
				return err
			}
		}
	}
	for _, v := range values {
		if want[v] && !f.IsOptionSelected(field.Key, v) {
			if err := f.ToggleOption(field.Key, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func optionLists(options []model.Option) (labels, values []string) {
	labels = make([]string, len(options))
	values = make([]string, len(options))
	for i, opt := range options {
		labels[i] = opt.Label
		values[i] = opt.Value
	}
	return labels, values
}

func display(value any) string {
	switch v := value.(type) {
	case []string:
		return fmt.Sprintf("%v", v)
	case string:
		if v == "" {
			return "-"
		}
		return v
	default:
		return fmt.Sprint(v)
	}
}
