package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// TextPrompt asks for one line of text. Default is the field's current value.
type TextPrompt struct {
	Message string
	Default string
	Help    string
}

// YesNoPrompt asks for a checkbox value.
type YesNoPrompt struct {
	Message string
	Default bool
	Help    string
}

// ChoicePrompt lists option labels for select, radio and multiselect fields.
type ChoicePrompt struct {
	Message      string
	Options      []string
	DefaultIndex int   // select and radio; -1 when nothing is chosen
	Defaults     []int // multiselect; positions in Options
	Help         string
	PageSize     int
}

// MultilinePrompt asks for textarea content.
type MultilinePrompt struct {
	Message string
	Default string
	Help    string
}

// PromptDriver is the terminal the renderer talks to. Answers come back as
// raw text or option positions; the renderer maps them onto the form.
type PromptDriver interface {
	Input(ctx context.Context, p TextPrompt) (string, error)
	Password(ctx context.Context, p TextPrompt) (string, error)
	Confirm(ctx context.Context, p YesNoPrompt) (bool, error)
	Select(ctx context.Context, p ChoicePrompt) (int, error)
	MultiSelect(ctx context.Context, p ChoicePrompt) ([]int, error)
	TextArea(ctx context.Context, p MultilinePrompt) (string, error)
	Info(ctx context.Context, msg string) error
}

type surveyDriver struct {
	out  io.Writer
	opts []survey.AskOpt
}

// NewSurveyDriver prompts on the controlling terminal. Info lines are written
// to out, falling back to stdout.
func NewSurveyDriver(out io.Writer, opts ...survey.AskOpt) PromptDriver {
	if out == nil {
		out = os.Stdout
	}
	return &surveyDriver{out: out, opts: opts}
}

// ask runs one survey prompt unless ctx is already done. Ctrl-C surfaces as
// ErrAborted.
func (d *surveyDriver) ask(ctx context.Context, prompt survey.Prompt, answer any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := survey.AskOne(prompt, answer, d.opts...)
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}

func (d *surveyDriver) Input(ctx context.Context, p TextPrompt) (string, error) {
	var text string
	err := d.ask(ctx, &survey.Input{Message: p.Message, Help: p.Help, Default: p.Default}, &text)
	return text, err
}

func (d *surveyDriver) Password(ctx context.Context, p TextPrompt) (string, error) {
	var secret string
	if err := d.ask(ctx, &survey.Password{Message: p.Message, Help: p.Help}, &secret); err != nil {
		return "", err
	}
	// Pressing enter keeps the stored password.
	if secret == "" {
		return p.Default, nil
	}
	return secret, nil
}

func (d *surveyDriver) Confirm(ctx context.Context, p YesNoPrompt) (bool, error) {
	var yes bool
	err := d.ask(ctx, &survey.Confirm{Message: p.Message, Help: p.Help, Default: p.Default}, &yes)
	return yes, err
}

func (d *surveyDriver) Select(ctx context.Context, p ChoicePrompt) (int, error) {
	prompt := &survey.Select{Message: p.Message, Options: p.Options, Help: p.Help}
	if p.PageSize > 0 {
		prompt.PageSize = p.PageSize
	}
	if p.DefaultIndex >= 0 && p.DefaultIndex < len(p.Options) {
		prompt.Default = p.Options[p.DefaultIndex]
	}
	var chosen string
	if err := d.ask(ctx, prompt, &chosen); err != nil {
		return 0, err
	}
	return optionPosition(p.Options, chosen), nil
}

func (d *surveyDriver) MultiSelect(ctx context.Context, p ChoicePrompt) ([]int, error) {
	prompt := &survey.MultiSelect{Message: p.Message, Options: p.Options, Help: p.Help}
	if p.PageSize > 0 {
		prompt.PageSize = p.PageSize
	}
	if preset := optionLabels(p.Options, p.Defaults); len(preset) > 0 {
		prompt.Default = preset
	}
	var chosen []string
	if err := d.ask(ctx, prompt, &chosen); err != nil {
		return nil, err
	}
	positions := make([]int, 0, len(chosen))
	for _, label := range chosen {
		if i := optionPosition(p.Options, label); i >= 0 {
			positions = append(positions, i)
		}
	}
	return positions, nil
}

func (d *surveyDriver) TextArea(ctx context.Context, p MultilinePrompt) (string, error) {
	var text string
	err := d.ask(ctx, &survey.Multiline{Message: p.Message, Help: p.Help, Default: p.Default}, &text)
	return text, err
}

func (d *surveyDriver) Info(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(d.out, msg)
	return err
}

func optionPosition(options []string, label string) int {
	for i, option := range options {
		if option == label {
			return i
		}
	}
	return -1
}

func optionLabels(options []string, positions []int) []string {
	var labels []string
	for _, i := range positions {
		if i >= 0 && i < len(options) {
			labels = append(labels, options[i])
		}
	}
	return labels
}
