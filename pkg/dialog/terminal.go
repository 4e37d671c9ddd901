package dialog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// Terminal implements Dialog on an interactive terminal using survey prompts.
type Terminal struct {
	out         io.Writer
	askOpts     []survey.AskOpt
	acknowledge bool
	editor      string
}

// TerminalOption configures a Terminal.
type TerminalOption func(*Terminal)

// WithOutput redirects notifications to w.
func WithOutput(w io.Writer) TerminalOption {
	return func(t *Terminal) {
		if w != nil {
			t.out = w
		}
	}
}

// WithStdio routes prompts through the given streams; notifications follow
// out.
func WithStdio(in terminal.FileReader, out terminal.FileWriter, errw io.Writer) TerminalOption {
	return func(t *Terminal) {
		t.askOpts = append(t.askOpts, survey.WithStdio(in, out, errw))
		t.out = out
	}
}

// WithAcknowledge makes every notification wait for the user to confirm.
func WithAcknowledge(enabled bool) TerminalOption {
	return func(t *Terminal) {
		t.acknowledge = enabled
	}
}

// WithEditor sets the editor command used by PromptJSON; survey falls back to
// $VISUAL, $EDITOR and then a platform default.
func WithEditor(cmd string) TerminalOption {
	return func(t *Terminal) {
		t.editor = cmd
	}
}

// NewTerminal constructs a Terminal writing to stdout.
func NewTerminal(options ...TerminalOption) *Terminal {
	t := &Terminal{out: os.Stdout}
	for _, opt := range options {
		if opt != nil {
			opt(t)
		}
	}
	return t
}

var _ Dialog = (*Terminal)(nil)

func (t *Terminal) Alert(ctx context.Context, message, title string) (bool, error) {
	return t.show(ctx, "!", message, title)
}

func (t *Terminal) Success(ctx context.Context, message, title string) (bool, error) {
	return t.show(ctx, "✔", message, title)
}

func (t *Terminal) Error(ctx context.Context, message, title string) (bool, error) {
	return t.show(ctx, "✘", message, title)
}

func (t *Terminal) show(ctx context.Context, mark, message, title string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if _, err := fmt.Fprintf(t.out, "%s %s\n", mark, title); err != nil {
		return false, err
	}
	for _, line := range strings.Split(PlainText(message), "\n") {
		if _, err := fmt.Fprintf(t.out, "  %s\n", line); err != nil {
			return false, err
		}
	}
	if !t.acknowledge {
		return true, nil
	}

	ack := true
	if err := survey.AskOne(&survey.Confirm{Message: "OK", Default: true}, &ack, t.askOpts...); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return false, nil
		}
		return false, err
	}
	return ack, nil
}

// PromptJSON opens the schema text in an editor, prefilled with defaultValue.
// Cancelling with Ctrl+C or saving an empty buffer reports ok=false.
func (t *Terminal) PromptJSON(ctx context.Context, message, title, defaultValue string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	prompt := &survey.Editor{
		Message:       strings.TrimSpace(title + ": " + PlainText(message)),
		Default:       defaultValue,
		HideDefault:   true,
		AppendDefault: true,
		Editor:        t.editor,
		FileName:      "*.json",
	}

	var out string
	if err := survey.AskOne(prompt, &out, t.askOpts...); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("dialog: prompt json: %w", err)
	}
	if strings.TrimSpace(out) == "" {
		return "", false, nil
	}
	return out, true, nil
}
