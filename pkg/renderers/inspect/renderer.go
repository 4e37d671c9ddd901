// Package inspect renders a form as a JSON snapshot of its field models and
// current state. It never prompts, which makes it the renderer of choice for
// scripted runs and for checking how a schema compiles.
package inspect

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/goliatone/go-jsonform/pkg/form"
	"github.com/goliatone/go-jsonform/pkg/model"
	"github.com/goliatone/go-jsonform/pkg/render"
)

// Snapshot is the document produced by Render.
type Snapshot struct {
	Title  string          `json:"title"`
	Valid  bool            `json:"valid"`
	Fields []FieldSnapshot `json:"fields"`
}

// FieldSnapshot pairs a compiled field with its state and the message a
// presentation layer would show for it.
type FieldSnapshot struct {
	model.Field
	State   form.FieldState `json:"state"`
	Message string          `json:"message,omitempty"`
}

// Option configures the renderer.
type Option func(*Renderer)

// WithCompact disables indentation.
func WithCompact() Option {
	return func(r *Renderer) {
		r.compact = true
	}
}

// WithTouchAll marks every field touched before the snapshot so messages
// appear for every invalid field, as they would after a rejected submit.
func WithTouchAll() Option {
	return func(r *Renderer) {
		r.touchAll = true
	}
}

// Renderer implements render.Renderer.
type Renderer struct {
	compact  bool
	touchAll bool
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs an inspect renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string { return "inspect" }

// ContentType reports the encoding of the bytes returned by Render.
func (r *Renderer) ContentType() string { return "application/json" }

// Render snapshots f. With WithTouchAll the form is modified.
func (r *Renderer) Render(ctx context.Context, f *form.Form) ([]byte, error) {
	if f == nil {
		return nil, fmt.Errorf("inspect: form is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.touchAll {
		f.MarkAllTouched()
	}

	snap := Take(f)
	var (
		out []byte
		err error
	)
	if r.compact {
		out, err = json.Marshal(snap)
	} else {
		out, err = json.MarshalIndent(snap, "", "  ")
	}
	if err != nil {
		return nil, fmt.Errorf("inspect: encode snapshot: %w", err)
	}
	return append(out, '\n'), nil
}

// Take builds a Snapshot without encoding it.
func Take(f *form.Form) Snapshot {
	fields := f.Fields()
	snap := Snapshot{
		Title:  f.Title(),
		Valid:  f.Valid(),
		Fields: make([]FieldSnapshot, 0, len(fields)),
	}
	for _, field := range fields {
		state, _ := f.State(field.Key)
		msg, _ := form.Resolve(field, state)
		snap.Fields = append(snap.Fields, FieldSnapshot{
			Field:   field,
			State:   state,
			Message: msg,
		})
	}
	return snap
}
