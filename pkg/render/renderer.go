// Package render defines the contract shared by presentation layers that
// drive a form: an interactive terminal walks the fields and writes answers
// back, a non-interactive inspector dumps field models and state. Renderers
// are looked up by name through a Registry.
package render

import (
	"context"

	"github.com/goliatone/go-jsonform/pkg/form"
)

// Renderer presents a form and returns its output. Interactive renderers
// mutate f through its public operations; callers serialise access.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, f *form.Form) ([]byte, error)
}

// RendererFunc adapts a function into a Renderer.
type RendererFunc struct {
	RendererName string
	Type         string
	Fn           func(ctx context.Context, f *form.Form) ([]byte, error)
}

func (r RendererFunc) Name() string        { return r.RendererName }
func (r RendererFunc) ContentType() string { return r.Type }

func (r RendererFunc) Render(ctx context.Context, f *form.Form) ([]byte, error) {
	return r.Fn(ctx, f)
}
