// Package jsonform turns declarative JSON form schemas into live forms: the
// schema is compiled into field models, the form tracks per-field values and
// validity, and a renderer presents it. The helpers here wire the public
// packages together for the common paths.
package jsonform

import (
	"context"
	"fmt"

	internalloader "github.com/goliatone/go-jsonform/internal/schema/loader"
	"github.com/goliatone/go-jsonform/pkg/form"
	"github.com/goliatone/go-jsonform/pkg/model"
	"github.com/goliatone/go-jsonform/pkg/render"
	"github.com/goliatone/go-jsonform/pkg/renderers/inspect"
	"github.com/goliatone/go-jsonform/pkg/renderers/tui"
	"github.com/goliatone/go-jsonform/pkg/schema"
	"github.com/goliatone/go-jsonform/pkg/session"
)

// NewLoader constructs a schema loader using the internal implementation while
// keeping the concrete type hidden from consumers.
func NewLoader(options ...schema.LoaderOption) schema.Loader {
	return internalloader.New(schema.NewLoaderOptions(options...))
}

// Parse decodes a JSON or YAML schema.
func Parse(raw []byte) (schema.Schema, error) {
	return schema.Parse(raw)
}

// DefaultSchema returns the built-in "User Registration" schema.
func DefaultSchema() schema.Schema {
	return schema.Default()
}

// Load resolves ref (a path or http(s) URL), fetches it and parses the result.
func Load(ctx context.Context, ref string, options ...schema.LoaderOption) (schema.Schema, error) {
	src, err := schema.ResolveSource(ref)
	if err != nil {
		return schema.Schema{}, err
	}
	doc, err := NewLoader(options...).Load(ctx, src)
	if err != nil {
		return schema.Schema{}, err
	}
	return schema.ParseDocument(doc)
}

// Compile builds a form from s with the default compiler.
func Compile(s schema.Schema, options ...form.Option) (*form.Form, error) {
	compiled, err := model.NewCompiler().Compile(s)
	if err != nil {
		return nil, err
	}
	return form.New(compiled, options...)
}

// NewSession exposes the session constructor from the top-level module.
func NewSession(s schema.Schema, options ...session.Option) (*session.Session, error) {
	return session.New(s, options...)
}

// NewRegistry returns a registry holding renderers, or the built-in tui and
// inspect renderers when none are given.
func NewRegistry(renderers ...render.Renderer) (*render.Registry, error) {
	if len(renderers) == 0 {
		renderers = []render.Renderer{tui.New(), inspect.New()}
	}
	return render.NewRegistry(renderers...)
}

// Fill compiles s and hands the form to renderer, returning its output.
func Fill(ctx context.Context, s schema.Schema, renderer render.Renderer, options ...form.Option) ([]byte, error) {
	if renderer == nil {
		return nil, fmt.Errorf("jsonform: renderer is nil")
	}
	f, err := Compile(s, options...)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, f)
}
