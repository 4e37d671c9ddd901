package render_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-jsonform/pkg/form"
	"github.com/goliatone/go-jsonform/pkg/render"
)

func stub(name string) render.Renderer {
	return render.RendererFunc{
		RendererName: name,
		Type:         "text/plain",
		Fn: func(context.Context, *form.Form) ([]byte, error) {
			return []byte(name), nil
		},
	}
}

func TestRegistry(t *testing.T) {
	reg, err := render.NewRegistry(stub("tui"), stub("inspect"))
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}

	if diff := cmp.Diff([]string{"inspect", "tui"}, reg.List()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	r, err := reg.Get("tui")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	out, err := r.Render(context.Background(), nil)
	if err != nil || string(out) != "tui" {
		t.Fatalf("render = (%q, %v)", out, err)
	}

	if _, err := reg.Get("html"); !errors.Is(err, render.ErrRendererNotFound) {
		t.Fatalf("expected ErrRendererNotFound, got %v", err)
	}
	if err := reg.Register(stub("tui")); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if err := reg.Register(stub("")); err == nil {
		t.Fatalf("expected error for unnamed renderer")
	}
}
