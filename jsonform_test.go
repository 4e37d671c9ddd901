package jsonform_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	jsonform "github.com/goliatone/go-jsonform"
	"github.com/goliatone/go-jsonform/pkg/form"
	"github.com/goliatone/go-jsonform/pkg/model"
	"github.com/goliatone/go-jsonform/pkg/renderers/inspect"
	"github.com/goliatone/go-jsonform/pkg/schema"
)

func TestCompileDefaultSchema(t *testing.T) {
	f, err := jsonform.Compile(jsonform.DefaultSchema())
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if f.Title() != "User Registration" || len(f.Fields()) != 7 {
		t.Fatalf("unexpected form: title=%q fields=%d", f.Title(), len(f.Fields()))
	}
	if f.Valid() {
		t.Fatalf("fresh registration form should be invalid")
	}
}

func TestCompileRejectsDuplicates(t *testing.T) {
	_, err := jsonform.Compile(schema.Schema{Fields: []schema.FieldDescriptor{
		{Name: "a", Type: "text"},
		{Name: "a", Type: "number"},
	}})
	if !errors.Is(err, model.ErrDuplicateField) {
		t.Fatalf("expected ErrDuplicateField, got %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "survey.yaml")
	if err := os.WriteFile(path, []byte("title: Survey\nfields:\n  - name: rating\n    type: number\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := jsonform.Load(context.Background(), path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := schema.Schema{Title: "Survey", Fields: []schema.FieldDescriptor{{Name: "rating", Type: "number"}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("schema mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadReportsParseLocation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte(`{"fields": [`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := jsonform.Load(context.Background(), path)
	perr, ok := schema.AsParseError(err)
	if !ok {
		t.Fatalf("expected *schema.ParseError, got %v", err)
	}
	if perr.Location != path || perr.Kind != schema.ParseErrorSyntax {
		t.Fatalf("unexpected parse error: %+v", perr)
	}
}

func TestNewRegistryDefaults(t *testing.T) {
	registry, err := jsonform.NewRegistry()
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	if diff := cmp.Diff([]string{"inspect", "tui"}, registry.List()); diff != "" {
		t.Fatalf("renderers mismatch (-want +got):\n%s", diff)
	}
}

func TestFill(t *testing.T) {
	var changes []string
	out, err := jsonform.Fill(context.Background(), schema.Schema{
		Fields: []schema.FieldDescriptor{{Name: "ok", Type: "checkbox", Value: true}},
	}, inspect.New(inspect.WithCompact()), form.WithChangeHandler(func(key string, _ form.FieldState) {
		changes = append(changes, key)
	}))
	if err != nil {
		t.Fatalf("fill: %v", err)
	}
	snap := string(out)
	if want := `"valid":true`; !strings.Contains(snap, want) {
		t.Fatalf("expected %s in %s", want, snap)
	}
	if len(changes) != 0 {
		t.Fatalf("inspect should not change values, got %v", changes)
	}
}

func TestFillNilRenderer(t *testing.T) {
	if _, err := jsonform.Fill(context.Background(), schema.Schema{}, nil); err == nil {
		t.Fatalf("expected error")
	}
}
