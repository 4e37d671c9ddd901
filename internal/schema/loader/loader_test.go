package loader

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-jsonform/pkg/schema"
)

const sample = `{"fields":[{"name":"a","type":"text"}]}`

func TestLoader_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "form.json")
	if err := os.WriteFile(path, []byte(sample), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	doc, err := New(schema.NewLoaderOptions()).Load(context.Background(), schema.SourceFromFile(path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(doc.Raw()) != sample {
		t.Fatalf("raw = %q", doc.Raw())
	}
	if doc.Location() != path {
		t.Fatalf("location = %q", doc.Location())
	}
}

func TestLoader_FS(t *testing.T) {
	files := fstest.MapFS{"forms/a.yaml": {Data: []byte("fields: []")}}
	l := New(schema.NewLoaderOptions(schema.WithFileSystem(files)))

	doc, err := l.Load(context.Background(), schema.SourceFromFS("forms/a.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(doc.Raw()) != "fields: []" {
		t.Fatalf("raw = %q", doc.Raw())
	}

	if _, err := l.Load(context.Background(), schema.SourceFromFS("missing.json")); err == nil {
		t.Fatalf("expected error for missing entry")
	}
}

func TestLoader_HTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(sample))
	}))
	defer srv.Close()

	disabled := New(schema.NewLoaderOptions())
	if _, err := disabled.Load(context.Background(), schema.SourceFromURL(srv.URL+"/form")); !errors.Is(err, ErrHTTPDisabled) {
		t.Fatalf("expected ErrHTTPDisabled, got %v", err)
	}

	l := New(schema.NewLoaderOptions(schema.WithHTTPClient(srv.Client())))
	doc, err := l.Load(context.Background(), schema.SourceFromURL(srv.URL+"/form"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(doc.Raw()) != sample {
		t.Fatalf("raw = %q", doc.Raw())
	}

	if _, err := l.Load(context.Background(), schema.SourceFromURL(srv.URL+"/missing")); err == nil {
		t.Fatalf("expected status error")
	}
}

func TestLoader_RejectsInlineAndCancelled(t *testing.T) {
	l := New(schema.NewLoaderOptions())
	if _, err := l.Load(context.Background(), schema.SourceInline("editor")); !errors.Is(err, ErrUnsupportedSource) {
		t.Fatalf("expected ErrUnsupportedSource, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := l.Load(ctx, schema.SourceFromFile("form.json")); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
