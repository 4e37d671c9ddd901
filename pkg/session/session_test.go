package session_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-jsonform/internal/schema/loader"
	"github.com/goliatone/go-jsonform/pkg/dialog"
	"github.com/goliatone/go-jsonform/pkg/form"
	"github.com/goliatone/go-jsonform/pkg/model"
	"github.com/goliatone/go-jsonform/pkg/schema"
	"github.com/goliatone/go-jsonform/pkg/session"
)

const contactJSON = `{
  "title": "Contact",
  "fields": [
    {"label": "Email", "name": "email", "type": "email", "required": true}
  ]
}`

func newSession(t *testing.T, options ...session.Option) (*session.Session, *dialog.Recorder) {
	t.Helper()
	rec := dialog.NewRecorder()
	opts := append([]session.Option{session.WithNotifier(rec)}, options...)
	sess, err := session.New(schema.Default(), opts...)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	t.Cleanup(func() { _ = sess.Close() })
	return sess, rec
}

func TestNew_RejectsUncompilableSchema(t *testing.T) {
	_, err := session.New(schema.Schema{Fields: []schema.FieldDescriptor{
		{Name: "a", Type: "text"}, {Name: "a", Type: "text"},
	}})
	if !errors.Is(err, model.ErrDuplicateField) {
		t.Fatalf("expected ErrDuplicateField, got %v", err)
	}
}

func TestLoadText_ReplacesForm(t *testing.T) {
	var recompiled []string
	sess, rec := newSession(t, session.WithRecompileHandler(func(f *form.Form) {
		recompiled = append(recompiled, f.Title())
	}))
	before := sess.Form()

	if err := sess.LoadText(context.Background(), []byte(contactJSON)); err != nil {
		t.Fatalf("load text: %v", err)
	}

	after := sess.Form()
	if after == before {
		t.Fatalf("form was not replaced")
	}
	if after.Title() != "Contact" || len(after.Fields()) != 1 {
		t.Fatalf("unexpected form %q with %d fields", after.Title(), len(after.Fields()))
	}
	if diff := cmp.Diff([]string{"Contact"}, recompiled); diff != "" {
		t.Fatalf("recompile callbacks mismatch (-want +got):\n%s", diff)
	}

	last, _ := rec.Last()
	if last.Kind != dialog.KindSuccess || last.Title != dialog.TitleSuccess {
		t.Fatalf("unexpected notification %+v", last)
	}
}

func TestLoadText_BrokenTextKeepsForm(t *testing.T) {
	sess, rec := newSession(t)
	before := sess.Form()
	_ = before.SetValue("fullName", "Ada")

	cases := map[string]string{
		"syntax":    `{"fields": [`,
		"shape":     `{"title": "no fields"}`,
		"duplicate": `{"fields": [{"name": "a", "type": "text"}, {"name": "a", "type": "text"}]}`,
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			if err := sess.LoadText(context.Background(), []byte(text)); err == nil {
				t.Fatalf("expected error")
			}
			if sess.Form() != before {
				t.Fatalf("form was replaced")
			}
			if v, _ := sess.Form().Value("fullName"); v != "Ada" {
				t.Fatalf("state lost: %#v", v)
			}
			last, _ := rec.Last()
			if last.Kind != dialog.KindError || last.Title != dialog.TitleParseError {
				t.Fatalf("unexpected notification %+v", last)
			}
		})
	}

	if err := sess.LoadText(context.Background(), []byte(`{`)); !errors.Is(err, schema.ErrSchemaParse) {
		t.Fatalf("expected ErrSchemaParse, got %v", err)
	}
}

func TestSubmit(t *testing.T) {
	var records []form.Record
	sess, rec := newSession(t, session.WithSubmitHandler(func(r form.Record) {
		records = append(records, r)
	}))
	ctx := context.Background()

	if _, err := sess.Submit(ctx); !errors.Is(err, form.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	last, _ := rec.Last()
	if last.Title != dialog.TitleValidationError {
		t.Fatalf("unexpected notification %+v", last)
	}
	if len(records) != 0 {
		t.Fatalf("submit handler called for invalid form")
	}
	st, _ := sess.Form().State("about")
	if !st.Touched {
		t.Fatalf("fields should be touched after a failed submit")
	}

	err := sess.Do(func(f *form.Form) error {
		if err := f.SetValue("fullName", "Ada"); err != nil {
			return err
		}
		if err := f.SetValue("email", "ada@example.com"); err != nil {
			return err
		}
		return f.SetValue("gender", "female")
	})
	if err != nil {
		t.Fatalf("do: %v", err)
	}

	out, err := sess.Submit(ctx)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if v, _ := out.Get("gender"); v != "female" {
		t.Fatalf("gender = %#v", v)
	}
	if len(records) != 1 {
		t.Fatalf("submit handler calls = %d", len(records))
	}
	last, _ = rec.Last()
	if last.Kind != dialog.KindSuccess {
		t.Fatalf("unexpected notification %+v", last)
	}

	sess.Reset()
	if v, _ := sess.Form().Value("fullName"); v != "" {
		t.Fatalf("reset left fullName = %#v", v)
	}
}

func TestEdit(t *testing.T) {
	sess, rec := newSession(t)
	prompter := dialog.NewRecorder(
		dialog.PromptReply{Text: contactJSON, OK: true},
		dialog.PromptReply{OK: false},
	)

	ok, err := sess.Edit(context.Background(), prompter)
	if err != nil || !ok {
		t.Fatalf("edit = (%v, %v)", ok, err)
	}
	if sess.Schema().Title != "Contact" {
		t.Fatalf("schema not replaced")
	}
	prompts := prompter.Prompts()
	if len(prompts) != 1 || prompts[0].Title != dialog.TitlePromptSchema {
		t.Fatalf("unexpected prompts %+v", prompts)
	}

	ok, err = sess.Edit(context.Background(), prompter)
	if err != nil || ok {
		t.Fatalf("cancelled edit = (%v, %v)", ok, err)
	}
	if len(rec.Calls()) != 1 {
		t.Fatalf("cancelled edit should not notify, calls = %+v", rec.Calls())
	}
}

func TestLoad(t *testing.T) {
	sess, _ := newSession(t)
	if err := sess.Load(context.Background(), schema.SourceFromFile("x.json")); !errors.Is(err, session.ErrNoLoader) {
		t.Fatalf("expected ErrNoLoader, got %v", err)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "contact.json")
	if err := os.WriteFile(path, []byte(contactJSON), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	sess, _ = newSession(t, session.WithLoader(loader.New(schema.NewLoaderOptions())))
	if err := sess.Load(context.Background(), schema.SourceFromFile(path)); err != nil {
		t.Fatalf("load: %v", err)
	}
	if sess.Schema().Title != "Contact" {
		t.Fatalf("schema not replaced")
	}

	before := sess.Form()
	if err := sess.Load(context.Background(), schema.SourceFromFile(filepath.Join(dir, "missing.json"))); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if sess.Form() != before {
		t.Fatalf("failed load replaced the form")
	}
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "form.json")
	if err := os.WriteFile(path, []byte(contactJSON), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	titles := make(chan string, 4)
	sess, _ := newSession(t, session.WithRecompileHandler(func(f *form.Form) {
		select {
		case titles <- f.Title():
		default:
		}
	}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := sess.Watch(ctx, path); err != nil {
		t.Fatalf("watch: %v", err)
	}
	if err := sess.Watch(ctx, path); !errors.Is(err, session.ErrAlreadyWatching) {
		t.Fatalf("expected ErrAlreadyWatching, got %v", err)
	}

	updated := `{"title": "Updated", "fields": [{"name": "a", "type": "text"}]}`
	if err := os.WriteFile(path, []byte(updated), 0o600); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case title := <-titles:
			if title == "Updated" {
				if err := sess.Close(); err != nil {
					t.Fatalf("close: %v", err)
				}
				return
			}
		case <-deadline:
			t.Fatalf("timed out waiting for reload")
		}
	}
}

func TestResetAndDo(t *testing.T) {
	sess, _ := newSession(t)

	err := sess.Do(func(f *form.Form) error {
		if err := f.SetValue("fullName", "Ada"); err != nil {
			return err
		}
		return f.MarkTouched("fullName")
	})
	if err != nil {
		t.Fatalf("do: %v", err)
	}

	sess.Reset()

	st, _ := sess.Form().State("fullName")
	want := form.FieldState{Value: "", Errors: []model.RuleKind{model.RuleRequired}}
	if diff := cmp.Diff(want, st); diff != "" {
		t.Fatalf("state after reset mismatch (-want +got):\n%s", diff)
	}

	sentinel := errors.New("stop")
	if err := sess.Do(func(*form.Form) error { return sentinel }); !errors.Is(err, sentinel) {
		t.Fatalf("expected Do to return callback error, got %v", err)
	}
}

func TestSchemaText_RoundTrips(t *testing.T) {
	sess, _ := newSession(t)

	text, err := sess.SchemaText()
	if err != nil {
		t.Fatalf("schema text: %v", err)
	}
	parsed, err := schema.Parse(text)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if diff := cmp.Diff(sess.Schema(), parsed); diff != "" {
		t.Fatalf("schema mismatch (-want +got):\n%s", diff)
	}
}
