package dialog_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-jsonform/pkg/dialog"
	"github.com/goliatone/go-jsonform/pkg/form"
	"github.com/goliatone/go-jsonform/pkg/model"
	"github.com/goliatone/go-jsonform/pkg/schema"
)

func newForm(t *testing.T, fields ...schema.FieldDescriptor) *form.Form {
	t.Helper()
	compiled, err := model.NewCompiler().Compile(schema.Schema{Fields: fields})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	f, err := form.New(compiled)
	if err != nil {
		t.Fatalf("new form: %v", err)
	}
	return f
}

func TestCatalog_SubmitMessages(t *testing.T) {
	catalog := dialog.MustCatalog()

	f := newForm(t,
		schema.FieldDescriptor{Label: "Name", Name: "name", Type: "text", Required: true},
		schema.FieldDescriptor{Label: "Opt in", Name: "ok", Type: "checkbox"},
	)

	_, err := f.Submit()
	verr, ok := form.AsValidationError(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	msg, err := catalog.SubmitFailed(f, verr)
	if err != nil {
		t.Fatalf("submit failed message: %v", err)
	}
	want := dialog.Message{
		Kind:  dialog.KindError,
		Title: dialog.TitleValidationError,
		Body:  "Please fix 1 invalid field before submitting.<br>Name: Name is required<br>",
	}
	if diff := cmp.Diff(want, msg); diff != "" {
		t.Fatalf("message mismatch (-want +got):\n%s", diff)
	}

	_ = f.SetValue("name", "Ada")
	rec, err := f.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	msg, err = catalog.SubmitSucceeded(rec)
	if err != nil {
		t.Fatalf("submit succeeded message: %v", err)
	}
	want = dialog.Message{
		Kind:  dialog.KindSuccess,
		Title: dialog.TitleSuccess,
		Body:  "Form submitted successfully!<br>name=Ada<br>ok=false<br>",
	}
	if diff := cmp.Diff(want, msg); diff != "" {
		t.Fatalf("message mismatch (-want +got):\n%s", diff)
	}
}

func TestCatalog_SchemaMessages(t *testing.T) {
	catalog := dialog.MustCatalog()

	loaded, err := catalog.SchemaLoaded("Signup", 2)
	if err != nil {
		t.Fatalf("schema loaded: %v", err)
	}
	if loaded.Body != "JSON configuration loaded successfully!<br>Form: Signup (2 fields)" {
		t.Fatalf("loaded body = %q", loaded.Body)
	}

	rejected, err := catalog.SchemaRejected(errors.New("unexpected end"))
	if err != nil {
		t.Fatalf("schema rejected: %v", err)
	}
	if rejected.Title != dialog.TitleParseError || rejected.Kind != dialog.KindError {
		t.Fatalf("unexpected rejection %+v", rejected)
	}
	if !strings.HasPrefix(rejected.Body, "Invalid JSON format.") || !strings.HasSuffix(rejected.Body, "<br>unexpected end") {
		t.Fatalf("rejected body = %q", rejected.Body)
	}

	message, title, err := catalog.SchemaPrompt()
	if err != nil {
		t.Fatalf("schema prompt: %v", err)
	}
	if message != "Enter your JSON configuration:" || title != dialog.TitlePromptSchema {
		t.Fatalf("prompt = (%q, %q)", message, title)
	}
}

func TestCatalog_Overrides(t *testing.T) {
	overrides := fstest.MapFS{
		dialog.TemplateSchemaLoaded: {Data: []byte("Loaded {{ title }}")},
	}
	catalog := dialog.MustCatalog(dialog.WithTemplateFS(overrides))

	msg, err := catalog.SchemaLoaded("Contact", 1)
	if err != nil {
		t.Fatalf("schema loaded: %v", err)
	}
	if msg.Body != "Loaded Contact" {
		t.Fatalf("body = %q", msg.Body)
	}

	if _, err := catalog.SchemaRejected(nil); err != nil {
		t.Fatalf("fallback template: %v", err)
	}
}

func TestPlainText(t *testing.T) {
	got := dialog.PlainText("Form submitted successfully!<br>name=Ada &amp; co<BR/><b>done</b>")
	want := "Form submitted successfully!\nname=Ada & co\ndone"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("plain text mismatch (-want +got):\n%s", diff)
	}
}

func TestTerminal_NotificationsWithoutAcknowledge(t *testing.T) {
	var buf bytes.Buffer
	term := dialog.NewTerminal(dialog.WithOutput(&buf))

	ack, err := term.Success(context.Background(), "Loaded<br>2 fields", "Success")
	if err != nil || !ack {
		t.Fatalf("success = (%v, %v)", ack, err)
	}
	want := "✔ Success\n  Loaded\n  2 fields\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestNotify_Dispatch(t *testing.T) {
	rec := dialog.NewRecorder()
	ctx := context.Background()

	for _, kind := range []dialog.Kind{dialog.KindSuccess, dialog.KindError, dialog.KindAlert} {
		if _, err := dialog.Notify(ctx, rec, dialog.Message{Kind: kind, Title: "t", Body: string(kind)}); err != nil {
			t.Fatalf("notify: %v", err)
		}
	}
	want := []dialog.Call{
		{Kind: dialog.KindSuccess, Message: "success", Title: "t"},
		{Kind: dialog.KindError, Message: "error", Title: "t"},
		{Kind: dialog.KindAlert, Message: "alert", Title: "t"},
	}
	if diff := cmp.Diff(want, rec.Calls()); diff != "" {
		t.Fatalf("calls mismatch (-want +got):\n%s", diff)
	}

	if ack, err := dialog.Notify(ctx, nil, dialog.Message{}); !ack || err != nil {
		t.Fatalf("nil notifier = (%v, %v)", ack, err)
	}
}
