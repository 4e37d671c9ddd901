package model

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-jsonform/pkg/schema"
)

func TestCompile_Registration(t *testing.T) {
	form, err := New(Options{}).Compile(schema.Default())
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	if form.Title != "User Registration" {
		t.Fatalf("title = %q", form.Title)
	}

	want := []Field{
		{Key: "fullName", Kind: KindText, Label: "Full Name", Required: true, Validators: []ValidationRule{Required()}, DefaultValue: ""},
		{
			Key: "email", Kind: KindText, Label: "Email", Required: true,
			Validators: []ValidationRule{
				Required(),
				Pattern("^[a-zA-Z0-9+_.-]+@[a-zA-Z0-9.-]+$", "Invalid email address"),
			},
			DefaultValue: "",
		},
		{Key: "dob", Kind: KindDate, Label: "Date of Birth", DefaultValue: ""},
		{
			Key: "gender", Kind: KindSelect, Label: "Gender", Required: true,
			Options:      []Option{{Value: "male", Label: "Male"}, {Value: "female", Label: "Female"}, {Value: "other", Label: "Other"}},
			Validators:   []ValidationRule{Required()},
			DefaultValue: "",
		},
		{
			Key: "hobbies", Kind: KindMultiselect, Label: "Hobbies",
			Options: []Option{
				{Value: "reading", Label: "Reading"},
				{Value: "sports", Label: "Sports"},
				{Value: "music", Label: "Music"},
				{Value: "travel", Label: "Travel"},
			},
			DefaultValue: []string{},
		},
		{Key: "subscribe", Kind: KindCheckbox, Label: "Subscribe to newsletter", DefaultValue: false},
		{Key: "about", Kind: KindTextarea, Label: "About Yourself", DefaultValue: ""},
	}
	if diff := cmp.Diff(want, form.Fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestCompile_EmptySchema(t *testing.T) {
	form, err := New(Options{}).Compile(schema.Schema{})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if form.Title != "" || len(form.Fields) != 0 {
		t.Fatalf("expected empty form, got %+v", form)
	}
}

func TestCompile_UnknownTypeFallsBackToTextAndWarns(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	form, err := New(Options{Logger: &logger}).Compile(schema.Schema{
		Fields: []schema.FieldDescriptor{{Label: "Color", Name: "color", Type: "color"}},
	})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if got := form.Fields[0].Kind; got != KindText {
		t.Fatalf("kind = %q, want text", got)
	}
	if !strings.Contains(buf.String(), `"type":"color"`) {
		t.Fatalf("expected warning naming the type, got %q", buf.String())
	}
}

func TestCompile_LabelFallback(t *testing.T) {
	form, err := New(Options{}).Compile(schema.Schema{
		Fields: []schema.FieldDescriptor{{Name: "dateOfBirth", Type: "date"}},
	})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if got := form.Fields[0].Label; got != "Date Of Birth" {
		t.Fatalf("label = %q", got)
	}

	custom := func(name string) string { return strings.ToUpper(name) }
	form, err = New(Options{Labeler: custom}).Compile(schema.Schema{
		Fields: []schema.FieldDescriptor{{Name: "city", Type: "text"}},
	})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if got := form.Fields[0].Label; got != "CITY" {
		t.Fatalf("label = %q", got)
	}
}

func TestCompile_ExplicitValueKeptVerbatim(t *testing.T) {
	form, err := New(Options{}).Compile(schema.Schema{
		Fields: []schema.FieldDescriptor{
			{Name: "age", Type: "number", Value: float64(30)},
			{Name: "tags", Type: "multiselect", Options: []string{"A"}, Value: []any{"a"}},
		},
	})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if diff := cmp.Diff(any(float64(30)), form.Fields[0].DefaultValue); diff != "" {
		t.Fatalf("age default mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(any([]any{"a"}), form.Fields[1].DefaultValue); diff != "" {
		t.Fatalf("tags default mismatch (-want +got):\n%s", diff)
	}
}

func TestCompile_Rejects(t *testing.T) {
	cases := []struct {
		name   string
		fields []schema.FieldDescriptor
		want   error
	}{
		{
			name:   "blank name",
			fields: []schema.FieldDescriptor{{Name: "  ", Type: "text"}},
			want:   ErrFieldNameMissing,
		},
		{
			name:   "duplicate name",
			fields: []schema.FieldDescriptor{{Name: "a", Type: "text"}, {Name: "a", Type: "email"}},
			want:   ErrDuplicateField,
		},
		{
			name:   "bad pattern",
			fields: []schema.FieldDescriptor{{Name: "a", Type: "text", Validation: &schema.Validation{Pattern: "([a-z"}}},
			want:   ErrInvalidPattern,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(Options{}).Compile(schema.Schema{Fields: tc.fields})
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestDeriveOptions(t *testing.T) {
	got := DeriveOptions([]string{"Big  City", "Ünïcode Label", "Tab\tand nbsp", "same"})
	want := []Option{
		{Value: "big_city", Label: "Big  City"},
		{Value: "ünïcode_label", Label: "Ünïcode Label"},
		{Value: "tab_and_nbsp", Label: "Tab\tand nbsp"},
		{Value: "same", Label: "same"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}

	if DeriveOptions(nil) != nil {
		t.Fatalf("expected nil options for empty input")
	}
}

func TestDefaultValue(t *testing.T) {
	for _, kind := range Kinds {
		got := DefaultValue(kind, nil)
		switch kind {
		case KindCheckbox:
			if got != false {
				t.Fatalf("%s default = %#v", kind, got)
			}
		case KindMultiselect:
			if diff := cmp.Diff(any([]string{}), got); diff != "" {
				t.Fatalf("%s default mismatch (-want +got):\n%s", kind, diff)
			}
		default:
			if got != "" {
				t.Fatalf("%s default = %#v", kind, got)
			}
		}
	}
}
