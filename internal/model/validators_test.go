package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-jsonform/pkg/schema"
)

func TestAssembleValidators(t *testing.T) {
	cases := []struct {
		name string
		desc schema.FieldDescriptor
		kind FieldKind
		want []ValidationRule
	}{
		{
			name: "no rules",
			desc: schema.FieldDescriptor{Name: "a", Type: "text"},
			kind: KindText,
		},
		{
			name: "email kind adds format rule after required",
			desc: schema.FieldDescriptor{Name: "a", Type: "email", Required: true},
			kind: KindEmail,
			want: []ValidationRule{Required(), EmailFormat()},
		},
		{
			name: "text typed email field gets no format rule",
			desc: schema.FieldDescriptor{Name: "a", Type: "text"},
			kind: KindText,
		},
		{
			name: "validation block in fixed order",
			desc: schema.FieldDescriptor{
				Name: "a", Type: "number", Required: true,
				Validation: &schema.Validation{
					MaxLength: schema.Int(9),
					MinLength: schema.Int(1),
					Max:       schema.Float(10),
					Min:       schema.Float(0),
					Pattern:   "[0-9]+",
					Message:   "digits only",
				},
			},
			kind: KindNumber,
			want: []ValidationRule{
				Required(),
				Pattern("[0-9]+", "digits only"),
				Min(0),
				Max(10),
				MinLength(1),
				MaxLength(9),
			},
		},
		{
			name: "zero length is still a rule",
			desc: schema.FieldDescriptor{Name: "a", Type: "text", Validation: &schema.Validation{MaxLength: schema.Int(0)}},
			kind: KindText,
			want: []ValidationRule{MaxLength(0)},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := AssembleValidators(tc.desc, tc.kind)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("rules mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
