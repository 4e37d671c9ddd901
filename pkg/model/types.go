package model

import internalmodel "github.com/goliatone/go-jsonform/internal/model"

// FieldKind re-exports the internal FieldKind enumeration.
type FieldKind = internalmodel.FieldKind

const (
	KindText        = internalmodel.KindText
	KindEmail       = internalmodel.KindEmail
	KindPassword    = internalmodel.KindPassword
	KindNumber      = internalmodel.KindNumber
	KindDate        = internalmodel.KindDate
	KindTextarea    = internalmodel.KindTextarea
	KindCheckbox    = internalmodel.KindCheckbox
	KindSelect      = internalmodel.KindSelect
	KindMultiselect = internalmodel.KindMultiselect
	KindRadio       = internalmodel.KindRadio
)

// RuleKind re-exports the internal RuleKind enumeration.
type RuleKind = internalmodel.RuleKind

const (
	RuleRequired    = internalmodel.RuleRequired
	RuleEmailFormat = internalmodel.RuleEmailFormat
	RulePattern     = internalmodel.RulePattern
	RuleMin         = internalmodel.RuleMin
	RuleMax         = internalmodel.RuleMax
	RuleMinLength   = internalmodel.RuleMinLength
	RuleMaxLength   = internalmodel.RuleMaxLength
)

type ValidationRule = internalmodel.ValidationRule
type Option = internalmodel.Option
type Field = internalmodel.Field
type Form = internalmodel.Form

var (
	Required    = internalmodel.Required
	EmailFormat = internalmodel.EmailFormat
	Pattern     = internalmodel.Pattern
	Min         = internalmodel.Min
	Max         = internalmodel.Max
	MinLength   = internalmodel.MinLength
	MaxLength   = internalmodel.MaxLength
)

// Kinds lists every field kind.
var Kinds = internalmodel.Kinds

// MapType resolves a schema type string to a FieldKind, falling back to
// KindText for unknown strings.
func MapType(schemaType string) FieldKind {
	return internalmodel.MapType(schemaType)
}

// AnchorPattern returns expr anchored at both ends, the form used when a
// pattern rule is evaluated.
func AnchorPattern(expr string) string {
	return internalmodel.AnchorPattern(expr)
}

var (
	ErrFieldNameMissing = internalmodel.ErrFieldNameMissing
	ErrDuplicateField   = internalmodel.ErrDuplicateField
	ErrInvalidPattern   = internalmodel.ErrInvalidPattern
)

// OptionValue returns the submitted value derived from an option label.
func OptionValue(label string) string {
	return internalmodel.OptionValue(label)
}
