package model

// typeTable maps schema type strings onto field kinds. "dropdown" is the
// legacy spelling of "select".
var typeTable = map[string]FieldKind{
	"text":        KindText,
	"email":       KindEmail,
	"password":    KindPassword,
	"number":      KindNumber,
	"date":        KindDate,
	"textarea":    KindTextarea,
	"checkbox":    KindCheckbox,
	"dropdown":    KindSelect,
	"select":      KindSelect,
	"multiselect": KindMultiselect,
	"radio":       KindRadio,
}

// MapType resolves a schema type string to a FieldKind. Unknown strings fall
// back to KindText.
func MapType(schemaType string) FieldKind {
	if kind, ok := typeTable[schemaType]; ok {
		return kind
	}
	return KindText
}

// IsKnownType reports whether schemaType is one of the recognised strings.
func IsKnownType(schemaType string) bool {
	_, ok := typeTable[schemaType]
	return ok
}
