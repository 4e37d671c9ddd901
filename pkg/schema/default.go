package schema

import _ "embed"

//go:embed assets/registration.json
var registrationJSON []byte

// DefaultText returns the built-in registration schema as authored.
func DefaultText() []byte {
	return append([]byte(nil), registrationJSON...)
}

// Default returns the built-in registration schema used when no schema is
// supplied.
func Default() Schema {
	s, err := Parse(registrationJSON)
	if err != nil {
		panic("schema: embedded registration schema is invalid: " + err.Error())
	}
	return s
}
