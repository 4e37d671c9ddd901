package schema

import (
	"errors"
	"fmt"
)

// ErrSchemaParse is matched by every *ParseError via errors.Is.
var ErrSchemaParse = errors.New("schema: parse failed")

// ParseErrorKind classifies why schema text could not be consumed.
type ParseErrorKind string

const (
	// ParseErrorEmpty means the payload was blank.
	ParseErrorEmpty ParseErrorKind = "empty"
	// ParseErrorSyntax means the payload is neither valid JSON nor YAML.
	ParseErrorSyntax ParseErrorKind = "syntax"
	// ParseErrorShape means the payload decoded but does not describe a form
	// (for example, "fields" is missing or an option is not a string).
	ParseErrorShape ParseErrorKind = "shape"
)

// ParseError reports schema text that cannot be turned into a Schema. Callers
// holding a compiled form should keep it active when they receive one.
type ParseError struct {
	Kind     ParseErrorKind
	Location string // origin of the payload when known
	Path     string // JSON pointer of the offending node for shape errors
	Err      error
}

func (e *ParseError) Error() string {
	prefix := "schema"
	if e.Location != "" {
		prefix = fmt.Sprintf("schema %s", e.Location)
	}
	switch e.Kind {
	case ParseErrorEmpty:
		return prefix + ": document is empty"
	case ParseErrorShape:
		if e.Path != "" {
			return fmt.Sprintf("%s: invalid form schema at %s: %v", prefix, e.Path, e.Err)
		}
		return fmt.Sprintf("%s: invalid form schema: %v", prefix, e.Err)
	default:
		return fmt.Sprintf("%s: invalid JSON or YAML: %v", prefix, e.Err)
	}
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrSchemaParse) match any ParseError.
func (e *ParseError) Is(target error) bool { return target == ErrSchemaParse }

// AsParseError extracts a *ParseError from err.
func AsParseError(err error) (*ParseError, bool) {
	var perr *ParseError
	if errors.As(err, &perr) {
		return perr, true
	}
	return nil, false
}
