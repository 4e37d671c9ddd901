package schema

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const shapeSchemaURL = "form.schema.json"

//go:embed assets/form.schema.json
var formShapeJSON []byte

var (
	shapeOnce   sync.Once
	shapeSchema *jsonschema.Schema
	shapeErr    error
)

func compiledShape() (*jsonschema.Schema, error) {
	shapeOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(formShapeJSON))
		if err != nil {
			shapeErr = fmt.Errorf("schema: decode form meta schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(shapeSchemaURL, doc); err != nil {
			shapeErr = fmt.Errorf("schema: register form meta schema: %w", err)
			return
		}
		shapeSchema, shapeErr = compiler.Compile(shapeSchemaURL)
	})
	return shapeSchema, shapeErr
}

// validateShape checks that data, a JSON document, describes a form.
func validateShape(data []byte) error {
	meta, err := compiledShape()
	if err != nil {
		return err
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return &ParseError{Kind: ParseErrorSyntax, Err: err}
	}
	if err := meta.Validate(inst); err != nil {
		perr := &ParseError{Kind: ParseErrorShape, Err: err}
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			perr.Path = leafLocation(verr)
			perr.Err = errors.New(leafMessage(verr))
		}
		return perr
	}
	return nil
}

// leafLocation follows the first cause chain to the deepest failure and
// returns its instance location as a JSON pointer.
func leafLocation(verr *jsonschema.ValidationError) string {
	leaf := deepest(verr)
	return "/" + strings.Join(leaf.InstanceLocation, "/")
}

var shapePrinter = message.NewPrinter(language.English)

func leafMessage(verr *jsonschema.ValidationError) string {
	leaf := deepest(verr)
	if leaf.ErrorKind == nil {
		return verr.Error()
	}
	return leaf.ErrorKind.LocalizedString(shapePrinter)
}

func deepest(verr *jsonschema.ValidationError) *jsonschema.ValidationError {
	leaf := verr
	for len(leaf.Causes) > 0 {
		leaf = leaf.Causes[0]
	}
	return leaf
}
