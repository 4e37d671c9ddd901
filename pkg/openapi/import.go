package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-jsonform/pkg/schema"
)

var (
	// ErrOperationNotFound reports an operationId absent from the document.
	ErrOperationNotFound = errors.New("openapi: operation not found")
	// ErrNoRequestBody reports an operation without a usable request body.
	ErrNoRequestBody = errors.New("openapi: operation has no request body schema")
	// ErrUnsupportedBody reports a request body that is not an object.
	ErrUnsupportedBody = errors.New("openapi: request body must be an object schema")
)

// Import loads an OpenAPI document and converts the request body of the
// operation identified by operationID into a form schema. Operations without
// an operationId are addressed as "<method>:<path>", e.g. "post:/users".
// Properties are emitted sorted by name; those that cannot be expressed as a
// form field (nested objects, arrays of non-enum items) are skipped.
func Import(ctx context.Context, raw []byte, operationID string, options ...Option) (schema.Schema, error) {
	if err := ctx.Err(); err != nil {
		return schema.Schema{}, err
	}
	if len(raw) == 0 {
		return schema.Schema{}, errors.New("openapi: document payload is empty")
	}
	opts := NewOptions(options...)

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: opts.ExternalRefs,
	}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return schema.Schema{}, fmt.Errorf("openapi: load document: %w", err)
	}
	if opts.Validate {
		if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return schema.Schema{}, fmt.Errorf("openapi: validate: %w", err)
		}
	}

	op, err := findOperation(doc, operationID)
	if err != nil {
		return schema.Schema{}, err
	}
	body := requestSchema(op.RequestBody, opts.MediaTypes)
	if body == nil {
		return schema.Schema{}, fmt.Errorf("%w: %s", ErrNoRequestBody, operationID)
	}

	properties, required := flatten(body)
	if len(properties) == 0 && !isType(body, openapi3.TypeObject) {
		return schema.Schema{}, fmt.Errorf("%w: %s", ErrUnsupportedBody, operationID)
	}

	title := op.Summary
	if title == "" {
		title = operationID
	}
	out := schema.Schema{
		Title:  title,
		Fields: make([]schema.FieldDescriptor, 0, len(properties)),
	}
	for _, name := range sortedNames(properties) {
		desc, ok := convertProperty(name, properties[name], required[name])
		if !ok {
			opts.Logger.Debug().
				Str("operation", operationID).
				Str("property", name).
				Msg("skipping property without a form representation")
			continue
		}
		out.Fields = append(out.Fields, desc)
	}
	return out, nil
}

// Operations lists the addressable operation identifiers of a document in
// sorted order.
func Operations(ctx context.Context, raw []byte) ([]string, error) {
	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	var ids []string
	eachOperation(doc, func(id string, _ *openapi3.Operation) bool {
		ids = append(ids, id)
		return true
	})
	sort.Strings(ids)
	return ids, nil
}

func findOperation(doc *openapi3.T, operationID string) (*openapi3.Operation, error) {
	var found *openapi3.Operation
	eachOperation(doc, func(id string, op *openapi3.Operation) bool {
		if id == operationID {
			found = op
			return false
		}
		return true
	})
	if found == nil {
		return nil, fmt.Errorf("%w: %q", ErrOperationNotFound, operationID)
	}
	return found, nil
}

func eachOperation(doc *openapi3.T, fn func(id string, op *openapi3.Operation) bool) {
	if doc.Paths == nil {
		return
	}
	for path, item := range doc.Paths.Map() {
		if item == nil {
			continue
		}
		for method, op := range item.Operations() {
			if op == nil {
				continue
			}
			id := op.OperationID
			if id == "" {
				id = strings.ToLower(method) + ":" + path
			}
			if !fn(id, op) {
				return
			}
		}
	}
}

func requestSchema(body *openapi3.RequestBodyRef, mediaTypes []string) *openapi3.Schema {
	if body == nil || body.Value == nil {
		return nil
	}
	content := body.Value.Content
	for _, mediaType := range mediaTypes {
		if mt, ok := content[mediaType]; ok && mt != nil && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	keys := make([]string, 0, len(content))
	for key := range content {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if mt := content[key]; mt != nil && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

// flatten collects properties and required names of s and its allOf members.
func flatten(s *openapi3.Schema) (map[string]*openapi3.Schema, map[string]bool) {
	properties := make(map[string]*openapi3.Schema)
	required := make(map[string]bool)
	var walk func(*openapi3.Schema, int)
	walk = func(node *openapi3.Schema, depth int) {
		if node == nil || depth > 8 {
			return
		}
		for _, part := range node.AllOf {
			if part != nil {
				walk(part.Value, depth+1)
			}
		}
		for name, ref := range node.Properties {
			if ref != nil && ref.Value != nil {
				properties[name] = ref.Value
			}
		}
		for _, name := range node.Required {
			required[name] = true
		}
	}
	walk(s, 0)
	return properties, required
}

func sortedNames(properties map[string]*openapi3.Schema) []string {
	names := make([]string, 0, len(properties))
	for name := range properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func isType(s *openapi3.Schema, typ string) bool {
	if s == nil || s.Type == nil {
		return false
	}
	for _, t := range s.Type.Slice() {
		if t == typ {
			return true
		}
	}
	return false
}
