package schema

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Parse decodes schema text. JSON is tried first; anything that is not valid
// JSON is retried as YAML. The decoded document must describe a form (an
// object with a "fields" list whose entries carry a name and a type) or a
// *ParseError is returned.
func Parse(raw []byte) (Schema, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return Schema{}, &ParseError{Kind: ParseErrorEmpty}
	}

	data, err := normalizeJSON(raw)
	if err != nil {
		return Schema{}, err
	}
	if err := validateShape(data); err != nil {
		return Schema{}, err
	}

	var out Schema
	if err := json.Unmarshal(data, &out); err != nil {
		return Schema{}, &ParseError{Kind: ParseErrorShape, Err: err}
	}
	return out, nil
}

// ParseDocument parses the payload of doc, stamping its location on any
// returned *ParseError.
func ParseDocument(doc Document) (Schema, error) {
	out, err := Parse(doc.raw)
	if err != nil {
		if perr, ok := AsParseError(err); ok {
			perr.Location = doc.Location()
		}
		return Schema{}, err
	}
	return out, nil
}

// Marshal renders s as indented JSON, the canonical text form shown in editors.
func Marshal(s Schema) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("schema: marshal: %w", err)
	}
	return data, nil
}

// normalizeJSON returns raw unchanged when it is JSON, otherwise the YAML
// decoding of raw re-encoded as JSON.
func normalizeJSON(raw []byte) ([]byte, error) {
	var decoded any
	jsonErr := json.Unmarshal(raw, &decoded)
	if jsonErr == nil {
		return raw, nil
	}

	var node yaml.Node
	if err := yaml.Unmarshal(raw, &node); err != nil || node.Kind == 0 {
		return nil, &ParseError{Kind: ParseErrorSyntax, Err: jsonErr}
	}
	keepTimestampsAsText(&node)
	var doc any
	if err := node.Decode(&doc); err != nil {
		return nil, &ParseError{Kind: ParseErrorSyntax, Err: fmt.Errorf("yaml: %w", err)}
	}
	if _, isString := doc.(string); isString || doc == nil {
		// Plain scalars are valid YAML but never a schema; report the JSON
		// failure, which is what the author most likely intended to write.
		return nil, &ParseError{Kind: ParseErrorSyntax, Err: jsonErr}
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, &ParseError{Kind: ParseErrorSyntax, Err: fmt.Errorf("yaml: %w", err)}
	}
	return data, nil
}

// keepTimestampsAsText retags timestamp scalars as strings so a value such as
// 2020-01-02 stays the text the author wrote instead of becoming a time.Time.
func keepTimestampsAsText(n *yaml.Node) {
	if n.Kind == yaml.ScalarNode && n.ShortTag() == "!!timestamp" {
		n.Tag = "!!str"
	}
	for _, child := range n.Content {
		keepTimestampsAsText(child)
	}
}
