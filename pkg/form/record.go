package form

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"github.com/goccy/go-json"
)

// Format names a Record encoding.
type Format string

const (
	FormatJSON   Format = "json"
	FormatForm   Format = "form"
	FormatPretty Format = "pretty"
)

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatJSON, FormatForm, FormatPretty:
		return f, nil
	case "":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("form: unknown record format %q", name)
	}
}

// Record is the submitted output: every field key mapped to its value, in
// field order.
type Record struct {
	keys   []string
	values map[string]any
}

func newRecord(size int) Record {
	return Record{keys: make([]string, 0, size), values: make(map[string]any, size)}
}

func (r *Record) set(key string, value any) {
	if _, exists := r.values[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Keys returns the field keys in form order.
func (r Record) Keys() []string { return append([]string(nil), r.keys...) }

// Len returns the number of entries.
func (r Record) Len() int { return len(r.keys) }

// Get returns the value stored for key.
func (r Record) Get(key string) (any, bool) {
	v, ok := r.values[key]
	return cloneValue(v), ok
}

// Values returns a copy of the record as a plain map.
func (r Record) Values() map[string]any {
	out := make(map[string]any, len(r.values))
	for k, v := range r.values {
		out[k] = cloneValue(v)
	}
	return out
}

// MarshalJSON encodes the record as an object whose members follow field
// order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(r.values[key])
		if err != nil {
			return nil, fmt.Errorf("form: encode %q: %w", key, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Encode renders the record in the requested format.
func (r Record) Encode(format Format) ([]byte, error) {
	switch format {
	case FormatJSON, "":
		raw, err := r.MarshalJSON()
		if err != nil {
			return nil, err
		}
		var out bytes.Buffer
		if err := json.Indent(&out, raw, "", "  "); err != nil {
			return nil, fmt.Errorf("form: indent record: %w", err)
		}
		out.WriteByte('\n')
		return out.Bytes(), nil
	case FormatForm:
		return []byte(r.formEncode()), nil
	case FormatPretty:
		return []byte(r.pretty()), nil
	default:
		return nil, fmt.Errorf("form: unknown record format %q", format)
	}
}

// formEncode produces application/x-www-form-urlencoded text. List values
// repeat the key with a [] suffix; an empty list is sent as a single empty
// key[] so the field is still present.
func (r Record) formEncode() string {
	values := url.Values{}
	for _, key := range r.keys {
		switch v := r.values[key].(type) {
		case []string:
			if len(v) == 0 {
				values.Set(key+"[]", "")
				continue
			}
			for _, item := range v {
				values.Add(key+"[]", item)
			}
		default:
			values.Set(key, fmt.Sprint(v))
		}
	}
	return values.Encode()
}

func (r Record) pretty() string {
	var b strings.Builder
	for _, key := range r.keys {
		switch v := r.values[key].(type) {
		case []string:
			fmt.Fprintf(&b, "%s=[%s]\n", key, strings.Join(v, ", "))
		default:
			fmt.Fprintf(&b, "%s=%v\n", key, v)
		}
	}
	return b.String()
}
