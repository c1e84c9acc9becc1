// Package codec serializes link collections for export and persistence and
// validates untrusted text on import.
//
// Export produces the pretty-printed form users copy between devices;
// Encode produces the compact form written to the durable store. Both
// Import and Decode apply the same validation, so a value that fails to
// import also counts as corrupt when found in storage.
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mesh-intelligence/dailies/pkg/types"
)

// Record field names, in the order they are checked.
const (
	fieldID   = "id"
	fieldName = "name"
	fieldURL  = "url"
)

var requiredFields = []string{fieldID, fieldName, fieldURL}

// Export renders c as a JSON array indented by two spaces. HTML characters
// are left as-is so URLs with query strings stay readable.
func Export(c types.Collection) (string, error) {
	data, err := marshal(c, "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Import parses and validates text. It returns ErrParse when the text is
// blank or not JSON, ErrShape when the value is not an array, and ErrRecord
// when any element lacks a non-empty string id, name or url. Duplicate ids
// and an empty array are accepted.
func Import(text string) (types.Collection, error) {
	return decode([]byte(strings.TrimSpace(text)))
}

// Encode renders c in the compact persisted form.
func Encode(c types.Collection) ([]byte, error) {
	return marshal(c, "")
}

// Decode parses a persisted value with the same rules as Import.
func Decode(data []byte) (types.Collection, error) {
	return decode(bytes.TrimSpace(data))
}

// Validate applies the record rules to an already typed collection. Fields
// must also be valid UTF-8 so they encode unchanged.
func Validate(c types.Collection) error {
	for i, l := range c {
		for f, v := range [...]string{l.ID, l.Name, l.URL} {
			field := requiredFields[f]
			if v == "" {
				return recordError(i, field)
			}
			if !utf8.ValidString(v) {
				return fmt.Errorf("record %d: %s is not valid UTF-8: %w", i, field, types.ErrRecord)
			}
		}
	}
	return nil
}

func marshal(c types.Collection, indent string) ([]byte, error) {
	if c == nil {
		c = types.Collection{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("encoding links: %w", err)
	}
	// Encoder always terminates with a newline.
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func decode(data []byte) (types.Collection, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty input: %w", types.ErrParse)
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("malformed JSON: %w", types.ErrParse)
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%v: %w", err, types.ErrParse)
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("got %s: %w", kindOf(raw), types.ErrShape)
	}

	out := make(types.Collection, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("record %d is %s: %w", i, kindOf(item), types.ErrRecord)
		}
		var vals [3]string
		for f, field := range requiredFields {
			s, ok := obj[field].(string)
			if !ok || s == "" {
				return nil, recordError(i, field)
			}
			vals[f] = s
		}
		out = append(out, types.Link{ID: vals[0], Name: vals[1], URL: vals[2]})
	}
	return out, nil
}

func recordError(index int, field string) error {
	return fmt.Errorf("record %d: missing %s: %w", index, field, types.ErrRecord)
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "an object"
	case []any:
		return "an array"
	case string:
		return "a string"
	case float64:
		return "a number"
	case bool:
		return "a boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}
