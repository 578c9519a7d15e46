package types

import (
	"encoding/json"
	"fmt"
)

// Field identifies a bindable consumer field
type Field int

const (
	// FieldImage binds to the catalog's image resource
	FieldImage Field = iota
	// FieldText binds to the catalog's text resource
	FieldText
)

// Fields returns all known fields in declaration order
func Fields() []Field {
	return []Field{FieldImage, FieldText}
}

// String returns the field name as consumers declare it
func (f Field) String() string {
	switch f {
	case FieldImage:
		return "image"
	case FieldText:
		return "text"
	default:
		return "unknown"
	}
}

// MarshalJSON implements json.Marshaler
func (f Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

// UnmarshalJSON implements json.Unmarshaler
func (f *Field) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseField(str)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// ParseField parses a field name. Matching is exact and case-sensitive.
func ParseField(s string) (Field, error) {
	switch s {
	case "image":
		return FieldImage, nil
	case "text":
		return FieldText, nil
	default:
		return FieldImage, fmt.Errorf("unknown field: %q", s)
	}
}
