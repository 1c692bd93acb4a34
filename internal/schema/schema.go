package schema

import (
	"fmt"
)

// Kind is the declared type of a document field.
type Kind int

const (
	// KindAny accepts any non-null JSON value.
	KindAny Kind = iota
	// KindString accepts JSON strings.
	KindString
	// KindNumber accepts JSON numbers (decoded as float64).
	KindNumber
	// KindBool accepts JSON booleans.
	KindBool
	// KindObject accepts JSON objects.
	KindObject
	// KindArray accepts JSON arrays.
	KindArray
)

// String returns the kind name used in validation error messages.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "any"
	}
}

// Schema declares the shape of one collection's documents: which fields are
// required and the types of declared fields. Fields not listed in Fields are
// accepted as-is; the document model is schema-less beyond what a collection
// chooses to pin down.
type Schema struct {
	Required []string
	Fields   map[string]Kind
}

// Validate checks a document against the schema. A declared field holding
// JSON null is a type violation; the remote boundary strips nulls before
// validation so a null field reaching here is a caller error.
func (s Schema) Validate(doc map[string]any) error {
	for _, name := range s.Required {
		v, ok := doc[name]
		if !ok {
			return fmt.Errorf("missing required field %q", name)
		}
		if v == nil {
			return fmt.Errorf("required field %q is null", name)
		}
	}

	for name, kind := range s.Fields {
		v, ok := doc[name]
		if !ok {
			continue
		}
		if v == nil {
			return fmt.Errorf("field %q is null, expected %s", name, kind)
		}
		if !matchesKind(v, kind) {
			return fmt.Errorf("field %q has type %T, expected %s", name, v, kind)
		}
	}

	return nil
}

func matchesKind(v any, kind Kind) bool {
	switch kind {
	case KindString:
		_, ok := v.(string)
		return ok
	case KindNumber:
		switch v.(type) {
		case float64, float32, int, int32, int64:
			return true
		}
		return false
	case KindBool:
		_, ok := v.(bool)
		return ok
	case KindObject:
		_, ok := v.(map[string]any)
		return ok
	case KindArray:
		_, ok := v.([]any)
		return ok
	default:
		return true
	}
}
