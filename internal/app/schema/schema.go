// Package schema declares and validates entrypoint input shapes.
//
// Validation runs before any handler work: a failing input never reaches a
// handler and never produces a ledger entry. Optional fields receive their
// declared defaults in the validated copy.
package schema

import (
	"errors"
	"fmt"
	"math"
	"regexp"
)

// Field types understood by the validator.
const (
	TypeString = "string"
	TypeInt    = "integer"
)

// ErrValidation is the sentinel kind for every schema failure.
var ErrValidation = errors.New("invalid input")

// Field describes one input field.
type Field struct {
	Name     string
	Type     string
	Required bool
	Default  any            // applied when an optional field is absent
	Pattern  *regexp.Regexp // optional, string fields only
}

// Schema is an ordered set of fields. The zero value accepts any object and
// passes it through untouched except for default application (none).
type Schema struct {
	Fields []Field
}

// New builds a schema from fields.
func New(fields ...Field) Schema {
	return Schema{Fields: fields}
}

// RequiredString declares a mandatory string field.
func RequiredString(name string) Field {
	return Field{Name: name, Type: TypeString, Required: true}
}

// RequiredPattern declares a mandatory string field constrained by pattern.
func RequiredPattern(name string, pattern *regexp.Regexp) Field {
	return Field{Name: name, Type: TypeString, Required: true, Pattern: pattern}
}

// OptionalInt declares an optional integer field with a default.
func OptionalInt(name string, def int) Field {
	return Field{Name: name, Type: TypeInt, Default: def}
}

// OptionalIntNoDefault declares an optional integer field with no default;
// absent means absent in the validated copy.
func OptionalIntNoDefault(name string) Field {
	return Field{Name: name, Type: TypeInt}
}

// Validate checks raw against the schema and returns a validated copy with
// defaults applied. Unknown fields are dropped. All failures wrap
// ErrValidation.
func (s Schema) Validate(raw map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(s.Fields))
	for _, f := range s.Fields {
		v, present := raw[f.Name]
		if !present || v == nil {
			if f.Required {
				return nil, fmt.Errorf("%w: missing %s", ErrValidation, f.Name)
			}
			if f.Default != nil {
				out[f.Name] = f.Default
			}
			continue
		}

		switch f.Type {
		case TypeString:
			str, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s must be a string", ErrValidation, f.Name)
			}
			if str == "" {
				return nil, fmt.Errorf("%w: %s must not be empty", ErrValidation, f.Name)
			}
			if f.Pattern != nil && !f.Pattern.MatchString(str) {
				return nil, fmt.Errorf("%w: %s must match %s", ErrValidation, f.Name, f.Pattern)
			}
			out[f.Name] = str
		case TypeInt:
			n, ok := toInt(v)
			if !ok {
				return nil, fmt.Errorf("%w: %s must be an integer", ErrValidation, f.Name)
			}
			if n < 0 {
				return nil, fmt.Errorf("%w: %s must not be negative", ErrValidation, f.Name)
			}
			out[f.Name] = n
		default:
			return nil, fmt.Errorf("%w: %s has unknown type %q", ErrValidation, f.Name, f.Type)
		}
	}
	return out, nil
}

// Describe renders the schema as a JSON-schema-shaped object for the catalog
// document.
func (s Schema) Describe() map[string]any {
	properties := make(map[string]any, len(s.Fields))
	required := make([]string, 0)
	for _, f := range s.Fields {
		prop := map[string]any{"type": f.Type}
		if f.Pattern != nil {
			prop["pattern"] = f.Pattern.String()
		}
		if f.Default != nil {
			prop["default"] = f.Default
		}
		properties[f.Name] = prop
		if f.Required {
			required = append(required, f.Name)
		}
	}
	desc := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		desc["required"] = required
	}
	return desc
}

// Int reads a validated integer field; returns def when absent.
func Int(in map[string]any, name string, def int) int {
	if v, ok := in[name]; ok {
		if n, ok := toInt(v); ok {
			return n
		}
	}
	return def
}

// Str reads a validated string field; returns "" when absent.
func Str(in map[string]any, name string) string {
	s, _ := in[name].(string)
	return s
}

// toInt accepts the numeric shapes JSON decoding produces. Floats must be
// integral.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}
