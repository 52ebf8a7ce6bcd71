// Package validate holds the required-field presence checks applied to
// create payloads before they reach the store.
package validate

import (
	"math"
	"strings"

	"github.com/spf13/cast"
)

var (
	AppointmentFields = []string{"name", "phone", "date", "service"}
	MessageFields     = []string{"name", "email", "phone", "message"}
	BlogFields        = []string{"title", "date", "image", "content"}
)

// MissingError lists the required fields a payload lacked.
type MissingError struct {
	Fields []string
}

func (e *MissingError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// TypeError lists fields whose values cannot be stored as text.
type TypeError struct {
	Fields []string
}

func (e *TypeError) Error() string {
	return "fields must be text, numbers or booleans: " + strings.Join(e.Fields, ", ")
}

// Required checks that every field is present in payload with a truthy
// value. Values are not coerced or format-checked.
func Required(payload map[string]any, fields ...string) error {
	var missing []string
	for _, f := range fields {
		if !truthy(payload[f]) {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return &MissingError{Fields: missing}
	}
	return nil
}

// truthy reports whether a decoded JSON value counts as supplied.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	case bool:
		return x
	case float64:
		return x != 0 && !math.IsNaN(x)
	case int:
		return x != 0
	case int64:
		return x != 0
	}
	return true
}

// Text converts the listed fields that payload carries to their stored
// string form. Absent fields are left out of the result; null becomes "".
// Arrays and objects fail with a *TypeError.
func Text(payload map[string]any, fields ...string) (map[string]string, error) {
	out := make(map[string]string, len(fields))
	var bad []string
	for _, f := range fields {
		v, ok := payload[f]
		if !ok {
			continue
		}
		s, err := cast.ToStringE(v)
		if err != nil {
			bad = append(bad, f)
			continue
		}
		out[f] = s
	}
	if len(bad) > 0 {
		return nil, &TypeError{Fields: bad}
	}
	return out, nil
}

// Strings is Required followed by Text, so every field comes back as a
// non-empty string.
func Strings(payload map[string]any, fields ...string) (map[string]string, error) {
	if err := Required(payload, fields...); err != nil {
		return nil, err
	}
	out, err := Text(payload, fields...)
	if err != nil {
		return nil, err
	}
	var missing []string
	for _, f := range fields {
		if out[f] == "" {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingError{Fields: missing}
	}
	return out, nil
}
