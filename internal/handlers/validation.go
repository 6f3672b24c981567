package handlers

import (
	"fmt"
	"strings"
)

// Field is a named value checked by ValidateRequired
type Field struct {
	Name  string
	Value interface{}
}

// ValidateRequired returns "<name> is required" for the first field that is
// missing or a blank string, or "" when every field is present. Fields are
// checked in the order given.
func ValidateRequired(fields ...Field) string {
	for _, f := range fields {
		if isBlank(f.Value) {
			return fmt.Sprintf("%s is required", f.Name)
		}
	}
	return ""
}

// RequiredFields picks the named keys out of a decoded JSON body, keeping
// their order
func RequiredFields(body map[string]interface{}, names ...string) []Field {
	fields := make([]Field, 0, len(names))
	for _, name := range names {
		fields = append(fields, Field{Name: name, Value: body[name]})
	}
	return fields
}

func isBlank(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	case *string:
		return val == nil || strings.TrimSpace(*val) == ""
	default:
		return false
	}
}
