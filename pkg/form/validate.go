package form

import (
	"strconv"
	"strings"

	"github.com/telquery/churnform/pkg/schema"
)

const (
	msgRequired      = "required"
	msgInvalidNumber = "invalid number"
)

// ValidateField applies the single-field rule: a required categorical field
// must not be empty; a numeric field must parse as a non-negative number.
// Numeric fields are required in effect regardless of their Required flag.
// The returned message is empty when the value is acceptable.
func ValidateField(field schema.Field, value string) string {
	trimmed := strings.TrimSpace(value)

	if field.Numeric() {
		if trimmed == "" {
			return msgRequired
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil || parsed < 0 {
			return msgInvalidNumber
		}
		return ""
	}

	if field.Required && trimmed == "" {
		return msgRequired
	}
	return ""
}
