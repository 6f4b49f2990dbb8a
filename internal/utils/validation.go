package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// ValidateStruct validates a struct using its validate tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationErrors converts validation errors to a field -> message map
func FormatValidationErrors(err error) map[string]string {
	out := make(map[string]string)

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return out
	}

	for _, e := range validationErrs {
		field := toSnake(e.Field())
		switch e.Tag() {
		case "required":
			out[field] = fmt.Sprintf("%s is required", field)
		case "email":
			out[field] = "invalid email format"
		case "e164":
			out[field] = "phone must be in international format, e.g. +905551234567"
		case "min":
			out[field] = fmt.Sprintf("%s must be at least %s characters", field, e.Param())
		case "max":
			out[field] = fmt.Sprintf("%s must be at most %s characters", field, e.Param())
		case "oneof":
			out[field] = fmt.Sprintf("%s must be one of: %s", field, e.Param())
		default:
			out[field] = fmt.Sprintf("%s is invalid", field)
		}
	}

	return out
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && !(s[i-1] >= 'A' && s[i-1] <= 'Z') {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
