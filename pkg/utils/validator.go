package utils

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormErrorKey is the bucket for failures that belong to no single field.
const FormErrorKey = "formError"

// FieldErrors maps a form field name to its messages, in the order they were found.
type FieldErrors map[string][]string

// ValidationError carries every field message plus the first one reported,
// which callers that only show a single line use.
type ValidationError struct {
	Fields FieldErrors
	first  string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: FieldErrors{}}
}

func (e *ValidationError) Add(field, message string) {
	if e.first == "" {
		e.first = message
	}
	e.Fields[field] = append(e.Fields[field], message)
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

func (e *ValidationError) First() string {
	return e.first
}

func (e *ValidationError) Error() string {
	return e.first
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report fields by their wire name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"form", "json"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	// numeric coercion for raw form strings
	mustRegister(v, "coerce_num", func(fl validator.FieldLevel) bool {
		_, ok := CoerceNumber(fl.Field().String())
		return ok
	})
	mustRegister(v, "num_int", func(fl validator.FieldLevel) bool {
		n, ok := CoerceNumber(fl.Field().String())
		return ok && n == math.Trunc(n)
	})
	mustRegister(v, "num_min", func(fl validator.FieldLevel) bool {
		n, ok := CoerceNumber(fl.Field().String())
		limit, err := strconv.ParseFloat(fl.Param(), 64)
		return ok && err == nil && n >= limit
	})
	mustRegister(v, "num_max", func(fl validator.FieldLevel) bool {
		n, ok := CoerceNumber(fl.Field().String())
		limit, err := strconv.ParseFloat(fl.Param(), 64)
		return ok && err == nil && n <= limit
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %s: %v", tag, err))
	}
}

// CoerceNumber converts a raw form value the way a browser's Number() does:
// blank input is 0, anything non-numeric or non-finite is rejected.
// Prefixed integer literals such as "0x10" or "0b1" are rejected too.
func CoerceNumber(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, true
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// ValidateForm validates a raw form struct. Messages are looked up as
// "field.tag", then "field", then fall back to a generic message per tag.
// It returns nil when the form is valid.
func ValidateForm(data interface{}, messages map[string]string) *ValidationError {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	verr := NewValidationError()
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		verr.Add(FormErrorKey, err.Error())
		return verr
	}

	for _, fe := range validationErrors {
		msg, found := messages[fe.Field()+"."+fe.Tag()]
		if !found {
			msg, found = messages[fe.Field()]
		}
		if !found {
			msg = getErrorMessage(fe)
		}
		verr.Add(fe.Field(), msg)
	}

	return verr
}

// converts validator errors to human-readable messages
func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "url":
		return "Invalid URL"
	case "min", "num_min":
		return fmt.Sprintf("Minimum is %s", err.Param())
	case "max", "num_max":
		return fmt.Sprintf("Maximum is %s", err.Param())
	case "coerce_num":
		return "Expected number, received nan"
	case "num_int":
		return "Expected integer, received float"
	case "datetime":
		return fmt.Sprintf("Must match format %s", err.Param())
	case "oneof":
		options := strings.ReplaceAll(err.Param(), " ", ", ")
		return fmt.Sprintf("Must be one of: %s", options)
	case "uuid":
		return "Must be a valid UUID"
	default:
		return fmt.Sprintf("Invalid %s field", err.Field())
	}
}
