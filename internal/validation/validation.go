// Package validation checks request payloads before any store access.
//
// Rules are declared as struct tags on the request types in internal/model and
// evaluated in field order; the first failing field determines the rejection.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@.]+(\.[^\s@.]+)*\.[A-Za-z]{2,}$`)
	objectIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)
)

var validate = newValidator()

// Error is a single, client-facing rejection reason.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	// Registration only fails on duplicate or empty tags, both fixed at compile time.
	must(v.RegisterValidation("email_tld", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	}))
	must(v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		return objectIDPattern.MatchString(fl.Field().String())
	}))

	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// Struct validates a tagged request struct. It returns nil or a *Error describing
// the first failing field.
func Struct(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	return &Error{Field: fe.Field(), Message: describe(fe, structTag(req, fe.StructField()))}
}

// ProductID validates a product identifier taken from the request path.
func ProductID(id string) error {
	err := validate.Var(id, "required,objectid")
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	if fieldErrs[0].Tag() == "required" {
		return &Error{Field: "id", Message: "id is required"}
	}
	return &Error{Field: "id", Message: "id must be a 24-character hex string"}
}

// IsValidationError reports whether err is a rejection produced by this package.
func IsValidationError(err error) bool {
	var ve *Error
	return errors.As(err, &ve)
}

func describe(fe validator.FieldError, tag string) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email_tld":
		return field + " must be a valid email address"
	case "objectid":
		return field + " must be a 24-character hex string"
	case "min", "max":
		if lo, hi, ok := lengthBounds(tag); ok {
			return fmt.Sprintf("%s must be between %s and %s characters", field, lo, hi)
		}
		if fe.Tag() == "min" {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	default:
		return field + " is invalid"
	}
}

// lengthBounds recovers the min/max pair declared in a validate tag so that
// both ends of a range end up in the message.
func lengthBounds(tag string) (string, string, bool) {
	var lo, hi string
	for _, rule := range strings.Split(tag, ",") {
		key, val, _ := strings.Cut(rule, "=")
		switch key {
		case "min":
			lo = val
		case "max":
			hi = val
		}
	}
	return lo, hi, lo != "" && hi != ""
}

func structTag(req any, field string) string {
	t := reflect.TypeOf(req)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return ""
	}
	f, ok := t.FieldByName(field)
	if !ok {
		return ""
	}
	return f.Tag.Get("validate")
}
