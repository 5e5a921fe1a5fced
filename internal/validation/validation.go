// Package validation contains the logic for binding and validating
// request data.
//
// It uses the `validator` library to enforce rules defined in struct tags
// and turns binding and validation failures into a list of field errors
// the client can understand:
//
//	{"loc": ["body", "name"], "msg": "Field required", "type": "missing"}
package validation

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Validatable is implemented by request payload types that know how to
// validate themselves.
//
// Typical pattern:
//   - Define a request struct with validator tags (`validate:"required"`)
//   - Implement Validate() error that calls Struct(p)
type Validatable interface {
	Validate() error
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator instance. Field names in its
// errors are the JSON names, or the path parameter name for fields that
// are not part of the body.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(fieldName)
	})
	return validate
}

// Struct validates s against its `validate` tags.
func Struct(s any) error {
	return Validator().Struct(s)
}

func fieldName(field reflect.StructField) string {
	if name := tagName(field.Tag.Get("json")); name != "" && name != "-" {
		return name
	}
	if name := field.Tag.Get("param"); name != "" {
		return name
	}
	return field.Name
}

func tagName(tag string) string {
	name, _, _ := strings.Cut(tag, ",")
	return name
}

// location reports whether the struct field behind a validation error is
// read from the path or from the body.
func location(payload any, structField string) string {
	t := reflect.TypeOf(payload)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return locBody
	}

	if field, ok := t.FieldByName(structField); ok && field.Tag.Get("param") != "" {
		return locPath
	}
	return locBody
}
