// Package errs defines custom error types and utilities.
//
// Its purpose is to create specific error structures
// (e.g. FieldErrors for request bodies or HTTPError for API responses)
// to ensure the client receives meaningful, actionable, and consistent
// error messages.
//
// Every error response has the same JSON shape:
//
//	{"detail": "<message>"}
//
// and validation failures add an "errors" list with one entry per field.
package errs

import "strings"

// FieldError represents a single field-level validation failure.
// Example:
//
//	{"loc": ["body", "description"], "msg": "Field required", "type": "missing"}
type FieldError struct {
	// Loc is the path to the offending value: its source ("body", "path")
	// followed by the field name.
	Loc []string `json:"loc"`

	// Msg is the human-readable error message.
	Msg string `json:"msg"`

	// Type is a stable machine-readable error kind.
	Type string `json:"type"`
}

// HTTPError is the main custom error type for API responses.
//
// Only Message and Errors are serialized; Code and Status drive logging and
// the response status line.
type HTTPError struct {
	Code    string `json:"-"`
	Message string `json:"detail"`
	Status  int    `json:"-"`

	// Errors holds field-level validation errors.
	Errors []FieldError `json:"errors,omitempty"`
}

// Error makes *HTTPError satisfy the built-in `error` interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError. It does not compare
// Code or Status.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// MakeUpperCaseWithUnderscores converts a string into UPPER_CASE_WITH_UNDERSCORES.
//
// Example:
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
