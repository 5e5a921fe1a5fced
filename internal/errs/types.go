package errs

import (
	"net/http"
)

// InvalidInputMessage is the detail of every request validation failure.
const InvalidInputMessage = "Invalid input data"

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// code is optional; when nil it defaults to "BAD_REQUEST".
func NewBadRequestError(message string, code *string, errors []FieldError) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest))

	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:    formattedCode,
		Message: message,
		Status:  http.StatusBadRequest,
		Errors:  errors,
	}
}

// NewValidationError creates the 400 returned when a request fails binding
// or validation.
func NewValidationError(errors []FieldError) *HTTPError {
	code := "INVALID_INPUT"
	return NewBadRequestError(InvalidInputMessage, &code, errors)
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound))

	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:    formattedCode,
		Message: message,
		Status:  http.StatusNotFound,
	}
}

// NewInternalServerError creates a generic 500 that carries no internal
// detail.
func NewInternalServerError() *HTTPError {
	return NewInternalServerErrorWithMessage(http.StatusText(http.StatusInternalServerError))
}

// NewInternalServerErrorWithMessage creates a 500 with a caller supplied
// message. Callers decide how much of the underlying failure to expose.
func NewInternalServerErrorWithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message: message,
		Status:  http.StatusInternalServerError,
	}
}
