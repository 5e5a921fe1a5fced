package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/item-service/internal/errs"
)

const (
	locBody = "body"
	locPath = "path"
)

// Error types reported in errs.FieldError.Type.
const (
	TypeMissing             = "missing"
	TypeStringType          = "string_type"
	TypeIntType             = "int_type"
	TypeIntParsing          = "int_parsing"
	TypeJSONInvalid         = "json_invalid"
	TypeModelAttributesType = "model_attributes_type"
	TypeValueError          = "value_error"
)

var binder = &echo.DefaultBinder{}

// BindAndValidate binds path parameters and the JSON body into payload and
// validates it.
//
// Flow:
//  1. Path parameters are bound through the `param` tags.
//  2. The body is decoded through the `json` tags.
//  3. payload.Validate() applies the `validate` tags.
//
// Binding failures of the path and the body are reported together. Any
// failure yields a 400 *errs.HTTPError with detail "Invalid input data".
// The body is decoded as JSON when the request has no Content-Type or a
// JSON one (application/json, application/*+json). Any other content type
// is reported as a body that is not an object.
//
// payload must be a pointer to a struct.
func BindAndValidate(c echo.Context, payload Validatable) error {
	var fieldErrors []errs.FieldError

	if err := binder.BindPathParams(c, payload); err != nil {
		fieldErrors = append(fieldErrors, pathParamError(c, err))
	}

	if err := bindJSONBody(c, payload); err != nil {
		fieldErrors = append(fieldErrors, bodyError(err))
	}

	if len(fieldErrors) > 0 {
		return errs.NewValidationError(fieldErrors)
	}

	if err := payload.Validate(); err != nil {
		return errs.NewValidationError(extractValidationErrors(payload, err))
	}

	return nil
}

var errNotJSONBody = errors.New("body is not JSON")

// bindJSONBody decodes the request body into payload. An absent body
// leaves payload untouched so required fields are reported as missing.
func bindJSONBody(c echo.Context, payload any) error {
	req := c.Request()
	if req.ContentLength == 0 || req.Body == nil || req.Body == http.NoBody {
		return nil
	}

	if !isJSONContentType(req.Header.Get(echo.HeaderContentType)) {
		return errNotJSONBody
	}

	err := c.Echo().JSONSerializer.Deserialize(c, payload)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// isJSONContentType reports whether a body with this Content-Type header is
// decoded as JSON. An empty header counts as JSON.
func isJSONContentType(header string) bool {
	if header == "" {
		return true
	}

	mediaType, _, err := mime.ParseMediaType(header)
	if err != nil {
		return false
	}

	if mediaType == echo.MIMEApplicationJSON {
		return true
	}
	return strings.HasPrefix(mediaType, "application/") && strings.HasSuffix(mediaType, "+json")
}

// pathParamError describes a path parameter that could not be converted
// into its field type. The failing parameter is found by its raw value.
func pathParamError(c echo.Context, err error) errs.FieldError {
	var numErr *strconv.NumError
	if !errors.As(err, &numErr) {
		return errs.FieldError{Loc: []string{locPath}, Msg: err.Error(), Type: TypeValueError}
	}

	loc := []string{locPath}
	values := c.ParamValues()
	for i, name := range c.ParamNames() {
		if i < len(values) && values[i] == numErr.Num {
			loc = append(loc, name)
			break
		}
	}

	return errs.FieldError{
		Loc:  loc,
		Msg:  "Input should be a valid integer, unable to parse string as an integer",
		Type: TypeIntParsing,
	}
}

// bodyError describes a body that could not be decoded.
func bodyError(err error) errs.FieldError {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return errs.FieldError{
			Loc:  []string{locBody},
			Msg:  "JSON decode error",
			Type: TypeJSONInvalid,
		}
	}

	notObject := errs.FieldError{
		Loc:  []string{locBody},
		Msg:  "Input should be a valid dictionary or object to extract fields from",
		Type: TypeModelAttributesType,
	}
	if errors.Is(err, errNotJSONBody) {
		return notObject
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field == "" {
			return notObject
		}

		fieldErr := errs.FieldError{Loc: []string{locBody, typeErr.Field}}
		switch kind := typeErr.Type.Kind(); {
		case kind == reflect.String:
			fieldErr.Msg = "Input should be a valid string"
			fieldErr.Type = TypeStringType
		case kind >= reflect.Int && kind <= reflect.Uint64:
			fieldErr.Msg = "Input should be a valid integer"
			fieldErr.Type = TypeIntType
		default:
			fieldErr.Msg = fmt.Sprintf("Input should be a valid %s", typeErr.Type)
			fieldErr.Type = TypeValueError
		}
		return fieldErr
	}

	return errs.FieldError{Loc: []string{locBody}, Msg: err.Error(), Type: TypeValueError}
}

func extractValidationErrors(payload any, err error) []errs.FieldError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []errs.FieldError{{Loc: []string{locBody}, Msg: err.Error(), Type: TypeValueError}}
	}

	fieldErrors := make([]errs.FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fieldErr := errs.FieldError{
			Loc: []string{location(payload, fe.StructField()), fe.Field()},
		}

		switch fe.Tag() {
		case "required":
			fieldErr.Msg = "Field required"
			fieldErr.Type = TypeMissing
		case "min":
			fieldErr.Msg = fmt.Sprintf("Value should be at least %s", fe.Param())
			fieldErr.Type = TypeValueError
		case "max":
			fieldErr.Msg = fmt.Sprintf("Value should be at most %s", fe.Param())
			fieldErr.Type = TypeValueError
		default:
			if fe.Param() != "" {
				fieldErr.Msg = fmt.Sprintf("failed on %s:%s", fe.Tag(), fe.Param())
			} else {
				fieldErr.Msg = fmt.Sprintf("failed on %s", fe.Tag())
			}
			fieldErr.Type = TypeValueError
		}

		fieldErrors = append(fieldErrors, fieldErr)
	}

	return fieldErrors
}
