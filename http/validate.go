package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	json "github.com/goccy/go-json"
)

const maxBodyBytes = 1 << 20

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// decodeJSON reads the request body into dst. An empty body leaves dst as is.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return BadRequestError("invalid request body").WithError(err)
	}
	return nil
}

// ReadAndValidateRequest decodes, defaults and validates req. It returns nil
// or the errors to send back.
func ReadAndValidateRequest(w http.ResponseWriter, r *http.Request, req interface{}) []*AppError {
	if err := decodeJSON(w, r, req); err != nil {
		return []*AppError{toAppError(err)}
	}

	if err := defaults.Set(req); err != nil {
		return []*AppError{BadRequestError(err.Error())}
	}

	if err := validate.StructCtx(r.Context(), req); err != nil {
		return validationErrors(err)
	}

	return nil
}

func validationErrors(err error) []*AppError {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return []*AppError{BadRequestError(err.Error())}
	}

	errs := make([]*AppError, 0, len(fieldErrors))
	for _, e := range fieldErrors {
		errs = append(errs, NewAppError(
			"ERR_"+strings.ToUpper(e.Tag()),
			e.Field(),
			errorMessage(e),
			http.StatusBadRequest,
		))
	}
	return errs
}

func errorMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	case "max":
		if fe.Type().Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation: %s", field, fe.Tag())
	}
}
