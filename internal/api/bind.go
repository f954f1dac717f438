package api

import (
	"encoding/json"
	"errors"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"gymdesk/internal/apperr"
	"gymdesk/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// useJSONFieldNames makes validator report "startDate" instead of "StartDate".
func useJSONFieldNames() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	})
}

// BindJSON decodes and validates the request body, returning an apperr
// validation error that names every failing field.
func BindJSON(c *gin.Context, dst interface{}) error {
	useJSONFieldNames()

	if err := c.ShouldBindJSON(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return ValidationError(verrs)
		}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return apperr.Validation(apperr.Field(typeErr.Field, typeMessage(typeErr)))
		}
		return apperr.BadRequest("Invalid request body")
	}
	return nil
}

func ValidationError(verrs validator.ValidationErrors) *apperr.Error {
	fields := make([]apperr.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, apperr.Field(fe.Field(), getErrorMessage(fe)))
	}
	return apperr.Validation(fields...)
}

func typeMessage(err *json.UnmarshalTypeError) string {
	if err.Type == dateType {
		return err.Field + " must be a date (YYYY-MM-DD)"
	}
	switch err.Type.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return err.Field + " must be a number"
	case reflect.String:
		return err.Field + " must be a string"
	case reflect.Bool:
		return err.Field + " must be true or false"
	default:
		return err.Field + " is invalid"
	}
}

func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return err.Field() + " is required"
	case "email":
		return err.Field() + " must be a valid email address"
	case "min":
		return err.Field() + " must be at least " + err.Param() + " characters"
	case "max":
		return err.Field() + " must be at most " + err.Param() + " characters"
	case "gt":
		return err.Field() + " must be greater than " + err.Param()
	case "gte":
		return err.Field() + " must be greater than or equal to " + err.Param()
	case "lte":
		return err.Field() + " must be less than or equal to " + err.Param()
	case "oneof":
		return err.Field() + " must be one of: " + strings.ReplaceAll(err.Param(), " ", ", ")
	case "gtfield":
		return err.Field() + " must be after " + lowerFirst(err.Param())
	default:
		return err.Field() + " is invalid"
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// ParamID parses a positive integer path parameter.
func ParamID(c *gin.Context, name, label string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, apperr.BadRequest("Invalid " + label + " ID")
	}
	return id, nil
}

// QueryInt reads an optional positive integer query parameter.
func QueryInt(c *gin.Context, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, apperr.Validation(apperr.Field(name, name+" must be a positive integer"))
	}
	return n, nil
}

// QueryNonNegativeInt is QueryInt that also accepts 0.
func QueryNonNegativeInt(c *gin.Context, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, apperr.Validation(apperr.Field(name, name+" must be zero or a positive integer"))
	}
	return n, nil
}

// UserID returns the authenticated caller or a 401 error.
func UserID(c *gin.Context) (int, error) {
	id, ok := auth.GetUserID(c)
	if !ok {
		return 0, apperr.Unauthorized("User not authenticated")
	}
	return id, nil
}
