// Package validate turns gin's binding failures into the API's field-error
// batches. All violations for a payload surface together; the engine's
// generic messages are replaced with fixed per-rule ones.
package validate

import (
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"commune/internal/apperr"
)

func init() {
	// report violations under the JSON field name, not the Go one
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fd reflect.StructField) string {
			name := strings.SplitN(fd.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// BindJSON decodes the request body into obj and validates its binding
// tags. The body is cached so gates and handlers can bind it again.
func BindJSON(c *gin.Context, obj any) error {
	err := c.ShouldBindBodyWith(obj, binding.JSON)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperr.NewGeneral("Invalid request body.", apperr.CodeInvalidInput)
	}

	fields := make(apperr.Fields, 0, len(verrs))
	for _, ve := range verrs {
		fields = append(fields, apperr.FieldError{
			Param:   ve.Field(),
			Message: message(ve),
			Code:    apperr.CodeInvalidInput,
		})
	}
	return fields
}

func message(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "This field is required."
	case "min":
		return "Must be at least " + ve.Param() + " characters long."
	case "email":
		return "Must be a valid email address."
	default:
		return "This field is invalid."
	}
}
