package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"learndash/internal/models"

	"github.com/go-playground/validator/v10"
)

// Messages maps a json field name, optionally suffixed with ".<tag>", to a client message.
// "name.required" wins over "name".
type Messages map[string]string

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Struct validates v and reports the first failing field as a validation AppError.
func Struct(v any, msgs Messages) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	if msg, ok := msgs[fe.Field()+"."+fe.Tag()]; ok {
		return models.Invalid(msg)
	}
	if msg, ok := msgs[fe.Field()]; ok {
		return models.Invalid(msg)
	}
	return models.Invalid(describe(fe))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed on the '%s' rule", fe.Field(), fe.Tag())
	}
}
