package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	dErrors "ainadeul/pkg/domain-errors"
	platformstrings "ainadeul/pkg/platform/strings"
)

var yearMonth = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

var structValidator = func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields by their JSON key so messages match what clients send
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("yearmonth", func(fl validator.FieldLevel) bool {
		return yearMonth.MatchString(fl.Field().String())
	})
	return v
}()

// Struct runs the validate tags of req and converts the first failure into a
// CodeValidation domain error.
func Struct(req any) error {
	err := structValidator.Struct(req)
	if err == nil {
		return nil
	}
	return dErrors.New(dErrors.CodeValidation, describe(err))
}

func describe(err error) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return "invalid request body"
	}

	fe := errs[0]
	field := fe.Field()
	if field == "" || field == fe.StructField() {
		field = platformstrings.SnakeCase(fe.StructField())
	}

	switch tag := fe.ActualTag(); tag {
	case "required":
		return field + " is required"
	case "notblank":
		return field + " must not be blank"
	case "email", "url", "uuid":
		return fmt.Sprintf("%s must be a valid %s", field, tag)
	case "latitude", "longitude":
		return fmt.Sprintf("%s must be a valid %s", field, tag)
	case "yearmonth":
		return field + " must be formatted as YYYY-MM"
	case "datetime":
		return fmt.Sprintf("%s must be formatted as %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "gte", "lte":
		return field + " is out of range"
	default:
		return field + " is invalid"
	}
}
