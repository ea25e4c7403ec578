package validator

import (
	stdErrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator using go-playground/validator
type CustomValidator struct {
	v *validator.Validate
}

// New creates a new CustomValidator that reports fields by their json/form name
func New() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})
	return &CustomValidator{v: v}
}

// Validate performs struct validation
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}

// FirstFieldError returns the first failing field and its rule, or ok=false
// when err is not a validation failure.
func FirstFieldError(err error) (field, rule string, ok bool) {
	var verrs validator.ValidationErrors
	if !stdErrors.As(err, &verrs) || len(verrs) == 0 {
		return "", "", false
	}
	return verrs[0].Field(), verrs[0].Tag(), true
}

// Describe renders a validation failure as a short sentence.
func Describe(err error) string {
	field, rule, ok := FirstFieldError(err)
	if !ok {
		return err.Error()
	}
	if rule == "required" {
		return fmt.Sprintf("%s is required", field)
	}
	return fmt.Sprintf("%s failed %q validation", field, rule)
}
