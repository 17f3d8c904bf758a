// Package validation adapts go-playground/validator to the field-keyed
// error envelope the API exposes.
package validation

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "scribe/internal/errors"
)

// Validator implements echo.Validator and reports violations as
// *apperrors.ValidationError keyed by the field's wire name.
type Validator struct {
	validate *validator.Validate
}

// New builds the request validator.
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := tagName(fld.Tag.Get("json"))
		if name == "" {
			name = tagName(fld.Tag.Get("query"))
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	// The built-in numeric rule admits signs and decimals; pagination and id
	// parameters need whole numbers.
	if err := v.RegisterValidation("integer", isInteger); err != nil {
		panic(err)
	}
	return &Validator{validate: v}
}

func tagName(tag string) string {
	name := strings.SplitN(tag, ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

func isInteger(fl validator.FieldLevel) bool {
	_, err := strconv.Atoi(fl.Field().String())
	return err == nil
}

// Validate implements the echo.Validator interface.
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return err
	}

	ve := &apperrors.ValidationError{}
	for _, fe := range fieldErrs {
		ve.Add(fe.Field(), message(fe))
	}
	return ve
}

func message(fe validator.FieldError) string {
	field := strings.ReplaceAll(fe.Field(), "_", " ")
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "email":
		return fmt.Sprintf("The %s must be a valid email address.", field)
	case "min":
		return fmt.Sprintf("The %s must be at least %s characters.", field, fe.Param())
	case "max":
		return fmt.Sprintf("The %s must not be greater than %s characters.", field, fe.Param())
	case "integer":
		return fmt.Sprintf("The %s must be an integer.", field)
	default:
		return fmt.Sprintf("The %s is invalid.", field)
	}
}

// Messages for rules that need the store and therefore run in the services.
const (
	MsgEmailTaken       = "The email has already been taken."
	MsgCredentials      = "The provided credentials are incorrect."
	MsgPasswordBreached = "The given password has appeared in a data leak. Please choose a different password."
)

// MsgSelectedInvalid reports a reference to a row that does not exist.
func MsgSelectedInvalid(field string) string {
	return fmt.Sprintf("The selected %s is invalid.", field)
}

// ParseBool parses the lenient boolean encodings accepted by filter
// parameters. The accepted set is pinned to strconv.ParseBool:
// 1, t, T, TRUE, true, True, 0, f, F, FALSE, false, False.
func ParseBool(s string) (bool, error) {
	return strconv.ParseBool(s)
}
