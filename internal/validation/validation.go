package validation

import (
	"errors"
	"reflect"
	"strings"
	"unicode"

	"advertapp/internal/constants"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// FieldError is a single field violation in a validation failure response.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// RegisterCustomValidators installs the password policy rule and json tag
// names on gin's binding engine. Safe to call more than once.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("passwordpolicy", passwordPolicy)
}

// passwordPolicy requires at least one lowercase letter, one uppercase
// letter, one digit and one symbol from the allowed set. Length limits are
// enforced separately by min/max tags.
func passwordPolicy(fl validator.FieldLevel) bool {
	var lower, upper, digit, symbol bool
	for _, r := range fl.Field().String() {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(constants.PasswordSymbols, r):
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}

// FieldErrors converts a binding error into the aggregated violation list.
// The second return value is false when the error is not a validation error
// (e.g. malformed JSON) and should be reported as a plain bad request.
func FieldErrors(err error) ([]FieldError, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}

	out := make([]FieldError, len(verrs))
	for i, fe := range verrs {
		out[i] = FieldError{Field: fe.Field(), Message: messageFor(fe)}
	}
	return out, true
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "min":
		return fe.Field() + " is too short"
	case "max":
		return fe.Field() + " is too long"
	case "passwordpolicy":
		return "password is too weak"
	default:
		return fe.Field() + " is invalid"
	}
}
