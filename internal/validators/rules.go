package validators

import (
	"math"
	"reflect"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Custom validator tags registered by NewRequestBodyValidator.
const (
	tagNotEmpty       = "not_empty"
	tagIsString       = "is_string"
	tagIsNumber       = "is_number"
	tagStrongPassword = "strong_password"
)

const minPasswordLength = 8

// Rule is a single check applied to a field value.
// Tag is a go-playground/validator tag expression, Message the text reported
// on failure with %s replaced by the field name.
type Rule struct {
	Tag     string
	Message string
}

// Predefined rules with their fixed message templates.
var (
	NotEmpty       = Rule{Tag: tagNotEmpty, Message: "%s should not be empty"}
	IsString       = Rule{Tag: tagIsString, Message: "%s must be a string"}
	IsEmail        = Rule{Tag: tagIsString + ",email", Message: "%s must be an email"}
	IsNumber       = Rule{Tag: tagIsNumber, Message: "%s must be a number conforming to the specified constraints"}
	StrongPassword = Rule{Tag: tagIsString + "," + tagStrongPassword, Message: "%s is not strong enough"}
)

// notEmpty fails only for empty strings; other non-null JSON values are
// considered present.
func notEmpty(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() == reflect.String {
		return field.Len() > 0
	}
	return true
}

func isString(fl validator.FieldLevel) bool {
	return fl.Field().Kind() == reflect.String
}

// isNumber accepts finite positive integral JSON numbers.
func isNumber(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.Float64 {
		return false
	}

	f := field.Float()
	return !math.IsInf(f, 0) && !math.IsNaN(f) && f == math.Trunc(f) && f >= 1 && f <= math.MaxInt64
}

// strongPassword requires a minimal length and at least one upper case
// letter, one lower case letter and one digit.
func strongPassword(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}

	password := field.String()
	if len([]rune(password)) < minPasswordLength {
		return false
	}

	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}

	return upper && lower && digit
}
