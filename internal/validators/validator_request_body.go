package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog-api/models"
	"github.com/go-playground/validator/v10"
)

// RequestBodyValidator implements Validator on top of go-playground/validator.
// Every rule of every field is evaluated so that all violations of a
// submission are reported together.
type RequestBodyValidator struct {
	validate *validator.Validate
}

// NewRequestBodyValidator constructs a RequestBodyValidator with the custom
// rule tags registered.
func NewRequestBodyValidator() Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// registration only fails on empty tags or nil funcs
	_ = validate.RegisterValidation(tagNotEmpty, notEmpty)
	_ = validate.RegisterValidation(tagIsString, isString)
	_ = validate.RegisterValidation(tagIsNumber, isNumber)
	_ = validate.RegisterValidation(tagStrongPassword, strongPassword)

	return &RequestBodyValidator{validate: validate}
}

func (v *RequestBodyValidator) Validate(ctx context.Context, body models.RequestBody, schema Schema) error {
	var messages []string

	for _, field := range schema.Fields {
		value := body.Get(field.Name)
		if value == nil && field.Optional {
			continue
		}

		for _, rule := range field.Rules {
			if !v.check(ctx, value, rule) {
				messages = append(messages, fmt.Sprintf(rule.Message, field.Name))
			}
		}
	}

	if len(messages) > 0 {
		return NewValidationError(messages...)
	}

	return nil
}

// check reports whether value satisfies rule. Absent and null values fail
// every rule.
func (v *RequestBodyValidator) check(ctx context.Context, value any, rule Rule) bool {
	if value == nil {
		return false
	}

	return v.validate.VarCtx(ctx, value, rule.Tag) == nil
}
