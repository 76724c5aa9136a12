// Package validation builds the shared validator instance and flattens its
// errors into the per-field message maps returned on 400 responses.
package validation

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// New creates a validator configured for the store's request types: fields
// are reported under their JSON names and the custom "price" rule is
// registered.
func New() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("price", validPrice); err != nil {
		panic(fmt.Sprintf("failed to register price validation: %v", err))
	}

	return v
}

// validPrice accepts a positive decimal with at most 3 integer digits and at
// most 2 fractional digits, mirroring a decimal(5,2) column.
func validPrice(fl validator.FieldLevel) bool {
	price := fl.Field().Float()
	if price <= 0 || price >= 1000 {
		return false
	}
	cents := price * 100
	return math.Abs(cents-math.Round(cents)) < 1e-6
}

// ErrorMap flattens a validator error into a field -> message map suitable
// for a 400 response body. Non-validator errors map to a single generic
// entry.
func ErrorMap(err error) map[string]string {
	messages := make(map[string]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		messages["detail"] = err.Error()
		return messages
	}

	for _, fieldErr := range validationErrors {
		messages[fieldErr.Field()] = messageFor(fieldErr)
	}
	return messages
}

func messageFor(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "this field is required"
	case "min":
		return fmt.Sprintf("ensure this field has at least %s characters", fieldErr.Param())
	case "max":
		return fmt.Sprintf("ensure this field has no more than %s characters", fieldErr.Param())
	case "gte":
		return fmt.Sprintf("ensure this value is greater than or equal to %s", fieldErr.Param())
	case "price":
		return "a valid positive number with no more than 3 digits before and 2 after the decimal point is required"
	}
	return fmt.Sprintf("failed on the '%s' rule", fieldErr.Tag())
}
