// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	"marketplace/internal/domain/entity"

	playground "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Validator validates bound request bodies.
type Validator struct {
	validate *playground.Validate
}

// New creates a validator with the marketplace's custom tags registered.
func New() *Validator {
	validate := playground.New(playground.WithRequiredStructEnabled())

	// Money fields are validated through their decimal string form.
	validate.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if value, ok := field.Interface().(decimal.Decimal); ok {
			return value.String()
		}

		return nil
	}, decimal.Decimal{})

	_ = validate.RegisterValidation("business_type", func(fl playground.FieldLevel) bool {
		return entity.BusinessType(fl.Field().String()).IsValid()
	})
	_ = validate.RegisterValidation("decimal_gte0", func(fl playground.FieldLevel) bool {
		value, err := decimal.NewFromString(fl.Field().String())
		return err == nil && !value.IsNegative()
	})

	return &Validator{validate: validate}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		messages = append(messages, describe(fieldErr))
	}

	return errors.New(strings.Join(messages, "; "))
}

func describe(fieldErr playground.FieldError) string {
	field := fieldErr.Field()

	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fieldErr.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fieldErr.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fieldErr.Param())
	case "business_type":
		return fmt.Sprintf("%s must be hotel or seller", field)
	case "decimal_gte0":
		return fmt.Sprintf("%s must be a non-negative decimal", field)
	default:
		return fmt.Sprintf("%s failed %s validation", field, fieldErr.Tag())
	}
}
