package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/framlopez/uala-transactions-api/internal/models"
)

// datePattern is the only accepted shape for date query parameters.
var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("date_param", validateDateParam)
	_ = v.RegisterValidation("card_brand", validateCardBrand)
	_ = v.RegisterValidation("payment_method", validatePaymentMethod)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// IsValidDateParam reports whether the value matches YYYY-MM-DD. Used by
// handlers that parse query strings directly.
func IsValidDateParam(value string) bool {
	return datePattern.MatchString(value)
}

// Custom validation functions

func validateDateParam(fl validator.FieldLevel) bool {
	return IsValidDateParam(fl.Field().String())
}

func validateCardBrand(fl validator.FieldLevel) bool {
	return models.IsValidCard(fl.Field().String())
}

func validatePaymentMethod(fl validator.FieldLevel) bool {
	return models.IsValidPaymentMethod(fl.Field().String())
}
