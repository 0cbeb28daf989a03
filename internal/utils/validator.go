// internal/utils/validator.go
package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("sale_type", validateSaleType)
	validate.RegisterValidation("content_locale", validateContentLocale)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateSaleType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "Primary", "Resale", "Rent":
		return true
	}
	return false
}

func validateContentLocale(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "en", "ar":
		return true
	}
	return false
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "gte":
		return e.Field() + " must be greater than or equal to " + e.Param()
	case "gt":
		return e.Field() + " must be greater than " + e.Param()
	case "url":
		return e.Field() + " must be a valid URL"
	case "sale_type":
		return e.Field() + " must be one of Primary, Resale, Rent"
	case "content_locale":
		return e.Field() + " must be one of en, ar"
	case "dive":
		return e.Field() + " contains invalid entries"
	default:
		return e.Field() + " is invalid"
	}
}
