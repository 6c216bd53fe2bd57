package handlers

import (
	"fintrack/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator implements echo.Validator on top of the shared
// validation rules.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates the echo request validator
func NewValidator() echo.Validator {
	return &CustomValidator{validator: validation.GetValidator().GetValidate()}
}

// Validate implements the echo.Validator interface
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// fieldErrors flattens validator errors into a field -> message map for the
// standardized validation error response.
func fieldErrors(err error) map[string]string {
	out := make(map[string]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		out["request"] = err.Error()
		return out
	}

	for _, fe := range validationErrors {
		out[fe.Field()] = validationMessage(fe)
	}
	return out
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "spending_category":
		return "must be a known spending category"
	case "transaction_type":
		return "must be income or expense"
	case "budget_period":
		return "must be weekly, monthly, quarterly or yearly"
	case "time_period":
		return "must be week, month, quarter or year"
	case "money_amount":
		return "must be a non-negative amount with at most 2 decimal places"
	case "positive_amount":
		return "must be a positive amount"
	case "min":
		return "is below the allowed minimum"
	case "max":
		return "is above the allowed maximum"
	default:
		return "is invalid"
	}
}
