package validation

import (
	"reflect"
	"strings"

	"fintrack/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

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

	_ = v.RegisterValidation("spending_category", validateSpendingCategory)
	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("budget_period", validateBudgetPeriod)
	_ = v.RegisterValidation("time_period", validateTimePeriod)
	_ = v.RegisterValidation("money_amount", validateMoneyAmount)
	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateSpendingCategory validates that a category belongs to the closed set
func validateSpendingCategory(fl validator.FieldLevel) bool {
	return models.IsValidCategory(strings.ToLower(fl.Field().String()))
}

// validateTransactionType validates that transaction type is income or expense
func validateTransactionType(fl validator.FieldLevel) bool {
	return models.IsValidTransactionType(strings.ToLower(fl.Field().String()))
}

// validateBudgetPeriod validates that a budget period is one of the allowed spans
func validateBudgetPeriod(fl validator.FieldLevel) bool {
	return models.IsValidBudgetPeriod(strings.ToLower(fl.Field().String()))
}

// validateTimePeriod validates that a query period is one of the allowed windows
func validateTimePeriod(fl validator.FieldLevel) bool {
	return models.IsValidTimePeriod(strings.ToLower(fl.Field().String()))
}

// validateMoneyAmount validates that an amount is non-negative with at most
// 2 decimal places. Amounts travel as strings so they parse exactly.
func validateMoneyAmount(fl validator.FieldLevel) bool {
	amount, ok := parseAmount(fl)
	if !ok {
		return false
	}
	return !amount.IsNegative() && amount.Exponent() >= -2
}

// validatePositiveAmount validates that an amount is greater than 0
func validatePositiveAmount(fl validator.FieldLevel) bool {
	amount, ok := parseAmount(fl)
	if !ok {
		return false
	}
	return amount.IsPositive()
}

func parseAmount(fl validator.FieldLevel) (decimal.Decimal, bool) {
	switch fl.Field().Kind() {
	case reflect.String:
		amount, err := decimal.NewFromString(fl.Field().String())
		if err != nil {
			return decimal.Zero, false
		}
		return amount, true
	case reflect.Float32, reflect.Float64:
		return decimal.NewFromFloat(fl.Field().Float()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return decimal.NewFromInt(fl.Field().Int()), true
	default:
		return decimal.Zero, false
	}
}
