package dto

import (
	"time"

	"github.com/google/uuid"
)

// SaveBudgetRequest upserts the budget for a category
type SaveBudgetRequest struct {
	Category  string    `json:"category" validate:"required,spending_category"`
	Amount    string    `json:"amount" validate:"required,positive_amount"`
	Period    string    `json:"period" validate:"required,budget_period"`
	StartDate time.Time `json:"start_date" validate:"required"`
}

// BudgetResponse is one stored budget
type BudgetResponse struct {
	ID        uuid.UUID `json:"id"`
	Category  string    `json:"category"`
	Amount    string    `json:"amount"`
	Period    string    `json:"period"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// CategoryBudgetResponse is one row of the budget overview
type CategoryBudgetResponse struct {
	Category  string  `json:"category"`
	Spent     string  `json:"spent"`
	Limit     string  `json:"limit"`
	Remaining string  `json:"remaining"`
	Progress  float64 `json:"progress"`
}

// BudgetOverviewResponse is the budget screen payload
type BudgetOverviewResponse struct {
	PerCategory []CategoryBudgetResponse `json:"per_category"`
	TotalBudget string                   `json:"total_budget"`
	TotalSpent  string                   `json:"total_spent"`
}

// BudgetAlertResponse is one threshold alert
type BudgetAlertResponse struct {
	Category   string  `json:"category"`
	Percentage float64 `json:"percentage"`
	Severity   string  `json:"severity"`
}

// BudgetAlertsResponse is the alert list payload
type BudgetAlertsResponse struct {
	Alerts []BudgetAlertResponse `json:"alerts"`
}
