package models

import "github.com/shopspring/decimal"

// Alert severities derived from utilization thresholds
const (
	AlertSeverityWarning  = "warning"  // 90-99% of budget
	AlertSeverityCritical = "critical" // 100%+ of budget
)

// BudgetUtilization joins one budget with the spend recorded against its
// category during the budget's active window.
type BudgetUtilization struct {
	Category     string          `json:"category"`
	BudgetAmount decimal.Decimal `json:"budget_amount"`
	SpentAmount  decimal.Decimal `json:"spent_amount"`
	Remaining    decimal.Decimal `json:"remaining"`
	Ratio        float64         `json:"ratio"`
	Period       string          `json:"period"`
}

// IsOverBudget reports whether spending has exceeded the limit
func (u BudgetUtilization) IsOverBudget() bool {
	return u.SpentAmount.GreaterThan(u.BudgetAmount)
}

// BudgetAlert is emitted for categories at or beyond the warning threshold
type BudgetAlert struct {
	Category   string  `json:"category"`
	Percentage float64 `json:"percentage"`
	Severity   string  `json:"severity"`
}

// CategoryBudget is one row of the budget overview: a category's limit,
// spend and progress ratio for the current window.
type CategoryBudget struct {
	Category string          `json:"category"`
	Spent    decimal.Decimal `json:"spent"`
	Limit    decimal.Decimal `json:"limit"`
	Progress float64         `json:"progress"`
}

// Remaining returns the unspent part of the limit; negative when over budget
func (cb CategoryBudget) Remaining() decimal.Decimal {
	return cb.Limit.Sub(cb.Spent)
}

// BudgetOverview aggregates all budgets against the current window's spend,
// ordered by progress ratio so the most at-risk categories come first.
type BudgetOverview struct {
	PerCategory []CategoryBudget `json:"per_category"`
	TotalBudget decimal.Decimal  `json:"total_budget"`
	TotalSpent  decimal.Decimal  `json:"total_spent"`
}
