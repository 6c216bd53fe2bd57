package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionSummary holds the income/expense totals of a transaction set
type TransactionSummary struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Net      decimal.Decimal `json:"net"`
}

// IsProfit reports whether the period closed at or above break-even
func (s TransactionSummary) IsProfit() bool {
	return !s.Net.IsNegative()
}

// CategorySummary is the expense total of one category and its share of all
// expenses in the set. Percentage is a ratio in [0, 1]; it is 0 for every
// category when the set contains no expenses.
type CategorySummary struct {
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage float64         `json:"percentage"`
}

// DailyGroup is the set of transactions falling on one calendar day,
// newest first, with the day's net amount.
type DailyGroup struct {
	Day          time.Time       `json:"day"`
	Transactions []Transaction   `json:"transactions"`
	Net          decimal.Decimal `json:"net"`
}

// MonthlySpending is the expense total of one calendar month
type MonthlySpending struct {
	Month  time.Time       `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

// SpendingAnalysis is the computed payload behind the analysis screen
type SpendingAnalysis struct {
	Period        string            `json:"period"`
	TotalSpent    decimal.Decimal   `json:"total_spent"`
	ChangePercent float64           `json:"change_percent"`
	Breakdown     []CategorySummary `json:"breakdown"`
	TopCategories []CategorySummary `json:"top_categories"`
	MonthlyTrend  []MonthlySpending `json:"monthly_trend"`
}

// DashboardSnapshot is the computed payload behind the dashboard screen.
// It is rebuilt from the ledger on every load; nothing here is ambient
// mutable state.
type DashboardSnapshot struct {
	Balance            decimal.Decimal   `json:"balance"`
	MonthlyIncome      decimal.Decimal   `json:"monthly_income"`
	MonthlyExpenses    decimal.Decimal   `json:"monthly_expenses"`
	RecentTransactions []Transaction     `json:"recent_transactions"`
	SpendingByCategory []CategorySummary `json:"spending_by_category"`
}
