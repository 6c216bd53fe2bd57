package dto

// CategorySummaryResponse is one category's share of spending
type CategorySummaryResponse struct {
	Category   string  `json:"category"`
	Amount     string  `json:"amount"`
	Percentage float64 `json:"percentage"`
	Icon       string  `json:"icon"`
	Color      string  `json:"color"`
}

// DashboardResponse is the dashboard screen payload
type DashboardResponse struct {
	Balance            string                    `json:"balance"`
	MonthlyIncome      string                    `json:"monthly_income"`
	MonthlyExpenses    string                    `json:"monthly_expenses"`
	RecentTransactions []TransactionResponse     `json:"recent_transactions"`
	SpendingByCategory []CategorySummaryResponse `json:"spending_by_category"`
}
