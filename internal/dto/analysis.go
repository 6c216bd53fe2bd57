package dto

// AnalysisQuery selects the window for the analysis screen
type AnalysisQuery struct {
	Period string `query:"period" validate:"omitempty,time_period"`
}

// MonthlySpendingResponse is one month's expense total
type MonthlySpendingResponse struct {
	Month  string `json:"month"`
	Amount string `json:"amount"`
}

// AnalysisResponse is the analysis screen payload
type AnalysisResponse struct {
	Period        string                    `json:"period"`
	TotalSpent    string                    `json:"total_spent"`
	ChangePercent float64                   `json:"change_percent"`
	Breakdown     []CategorySummaryResponse `json:"breakdown"`
	TopCategories []CategorySummaryResponse `json:"top_categories"`
	MonthlyTrend  []MonthlySpendingResponse `json:"monthly_trend"`
}
