package handlers

import (
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"
)

const dayFormat = "2006-01-02"

func toTransactionResponse(txn *models.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:        txn.ID,
		Amount:    txn.Amount.StringFixed(2),
		Category:  txn.Category,
		Date:      txn.Date,
		Note:      txn.Note,
		Type:      txn.Type,
		CreatedAt: txn.CreatedAt,
		UpdatedAt: txn.UpdatedAt,
	}
}

func toTransactionResponses(txns []models.Transaction) []dto.TransactionResponse {
	out := make([]dto.TransactionResponse, 0, len(txns))
	for i := range txns {
		out = append(out, toTransactionResponse(&txns[i]))
	}
	return out
}

func toDailyGroupResponses(groups []models.DailyGroup) ([]dto.DailyGroupResponse, int) {
	out := make([]dto.DailyGroupResponse, 0, len(groups))
	count := 0
	for i := range groups {
		out = append(out, dto.DailyGroupResponse{
			Day:          groups[i].Day.Format(dayFormat),
			Net:          groups[i].Net.StringFixed(2),
			Transactions: toTransactionResponses(groups[i].Transactions),
		})
		count += len(groups[i].Transactions)
	}
	return out, count
}

func toCategorySummaryResponses(summaries []models.CategorySummary) []dto.CategorySummaryResponse {
	out := make([]dto.CategorySummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		meta := models.MetaForCategory(s.Category)
		out = append(out, dto.CategorySummaryResponse{
			Category:   s.Category,
			Amount:     s.Amount.StringFixed(2),
			Percentage: s.Percentage,
			Icon:       meta.Icon,
			Color:      meta.Color,
		})
	}
	return out
}

func toBudgetResponse(budget *models.Budget) dto.BudgetResponse {
	return dto.BudgetResponse{
		ID:        budget.ID,
		Category:  budget.Category,
		Amount:    budget.Amount.StringFixed(2),
		Period:    budget.Period,
		StartDate: budget.StartDate,
		EndDate:   budget.EndDate(),
	}
}

func toBudgetOverviewResponse(overview *models.BudgetOverview) dto.BudgetOverviewResponse {
	perCategory := make([]dto.CategoryBudgetResponse, 0, len(overview.PerCategory))
	for _, cb := range overview.PerCategory {
		perCategory = append(perCategory, dto.CategoryBudgetResponse{
			Category:  cb.Category,
			Spent:     cb.Spent.StringFixed(2),
			Limit:     cb.Limit.StringFixed(2),
			Remaining: cb.Remaining().StringFixed(2),
			Progress:  cb.Progress,
		})
	}
	return dto.BudgetOverviewResponse{
		PerCategory: perCategory,
		TotalBudget: overview.TotalBudget.StringFixed(2),
		TotalSpent:  overview.TotalSpent.StringFixed(2),
	}
}

func toBudgetAlertResponses(alerts []models.BudgetAlert) []dto.BudgetAlertResponse {
	out := make([]dto.BudgetAlertResponse, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, dto.BudgetAlertResponse{
			Category:   a.Category,
			Percentage: a.Percentage,
			Severity:   a.Severity,
		})
	}
	return out
}

func toMonthlySpendingResponses(trend []models.MonthlySpending) []dto.MonthlySpendingResponse {
	out := make([]dto.MonthlySpendingResponse, 0, len(trend))
	for _, m := range trend {
		out = append(out, dto.MonthlySpendingResponse{
			Month:  m.Month.Format("2006-01"),
			Amount: m.Amount.StringFixed(2),
		})
	}
	return out
}

// periodWindow converts an optional period query into a date window ending now
func periodWindow(period string, now time.Time) (*time.Time, *time.Time) {
	if period == "" {
		return nil, nil
	}
	start := models.TimePeriodStart(period, now)
	return &start, &now
}
