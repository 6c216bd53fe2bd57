package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repositories"
)

var (
	ErrInvalidTimePeriod = errors.New("invalid time period")
)

const (
	topCategoryLimit = 3
	trendMonths      = 6
)

// analysisService computes the spending analysis screen state: totals for
// the selected window, the change against the window immediately before it,
// the category breakdown and a monthly trend.
type analysisService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	stats           StatsServiceInterface
}

func NewAnalysisService(
	transactionRepo repositories.TransactionRepositoryInterface,
	stats StatsServiceInterface,
) AnalysisServiceInterface {
	return &analysisService{
		transactionRepo: transactionRepo,
		stats:           stats,
	}
}

// Analyze builds the analysis payload for a period ending at now. The
// comparison window is the same calendar span immediately before the
// current one, so the two windows always abut.
func (s *analysisService) Analyze(period string, now time.Time) (*models.SpendingAnalysis, error) {
	if !models.IsValidTimePeriod(period) {
		return nil, ErrInvalidTimePeriod
	}

	currentStart := models.TimePeriodStart(period, now)
	previousStart := models.PreviousTimePeriodStart(period, now)

	current, err := s.transactionRepo.GetByDateRange(currentStart, now)
	if err != nil {
		slog.Error("failed to load current window for analysis",
			"period", period,
			"error", err)
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	previous, err := s.transactionRepo.GetByDateRange(previousStart, currentStart)
	if err != nil {
		slog.Error("failed to load previous window for analysis",
			"period", period,
			"error", err)
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	trendStart := monthOf(now).AddDate(0, -(trendMonths - 1), 0)
	trendWindow, err := s.transactionRepo.GetByDateRange(trendStart, now)
	if err != nil {
		slog.Error("failed to load trend window for analysis", "error", err)
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	totalSpent := s.stats.Summarize(current).Expenses
	previousSpent := s.stats.Summarize(previous).Expenses
	breakdown := s.stats.CategoryBreakdown(current)

	return &models.SpendingAnalysis{
		Period:        period,
		TotalSpent:    totalSpent,
		ChangePercent: s.stats.PeriodChange(totalSpent, previousSpent),
		Breakdown:     breakdown,
		TopCategories: topOf(breakdown, topCategoryLimit),
		MonthlyTrend:  s.stats.MonthlyTrend(trendWindow),
	}, nil
}

func topOf(breakdown []models.CategorySummary, limit int) []models.CategorySummary {
	if len(breakdown) <= limit {
		return breakdown
	}
	return breakdown[:limit]
}
