package services

import (
	"fmt"
	"log/slog"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repositories"
)

// Number of entries shown on the dashboard's recent list
const recentTransactionLimit = 5

// dashboardService computes the dashboard screen state. The snapshot is
// rebuilt from the ledger on every call; nothing is cached between loads.
type dashboardService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	stats           StatsServiceInterface
}

func NewDashboardService(
	transactionRepo repositories.TransactionRepositoryInterface,
	stats StatsServiceInterface,
) DashboardServiceInterface {
	return &dashboardService{
		transactionRepo: transactionRepo,
		stats:           stats,
	}
}

// Snapshot builds the dashboard payload: the all-time balance, the current
// month's income and expense totals, the most recent entries and the
// month's spending split by category.
func (s *dashboardService) Snapshot(now time.Time) (*models.DashboardSnapshot, error) {
	allTransactions, err := s.transactionRepo.GetWithFilters(models.TransactionFilters{})
	if err != nil {
		slog.Error("failed to load transactions for dashboard", "error", err)
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	monthStart := models.TimePeriodStart(models.TimePeriodMonth, now)
	monthTransactions, err := s.transactionRepo.GetByDateRange(monthStart, now)
	if err != nil {
		slog.Error("failed to load month transactions for dashboard", "error", err)
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	recent, err := s.transactionRepo.GetRecent(recentTransactionLimit)
	if err != nil {
		slog.Error("failed to load recent transactions for dashboard", "error", err)
		return nil, fmt.Errorf("failed to load recent transactions: %w", err)
	}

	overall := s.stats.Summarize(allTransactions)
	monthly := s.stats.Summarize(monthTransactions)

	return &models.DashboardSnapshot{
		Balance:            overall.Net,
		MonthlyIncome:      monthly.Income,
		MonthlyExpenses:    monthly.Expenses,
		RecentTransactions: recent,
		SpendingByCategory: s.stats.CategoryBreakdown(monthTransactions),
	}, nil
}
