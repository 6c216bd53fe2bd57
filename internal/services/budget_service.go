package services

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/shopspring/decimal"
)

// budgetService evaluates budgets against recorded spending. The evaluation
// methods (Utilization, Alerts, Overview) are pure; the Get* methods load
// their inputs from the store and hand them to the pure core.
type budgetService struct {
	budgetRepo      repositories.BudgetRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         MetricsRecorderInterface
}

func NewBudgetService(
	budgetRepo repositories.BudgetRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
) BudgetServiceInterface {
	return &budgetService{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
		metrics:         metrics,
	}
}

// Alert thresholds as progress ratios
const (
	alertWarningRatio  = 0.9
	alertCriticalRatio = 1.0
)

// Utilization joins one budget with the expense total recorded against its
// category inside the budget window. A non-positive budget amount has no
// meaningful ratio: it reports fully consumed (1.0) when anything was spent
// and untouched (0.0) when nothing was.
func (s *budgetService) Utilization(budget models.Budget, transactions []models.Transaction) models.BudgetUtilization {
	spent := spentInCategory(budget.Category, transactions)

	ratio := 0.0
	switch {
	case budget.Amount.IsPositive():
		ratio = spent.Div(budget.Amount).InexactFloat64()
	case spent.IsPositive():
		ratio = 1.0
	}

	return models.BudgetUtilization{
		Category:     budget.Category,
		BudgetAmount: budget.Amount,
		SpentAmount:  spent,
		Remaining:    budget.Amount.Sub(spent),
		Ratio:        ratio,
		Period:       budget.Period,
	}
}

// Alerts emits one alert per utilization at or beyond the warning threshold.
// Critical from 100% of budget, warning from 90%; below that, silence.
func (s *budgetService) Alerts(utilizations []models.BudgetUtilization) []models.BudgetAlert {
	alerts := make([]models.BudgetAlert, 0)

	for _, u := range utilizations {
		if u.Ratio < alertWarningRatio {
			continue
		}

		severity := models.AlertSeverityWarning
		if u.Ratio >= alertCriticalRatio {
			severity = models.AlertSeverityCritical
		}

		alerts = append(alerts, models.BudgetAlert{
			Category:   u.Category,
			Percentage: u.Ratio * 100,
			Severity:   severity,
		})
	}

	return alerts
}

// Overview builds the per-category budget rows from the supplied window's
// transactions. Rows are ordered by progress ratio descending so the most
// at-risk categories come first; equal ratios keep input order.
func (s *budgetService) Overview(budgets []models.Budget, transactions []models.Transaction) models.BudgetOverview {
	overview := models.BudgetOverview{
		PerCategory: make([]models.CategoryBudget, 0, len(budgets)),
	}

	for i := range budgets {
		budget := &budgets[i]
		spent := spentInCategory(budget.Category, transactions)

		progress := 0.0
		switch {
		case budget.Amount.IsPositive():
			progress = spent.Div(budget.Amount).InexactFloat64()
		case spent.IsPositive():
			progress = 1.0
		}

		overview.PerCategory = append(overview.PerCategory, models.CategoryBudget{
			Category: budget.Category,
			Spent:    spent,
			Limit:    budget.Amount,
			Progress: progress,
		})
		overview.TotalBudget = overview.TotalBudget.Add(budget.Amount)
		overview.TotalSpent = overview.TotalSpent.Add(spent)
	}

	sort.SliceStable(overview.PerCategory, func(i, j int) bool {
		return overview.PerCategory[i].Progress > overview.PerCategory[j].Progress
	})

	return overview
}

// SaveBudget upserts the budget for its category. Saving for a category
// that already has a budget replaces amount, period and start date.
func (s *budgetService) SaveBudget(budget *models.Budget) (*models.Budget, error) {
	if err := budget.Validate(); err != nil {
		return nil, err
	}

	saved, err := s.budgetRepo.Save(budget)
	if err != nil {
		slog.Error("failed to save budget",
			"category", budget.Category,
			"error", err)
		return nil, fmt.Errorf("failed to save budget: %w", err)
	}

	s.metrics.IncrementCounter("budget_saved", map[string]string{"category": saved.Category})

	slog.Info("budget saved",
		"category", saved.Category,
		"amount", saved.Amount.String(),
		"period", saved.Period)

	return saved, nil
}

// GetOverview loads all budgets and the current month's transactions and
// evaluates them together.
func (s *budgetService) GetOverview(now time.Time) (*models.BudgetOverview, error) {
	budgets, err := s.budgetRepo.GetAll()
	if err != nil {
		slog.Error("failed to load budgets for overview", "error", err)
		return nil, fmt.Errorf("failed to load budgets: %w", err)
	}

	monthStart := models.TimePeriodStart(models.TimePeriodMonth, now)
	transactions, err := s.transactionRepo.GetByDateRange(monthStart, now)
	if err != nil {
		slog.Error("failed to load transactions for budget overview", "error", err)
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	overview := s.Overview(budgets, transactions)
	return &overview, nil
}

// GetAlerts evaluates every budget over its own window and returns the
// alerts for those at or beyond the warning threshold.
func (s *budgetService) GetAlerts(now time.Time) ([]models.BudgetAlert, error) {
	budgets, err := s.budgetRepo.GetAll()
	if err != nil {
		slog.Error("failed to load budgets for alerts", "error", err)
		return nil, fmt.Errorf("failed to load budgets: %w", err)
	}

	utilizations := make([]models.BudgetUtilization, 0, len(budgets))
	for i := range budgets {
		budget := budgets[i]
		transactions, err := s.transactionRepo.GetByDateRange(budget.StartDate, budget.EndDate())
		if err != nil {
			slog.Error("failed to load transactions for budget window",
				"category", budget.Category,
				"error", err)
			return nil, fmt.Errorf("failed to load transactions: %w", err)
		}
		utilizations = append(utilizations, s.Utilization(budget, transactions))
	}

	alerts := s.Alerts(utilizations)
	s.metrics.RecordGauge("budget_alerts_active", float64(len(alerts)))

	return alerts, nil
}

// DeleteBudget removes the budget for a category
func (s *budgetService) DeleteBudget(category string) error {
	if !models.IsValidCategory(category) {
		return models.ErrInvalidCategory
	}

	if err := s.budgetRepo.DeleteByCategory(category); err != nil {
		if errors.Is(err, repositories.ErrBudgetNotFound) {
			return err
		}
		slog.Error("failed to delete budget",
			"category", category,
			"error", err)
		return fmt.Errorf("failed to delete budget: %w", err)
	}

	slog.Info("budget deleted", "category", category)
	return nil
}

// spentInCategory sums expense amounts for one category. Income in the
// category never offsets spending.
func spentInCategory(category string, transactions []models.Transaction) decimal.Decimal {
	spent := decimal.Zero
	for i := range transactions {
		if transactions[i].IsExpense() && transactions[i].Category == category {
			spent = spent.Add(transactions[i].Amount)
		}
	}
	return spent
}
