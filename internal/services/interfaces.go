package services

import (
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StatsServiceInterface is the pure aggregation core. Every method is
// deterministic in its inputs; reference times are always explicit.
type StatsServiceInterface interface {
	Summarize(transactions []models.Transaction) models.TransactionSummary
	CategoryBreakdown(transactions []models.Transaction) []models.CategorySummary
	DailyGroups(transactions []models.Transaction) []models.DailyGroup
	PeriodChange(current, previous decimal.Decimal) float64
	MonthlyTrend(transactions []models.Transaction) []models.MonthlySpending
}

// BudgetServiceInterface evaluates budgets against recorded spending and
// orchestrates the budget screen.
type BudgetServiceInterface interface {
	Utilization(budget models.Budget, transactions []models.Transaction) models.BudgetUtilization
	Alerts(utilizations []models.BudgetUtilization) []models.BudgetAlert
	Overview(budgets []models.Budget, transactions []models.Transaction) models.BudgetOverview

	SaveBudget(budget *models.Budget) (*models.Budget, error)
	GetOverview(now time.Time) (*models.BudgetOverview, error)
	GetAlerts(now time.Time) ([]models.BudgetAlert, error)
	DeleteBudget(category string) error
}

// TransactionServiceInterface is the ledger write path plus grouped listing
type TransactionServiceInterface interface {
	Create(transaction *models.Transaction) error
	Update(transaction *models.Transaction) error
	Delete(id uuid.UUID) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	List(filters models.TransactionFilters) ([]models.DailyGroup, error)
}

// DashboardServiceInterface computes the dashboard screen state
type DashboardServiceInterface interface {
	Snapshot(now time.Time) (*models.DashboardSnapshot, error)
}

// AnalysisServiceInterface computes the spending analysis screen state
type AnalysisServiceInterface interface {
	Analyze(period string, now time.Time) (*models.SpendingAnalysis, error)
}

// TokenServiceInterface handles owner login and session token validation
type TokenServiceInterface interface {
	Login(password string) (string, time.Time, error)
	ValidateToken(tokenString string) (*models.OwnerClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// MetricsRecorderInterface records domain metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordGauge(name string, value float64)
}

// SeedServiceInterface populates the ledger with generated development data
type SeedServiceInterface interface {
	Seed(months int) error
}
