package services

import (
	"errors"
	"testing"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// noopMetrics satisfies MetricsRecorderInterface without touching the
// global Prometheus registry.
type noopMetrics struct{}

func (noopMetrics) IncrementCounter(name string, tags map[string]string) {}
func (noopMetrics) RecordGauge(name string, value float64)               {}

type BudgetServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	budgetRepo      *repository_mocks.MockBudgetRepositoryInterface
	transactionRepo *repository_mocks.MockTransactionRepositoryInterface
	service         BudgetServiceInterface
}

func (suite *BudgetServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.budgetRepo = repository_mocks.NewMockBudgetRepositoryInterface(suite.ctrl)
	suite.transactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(suite.ctrl)
	suite.service = NewBudgetService(suite.budgetRepo, suite.transactionRepo, noopMetrics{})
}

func (suite *BudgetServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func monthlyBudget(category, amount string, start time.Time) models.Budget {
	return models.Budget{
		Category:  category,
		Amount:    decimal.RequireFromString(amount),
		Period:    models.BudgetPeriodMonthly,
		StartDate: start,
	}
}

func (suite *BudgetServiceTestSuite) TestUtilization() {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	budget := monthlyBudget(models.CategoryFood, "400.00", start)

	transactions := []models.Transaction{
		expense("100.00", models.CategoryFood, start.AddDate(0, 0, 3)),
		expense("50.00", models.CategoryFood, start.AddDate(0, 0, 10)),
		expense("999.00", models.CategoryShopping, start.AddDate(0, 0, 5)),
		income("200.00", start.AddDate(0, 0, 7)),
	}

	utilization := suite.service.Utilization(budget, transactions)

	suite.Equal(models.CategoryFood, utilization.Category)
	suite.True(utilization.SpentAmount.Equal(decimal.RequireFromString("150.00")))
	suite.True(utilization.Remaining.Equal(decimal.RequireFromString("250.00")))
	suite.InDelta(0.375, utilization.Ratio, 1e-9)
	suite.False(utilization.IsOverBudget())
}

func (suite *BudgetServiceTestSuite) TestUtilization_OverBudget() {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	budget := monthlyBudget(models.CategoryFood, "100.00", start)

	utilization := suite.service.Utilization(budget, []models.Transaction{
		expense("150.00", models.CategoryFood, start.AddDate(0, 0, 1)),
	})

	suite.True(utilization.IsOverBudget())
	suite.True(utilization.Remaining.IsNegative())
	suite.InDelta(1.5, utilization.Ratio, 1e-9)
}

func (suite *BudgetServiceTestSuite) TestUtilization_NonPositiveBudgetAmount() {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	zeroBudget := models.Budget{
		Category:  models.CategoryFood,
		Amount:    decimal.Zero,
		Period:    models.BudgetPeriodMonthly,
		StartDate: start,
	}

	suite.Run("with spending reports fully consumed", func() {
		utilization := suite.service.Utilization(zeroBudget, []models.Transaction{
			expense("10.00", models.CategoryFood, start.AddDate(0, 0, 1)),
		})
		suite.InDelta(1.0, utilization.Ratio, 1e-9)
	})

	suite.Run("without spending reports untouched", func() {
		utilization := suite.service.Utilization(zeroBudget, nil)
		suite.InDelta(0.0, utilization.Ratio, 1e-9)
	})
}

func (suite *BudgetServiceTestSuite) TestAlerts() {
	utilizations := []models.BudgetUtilization{
		{Category: models.CategoryFood, Ratio: 0.5},
		{Category: models.CategoryShopping, Ratio: 0.9},
		{Category: models.CategoryEntertainment, Ratio: 0.95},
		{Category: models.CategoryUtilities, Ratio: 1.0},
		{Category: models.CategoryHealthcare, Ratio: 1.4},
	}

	alerts := suite.service.Alerts(utilizations)

	suite.Len(alerts, 4)
	suite.Equal(models.AlertSeverityWarning, alerts[0].Severity)
	suite.Equal(models.AlertSeverityWarning, alerts[1].Severity)
	suite.Equal(models.AlertSeverityCritical, alerts[2].Severity)
	suite.Equal(models.AlertSeverityCritical, alerts[3].Severity)
	suite.InDelta(90.0, alerts[0].Percentage, 1e-9)
	suite.InDelta(140.0, alerts[3].Percentage, 1e-9)
}

func (suite *BudgetServiceTestSuite) TestAlerts_NoneBelowWarningThreshold() {
	alerts := suite.service.Alerts([]models.BudgetUtilization{
		{Category: models.CategoryFood, Ratio: 0.89},
	})
	suite.Empty(alerts)
}

func (suite *BudgetServiceTestSuite) TestOverview_SortedByProgressDescending() {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	budgets := []models.Budget{
		monthlyBudget(models.CategoryFood, "400.00", start),
		monthlyBudget(models.CategoryShopping, "100.00", start),
	}
	transactions := []models.Transaction{
		expense("100.00", models.CategoryFood, start.AddDate(0, 0, 2)),
		expense("90.00", models.CategoryShopping, start.AddDate(0, 0, 2)),
	}

	overview := suite.service.Overview(budgets, transactions)

	suite.Len(overview.PerCategory, 2)
	suite.Equal(models.CategoryShopping, overview.PerCategory[0].Category)
	suite.InDelta(0.9, overview.PerCategory[0].Progress, 1e-9)
	suite.Equal(models.CategoryFood, overview.PerCategory[1].Category)
	suite.True(overview.TotalBudget.Equal(decimal.RequireFromString("500.00")))
	suite.True(overview.TotalSpent.Equal(decimal.RequireFromString("190.00")))
}

func (suite *BudgetServiceTestSuite) TestSaveBudget() {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	budget := monthlyBudget(models.CategoryFood, "400.00", start)

	suite.budgetRepo.EXPECT().Save(&budget).Return(&budget, nil)

	saved, err := suite.service.SaveBudget(&budget)

	suite.NoError(err)
	suite.Equal(models.CategoryFood, saved.Category)
}

func (suite *BudgetServiceTestSuite) TestSaveBudget_RejectsInvalidInput() {
	tests := []struct {
		name        string
		budget      models.Budget
		expectedErr error
	}{
		{
			name:        "non-positive amount",
			budget:      monthlyBudget(models.CategoryFood, "0", time.Now()),
			expectedErr: models.ErrNonPositiveBudget,
		},
		{
			name:        "unknown category",
			budget:      monthlyBudget("yachts", "100.00", time.Now()),
			expectedErr: models.ErrInvalidCategory,
		},
		{
			name: "unknown period",
			budget: models.Budget{
				Category:  models.CategoryFood,
				Amount:    decimal.RequireFromString("100.00"),
				Period:    "fortnightly",
				StartDate: time.Now(),
			},
			expectedErr: models.ErrInvalidBudgetPeriod,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.service.SaveBudget(&tt.budget)
			suite.ErrorIs(err, tt.expectedErr)
		})
	}
}

func (suite *BudgetServiceTestSuite) TestGetOverview() {
	now := time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)
	monthStart := models.TimePeriodStart(models.TimePeriodMonth, now)

	budgets := []models.Budget{
		monthlyBudget(models.CategoryFood, "400.00", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)),
	}
	transactions := []models.Transaction{
		expense("120.00", models.CategoryFood, now.AddDate(0, 0, -2)),
	}

	suite.budgetRepo.EXPECT().GetAll().Return(budgets, nil)
	suite.transactionRepo.EXPECT().GetByDateRange(monthStart, now).Return(transactions, nil)

	overview, err := suite.service.GetOverview(now)

	suite.NoError(err)
	suite.Len(overview.PerCategory, 1)
	suite.True(overview.TotalSpent.Equal(decimal.RequireFromString("120.00")))
}

func (suite *BudgetServiceTestSuite) TestGetOverview_StoreErrorPropagates() {
	now := time.Now()
	storeErr := errors.New("disk on fire")
	suite.budgetRepo.EXPECT().GetAll().Return(nil, storeErr)

	_, err := suite.service.GetOverview(now)

	suite.ErrorIs(err, storeErr)
}

func (suite *BudgetServiceTestSuite) TestGetAlerts_EvaluatesEachBudgetWindow() {
	now := time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	budget := monthlyBudget(models.CategoryFood, "100.00", start)

	suite.budgetRepo.EXPECT().GetAll().Return([]models.Budget{budget}, nil)
	suite.transactionRepo.EXPECT().
		GetByDateRange(start, budget.EndDate()).
		Return([]models.Transaction{
			expense("95.00", models.CategoryFood, start.AddDate(0, 0, 5)),
		}, nil)

	alerts, err := suite.service.GetAlerts(now)

	suite.NoError(err)
	suite.Len(alerts, 1)
	suite.Equal(models.AlertSeverityWarning, alerts[0].Severity)
}

func (suite *BudgetServiceTestSuite) TestDeleteBudget() {
	suite.budgetRepo.EXPECT().DeleteByCategory(models.CategoryFood).Return(nil)

	err := suite.service.DeleteBudget(models.CategoryFood)

	suite.NoError(err)
}

func (suite *BudgetServiceTestSuite) TestDeleteBudget_NotFound() {
	suite.budgetRepo.EXPECT().
		DeleteByCategory(models.CategoryFood).
		Return(repositories.ErrBudgetNotFound)

	err := suite.service.DeleteBudget(models.CategoryFood)

	suite.ErrorIs(err, repositories.ErrBudgetNotFound)
}

func (suite *BudgetServiceTestSuite) TestDeleteBudget_InvalidCategory() {
	err := suite.service.DeleteBudget("yachts")
	suite.ErrorIs(err, models.ErrInvalidCategory)
}

func TestBudgetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}
