package services

import (
	"errors"
	"testing"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type DashboardServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	transactionRepo *repository_mocks.MockTransactionRepositoryInterface
	service         DashboardServiceInterface
}

func (suite *DashboardServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.transactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(suite.ctrl)
	suite.service = NewDashboardService(suite.transactionRepo, NewStatsService())
}

func (suite *DashboardServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *DashboardServiceTestSuite) TestSnapshot() {
	now := time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)
	monthStart := models.TimePeriodStart(models.TimePeriodMonth, now)

	older := income("1000.00", now.AddDate(0, -3, 0))
	monthIncome := income("500.00", now.AddDate(0, 0, -5))
	monthExpense := expense("120.00", models.CategoryFood, now.AddDate(0, 0, -2))

	all := []models.Transaction{monthIncome, monthExpense, older}
	month := []models.Transaction{monthIncome, monthExpense}
	recent := []models.Transaction{monthExpense, monthIncome}

	suite.transactionRepo.EXPECT().GetWithFilters(models.TransactionFilters{}).Return(all, nil)
	suite.transactionRepo.EXPECT().GetByDateRange(monthStart, now).Return(month, nil)
	suite.transactionRepo.EXPECT().GetRecent(recentTransactionLimit).Return(recent, nil)

	snapshot, err := suite.service.Snapshot(now)

	suite.NoError(err)
	suite.True(snapshot.Balance.Equal(decimal.RequireFromString("1380.00")))
	suite.True(snapshot.MonthlyIncome.Equal(decimal.RequireFromString("500.00")))
	suite.True(snapshot.MonthlyExpenses.Equal(decimal.RequireFromString("120.00")))
	suite.Len(snapshot.RecentTransactions, 2)
	suite.Len(snapshot.SpendingByCategory, 1)
	suite.Equal(models.CategoryFood, snapshot.SpendingByCategory[0].Category)
}

func (suite *DashboardServiceTestSuite) TestSnapshot_EmptyLedger() {
	now := time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)
	monthStart := models.TimePeriodStart(models.TimePeriodMonth, now)

	suite.transactionRepo.EXPECT().GetWithFilters(models.TransactionFilters{}).Return(nil, nil)
	suite.transactionRepo.EXPECT().GetByDateRange(monthStart, now).Return(nil, nil)
	suite.transactionRepo.EXPECT().GetRecent(recentTransactionLimit).Return(nil, nil)

	snapshot, err := suite.service.Snapshot(now)

	suite.NoError(err)
	suite.True(snapshot.Balance.IsZero())
	suite.Empty(snapshot.SpendingByCategory)
}

func (suite *DashboardServiceTestSuite) TestSnapshot_StoreErrorPropagates() {
	storeErr := errors.New("database is locked")
	suite.transactionRepo.EXPECT().GetWithFilters(gomock.Any()).Return(nil, storeErr)

	_, err := suite.service.Snapshot(time.Now())

	suite.ErrorIs(err, storeErr)
}

func TestDashboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}
