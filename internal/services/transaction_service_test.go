package services

import (
	"errors"
	"testing"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/repositories/repository_mocks"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	transactionRepo *repository_mocks.MockTransactionRepositoryInterface
	service         TransactionServiceInterface
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.transactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(suite.ctrl)
	suite.service = NewTransactionService(suite.transactionRepo, NewStatsService(), noopMetrics{})
}

func (suite *TransactionServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TransactionServiceTestSuite) validTransaction() *models.Transaction {
	return &models.Transaction{
		Amount:   decimal.NewFromFloat(gofakeit.Price(1, 500)).Round(2),
		Category: models.CategoryFood,
		Type:     models.TransactionTypeExpense,
		Date:     time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
		Note:     gofakeit.Company(),
	}
}

func (suite *TransactionServiceTestSuite) TestCreate() {
	txn := suite.validTransaction()
	suite.transactionRepo.EXPECT().Create(txn).Return(nil)

	err := suite.service.Create(txn)

	suite.NoError(err)
}

func (suite *TransactionServiceTestSuite) TestCreate_RejectsInvalidInput() {
	tests := []struct {
		name        string
		mutate      func(*models.Transaction)
		expectedErr error
	}{
		{
			name:        "negative amount",
			mutate:      func(t *models.Transaction) { t.Amount = decimal.RequireFromString("-1.00") },
			expectedErr: models.ErrNegativeAmount,
		},
		{
			name:        "unknown category",
			mutate:      func(t *models.Transaction) { t.Category = "yachts" },
			expectedErr: models.ErrInvalidCategory,
		},
		{
			name:        "unknown type",
			mutate:      func(t *models.Transaction) { t.Type = "transfer" },
			expectedErr: models.ErrInvalidTransactionType,
		},
		{
			name:        "missing date",
			mutate:      func(t *models.Transaction) { t.Date = time.Time{} },
			expectedErr: models.ErrMissingDate,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			txn := suite.validTransaction()
			tt.mutate(txn)

			err := suite.service.Create(txn)

			suite.ErrorIs(err, tt.expectedErr)
		})
	}
}

func (suite *TransactionServiceTestSuite) TestCreate_ZeroAmountAllowed() {
	txn := suite.validTransaction()
	txn.Amount = decimal.Zero
	suite.transactionRepo.EXPECT().Create(txn).Return(nil)

	err := suite.service.Create(txn)

	suite.NoError(err)
}

func (suite *TransactionServiceTestSuite) TestUpdate() {
	txn := suite.validTransaction()
	txn.ID = uuid.New()
	suite.transactionRepo.EXPECT().Update(txn).Return(nil)

	err := suite.service.Update(txn)

	suite.NoError(err)
}

func (suite *TransactionServiceTestSuite) TestUpdate_MissingID() {
	txn := suite.validTransaction()

	err := suite.service.Update(txn)

	suite.ErrorIs(err, repositories.ErrTransactionNotFound)
}

func (suite *TransactionServiceTestSuite) TestUpdate_NotFound() {
	txn := suite.validTransaction()
	txn.ID = uuid.New()
	suite.transactionRepo.EXPECT().Update(txn).Return(repositories.ErrTransactionNotFound)

	err := suite.service.Update(txn)

	suite.ErrorIs(err, repositories.ErrTransactionNotFound)
}

func (suite *TransactionServiceTestSuite) TestDelete() {
	id := uuid.New()
	suite.transactionRepo.EXPECT().Delete(id).Return(nil)

	suite.NoError(suite.service.Delete(id))
}

func (suite *TransactionServiceTestSuite) TestDelete_StoreErrorPropagates() {
	id := uuid.New()
	storeErr := errors.New("connection reset")
	suite.transactionRepo.EXPECT().Delete(id).Return(storeErr)

	err := suite.service.Delete(id)

	suite.ErrorIs(err, storeErr)
}

func (suite *TransactionServiceTestSuite) TestList_GroupsByDay() {
	filters := models.TransactionFilters{Category: models.CategoryFood}
	monday := time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)
	tuesday := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	suite.transactionRepo.EXPECT().GetWithFilters(filters).Return([]models.Transaction{
		expense("10.00", models.CategoryFood, tuesday),
		expense("20.00", models.CategoryFood, monday),
	}, nil)

	groups, err := suite.service.List(filters)

	suite.NoError(err)
	suite.Len(groups, 2)
	suite.True(groups[0].Day.After(groups[1].Day))
}

func (suite *TransactionServiceTestSuite) TestList_StoreErrorPropagates() {
	storeErr := errors.New("no such table")
	suite.transactionRepo.EXPECT().GetWithFilters(gomock.Any()).Return(nil, storeErr)

	_, err := suite.service.List(models.TransactionFilters{})

	suite.ErrorIs(err, storeErr)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
