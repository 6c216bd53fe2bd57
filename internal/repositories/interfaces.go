package repositories

import (
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
)

// TransactionRepositoryInterface defines the ledger operations for transactions
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	Update(transaction *models.Transaction) error
	Delete(id uuid.UUID) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	GetRecent(limit int) ([]models.Transaction, error)
	GetByDateRange(start, end time.Time) ([]models.Transaction, error)
	GetWithFilters(filters models.TransactionFilters) ([]models.Transaction, error)
}

// BudgetRepositoryInterface defines the ledger operations for budgets
type BudgetRepositoryInterface interface {
	Save(budget *models.Budget) (*models.Budget, error)
	GetAll() ([]models.Budget, error)
	GetByCategory(category string) (*models.Budget, error)
	DeleteByCategory(category string) error
	DeleteAll() error
}
