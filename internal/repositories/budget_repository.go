package repositories

import (
	"errors"
	"fmt"

	"fintrack/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrBudgetNotFound = errors.New("budget not found")
)

// budgetRepository implements BudgetRepositoryInterface
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository
func NewBudgetRepository(db *gorm.DB) BudgetRepositoryInterface {
	return &budgetRepository{
		db: db,
	}
}

// Save upserts a budget keyed by category. The unique index on category means
// saving for a category that already has a budget updates it in place; the
// one-budget-per-category invariant cannot be violated through this path.
func (r *budgetRepository) Save(budget *models.Budget) (*models.Budget, error) {
	if err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "period", "start_date", "updated_at"}),
	}).Create(budget).Error; err != nil {
		return nil, fmt.Errorf("failed to save budget: %w", err)
	}

	// Re-read so the caller gets the surviving row's identity after an
	// on-conflict update.
	saved, err := r.GetByCategory(budget.Category)
	if err != nil {
		return nil, err
	}

	return saved, nil
}

// GetAll retrieves all budgets, most recently started first
func (r *budgetRepository) GetAll() ([]models.Budget, error) {
	var budgets []models.Budget
	if err := r.db.Order("start_date DESC").Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("failed to get budgets: %w", err)
	}
	return budgets, nil
}

// GetByCategory retrieves the budget for a category
func (r *budgetRepository) GetByCategory(category string) (*models.Budget, error) {
	var budget models.Budget
	if err := r.db.Where("category = ?", category).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget by category: %w", err)
	}
	return &budget, nil
}

// DeleteByCategory removes the budget for a category
func (r *budgetRepository) DeleteByCategory(category string) error {
	result := r.db.Where("category = ?", category).Delete(&models.Budget{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete budget: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBudgetNotFound
	}
	return nil
}

// DeleteAll removes every budget
func (r *budgetRepository) DeleteAll() error {
	if err := r.db.Where("1 = 1").Delete(&models.Budget{}).Error; err != nil {
		return fmt.Errorf("failed to delete budgets: %w", err)
	}
	return nil
}
