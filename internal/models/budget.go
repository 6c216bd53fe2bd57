package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidBudgetPeriod  = errors.New("invalid budget period")
	ErrNonPositiveBudget    = errors.New("budget amount must be positive")
	ErrMissingBudgetStart   = errors.New("budget start date is required")
	ErrBudgetCategoryExists = errors.New("a budget already exists for this category")
)

// Budget is a per-category spending limit over a recurring period.
// The unique index on Category makes "one budget per category" a schema
// invariant rather than a check the write path has to remember.
type Budget struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Category  string          `gorm:"type:varchar(30);not null;uniqueIndex" json:"category"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Period    string          `gorm:"type:varchar(15);not null" json:"period"`
	StartDate time.Time       `gorm:"not null;index" json:"start_date"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Budget
func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = now
	}

	return b.Validate()
}

// BeforeUpdate hook for Budget
func (b *Budget) BeforeUpdate(tx *gorm.DB) error {
	b.UpdatedAt = time.Now()
	return b.Validate()
}

// Validate enforces the write-path invariants for budgets
func (b *Budget) Validate() error {
	if !IsValidCategory(b.Category) {
		return ErrInvalidCategory
	}

	if !IsValidBudgetPeriod(b.Period) {
		return ErrInvalidBudgetPeriod
	}

	if !b.Amount.IsPositive() {
		return ErrNonPositiveBudget
	}

	if b.StartDate.IsZero() {
		return ErrMissingBudgetStart
	}

	return nil
}

// EndDate is the exclusive end of the budget window: start date advanced by
// one calendar period span.
func (b *Budget) EndDate() time.Time {
	return AddBudgetPeriod(b.StartDate, b.Period)
}

// IsActive reports whether the reference time falls within [StartDate, EndDate]
func (b *Budget) IsActive(now time.Time) bool {
	return !now.Before(b.StartDate) && !now.After(b.EndDate())
}

// TableName returns the table name for Budget
func (b *Budget) TableName() string {
	return "budgets"
}
