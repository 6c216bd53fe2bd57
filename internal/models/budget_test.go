package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBudget_Validate(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		budget  Budget
		wantErr error
	}{
		{
			name: "valid monthly budget",
			budget: Budget{
				Category:  CategoryFood,
				Amount:    decimal.NewFromInt(600),
				Period:    BudgetPeriodMonthly,
				StartDate: start,
			},
		},
		{
			name: "unknown category",
			budget: Budget{
				Category:  "yachts",
				Amount:    decimal.NewFromInt(600),
				Period:    BudgetPeriodMonthly,
				StartDate: start,
			},
			wantErr: ErrInvalidCategory,
		},
		{
			name: "unknown period",
			budget: Budget{
				Category:  CategoryFood,
				Amount:    decimal.NewFromInt(600),
				Period:    "fortnightly",
				StartDate: start,
			},
			wantErr: ErrInvalidBudgetPeriod,
		},
		{
			name: "zero amount",
			budget: Budget{
				Category:  CategoryFood,
				Amount:    decimal.Zero,
				Period:    BudgetPeriodMonthly,
				StartDate: start,
			},
			wantErr: ErrNonPositiveBudget,
		},
		{
			name: "negative amount",
			budget: Budget{
				Category:  CategoryFood,
				Amount:    decimal.NewFromInt(-5),
				Period:    BudgetPeriodMonthly,
				StartDate: start,
			},
			wantErr: ErrNonPositiveBudget,
		},
		{
			name: "missing start date",
			budget: Budget{
				Category: CategoryFood,
				Amount:   decimal.NewFromInt(600),
				Period:   BudgetPeriodMonthly,
			},
			wantErr: ErrMissingBudgetStart,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.budget.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBudget_EndDate(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		span  string
		want  time.Time
	}{
		{
			name:  "weekly",
			start: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			span:  BudgetPeriodWeekly,
			want:  time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "monthly",
			start: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			span:  BudgetPeriodMonthly,
			want:  time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "monthly from January 31st lands in early March",
			start: time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
			span:  BudgetPeriodMonthly,
			want:  time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "quarterly",
			start: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
			span:  BudgetPeriodQuarterly,
			want:  time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "yearly across leap day",
			start: time.Date(2028, 2, 29, 0, 0, 0, 0, time.UTC),
			span:  BudgetPeriodYearly,
			want:  time.Date(2029, 3, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			budget := Budget{StartDate: tt.start, Period: tt.span}
			assert.Equal(t, tt.want, budget.EndDate())
		})
	}
}

func TestBudget_IsActive(t *testing.T) {
	budget := Budget{
		StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Period:    BudgetPeriodMonthly,
	}

	assert.True(t, budget.IsActive(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, budget.IsActive(time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)))
	assert.True(t, budget.IsActive(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, budget.IsActive(time.Date(2026, 2, 28, 23, 59, 59, 0, time.UTC)))
	assert.False(t, budget.IsActive(time.Date(2026, 4, 1, 0, 0, 1, 0, time.UTC)))
}
