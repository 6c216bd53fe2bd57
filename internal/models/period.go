package models

import "time"

// Budget periods determine the span a budget limit covers
const (
	BudgetPeriodWeekly    = "weekly"
	BudgetPeriodMonthly   = "monthly"
	BudgetPeriodQuarterly = "quarterly"
	BudgetPeriodYearly    = "yearly"
)

// Time periods bound read-side queries relative to a reference time
const (
	TimePeriodWeek    = "week"
	TimePeriodMonth   = "month"
	TimePeriodQuarter = "quarter"
	TimePeriodYear    = "year"
)

// AllBudgetPeriods returns all valid budget period constants
func AllBudgetPeriods() []string {
	return []string{BudgetPeriodWeekly, BudgetPeriodMonthly, BudgetPeriodQuarterly, BudgetPeriodYearly}
}

// IsValidBudgetPeriod checks if a budget period string is valid
func IsValidBudgetPeriod(period string) bool {
	switch period {
	case BudgetPeriodWeekly, BudgetPeriodMonthly, BudgetPeriodQuarterly, BudgetPeriodYearly:
		return true
	default:
		return false
	}
}

// IsValidTimePeriod checks if a query time period string is valid
func IsValidTimePeriod(period string) bool {
	switch period {
	case TimePeriodWeek, TimePeriodMonth, TimePeriodQuarter, TimePeriodYear:
		return true
	default:
		return false
	}
}

// BudgetPeriodDays returns the nominal day count for a budget period.
// Used for display and per-day pacing, not for end-date arithmetic.
func BudgetPeriodDays(period string) int {
	switch period {
	case BudgetPeriodWeekly:
		return 7
	case BudgetPeriodMonthly:
		return 30
	case BudgetPeriodQuarterly:
		return 90
	case BudgetPeriodYearly:
		return 365
	default:
		return 0
	}
}

// AddBudgetPeriod advances a date by one budget period using calendar
// arithmetic (months and years shift calendar units, not fixed day counts).
func AddBudgetPeriod(t time.Time, period string) time.Time {
	switch period {
	case BudgetPeriodWeekly:
		return t.AddDate(0, 0, 7)
	case BudgetPeriodMonthly:
		return t.AddDate(0, 1, 0)
	case BudgetPeriodQuarterly:
		return t.AddDate(0, 3, 0)
	case BudgetPeriodYearly:
		return t.AddDate(1, 0, 0)
	default:
		return t
	}
}

// TimePeriodStart returns the start of the query window ending at now.
// The window is now minus one calendar unit of the given period.
func TimePeriodStart(period string, now time.Time) time.Time {
	switch period {
	case TimePeriodWeek:
		return now.AddDate(0, 0, -7)
	case TimePeriodMonth:
		return now.AddDate(0, -1, 0)
	case TimePeriodQuarter:
		return now.AddDate(0, -3, 0)
	case TimePeriodYear:
		return now.AddDate(-1, 0, 0)
	default:
		return now.AddDate(0, -1, 0)
	}
}

// PreviousTimePeriodStart returns the start of the window immediately
// preceding the current one, i.e. [prevStart, currentStart). Month-length
// periods use the same calendar arithmetic in both directions, so the
// previous window always abuts the current one even when the spans differ
// in absolute days.
func PreviousTimePeriodStart(period string, now time.Time) time.Time {
	return TimePeriodStart(period, TimePeriodStart(period, now))
}
