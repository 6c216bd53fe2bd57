package services

import (
	"sort"
	"time"

	"fintrack/internal/models"

	"github.com/shopspring/decimal"
)

// statsService is the aggregation core behind every screen. It holds no
// state and touches no store; callers fetch the transaction set and pass
// it in whole. A failed fetch therefore never yields a partial aggregate.
type statsService struct{}

func NewStatsService() StatsServiceInterface {
	return &statsService{}
}

// Summarize computes income and expense totals over the set.
// Net is income minus expenses; amounts carry no sign of their own.
func (s *statsService) Summarize(transactions []models.Transaction) models.TransactionSummary {
	income := decimal.Zero
	expenses := decimal.Zero

	for i := range transactions {
		if transactions[i].IsIncome() {
			income = income.Add(transactions[i].Amount)
		} else {
			expenses = expenses.Add(transactions[i].Amount)
		}
	}

	return models.TransactionSummary{
		Income:   income,
		Expenses: expenses,
		Net:      income.Sub(expenses),
	}
}

// CategoryBreakdown sums expenses per category and computes each category's
// share of total expenses. Income is ignored. When the set contains no
// expenses every percentage is 0 rather than a division by zero. Results
// are sorted by amount descending; equal amounts keep first-seen order.
func (s *statsService) CategoryBreakdown(transactions []models.Transaction) []models.CategorySummary {
	totals := make(map[string]decimal.Decimal)
	order := make([]string, 0)

	for i := range transactions {
		txn := &transactions[i]
		if !txn.IsExpense() {
			continue
		}
		if _, seen := totals[txn.Category]; !seen {
			order = append(order, txn.Category)
		}
		totals[txn.Category] = totals[txn.Category].Add(txn.Amount)
	}

	totalExpenses := decimal.Zero
	for _, amount := range totals {
		totalExpenses = totalExpenses.Add(amount)
	}

	breakdown := make([]models.CategorySummary, 0, len(order))
	for _, category := range order {
		amount := totals[category]
		percentage := 0.0
		if totalExpenses.IsPositive() {
			percentage = amount.Div(totalExpenses).InexactFloat64()
		}
		breakdown = append(breakdown, models.CategorySummary{
			Category:   category,
			Amount:     amount,
			Percentage: percentage,
		})
	}

	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Amount.GreaterThan(breakdown[j].Amount)
	})

	return breakdown
}

// DailyGroups partitions the set by calendar day, using midnight in each
// transaction's own location as the boundary. Groups are ordered newest
// day first and transactions within a group newest first. Every input
// transaction lands in exactly one group.
func (s *statsService) DailyGroups(transactions []models.Transaction) []models.DailyGroup {
	byDay := make(map[time.Time][]models.Transaction)
	order := make([]time.Time, 0)

	for i := range transactions {
		day := dayOf(transactions[i].Date)
		if _, seen := byDay[day]; !seen {
			order = append(order, day)
		}
		byDay[day] = append(byDay[day], transactions[i])
	}

	groups := make([]models.DailyGroup, 0, len(order))
	for _, day := range order {
		members := byDay[day]
		sort.SliceStable(members, func(i, j int) bool {
			return members[i].Date.After(members[j].Date)
		})

		net := decimal.Zero
		for i := range members {
			net = net.Add(members[i].SignedAmount())
		}

		groups = append(groups, models.DailyGroup{
			Day:          day,
			Transactions: members,
			Net:          net,
		})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Day.After(groups[j].Day)
	})

	return groups
}

// PeriodChange returns the percentage change from previous to current.
// A zero previous total has no meaningful ratio: the change reports as
// 100 when anything was spent this period and 0 when nothing was.
func (s *statsService) PeriodChange(current, previous decimal.Decimal) float64 {
	if !previous.IsPositive() {
		if current.IsPositive() {
			return 100
		}
		return 0
	}

	return current.Sub(previous).Div(previous).InexactFloat64() * 100
}

// MonthlyTrend buckets expense totals by calendar month, oldest first.
// Months with no expenses in the set are absent rather than zero-filled.
func (s *statsService) MonthlyTrend(transactions []models.Transaction) []models.MonthlySpending {
	totals := make(map[time.Time]decimal.Decimal)

	for i := range transactions {
		txn := &transactions[i]
		if !txn.IsExpense() {
			continue
		}
		month := monthOf(txn.Date)
		totals[month] = totals[month].Add(txn.Amount)
	}

	trend := make([]models.MonthlySpending, 0, len(totals))
	for month, amount := range totals {
		trend = append(trend, models.MonthlySpending{Month: month, Amount: amount})
	}

	sort.Slice(trend, func(i, j int) bool {
		return trend[i].Month.Before(trend[j].Month)
	})

	return trend
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func monthOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
