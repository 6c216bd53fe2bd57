package services

import (
	"fmt"
	"log/slog"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

const (
	seedExpensesPerMonth = 18
	seedSalaryDay        = 1
)

// seedMerchants maps each spending category to typical merchants; the
// merchant name becomes the transaction note.
var seedMerchants = map[string][]string{
	models.CategoryFood:           {"Whole Foods Market", "Trader Joe's", "Chipotle", "Starbucks", "Local Deli"},
	models.CategoryTransportation: {"Uber", "Shell", "Metro Transit", "Lyft"},
	models.CategoryHousing:        {"Rent", "HOA Dues"},
	models.CategoryUtilities:      {"PG&E", "Comcast Xfinity", "Water Department", "Verizon Wireless"},
	models.CategoryEntertainment:  {"Netflix", "Spotify", "AMC Theaters", "Steam"},
	models.CategoryHealthcare:     {"CVS Pharmacy", "Walgreens", "Dental Care"},
	models.CategoryShopping:       {"Amazon.com", "Target", "IKEA", "Best Buy"},
	models.CategoryOther:          {"Post Office", "Gift", "Misc"},
}

// seedAmountRanges gives each category a plausible expense range
var seedAmountRanges = map[string][2]float64{
	models.CategoryFood:           {8, 120},
	models.CategoryTransportation: {5, 80},
	models.CategoryHousing:        {900, 1600},
	models.CategoryUtilities:      {30, 220},
	models.CategoryEntertainment:  {10, 60},
	models.CategoryHealthcare:     {15, 250},
	models.CategoryShopping:       {20, 300},
	models.CategoryOther:          {5, 100},
}

// seedService populates an empty development ledger with generated history
type seedService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	budgetRepo      repositories.BudgetRepositoryInterface
	faker           *gofakeit.Faker
}

func NewSeedService(
	transactionRepo repositories.TransactionRepositoryInterface,
	budgetRepo repositories.BudgetRepositoryInterface,
) SeedServiceInterface {
	return &seedService{
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		faker:           gofakeit.New(0),
	}
}

// Seed generates the given number of months of history ending today:
// a monthly salary, a spread of category expenses and a starter set of
// budgets. Skips entirely when the ledger already has entries.
func (s *seedService) Seed(months int) error {
	existing, err := s.transactionRepo.GetRecent(1)
	if err != nil {
		return fmt.Errorf("failed to check ledger before seeding: %w", err)
	}
	if len(existing) > 0 {
		slog.Info("ledger not empty, skipping seed")
		return nil
	}

	now := time.Now()
	created := 0

	for m := months - 1; m >= 0; m-- {
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -m, 0)

		salary := &models.Transaction{
			Amount:   decimal.NewFromFloat(s.faker.Float64Range(4200, 4800)).Round(2),
			Category: models.CategoryOther,
			Type:     models.TransactionTypeIncome,
			Date:     monthStart.AddDate(0, 0, seedSalaryDay-1).Add(9 * time.Hour),
			Note:     "Salary",
		}
		if err := s.transactionRepo.Create(salary); err != nil {
			return fmt.Errorf("failed to seed salary: %w", err)
		}
		created++

		for i := 0; i < seedExpensesPerMonth; i++ {
			category := s.faker.RandomString(models.AllCategories())
			bounds := seedAmountRanges[category]

			date := monthStart.AddDate(0, 0, s.faker.Number(0, 27)).
				Add(time.Duration(s.faker.Number(8, 21)) * time.Hour)
			if date.After(now) {
				continue
			}

			expense := &models.Transaction{
				Amount:   decimal.NewFromFloat(s.faker.Float64Range(bounds[0], bounds[1])).Round(2),
				Category: category,
				Type:     models.TransactionTypeExpense,
				Date:     date,
				Note:     s.faker.RandomString(seedMerchants[category]),
			}
			if err := s.transactionRepo.Create(expense); err != nil {
				return fmt.Errorf("failed to seed expense: %w", err)
			}
			created++
		}
	}

	budgets := []models.Budget{
		{Category: models.CategoryFood, Amount: decimal.NewFromInt(600), Period: models.BudgetPeriodMonthly},
		{Category: models.CategoryEntertainment, Amount: decimal.NewFromInt(150), Period: models.BudgetPeriodMonthly},
		{Category: models.CategoryShopping, Amount: decimal.NewFromInt(400), Period: models.BudgetPeriodMonthly},
	}
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for i := range budgets {
		budgets[i].StartDate = monthStart
		if _, err := s.budgetRepo.Save(&budgets[i]); err != nil {
			return fmt.Errorf("failed to seed budget: %w", err)
		}
	}

	slog.Info("development data seeded",
		"transactions", created,
		"budgets", len(budgets),
		"months", months)

	return nil
}
