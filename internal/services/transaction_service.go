package services

import (
	"errors"
	"fmt"
	"log/slog"

	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
)

// transactionService is the ledger write path. All business validation
// happens here at the save boundary; everything downstream trusts its input.
type transactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	stats           StatsServiceInterface
	metrics         MetricsRecorderInterface
}

func NewTransactionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	stats StatsServiceInterface,
	metrics MetricsRecorderInterface,
) TransactionServiceInterface {
	return &transactionService{
		transactionRepo: transactionRepo,
		stats:           stats,
		metrics:         metrics,
	}
}

// Create validates and records a new ledger entry
func (s *transactionService) Create(transaction *models.Transaction) error {
	if err := transaction.Validate(); err != nil {
		return err
	}

	if err := s.transactionRepo.Create(transaction); err != nil {
		slog.Error("failed to create transaction",
			"category", transaction.Category,
			"type", transaction.Type,
			"error", err)
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	s.metrics.IncrementCounter("transaction_created", map[string]string{"type": transaction.Type})

	slog.Info("transaction created",
		"transaction_id", transaction.ID,
		"type", transaction.Type,
		"category", transaction.Category,
		"amount", transaction.Amount.String())

	return nil
}

// Update validates and replaces the mutable fields of an existing entry
func (s *transactionService) Update(transaction *models.Transaction) error {
	if transaction.ID == uuid.Nil {
		return repositories.ErrTransactionNotFound
	}

	if err := transaction.Validate(); err != nil {
		return err
	}

	if err := s.transactionRepo.Update(transaction); err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return err
		}
		slog.Error("failed to update transaction",
			"transaction_id", transaction.ID,
			"error", err)
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	slog.Info("transaction updated", "transaction_id", transaction.ID)
	return nil
}

// Delete removes an entry from the ledger
func (s *transactionService) Delete(id uuid.UUID) error {
	if err := s.transactionRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return err
		}
		slog.Error("failed to delete transaction",
			"transaction_id", id,
			"error", err)
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	s.metrics.IncrementCounter("transaction_deleted", nil)

	slog.Info("transaction deleted", "transaction_id", id)
	return nil
}

// GetByID retrieves a single entry
func (s *transactionService) GetByID(id uuid.UUID) (*models.Transaction, error) {
	transaction, err := s.transactionRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, err
		}
		slog.Error("failed to get transaction",
			"transaction_id", id,
			"error", err)
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return transaction, nil
}

// List retrieves the entries matching the filters, grouped by calendar day
// for the transaction screen.
func (s *transactionService) List(filters models.TransactionFilters) ([]models.DailyGroup, error) {
	transactions, err := s.transactionRepo.GetWithFilters(filters)
	if err != nil {
		slog.Error("failed to list transactions", "error", err)
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return s.stats.DailyGroups(transactions), nil
}
