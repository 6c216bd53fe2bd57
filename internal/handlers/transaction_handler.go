package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"fintrack/internal/dto"
	apierrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// TransactionHandler handles ledger entry HTTP requests
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransaction records a new ledger entry
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Malformed request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendValidationError(c, fieldErrors(err))
	}

	txn, err := transactionFromRequest(req.Amount, req.Category, req.Date, req.Note, req.Type)
	if err != nil {
		return SendError(c, apierrors.TransactionInvalidAmount)
	}

	if err := h.transactionService.Create(txn); err != nil {
		return h.mapWriteError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data: toTransactionResponse(txn),
	})
}

// UpdateTransaction replaces the mutable fields of an existing entry
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid transaction ID"))
	}

	var req dto.UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Malformed request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendValidationError(c, fieldErrors(err))
	}

	txn, err := transactionFromRequest(req.Amount, req.Category, req.Date, req.Note, req.Type)
	if err != nil {
		return SendError(c, apierrors.TransactionInvalidAmount)
	}
	txn.ID = id

	if err := h.transactionService.Update(txn); err != nil {
		return h.mapWriteError(c, err)
	}

	updated, err := h.transactionService.GetByID(id)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: toTransactionResponse(updated),
	})
}

// DeleteTransaction removes an entry from the ledger
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid transaction ID"))
	}

	if err := h.transactionService.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return SendError(c, apierrors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListTransactions returns the entries matching the query, grouped by day
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	var query dto.ListTransactionsQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Malformed query parameters"))
	}
	if err := c.Validate(&query); err != nil {
		return SendValidationError(c, fieldErrors(err))
	}

	now := time.Now()
	start, end := periodWindow(strings.ToLower(query.Period), now)

	groups, err := h.transactionService.List(models.TransactionFilters{
		StartDate: start,
		EndDate:   end,
		Category:  strings.ToLower(query.Category),
		Type:      strings.ToLower(query.Type),
		Search:    query.Search,
		Offset:    query.Offset,
		Limit:     query.Limit,
	})
	if err != nil {
		return SendSystemError(c, err)
	}

	groupResponses, count := toDailyGroupResponses(groups)
	return c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Groups: groupResponses,
		Count:  count,
	})
}

func (h *TransactionHandler) mapWriteError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, models.ErrNegativeAmount):
		return SendError(c, apierrors.TransactionInvalidAmount)
	case errors.Is(err, models.ErrInvalidTransactionType):
		return SendError(c, apierrors.TransactionInvalidType)
	case errors.Is(err, models.ErrInvalidCategory):
		return SendError(c, apierrors.TransactionInvalidCategory)
	case errors.Is(err, models.ErrMissingDate):
		return SendError(c, apierrors.ValidationInvalidDate)
	case errors.Is(err, repositories.ErrTransactionNotFound):
		return SendError(c, apierrors.TransactionNotFound)
	default:
		return SendSystemError(c, err)
	}
}

func transactionFromRequest(amount, category string, date time.Time, note, txType string) (*models.Transaction, error) {
	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, err
	}

	return &models.Transaction{
		Amount:   parsed,
		Category: strings.ToLower(category),
		Date:     date,
		Note:     note,
		Type:     strings.ToLower(txType),
	}, nil
}
