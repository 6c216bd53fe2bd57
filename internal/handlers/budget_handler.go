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

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// BudgetHandler handles budget HTTP requests
type BudgetHandler struct {
	budgetService services.BudgetServiceInterface
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(budgetService services.BudgetServiceInterface) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// SaveBudget upserts the budget for a category. An existing budget for the
// same category is replaced rather than duplicated.
func (h *BudgetHandler) SaveBudget(c echo.Context) error {
	var req dto.SaveBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Malformed request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendValidationError(c, fieldErrors(err))
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return SendError(c, apierrors.BudgetInvalidAmount)
	}

	budget := &models.Budget{
		Category:  strings.ToLower(req.Category),
		Amount:    amount,
		Period:    strings.ToLower(req.Period),
		StartDate: req.StartDate,
	}

	saved, err := h.budgetService.SaveBudget(budget)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNonPositiveBudget):
			return SendError(c, apierrors.BudgetInvalidAmount)
		case errors.Is(err, models.ErrInvalidBudgetPeriod):
			return SendError(c, apierrors.BudgetInvalidPeriod)
		case errors.Is(err, models.ErrInvalidCategory):
			return SendError(c, apierrors.BudgetInvalidCategory)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: toBudgetResponse(saved),
	})
}

// GetOverview returns the budget screen payload for the current month
func (h *BudgetHandler) GetOverview(c echo.Context) error {
	overview, err := h.budgetService.GetOverview(time.Now())
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, toBudgetOverviewResponse(overview))
}

// GetAlerts returns the active threshold alerts
func (h *BudgetHandler) GetAlerts(c echo.Context) error {
	alerts, err := h.budgetService.GetAlerts(time.Now())
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.BudgetAlertsResponse{
		Alerts: toBudgetAlertResponses(alerts),
	})
}

// DeleteBudget removes the budget for a category
func (h *BudgetHandler) DeleteBudget(c echo.Context) error {
	category := strings.ToLower(c.Param("category"))

	if err := h.budgetService.DeleteBudget(category); err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidCategory):
			return SendError(c, apierrors.BudgetInvalidCategory)
		case errors.Is(err, repositories.ErrBudgetNotFound):
			return SendError(c, apierrors.BudgetNotFound)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.NoContent(http.StatusNoContent)
}
