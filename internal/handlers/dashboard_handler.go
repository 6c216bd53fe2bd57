package handlers

import (
	"net/http"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the dashboard screen payload
type DashboardHandler struct {
	dashboardService services.DashboardServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService services.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDashboard computes and returns the dashboard snapshot
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	snapshot, err := h.dashboardService.Snapshot(time.Now())
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.DashboardResponse{
		Balance:            snapshot.Balance.StringFixed(2),
		MonthlyIncome:      snapshot.MonthlyIncome.StringFixed(2),
		MonthlyExpenses:    snapshot.MonthlyExpenses.StringFixed(2),
		RecentTransactions: toTransactionResponses(snapshot.RecentTransactions),
		SpendingByCategory: toCategorySummaryResponses(snapshot.SpendingByCategory),
	})
}
