package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"fintrack/internal/dto"
	apierrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
)

// AnalysisHandler serves the spending analysis screen payload
type AnalysisHandler struct {
	analysisService services.AnalysisServiceInterface
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(analysisService services.AnalysisServiceInterface) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService}
}

// GetAnalysis computes the analysis for the requested period, defaulting
// to the month window.
func (h *AnalysisHandler) GetAnalysis(c echo.Context) error {
	var query dto.AnalysisQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Malformed query parameters"))
	}
	if err := c.Validate(&query); err != nil {
		return SendValidationError(c, fieldErrors(err))
	}

	period := strings.ToLower(query.Period)
	if period == "" {
		period = models.TimePeriodMonth
	}

	analysis, err := h.analysisService.Analyze(period, time.Now())
	if err != nil {
		if errors.Is(err, services.ErrInvalidTimePeriod) {
			return SendError(c, apierrors.ValidationOutOfRange, apierrors.WithDetails("Unknown analysis period"))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.AnalysisResponse{
		Period:        analysis.Period,
		TotalSpent:    analysis.TotalSpent.StringFixed(2),
		ChangePercent: analysis.ChangePercent,
		Breakdown:     toCategorySummaryResponses(analysis.Breakdown),
		TopCategories: toCategorySummaryResponses(analysis.TopCategories),
		MonthlyTrend:  toMonthlySpendingResponses(analysis.MonthlyTrend),
	})
}
