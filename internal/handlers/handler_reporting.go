package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/ledger_saas_app/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_saas_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_saas_app/internal/dto"
	"github.com/SscSPs/ledger_saas_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
	now              func() time.Time
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		now:              time.Now,
	}
}

// registerReportingRoutes registers routes related to financial reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	rg.GET("/dashboard", h.getDashboard)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/profit-and-loss", h.getProfitAndLoss)
		reportingGroup.GET("/balance-sheet", h.getBalanceSheet)
		reportingGroup.GET("/trial-balance", h.getTrialBalance)
	}
}

// bindPeriod reads month and year from the query. Missing values default to the current month.
func (h *reportingHandler) bindPeriod(c *gin.Context) (domain.Period, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.PeriodParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid report period", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid period. Use month=1..12 and a positive year"})
		return domain.Period{}, false
	}

	current := domain.PeriodOf(h.now())
	if params.Month == 0 {
		params.Month = current.Month
	}
	if params.Year == 0 {
		params.Year = current.Year
	}

	period, err := domain.NewPeriod(params.Month, params.Year)
	if err != nil {
		logger.Warn("Invalid report period", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return domain.Period{}, false
	}
	return period, true
}

// getDashboard godoc
// @Summary Get the dashboard summary
// @Description Returns cash balance, outstanding payables and receivables, the monthly income/expense trend and the expense composition
// @Tags reports
// @Produce json
// @Param org_id path string true "Organization ID"
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (User not authorized)"
// @Failure 500 {object} map[string]string "Failed to generate dashboard"
// @Security BearerAuth
// @Router /organizations/{org_id}/dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	dashboard, err := h.reportingService.Dashboard(c.Request.Context(), organizationID, userID)
	if err != nil {
		respondWithError(c, err, "Failed to generate dashboard")
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(dashboard))
}

// getProfitAndLoss godoc
// @Summary Generate profit and loss report
// @Description Generates the income statement of one month
// @Tags reports
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param month query int false "Month (1-12), defaults to the current month"
// @Param year query int false "Year, defaults to the current year"
// @Success 200 {object} dto.ProfitAndLossResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (User not authorized)"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /organizations/{org_id}/reports/profit-and-loss [get]
func (h *reportingHandler) getProfitAndLoss(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	period, ok := h.bindPeriod(c)
	if !ok {
		return
	}

	report, err := h.reportingService.ProfitAndLoss(c.Request.Context(), organizationID, period, userID)
	if err != nil {
		respondWithError(c, err, "Failed to generate profit and loss report")
		return
	}

	logger.Info("Profit and loss report generated successfully",
		slog.String("period", period.Key()),
		slog.Int("income_accounts", len(report.IncomeByAccount)),
		slog.Int("expense_accounts", len(report.ExpenseByAccount)))
	c.JSON(http.StatusOK, dto.ToProfitAndLossResponse(report))
}

// getBalanceSheet godoc
// @Summary Generate balance sheet report
// @Description Generates the cumulative balance sheet at the end of a month, including retained earnings
// @Tags reports
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param month query int false "Month (1-12), defaults to the current month"
// @Param year query int false "Year, defaults to the current year"
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (User not authorized)"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /organizations/{org_id}/reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	period, ok := h.bindPeriod(c)
	if !ok {
		return
	}

	report, err := h.reportingService.BalanceSheet(c.Request.Context(), organizationID, period, userID)
	if err != nil {
		respondWithError(c, err, "Failed to generate balance sheet report")
		return
	}

	logger.Info("Balance sheet report generated successfully",
		slog.String("period", period.Key()),
		slog.Bool("is_balanced", report.IsBalanced()))
	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(report))
}

// getTrialBalance godoc
// @Summary Generate trial balance report
// @Description Generates per-account debit and credit totals up to the end of a month
// @Tags reports
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param month query int false "Month (1-12), defaults to the current month"
// @Param year query int false "Year, defaults to the current year"
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (User not authorized)"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /organizations/{org_id}/reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	organizationID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	period, ok := h.bindPeriod(c)
	if !ok {
		return
	}

	report, err := h.reportingService.TrialBalance(c.Request.Context(), organizationID, period, userID)
	if err != nil {
		respondWithError(c, err, "Failed to generate trial balance report")
		return
	}

	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(report))
}
