package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

// reportingHandler serves the financial reports.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/trial-balance", h.getTrialBalance)
		reports.GET("/tax-summary", h.getTaxSummary)
		reports.GET("/profit-and-loss", h.getProfitAndLoss)
		reports.GET("/balance-sheet", h.getBalanceSheet)
	}
}

// bindAsOf reads the optional asOf query parameter. It answers 400 itself on failure.
func bindAsOf(c *gin.Context, logger *slog.Logger) (*time.Time, bool) {
	var params dto.AsOfParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindingError(c, logger, err)
		return nil, false
	}
	if params.AsOf == "" {
		return nil, true
	}
	asOf, err := dto.ParseDate(params.AsOf)
	if err != nil {
		bindingError(c, logger, err)
		return nil, false
	}
	return &asOf, true
}

func bindDateRange(c *gin.Context, logger *slog.Logger) (time.Time, time.Time, bool) {
	var params dto.DateRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindingError(c, logger, err)
		return time.Time{}, time.Time{}, false
	}
	from, err := dto.ParseDate(params.From)
	if err != nil {
		bindingError(c, logger, err)
		return time.Time{}, time.Time{}, false
	}
	to, err := dto.ParseDate(params.To)
	if err != nil {
		bindingError(c, logger, err)
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

// getTrialBalance godoc
// @Summary Get the trial balance
// @Description Per-account debit and credit totals; balances are debit minus credit and sum to zero.
// @Tags reports
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   asOf query string false "Inclusive cut-off date (YYYY-MM-DD)"
// @Success 200 {object} domain.TrialBalance
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /companies/{company_id}/reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger, actor, ok := requestActor(c)
	if !ok {
		return
	}
	asOf, ok := bindAsOf(c, logger)
	if !ok {
		return
	}

	tb, err := h.reportingService.TrialBalance(c.Request.Context(), c.Param("company_id"), asOf, actor)
	if err != nil {
		respondWithError(c, logger, err, "Failed to generate trial balance")
		return
	}
	c.JSON(http.StatusOK, tb)
}

// getTaxSummary godoc
// @Summary Get the tax summary
// @Description Groups postings on tax-coded accounts by tax code for an inclusive date range.
// @Tags reports
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   from query string true "Start date (YYYY-MM-DD)"
// @Param   to query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} domain.TaxSummary
// @Failure 400 {object} map[string]string "Invalid range"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /companies/{company_id}/reports/tax-summary [get]
func (h *reportingHandler) getTaxSummary(c *gin.Context) {
	logger, actor, ok := requestActor(c)
	if !ok {
		return
	}
	from, to, ok := bindDateRange(c, logger)
	if !ok {
		return
	}

	summary, err := h.reportingService.TaxSummary(c.Request.Context(), c.Param("company_id"), from, to, actor)
	if err != nil {
		respondWithError(c, logger, err, "Failed to generate tax summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// getProfitAndLoss godoc
// @Summary Get the profit and loss report
// @Tags reports
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   from query string true "Start date (YYYY-MM-DD)"
// @Param   to query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} domain.PAndLReport
// @Failure 400 {object} map[string]string "Invalid range"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /companies/{company_id}/reports/profit-and-loss [get]
func (h *reportingHandler) getProfitAndLoss(c *gin.Context) {
	logger, actor, ok := requestActor(c)
	if !ok {
		return
	}
	from, to, ok := bindDateRange(c, logger)
	if !ok {
		return
	}

	report, err := h.reportingService.ProfitAndLoss(c.Request.Context(), c.Param("company_id"), from, to, actor)
	if err != nil {
		respondWithError(c, logger, err, "Failed to generate profit and loss report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getBalanceSheet godoc
// @Summary Get the balance sheet
// @Description Defaults to today when asOf is omitted.
// @Tags reports
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   asOf query string false "Report date (YYYY-MM-DD)"
// @Success 200 {object} domain.BalanceSheetReport
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /companies/{company_id}/reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	logger, actor, ok := requestActor(c)
	if !ok {
		return
	}
	asOf, ok := bindAsOf(c, logger)
	if !ok {
		return
	}
	date := time.Now().UTC().Truncate(24 * time.Hour)
	if asOf != nil {
		date = *asOf
	}

	report, err := h.reportingService.BalanceSheet(c.Request.Context(), c.Param("company_id"), date, actor)
	if err != nil {
		respondWithError(c, logger, err, "Failed to generate balance sheet")
		return
	}
	c.JSON(http.StatusOK, report)
}
