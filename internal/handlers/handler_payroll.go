package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

type payrollHandler struct {
	payrollService portssvc.PayrollSvcFacade
}

func registerPayrollRoutes(rg *gin.RouterGroup, payrollService portssvc.PayrollSvcFacade) {
	h := &payrollHandler{payrollService: payrollService}

	runs := rg.Group("/payroll/runs")
	{
		runs.POST("", h.generateRun)
		runs.GET("", h.listRuns)
		runs.GET("/:run_id", h.getRun)
	}
}

// generateRun godoc
// @Summary Generate a payroll run
// @Description Creates the draft run of a month from the company's active employees. One run per company and period.
// @Tags payroll
// @Accept  json
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   period body dto.GeneratePayrollRequest true "Payroll period"
// @Success 201 {object} domain.PayrollRun
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 409 {object} map[string]string "A run already exists for the period"
// @Security BearerAuth
// @Router /companies/{company_id}/payroll/runs [post]
func (h *payrollHandler) generateRun(c *gin.Context) {
	logger, actor, ok := requestActor(c)
	if !ok {
		return
	}

	var req dto.GeneratePayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, logger, err)
		return
	}

	run, err := h.payrollService.GenerateRun(c.Request.Context(), c.Param("company_id"), req.Month, req.Year, actor)
	if err != nil {
		respondWithError(c, logger, err, "Failed to generate payroll run")
		return
	}

	logger.Info("Payroll run generated",
		slog.String("run_id", run.RunID),
		slog.Int("employees", len(run.Details)),
	)
	c.JSON(http.StatusCreated, run)
}

// getRun godoc
// @Summary Get a payroll run
// @Tags payroll
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   run_id path string true "Run ID"
// @Success 200 {object} domain.PayrollRun
// @Failure 404 {object} map[string]string "Run not found"
// @Security BearerAuth
// @Router /companies/{company_id}/payroll/runs/{run_id} [get]
func (h *payrollHandler) getRun(c *gin.Context) {
	logger, actor, ok := requestActor(c)
	if !ok {
		return
	}

	run, err := h.payrollService.GetRun(c.Request.Context(), c.Param("company_id"), c.Param("run_id"), actor)
	if err != nil {
		respondWithError(c, logger, err, "Failed to get payroll run")
		return
	}
	c.JSON(http.StatusOK, run)
}

// listRuns godoc
// @Summary List payroll runs
// @Tags payroll
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   limit query int false "Page size" default(50)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {array} domain.PayrollRun
// @Security BearerAuth
// @Router /companies/{company_id}/payroll/runs [get]
func (h *payrollHandler) listRuns(c *gin.Context) {
	logger, actor, ok := requestActor(c)
	if !ok {
		return
	}

	var params dto.ListPayrollRunsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindingError(c, logger, err)
		return
	}

	runs, err := h.payrollService.ListRuns(c.Request.Context(), c.Param("company_id"), params.Limit, params.Offset, actor)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list payroll runs")
		return
	}
	c.JSON(http.StatusOK, runs)
}
