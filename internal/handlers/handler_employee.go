package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

type employeeHandler struct {
	employeeService portssvc.EmployeeSvcFacade
}

func registerEmployeeRoutes(rg *gin.RouterGroup, employeeService portssvc.EmployeeSvcFacade) {
	h := &employeeHandler{employeeService: employeeService}

	employees := rg.Group("/employees")
	{
		employees.POST("", h.createEmployee)
		employees.GET("", h.listEmployees)
		employees.GET("/:employee_id", h.getEmployee)
		employees.PATCH("/:employee_id", h.updateEmployee)
	}
}

// createEmployee godoc
// @Summary Add an employee
// @Tags employees
// @Accept  json
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   employee body dto.CreateEmployeeRequest true "Employee details"
// @Success 201 {object} domain.Employee
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 409 {object} map[string]string "Email already in use"
// @Security BearerAuth
// @Router /companies/{company_id}/employees [post]
func (h *employeeHandler) createEmployee(c *gin.Context) {
	logger, actor, ok := requestActor(c)
	if !ok {
		return
	}

	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, logger, err)
		return
	}

	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), c.Param("company_id"), req, actor)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create employee")
		return
	}

	logger.Info("Employee created", slog.String("employee_id", employee.EmployeeID))
	c.JSON(http.StatusCreated, employee)
}

// getEmployee godoc
// @Summary Get an employee
// @Tags employees
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   employee_id path string true "Employee ID"
// @Success 200 {object} domain.Employee
// @Failure 404 {object} map[string]string "Employee not found"
// @Security BearerAuth
// @Router /companies/{company_id}/employees/{employee_id} [get]
func (h *employeeHandler) getEmployee(c *gin.Context) {
	logger, actor, ok := requestActor(c)
	if !ok {
		return
	}

	employee, err := h.employeeService.GetEmployee(c.Request.Context(), c.Param("company_id"), c.Param("employee_id"), actor)
	if err != nil {
		respondWithError(c, logger, err, "Failed to get employee")
		return
	}
	c.JSON(http.StatusOK, employee)
}

// listEmployees godoc
// @Summary List employees
// @Tags employees
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   limit query int false "Page size" default(50)
// @Param   offset query int false "Offset" default(0)
// @Param   includeInactive query bool false "Include inactive employees"
// @Success 200 {array} domain.Employee
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Security BearerAuth
// @Router /companies/{company_id}/employees [get]
func (h *employeeHandler) listEmployees(c *gin.Context) {
	logger, actor, ok := requestActor(c)
	if !ok {
		return
	}

	var params dto.ListEmployeesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindingError(c, logger, err)
		return
	}

	employees, err := h.employeeService.ListEmployees(c.Request.Context(), c.Param("company_id"), params, actor)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list employees")
		return
	}
	c.JSON(http.StatusOK, employees)
}

// updateEmployee godoc
// @Summary Update an employee
// @Description Changes name, email, basic salary or active flag. Unknown fields are rejected.
// @Tags employees
// @Accept  json
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   employee_id path string true "Employee ID"
// @Param   employee body dto.UpdateEmployeeRequest true "Fields to change"
// @Success 200 {object} domain.Employee
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Employee not found"
// @Security BearerAuth
// @Router /companies/{company_id}/employees/{employee_id} [patch]
func (h *employeeHandler) updateEmployee(c *gin.Context) {
	logger, actor, ok := requestActor(c)
	if !ok {
		return
	}

	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, logger, err)
		return
	}

	employee, err := h.employeeService.UpdateEmployee(c.Request.Context(), c.Param("company_id"), c.Param("employee_id"), req, actor)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update employee")
		return
	}
	c.JSON(http.StatusOK, employee)
}
