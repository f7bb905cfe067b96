package dto

import (
	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest defines the data needed to add an employee.
type CreateEmployeeRequest struct {
	Name        string          `json:"name" binding:"required,max=255"`
	Email       string          `json:"email" binding:"required,email"`
	BasicSalary decimal.Decimal `json:"basicSalary"`
}

// UpdateEmployeeRequest enumerates every field an update may change. Nil fields are
// left untouched; any other key in the payload is rejected.
type UpdateEmployeeRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=1,max=255"`
	Email       *string          `json:"email" binding:"omitempty,email"`
	BasicSalary *decimal.Decimal `json:"basicSalary"`
	IsActive    *bool            `json:"isActive"`
}

// IsEmpty reports whether the request changes nothing.
func (r UpdateEmployeeRequest) IsEmpty() bool {
	return r.Name == nil && r.Email == nil && r.BasicSalary == nil && r.IsActive == nil
}

// ListEmployeesParams defines query parameters for listing employees.
type ListEmployeesParams struct {
	Limit           int  `form:"limit,default=50" binding:"min=1,max=500"`
	Offset          int  `form:"offset,default=0" binding:"min=0"`
	IncludeInactive bool `form:"includeInactive"`
}

// GeneratePayrollRequest selects the period of a payroll run.
type GeneratePayrollRequest struct {
	Month int `json:"month" binding:"required,min=1,max=12"`
	Year  int `json:"year" binding:"required,min=2000,max=2100"`
}

// ListPayrollRunsParams defines query parameters for listing payroll runs.
type ListPayrollRunsParams struct {
	Limit  int `form:"limit,default=50" binding:"min=1,max=500"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}
