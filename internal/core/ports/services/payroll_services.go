package services

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/dto"
)

// EmployeeSvcFacade defines operations on a company's employees.
type EmployeeSvcFacade interface {
	CreateEmployee(ctx context.Context, companyID string, req dto.CreateEmployeeRequest, actor domain.Actor) (*domain.Employee, error)
	GetEmployee(ctx context.Context, companyID, employeeID string, actor domain.Actor) (*domain.Employee, error)
	ListEmployees(ctx context.Context, companyID string, params dto.ListEmployeesParams, actor domain.Actor) ([]domain.Employee, error)
	UpdateEmployee(ctx context.Context, companyID, employeeID string, req dto.UpdateEmployeeRequest, actor domain.Actor) (*domain.Employee, error)
}

// PayrollSvcFacade defines payroll run operations.
type PayrollSvcFacade interface {
	// GenerateRun creates the draft run of a period from the active employees. A second
	// run for the same company and period fails with apperrors.ErrDuplicate.
	GenerateRun(ctx context.Context, companyID string, month, year int, actor domain.Actor) (*domain.PayrollRun, error)
	GetRun(ctx context.Context, companyID, runID string, actor domain.Actor) (*domain.PayrollRun, error)
	ListRuns(ctx context.Context, companyID string, limit, offset int, actor domain.Actor) ([]domain.PayrollRun, error)
}
