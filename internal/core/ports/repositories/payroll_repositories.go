package repositories

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// EmployeeReader defines read operations for employees.
type EmployeeReader interface {
	FindEmployeeByID(ctx context.Context, companyID, employeeID string) (*domain.Employee, error)
	ListEmployees(ctx context.Context, companyID string, limit, offset int, includeInactive bool) ([]domain.Employee, error)
	// ListActiveEmployees returns every active employee of the company.
	ListActiveEmployees(ctx context.Context, companyID string) ([]domain.Employee, error)
}

// EmployeeWriter defines write operations for employees.
type EmployeeWriter interface {
	SaveEmployee(ctx context.Context, employee domain.Employee) error
	UpdateEmployee(ctx context.Context, employee domain.Employee) error
}

// EmployeeRepositoryFacade combines all employee-related repository interfaces
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
}

// PayrollReader defines read operations for payroll runs.
type PayrollReader interface {
	// FindRunByPeriod returns the company's run for the month, or apperrors.ErrNotFound.
	FindRunByPeriod(ctx context.Context, companyID string, month, year int) (*domain.PayrollRun, error)
	// FindRunByID returns a run with its details.
	FindRunByID(ctx context.Context, companyID, runID string) (*domain.PayrollRun, error)
	ListRuns(ctx context.Context, companyID string, limit, offset int) ([]domain.PayrollRun, error)
}

// PayrollWriter defines write operations for payroll runs.
type PayrollWriter interface {
	// CreateRun inserts the run, its details and its final total in one transaction.
	// A run already present for the same company and period yields apperrors.ErrDuplicate
	// and nothing is written.
	CreateRun(ctx context.Context, run domain.PayrollRun) error
}

// PayrollRepositoryFacade combines all payroll-related repository interfaces
type PayrollRepositoryFacade interface {
	PayrollReader
	PayrollWriter
}
