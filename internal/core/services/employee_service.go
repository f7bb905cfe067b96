package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/SscSPs/erp_ledger/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type employeeService struct {
	BaseService
	employeeRepo  portsrepo.EmployeeRepositoryFacade
	currencyScale int32
}

// EmployeeServiceOption is a functional option for configuring the employee service
type EmployeeServiceOption func(*employeeService)

// WithEmployeeAuthorizer sets the company authorizer for the employee service.
func WithEmployeeAuthorizer(authorizer portssvc.CompanyAuthorizerSvc) EmployeeServiceOption {
	return func(s *employeeService) {
		s.CompanyAuthorizer = authorizer
	}
}

// WithSalaryScale sets the number of decimal places a salary may carry.
func WithSalaryScale(scale int32) EmployeeServiceOption {
	return func(s *employeeService) {
		s.currencyScale = scale
	}
}

// NewEmployeeService creates a new employee service.
func NewEmployeeService(repo portsrepo.EmployeeRepositoryFacade, options ...EmployeeServiceOption) portssvc.EmployeeSvcFacade {
	svc := &employeeService{
		employeeRepo:  repo,
		currencyScale: accounting.DefaultCurrencyScale,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

func (s *employeeService) validateSalary(salary decimal.Decimal) error {
	if salary.IsNegative() {
		return fmt.Errorf("%w: basic salary must not be negative", apperrors.ErrValidation)
	}
	if !salary.Equal(salary.Truncate(s.currencyScale)) {
		return fmt.Errorf("%w: basic salary %s", accounting.ErrAmountPrecision, salary.String())
	}
	if !accounting.FitsAmount(salary) {
		return fmt.Errorf("%w: basic salary %s", accounting.ErrAmountTooLarge, salary.String())
	}
	return nil
}

func (s *employeeService) CreateEmployee(ctx context.Context, companyID string, req dto.CreateEmployeeRequest, actor domain.Actor) (*domain.Employee, error) {
	if err := s.AuthorizeUser(ctx, actor, companyID, domain.RoleCompanyAdmin); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: employee name is required", apperrors.ErrValidation)
	}
	if err := s.validateSalary(req.BasicSalary); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	employee := domain.Employee{
		EmployeeID:  uuid.NewString(),
		CompanyID:   companyID,
		Name:        name,
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		BasicSalary: req.BasicSalary,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save employee", slog.String("company_id", companyID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Employee created successfully",
		slog.String("employee_id", employee.EmployeeID),
		slog.String("company_id", companyID))
	return &employee, nil
}

func (s *employeeService) GetEmployee(ctx context.Context, companyID, employeeID string, actor domain.Actor) (*domain.Employee, error) {
	if err := s.AuthorizeUser(ctx, actor, companyID, domain.RoleEmployee); err != nil {
		return nil, err
	}
	return s.employeeRepo.FindEmployeeByID(ctx, companyID, employeeID)
}

func (s *employeeService) ListEmployees(ctx context.Context, companyID string, params dto.ListEmployeesParams, actor domain.Actor) ([]domain.Employee, error) {
	if err := s.AuthorizeUser(ctx, actor, companyID, domain.RoleEmployee); err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.ListEmployees(ctx, companyID, params.Limit, params.Offset, params.IncludeInactive)
	if err != nil {
		s.LogError(ctx, err, "Failed to list employees", slog.String("company_id", companyID))
		return nil, err
	}
	if employees == nil {
		return []domain.Employee{}, nil
	}
	return employees, nil
}

func (s *employeeService) UpdateEmployee(ctx context.Context, companyID, employeeID string, req dto.UpdateEmployeeRequest, actor domain.Actor) (*domain.Employee, error) {
	if err := s.AuthorizeUser(ctx, actor, companyID, domain.RoleCompanyAdmin); err != nil {
		return nil, err
	}

	employee, err := s.employeeRepo.FindEmployeeByID(ctx, companyID, employeeID)
	if err != nil {
		return nil, err
	}
	if req.IsEmpty() {
		s.LogDebug(ctx, "No fields provided for employee update", slog.String("employee_id", employeeID))
		return employee, nil
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: employee name must not be blank", apperrors.ErrValidation)
		}
		employee.Name = name
	}
	if req.Email != nil {
		employee.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.BasicSalary != nil {
		if err := s.validateSalary(*req.BasicSalary); err != nil {
			return nil, err
		}
		employee.BasicSalary = *req.BasicSalary
	}
	if req.IsActive != nil {
		employee.IsActive = *req.IsActive
	}
	employee.LastUpdatedAt = time.Now().UTC()
	employee.LastUpdatedBy = actor.UserID

	if err := s.employeeRepo.UpdateEmployee(ctx, *employee); err != nil {
		s.LogError(ctx, err, "Failed to update employee", slog.String("employee_id", employeeID))
		return nil, err
	}

	s.LogInfo(ctx, "Employee updated successfully",
		slog.String("employee_id", employeeID),
		slog.String("company_id", companyID))
	return employee, nil
}
