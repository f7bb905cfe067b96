package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/platform/metrics"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	minPayrollYear = 2000
	maxPayrollYear = 2100

	defaultPayrollLockTTL = 30 * time.Second
)

// payrollService generates monthly payroll runs.
type payrollService struct {
	BaseService
	employeeRepo portsrepo.EmployeeReader
	payrollRepo  portsrepo.PayrollRepositoryFacade
	locker       portssvc.Locker
	lockTTL      time.Duration
	metrics      *metrics.Metrics
}

// PayrollServiceOption is a functional option for configuring the payroll service
type PayrollServiceOption func(*payrollService)

// WithPayrollAuthorizer sets the company authorizer for the payroll service.
func WithPayrollAuthorizer(authorizer portssvc.CompanyAuthorizerSvc) PayrollServiceOption {
	return func(s *payrollService) {
		s.CompanyAuthorizer = authorizer
	}
}

// WithPayrollLocker serializes generation of the same period across instances.
// A ttl of zero keeps the default.
func WithPayrollLocker(locker portssvc.Locker, ttl time.Duration) PayrollServiceOption {
	return func(s *payrollService) {
		s.locker = locker
		if ttl > 0 {
			s.lockTTL = ttl
		}
	}
}

// WithPayrollMetrics records generation outcomes.
func WithPayrollMetrics(m *metrics.Metrics) PayrollServiceOption {
	return func(s *payrollService) {
		s.metrics = m
	}
}

// NewPayrollService creates a new payroll service.
func NewPayrollService(employeeRepo portsrepo.EmployeeReader, payrollRepo portsrepo.PayrollRepositoryFacade, options ...PayrollServiceOption) portssvc.PayrollSvcFacade {
	svc := &payrollService{
		employeeRepo: employeeRepo,
		payrollRepo:  payrollRepo,
		lockTTL:      defaultPayrollLockTTL,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.PayrollSvcFacade = (*payrollService)(nil)

func duplicateRunError(month, year int) error {
	return apperrors.NewAppError(409, fmt.Sprintf("payroll run for %02d/%d already exists", month, year), apperrors.ErrDuplicate)
}

// GenerateRun creates the draft run of a period. Allowances and deductions are always
// zero, so each employee's net pay equals their basic salary.
func (s *payrollService) GenerateRun(ctx context.Context, companyID string, month, year int, actor domain.Actor) (*domain.PayrollRun, error) {
	if err := s.AuthorizeUser(ctx, actor, companyID, domain.RoleCompanyAdmin); err != nil {
		return nil, err
	}
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month must be between 1 and 12", apperrors.ErrValidation)
	}
	if year < minPayrollYear || year > maxPayrollYear {
		return nil, fmt.Errorf("%w: year must be between %d and %d", apperrors.ErrValidation, minPayrollYear, maxPayrollYear)
	}

	logger := s.GetLogger(ctx).With(
		slog.String("company_id", companyID),
		slog.Int("month", month),
		slog.Int("year", year))

	if s.locker != nil {
		key := fmt.Sprintf("payroll:%s:%04d-%02d", companyID, year, month)
		release, acquired, err := s.locker.Acquire(ctx, key, s.lockTTL)
		switch {
		case err != nil:
			// the unique period constraint still rejects a concurrent duplicate
			logger.Warn("Payroll lock unavailable, continuing without it", slog.String("error", err.Error()))
		case !acquired:
			s.metrics.PayrollRun("duplicate")
			logger.Info("Payroll generation already in progress")
			return nil, duplicateRunError(month, year)
		default:
			defer func() {
				if err := release(context.WithoutCancel(ctx)); err != nil {
					logger.Warn("Failed to release payroll lock", slog.String("error", err.Error()))
				}
			}()
		}
	}

	if _, err := s.payrollRepo.FindRunByPeriod(ctx, companyID, month, year); err == nil {
		s.metrics.PayrollRun("duplicate")
		return nil, duplicateRunError(month, year)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		s.metrics.PayrollRun("failed")
		logger.Error("Failed to check for existing payroll run", slog.String("error", err.Error()))
		return nil, err
	}

	employees, err := s.employeeRepo.ListActiveEmployees(ctx, companyID)
	if err != nil {
		s.metrics.PayrollRun("failed")
		logger.Error("Failed to list active employees", slog.String("error", err.Error()))
		return nil, err
	}

	now := time.Now().UTC()
	run := domain.PayrollRun{
		RunID:     uuid.NewString(),
		CompanyID: companyID,
		Month:     month,
		Year:      year,
		Status:    domain.PayrollDraft,
		TotalNet:  decimal.Zero,
		Details:   make([]domain.PayrollDetail, 0, len(employees)),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}
	for _, e := range employees {
		allowances, deductions := decimal.Zero, decimal.Zero
		net := e.BasicSalary.Add(allowances).Sub(deductions)
		run.Details = append(run.Details, domain.PayrollDetail{
			DetailID:   uuid.NewString(),
			RunID:      run.RunID,
			EmployeeID: e.EmployeeID,
			Basic:      e.BasicSalary,
			Allowances: allowances,
			Deductions: deductions,
			Net:        net,
		})
		run.TotalNet = run.TotalNet.Add(net)
	}

	if err := s.payrollRepo.CreateRun(ctx, run); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			s.metrics.PayrollRun("duplicate")
			logger.Info("Payroll run created concurrently by another request")
			return nil, err
		}
		s.metrics.PayrollRun("failed")
		logger.Error("Failed to create payroll run", slog.String("error", err.Error()))
		return nil, err
	}

	s.metrics.PayrollRun("created")
	logger.Info("Payroll run generated",
		slog.String("run_id", run.RunID),
		slog.Int("employee_count", len(run.Details)),
		slog.String("total_net", run.TotalNet.String()))
	return &run, nil
}

func (s *payrollService) GetRun(ctx context.Context, companyID, runID string, actor domain.Actor) (*domain.PayrollRun, error) {
	if err := s.AuthorizeUser(ctx, actor, companyID, domain.RoleCompanyAdmin); err != nil {
		return nil, err
	}
	return s.payrollRepo.FindRunByID(ctx, companyID, runID)
}

func (s *payrollService) ListRuns(ctx context.Context, companyID string, limit, offset int, actor domain.Actor) ([]domain.PayrollRun, error) {
	if err := s.AuthorizeUser(ctx, actor, companyID, domain.RoleCompanyAdmin); err != nil {
		return nil, err
	}
	runs, err := s.payrollRepo.ListRuns(ctx, companyID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payroll runs", slog.String("company_id", companyID))
		return nil, err
	}
	if runs == nil {
		return []domain.PayrollRun{}, nil
	}
	return runs, nil
}
