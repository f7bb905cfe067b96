package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) CreateAccount(ctx context.Context, companyID string, req dto.CreateAccountRequest, actor domain.Actor) (*domain.Account, error) {
	args := m.Called(ctx, companyID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, companyID, accountID string, actor domain.Actor) (*domain.Account, error) {
	args := m.Called(ctx, companyID, accountID, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, companyID string, params dto.ListAccountsParams, actor domain.Actor) ([]domain.Account, error) {
	args := m.Called(ctx, companyID, params, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, companyID, accountID string, req dto.UpdateAccountRequest, actor domain.Actor) (*domain.Account, error) {
	args := m.Called(ctx, companyID, accountID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) DeactivateAccount(ctx context.Context, companyID, accountID string, actor domain.Actor) error {
	return m.Called(ctx, companyID, accountID, actor).Error(0)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock JournalService ---
type MockJournalService struct {
	mock.Mock
}

func (m *MockJournalService) CreateEntry(ctx context.Context, companyID string, req dto.JournalEntryRequest, actor domain.Actor) (*domain.JournalEntry, error) {
	args := m.Called(ctx, companyID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) ReplaceEntry(ctx context.Context, companyID, entryID string, req dto.JournalEntryRequest, actor domain.Actor) (*domain.JournalEntry, error) {
	args := m.Called(ctx, companyID, entryID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) DeleteEntry(ctx context.Context, companyID, entryID string, actor domain.Actor) error {
	return m.Called(ctx, companyID, entryID, actor).Error(0)
}

func (m *MockJournalService) GetEntry(ctx context.Context, companyID, entryID string, actor domain.Actor) (*domain.JournalEntry, error) {
	args := m.Called(ctx, companyID, entryID, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) ListEntries(ctx context.Context, companyID string, params dto.ListJournalEntriesParams, actor domain.Actor) (*dto.ListJournalEntriesResponse, error) {
	args := m.Called(ctx, companyID, params, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListJournalEntriesResponse), args.Error(1)
}

var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) TrialBalance(ctx context.Context, companyID string, asOf *time.Time, actor domain.Actor) (*domain.TrialBalance, error) {
	args := m.Called(ctx, companyID, asOf, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrialBalance), args.Error(1)
}

func (m *MockReportingService) AccountBalance(ctx context.Context, companyID, accountID string, asOf *time.Time, actor domain.Actor) (*domain.AccountBalance, error) {
	args := m.Called(ctx, companyID, accountID, asOf, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountBalance), args.Error(1)
}

func (m *MockReportingService) TaxSummary(ctx context.Context, companyID string, from, to time.Time, actor domain.Actor) (*domain.TaxSummary, error) {
	args := m.Called(ctx, companyID, from, to, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaxSummary), args.Error(1)
}

func (m *MockReportingService) ProfitAndLoss(ctx context.Context, companyID string, from, to time.Time, actor domain.Actor) (*domain.PAndLReport, error) {
	args := m.Called(ctx, companyID, from, to, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PAndLReport), args.Error(1)
}

func (m *MockReportingService) BalanceSheet(ctx context.Context, companyID string, asOf time.Time, actor domain.Actor) (*domain.BalanceSheetReport, error) {
	args := m.Called(ctx, companyID, asOf, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSheetReport), args.Error(1)
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)

// --- Mock EmployeeService ---
type MockEmployeeService struct {
	mock.Mock
}

func (m *MockEmployeeService) CreateEmployee(ctx context.Context, companyID string, req dto.CreateEmployeeRequest, actor domain.Actor) (*domain.Employee, error) {
	args := m.Called(ctx, companyID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeService) GetEmployee(ctx context.Context, companyID, employeeID string, actor domain.Actor) (*domain.Employee, error) {
	args := m.Called(ctx, companyID, employeeID, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeService) ListEmployees(ctx context.Context, companyID string, params dto.ListEmployeesParams, actor domain.Actor) ([]domain.Employee, error) {
	args := m.Called(ctx, companyID, params, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeService) UpdateEmployee(ctx context.Context, companyID, employeeID string, req dto.UpdateEmployeeRequest, actor domain.Actor) (*domain.Employee, error) {
	args := m.Called(ctx, companyID, employeeID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

var _ portssvc.EmployeeSvcFacade = (*MockEmployeeService)(nil)

// --- Mock PayrollService ---
type MockPayrollService struct {
	mock.Mock
}

func (m *MockPayrollService) GenerateRun(ctx context.Context, companyID string, month, year int, actor domain.Actor) (*domain.PayrollRun, error) {
	args := m.Called(ctx, companyID, month, year, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayrollRun), args.Error(1)
}

func (m *MockPayrollService) GetRun(ctx context.Context, companyID, runID string, actor domain.Actor) (*domain.PayrollRun, error) {
	args := m.Called(ctx, companyID, runID, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayrollRun), args.Error(1)
}

func (m *MockPayrollService) ListRuns(ctx context.Context, companyID string, limit, offset int, actor domain.Actor) ([]domain.PayrollRun, error) {
	args := m.Called(ctx, companyID, limit, offset, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PayrollRun), args.Error(1)
}

var _ portssvc.PayrollSvcFacade = (*MockPayrollService)(nil)
