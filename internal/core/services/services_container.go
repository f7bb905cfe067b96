package services

import (
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/platform/config"
	"github.com/SscSPs/erp_ledger/internal/platform/metrics"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// locker may be nil, in which case payroll generation relies on the database alone.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, m *metrics.Metrics, locker portssvc.Locker) *portssvc.ServiceContainer {
	authorizer := NewCompanyAuthorizer()

	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo, WithAccountAuthorizer(authorizer))
	container.Journal = NewJournalService(
		repos.JournalRepo,
		repos.AccountRepo,
		WithJournalAuthorizer(authorizer),
		WithJournalMetrics(m),
		WithCurrencyScale(cfg.CurrencyScale),
	)
	container.Reporting = NewReportingService(repos.ReportingRepo, repos.AccountRepo, WithReportingAuthorizer(authorizer))
	container.Employee = NewEmployeeService(
		repos.EmployeeRepo,
		WithEmployeeAuthorizer(authorizer),
		WithSalaryScale(cfg.CurrencyScale),
	)

	payrollOpts := []PayrollServiceOption{
		WithPayrollAuthorizer(authorizer),
		WithPayrollMetrics(m),
	}
	if locker != nil {
		payrollOpts = append(payrollOpts, WithPayrollLocker(locker, cfg.PayrollLockTTL))
	}
	container.Payroll = NewPayrollService(repos.EmployeeRepo, repos.PayrollRepo, payrollOpts...)

	return container
}
