package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	accountRepo   portsrepo.AccountReader
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportingAuthorizer sets the company authorizer for the reporting service.
func WithReportingAuthorizer(authorizer portssvc.CompanyAuthorizerSvc) ReportingServiceOption {
	return func(s *reportingService) {
		s.CompanyAuthorizer = authorizer
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(repo portsrepo.ReportingRepository, accountRepo portsrepo.AccountReader, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		reportingRepo: repo,
		accountRepo:   accountRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ReportingService = (*reportingService)(nil)

func formatAsOf(asOf *time.Time) string {
	if asOf == nil {
		return "all"
	}
	return asOf.Format(time.DateOnly)
}

// TrialBalance summarizes every account of the company.
func (s *reportingService) TrialBalance(ctx context.Context, companyID string, asOf *time.Time, actor domain.Actor) (*domain.TrialBalance, error) {
	if err := s.AuthorizeUser(ctx, actor, companyID, domain.RoleEmployee); err != nil {
		return nil, err
	}

	rows, err := s.reportingRepo.GetTrialBalanceData(ctx, companyID, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve trial balance data",
			slog.String("company_id", companyID),
			slog.String("asOf", formatAsOf(asOf)))
		return nil, fmt.Errorf("failed to retrieve trial balance data: %w", err)
	}

	tb := accounting.BuildTrialBalance(companyID, asOf, rows)
	if !tb.IsBalanced {
		// A consistent ledger always nets to zero.
		s.LogError(ctx, apperrors.ErrInternal, "Trial balance does not net to zero",
			slog.String("company_id", companyID),
			slog.String("net_balance", tb.NetBalance.String()))
	}

	s.LogInfo(ctx, "Trial balance report generated successfully",
		slog.String("company_id", companyID),
		slog.String("asOf", formatAsOf(asOf)),
		slog.Int("row_count", len(tb.Rows)))
	return &tb, nil
}

// AccountBalance returns the posted totals of one account.
func (s *reportingService) AccountBalance(ctx context.Context, companyID, accountID string, asOf *time.Time, actor domain.Actor) (*domain.AccountBalance, error) {
	if err := s.AuthorizeUser(ctx, actor, companyID, domain.RoleEmployee); err != nil {
		return nil, err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, companyID, accountID)
	if err != nil {
		return nil, err
	}

	debit, credit, err := s.reportingRepo.GetAccountTotals(ctx, companyID, accountID, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve account totals",
			slog.String("company_id", companyID),
			slog.String("account_id", accountID))
		return nil, err
	}

	return &domain.AccountBalance{
		Account:       *account,
		AsOf:          asOf,
		Debit:         debit,
		Credit:        credit,
		Balance:       debit.Sub(credit),
		NormalBalance: accounting.NormalBalance(account.AccountType, debit, credit),
	}, nil
}

func validateRange(from, to time.Time) error {
	if to.Before(from) {
		return fmt.Errorf("%w: 'from' date %s is after 'to' date %s", apperrors.ErrValidation, from.Format(time.DateOnly), to.Format(time.DateOnly))
	}
	return nil
}

// TaxSummary groups postings on tax-coded accounts by tax code.
func (s *reportingService) TaxSummary(ctx context.Context, companyID string, from, to time.Time, actor domain.Actor) (*domain.TaxSummary, error) {
	if err := s.AuthorizeUser(ctx, actor, companyID, domain.RoleEmployee); err != nil {
		return nil, err
	}
	if err := validateRange(from, to); err != nil {
		return nil, err
	}

	rows, err := s.reportingRepo.GetTaxSummaryData(ctx, companyID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve tax summary data", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to retrieve tax summary data: %w", err)
	}

	summary := &domain.TaxSummary{
		CompanyID:   companyID,
		From:        from,
		To:          to,
		Rows:        rows,
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
		NetPayable:  decimal.Zero,
	}
	for i := range summary.Rows {
		row := &summary.Rows[i]
		row.Net = row.Credit.Sub(row.Debit)
		summary.TotalDebit = summary.TotalDebit.Add(row.Debit)
		summary.TotalCredit = summary.TotalCredit.Add(row.Credit)
		summary.NetPayable = summary.NetPayable.Add(row.Net)
	}

	s.LogInfo(ctx, "Tax summary generated successfully",
		slog.String("company_id", companyID),
		slog.Int("tax_codes", len(rows)))
	return summary, nil
}

// ProfitAndLoss generates a profit and loss report for a specific period
func (s *reportingService) ProfitAndLoss(ctx context.Context, companyID string, from, to time.Time, actor domain.Actor) (*domain.PAndLReport, error) {
	if err := s.AuthorizeUser(ctx, actor, companyID, domain.RoleEmployee); err != nil {
		return nil, err
	}
	if err := validateRange(from, to); err != nil {
		return nil, err
	}

	revenue, expenses, err := s.reportingRepo.GetProfitAndLossData(ctx, companyID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve profit and loss data",
			slog.String("company_id", companyID),
			slog.String("from", from.Format(time.DateOnly)),
			slog.String("to", to.Format(time.DateOnly)))
		return nil, fmt.Errorf("failed to retrieve profit and loss data: %w", err)
	}

	totalRevenue := sumAmounts(revenue)
	totalExpenses := sumAmounts(expenses)

	report := &domain.PAndLReport{
		From:          from,
		To:            to,
		Revenue:       revenue,
		Expenses:      expenses,
		TotalRevenue:  totalRevenue,
		TotalExpenses: totalExpenses,
		NetProfit:     totalRevenue.Sub(totalExpenses),
	}

	s.LogInfo(ctx, "Profit and loss report generated successfully",
		slog.String("company_id", companyID),
		slog.Int("revenue_accounts", len(revenue)),
		slog.Int("expense_accounts", len(expenses)))
	return report, nil
}

// BalanceSheet generates a balance sheet report as of a specific date.
// Unclosed revenue and expense balances are carried in equity as retained earnings.
func (s *reportingService) BalanceSheet(ctx context.Context, companyID string, asOf time.Time, actor domain.Actor) (*domain.BalanceSheetReport, error) {
	if err := s.AuthorizeUser(ctx, actor, companyID, domain.RoleEmployee); err != nil {
		return nil, err
	}

	byType, err := s.reportingRepo.GetBalanceSheetData(ctx, companyID, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve balance sheet data",
			slog.String("company_id", companyID),
			slog.String("asOf", asOf.Format(time.DateOnly)))
		return nil, fmt.Errorf("failed to retrieve balance sheet data: %w", err)
	}

	assets := nonNil(byType[domain.Asset])
	liabilities := nonNil(byType[domain.Liability])
	equity := nonNil(byType[domain.Equity])
	retained := sumAmounts(byType[domain.Revenue]).Sub(sumAmounts(byType[domain.Expense]))

	report := &domain.BalanceSheetReport{
		AsOf:             asOf,
		Assets:           assets,
		Liabilities:      liabilities,
		Equity:           equity,
		TotalAssets:      sumAmounts(assets),
		TotalLiabilities: sumAmounts(liabilities),
		TotalEquity:      sumAmounts(equity).Add(retained),
		RetainedEarnings: retained,
	}

	s.LogInfo(ctx, "Balance sheet report generated successfully",
		slog.String("company_id", companyID),
		slog.String("asOf", asOf.Format(time.DateOnly)),
		slog.Int("asset_accounts", len(assets)),
		slog.Int("liability_accounts", len(liabilities)),
		slog.Int("equity_accounts", len(equity)))
	return report, nil
}

func sumAmounts(amounts []domain.AccountAmount) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a.NetAmount)
	}
	return total
}

func nonNil(amounts []domain.AccountAmount) []domain.AccountAmount {
	if amounts == nil {
		return []domain.AccountAmount{}
	}
	return amounts
}
