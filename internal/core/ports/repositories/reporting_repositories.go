package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingRepository defines the aggregation queries over posted journal lines.
type ReportingRepository interface {
	// GetTrialBalanceData returns debit and credit totals for every account of the company,
	// including accounts without postings, counting entries dated up to asOf when given.
	GetTrialBalanceData(ctx context.Context, companyID string, asOf *time.Time) ([]domain.TrialBalanceRow, error)

	// GetAccountTotals returns the debit and credit totals of one account.
	GetAccountTotals(ctx context.Context, companyID, accountID string, asOf *time.Time) (decimal.Decimal, decimal.Decimal, error)

	// GetTaxSummaryData groups postings of tax-coded accounts by tax code for the date range.
	GetTaxSummaryData(ctx context.Context, companyID string, from, to time.Time) ([]domain.TaxSummaryRow, error)

	// GetProfitAndLossData returns revenue and expense accounts with their natural-sign net for the range.
	GetProfitAndLossData(ctx context.Context, companyID string, from, to time.Time) ([]domain.AccountAmount, []domain.AccountAmount, error)

	// GetBalanceSheetData returns natural-sign balances of every posted account as of a date,
	// grouped by account type.
	GetBalanceSheetData(ctx context.Context, companyID string, asOf time.Time) (map[domain.AccountType][]domain.AccountAmount, error)
}
