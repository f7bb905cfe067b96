package services

import (
	"context"
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// ReportingService defines operations for generating financial reports
type ReportingService interface {
	// TrialBalance summarizes every account of the company up to asOf (all entries when nil).
	TrialBalance(ctx context.Context, companyID string, asOf *time.Time, actor domain.Actor) (*domain.TrialBalance, error)

	// AccountBalance returns the posted totals of one account up to asOf (all entries when nil).
	AccountBalance(ctx context.Context, companyID, accountID string, asOf *time.Time, actor domain.Actor) (*domain.AccountBalance, error)

	// TaxSummary groups postings on tax-coded accounts by tax code for an inclusive date range.
	TaxSummary(ctx context.Context, companyID string, from, to time.Time, actor domain.Actor) (*domain.TaxSummary, error)

	// ProfitAndLoss generates a profit and loss report for a specific period
	ProfitAndLoss(ctx context.Context, companyID string, from, to time.Time, actor domain.Actor) (*domain.PAndLReport, error)

	// BalanceSheet generates a balance sheet report as of a specific date
	BalanceSheet(ctx context.Context, companyID string, asOf time.Time, actor domain.Actor) (*domain.BalanceSheetReport, error)
}
