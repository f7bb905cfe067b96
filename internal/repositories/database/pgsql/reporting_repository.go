package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/erp_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

func newReportingRepository(pool PgxPool) portsrepo.ReportingRepository {
	return &reportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// GetTrialBalanceData retrieves debit and credit totals for every account of the company.
func (r *reportingRepository) GetTrialBalanceData(ctx context.Context, companyID string, asOf *time.Time) ([]domain.TrialBalanceRow, error) {
	query := `
		SELECT
			a.account_id,
			a.code,
			a.name,
			a.account_type,
			COALESCE(SUM(l.debit), 0) AS total_debit,
			COALESCE(SUM(l.credit), 0) AS total_credit
		FROM accounts a
		LEFT JOIN (
			journal_lines l
			JOIN journal_entries e ON e.entry_id = l.entry_id
		) ON l.account_id = a.account_id
			AND e.company_id = a.company_id
			AND ($2::date IS NULL OR e.entry_date <= $2::date)
		WHERE a.company_id = $1
		GROUP BY a.account_id, a.code, a.name, a.account_type
		ORDER BY a.code;
	`

	rows, err := r.Pool.Query(ctx, query, companyID, asOf)
	if err != nil {
		return nil, apperrors.NewAppError(500, "error querying trial balance data", err)
	}
	defer rows.Close()

	result := []domain.TrialBalanceRow{}
	for rows.Next() {
		var row domain.TrialBalanceRow
		var accountType string

		if err := rows.Scan(
			&row.AccountID,
			&row.AccountCode,
			&row.AccountName,
			&accountType,
			&row.Debit,
			&row.Credit,
		); err != nil {
			return nil, apperrors.NewAppError(500, "error scanning trial balance row", err)
		}

		row.AccountType = domain.AccountType(accountType)
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating trial balance rows", err)
	}
	return result, nil
}

// GetAccountTotals returns the debit and credit totals of one account of the company.
func (r *reportingRepository) GetAccountTotals(ctx context.Context, companyID, accountID string, asOf *time.Time) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(l.debit), 0), COALESCE(SUM(l.credit), 0)
		FROM journal_lines l
		JOIN journal_entries e ON e.entry_id = l.entry_id
		WHERE l.account_id = $1
			AND e.company_id = $2
			AND ($3::date IS NULL OR e.entry_date <= $3::date);
	`
	var debit, credit decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, accountID, companyID, asOf).Scan(&debit, &credit); err != nil {
		return decimal.Zero, decimal.Zero, apperrors.NewAppError(500, "error querying totals of account "+accountID, err)
	}
	return debit, credit, nil
}

// GetTaxSummaryData groups postings of tax-coded accounts by tax code.
func (r *reportingRepository) GetTaxSummaryData(ctx context.Context, companyID string, from, to time.Time) ([]domain.TaxSummaryRow, error) {
	query := `
		SELECT
			a.tax_code,
			COALESCE(SUM(l.debit), 0) AS total_debit,
			COALESCE(SUM(l.credit), 0) AS total_credit
		FROM journal_lines l
		JOIN journal_entries e ON e.entry_id = l.entry_id
		JOIN accounts a ON a.account_id = l.account_id
		WHERE e.company_id = $1
			AND a.company_id = $1
			AND a.tax_code <> ''
			AND e.entry_date BETWEEN $2 AND $3
		GROUP BY a.tax_code
		ORDER BY a.tax_code;
	`

	rows, err := r.Pool.Query(ctx, query, companyID, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "error querying tax summary data", err)
	}
	defer rows.Close()

	result := []domain.TaxSummaryRow{}
	for rows.Next() {
		var row domain.TaxSummaryRow
		if err := rows.Scan(&row.TaxCode, &row.Debit, &row.Credit); err != nil {
			return nil, apperrors.NewAppError(500, "error scanning tax summary row", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating tax summary rows", err)
	}
	return result, nil
}

// GetProfitAndLossData retrieves revenue and expense accounts with their natural-sign net for the period.
func (r *reportingRepository) GetProfitAndLossData(ctx context.Context, companyID string, from, to time.Time) ([]domain.AccountAmount, []domain.AccountAmount, error) {
	query := `
		SELECT
			a.account_type,
			a.account_id,
			a.code,
			a.name,
			COALESCE(SUM(l.debit), 0) AS total_debit,
			COALESCE(SUM(l.credit), 0) AS total_credit
		FROM journal_lines l
		JOIN accounts a ON l.account_id = a.account_id
		JOIN journal_entries e ON l.entry_id = e.entry_id
		WHERE e.entry_date BETWEEN $1 AND $2
			AND e.company_id = $3
			AND a.company_id = $3
			AND a.account_type IN ('REVENUE', 'EXPENSE')
		GROUP BY a.account_type, a.account_id, a.code, a.name
		ORDER BY a.code;
	`

	rows, err := r.Pool.Query(ctx, query, from, to, companyID)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "error querying profit and loss data", err)
	}
	defer rows.Close()

	revenue := []domain.AccountAmount{}
	expenses := []domain.AccountAmount{}

	for rows.Next() {
		var accountType string
		var amount domain.AccountAmount
		var debit, credit decimal.Decimal

		if err := rows.Scan(&accountType, &amount.AccountID, &amount.Code, &amount.Name, &debit, &credit); err != nil {
			return nil, nil, apperrors.NewAppError(500, "error scanning profit and loss row", err)
		}

		amount.NetAmount = accounting.NormalBalance(domain.AccountType(accountType), debit, credit)
		if domain.AccountType(accountType) == domain.Revenue {
			revenue = append(revenue, amount)
		} else {
			expenses = append(expenses, amount)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating profit and loss rows", err)
	}
	return revenue, expenses, nil
}

// GetBalanceSheetData retrieves natural-sign balances of every posted account as of a date, by type.
func (r *reportingRepository) GetBalanceSheetData(ctx context.Context, companyID string, asOf time.Time) (map[domain.AccountType][]domain.AccountAmount, error) {
	query := `
		SELECT
			a.account_type,
			a.account_id,
			a.code,
			a.name,
			COALESCE(SUM(l.debit), 0) AS total_debit,
			COALESCE(SUM(l.credit), 0) AS total_credit
		FROM journal_lines l
		JOIN accounts a ON l.account_id = a.account_id
		JOIN journal_entries e ON l.entry_id = e.entry_id
		WHERE e.entry_date <= $1
			AND e.company_id = $2
			AND a.company_id = $2
		GROUP BY a.account_type, a.account_id, a.code, a.name
		ORDER BY a.code;
	`

	rows, err := r.Pool.Query(ctx, query, asOf, companyID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "error querying balance sheet data", err)
	}
	defer rows.Close()

	result := make(map[domain.AccountType][]domain.AccountAmount)
	for rows.Next() {
		var accountType string
		var amount domain.AccountAmount
		var debit, credit decimal.Decimal

		if err := rows.Scan(&accountType, &amount.AccountID, &amount.Code, &amount.Name, &debit, &credit); err != nil {
			return nil, apperrors.NewAppError(500, "error scanning balance sheet row", err)
		}
		t := domain.AccountType(accountType)
		amount.NetAmount = accounting.NormalBalance(t, debit, credit)
		result[t] = append(result[t], amount)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating balance sheet rows", err)
	}
	return result, nil
}
