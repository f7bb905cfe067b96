package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

// PgxPayrollRepository stores payroll runs and their per-employee details.
type PgxPayrollRepository struct {
	BaseRepository
}

func newPgxPayrollRepository(pool PgxPool) portsrepo.PayrollRepositoryFacade {
	return &PgxPayrollRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PayrollRepositoryFacade = (*PgxPayrollRepository)(nil)

const (
	runColumns = `run_id, company_id, period_month, period_year, status, total_net,
		created_at, created_by, last_updated_at, last_updated_by`

	// The unique (company_id, period_month, period_year) constraint decides which of two
	// concurrent generators wins; the loser gets no row back.
	insertRunQuery = `
		INSERT INTO payroll_runs (` + runColumns + `)
		VALUES ($1, $2, $3, $4, $5, 0, $6, $7, $8, $9)
		ON CONFLICT (company_id, period_month, period_year) DO NOTHING
		RETURNING run_id;
	`

	insertDetailsQuery = `
		INSERT INTO payroll_details (detail_id, run_id, employee_id, basic, allowances, deductions, net)
		SELECT d.detail_id, d.run_id, d.employee_id, d.basic::numeric, d.allowances::numeric, d.deductions::numeric, d.net::numeric
		FROM unnest($1::text[], $2::text[], $3::text[], $4::text[], $5::text[], $6::text[], $7::text[])
			AS d(detail_id, run_id, employee_id, basic, allowances, deductions, net);
	`

	updateRunTotalQuery = `UPDATE payroll_runs SET total_net = $2 WHERE run_id = $1;`
)

// CreateRun inserts the run header, every detail and the final total in one transaction.
func (r *PgxPayrollRepository) CreateRun(ctx context.Context, run domain.PayrollRun) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var insertedID string
	err = tx.QueryRow(ctx, insertRunQuery,
		run.RunID,
		run.CompanyID,
		run.Month,
		run.Year,
		string(run.Status),
		run.CreatedAt,
		run.CreatedBy,
		run.LastUpdatedAt,
		run.LastUpdatedBy,
	).Scan(&insertedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewAppError(409, fmt.Sprintf("payroll run for %02d/%d already exists", run.Month, run.Year), apperrors.ErrDuplicate)
		}
		return mapWriteError(err, "failed to insert payroll run "+run.RunID)
	}

	if len(run.Details) > 0 {
		if err := r.insertDetails(ctx, tx, run); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(ctx, updateRunTotalQuery, run.RunID, run.TotalNet); err != nil {
		return mapWriteError(err, "failed to set total of payroll run "+run.RunID)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxPayrollRepository) insertDetails(ctx context.Context, tx pgx.Tx, run domain.PayrollRun) error {
	n := len(run.Details)
	detailIDs := make([]string, n)
	runIDs := make([]string, n)
	employeeIDs := make([]string, n)
	basics := make([]string, n)
	allowances := make([]string, n)
	deductions := make([]string, n)
	nets := make([]string, n)

	for i, d := range run.Details {
		detailIDs[i] = d.DetailID
		runIDs[i] = run.RunID
		employeeIDs[i] = d.EmployeeID
		basics[i] = d.Basic.String()
		allowances[i] = d.Allowances.String()
		deductions[i] = d.Deductions.String()
		nets[i] = d.Net.String()
	}

	tag, err := tx.Exec(ctx, insertDetailsQuery, detailIDs, runIDs, employeeIDs, basics, allowances, deductions, nets)
	if err != nil {
		return mapWriteError(err, "failed to insert details of payroll run "+run.RunID)
	}
	if tag.RowsAffected() != int64(n) {
		return apperrors.NewAppError(500, fmt.Sprintf("inserted %d of %d details for payroll run %s", tag.RowsAffected(), n, run.RunID), nil)
	}
	return nil
}

func scanRun(row pgx.Row) (domain.PayrollRun, error) {
	var run domain.PayrollRun
	var status string
	err := row.Scan(
		&run.RunID,
		&run.CompanyID,
		&run.Month,
		&run.Year,
		&status,
		&run.TotalNet,
		&run.CreatedAt,
		&run.CreatedBy,
		&run.LastUpdatedAt,
		&run.LastUpdatedBy,
	)
	run.Status = domain.PayrollRunStatus(status)
	return run, err
}

// FindRunByPeriod returns the company's run for a month without its details.
func (r *PgxPayrollRepository) FindRunByPeriod(ctx context.Context, companyID string, month, year int) (*domain.PayrollRun, error) {
	query := `SELECT ` + runColumns + ` FROM payroll_runs WHERE company_id = $1 AND period_month = $2 AND period_year = $3;`

	run, err := scanRun(r.Pool.QueryRow(ctx, query, companyID, month, year))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to find payroll run for %02d/%d", month, year), err)
	}
	return &run, nil
}

// FindRunByID returns a run of the company with its details.
func (r *PgxPayrollRepository) FindRunByID(ctx context.Context, companyID, runID string) (*domain.PayrollRun, error) {
	query := `SELECT ` + runColumns + ` FROM payroll_runs WHERE run_id = $1 AND company_id = $2;`

	run, err := scanRun(r.Pool.QueryRow(ctx, query, runID, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find payroll run by ID "+runID, err)
	}

	detailsQuery := `
		SELECT detail_id, run_id, employee_id, basic, allowances, deductions, net
		FROM payroll_details
		WHERE run_id = $1
		ORDER BY employee_id;
	`
	rows, err := r.Pool.Query(ctx, detailsQuery, runID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query details of payroll run "+runID, err)
	}
	defer rows.Close()

	run.Details = []domain.PayrollDetail{}
	for rows.Next() {
		var d domain.PayrollDetail
		if err := rows.Scan(&d.DetailID, &d.RunID, &d.EmployeeID, &d.Basic, &d.Allowances, &d.Deductions, &d.Net); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payroll detail row", err)
		}
		run.Details = append(run.Details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating payroll detail rows", err)
	}
	return &run, nil
}

// ListRuns retrieves a page of the company's runs, latest period first.
func (r *PgxPayrollRepository) ListRuns(ctx context.Context, companyID string, limit, offset int) ([]domain.PayrollRun, error) {
	query := `
		SELECT ` + runColumns + ` FROM payroll_runs
		WHERE company_id = $1
		ORDER BY period_year DESC, period_month DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list payroll runs for company "+companyID, err)
	}
	defer rows.Close()

	runs := []domain.PayrollRun{}
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payroll run row", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating payroll run rows", err)
	}
	return runs, nil
}
