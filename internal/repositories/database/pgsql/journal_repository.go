package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/erp_ledger/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
)

// PgxJournalRepository stores journal entries and their lines. Every mutation runs in one transaction.
type PgxJournalRepository struct {
	BaseRepository
}

func newPgxJournalRepository(pool PgxPool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

const (
	entryColumns = `entry_id, company_id, reference, entry_date, description, total_amount,
		created_at, created_by, last_updated_at, last_updated_by`

	lockEntryQuery = `SELECT entry_id FROM journal_entries WHERE entry_id = $1 AND company_id = $2 FOR UPDATE;`

	deleteLinesQuery = `DELETE FROM journal_lines WHERE entry_id = $1;`

	// All lines go in with one statement; amounts travel as text and are cast server side.
	insertLinesQuery = `
		INSERT INTO journal_lines (line_id, entry_id, account_id, line_no, debit, credit, description, cost_center_id)
		SELECT l.line_id, l.entry_id, l.account_id, l.line_no, l.debit::numeric, l.credit::numeric, l.description, l.cost_center_id
		FROM unnest($1::text[], $2::text[], $3::text[], $4::int[], $5::text[], $6::text[], $7::text[], $8::text[])
			AS l(line_id, entry_id, account_id, line_no, debit, credit, description, cost_center_id);
	`
)

// CreateEntry inserts the header and all lines of a new entry atomically.
func (r *PgxJournalRepository) CreateEntry(ctx context.Context, entry domain.JournalEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO journal_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, query,
		entry.EntryID,
		entry.CompanyID,
		entry.Reference,
		entry.EntryDate,
		entry.Description,
		entry.TotalAmount,
		entry.CreatedAt,
		entry.CreatedBy,
		entry.LastUpdatedAt,
		entry.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "failed to insert journal entry "+entry.EntryID)
	}

	if err := r.insertLines(ctx, tx, entry); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// ReplaceEntry swaps the header fields and the complete line set of an existing entry.
// The header row stays locked until commit, so concurrent replacements and deletions
// serialize and readers never see the entry without lines.
func (r *PgxJournalRepository) ReplaceEntry(ctx context.Context, entry domain.JournalEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := r.lockEntry(ctx, tx, entry.CompanyID, entry.EntryID); err != nil {
		return err
	}

	updateQuery := `
		UPDATE journal_entries
		SET entry_date = $3, description = $4, total_amount = $5, last_updated_at = $6, last_updated_by = $7
		WHERE entry_id = $1 AND company_id = $2;
	`
	if _, err := tx.Exec(ctx, updateQuery,
		entry.EntryID,
		entry.CompanyID,
		entry.EntryDate,
		entry.Description,
		entry.TotalAmount,
		entry.LastUpdatedAt,
		entry.LastUpdatedBy,
	); err != nil {
		return apperrors.NewAppError(500, "failed to update journal entry "+entry.EntryID, err)
	}

	if _, err := tx.Exec(ctx, deleteLinesQuery, entry.EntryID); err != nil {
		return apperrors.NewAppError(500, "failed to delete lines of journal entry "+entry.EntryID, err)
	}

	if err := r.insertLines(ctx, tx, entry); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// DeleteEntry removes an entry and all of its lines atomically.
func (r *PgxJournalRepository) DeleteEntry(ctx context.Context, companyID, entryID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := r.lockEntry(ctx, tx, companyID, entryID); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, deleteLinesQuery, entryID); err != nil {
		return apperrors.NewAppError(500, "failed to delete lines of journal entry "+entryID, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM journal_entries WHERE entry_id = $1 AND company_id = $2;`, entryID, companyID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete journal entry "+entryID, err)
	}
	if tag.RowsAffected() != 1 {
		return apperrors.NewAppError(500, "journal entry "+entryID+" vanished while locked", nil)
	}

	return r.Commit(ctx, tx)
}

// lockEntry takes a row lock on the company's entry, reporting a missing or foreign entry as not found.
func (r *PgxJournalRepository) lockEntry(ctx context.Context, tx pgx.Tx, companyID, entryID string) error {
	var lockedID string
	if err := tx.QueryRow(ctx, lockEntryQuery, entryID, companyID).Scan(&lockedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return apperrors.NewAppError(500, "failed to lock journal entry "+entryID, err)
	}
	return nil
}

func (r *PgxJournalRepository) insertLines(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry) error {
	n := len(entry.Lines)
	lineIDs := make([]string, n)
	entryIDs := make([]string, n)
	accountIDs := make([]string, n)
	lineNos := make([]int32, n)
	debits := make([]string, n)
	credits := make([]string, n)
	descriptions := make([]string, n)
	costCenters := make([]*string, n)

	for i, line := range entry.Lines {
		lineIDs[i] = line.LineID
		entryIDs[i] = entry.EntryID
		accountIDs[i] = line.AccountID
		lineNos[i] = int32(line.LineNo)
		debits[i] = line.Debit.String()
		credits[i] = line.Credit.String()
		descriptions[i] = line.Description
		costCenters[i] = line.CostCenterID
	}

	tag, err := tx.Exec(ctx, insertLinesQuery, lineIDs, entryIDs, accountIDs, lineNos, debits, credits, descriptions, costCenters)
	if err != nil {
		return mapWriteError(err, "failed to insert lines of journal entry "+entry.EntryID)
	}
	if tag.RowsAffected() != int64(n) {
		return apperrors.NewAppError(500, fmt.Sprintf("inserted %d of %d lines for journal entry %s", tag.RowsAffected(), n, entry.EntryID), nil)
	}
	return nil
}

func scanEntry(row pgx.Row) (domain.JournalEntry, error) {
	var e domain.JournalEntry
	err := row.Scan(
		&e.EntryID,
		&e.CompanyID,
		&e.Reference,
		&e.EntryDate,
		&e.Description,
		&e.TotalAmount,
		&e.CreatedAt,
		&e.CreatedBy,
		&e.LastUpdatedAt,
		&e.LastUpdatedBy,
	)
	return e, err
}

// FindEntryByID retrieves an entry of the company with its lines ordered by line number.
// Header and lines come from one snapshot, so a concurrent replacement is seen entirely or not at all.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, companyID, entryID string) (*domain.JournalEntry, error) {
	tx, err := r.BeginSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE entry_id = $1 AND company_id = $2;`

	entry, err := scanEntry(tx.QueryRow(ctx, query, entryID, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find journal entry by ID "+entryID, err)
	}

	linesByEntry, err := findLines(ctx, tx, []string{entryID})
	if err != nil {
		return nil, err
	}
	entry.Lines = linesByEntry[entryID]

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListEntries returns a page of the company's entries ordered by entry date and creation time, newest first.
func (r *PgxJournalRepository) ListEntries(ctx context.Context, companyID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	limit = pagination.NormalizeLimit(limit)

	args := []any{companyID}
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE company_id = $1`

	if nextToken != nil && *nextToken != "" {
		lastEntryDate, lastCreatedAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", err)
		}
		query += ` AND (entry_date, created_at) < ($2, $3)`
		args = append(args, lastEntryDate, lastCreatedAt)
	}
	// One extra row tells whether another page exists.
	query += ` ORDER BY entry_date DESC, created_at DESC LIMIT $` + strconv.Itoa(len(args)+1) + `;`
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to list journal entries for company "+companyID, err)
	}
	defer rows.Close()

	entries := []domain.JournalEntry{}
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan journal entry row", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating journal entry rows", err)
	}
	rows.Close()

	var next *string
	if len(entries) > limit {
		entries = entries[:limit]
		last := entries[limit-1]
		token := pagination.EncodeToken(last.EntryDate, last.CreatedAt)
		next = &token
	}

	if len(entries) == 0 {
		return entries, nil, nil
	}

	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.EntryID
	}
	linesByEntry, err := findLines(ctx, r.Pool, ids)
	if err != nil {
		return nil, nil, err
	}
	for i := range entries {
		entries[i].Lines = linesByEntry[entries[i].EntryID]
	}

	return entries, next, nil
}

type rowQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func findLines(ctx context.Context, q rowQuerier, entryIDs []string) (map[string][]domain.JournalLine, error) {
	query := `
		SELECT line_id, entry_id, account_id, line_no, debit, credit, description, cost_center_id
		FROM journal_lines
		WHERE entry_id = ANY($1)
		ORDER BY entry_id, line_no;
	`
	rows, err := q.Query(ctx, query, entryIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query journal lines", err)
	}
	defer rows.Close()

	result := make(map[string][]domain.JournalLine, len(entryIDs))
	for rows.Next() {
		var l domain.JournalLine
		if err := rows.Scan(
			&l.LineID,
			&l.EntryID,
			&l.AccountID,
			&l.LineNo,
			&l.Debit,
			&l.Credit,
			&l.Description,
			&l.CostCenterID,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal line row", err)
		}
		result[l.EntryID] = append(result[l.EntryID], l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating journal line rows", err)
	}
	return result, nil
}
