package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/SscSPs/erp_ledger/internal/platform/metrics"
	"github.com/SscSPs/erp_ledger/internal/utils/accounting"
)

const (
	opCreate  = "create"
	opReplace = "replace"
	opDelete  = "delete"
)

// journalService posts, replaces and deletes journal entries.
type journalService struct {
	BaseService
	journalRepo   portsrepo.JournalRepositoryFacade
	accountRepo   portsrepo.AccountReader
	metrics       *metrics.Metrics
	currencyScale int32
}

// JournalServiceOption is a functional option for configuring the journal service
type JournalServiceOption func(*journalService)

// WithJournalAuthorizer sets the company authorizer for the journal service.
func WithJournalAuthorizer(authorizer portssvc.CompanyAuthorizerSvc) JournalServiceOption {
	return func(s *journalService) {
		s.CompanyAuthorizer = authorizer
	}
}

// WithJournalMetrics records committed and rejected postings.
func WithJournalMetrics(m *metrics.Metrics) JournalServiceOption {
	return func(s *journalService) {
		s.metrics = m
	}
}

// WithCurrencyScale sets the number of decimal places amounts may carry.
func WithCurrencyScale(scale int32) JournalServiceOption {
	return func(s *journalService) {
		s.currencyScale = scale
	}
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, accountRepo portsrepo.AccountReader, options ...JournalServiceOption) portssvc.JournalSvcFacade {
	svc := &journalService{
		journalRepo:   journalRepo,
		accountRepo:   accountRepo,
		currencyScale: accounting.DefaultCurrencyScale,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// CreateEntry validates the request and posts it as a new entry.
func (s *journalService) CreateEntry(ctx context.Context, companyID string, req dto.JournalEntryRequest, actor domain.Actor) (*domain.JournalEntry, error) {
	if err := s.AuthorizeUser(ctx, actor, companyID, domain.RoleCompanyAdmin); err != nil {
		return nil, err
	}

	entry, err := s.buildEntry(ctx, companyID, req)
	if err != nil {
		s.reject(ctx, opCreate, companyID, err)
		return nil, err
	}

	now := time.Now().UTC()
	entry.EntryID = uuid.NewString()
	entry.Reference = ulid.Make().String()
	entry.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     actor.UserID,
		LastUpdatedAt: now,
		LastUpdatedBy: actor.UserID,
	}
	assignLineIDs(&entry)

	if err := s.journalRepo.CreateEntry(ctx, entry); err != nil {
		s.reject(ctx, opCreate, companyID, err)
		return nil, err
	}

	s.metrics.JournalCommitted(opCreate)
	s.LogInfo(ctx, "Journal entry posted",
		slog.String("entry_id", entry.EntryID),
		slog.String("reference", entry.Reference),
		slog.String("company_id", companyID),
		slog.Int("line_count", len(entry.Lines)),
		slog.String("total_amount", entry.TotalAmount.String()))
	return &entry, nil
}

// ReplaceEntry validates the new content and swaps it in for the entry's current header and lines.
func (s *journalService) ReplaceEntry(ctx context.Context, companyID, entryID string, req dto.JournalEntryRequest, actor domain.Actor) (*domain.JournalEntry, error) {
	if err := s.AuthorizeUser(ctx, actor, companyID, domain.RoleCompanyAdmin); err != nil {
		return nil, err
	}

	existing, err := s.journalRepo.FindEntryByID(ctx, companyID, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load journal entry for replacement", slog.String("entry_id", entryID))
		}
		return nil, err
	}

	entry, err := s.buildEntry(ctx, companyID, req)
	if err != nil {
		s.reject(ctx, opReplace, companyID, err)
		return nil, err
	}

	entry.EntryID = existing.EntryID
	entry.Reference = existing.Reference
	entry.AuditFields = domain.AuditFields{
		CreatedAt:     existing.CreatedAt,
		CreatedBy:     existing.CreatedBy,
		LastUpdatedAt: time.Now().UTC(),
		LastUpdatedBy: actor.UserID,
	}
	assignLineIDs(&entry)

	if err := s.journalRepo.ReplaceEntry(ctx, entry); err != nil {
		s.reject(ctx, opReplace, companyID, err)
		return nil, err
	}

	s.metrics.JournalCommitted(opReplace)
	s.LogInfo(ctx, "Journal entry replaced",
		slog.String("entry_id", entry.EntryID),
		slog.String("company_id", companyID),
		slog.Int("old_line_count", len(existing.Lines)),
		slog.Int("line_count", len(entry.Lines)))
	return &entry, nil
}

// DeleteEntry removes an entry with all its lines.
func (s *journalService) DeleteEntry(ctx context.Context, companyID, entryID string, actor domain.Actor) error {
	if err := s.AuthorizeUser(ctx, actor, companyID, domain.RoleCompanyAdmin); err != nil {
		return err
	}

	if err := s.journalRepo.DeleteEntry(ctx, companyID, entryID); err != nil {
		s.reject(ctx, opDelete, companyID, err)
		return err
	}

	s.metrics.JournalCommitted(opDelete)
	s.LogInfo(ctx, "Journal entry deleted",
		slog.String("entry_id", entryID),
		slog.String("company_id", companyID))
	return nil
}

func (s *journalService) GetEntry(ctx context.Context, companyID, entryID string, actor domain.Actor) (*domain.JournalEntry, error) {
	if err := s.AuthorizeUser(ctx, actor, companyID, domain.RoleEmployee); err != nil {
		return nil, err
	}

	entry, err := s.journalRepo.FindEntryByID(ctx, companyID, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find journal entry", slog.String("entry_id", entryID))
		}
		return nil, err
	}
	return entry, nil
}

func (s *journalService) ListEntries(ctx context.Context, companyID string, params dto.ListJournalEntriesParams, actor domain.Actor) (*dto.ListJournalEntriesResponse, error) {
	if err := s.AuthorizeUser(ctx, actor, companyID, domain.RoleEmployee); err != nil {
		return nil, err
	}

	var token *string
	if params.NextToken != "" {
		token = &params.NextToken
	}

	entries, next, err := s.journalRepo.ListEntries(ctx, companyID, params.Limit, token)
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to list journal entries", slog.String("company_id", companyID))
		}
		return nil, err
	}

	resp := &dto.ListJournalEntriesResponse{
		Entries:   make([]dto.JournalEntryResponse, len(entries)),
		NextToken: next,
	}
	for i := range entries {
		resp.Entries[i] = dto.ToJournalEntryResponse(&entries[i])
	}
	return resp, nil
}

// buildEntry turns a request into an unsaved entry after checking the date, the line
// rules and that every referenced account is an active account of the company.
func (s *journalService) buildEntry(ctx context.Context, companyID string, req dto.JournalEntryRequest) (domain.JournalEntry, error) {
	date, err := dto.ParseDate(req.Date)
	if err != nil {
		return domain.JournalEntry{}, err
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return domain.JournalEntry{}, fmt.Errorf("%w: description is required", apperrors.ErrValidation)
	}

	lines := req.ToDomainLines()
	if err := accounting.ValidateLines(lines, s.currencyScale); err != nil {
		return domain.JournalEntry{}, err
	}

	accountIDs := make([]string, 0, len(lines))
	seen := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		if line.AccountID == "" {
			return domain.JournalEntry{}, fmt.Errorf("%w: line %d has no account", apperrors.ErrValidation, line.LineNo)
		}
		if _, ok := seen[line.AccountID]; !ok {
			seen[line.AccountID] = struct{}{}
			accountIDs = append(accountIDs, line.AccountID)
		}
	}

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, companyID, accountIDs)
	if err != nil {
		return domain.JournalEntry{}, err
	}
	for _, line := range lines {
		account, ok := accounts[line.AccountID]
		if !ok {
			return domain.JournalEntry{}, fmt.Errorf("%w: account %s does not exist in company %s", apperrors.ErrValidation, line.AccountID, companyID)
		}
		if !account.IsActive {
			return domain.JournalEntry{}, fmt.Errorf("%w: account %s (%s) is inactive", apperrors.ErrValidation, account.Code, account.AccountID)
		}
	}

	debits, _ := accounting.Totals(lines)
	return domain.JournalEntry{
		CompanyID:   companyID,
		EntryDate:   date,
		Description: description,
		TotalAmount: debits,
		Lines:       lines,
	}, nil
}

func assignLineIDs(entry *domain.JournalEntry) {
	for i := range entry.Lines {
		entry.Lines[i].LineID = uuid.NewString()
		entry.Lines[i].EntryID = entry.EntryID
	}
}

func (s *journalService) reject(ctx context.Context, op, companyID string, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		s.metrics.JournalRejected(op)
		s.LogDebug(ctx, "Journal entry rejected",
			slog.String("operation", op),
			slog.String("company_id", companyID),
			slog.String("reason", err.Error()))
	case errors.Is(err, apperrors.ErrNotFound):
		// reported to the caller as is
	default:
		s.LogError(ctx, err, "Journal entry operation failed",
			slog.String("operation", op),
			slog.String("company_id", companyID))
	}
}
