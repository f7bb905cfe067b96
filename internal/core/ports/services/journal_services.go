package services

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/dto"
)

// JournalReaderSvc defines read operations on journal entries.
type JournalReaderSvc interface {
	GetEntry(ctx context.Context, companyID, entryID string, actor domain.Actor) (*domain.JournalEntry, error)
	ListEntries(ctx context.Context, companyID string, params dto.ListJournalEntriesParams, actor domain.Actor) (*dto.ListJournalEntriesResponse, error)
}

// JournalWriterSvc defines the ledger posting operations. Every operation is all-or-nothing.
type JournalWriterSvc interface {
	// CreateEntry validates and posts a new balanced entry.
	CreateEntry(ctx context.Context, companyID string, req dto.JournalEntryRequest, actor domain.Actor) (*domain.JournalEntry, error)
	// ReplaceEntry validates the new content and atomically swaps the entry's header and lines.
	ReplaceEntry(ctx context.Context, companyID, entryID string, req dto.JournalEntryRequest, actor domain.Actor) (*domain.JournalEntry, error)
	// DeleteEntry removes the entry and its lines.
	DeleteEntry(ctx context.Context, companyID, entryID string, actor domain.Actor) error
}

// JournalSvcFacade combines all journal service interfaces
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
