package repositories

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// JournalReader defines read operations for journal entries.
type JournalReader interface {
	// FindEntryByID retrieves an entry with its lines. Entries of other companies are not found.
	FindEntryByID(ctx context.Context, companyID, entryID string) (*domain.JournalEntry, error)

	// ListEntries returns a page of entries, newest first, and the token of the next page if any.
	ListEntries(ctx context.Context, companyID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)
}

// JournalWriter defines the atomic mutations of journal entries. Each method runs in a
// single database transaction: either every row change is applied or none is.
type JournalWriter interface {
	// CreateEntry inserts the entry header and all of its lines.
	CreateEntry(ctx context.Context, entry domain.JournalEntry) error

	// ReplaceEntry locks the entry, updates its header and swaps the whole line set.
	ReplaceEntry(ctx context.Context, entry domain.JournalEntry) error

	// DeleteEntry removes the entry and all of its lines.
	DeleteEntry(ctx context.Context, companyID, entryID string) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
