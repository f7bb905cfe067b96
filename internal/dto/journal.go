package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// JournalLineRequest is one line of a journal entry as submitted by a client.
type JournalLineRequest struct {
	AccountID    string          `json:"accountId" binding:"required"`
	Debit        decimal.Decimal `json:"debit"`
	Credit       decimal.Decimal `json:"credit"`
	Description  string          `json:"description" binding:"max=255"`
	CostCenterID *string         `json:"costCenterId"`
}

// JournalEntryRequest is the body of both entry creation and full replacement.
type JournalEntryRequest struct {
	Date        string               `json:"date" binding:"required,datetime=2006-01-02"`
	Description string               `json:"description" binding:"required,max=500"`
	Lines       []JournalLineRequest `json:"lines" binding:"required,dive"`
}

// ParseDate parses a YYYY-MM-DD date, reporting failures as validation errors.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", apperrors.ErrValidation, value)
	}
	return t, nil
}

// ToDomainLines converts request lines into unsaved domain lines numbered from 1.
func (r JournalEntryRequest) ToDomainLines() []domain.JournalLine {
	lines := make([]domain.JournalLine, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = domain.JournalLine{
			AccountID:    strings.TrimSpace(l.AccountID),
			LineNo:       i + 1,
			Debit:        l.Debit,
			Credit:       l.Credit,
			Description:  l.Description,
			CostCenterID: l.CostCenterID,
		}
	}
	return lines
}

// JournalLineResponse is a persisted line.
type JournalLineResponse struct {
	LineID       string          `json:"id"`
	AccountID    string          `json:"accountId"`
	LineNo       int             `json:"lineNo"`
	Debit        decimal.Decimal `json:"debit"`
	Credit       decimal.Decimal `json:"credit"`
	Description  string          `json:"description"`
	CostCenterID *string         `json:"costCenterId,omitempty"`
}

// JournalEntryResponse is a persisted entry with its lines.
type JournalEntryResponse struct {
	EntryID       string                `json:"id"`
	CompanyID     string                `json:"companyId"`
	Reference     string                `json:"reference"`
	Date          string                `json:"date"`
	Description   string                `json:"description"`
	TotalAmount   decimal.Decimal       `json:"totalAmount"`
	Lines         []JournalLineResponse `json:"lines"`
	CreatedAt     time.Time             `json:"createdAt"`
	CreatedBy     string                `json:"createdBy"`
	LastUpdatedAt time.Time             `json:"lastUpdatedAt"`
	LastUpdatedBy string                `json:"lastUpdatedBy"`
}

// ToJournalEntryResponse converts a domain entry to its response DTO.
func ToJournalEntryResponse(entry *domain.JournalEntry) JournalEntryResponse {
	lines := make([]JournalLineResponse, len(entry.Lines))
	for i, l := range entry.Lines {
		lines[i] = JournalLineResponse{
			LineID:       l.LineID,
			AccountID:    l.AccountID,
			LineNo:       l.LineNo,
			Debit:        l.Debit,
			Credit:       l.Credit,
			Description:  l.Description,
			CostCenterID: l.CostCenterID,
		}
	}
	return JournalEntryResponse{
		EntryID:       entry.EntryID,
		CompanyID:     entry.CompanyID,
		Reference:     entry.Reference,
		Date:          entry.EntryDate.Format(DateLayout),
		Description:   entry.Description,
		TotalAmount:   entry.TotalAmount,
		Lines:         lines,
		CreatedAt:     entry.CreatedAt,
		CreatedBy:     entry.CreatedBy,
		LastUpdatedAt: entry.LastUpdatedAt,
		LastUpdatedBy: entry.LastUpdatedBy,
	}
}

// ListJournalEntriesParams defines query parameters for listing entries.
type ListJournalEntriesParams struct {
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken string `form:"nextToken"`
}

// ListJournalEntriesResponse is one page of entries, newest first.
type ListJournalEntriesResponse struct {
	Entries   []JournalEntryResponse `json:"entries"`
	NextToken *string                `json:"nextToken,omitempty"`
}
