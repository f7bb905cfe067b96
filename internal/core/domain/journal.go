package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is a dated, balanced set of debit and credit lines recording one
// business transaction of a company.
type JournalEntry struct {
	EntryID     string          `json:"entryID"`
	CompanyID   string          `json:"companyID"`
	Reference   string          `json:"reference"`
	EntryDate   time.Time       `json:"entryDate"`
	Description string          `json:"description"`
	TotalAmount decimal.Decimal `json:"totalAmount"` // sum of the debit side
	Lines       []JournalLine   `json:"lines"`
	AuditFields
}

// JournalLine is one side of a journal entry. Exactly one of Debit and Credit is positive.
type JournalLine struct {
	LineID       string          `json:"lineID"`
	EntryID      string          `json:"entryID"`
	AccountID    string          `json:"accountID"`
	LineNo       int             `json:"lineNo"`
	Debit        decimal.Decimal `json:"debit"`
	Credit       decimal.Decimal `json:"credit"`
	Description  string          `json:"description"`
	CostCenterID *string         `json:"costCenterID,omitempty"`
}

// IsDebit reports whether the line sits on the debit side.
func (l JournalLine) IsDebit() bool {
	return l.Debit.IsPositive()
}
