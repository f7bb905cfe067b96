package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// IsValid reports whether t is one of the five supported account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// IsDebitNormal reports whether debits increase accounts of this type.
func (t AccountType) IsDebitNormal() bool {
	return t == Asset || t == Expense
}

// Account represents a ledger account in a company's chart of accounts.
type Account struct {
	AccountID   string      `json:"accountID"`
	CompanyID   string      `json:"companyID"`
	Code        string      `json:"code"` // unique within the company
	Name        string      `json:"name"`
	AccountType AccountType `json:"accountType"`
	TaxCode     string      `json:"taxCode,omitempty"` // non-empty for accounts reported in the tax summary
	Description string      `json:"description"`
	IsActive    bool        `json:"isActive"`
	AuditFields
}
