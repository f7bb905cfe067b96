package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrialBalanceRow is the per-account line of a trial balance.
type TrialBalanceRow struct {
	AccountID     string          `json:"accountID"`
	AccountCode   string          `json:"accountCode"`
	AccountName   string          `json:"accountName"`
	AccountType   AccountType     `json:"accountType"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	Balance       decimal.Decimal `json:"balance"`       // debit - credit
	NormalBalance decimal.Decimal `json:"normalBalance"` // balance in the account type's natural sign
}

// TrialBalance is the per-account summary of all postings of a company.
type TrialBalance struct {
	CompanyID   string            `json:"companyID"`
	AsOf        *time.Time        `json:"asOf,omitempty"`
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
	NetBalance  decimal.Decimal   `json:"netBalance"` // sum of Balance; zero for a consistent ledger
	IsBalanced  bool              `json:"isBalanced"`
}

// AccountBalance holds the posted totals of a single account.
type AccountBalance struct {
	Account       Account         `json:"account"`
	AsOf          *time.Time      `json:"asOf,omitempty"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	Balance       decimal.Decimal `json:"balance"`
	NormalBalance decimal.Decimal `json:"normalBalance"`
}

// TaxSummaryRow aggregates postings of all accounts sharing a tax code.
type TaxSummaryRow struct {
	TaxCode string          `json:"taxCode"`
	Debit   decimal.Decimal `json:"debit"`
	Credit  decimal.Decimal `json:"credit"`
	Net     decimal.Decimal `json:"net"` // credit - debit, positive when tax is payable
}

// TaxSummary is the tax report of a company for a date range.
type TaxSummary struct {
	CompanyID   string          `json:"companyID"`
	From        time.Time       `json:"from"`
	To          time.Time       `json:"to"`
	Rows        []TaxSummaryRow `json:"rows"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	NetPayable  decimal.Decimal `json:"netPayable"`
}

// AccountAmount represents an account with its net amount for financial reports
type AccountAmount struct {
	AccountID string          `json:"accountID"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	NetAmount decimal.Decimal `json:"netAmount"`
}

// PAndLReport represents a profit and loss report
type PAndLReport struct {
	From          time.Time       `json:"from"`
	To            time.Time       `json:"to"`
	Revenue       []AccountAmount `json:"revenue"`
	Expenses      []AccountAmount `json:"expenses"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetProfit     decimal.Decimal `json:"netProfit"`
}

// BalanceSheetReport represents a balance sheet report
type BalanceSheetReport struct {
	AsOf             time.Time       `json:"asOf"`
	Assets           []AccountAmount `json:"assets"`
	Liabilities      []AccountAmount `json:"liabilities"`
	Equity           []AccountAmount `json:"equity"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal `json:"totalEquity"`
	RetainedEarnings decimal.Decimal `json:"retainedEarnings"` // revenue - expense up to AsOf, included in TotalEquity
}
