package accounting

import (
	"fmt"
	"time"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DefaultCurrencyScale is the number of decimal places of the currency minimum unit.
const DefaultCurrencyScale int32 = 2

// MaxCurrencyScale is the most decimal places a stored amount keeps. Money columns are NUMERIC(20, 4).
const MaxCurrencyScale int32 = 4

// MaxAmount bounds every stored amount from above, exclusive: NUMERIC(20, 4) holds 16 integer digits.
var MaxAmount = decimal.New(1, 16)

var (
	ErrJournalMinEntries = fmt.Errorf("%w: journal entry must have at least two lines", apperrors.ErrValidation)
	ErrJournalLineSides  = fmt.Errorf("%w: each line must carry exactly one positive amount, debit or credit", apperrors.ErrValidation)
	ErrNegativeAmount    = fmt.Errorf("%w: line amounts must not be negative", apperrors.ErrValidation)
	ErrAmountPrecision   = fmt.Errorf("%w: amount is finer than the currency minimum unit", apperrors.ErrValidation)
	ErrAmountTooLarge    = fmt.Errorf("%w: amount exceeds the largest storable value", apperrors.ErrValidation)
	ErrJournalUnbalanced = fmt.Errorf("%w: journal entry debits do not equal credits", apperrors.ErrValidation)
)

// ValidateLines checks the structural rules of a journal entry's lines:
// at least two lines, non-negative amounts, exactly one positive side per line,
// amounts expressible in the currency minimum unit and below MaxAmount, and equal
// debit and credit totals.
func ValidateLines(lines []domain.JournalLine, scale int32) error {
	if len(lines) < 2 {
		return ErrJournalMinEntries
	}

	for i, line := range lines {
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return fmt.Errorf("%w (line %d)", ErrNegativeAmount, i+1)
		}
		if line.Debit.IsPositive() == line.Credit.IsPositive() {
			return fmt.Errorf("%w (line %d)", ErrJournalLineSides, i+1)
		}
		if !fitsScale(line.Debit, scale) || !fitsScale(line.Credit, scale) {
			return fmt.Errorf("%w (line %d, scale %d)", ErrAmountPrecision, i+1, scale)
		}
		if !FitsAmount(line.Debit) || !FitsAmount(line.Credit) {
			return fmt.Errorf("%w (line %d)", ErrAmountTooLarge, i+1)
		}
	}

	debits, credits := Totals(lines)
	if !debits.Equal(credits) {
		return fmt.Errorf("%w: debits %s, credits %s", ErrJournalUnbalanced, debits.String(), credits.String())
	}
	// The entry total is stored too.
	if !FitsAmount(debits) {
		return fmt.Errorf("%w: entry total %s", ErrAmountTooLarge, debits.String())
	}
	return nil
}

// FitsAmount reports whether d is below MaxAmount.
func FitsAmount(d decimal.Decimal) bool {
	return d.LessThan(MaxAmount)
}

// Totals returns the debit and credit sums of lines.
func Totals(lines []domain.JournalLine) (decimal.Decimal, decimal.Decimal) {
	debits, credits := decimal.Zero, decimal.Zero
	for _, line := range lines {
		debits = debits.Add(line.Debit)
		credits = credits.Add(line.Credit)
	}
	return debits, credits
}

// fitsScale also caps scale at MaxCurrencyScale, so an amount never loses digits in its column.
func fitsScale(d decimal.Decimal, scale int32) bool {
	if scale > MaxCurrencyScale {
		scale = MaxCurrencyScale
	}
	return d.Equal(d.Truncate(scale))
}

// CalculateSignedAmount returns the effect of a line on its account's balance in the
// account's natural sign:
// DEBIT to ASSET/EXPENSE -> positive, CREDIT to ASSET/EXPENSE -> negative,
// DEBIT to LIABILITY/EQUITY/REVENUE -> negative, CREDIT to LIABILITY/EQUITY/REVENUE -> positive.
func CalculateSignedAmount(line domain.JournalLine, accountType domain.AccountType) (decimal.Decimal, error) {
	if !accountType.IsValid() {
		return decimal.Zero, fmt.Errorf("unknown account type '%s' encountered for account ID %s", accountType, line.AccountID)
	}
	return NormalBalance(accountType, line.Debit, line.Credit), nil
}

// NormalBalance converts debit and credit totals into a balance in the account type's natural sign.
func NormalBalance(accountType domain.AccountType, debit, credit decimal.Decimal) decimal.Decimal {
	if accountType.IsDebitNormal() {
		return debit.Sub(credit)
	}
	return credit.Sub(debit)
}

// BuildTrialBalance derives balances and totals from per-account debit and credit sums.
// Balance is debit - credit for every account, so the rows of a consistent ledger sum to zero.
func BuildTrialBalance(companyID string, asOf *time.Time, rows []domain.TrialBalanceRow) domain.TrialBalance {
	tb := domain.TrialBalance{
		CompanyID:   companyID,
		AsOf:        asOf,
		Rows:        make([]domain.TrialBalanceRow, 0, len(rows)),
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
		NetBalance:  decimal.Zero,
	}

	for _, row := range rows {
		row.Balance = row.Debit.Sub(row.Credit)
		row.NormalBalance = NormalBalance(row.AccountType, row.Debit, row.Credit)

		tb.TotalDebit = tb.TotalDebit.Add(row.Debit)
		tb.TotalCredit = tb.TotalCredit.Add(row.Credit)
		tb.NetBalance = tb.NetBalance.Add(row.Balance)
		tb.Rows = append(tb.Rows, row)
	}

	tb.IsBalanced = tb.NetBalance.IsZero()
	return tb
}
