package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/core/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/SscSPs/erp_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type JournalServiceTestSuite struct {
	suite.Suite
	mockJournalRepo *MockJournalRepository
	mockAccountRepo *MockAccountRepository
	service         portssvc.JournalSvcFacade
	ctx             context.Context
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewJournalService(suite.mockJournalRepo, suite.mockAccountRepo)
	suite.ctx = context.Background()
}

func account(id, code string, t domain.AccountType) domain.Account {
	return domain.Account{AccountID: id, CompanyID: companyID, Code: code, Name: code, AccountType: t, IsActive: true}
}

func debitLine(accountID, amount string) dto.JournalLineRequest {
	return dto.JournalLineRequest{AccountID: accountID, Debit: dec(amount)}
}

func creditLine(accountID, amount string) dto.JournalLineRequest {
	return dto.JournalLineRequest{AccountID: accountID, Credit: dec(amount)}
}

func entryRequest(lines ...dto.JournalLineRequest) dto.JournalEntryRequest {
	return dto.JournalEntryRequest{Date: "2025-05-01", Description: "Cash sale", Lines: lines}
}

func balanced(e domain.JournalEntry) bool {
	debits, credits := accounting.Totals(e.Lines)
	return debits.Equal(credits) && e.TotalAmount.Equal(debits)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_Success() {
	req := entryRequest(debitLine("cash", "500"), creditLine("revenue", "500"))

	suite.mockAccountRepo.On("FindAccountsByIDs", suite.ctx, companyID, []string{"cash", "revenue"}).
		Return(map[string]domain.Account{
			"cash":    account("cash", "1000", domain.Asset),
			"revenue": account("revenue", "4000", domain.Revenue),
		}, nil).Once()
	suite.mockJournalRepo.On("CreateEntry", suite.ctx, mock.MatchedBy(func(e domain.JournalEntry) bool {
		return e.EntryID != "" &&
			e.CompanyID == companyID &&
			len(e.Reference) == 26 &&
			len(e.Lines) == 2 &&
			e.Lines[0].EntryID == e.EntryID && e.Lines[1].EntryID == e.EntryID &&
			e.Lines[0].LineID != "" && e.Lines[0].LineID != e.Lines[1].LineID &&
			balanced(e)
	})).Return(nil).Once()

	entry, err := suite.service.CreateEntry(suite.ctx, companyID, req, adminActor())

	suite.Require().NoError(err)
	suite.Equal("Cash sale", entry.Description)
	suite.Equal(time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), entry.EntryDate)
	suite.True(entry.TotalAmount.Equal(dec("500")))
	suite.Equal(1, entry.Lines[0].LineNo)
	suite.Equal(2, entry.Lines[1].LineNo)
	suite.Equal("admin-1", entry.CreatedBy)
	suite.mockJournalRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreateEntry_FewerThanTwoLinesPersistsNothing() {
	for _, lines := range [][]dto.JournalLineRequest{nil, {debitLine("cash", "100")}} {
		_, err := suite.service.CreateEntry(suite.ctx, companyID, entryRequest(lines...), adminActor())

		suite.ErrorIs(err, apperrors.ErrValidation)
		suite.ErrorIs(err, accounting.ErrJournalMinEntries)
	}
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "CreateEntry", mock.Anything, mock.Anything)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "FindAccountsByIDs", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_UnbalancedPersistsNothing() {
	req := entryRequest(debitLine("cash", "100"), creditLine("revenue", "90"))

	_, err := suite.service.CreateEntry(suite.ctx, companyID, req, adminActor())

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorIs(err, accounting.ErrJournalUnbalanced)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "CreateEntry", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_RejectsSubUnitAmounts() {
	req := entryRequest(debitLine("cash", "0.001"), creditLine("revenue", "0.001"))

	_, err := suite.service.CreateEntry(suite.ctx, companyID, req, adminActor())

	suite.ErrorIs(err, accounting.ErrAmountPrecision)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "CreateEntry", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_InvalidDate() {
	req := entryRequest(debitLine("cash", "1"), creditLine("revenue", "1"))
	req.Date = "01/05/2025"

	_, err := suite.service.CreateEntry(suite.ctx, companyID, req, adminActor())

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_AccountOfAnotherCompany() {
	req := entryRequest(debitLine("cash", "50"), creditLine("foreign", "50"))

	// the repository only returns accounts owned by the company
	suite.mockAccountRepo.On("FindAccountsByIDs", suite.ctx, companyID, []string{"cash", "foreign"}).
		Return(map[string]domain.Account{"cash": account("cash", "1000", domain.Asset)}, nil).Once()

	_, err := suite.service.CreateEntry(suite.ctx, companyID, req, adminActor())

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "foreign")
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "CreateEntry", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_InactiveAccount() {
	req := entryRequest(debitLine("cash", "50"), creditLine("old", "50"))
	old := account("old", "4999", domain.Revenue)
	old.IsActive = false

	suite.mockAccountRepo.On("FindAccountsByIDs", suite.ctx, companyID, []string{"cash", "old"}).
		Return(map[string]domain.Account{"cash": account("cash", "1000", domain.Asset), "old": old}, nil).Once()

	_, err := suite.service.CreateEntry(suite.ctx, companyID, req, adminActor())

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "CreateEntry", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_Authorization() {
	req := entryRequest(debitLine("cash", "50"), creditLine("revenue", "50"))

	outsider := adminActor()
	outsider.CompanyID = otherCompanyID
	_, err := suite.service.CreateEntry(suite.ctx, companyID, req, outsider)
	suite.ErrorIs(err, apperrors.ErrForbidden)

	_, err = suite.service.CreateEntry(suite.ctx, companyID, req, employeeActor())
	suite.ErrorIs(err, apperrors.ErrForbidden)

	suite.mockAccountRepo.AssertNotCalled(suite.T(), "FindAccountsByIDs", mock.Anything, mock.Anything, mock.Anything)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "CreateEntry", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_SuperAdminPostsForAnyCompany() {
	req := entryRequest(debitLine("cash", "50"), creditLine("revenue", "50"))

	suite.mockAccountRepo.On("FindAccountsByIDs", suite.ctx, companyID, []string{"cash", "revenue"}).
		Return(map[string]domain.Account{
			"cash":    account("cash", "1000", domain.Asset),
			"revenue": account("revenue", "4000", domain.Revenue),
		}, nil).Once()
	suite.mockJournalRepo.On("CreateEntry", suite.ctx, mock.AnythingOfType("domain.JournalEntry")).Return(nil).Once()

	_, err := suite.service.CreateEntry(suite.ctx, companyID, req, superAdminActor())
	suite.NoError(err)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_PersistenceFailurePropagates() {
	req := entryRequest(debitLine("cash", "50"), creditLine("revenue", "50"))

	suite.mockAccountRepo.On("FindAccountsByIDs", suite.ctx, companyID, []string{"cash", "revenue"}).
		Return(map[string]domain.Account{
			"cash":    account("cash", "1000", domain.Asset),
			"revenue": account("revenue", "4000", domain.Revenue),
		}, nil).Once()
	suite.mockJournalRepo.On("CreateEntry", suite.ctx, mock.Anything).
		Return(apperrors.NewAppError(500, "failed to commit transaction", assert.AnError)).Once()

	entry, err := suite.service.CreateEntry(suite.ctx, companyID, req, adminActor())

	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrPersistence)
}

func (suite *JournalServiceTestSuite) TestReplaceEntry_SwapsLineSet() {
	created := time.Date(2025, 4, 30, 8, 0, 0, 0, time.UTC)
	existing := &domain.JournalEntry{
		EntryID:     "entry-1",
		CompanyID:   companyID,
		Reference:   "01JV3N5Z8K0000000000000000",
		EntryDate:   time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC),
		Description: "Original",
		TotalAmount: dec("100"),
		Lines: []domain.JournalLine{
			{LineID: "l1", EntryID: "entry-1", AccountID: "a", LineNo: 1, Debit: dec("100"), Credit: decimal.Zero},
			{LineID: "l2", EntryID: "entry-1", AccountID: "b", LineNo: 2, Debit: decimal.Zero, Credit: dec("100")},
		},
		AuditFields: domain.AuditFields{CreatedAt: created, CreatedBy: "creator", LastUpdatedAt: created, LastUpdatedBy: "creator"},
	}
	req := entryRequest(debitLine("a", "150"), creditLine("c", "150"))

	suite.mockJournalRepo.On("FindEntryByID", suite.ctx, companyID, "entry-1").Return(existing, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByIDs", suite.ctx, companyID, []string{"a", "c"}).
		Return(map[string]domain.Account{
			"a": account("a", "1000", domain.Asset),
			"c": account("c", "3000", domain.Equity),
		}, nil).Once()
	suite.mockJournalRepo.On("ReplaceEntry", suite.ctx, mock.MatchedBy(func(e domain.JournalEntry) bool {
		if e.EntryID != "entry-1" || e.Reference != existing.Reference || e.CreatedBy != "creator" || len(e.Lines) != 2 {
			return false
		}
		for _, l := range e.Lines {
			if l.AccountID == "b" || l.EntryID != "entry-1" {
				return false
			}
		}
		return e.Lines[0].AccountID == "a" && e.Lines[0].Debit.Equal(dec("150")) &&
			e.Lines[1].AccountID == "c" && e.Lines[1].Credit.Equal(dec("150")) &&
			balanced(e)
	})).Return(nil).Once()

	entry, err := suite.service.ReplaceEntry(suite.ctx, companyID, "entry-1", req, adminActor())

	suite.Require().NoError(err)
	suite.Equal("admin-1", entry.LastUpdatedBy)
	suite.Equal(created, entry.CreatedAt)
	suite.True(entry.TotalAmount.Equal(dec("150")))
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestReplaceEntry_EntryOfAnotherCompanyIsNotFound() {
	suite.mockJournalRepo.On("FindEntryByID", suite.ctx, companyID, "entry-9").Return(nil, apperrors.ErrNotFound).Once()

	req := entryRequest(debitLine("a", "1"), creditLine("b", "1"))
	_, err := suite.service.ReplaceEntry(suite.ctx, companyID, "entry-9", req, adminActor())

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "ReplaceEntry", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestReplaceEntry_UnbalancedKeepsOldLines() {
	existing := &domain.JournalEntry{EntryID: "entry-1", CompanyID: companyID}
	suite.mockJournalRepo.On("FindEntryByID", suite.ctx, companyID, "entry-1").Return(existing, nil).Once()

	req := entryRequest(debitLine("a", "150"), creditLine("c", "140"))
	_, err := suite.service.ReplaceEntry(suite.ctx, companyID, "entry-1", req, adminActor())

	suite.ErrorIs(err, accounting.ErrJournalUnbalanced)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "ReplaceEntry", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestDeleteEntry() {
	suite.mockJournalRepo.On("DeleteEntry", suite.ctx, companyID, "entry-1").Return(nil).Once()
	suite.NoError(suite.service.DeleteEntry(suite.ctx, companyID, "entry-1", adminActor()))

	suite.mockJournalRepo.On("DeleteEntry", suite.ctx, companyID, "missing").Return(apperrors.ErrNotFound).Once()
	suite.ErrorIs(suite.service.DeleteEntry(suite.ctx, companyID, "missing", adminActor()), apperrors.ErrNotFound)

	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestDeleteEntry_RequiresCompanyAdmin() {
	err := suite.service.DeleteEntry(suite.ctx, companyID, "entry-1", employeeActor())

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "DeleteEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestListEntries_PassesToken() {
	token := "abc"
	entries := []domain.JournalEntry{{EntryID: "e1", CompanyID: companyID, EntryDate: time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC)}}
	suite.mockJournalRepo.On("ListEntries", suite.ctx, companyID, 10, &token).Return(entries, "next", nil).Once()

	resp, err := suite.service.ListEntries(suite.ctx, companyID, dto.ListJournalEntriesParams{Limit: 10, NextToken: token}, employeeActor())

	suite.Require().NoError(err)
	suite.Require().Len(resp.Entries, 1)
	suite.Equal("2025-05-02", resp.Entries[0].Date)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal("next", *resp.NextToken)
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}
