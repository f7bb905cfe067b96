package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/SscSPs/erp_ledger/internal/handlers"
	"github.com/SscSPs/erp_ledger/internal/middleware"
	"github.com/SscSPs/erp_ledger/internal/platform/config"
	"github.com/SscSPs/erp_ledger/internal/utils/accounting"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	testSecret  = "test-secret-key-that-is-long-enough"
	testIssuer  = "erp-test"
	testCompany = "company-1"
)

type HandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	accounts  *MockAccountService
	journals  *MockJournalService
	reports   *MockReportingService
	employees *MockEmployeeService
	payroll   *MockPayrollService
	admin     domain.Actor
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.accounts = new(MockAccountService)
	s.journals = new(MockJournalService)
	s.reports = new(MockReportingService)
	s.employees = new(MockEmployeeService)
	s.payroll = new(MockPayrollService)
	s.admin = domain.Actor{UserID: "user-1", CompanyID: testCompany, Role: domain.RoleCompanyAdmin}

	cfg := &config.Config{JWTSecret: testSecret, JWTIssuer: testIssuer, IsProduction: true}
	container := &portssvc.ServiceContainer{
		Account:   s.accounts,
		Journal:   s.journals,
		Reporting: s.reports,
		Employee:  s.employees,
		Payroll:   s.payroll,
	}
	s.Require().NoError(handlers.RegisterRoutes(s.router, cfg, container))
}

func (s *HandlerTestSuite) TearDownTest() {
	s.accounts.AssertExpectations(s.T())
	s.journals.AssertExpectations(s.T())
	s.reports.AssertExpectations(s.T())
	s.employees.AssertExpectations(s.T())
	s.payroll.AssertExpectations(s.T())
}

// generateTestToken creates a signed JWT for the actor.
func (s *HandlerTestSuite) generateTestToken(actor domain.Actor) string {
	claims := middleware.CompanyClaims{
		CompanyID: actor.CompanyID,
		Role:      string(actor.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Subject:   actor.UserID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	s.Require().NoError(err)
	return signed
}

func (s *HandlerTestSuite) do(method, url, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, bytes.NewBufferString(body))
	req.Header.Set("Authorization", "Bearer "+s.generateTestToken(s.admin))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func companyURL(path string) string {
	return fmt.Sprintf("/api/v1/companies/%s%s", testCompany, path)
}

func sampleEntry() *domain.JournalEntry {
	return &domain.JournalEntry{
		EntryID:     "entry-1",
		CompanyID:   testCompany,
		Reference:   "01J0000000000000000000000",
		EntryDate:   time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		Description: "Cash sale",
		TotalAmount: decimal.NewFromInt(500),
		Lines: []domain.JournalLine{
			{LineID: "line-1", EntryID: "entry-1", AccountID: "cash", LineNo: 1, Debit: decimal.NewFromInt(500), Credit: decimal.Zero},
			{LineID: "line-2", EntryID: "entry-1", AccountID: "revenue", LineNo: 2, Debit: decimal.Zero, Credit: decimal.NewFromInt(500)},
		},
	}
}

const balancedBody = `{
	"date": "2025-05-01",
	"description": "Cash sale",
	"lines": [
		{"accountId": "cash", "debit": "500", "credit": "0"},
		{"accountId": "revenue", "debit": "0", "credit": "500"}
	]
}`

func (s *HandlerTestSuite) TestHealth() {
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Equal(http.StatusOK, w.Code)
}

func (s *HandlerTestSuite) TestMissingTokenIsRejected() {
	req, _ := http.NewRequest(http.MethodGet, companyURL("/accounts"), nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *HandlerTestSuite) TestCreateEntry_Success() {
	s.journals.On("CreateEntry", mock.Anything, testCompany,
		mock.MatchedBy(func(req dto.JournalEntryRequest) bool {
			return len(req.Lines) == 2 && req.Lines[0].Debit.Equal(decimal.NewFromInt(500))
		}),
		s.admin,
	).Return(sampleEntry(), nil).Once()

	w := s.do(http.MethodPost, companyURL("/journals"), balancedBody)

	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.JournalEntryResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("entry-1", resp.EntryID)
	s.Equal("2025-05-01", resp.Date)
	s.Len(resp.Lines, 2)
	s.True(resp.TotalAmount.Equal(decimal.NewFromInt(500)))
}

func (s *HandlerTestSuite) TestCreateEntry_UnbalancedIsBadRequest() {
	s.journals.On("CreateEntry", mock.Anything, testCompany, mock.Anything, s.admin).
		Return(nil, fmt.Errorf("%w: debits 100, credits 90", accounting.ErrJournalUnbalanced)).Once()

	w := s.do(http.MethodPost, companyURL("/journals"), `{
		"date": "2025-05-01",
		"description": "Short",
		"lines": [
			{"accountId": "cash", "debit": "100", "credit": "0"},
			{"accountId": "revenue", "debit": "0", "credit": "90"}
		]
	}`)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "debits do not equal credits")
}

func (s *HandlerTestSuite) TestCreateEntry_UnknownFieldIsRejectedBeforeService() {
	w := s.do(http.MethodPost, companyURL("/journals"), `{
		"date": "2025-05-01",
		"description": "Cash sale",
		"postedBy": "someone",
		"lines": []
	}`)

	s.Equal(http.StatusBadRequest, w.Code)
	s.journals.AssertNotCalled(s.T(), "CreateEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestReplaceEntry_NotFound() {
	s.journals.On("ReplaceEntry", mock.Anything, testCompany, "missing", mock.Anything, s.admin).
		Return(nil, apperrors.NewNotFoundError("journal entry not found")).Once()

	w := s.do(http.MethodPut, companyURL("/journals/missing"), balancedBody)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlerTestSuite) TestDeleteEntry_NoContent() {
	s.journals.On("DeleteEntry", mock.Anything, testCompany, "entry-1", s.admin).Return(nil).Once()

	w := s.do(http.MethodDelete, companyURL("/journals/entry-1"), "")
	s.Equal(http.StatusNoContent, w.Code)
}

func (s *HandlerTestSuite) TestForeignCompanyIsForbidden() {
	s.journals.On("GetEntry", mock.Anything, "company-2", "entry-1", s.admin).
		Return(nil, fmt.Errorf("%w: actor belongs to another company", apperrors.ErrForbidden)).Once()

	w := s.do(http.MethodGet, "/api/v1/companies/company-2/journals/entry-1", "")
	s.Equal(http.StatusForbidden, w.Code)
}

func (s *HandlerTestSuite) TestPersistenceErrorIsHidden() {
	s.journals.On("DeleteEntry", mock.Anything, testCompany, "entry-1", s.admin).
		Return(apperrors.NewAppError(500, "failed to commit transaction", fmt.Errorf("connection reset"))).Once()

	w := s.do(http.MethodDelete, companyURL("/journals/entry-1"), "")
	s.Equal(http.StatusInternalServerError, w.Code)
	s.NotContains(w.Body.String(), "connection reset")
}

func (s *HandlerTestSuite) TestUpdateAccount_UnknownFieldIsRejected() {
	w := s.do(http.MethodPatch, companyURL("/accounts/acc-1"), `{"name": "Cash", "accountType": "LIABILITY"}`)

	s.Equal(http.StatusBadRequest, w.Code)
	s.accounts.AssertNotCalled(s.T(), "UpdateAccount", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestUpdateAccount_AppliesKnownFields() {
	name := "Petty cash"
	s.accounts.On("UpdateAccount", mock.Anything, testCompany, "acc-1",
		mock.MatchedBy(func(req dto.UpdateAccountRequest) bool {
			return req.Name != nil && *req.Name == name && req.IsActive == nil
		}),
		s.admin,
	).Return(&domain.Account{AccountID: "acc-1", CompanyID: testCompany, Code: "1000", Name: name, AccountType: domain.Asset, IsActive: true}, nil).Once()

	w := s.do(http.MethodPatch, companyURL("/accounts/acc-1"), `{"name": "Petty cash"}`)

	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.Contains(w.Body.String(), `"name":"Petty cash"`)
}

func (s *HandlerTestSuite) TestCreateAccount_InvalidCode() {
	w := s.do(http.MethodPost, companyURL("/accounts"), `{"code": "10 00", "name": "Cash", "accountType": "ASSET"}`)

	s.Equal(http.StatusBadRequest, w.Code)
	s.accounts.AssertNotCalled(s.T(), "CreateAccount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestCreateAccount_DuplicateCode() {
	s.accounts.On("CreateAccount", mock.Anything, testCompany, mock.Anything, s.admin).
		Return(nil, apperrors.NewAppError(409, "account code already exists", nil)).Once()

	w := s.do(http.MethodPost, companyURL("/accounts"), `{"code": "1000", "name": "Cash", "accountType": "ASSET"}`)
	s.Equal(http.StatusConflict, w.Code)
}

func (s *HandlerTestSuite) TestAccountBalance_PassesAsOf() {
	asOf := time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)
	s.reports.On("AccountBalance", mock.Anything, testCompany, "cash",
		mock.MatchedBy(func(t *time.Time) bool { return t != nil && t.Equal(asOf) }),
		s.admin,
	).Return(&domain.AccountBalance{Debit: decimal.NewFromInt(500), Credit: decimal.NewFromInt(200), Balance: decimal.NewFromInt(300)}, nil).Once()

	w := s.do(http.MethodGet, companyURL("/accounts/cash/balance?asOf=2025-05-31"), "")
	s.Equal(http.StatusOK, w.Code, w.Body.String())
}

func (s *HandlerTestSuite) TestTrialBalance_WithoutAsOf() {
	s.reports.On("TrialBalance", mock.Anything, testCompany, (*time.Time)(nil), s.admin).
		Return(&domain.TrialBalance{CompanyID: testCompany, IsBalanced: true, NetBalance: decimal.Zero}, nil).Once()

	w := s.do(http.MethodGet, companyURL("/reports/trial-balance"), "")

	s.Require().Equal(http.StatusOK, w.Code)
	var tb domain.TrialBalance
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &tb))
	s.True(tb.IsBalanced)
}

func (s *HandlerTestSuite) TestTrialBalance_InvalidDate() {
	w := s.do(http.MethodGet, companyURL("/reports/trial-balance?asOf=31-05-2025"), "")
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestTaxSummary_RequiresRange() {
	w := s.do(http.MethodGet, companyURL("/reports/tax-summary?from=2025-05-01"), "")
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestTaxSummary_Success() {
	from := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)
	s.reports.On("TaxSummary", mock.Anything, testCompany, from, to, s.admin).
		Return(&domain.TaxSummary{CompanyID: testCompany}, nil).Once()

	w := s.do(http.MethodGet, companyURL("/reports/tax-summary?from=2025-05-01&to=2025-05-31"), "")
	s.Equal(http.StatusOK, w.Code, w.Body.String())
}

func (s *HandlerTestSuite) TestGeneratePayroll_Created() {
	run := &domain.PayrollRun{RunID: "run-1", CompanyID: testCompany, Month: 5, Year: 2025, Status: domain.PayrollDraft, TotalNet: decimal.NewFromInt(3000)}
	s.payroll.On("GenerateRun", mock.Anything, testCompany, 5, 2025, s.admin).Return(run, nil).Once()

	w := s.do(http.MethodPost, companyURL("/payroll/runs"), `{"month": 5, "year": 2025}`)

	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	s.Contains(w.Body.String(), `"runID":"run-1"`)
}

func (s *HandlerTestSuite) TestGeneratePayroll_DuplicatePeriodIsConflict() {
	s.payroll.On("GenerateRun", mock.Anything, testCompany, 5, 2025, s.admin).
		Return(nil, apperrors.NewAppError(409, "payroll run already exists for 2025-05", apperrors.ErrDuplicate)).Once()

	w := s.do(http.MethodPost, companyURL("/payroll/runs"), `{"month": 5, "year": 2025}`)
	s.Equal(http.StatusConflict, w.Code)
}

func (s *HandlerTestSuite) TestGeneratePayroll_InvalidMonth() {
	w := s.do(http.MethodPost, companyURL("/payroll/runs"), `{"month": 13, "year": 2025}`)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestUpdateEmployee_UnknownFieldIsRejected() {
	w := s.do(http.MethodPatch, companyURL("/employees/emp-1"), `{"department": "Sales"}`)
	s.Equal(http.StatusBadRequest, w.Code)
}

func TestTokenWithoutCompanyRoleIsRejected(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cfg := &config.Config{JWTSecret: testSecret, JWTIssuer: testIssuer, IsProduction: true}
	require.NoError(t, handlers.RegisterRoutes(r, cfg, &portssvc.ServiceContainer{}))

	claims := middleware.CompanyClaims{
		Role: "AUDITOR",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Subject:   "user-9",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	req, _ := http.NewRequest(http.MethodGet, companyURL("/accounts"), nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
