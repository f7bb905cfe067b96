package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/core/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/SscSPs/erp_ledger/internal/utils/accounting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateEmployee_NormalizesEmail(t *testing.T) {
	repo := new(MockEmployeeRepository)
	svc := services.NewEmployeeService(repo)
	ctx := context.Background()

	repo.On("SaveEmployee", ctx, mock.MatchedBy(func(e domain.Employee) bool {
		return e.Email == "ana@example.com" && e.IsActive && e.CompanyID == companyID
	})).Return(nil).Once()

	emp, err := svc.CreateEmployee(ctx, companyID, dto.CreateEmployeeRequest{Name: "Ana", Email: " Ana@Example.com ", BasicSalary: dec("4200.00")}, adminActor())

	require.NoError(t, err)
	assert.NotEmpty(t, emp.EmployeeID)
	repo.AssertExpectations(t)
}

func TestCreateEmployee_RejectsBadSalary(t *testing.T) {
	repo := new(MockEmployeeRepository)
	svc := services.NewEmployeeService(repo)

	_, err := svc.CreateEmployee(context.Background(), companyID, dto.CreateEmployeeRequest{Name: "Ana", Email: "a@b.c", BasicSalary: dec("-1")}, adminActor())
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.CreateEmployee(context.Background(), companyID, dto.CreateEmployeeRequest{Name: "Ana", Email: "a@b.c", BasicSalary: dec("10.123")}, adminActor())
	assert.ErrorIs(t, err, accounting.ErrAmountPrecision)

	_, err = svc.CreateEmployee(context.Background(), companyID, dto.CreateEmployeeRequest{Name: "Ana", Email: "a@b.c", BasicSalary: dec("10000000000000000")}, adminActor())
	assert.ErrorIs(t, err, accounting.ErrAmountTooLarge)

	repo.AssertNotCalled(t, "SaveEmployee", mock.Anything, mock.Anything)
}

func TestUpdateEmployee_Deactivate(t *testing.T) {
	repo := new(MockEmployeeRepository)
	svc := services.NewEmployeeService(repo)
	ctx := context.Background()

	repo.On("FindEmployeeByID", ctx, companyID, "emp-1").
		Return(&domain.Employee{EmployeeID: "emp-1", CompanyID: companyID, Name: "Ana", BasicSalary: dec("10"), IsActive: true}, nil).Once()
	repo.On("UpdateEmployee", ctx, mock.MatchedBy(func(e domain.Employee) bool {
		return !e.IsActive && e.Name == "Ana"
	})).Return(nil).Once()

	inactive := false
	emp, err := svc.UpdateEmployee(ctx, companyID, "emp-1", dto.UpdateEmployeeRequest{IsActive: &inactive}, adminActor())

	require.NoError(t, err)
	assert.False(t, emp.IsActive)
	repo.AssertExpectations(t)
}
