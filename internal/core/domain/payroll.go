package domain

import "github.com/shopspring/decimal"

// PayrollRunStatus is the lifecycle state of a payroll run.
type PayrollRunStatus string

const (
	PayrollDraft PayrollRunStatus = "DRAFT"
)

// Employee is a person on a company's payroll.
type Employee struct {
	EmployeeID  string          `json:"employeeID"`
	CompanyID   string          `json:"companyID"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	BasicSalary decimal.Decimal `json:"basicSalary"`
	IsActive    bool            `json:"isActive"`
	AuditFields
}

// PayrollRun is the payroll of one company for one calendar month.
type PayrollRun struct {
	RunID     string           `json:"runID"`
	CompanyID string           `json:"companyID"`
	Month     int              `json:"month"`
	Year      int              `json:"year"`
	Status    PayrollRunStatus `json:"status"`
	TotalNet  decimal.Decimal  `json:"totalNet"`
	Details   []PayrollDetail  `json:"details,omitempty"`
	AuditFields
}

// PayrollDetail is the computed pay of one employee within a run.
type PayrollDetail struct {
	DetailID   string          `json:"detailID"`
	RunID      string          `json:"runID"`
	EmployeeID string          `json:"employeeID"`
	Basic      decimal.Decimal `json:"basic"`
	Allowances decimal.Decimal `json:"allowances"`
	Deductions decimal.Decimal `json:"deductions"`
	Net        decimal.Decimal `json:"net"`
}
