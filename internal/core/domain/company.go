package domain

// Company is the tenant. Every account, entry, employee and payroll run belongs to exactly one.
type Company struct {
	CompanyID string `json:"companyID"`
	Name      string `json:"name"`
	IsActive  bool   `json:"isActive"`
	AuditFields
}

// Role is the role an authenticated user holds.
type Role string

const (
	RoleSuperAdmin   Role = "SUPER_ADMIN"
	RoleCompanyAdmin Role = "COMPANY_ADMIN"
	RoleEmployee     Role = "EMPLOYEE"
)

// Rank orders roles so that a higher rank includes the permissions of lower ones.
// Unknown roles rank zero.
func (r Role) Rank() int {
	switch r {
	case RoleSuperAdmin:
		return 3
	case RoleCompanyAdmin:
		return 2
	case RoleEmployee:
		return 1
	}
	return 0
}

// Actor is the already-authenticated (user, company, role) triple attached to every call.
type Actor struct {
	UserID    string `json:"userID"`
	CompanyID string `json:"companyID"`
	Role      Role   `json:"role"`
}
