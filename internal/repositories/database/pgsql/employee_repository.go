package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

// PgxEmployeeRepository stores the employees that payroll runs are generated for.
type PgxEmployeeRepository struct {
	BaseRepository
}

func newPgxEmployeeRepository(pool PgxPool) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

const employeeColumns = `employee_id, company_id, name, email, basic_salary, is_active,
		created_at, created_by, last_updated_at, last_updated_by`

func scanEmployee(row pgx.Row) (domain.Employee, error) {
	var e domain.Employee
	err := row.Scan(
		&e.EmployeeID,
		&e.CompanyID,
		&e.Name,
		&e.Email,
		&e.BasicSalary,
		&e.IsActive,
		&e.CreatedAt,
		&e.CreatedBy,
		&e.LastUpdatedAt,
		&e.LastUpdatedBy,
	)
	return e, err
}

// SaveEmployee persists a new employee.
func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		employee.EmployeeID,
		employee.CompanyID,
		employee.Name,
		employee.Email,
		employee.BasicSalary,
		employee.IsActive,
		employee.CreatedAt,
		employee.CreatedBy,
		employee.LastUpdatedAt,
		employee.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "failed to insert employee "+employee.Email)
	}
	return nil
}

// FindEmployeeByID retrieves an employee of the company.
func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, companyID, employeeID string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_id = $1 AND company_id = $2;`

	e, err := scanEmployee(r.Pool.QueryRow(ctx, query, employeeID, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find employee by ID "+employeeID, err)
	}
	return &e, nil
}

// ListEmployees retrieves a page of the company's employees ordered by name.
func (r *PgxEmployeeRepository) ListEmployees(ctx context.Context, companyID string, limit, offset int, includeInactive bool) ([]domain.Employee, error) {
	query := `
		SELECT ` + employeeColumns + ` FROM employees
		WHERE company_id = $1 AND ($2 OR is_active)
		ORDER BY name, employee_id
		LIMIT $3 OFFSET $4;
	`
	return r.queryEmployees(ctx, query, companyID, includeInactive, limit, offset)
}

// ListActiveEmployees returns every active employee of the company.
func (r *PgxEmployeeRepository) ListActiveEmployees(ctx context.Context, companyID string) ([]domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE company_id = $1 AND is_active ORDER BY employee_id;`
	return r.queryEmployees(ctx, query, companyID)
}

func (r *PgxEmployeeRepository) queryEmployees(ctx context.Context, query string, args ...any) ([]domain.Employee, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query employees", err)
	}
	defer rows.Close()

	employees := []domain.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan employee row", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating employee rows", err)
	}
	return employees, nil
}

// UpdateEmployee updates the mutable details of an employee.
func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	query := `
		UPDATE employees
		SET name = $3, email = $4, basic_salary = $5, is_active = $6, last_updated_at = $7, last_updated_by = $8
		WHERE employee_id = $1 AND company_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		employee.EmployeeID,
		employee.CompanyID,
		employee.Name,
		employee.Email,
		employee.BasicSalary,
		employee.IsActive,
		employee.LastUpdatedAt,
		employee.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "failed to update employee "+employee.EmployeeID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
