package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/agrovista-hr/payroll-backend-go/internal/domain/employee"
	"github.com/agrovista-hr/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, code, full_name, designation, company, gross_salary, date_of_joining,
	carry_forward_balance, carry_forward_version, employment_status,
	created_at, updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.Code, &emp.FullName, &emp.Designation, &emp.Company,
		&emp.GrossSalary, &emp.DateOfJoining,
		&emp.CarryForwardBalance, &emp.CarryForwardVersion, &emp.EmploymentStatus,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, code, full_name, designation, company, gross_salary,
			date_of_joining, carry_forward_balance, carry_forward_version, employment_status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, 0, $9
		) RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		emp.ID, emp.Code, emp.FullName, emp.Designation, emp.Company,
		emp.GrossSalary, emp.DateOfJoining, emp.CarryForwardBalance, emp.EmploymentStatus,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_employees_code") {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}

func (r *employeeRepository) ListActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE employment_status = 'active'
		ORDER BY company, code
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	return employees, nil
}

// UpdateCarryForward writes the new balance only when the stored version
// still matches; the losing writer of a race sees zero affected rows.
func (r *employeeRepository) UpdateCarryForward(ctx context.Context, id string, balance float64, expectedVersion int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET carry_forward_balance = $1,
			carry_forward_version = carry_forward_version + 1,
			updated_at = NOW()
		WHERE id = $2 AND carry_forward_version = $3
	`

	tag, err := q.Exec(ctx, query, balance, id, expectedVersion)
	if err != nil {
		return fmt.Errorf("failed to update carry-forward balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// either the employee vanished or another finalize won the race
		exists, checkErr := r.exists(ctx, id)
		if checkErr != nil {
			return checkErr
		}
		if !exists {
			return employee.ErrEmployeeNotFound
		}
		return employee.ErrCarryForwardConflict
	}
	return nil
}

func (r *employeeRepository) exists(ctx context.Context, id string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM employees WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check employee existence: %w", err)
	}
	return exists, nil
}
