package postgresql

import (
	"context"
	"fmt"

	"github.com/agrovista-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/agrovista-hr/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const payrollRowColumns = `
	p.id, p.employee_id, p.period_year, p.period_month,
	p.required_days, p.working_days, p.absent_days, p.leave_days, p.late_days, p.lop_days,
	p.gross_salary, p.lop_amount, p.pf, p.professional_tax, p.other_deductions,
	p.other_additions, p.net_salary,
	p.carry_forward_used, p.carry_forward_remaining,
	p.status, p.submitted_at, p.submitted_by, p.created_at, p.updated_at,
	e.full_name, e.code, e.designation, e.company
`

func scanPayrollRow(row pgx.Row) (payroll.MonthlyPayrollRow, error) {
	var p payroll.MonthlyPayrollRow
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.PeriodYear, &p.PeriodMonth,
		&p.RequiredDays, &p.WorkingDays, &p.AbsentDays, &p.LeaveDays, &p.LateDays, &p.LOPDays,
		&p.GrossSalary, &p.LOPAmount, &p.PF, &p.ProfessionalTax, &p.OtherDeductions,
		&p.OtherAdditions, &p.NetSalary,
		&p.CarryForwardUsed, &p.CarryForwardRemaining,
		&p.Status, &p.SubmittedAt, &p.SubmittedBy, &p.CreatedAt, &p.UpdatedAt,
		&p.EmployeeName, &p.EmployeeCode, &p.Designation, &p.Company,
	)
	return p, err
}

// UpsertRow inserts or overwrites the row keyed by
// (employee_id, period_year, period_month). Resubmission replaces the
// prior figures; it never duplicates the key.
func (r *payrollRepository) UpsertRow(ctx context.Context, row payroll.MonthlyPayrollRow) (payroll.MonthlyPayrollRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH upserted AS (
			INSERT INTO monthly_payrolls (
				employee_id, period_year, period_month,
				required_days, working_days, absent_days, leave_days, late_days, lop_days,
				gross_salary, lop_amount, pf, professional_tax, other_deductions,
				other_additions, net_salary,
				carry_forward_used, carry_forward_remaining,
				status, submitted_at, submitted_by
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
				$11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21
			)
			ON CONFLICT (employee_id, period_year, period_month) DO UPDATE SET
				required_days = EXCLUDED.required_days,
				working_days = EXCLUDED.working_days,
				absent_days = EXCLUDED.absent_days,
				leave_days = EXCLUDED.leave_days,
				late_days = EXCLUDED.late_days,
				lop_days = EXCLUDED.lop_days,
				gross_salary = EXCLUDED.gross_salary,
				lop_amount = EXCLUDED.lop_amount,
				pf = EXCLUDED.pf,
				professional_tax = EXCLUDED.professional_tax,
				other_deductions = EXCLUDED.other_deductions,
				other_additions = EXCLUDED.other_additions,
				net_salary = EXCLUDED.net_salary,
				carry_forward_used = EXCLUDED.carry_forward_used,
				carry_forward_remaining = EXCLUDED.carry_forward_remaining,
				status = EXCLUDED.status,
				submitted_at = EXCLUDED.submitted_at,
				submitted_by = EXCLUDED.submitted_by,
				updated_at = NOW()
			RETURNING *
		)
		SELECT ` + payrollRowColumns + `
		FROM upserted p
		JOIN employees e ON e.id = p.employee_id
	`

	saved, err := scanPayrollRow(q.QueryRow(ctx, query,
		row.EmployeeID, row.PeriodYear, row.PeriodMonth,
		row.RequiredDays, row.WorkingDays, row.AbsentDays, row.LeaveDays, row.LateDays, row.LOPDays,
		row.GrossSalary, row.LOPAmount, row.PF, row.ProfessionalTax, row.OtherDeductions,
		row.OtherAdditions, row.NetSalary,
		row.CarryForwardUsed, row.CarryForwardRemaining,
		row.Status, row.SubmittedAt, row.SubmittedBy,
	))
	if err != nil {
		return payroll.MonthlyPayrollRow{}, fmt.Errorf("failed to upsert payroll row: %w", err)
	}
	return saved, nil
}

func (r *payrollRepository) GetRow(ctx context.Context, employeeID string, period payroll.Month) (payroll.MonthlyPayrollRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollRowColumns + `
		FROM monthly_payrolls p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.employee_id = $1 AND p.period_year = $2 AND p.period_month = $3
	`

	row, err := scanPayrollRow(q.QueryRow(ctx, query, employeeID, period.Year, int(period.Month)))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.MonthlyPayrollRow{}, payroll.ErrPayrollRowNotFound
		}
		return payroll.MonthlyPayrollRow{}, fmt.Errorf("failed to get payroll row: %w", err)
	}
	return row, nil
}

func (r *payrollRepository) ListRows(ctx context.Context, period payroll.Month) ([]payroll.MonthlyPayrollRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollRowColumns + `
		FROM monthly_payrolls p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.period_year = $1 AND p.period_month = $2
		ORDER BY e.company, e.code
	`

	rows, err := q.Query(ctx, query, period.Year, int(period.Month))
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll rows: %w", err)
	}
	defer rows.Close()

	var result []payroll.MonthlyPayrollRow
	for rows.Next() {
		row, err := scanPayrollRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll row: %w", err)
		}
		result = append(result, row)
	}
	return result, nil
}
