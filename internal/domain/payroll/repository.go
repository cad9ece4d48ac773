package payroll

import "context"

// PayrollRepository persists monthly payroll rows. Upserts are keyed by
// (employee_id, period_year, period_month); a re-submission overwrites
// the prior row instead of duplicating it.
type PayrollRepository interface {
	UpsertRow(ctx context.Context, row MonthlyPayrollRow) (MonthlyPayrollRow, error)
	GetRow(ctx context.Context, employeeID string, period Month) (MonthlyPayrollRow, error)
	ListRows(ctx context.Context, period Month) ([]MonthlyPayrollRow, error)
}
