package attendance

import (
	"context"
	"time"
)

// AttendanceRepository reads attendance for the payroll engine and lets
// the capture sites write daily rows.
type AttendanceRepository interface {
	// Create records one day for one employee. The (employee_id, date)
	// unique constraint backs ErrDuplicateDate.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// ListByEmployeeBetween returns the records whose date falls in
	// [from, to). A zero-record result is "no data", not an error.
	ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]Attendance, error)

	// ListBetween returns all employees' records for [from, to),
	// ordered by employee then date. Used for batch month computation.
	ListBetween(ctx context.Context, from, to time.Time) ([]Attendance, error)
}
