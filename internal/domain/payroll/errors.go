package payroll

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidMonth        = errors.New("month must be a well-formed YYYY-MM value")
	ErrPayrollRowNotFound  = errors.New("payroll row not found")
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrNoEmployees         = errors.New("no active employees for this month")
	ErrDataIncomplete      = errors.New("attendance data incomplete for this month")
	ErrFinalizeConflict    = errors.New("concurrent finalize detected, retry the submission")
	ErrNegativeGrossSalary = errors.New("gross salary must not be negative")
)

// IncompleteDataError names the employees whose attendance blocks a finalize.
// It unwraps to ErrDataIncomplete so callers can match with errors.Is.
type IncompleteDataError struct {
	EmployeeIDs []string
	MissingDays map[string]int
}

func (e *IncompleteDataError) Error() string {
	return fmt.Sprintf("attendance incomplete for %d employee(s): %s",
		len(e.EmployeeIDs), strings.Join(e.EmployeeIDs, ", "))
}

func (e *IncompleteDataError) Unwrap() error {
	return ErrDataIncomplete
}
