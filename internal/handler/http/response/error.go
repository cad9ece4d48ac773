package response

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/agrovista-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/agrovista-hr/payroll-backend-go/internal/domain/employee"
	"github.com/agrovista-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/agrovista-hr/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Incomplete attendance carries the affected employee ids
	var incomplete *payroll.IncompleteDataError
	if errors.As(err, &incomplete) {
		details := make(map[string]string, len(incomplete.EmployeeIDs))
		for _, id := range incomplete.EmployeeIDs {
			details[id] = strconv.Itoa(incomplete.MissingDays[id]) + " missing day(s)"
		}
		UnprocessableEntity(w, "DATA_INCOMPLETE", incomplete.Error(), details)
		return
	}

	switch {
	// Payroll domain errors
	case errors.Is(err, payroll.ErrInvalidMonth):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, payroll.ErrPayrollRowNotFound):
		NotFound(w, "Payroll row not found for this month")
	case errors.Is(err, payroll.ErrFinalizeConflict):
		Conflict(w, "Another submission updated this month concurrently, retry", nil)
	case errors.Is(err, payroll.ErrNoEmployees):
		UnprocessableEntity(w, "NO_EMPLOYEES", err.Error(), nil)
	case errors.Is(err, payroll.ErrNegativeGrossSalary):
		BadRequest(w, err.Error(), nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists", nil)
	case errors.Is(err, employee.ErrCarryForwardConflict):
		Conflict(w, "Carry-forward balance was updated concurrently, retry", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrDuplicateDate):
		Conflict(w, "Attendance already recorded for this date", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
