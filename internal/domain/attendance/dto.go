package attendance

import (
	"time"

	"github.com/agrovista-hr/payroll-backend-go/internal/pkg/validator"
)

type CreateAttendanceRequest struct {
	EmployeeID    string  `json:"employee_id"`
	Date          string  `json:"date"`
	Status        string  `json:"status"`
	CheckIn       *string `json:"check_in,omitempty"`
	CheckOut      *string `json:"check_out,omitempty"`
	WorkedMinutes *int    `json:"worked_minutes,omitempty"`
	Remarks       *string `json:"remarks,omitempty"`
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"})
	}
	if r.WorkedMinutes != nil && *r.WorkedMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "worked_minutes", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  *string `json:"employee_name,omitempty"`
	Date          string  `json:"date"`
	Status        string  `json:"status"`
	DayStatus     string  `json:"day_status"`
	CheckIn       *string `json:"check_in,omitempty"`
	CheckOut      *string `json:"check_out,omitempty"`
	WorkedMinutes *int    `json:"worked_minutes,omitempty"`
	Remarks       *string `json:"remarks,omitempty"`
}

func ToResponse(att Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:            att.ID,
		EmployeeID:    att.EmployeeID,
		EmployeeName:  att.EmployeeName,
		Date:          att.Date.Format("2006-01-02"),
		Status:        att.Status,
		DayStatus:     att.NormalizeStatus().String(),
		CheckIn:       timePtrToString(att.CheckIn),
		CheckOut:      timePtrToString(att.CheckOut),
		WorkedMinutes: att.WorkedMinutes,
		Remarks:       att.Remarks,
	}
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("15:04")
	return &s
}

type LateReportRow struct {
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  string  `json:"employee_name,omitempty"`
	LateDays      int     `json:"late_days"`
	LateDebitDays float64 `json:"late_debit_days"`
}
