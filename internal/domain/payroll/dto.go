package payroll

import (
	"github.com/agrovista-hr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type SubmitPayrollRequest struct {
	Month       string `json:"month"`
	SubmittedBy string `json:"-"`

	// Reviewer-entered pass-through amounts, keyed by employee id. Values
	// arrive as strings because the review sheet sends "40,000" and "-"
	// style cells; they are coerced by the composer.
	PF              map[string]string `json:"pf,omitempty"`
	ProfessionalTax map[string]string `json:"professional_tax,omitempty"`
	OtherDeductions map[string]string `json:"other_deductions,omitempty"`
	OtherAdditions  map[string]string `json:"other_additions,omitempty"`
}

func (r *SubmitPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "is required"})
	} else if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be in YYYY-MM format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayrollRowResponse struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	EmployeeCode string `json:"employee_code,omitempty"`
	Designation  string `json:"designation,omitempty"`
	Company      string `json:"company,omitempty"`
	Month        string `json:"month"`

	RequiredDays int     `json:"required_days"`
	WorkingDays  float64 `json:"working_days"`
	AbsentDays   float64 `json:"absent_days"`
	LeaveDays    float64 `json:"leave_days"`
	LateDays     int     `json:"late_days"`
	LOPDays      float64 `json:"lop_days"`

	GrossSalary     decimal.Decimal `json:"gross_salary"`
	LOPAmount       decimal.Decimal `json:"lop_amount"`
	PF              decimal.Decimal `json:"pf"`
	ProfessionalTax decimal.Decimal `json:"professional_tax"`
	OtherDeductions decimal.Decimal `json:"other_deductions"`
	OtherAdditions  decimal.Decimal `json:"other_additions"`
	NetSalary       decimal.Decimal `json:"net_salary"`

	CarryForwardUsed      float64 `json:"carry_forward_used"`
	CarryForwardRemaining float64 `json:"carry_forward_remaining"`

	Status string `json:"status"`
}

func ToRowResponse(row MonthlyPayrollRow) PayrollRowResponse {
	resp := PayrollRowResponse{
		EmployeeID:            row.EmployeeID,
		Month:                 row.Period().String(),
		RequiredDays:          row.RequiredDays,
		WorkingDays:           row.WorkingDays,
		AbsentDays:            row.AbsentDays,
		LeaveDays:             row.LeaveDays,
		LateDays:              row.LateDays,
		LOPDays:               row.LOPDays,
		GrossSalary:           row.GrossSalary,
		LOPAmount:             row.LOPAmount,
		PF:                    row.PF,
		ProfessionalTax:       row.ProfessionalTax,
		OtherDeductions:       row.OtherDeductions,
		OtherAdditions:        row.OtherAdditions,
		NetSalary:             row.NetSalary,
		CarryForwardUsed:      row.CarryForwardUsed,
		CarryForwardRemaining: row.CarryForwardRemaining,
		Status:                string(row.Status),
	}
	if row.EmployeeName != nil {
		resp.EmployeeName = *row.EmployeeName
	}
	if row.EmployeeCode != nil {
		resp.EmployeeCode = *row.EmployeeCode
	}
	if row.Designation != nil {
		resp.Designation = *row.Designation
	}
	if row.Company != nil {
		resp.Company = *row.Company
	}
	return resp
}

type SubmitPayrollResponse struct {
	Month     string            `json:"month"`
	Committed int               `json:"committed"`
	Outcomes  []FinalizeOutcome `json:"-"`
}

type MonthSummaryResponse struct {
	EmployeeID       string  `json:"employee_id"`
	Month            string  `json:"month"`
	WorkingDays      float64 `json:"working_days"`
	AbsentDays       float64 `json:"absent_days"`
	LeaveDays        float64 `json:"leave_days"`
	LateDays         int     `json:"late_days"`
	LateDebitDays    float64 `json:"late_debit_days"`
	MissingDays      int     `json:"missing_days"`
	TotalDaysInMonth int     `json:"total_days_in_month"`
}

func ToSummaryResponse(period Month, s MonthSummary) MonthSummaryResponse {
	return MonthSummaryResponse{
		EmployeeID:       s.EmployeeID,
		Month:            period.String(),
		WorkingDays:      s.WorkingDays,
		AbsentDays:       s.AbsentDays,
		LeaveDays:        s.LeaveDays,
		LateDays:         s.LateDays,
		LateDebitDays:    s.LateDebitDays,
		MissingDays:      s.MissingDays,
		TotalDaysInMonth: s.TotalDaysInMonth,
	}
}
