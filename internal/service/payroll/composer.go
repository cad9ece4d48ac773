package payroll

import (
	"github.com/agrovista-hr/payroll-backend-go/internal/domain/employee"
	"github.com/agrovista-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/agrovista-hr/payroll-backend-go/internal/pkg/numeric"
	"github.com/shopspring/decimal"
)

// ReviewerAmounts are the pass-through line items a reviewer keys into
// the paysheet. They arrive as raw strings ("40,000", "-", "") and are
// coerced here; a nil pointer means "not supplied this round", which
// keeps any previously stored value.
type ReviewerAmounts struct {
	PF              *string
	ProfessionalTax *string
	OtherDeductions *string
	OtherAdditions  *string
}

// ComposeRow assembles the monthly payroll row for one employee from
// the engine outputs plus reviewer-entered amounts. When a stored draft
// exists for the same (employee, month), reviewer fields not supplied
// in this round are carried over from it; computed fields are taken
// fresh from the current attendance-derived inputs.
//
// A stored row already marked submitted is the system of record: its
// figures are returned unchanged so recomputation from mutated
// attendance never silently alters a finalized month. Overwriting one
// requires resubmit, the explicit auditable path.
func ComposeRow(
	emp employee.Employee,
	period payroll.Month,
	requiredDays int,
	summary payroll.MonthSummary,
	ledger payroll.LedgerResult,
	lopResult payroll.LOPResult,
	amounts ReviewerAmounts,
	existing *payroll.MonthlyPayrollRow,
	resubmit bool,
) payroll.MonthlyPayrollRow {
	if existing != nil && existing.Status == payroll.PayrollStatusSubmitted && !resubmit {
		return *existing
	}

	row := payroll.MonthlyPayrollRow{
		EmployeeID:  emp.ID,
		PeriodYear:  period.Year,
		PeriodMonth: int(period.Month),

		RequiredDays: requiredDays,
		WorkingDays:  summary.WorkingDays,
		AbsentDays:   summary.AbsentDays,
		LeaveDays:    summary.LeaveDays,
		LateDays:     summary.LateDays,
		LOPDays:      lopResult.LOPDays,

		GrossSalary: numeric.RoundMoney(emp.GrossSalary),
		LOPAmount:   lopResult.LOPAmount,

		CarryForwardUsed:      ledger.LeavesConsumed,
		CarryForwardRemaining: ledger.NewCarryForward,

		Status: payroll.PayrollStatusDraft,
	}

	row.PF = mergeAmount(amounts.PF, existing, func(r *payroll.MonthlyPayrollRow) decimal.Decimal { return r.PF })
	row.ProfessionalTax = mergeAmount(amounts.ProfessionalTax, existing, func(r *payroll.MonthlyPayrollRow) decimal.Decimal { return r.ProfessionalTax })
	row.OtherDeductions = mergeAmount(amounts.OtherDeductions, existing, func(r *payroll.MonthlyPayrollRow) decimal.Decimal { return r.OtherDeductions })
	row.OtherAdditions = mergeAmount(amounts.OtherAdditions, existing, func(r *payroll.MonthlyPayrollRow) decimal.Decimal { return r.OtherAdditions })

	net := lopResult.NetSalary.
		Sub(row.PF).
		Sub(row.ProfessionalTax).
		Sub(row.OtherDeductions).
		Add(row.OtherAdditions)
	row.NetSalary = numeric.RoundMoney(net)

	return row
}

// mergeAmount resolves one reviewer field: a supplied value is coerced
// and clamped at zero, an omitted value falls back to the stored row,
// and with neither the field is zero.
func mergeAmount(supplied *string, existing *payroll.MonthlyPayrollRow, stored func(*payroll.MonthlyPayrollRow) decimal.Decimal) decimal.Decimal {
	if supplied != nil {
		amount := numeric.ParseAmount(*supplied)
		if amount.IsNegative() {
			return decimal.Zero
		}
		return amount
	}
	if existing != nil {
		return stored(existing)
	}
	return decimal.Zero
}
