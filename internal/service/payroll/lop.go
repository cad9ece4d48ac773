package payroll

import (
	"github.com/agrovista-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/agrovista-hr/payroll-backend-go/internal/pkg/numeric"
	"github.com/shopspring/decimal"
)

// LOPFromExcess is the ledger-integrated loss-of-pay variant used for
// official monthly submission: excess leave days, already net of
// entitlement and carry-forward, each cost one daily rate.
func LOPFromExcess(grossSalary decimal.Decimal, requiredDays int, excessLeaveDays float64) payroll.LOPResult {
	return lop(grossSalary, requiredDays, numeric.ClampDays(excessLeaveDays))
}

// LOPFromAbsence is the simple at-a-glance variant used on the payslip
// display path: raw absent days minus a flat allowance, no carry-forward.
func LOPFromAbsence(grossSalary decimal.Decimal, requiredDays int, absentDays, allowedLeaveDays float64) payroll.LOPResult {
	lopDays := numeric.ClampDays(numeric.ClampDays(absentDays) - allowedLeaveDays)
	return lop(grossSalary, requiredDays, lopDays)
}

func lop(grossSalary decimal.Decimal, requiredDays int, lopDays float64) payroll.LOPResult {
	result := payroll.LOPResult{LOPDays: lopDays}

	if requiredDays <= 0 {
		// salary covers no divisible days: no daily rate, no deduction
		result.DailyRate = decimal.Zero
		result.LOPAmount = decimal.Zero
		result.NetSalary = numeric.RoundMoney(grossSalary)
		return result
	}

	result.DailyRate = grossSalary.Div(decimal.NewFromInt(int64(requiredDays)))
	result.LOPAmount = numeric.RoundMoney(result.DailyRate.Mul(decimal.NewFromFloat(lopDays)))
	result.NetSalary = numeric.RoundMoney(grossSalary.Sub(result.LOPAmount))
	return result
}
