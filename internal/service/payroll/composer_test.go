package payroll

import (
	"testing"

	"github.com/agrovista-hr/payroll-backend-go/internal/domain/employee"
	"github.com/agrovista-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func testEmployee() employee.Employee {
	return employee.Employee{
		ID:                  "emp-1",
		Code:                "TAN-001",
		FullName:            "Ravi Kumar",
		Designation:         "Supervisor",
		Company:             employee.CompanyTandur,
		GrossSalary:         decimal.NewFromInt(30000),
		CarryForwardBalance: 1.5,
	}
}

func engineOutputs(emp employee.Employee) (payroll.MonthSummary, payroll.LedgerResult, payroll.LOPResult) {
	summary := payroll.MonthSummary{
		EmployeeID:       emp.ID,
		WorkingDays:      25,
		AbsentDays:       5,
		LeaveDays:        2,
		LateDays:         3,
		LateDebitDays:    0.5,
		TotalDaysInMonth: 30,
	}
	ledger := ApplyLedger(emp.CarryForwardBalance, summary.LeaveDays, summary.LateDebitDays, payroll.DefaultPolicy())
	lopResult := LOPFromExcess(emp.GrossSalary, 30, ledger.ExcessLeaveDays)
	return summary, ledger, lopResult
}

func TestComposeRowComputedFields(t *testing.T) {
	emp := testEmployee()
	summary, ledger, lopResult := engineOutputs(emp)

	row := ComposeRow(emp, june, 30, summary, ledger, lopResult, ReviewerAmounts{}, nil, false)

	assert.Equal(t, "emp-1", row.EmployeeID)
	assert.Equal(t, 2025, row.PeriodYear)
	assert.Equal(t, 6, row.PeriodMonth)
	assert.Equal(t, 30, row.RequiredDays)
	assert.Equal(t, 25.0, row.WorkingDays)
	assert.Equal(t, 5.0, row.AbsentDays)
	assert.Equal(t, 2.5, row.CarryForwardUsed)
	assert.Equal(t, 1.0, row.CarryForwardRemaining)
	assert.Equal(t, 0.0, row.LOPDays)
	assert.Equal(t, payroll.PayrollStatusDraft, row.Status)
	assert.True(t, row.GrossSalary.Equal(decimal.NewFromInt(30000)))
	assert.True(t, row.NetSalary.Equal(decimal.NewFromInt(30000)), "net %s", row.NetSalary)
}

func TestComposeRowAppliesReviewerAmounts(t *testing.T) {
	emp := testEmployee()
	summary, ledger, lopResult := engineOutputs(emp)

	amounts := ReviewerAmounts{
		PF:              strPtr("1,800"),
		ProfessionalTax: strPtr("200"),
		OtherDeductions: strPtr("-"),
		OtherAdditions:  strPtr("500"),
	}
	row := ComposeRow(emp, june, 30, summary, ledger, lopResult, amounts, nil, false)

	assert.True(t, row.PF.Equal(decimal.NewFromInt(1800)))
	assert.True(t, row.ProfessionalTax.Equal(decimal.NewFromInt(200)))
	assert.True(t, row.OtherDeductions.IsZero())
	assert.True(t, row.OtherAdditions.Equal(decimal.NewFromInt(500)))
	// 30000 - 1800 - 200 - 0 + 500
	assert.True(t, row.NetSalary.Equal(decimal.NewFromInt(28500)), "net %s", row.NetSalary)
}

func TestComposeRowCoercesIndianGrouping(t *testing.T) {
	emp := testEmployee()
	emp.GrossSalary = decimal.NewFromInt(100000)
	summary, ledger, lopResult := engineOutputs(emp)

	amounts := ReviewerAmounts{PF: strPtr("40,000"), ProfessionalTax: strPtr("1,00,000")}
	row := ComposeRow(emp, june, 30, summary, ledger, lopResult, amounts, nil, false)

	assert.True(t, row.PF.Equal(decimal.NewFromInt(40000)), "pf %s", row.PF)
	assert.True(t, row.ProfessionalTax.Equal(decimal.NewFromInt(100000)), "pt %s", row.ProfessionalTax)
}

func TestComposeRowClampsNegativeAmounts(t *testing.T) {
	emp := testEmployee()
	summary, ledger, lopResult := engineOutputs(emp)

	row := ComposeRow(emp, june, 30, summary, ledger, lopResult, ReviewerAmounts{PF: strPtr("-1800")}, nil, false)
	assert.True(t, row.PF.IsZero())
}

func TestComposeRowKeepsStoredAmountsWhenNotSupplied(t *testing.T) {
	emp := testEmployee()
	summary, ledger, lopResult := engineOutputs(emp)

	stored := payroll.MonthlyPayrollRow{
		PF:              decimal.NewFromInt(1800),
		ProfessionalTax: decimal.NewFromInt(200),
		OtherDeductions: decimal.NewFromInt(100),
		OtherAdditions:  decimal.NewFromInt(250),
	}

	// only PF re-keyed this round; the rest carries over from storage
	row := ComposeRow(emp, june, 30, summary, ledger, lopResult, ReviewerAmounts{PF: strPtr("2000")}, &stored, false)

	assert.True(t, row.PF.Equal(decimal.NewFromInt(2000)))
	assert.True(t, row.ProfessionalTax.Equal(decimal.NewFromInt(200)))
	assert.True(t, row.OtherDeductions.Equal(decimal.NewFromInt(100)))
	assert.True(t, row.OtherAdditions.Equal(decimal.NewFromInt(250)))
	// 30000 - 2000 - 200 - 100 + 250
	assert.True(t, row.NetSalary.Equal(decimal.NewFromInt(27950)), "net %s", row.NetSalary)
}

func TestComposeRowIgnoresStoredDraftComputedFields(t *testing.T) {
	emp := testEmployee()
	summary, ledger, lopResult := engineOutputs(emp)

	stored := payroll.MonthlyPayrollRow{
		WorkingDays: 99,
		AbsentDays:  99,
		NetSalary:   decimal.NewFromInt(1),
		Status:      payroll.PayrollStatusDraft,
	}
	row := ComposeRow(emp, june, 30, summary, ledger, lopResult, ReviewerAmounts{}, &stored, false)

	assert.Equal(t, 25.0, row.WorkingDays)
	assert.Equal(t, 5.0, row.AbsentDays)
	assert.Equal(t, payroll.PayrollStatusDraft, row.Status)
	assert.True(t, row.NetSalary.Equal(decimal.NewFromInt(30000)))
}

func TestComposeRowPreservesSubmittedRow(t *testing.T) {
	emp := testEmployee()
	summary, ledger, lopResult := engineOutputs(emp)

	// finalized system-of-record row; attendance has mutated since
	stored := payroll.MonthlyPayrollRow{
		EmployeeID:  emp.ID,
		PeriodYear:  2025,
		PeriodMonth: 6,
		WorkingDays: 20,
		AbsentDays:  10,
		PF:          decimal.NewFromInt(1800),
		NetSalary:   decimal.NewFromInt(22000),
		Status:      payroll.PayrollStatusSubmitted,
	}
	row := ComposeRow(emp, june, 30, summary, ledger, lopResult, ReviewerAmounts{}, &stored, false)

	assert.Equal(t, 20.0, row.WorkingDays)
	assert.Equal(t, 10.0, row.AbsentDays)
	assert.True(t, row.PF.Equal(decimal.NewFromInt(1800)))
	assert.True(t, row.NetSalary.Equal(decimal.NewFromInt(22000)), "net %s", row.NetSalary)
	assert.Equal(t, payroll.PayrollStatusSubmitted, row.Status)
}

func TestComposeRowResubmitRecomputesSubmittedRow(t *testing.T) {
	emp := testEmployee()
	summary, ledger, lopResult := engineOutputs(emp)

	stored := payroll.MonthlyPayrollRow{
		WorkingDays: 20,
		NetSalary:   decimal.NewFromInt(22000),
		Status:      payroll.PayrollStatusSubmitted,
	}
	row := ComposeRow(emp, june, 30, summary, ledger, lopResult, ReviewerAmounts{}, &stored, true)

	assert.Equal(t, 25.0, row.WorkingDays)
	assert.True(t, row.NetSalary.Equal(decimal.NewFromInt(30000)), "net %s", row.NetSalary)
}
