package report

import (
	"context"
	"fmt"

	"github.com/agrovista-hr/payroll-backend-go/internal/pkg/payslip"
	payrollService "github.com/agrovista-hr/payroll-backend-go/internal/service/payroll"
	"github.com/xuri/excelize/v2"
)

// ReportService produces the accounts-facing exports: the monthly
// paysheet workbook and individual payslips.
type ReportService struct {
	payrollSvc *payrollService.PayrollService
}

func NewReportService(payrollSvc *payrollService.PayrollService) *ReportService {
	return &ReportService{payrollSvc: payrollSvc}
}

var paysheetHeaders = []string{
	"Code", "Name", "Designation", "Company",
	"Required Days", "Working Days", "Absent Days", "Leave Days", "Late Days", "LOP Days",
	"Gross Salary", "LOP Amount", "PF", "Professional Tax",
	"Other Deductions", "Other Additions", "Net Salary",
	"CF Used", "CF Remaining", "Status",
}

// PaysheetXLSX builds the month's paysheet workbook from the stored
// rows (submitted or draft); months with no stored rows fall back to a
// fresh preview so accounts can always pull a sheet.
func (s *ReportService) PaysheetXLSX(ctx context.Context, monthStr string) ([]byte, error) {
	rows, err := s.payrollSvc.ListRows(ctx, monthStr)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		rows, err = s.payrollSvc.PreviewMonth(ctx, monthStr)
		if err != nil {
			return nil, err
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Paysheet " + monthStr
	f.SetSheetName("Sheet1", sheet)

	for col, header := range paysheetHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write paysheet header: %w", err)
		}
	}

	for i, row := range rows {
		values := []interface{}{
			deref(row.EmployeeCode), deref(row.EmployeeName), deref(row.Designation), deref(row.Company),
			row.RequiredDays, row.WorkingDays, row.AbsentDays, row.LeaveDays, row.LateDays, row.LOPDays,
			row.GrossSalary.InexactFloat64(), row.LOPAmount.InexactFloat64(),
			row.PF.InexactFloat64(), row.ProfessionalTax.InexactFloat64(),
			row.OtherDeductions.InexactFloat64(), row.OtherAdditions.InexactFloat64(),
			row.NetSalary.InexactFloat64(),
			row.CarryForwardUsed, row.CarryForwardRemaining, string(row.Status),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("failed to write paysheet row: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to build paysheet workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// PayslipPDF renders the at-a-glance payslip for one employee-month.
// The display path uses the simple flat-allowance LOP variant; official
// figures live in the submitted paysheet.
func (s *ReportService) PayslipPDF(ctx context.Context, employeeID, monthStr string) ([]byte, error) {
	row, err := s.payrollSvc.PreviewEmployeeMonth(ctx, employeeID, monthStr)
	if err != nil {
		return nil, err
	}

	policy := s.payrollSvc.Policy()
	display := payrollService.LOPFromAbsence(row.GrossSalary, row.RequiredDays, row.AbsentDays, policy.AllowedLeaveDays)

	slip := payslip.Payslip{
		CompanyName:  companyDisplayName(deref(row.Company)),
		EmployeeName: deref(row.EmployeeName),
		EmployeeCode: deref(row.EmployeeCode),
		Designation:  deref(row.Designation),
		Month:        monthStr,
		WorkingDays:  row.WorkingDays,
		AbsentDays:   row.AbsentDays,
		LOPDays:      display.LOPDays,
		RequiredDays: row.RequiredDays,
		GrossSalary:  row.GrossSalary.StringFixed(0),
		NetSalary:    display.NetSalary.StringFixed(0),
	}
	if display.LOPAmount.IsPositive() {
		slip.Deductions = append(slip.Deductions, payslip.Line{Label: "Loss of pay", Amount: display.LOPAmount.StringFixed(0)})
	}

	return payslip.Render(slip)
}

func companyDisplayName(company string) string {
	switch company {
	case "tandur":
		return "Agrovista Farms - Tandur"
	case "talakondapally":
		return "Agrovista Farms - Talakondapally"
	case "operations":
		return "Agrovista Operations"
	case "nutromilk":
		return "Nutromilk Foods"
	case "accounts":
		return "Agrovista Head Office"
	default:
		return "Agrovista Group"
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
