// Package payslip renders the at-a-glance monthly payslip handed to an
// employee. Figures are supplied by the caller; this package only draws.
package payslip

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

type Line struct {
	Label  string
	Amount string
}

type Payslip struct {
	CompanyName  string
	EmployeeName string
	EmployeeCode string
	Designation  string
	Month        string

	WorkingDays  float64
	AbsentDays   float64
	LOPDays      float64
	RequiredDays int

	GrossSalary string
	Deductions  []Line
	NetSalary   string
}

// Render draws the payslip and returns the PDF bytes.
func Render(p Payslip) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Payslip %s %s", p.EmployeeCode, p.Month), false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, p.CompanyName, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("Payslip for %s", p.Month), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 10)
	labelValue(pdf, "Employee", fmt.Sprintf("%s (%s)", p.EmployeeName, p.EmployeeCode))
	labelValue(pdf, "Designation", p.Designation)
	labelValue(pdf, "Days worked", fmt.Sprintf("%.1f of %d", p.WorkingDays, p.RequiredDays))
	labelValue(pdf, "Days absent", fmt.Sprintf("%.1f", p.AbsentDays))
	labelValue(pdf, "LOP days", fmt.Sprintf("%.1f", p.LOPDays))
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 10)
	amountRow(pdf, "Gross salary", p.GrossSalary)
	pdf.SetFont("Arial", "", 10)
	for _, d := range p.Deductions {
		amountRow(pdf, d.Label, "-"+d.Amount)
	}
	pdf.SetFont("Arial", "B", 11)
	amountRow(pdf, "Net salary", p.NetSalary)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render payslip: %w", err)
	}
	return buf.Bytes(), nil
}

func labelValue(pdf *gofpdf.Fpdf, label, value string) {
	pdf.CellFormat(45, 6, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
}

func amountRow(pdf *gofpdf.Fpdf, label, amount string) {
	pdf.CellFormat(120, 7, label, "T", 0, "L", false, 0, "")
	pdf.CellFormat(0, 7, amount, "T", 1, "R", false, 0, "")
}
