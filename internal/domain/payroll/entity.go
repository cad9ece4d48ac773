package payroll

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Month is the calendar period a payroll row is computed for.
type Month struct {
	Year  int
	Month time.Month
}

// ParseMonth parses "YYYY-MM" into a Month.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, ErrInvalidMonth
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Start returns midnight UTC on the first day of the month.
func (m Month) Start() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End returns midnight UTC on the first day of the following month.
func (m Month) End() time.Time {
	return m.Start().AddDate(0, 1, 0)
}

// Days returns the number of calendar days in the month (28-31).
func (m Month) Days() int {
	return m.End().AddDate(0, 0, -1).Day()
}

func (m Month) IsZero() bool {
	return m.Year == 0
}

// RequiredDaysMode selects how many days a gross salary is spread over.
type RequiredDaysMode string

const (
	RequiredDaysFixed    RequiredDaysMode = "fixed"
	RequiredDaysCalendar RequiredDaysMode = "calendar"
)

// Policy carries the tunable payroll rules. Construct with DefaultPolicy
// and override from config; a zero Policy is never meaningful.
type Policy struct {
	LateThresholdHour       int
	LateThresholdMinute     int
	LateDaysPerPenalty      int
	LatePenaltyDays         float64
	MonthlyLeaveEntitlement float64
	AllowedLeaveDays        float64
	RequiredDaysDefault     int
	RequiredDaysMode        RequiredDaysMode
}

func DefaultPolicy() Policy {
	return Policy{
		LateThresholdHour:       10,
		LateThresholdMinute:     15,
		LateDaysPerPenalty:      3,
		LatePenaltyDays:         0.5,
		MonthlyLeaveEntitlement: 2,
		AllowedLeaveDays:        2,
		RequiredDaysDefault:     30,
		RequiredDaysMode:        RequiredDaysFixed,
	}
}

// RequiredDays resolves the daily-rate divisor for a given month.
func (p Policy) RequiredDays(m Month) int {
	if p.RequiredDaysMode == RequiredDaysCalendar {
		return m.Days()
	}
	return p.RequiredDaysDefault
}

// MonthSummary is the Attendance Aggregator output for one employee-month.
// Day counts carry half-day granularity, so they are fractional.
type MonthSummary struct {
	EmployeeID       string
	WorkingDays      float64
	AbsentDays       float64
	LeaveDays        float64
	LateDays         int
	LateDebitDays    float64
	MissingDays      int
	TotalDaysInMonth int
}

// LedgerResult is the Leave Ledger output for one employee-month.
type LedgerResult struct {
	LeavesConsumed  float64
	NewCarryForward float64
	ExcessLeaveDays float64
}

// LOPResult is the Loss-of-Pay calculator output.
type LOPResult struct {
	LOPDays   float64
	DailyRate decimal.Decimal
	LOPAmount decimal.Decimal
	NetSalary decimal.Decimal
}

// PayrollStatus enum
type PayrollStatus string

const (
	PayrollStatusDraft     PayrollStatus = "draft"
	PayrollStatusSubmitted PayrollStatus = "submitted"
)

// MonthlyPayrollRow is the system-of-record row for one (employee, month).
type MonthlyPayrollRow struct {
	ID          string
	EmployeeID  string
	PeriodYear  int
	PeriodMonth int

	RequiredDays int
	WorkingDays  float64
	AbsentDays   float64
	LeaveDays    float64
	LateDays     int
	LOPDays      float64

	GrossSalary     decimal.Decimal
	LOPAmount       decimal.Decimal
	PF              decimal.Decimal
	ProfessionalTax decimal.Decimal
	OtherDeductions decimal.Decimal
	OtherAdditions  decimal.Decimal
	NetSalary       decimal.Decimal

	CarryForwardUsed      float64
	CarryForwardRemaining float64

	Status      PayrollStatus
	SubmittedAt *time.Time
	SubmittedBy *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
	Designation  *string
	Company      *string
}

// Period returns the row's month.
func (r MonthlyPayrollRow) Period() Month {
	return Month{Year: r.PeriodYear, Month: time.Month(r.PeriodMonth)}
}

// FinalizeOutcome reports the result of committing one employee's month.
type FinalizeOutcome struct {
	EmployeeID      string
	Committed       bool
	NewCarryForward float64
}
