package payroll

import (
	"time"

	"github.com/agrovista-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/agrovista-hr/payroll-backend-go/internal/domain/payroll"
)

// Aggregate reduces one employee's attendance records for a month into a
// MonthSummary. It never errors: a day with no record simply increments
// nothing, and completeness is reported through MissingDays rather than
// enforced here.
//
// holidays is the set of non-working dates (formatted 2006-01-02) for
// the employee's company; pass nil when no calendar is available and
// late counting degrades to Sunday-only exclusion.
func Aggregate(employeeID string, period payroll.Month, records []attendance.Attendance, holidays map[string]bool, policy payroll.Policy) payroll.MonthSummary {
	summary := payroll.MonthSummary{
		EmployeeID:       employeeID,
		TotalDaysInMonth: period.Days(),
	}

	start, end := period.Start(), period.End()
	seen := make(map[string]bool, len(records))

	for _, rec := range records {
		if rec.Date.Before(start) || !rec.Date.Before(end) {
			continue
		}
		day := rec.Date.Format("2006-01-02")
		if seen[day] {
			// one record per (employee, date); duplicates are stale imports
			continue
		}
		seen[day] = true

		switch rec.NormalizeStatus() {
		case attendance.StatusPresent, attendance.StatusWFH, attendance.StatusOnDuty:
			summary.WorkingDays++
		case attendance.StatusHalfDay:
			summary.WorkingDays += 0.5
		case attendance.StatusAbsent:
			summary.AbsentDays++
		case attendance.StatusLeave:
			// leave consumes entitlement rather than being automatically
			// paid, so it folds into the absence shortfall as well
			summary.LeaveDays++
			summary.AbsentDays++
		}

		if rec.IsLateAfter(policy.LateThresholdHour, policy.LateThresholdMinute) &&
			rec.Date.Weekday() != time.Sunday && !holidays[day] {
			summary.LateDays++
		}
	}

	summary.MissingDays = summary.TotalDaysInMonth - len(seen)
	summary.LateDebitDays = LateDebit(summary.LateDays, policy)

	return summary
}

// LateDebit converts accumulated late days into a leave-day debit:
// integer-divide by LateDaysPerPenalty, multiply by LatePenaltyDays.
func LateDebit(lateDays int, policy payroll.Policy) float64 {
	if policy.LateDaysPerPenalty <= 0 || lateDays < 0 {
		return 0
	}
	return float64(lateDays/policy.LateDaysPerPenalty) * policy.LatePenaltyDays
}
