package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/agrovista-hr/payroll-backend-go/internal/domain/payroll"
	payrollService "github.com/agrovista-hr/payroll-backend-go/internal/service/payroll"
)

// AttendanceAuditJob logs employees whose attendance for the previous
// month is still incomplete, so HR can chase entries before the month
// is submitted. It never blocks anything; finalize enforces the gate.
func AttendanceAuditJob(payrollSvc *payrollService.PayrollService) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		prev := time.Now().UTC().AddDate(0, -1, 0)
		period := payroll.Month{Year: prev.Year(), Month: prev.Month()}

		incomplete, err := payrollSvc.CompletenessAudit(ctx, period)
		if err != nil {
			return err
		}
		if incomplete == nil {
			slog.Info("attendance audit: month complete", "month", period.String())
			return nil
		}

		slog.Warn("attendance audit: incomplete entries",
			"month", period.String(),
			"employees", len(incomplete.EmployeeIDs),
		)
		for _, id := range incomplete.EmployeeIDs {
			slog.Warn("attendance audit: missing days", "employee_id", id, "missing", incomplete.MissingDays[id])
		}
		return nil
	}
}
