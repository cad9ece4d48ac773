package payroll

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/agrovista-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/agrovista-hr/payroll-backend-go/internal/domain/employee"
	"github.com/agrovista-hr/payroll-backend-go/internal/domain/holiday"
	"github.com/agrovista-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/agrovista-hr/payroll-backend-go/internal/pkg/database"
	"github.com/agrovista-hr/payroll-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

// PayrollService computes and finalizes monthly payroll. Preview is a
// pure read path; SubmitMonth is the only writer of payroll rows and
// carry-forward balances.
type PayrollService struct {
	db             *database.DB
	payrollRepo    payroll.PayrollRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	holidayRepo    holiday.HolidayRepository
	policy         payroll.Policy

	// transaction boundary for SubmitMonth
	withTx func(ctx context.Context, fn func(tx pgx.Tx) error) error
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	holidayRepo holiday.HolidayRepository,
	policy payroll.Policy,
) *PayrollService {
	return &PayrollService{
		db:             db,
		payrollRepo:    payrollRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		holidayRepo:    holidayRepo,
		policy:         policy,
		withTx: func(ctx context.Context, fn func(tx pgx.Tx) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// ComputeMonthlyPayroll runs the whole engine for one employee without
// touching storage: aggregate, ledger, ledger-integrated LOP, compose.
// A stored row already submitted is returned as-is unless resubmit is
// set, which recomputes it for an explicit overwrite.
func (s *PayrollService) ComputeMonthlyPayroll(
	emp employee.Employee,
	period payroll.Month,
	records []attendance.Attendance,
	holidays map[string]bool,
	amounts ReviewerAmounts,
	existing *payroll.MonthlyPayrollRow,
	resubmit bool,
) (payroll.MonthlyPayrollRow, payroll.MonthSummary) {
	summary := Aggregate(emp.ID, period, records, holidays, s.policy)
	ledger := ApplyLedger(emp.CarryForwardBalance, summary.LeaveDays, summary.LateDebitDays, s.policy)
	requiredDays := s.policy.RequiredDays(period)
	lopResult := LOPFromExcess(emp.GrossSalary, requiredDays, ledger.ExcessLeaveDays)

	row := ComposeRow(emp, period, requiredDays, summary, ledger, lopResult, amounts, existing, resubmit)
	row.EmployeeName = &emp.FullName
	row.EmployeeCode = &emp.Code
	row.Designation = &emp.Designation
	company := string(emp.Company)
	row.Company = &company
	return row, summary
}

// PreviewEmployeeMonth computes one employee's row without persisting
// anything. A stored row for the same month only contributes its
// reviewer-entered amounts.
func (s *PayrollService) PreviewEmployeeMonth(ctx context.Context, employeeID, monthStr string) (payroll.MonthlyPayrollRow, error) {
	period, err := payroll.ParseMonth(monthStr)
	if err != nil {
		return payroll.MonthlyPayrollRow{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.MonthlyPayrollRow{}, err
	}

	records, err := s.attendanceRepo.ListByEmployeeBetween(ctx, emp.ID, period.Start(), period.End())
	if err != nil {
		return payroll.MonthlyPayrollRow{}, err
	}

	holidays := s.holidaysFor(ctx, string(emp.Company), period)
	existing := s.storedRow(ctx, emp.ID, period)

	row, _ := s.ComputeMonthlyPayroll(emp, period, records, holidays, ReviewerAmounts{}, existing, false)
	return row, nil
}

// PreviewMonth computes the whole month for every active employee, best
// effort and side-effect free.
func (s *PayrollService) PreviewMonth(ctx context.Context, monthStr string) ([]payroll.MonthlyPayrollRow, error) {
	period, err := payroll.ParseMonth(monthStr)
	if err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	byEmployee, err := s.attendanceByEmployee(ctx, period)
	if err != nil {
		return nil, err
	}

	rows := make([]payroll.MonthlyPayrollRow, 0, len(employees))
	for _, emp := range employees {
		if emp.ID == "" {
			// rows with no identity are skipped, never fatal to the batch
			continue
		}
		holidays := s.holidaysFor(ctx, string(emp.Company), period)
		existing := s.storedRow(ctx, emp.ID, period)
		row, _ := s.ComputeMonthlyPayroll(emp, period, byEmployee[emp.ID], holidays, ReviewerAmounts{}, existing, false)
		rows = append(rows, row)
	}
	return rows, nil
}

// SubmitMonth finalizes a month for every active employee as one
// all-or-nothing transaction. Any employee with missing attendance days
// rejects the whole batch; a concurrent carry-forward update rejects it
// with ErrFinalizeConflict and must be retried by the caller.
func (s *PayrollService) SubmitMonth(ctx context.Context, req payroll.SubmitPayrollRequest) (payroll.SubmitPayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SubmitPayrollResponse{}, err
	}
	period, err := payroll.ParseMonth(req.Month)
	if err != nil {
		return payroll.SubmitPayrollResponse{}, err
	}

	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return payroll.SubmitPayrollResponse{}, err
	}
	if len(employees) == 0 {
		return payroll.SubmitPayrollResponse{}, payroll.ErrNoEmployees
	}

	byEmployee, err := s.attendanceByEmployee(ctx, period)
	if err != nil {
		return payroll.SubmitPayrollResponse{}, err
	}

	// completeness gate before any write
	incomplete := &payroll.IncompleteDataError{MissingDays: make(map[string]int)}
	for _, emp := range employees {
		if emp.ID == "" {
			// rows with no identity are skipped, never fatal to the batch
			continue
		}
		holidays := s.holidaysFor(ctx, string(emp.Company), period)
		summary := Aggregate(emp.ID, period, byEmployee[emp.ID], holidays, s.policy)
		if summary.MissingDays > 0 {
			incomplete.EmployeeIDs = append(incomplete.EmployeeIDs, emp.ID)
			incomplete.MissingDays[emp.ID] = summary.MissingDays
		}
	}
	if len(incomplete.EmployeeIDs) > 0 {
		return payroll.SubmitPayrollResponse{}, incomplete
	}

	now := time.Now().UTC()
	resp := payroll.SubmitPayrollResponse{Month: period.String()}

	err = s.withTx(ctx, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		for _, emp := range employees {
			if emp.ID == "" {
				continue
			}
			holidays := s.holidaysFor(txCtx, string(emp.Company), period)
			existing := s.storedRow(txCtx, emp.ID, period)

			amounts := ReviewerAmounts{
				PF:              amountFor(req.PF, emp.ID),
				ProfessionalTax: amountFor(req.ProfessionalTax, emp.ID),
				OtherDeductions: amountFor(req.OtherDeductions, emp.ID),
				OtherAdditions:  amountFor(req.OtherAdditions, emp.ID),
			}

			row, _ := s.ComputeMonthlyPayroll(emp, period, byEmployee[emp.ID], holidays, amounts, existing, true)
			row.Status = payroll.PayrollStatusSubmitted
			row.SubmittedAt = &now
			if req.SubmittedBy != "" {
				submittedBy := req.SubmittedBy
				row.SubmittedBy = &submittedBy
			}

			if _, err := s.payrollRepo.UpsertRow(txCtx, row); err != nil {
				return err
			}

			if err := s.employeeRepo.UpdateCarryForward(txCtx, emp.ID, row.CarryForwardRemaining, emp.CarryForwardVersion); err != nil {
				if errors.Is(err, employee.ErrCarryForwardConflict) {
					return payroll.ErrFinalizeConflict
				}
				return err
			}

			resp.Outcomes = append(resp.Outcomes, payroll.FinalizeOutcome{
				EmployeeID:      emp.ID,
				Committed:       true,
				NewCarryForward: row.CarryForwardRemaining,
			})
		}
		return nil
	})
	if err != nil {
		return payroll.SubmitPayrollResponse{}, err
	}

	resp.Committed = len(resp.Outcomes)
	return resp, nil
}

// GetRow returns the stored row for one employee-month.
func (s *PayrollService) GetRow(ctx context.Context, employeeID, monthStr string) (payroll.MonthlyPayrollRow, error) {
	period, err := payroll.ParseMonth(monthStr)
	if err != nil {
		return payroll.MonthlyPayrollRow{}, err
	}
	return s.payrollRepo.GetRow(ctx, employeeID, period)
}

// ListRows returns the stored rows for a month.
func (s *PayrollService) ListRows(ctx context.Context, monthStr string) ([]payroll.MonthlyPayrollRow, error) {
	period, err := payroll.ParseMonth(monthStr)
	if err != nil {
		return nil, err
	}
	return s.payrollRepo.ListRows(ctx, period)
}

// MonthlySummary exposes the aggregator output for one employee-month.
func (s *PayrollService) MonthlySummary(ctx context.Context, employeeID, monthStr string) (payroll.Month, payroll.MonthSummary, error) {
	period, err := payroll.ParseMonth(monthStr)
	if err != nil {
		return payroll.Month{}, payroll.MonthSummary{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.Month{}, payroll.MonthSummary{}, err
	}

	records, err := s.attendanceRepo.ListByEmployeeBetween(ctx, emp.ID, period.Start(), period.End())
	if err != nil {
		return payroll.Month{}, payroll.MonthSummary{}, err
	}

	holidays := s.holidaysFor(ctx, string(emp.Company), period)
	return period, Aggregate(emp.ID, period, records, holidays, s.policy), nil
}

// LateReport lists per-employee late days and the resulting leave debit
// for a month.
func (s *PayrollService) LateReport(ctx context.Context, monthStr string) ([]attendance.LateReportRow, error) {
	period, err := payroll.ParseMonth(monthStr)
	if err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	byEmployee, err := s.attendanceByEmployee(ctx, period)
	if err != nil {
		return nil, err
	}

	report := make([]attendance.LateReportRow, 0, len(employees))
	for _, emp := range employees {
		holidays := s.holidaysFor(ctx, string(emp.Company), period)
		summary := Aggregate(emp.ID, period, byEmployee[emp.ID], holidays, s.policy)
		report = append(report, attendance.LateReportRow{
			EmployeeID:    emp.ID,
			EmployeeName:  emp.FullName,
			LateDays:      summary.LateDays,
			LateDebitDays: summary.LateDebitDays,
		})
	}
	return report, nil
}

// CompletenessAudit reports employees with missing attendance days for
// a month, or nil when the month is complete. Used by the nightly cron.
func (s *PayrollService) CompletenessAudit(ctx context.Context, period payroll.Month) (*payroll.IncompleteDataError, error) {
	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	byEmployee, err := s.attendanceByEmployee(ctx, period)
	if err != nil {
		return nil, err
	}

	incomplete := &payroll.IncompleteDataError{MissingDays: make(map[string]int)}
	for _, emp := range employees {
		summary := Aggregate(emp.ID, period, byEmployee[emp.ID], nil, s.policy)
		if summary.MissingDays > 0 {
			incomplete.EmployeeIDs = append(incomplete.EmployeeIDs, emp.ID)
			incomplete.MissingDays[emp.ID] = summary.MissingDays
		}
	}
	if len(incomplete.EmployeeIDs) == 0 {
		return nil, nil
	}
	return incomplete, nil
}

// Policy returns the engine policy in effect.
func (s *PayrollService) Policy() payroll.Policy {
	return s.policy
}

func (s *PayrollService) attendanceByEmployee(ctx context.Context, period payroll.Month) (map[string][]attendance.Attendance, error) {
	records, err := s.attendanceRepo.ListBetween(ctx, period.Start(), period.End())
	if err != nil {
		return nil, err
	}
	byEmployee := make(map[string][]attendance.Attendance)
	for _, rec := range records {
		byEmployee[rec.EmployeeID] = append(byEmployee[rec.EmployeeID], rec)
	}
	return byEmployee, nil
}

// holidaysFor loads the holiday set for a company-month. The calendar
// is optional: any failure degrades to Sunday-only exclusion.
func (s *PayrollService) holidaysFor(ctx context.Context, company string, period payroll.Month) map[string]bool {
	if s.holidayRepo == nil {
		return nil
	}
	list, err := s.holidayRepo.ListBetween(ctx, company, period.Start(), period.End())
	if err != nil {
		slog.Warn("holiday calendar unavailable, using Sunday-only exclusion", "company", company, "month", period.String(), "err", err)
		return nil
	}
	set := make(map[string]bool, len(list))
	for _, h := range list {
		set[h.Date.Format("2006-01-02")] = true
	}
	return set
}

func (s *PayrollService) storedRow(ctx context.Context, employeeID string, period payroll.Month) *payroll.MonthlyPayrollRow {
	row, err := s.payrollRepo.GetRow(ctx, employeeID, period)
	if err != nil {
		return nil
	}
	return &row
}

func amountFor(m map[string]string, employeeID string) *string {
	if m == nil {
		return nil
	}
	v, ok := m[employeeID]
	if !ok {
		return nil
	}
	return &v
}
