package payroll

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/agrovista-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/agrovista-hr/payroll-backend-go/internal/domain/employee"
	"github.com/agrovista-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
	order     []string
	failCAS   map[string]bool
}

func newFakeEmployeeRepo(emps ...employee.Employee) *fakeEmployeeRepo {
	f := &fakeEmployeeRepo{
		employees: make(map[string]employee.Employee),
		failCAS:   make(map[string]bool),
	}
	for _, emp := range emps {
		f.employees[emp.ID] = emp
		f.order = append(f.order, emp.ID)
	}
	return f
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees[emp.ID] = emp
	f.order = append(f.order, emp.ID)
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) ListActive(context.Context) ([]employee.Employee, error) {
	var active []employee.Employee
	for _, id := range f.order {
		emp := f.employees[id]
		if emp.EmploymentStatus == employee.EmploymentStatusActive {
			active = append(active, emp)
		}
	}
	return active, nil
}

func (f *fakeEmployeeRepo) UpdateCarryForward(_ context.Context, id string, balance float64, expectedVersion int) error {
	if f.failCAS[id] {
		return employee.ErrCarryForwardConflict
	}
	emp, ok := f.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	if emp.CarryForwardVersion != expectedVersion {
		return employee.ErrCarryForwardConflict
	}
	emp.CarryForwardBalance = balance
	emp.CarryForwardVersion++
	f.employees[id] = emp
	return nil
}

func (f *fakeEmployeeRepo) snapshot() map[string]employee.Employee {
	snap := make(map[string]employee.Employee, len(f.employees))
	for id, emp := range f.employees {
		snap[id] = emp
	}
	return snap
}

func (f *fakeEmployeeRepo) restore(snap map[string]employee.Employee) {
	f.employees = snap
}

type fakePayrollRepo struct {
	rows map[string]payroll.MonthlyPayrollRow
}

func newFakePayrollRepo() *fakePayrollRepo {
	return &fakePayrollRepo{rows: make(map[string]payroll.MonthlyPayrollRow)}
}

func rowKey(employeeID string, period payroll.Month) string {
	return employeeID + "|" + period.String()
}

func (f *fakePayrollRepo) UpsertRow(_ context.Context, row payroll.MonthlyPayrollRow) (payroll.MonthlyPayrollRow, error) {
	key := rowKey(row.EmployeeID, row.Period())
	if prior, ok := f.rows[key]; ok {
		row.ID = prior.ID
		row.CreatedAt = prior.CreatedAt
	} else {
		row.ID = fmt.Sprintf("row-%d", len(f.rows)+1)
		row.CreatedAt = time.Now().UTC()
	}
	row.UpdatedAt = time.Now().UTC()
	f.rows[key] = row
	return row, nil
}

func (f *fakePayrollRepo) GetRow(_ context.Context, employeeID string, period payroll.Month) (payroll.MonthlyPayrollRow, error) {
	row, ok := f.rows[rowKey(employeeID, period)]
	if !ok {
		return payroll.MonthlyPayrollRow{}, payroll.ErrPayrollRowNotFound
	}
	return row, nil
}

func (f *fakePayrollRepo) ListRows(_ context.Context, period payroll.Month) ([]payroll.MonthlyPayrollRow, error) {
	var result []payroll.MonthlyPayrollRow
	for _, row := range f.rows {
		if row.Period() == period {
			result = append(result, row)
		}
	}
	return result, nil
}

func (f *fakePayrollRepo) snapshot() map[string]payroll.MonthlyPayrollRow {
	snap := make(map[string]payroll.MonthlyPayrollRow, len(f.rows))
	for key, row := range f.rows {
		snap[key] = row
	}
	return snap
}

func (f *fakePayrollRepo) restore(snap map[string]payroll.MonthlyPayrollRow) {
	f.rows = snap
}

type fakeAttendanceRepo struct {
	records []attendance.Attendance
}

func (f *fakeAttendanceRepo) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	f.records = append(f.records, att)
	return att, nil
}

func (f *fakeAttendanceRepo) ListByEmployeeBetween(_ context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	var result []attendance.Attendance
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID && !rec.Date.Before(from) && rec.Date.Before(to) {
			result = append(result, rec)
		}
	}
	return result, nil
}

func (f *fakeAttendanceRepo) ListBetween(_ context.Context, from, to time.Time) ([]attendance.Attendance, error) {
	var result []attendance.Attendance
	for _, rec := range f.records {
		if !rec.Date.Before(from) && rec.Date.Before(to) {
			result = append(result, rec)
		}
	}
	return result, nil
}

// submitTestService wires the service against in-memory repositories
// with an all-or-nothing transaction boundary: any error inside the
// callback restores both stores to their pre-transaction state.
func submitTestService(empRepo *fakeEmployeeRepo, attRepo *fakeAttendanceRepo, payRepo *fakePayrollRepo) *PayrollService {
	svc := NewPayrollService(nil, payRepo, empRepo, attRepo, nil, payroll.DefaultPolicy())
	svc.withTx = func(ctx context.Context, fn func(tx pgx.Tx) error) error {
		empSnap := empRepo.snapshot()
		paySnap := payRepo.snapshot()
		if err := fn(nil); err != nil {
			empRepo.restore(empSnap)
			payRepo.restore(paySnap)
			return err
		}
		return nil
	}
	return svc
}

func activeEmployee(id, code string, carryForward float64) employee.Employee {
	return employee.Employee{
		ID:                  id,
		Code:                code,
		FullName:            "Worker " + code,
		Designation:         "Field Staff",
		Company:             employee.CompanyTandur,
		GrossSalary:         decimal.NewFromInt(30000),
		CarryForwardBalance: carryForward,
		EmploymentStatus:    employee.EmploymentStatusActive,
	}
}

func monthFor(employeeID string, days int) []attendance.Attendance {
	records := make([]attendance.Attendance, 0, days)
	for d := 1; d <= days; d++ {
		rec := record(d, "P", "09:00", 480)
		rec.EmployeeID = employeeID
		records = append(records, rec)
	}
	return records
}

func TestSubmitMonthRejectsIncompleteBatch(t *testing.T) {
	ctx := context.Background()
	empRepo := newFakeEmployeeRepo(
		activeEmployee("emp-a", "TAN-001", 0),
		activeEmployee("emp-b", "TAN-002", 0),
	)
	attRepo := &fakeAttendanceRepo{}
	attRepo.records = append(attRepo.records, monthFor("emp-a", 30)...)
	attRepo.records = append(attRepo.records, monthFor("emp-b", 27)...)
	payRepo := newFakePayrollRepo()
	svc := submitTestService(empRepo, attRepo, payRepo)

	_, err := svc.SubmitMonth(ctx, payroll.SubmitPayrollRequest{Month: "2025-06"})

	require.Error(t, err)
	assert.ErrorIs(t, err, payroll.ErrDataIncomplete)

	var incomplete *payroll.IncompleteDataError
	require.ErrorAs(t, err, &incomplete)
	assert.Equal(t, []string{"emp-b"}, incomplete.EmployeeIDs)
	assert.Equal(t, 3, incomplete.MissingDays["emp-b"])

	// no partial commit: the complete employee is not written either
	assert.Empty(t, payRepo.rows)
	stored, _ := empRepo.GetByID(ctx, "emp-a")
	assert.Equal(t, 0, stored.CarryForwardVersion)
}

func TestSubmitMonthCommitsAndRoundTripsCarryForward(t *testing.T) {
	ctx := context.Background()
	empRepo := newFakeEmployeeRepo(activeEmployee("emp-a", "TAN-001", 1.5))
	records := monthFor("emp-a", 30)
	records[25].Status = "leave"
	records[26].Status = "cl"
	attRepo := &fakeAttendanceRepo{records: records}
	payRepo := newFakePayrollRepo()
	svc := submitTestService(empRepo, attRepo, payRepo)

	resp, err := svc.SubmitMonth(ctx, payroll.SubmitPayrollRequest{Month: "2025-06", SubmittedBy: "hr-1"})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Committed)

	row, err := svc.GetRow(ctx, "emp-a", "2025-06")
	require.NoError(t, err)
	assert.Equal(t, payroll.PayrollStatusSubmitted, row.Status)
	require.NotNil(t, row.SubmittedBy)
	assert.Equal(t, "hr-1", *row.SubmittedBy)
	// prior 1.5 + entitlement 2 - 2 leaves consumed
	assert.Equal(t, 1.5, row.CarryForwardRemaining)
	assert.True(t, row.NetSalary.Equal(decimal.NewFromInt(30000)), "net %s", row.NetSalary)

	// the ledger write reads back from the directory
	stored, err := empRepo.GetByID(ctx, "emp-a")
	require.NoError(t, err)
	assert.Equal(t, row.CarryForwardRemaining, stored.CarryForwardBalance)
	assert.Equal(t, 1, stored.CarryForwardVersion)

	// a later preview returns the finalized figures, not a recompute
	preview, err := svc.PreviewEmployeeMonth(ctx, "emp-a", "2025-06")
	require.NoError(t, err)
	assert.Equal(t, payroll.PayrollStatusSubmitted, preview.Status)
	assert.Equal(t, row.WorkingDays, preview.WorkingDays)
	assert.True(t, preview.NetSalary.Equal(row.NetSalary))
}

func TestSubmitMonthConflictRollsBackWholeBatch(t *testing.T) {
	ctx := context.Background()
	empRepo := newFakeEmployeeRepo(
		activeEmployee("emp-a", "TAN-001", 0),
		activeEmployee("emp-b", "TAN-002", 0),
	)
	empRepo.failCAS["emp-b"] = true
	attRepo := &fakeAttendanceRepo{}
	attRepo.records = append(attRepo.records, monthFor("emp-a", 30)...)
	attRepo.records = append(attRepo.records, monthFor("emp-b", 30)...)
	payRepo := newFakePayrollRepo()
	svc := submitTestService(empRepo, attRepo, payRepo)

	_, err := svc.SubmitMonth(ctx, payroll.SubmitPayrollRequest{Month: "2025-06"})

	assert.ErrorIs(t, err, payroll.ErrFinalizeConflict)

	// emp-a committed before the conflict but the transaction undoes it
	assert.Empty(t, payRepo.rows)
	stored, _ := empRepo.GetByID(ctx, "emp-a")
	assert.Equal(t, 0, stored.CarryForwardVersion)
	assert.Equal(t, 0.0, stored.CarryForwardBalance)
}

func TestSubmitMonthSkipsEmployeesWithoutIdentity(t *testing.T) {
	ctx := context.Background()
	empRepo := newFakeEmployeeRepo(
		activeEmployee("emp-a", "TAN-001", 0),
		activeEmployee("", "TAN-999", 0), // bad directory import
	)
	attRepo := &fakeAttendanceRepo{records: monthFor("emp-a", 30)}
	payRepo := newFakePayrollRepo()
	svc := submitTestService(empRepo, attRepo, payRepo)

	resp, err := svc.SubmitMonth(ctx, payroll.SubmitPayrollRequest{Month: "2025-06"})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Committed)
	assert.Len(t, payRepo.rows, 1)
}

func TestSubmitMonthNoEmployees(t *testing.T) {
	svc := submitTestService(newFakeEmployeeRepo(), &fakeAttendanceRepo{}, newFakePayrollRepo())

	_, err := svc.SubmitMonth(context.Background(), payroll.SubmitPayrollRequest{Month: "2025-06"})
	assert.ErrorIs(t, err, payroll.ErrNoEmployees)
}

func TestSubmitMonthResubmissionOverwrites(t *testing.T) {
	ctx := context.Background()
	empRepo := newFakeEmployeeRepo(activeEmployee("emp-a", "TAN-001", 0))
	attRepo := &fakeAttendanceRepo{records: monthFor("emp-a", 30)}
	payRepo := newFakePayrollRepo()
	svc := submitTestService(empRepo, attRepo, payRepo)

	_, err := svc.SubmitMonth(ctx, payroll.SubmitPayrollRequest{Month: "2025-06"})
	require.NoError(t, err)

	// attendance correction after the first close
	attRepo.records[10].Status = "A"

	resp, err := svc.SubmitMonth(ctx, payroll.SubmitPayrollRequest{Month: "2025-06"})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Committed)
	assert.Len(t, payRepo.rows, 1)

	row, err := svc.GetRow(ctx, "emp-a", "2025-06")
	require.NoError(t, err)
	assert.Equal(t, 29.0, row.WorkingDays)
	assert.Equal(t, 1.0, row.AbsentDays)
}
