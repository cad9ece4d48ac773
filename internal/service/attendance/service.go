package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/agrovista-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/agrovista-hr/payroll-backend-go/internal/domain/employee"
	"github.com/agrovista-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/agrovista-hr/payroll-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

// AttendanceService covers the site capture flows' write path and the
// review reads. The payroll engine consumes the repository directly.
type AttendanceService struct {
	db             *database.DB
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(db *database.DB, attendanceRepo attendance.AttendanceRepository, employeeRepo employee.EmployeeRepository) *AttendanceService {
	return &AttendanceService{
		db:             db,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// Record stores one day's attendance for one employee.
func (s *AttendanceService) Record(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	att := attendance.Attendance{
		ID:            uuid.NewString(),
		EmployeeID:    req.EmployeeID,
		Date:          date,
		Status:        req.Status,
		WorkedMinutes: req.WorkedMinutes,
		Remarks:       req.Remarks,
	}

	var err error
	if att.CheckIn, err = timeOfDayOn(date, req.CheckIn); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if att.CheckOut, err = timeOfDayOn(date, req.CheckOut); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	created, err := s.attendanceRepo.Create(ctx, att)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.ToResponse(created), nil
}

// ListEmployeeMonth returns one employee's records for a month.
func (s *AttendanceService) ListEmployeeMonth(ctx context.Context, employeeID, monthStr string) ([]attendance.AttendanceResponse, error) {
	period, err := payroll.ParseMonth(monthStr)
	if err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListByEmployeeBetween(ctx, employeeID, period.Start(), period.End())
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.ToResponse(rec))
	}
	return responses, nil
}

func timeOfDayOn(date time.Time, hhmm *string) (*time.Time, error) {
	if hhmm == nil || *hhmm == "" {
		return nil, nil
	}
	parsed, err := time.Parse("15:04", *hhmm)
	if err != nil {
		return nil, fmt.Errorf("invalid time of day %q: %w", *hhmm, err)
	}
	t := time.Date(date.Year(), date.Month(), date.Day(), parsed.Hour(), parsed.Minute(), 0, 0, time.UTC)
	return &t, nil
}
