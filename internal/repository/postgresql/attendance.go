package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/agrovista-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/agrovista-hr/payroll-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (
			id, employee_id, date, status, check_in, check_out, worked_minutes, remarks
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.ID, att.EmployeeID, att.Date, att.Status,
		att.CheckIn, att.CheckOut, att.WorkedMinutes, att.Remarks,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "uk_attendances_employee_date") {
			return attendance.Attendance{}, attendance.ErrDuplicateDate
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}
	return att, nil
}

func (r *attendanceRepository) ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, status, check_in, check_out, worked_minutes, remarks,
			   created_at, updated_at
		FROM attendances
		WHERE employee_id = $1 AND date >= $2 AND date < $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		if err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date, &att.Status,
			&att.CheckIn, &att.CheckOut, &att.WorkedMinutes, &att.Remarks,
			&att.CreatedAt, &att.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}
	return records, nil
}

func (r *attendanceRepository) ListBetween(ctx context.Context, from, to time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.status, a.check_in, a.check_out,
			   a.worked_minutes, a.remarks, a.created_at, a.updated_at,
			   e.full_name, e.company
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.date >= $1 AND a.date < $2
		ORDER BY a.employee_id, a.date
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		if err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date, &att.Status,
			&att.CheckIn, &att.CheckOut, &att.WorkedMinutes, &att.Remarks,
			&att.CreatedAt, &att.UpdatedAt,
			&att.EmployeeName, &att.Company,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}
	return records, nil
}
