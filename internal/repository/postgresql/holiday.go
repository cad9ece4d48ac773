package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/agrovista-hr/payroll-backend-go/internal/domain/holiday"
	"github.com/agrovista-hr/payroll-backend-go/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepository{db: db}
}

func (r *holidayRepository) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holidays (id, company, date, name)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (company, date) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, h.ID, h.Company, h.Date, h.Name).Scan(&h.ID, &h.CreatedAt)
	if err != nil {
		return holiday.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}
	return h, nil
}

func (r *holidayRepository) ListBetween(ctx context.Context, company string, from, to time.Time) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company, date, name, created_at
		FROM holidays
		WHERE company = $1 AND date >= $2 AND date < $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, company, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		var h holiday.Holiday
		if err := rows.Scan(&h.ID, &h.Company, &h.Date, &h.Name, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}
	return holidays, nil
}
