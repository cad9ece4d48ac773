package holiday

import (
	"context"
	"time"
)

// HolidayRepository is an optional collaborator: the aggregator degrades
// to Sunday-only late exclusion when it is absent or returns no rows.
type HolidayRepository interface {
	Create(ctx context.Context, h Holiday) (Holiday, error)
	ListBetween(ctx context.Context, company string, from, to time.Time) ([]Holiday, error)
}
