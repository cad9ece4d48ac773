package holiday

import "time"

// Holiday is one organizational non-working date for a company/site.
type Holiday struct {
	ID        string
	Company   string
	Date      time.Time
	Name      string
	CreatedAt time.Time
}
