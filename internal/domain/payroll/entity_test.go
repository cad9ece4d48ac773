package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonth(t *testing.T) {
	m, err := ParseMonth("2025-06")
	require.NoError(t, err)
	assert.Equal(t, 2025, m.Year)
	assert.Equal(t, time.June, m.Month)
	assert.Equal(t, "2025-06", m.String())
}

func TestParseMonthInvalid(t *testing.T) {
	for _, input := range []string{"", "2025", "2025-13", "06-2025", "2025-06-01", "junk"} {
		_, err := ParseMonth(input)
		assert.ErrorIs(t, err, ErrInvalidMonth, "input %q", input)
	}
}

func TestMonthBounds(t *testing.T) {
	m := Month{Year: 2025, Month: time.June}
	assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), m.Start())
	assert.Equal(t, time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC), m.End())
	assert.Equal(t, 30, m.Days())
}

func TestMonthDaysFebruary(t *testing.T) {
	assert.Equal(t, 28, Month{Year: 2025, Month: time.February}.Days())
	assert.Equal(t, 29, Month{Year: 2024, Month: time.February}.Days())
	assert.Equal(t, 31, Month{Year: 2025, Month: time.July}.Days())
}

func TestPolicyRequiredDays(t *testing.T) {
	policy := DefaultPolicy()
	feb := Month{Year: 2025, Month: time.February}

	assert.Equal(t, 30, policy.RequiredDays(feb))

	policy.RequiredDaysMode = RequiredDaysCalendar
	assert.Equal(t, 28, policy.RequiredDays(feb))
}
