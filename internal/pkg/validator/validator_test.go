package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidMonth(t *testing.T) {
	assert.True(t, IsValidMonth("2025-08"))
	assert.True(t, IsValidMonth("2024-02"))
	assert.False(t, IsValidMonth("2025-13"))
	assert.False(t, IsValidMonth("2025-8"))
	assert.False(t, IsValidMonth("08-2025"))
	assert.False(t, IsValidMonth(""))
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2025-08-31")
	assert.True(t, ok)
	_, ok = IsValidDate("2025-02-30")
	assert.False(t, ok)
	_, ok = IsValidDate("31-08-2025")
	assert.False(t, ok)
}

func TestIsValidTimeOfDay(t *testing.T) {
	parsed, ok := IsValidTimeOfDay("10:15")
	assert.True(t, ok)
	assert.Equal(t, 10, parsed.Hour())
	assert.Equal(t, 15, parsed.Minute())

	_, ok = IsValidTimeOfDay("25:00")
	assert.False(t, ok)
	_, ok = IsValidTimeOfDay("1015")
	assert.False(t, ok)
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "month", Message: "is required"},
		{Field: "employee_id", Message: "is required"},
	}
	m := errs.ToMap()
	assert.Equal(t, "is required", m["month"])
	assert.Equal(t, "is required", m["employee_id"])
	assert.Contains(t, errs.Error(), "month: is required")
}
