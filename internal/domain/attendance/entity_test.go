package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStatus(t *testing.T) {
	cases := []struct {
		raw  string
		want DayStatus
	}{
		{"Present", StatusPresent},
		{"p", StatusPresent},
		{" P ", StatusPresent},
		{"Absent", StatusAbsent},
		{"a", StatusAbsent},
		{"Leave", StatusLeave},
		{"CL", StatusLeave},
		{"sl", StatusLeave},
		{"PL", StatusLeave},
		{"el", StatusLeave},
		{"l", StatusLeave},
		{"half", StatusHalfDay},
		{"Half Day", StatusHalfDay},
		{"half-day", StatusHalfDay},
		{"H", StatusHalfDay},
		{"WFH", StatusWFH},
		{"work from home", StatusWFH},
		{"OD", StatusOnDuty},
		{"on duty", StatusOnDuty},
		{"", StatusUnknown},
		{"vacation", StatusUnknown},
	}

	for _, tc := range cases {
		got := Attendance{Status: tc.raw}.NormalizeStatus()
		assert.Equal(t, tc.want, got, "raw %q", tc.raw)
	}
}

func TestNormalizeStatusPunchDataFallback(t *testing.T) {
	in := time.Date(2025, time.June, 2, 9, 5, 0, 0, time.UTC)
	minutes := 465

	att := Attendance{CheckIn: &in, WorkedMinutes: &minutes}
	assert.Equal(t, StatusPresent, att.NormalizeStatus())

	// punch data never overrides an explicit status
	att.Status = "absent"
	assert.Equal(t, StatusAbsent, att.NormalizeStatus())

	// zero worked minutes is not a worked day
	zero := 0
	att = Attendance{CheckIn: &in, WorkedMinutes: &zero}
	assert.Equal(t, StatusUnknown, att.NormalizeStatus())
}

func TestIsLateAfter(t *testing.T) {
	at := func(hour, minute int) Attendance {
		in := time.Date(2025, time.June, 2, hour, minute, 0, 0, time.UTC)
		return Attendance{CheckIn: &in}
	}

	assert.False(t, at(10, 14).IsLateAfter(10, 15))
	assert.False(t, at(10, 15).IsLateAfter(10, 15))
	assert.True(t, at(10, 16).IsLateAfter(10, 15))
	assert.True(t, at(11, 0).IsLateAfter(10, 15))
	assert.False(t, at(9, 59).IsLateAfter(10, 15))

	// no check-in means no basis to call it late
	assert.False(t, Attendance{}.IsLateAfter(10, 15))
}
