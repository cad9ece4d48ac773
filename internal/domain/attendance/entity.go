package attendance

import (
	"strings"
	"time"
)

// Attendance is one day's capture for one employee. At most one record
// exists per (employee, date); site capture flows write it, payroll only
// reads it.
type Attendance struct {
	ID            string
	EmployeeID    string
	Date          time.Time
	Status        string
	CheckIn       *time.Time
	CheckOut      *time.Time
	WorkedMinutes *int
	Remarks       *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined fields
	EmployeeName *string
	Company      *string
}

// DayStatus is the closed variant the engine operates on. Free-form
// status strings from the capture sites are normalized into it once, at
// the read boundary.
type DayStatus int

const (
	StatusUnknown DayStatus = iota
	StatusPresent
	StatusAbsent
	StatusLeave
	StatusHalfDay
	StatusWFH
	StatusOnDuty
)

func (s DayStatus) String() string {
	switch s {
	case StatusPresent:
		return "present"
	case StatusAbsent:
		return "absent"
	case StatusLeave:
		return "leave"
	case StatusHalfDay:
		return "half-day"
	case StatusWFH:
		return "wfh"
	case StatusOnDuty:
		return "on-duty"
	default:
		return "unknown"
	}
}

// leave subtype codes seen in the capture sheets
var leaveCodes = map[string]bool{
	"leave": true, "l": true, "cl": true, "sl": true, "pl": true, "el": true,
}

// NormalizeStatus maps a raw status string to the closed variant. A day
// with punch data but no explicit status counts as worked.
func (a Attendance) NormalizeStatus() DayStatus {
	raw := strings.ToLower(strings.TrimSpace(a.Status))

	switch raw {
	case "present", "p":
		return StatusPresent
	case "absent", "a":
		return StatusAbsent
	case "half", "halfday", "half-day", "half day", "h":
		return StatusHalfDay
	case "wfh", "work from home", "work-from-home":
		return StatusWFH
	case "od", "on duty", "on-duty", "onduty":
		return StatusOnDuty
	}
	if leaveCodes[raw] {
		return StatusLeave
	}
	if raw == "" && a.CheckIn != nil && a.WorkedMinutes != nil && *a.WorkedMinutes > 0 {
		return StatusPresent
	}
	return StatusUnknown
}

// IsLateAfter reports whether the day's check-in is strictly later than
// the given time-of-day threshold.
func (a Attendance) IsLateAfter(hour, minute int) bool {
	if a.CheckIn == nil {
		return false
	}
	in := a.CheckIn
	if in.Hour() > hour {
		return true
	}
	return in.Hour() == hour && in.Minute() > minute
}
