package attendance

import (
	"time"
)

// LogUser is the user reference embedded in an attendance log. The upstream
// API may omit it entirely, in which case EmployeeID on the log is the only
// way to identify the owner.
type LogUser struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

// AttendanceLog is one attendance event for one user on one day, as served
// by the upstream attendance API. The gateway holds a read-only, possibly
// stale copy; the upstream service owns the record.
type AttendanceLog struct {
	ID         string     `json:"_id"`
	User       *LogUser   `json:"user,omitempty"`
	EmployeeID string     `json:"employeeId,omitempty"`
	CheckIn    *time.Time `json:"checkIn"`
	CheckOut   *time.Time `json:"checkOut"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// employeeKey identifies the employee a log belongs to, preferring the user
// reference and falling back to the bare employee id.
func (l AttendanceLog) employeeKey() string {
	if l.User != nil && l.User.ID != "" {
		return l.User.ID
	}
	return l.EmployeeID
}

// referenceTime is the timestamp a log is bucketed by: check-in when present,
// otherwise creation time.
func (l AttendanceLog) referenceTime() time.Time {
	if l.CheckIn != nil {
		return *l.CheckIn
	}
	return l.CreatedAt
}
