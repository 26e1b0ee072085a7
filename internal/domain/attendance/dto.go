package attendance

import (
	"time"

	"github.com/attendly/attendance-gateway/internal/pkg/validator"
)

// ========================================
// FILTER DTOs
// ========================================

// AdminLogsFilter carries the raw query parameters of the admin attendance view.
type AdminLogsFilter struct {
	Search string  `json:"search"`
	From   *string `json:"from,omitempty"` // YYYY-MM-DD
	To     *string `json:"to,omitempty"`   // YYYY-MM-DD
}

func (f *AdminLogsFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.From != nil && *f.From != "" {
		if _, valid := validator.IsValidDate(*f.From); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "from",
				Message: "from must be in YYYY-MM-DD format",
			})
		}
	}

	if f.To != nil && *f.To != "" {
		if _, valid := validator.IsValidDate(*f.To); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "to",
				Message: "to must be in YYYY-MM-DD format",
			})
		}
	}

	if f.From != nil && f.To != nil {
		from, okFrom := validator.IsValidDate(*f.From)
		to, okTo := validator.IsValidDate(*f.To)
		if okFrom && okTo && to.Before(from) {
			errs = append(errs, validator.ValidationError{
				Field:   "to",
				Message: "to must not be before from",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Criteria converts the validated query parameters into filter criteria.
func (f *AdminLogsFilter) Criteria() FilterCriteria {
	c := FilterCriteria{SearchTerm: f.Search}
	if f.From != nil {
		if from, ok := validator.IsValidDate(*f.From); ok {
			c.FromDate = &from
		}
	}
	if f.To != nil {
		if to, ok := validator.IsValidDate(*f.To); ok {
			c.ToDate = &to
		}
	}
	return c
}

// FilterCriteria is the transient filter state of the admin view: a free-text
// search term plus an optional check-in date range, all combined with AND.
type FilterCriteria struct {
	SearchTerm string
	FromDate   *time.Time
	ToDate     *time.Time
}

// ========================================
// SUMMARY DTOs
// ========================================

// MonthlySummary aggregates one employee's logs for the current calendar month.
type MonthlySummary struct {
	TotalDays   int     `json:"total_days"`
	PresentDays int     `json:"present_days"`
	AbsentDays  int     `json:"absent_days"`
	TotalHours  float64 `json:"total_hours"`
}

// TeamSummary aggregates today's team logs.
type TeamSummary struct {
	TotalEmployees int `json:"total_employees"`
	PresentToday   int `json:"present_today"`
	AbsentToday    int `json:"absent_today"`
	LateArrivals   int `json:"late_arrivals"`
}

// Status is the employee's current check-in state, derived from the most
// recent personal log.
type Status string

const (
	StatusCheckedIn  Status = "checked-in"
	StatusCheckedOut Status = "checked-out"
)

// ========================================
// VIEW RESPONSES
// ========================================

type AdminDashboardResponse struct {
	Logs    []AttendanceLog `json:"logs"`
	Total   int             `json:"total"`
	Showing int             `json:"showing"`
}

type EmployeeDashboardResponse struct {
	Status         Status          `json:"status"`
	Logs           []AttendanceLog `json:"logs"`
	TeamLogs       []AttendanceLog `json:"team_logs"`
	MonthlySummary *MonthlySummary `json:"monthly_summary,omitempty"`
	TeamSummary    *TeamSummary    `json:"team_summary,omitempty"`
}

type CalendarDayResponse struct {
	Date string          `json:"date"` // YYYY-MM-DD
	Logs []AttendanceLog `json:"logs"`
}

// ActionResult is the outcome of a check-in or check-out attempt. Success is
// decided by the HTTP outcome of the upstream call, never by inspecting the
// message text.
type ActionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
