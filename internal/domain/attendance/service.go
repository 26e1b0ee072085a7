package attendance

import (
	"context"
	"time"
)

// AdminDashboardService backs the admin attendance view.
type AdminDashboardService interface {
	// GetDashboard fetches all logs and applies the view's filter criteria.
	// A failed fetch degrades to an empty log list, never an error.
	GetDashboard(ctx context.Context, token string, criteria FilterCriteria) (AdminDashboardResponse, error)
}

// EmployeeDashboardService backs the employee view: personal and team logs,
// derived summaries, check-in/check-out actions, calendar slices and export.
type EmployeeDashboardService interface {
	// GetDashboard fetches personal and team logs concurrently and derives
	// status plus both summaries. Either fetch failing degrades that half of
	// the view to empty/none.
	GetDashboard(ctx context.Context, token string) (EmployeeDashboardResponse, error)

	// CheckIn records a check-in upstream, then refetches the personal logs.
	CheckIn(ctx context.Context, token string) ActionResult

	// CheckOut records a check-out upstream, then refetches the personal logs.
	CheckOut(ctx context.Context, token string) ActionResult

	// CalendarDay returns the personal logs for the selected calendar date.
	CalendarDay(ctx context.Context, token string, day time.Time) []AttendanceLog

	// ExportCSV serializes the current personal log list as CSV.
	ExportCSV(ctx context.Context, token string) ([]byte, error)
}
