package attendance

import (
	"context"
)

// LogSource is the upstream attendance API the gateway reads on behalf of the
// caller. Every call forwards the caller's bearer token; the upstream service
// is the authority on what the token may see or do.
type LogSource interface {
	// AdminLogs retrieves all attendance logs (admin scope).
	AdminLogs(ctx context.Context, token string) ([]AttendanceLog, error)

	// MyLogs retrieves the caller's personal logs, most-recent-first.
	MyLogs(ctx context.Context, token string) ([]AttendanceLog, error)

	// TeamLogs retrieves the logs of the caller's team.
	TeamLogs(ctx context.Context, token string) ([]AttendanceLog, error)

	// CheckIn records a check-in for the caller.
	CheckIn(ctx context.Context, token string) error

	// CheckOut records a check-out for the caller.
	CheckOut(ctx context.Context, token string) error
}
