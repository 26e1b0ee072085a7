// Package dashboard implements the admin attendance view: one log store fed
// from the upstream API, with filtering applied on every read.
package dashboard

import (
	"context"
	"log/slog"

	"github.com/attendly/attendance-gateway/internal/domain/attendance"
	"github.com/attendly/attendance-gateway/internal/pkg/logstore"
)

type AdminDashboardServiceImpl struct {
	source attendance.LogSource
	store  *logstore.Store
}

func NewAdminDashboardService(source attendance.LogSource) attendance.AdminDashboardService {
	return &AdminDashboardServiceImpl{
		source: source,
		store:  logstore.New(),
	}
}

// GetDashboard implements attendance.AdminDashboardService. A failed fetch
// resets the store and renders an empty view; fetch errors are logged, never
// surfaced to the caller.
func (s *AdminDashboardServiceImpl) GetDashboard(ctx context.Context, token string, criteria attendance.FilterCriteria) (attendance.AdminDashboardResponse, error) {
	logs := s.refetch(ctx, token)

	filtered := attendance.Filter(logs, criteria)
	if filtered == nil {
		filtered = []attendance.AttendanceLog{}
	}

	return attendance.AdminDashboardResponse{
		Logs:    filtered,
		Total:   len(logs),
		Showing: len(filtered),
	}, nil
}

func (s *AdminDashboardServiceImpl) refetch(ctx context.Context, token string) []attendance.AttendanceLog {
	gen := s.store.Begin()

	logs, err := s.source.AdminLogs(ctx, token)
	if err != nil {
		slog.Warn("admin attendance fetch failed", "error", err)
		s.store.Reset(gen)
		return nil
	}

	if !s.store.Publish(gen, logs) {
		// A newer fetch won the race; serve its result instead.
		return s.store.Logs()
	}
	return logs
}
