// Package employee_dashboard implements the employee view: personal and team
// log stores, derived summaries and status, check-in/check-out actions,
// calendar slices and CSV export.
package employee_dashboard

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/attendly/attendance-gateway/internal/domain/attendance"
	"github.com/attendly/attendance-gateway/internal/pkg/export"
	"github.com/attendly/attendance-gateway/internal/pkg/logstore"
	"github.com/attendly/attendance-gateway/internal/pkg/upstream"
	"golang.org/x/sync/errgroup"
)

const (
	checkInSuccessMessage   = "Check-in recorded successfully"
	checkOutSuccessMessage  = "Check-out recorded successfully"
	checkInFallbackMessage  = "Failed to check in. Please try again."
	checkOutFallbackMessage = "Failed to check out. Please try again."
)

type EmployeeDashboardServiceImpl struct {
	source   attendance.LogSource
	personal *logstore.Store
	team     *logstore.Store
	now      func() time.Time
}

func NewEmployeeDashboardService(source attendance.LogSource) attendance.EmployeeDashboardService {
	return &EmployeeDashboardServiceImpl{
		source:   source,
		personal: logstore.New(),
		team:     logstore.New(),
		now:      time.Now,
	}
}

// GetDashboard implements attendance.EmployeeDashboardService. The personal
// and team fetches run concurrently with no ordering guarantee; each failing
// fetch degrades only its own half of the view.
func (s *EmployeeDashboardServiceImpl) GetDashboard(ctx context.Context, token string) (attendance.EmployeeDashboardResponse, error) {
	var personal, team []attendance.AttendanceLog

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		personal = s.refetchPersonal(gCtx, token)
		return nil
	})
	g.Go(func() error {
		team = s.refetchTeam(gCtx, token)
		return nil
	})
	// Fetch failures degrade to empty lists inside the refetch helpers, so
	// the group never carries an error.
	_ = g.Wait()

	now := s.now()
	return attendance.EmployeeDashboardResponse{
		Status:         attendance.DeriveStatus(personal),
		Logs:           orEmpty(personal),
		TeamLogs:       orEmpty(team),
		MonthlySummary: attendance.NewMonthlySummary(personal, now),
		TeamSummary:    attendance.NewTeamSummary(team, now),
	}, nil
}

// CheckIn implements attendance.EmployeeDashboardService. The refetch runs
// unconditionally on success so every derived value is recomputed from the
// backend's view of the new state.
func (s *EmployeeDashboardServiceImpl) CheckIn(ctx context.Context, token string) attendance.ActionResult {
	if err := s.source.CheckIn(ctx, token); err != nil {
		slog.Warn("check-in rejected", "error", err)
		return attendance.ActionResult{Success: false, Message: actionMessage(err, checkInFallbackMessage)}
	}

	s.refetchPersonal(ctx, token)
	return attendance.ActionResult{Success: true, Message: checkInSuccessMessage}
}

// CheckOut implements attendance.EmployeeDashboardService.
func (s *EmployeeDashboardServiceImpl) CheckOut(ctx context.Context, token string) attendance.ActionResult {
	if err := s.source.CheckOut(ctx, token); err != nil {
		slog.Warn("check-out rejected", "error", err)
		return attendance.ActionResult{Success: false, Message: actionMessage(err, checkOutFallbackMessage)}
	}

	s.refetchPersonal(ctx, token)
	return attendance.ActionResult{Success: true, Message: checkOutSuccessMessage}
}

// CalendarDay implements attendance.EmployeeDashboardService.
func (s *EmployeeDashboardServiceImpl) CalendarDay(ctx context.Context, token string, day time.Time) []attendance.AttendanceLog {
	logs := s.refetchPersonal(ctx, token)
	return attendance.LogsOn(logs, day)
}

// ExportCSV implements attendance.EmployeeDashboardService.
func (s *EmployeeDashboardServiceImpl) ExportCSV(ctx context.Context, token string) ([]byte, error) {
	logs := s.refetchPersonal(ctx, token)
	return export.MarshalCSV(logs)
}

func (s *EmployeeDashboardServiceImpl) refetchPersonal(ctx context.Context, token string) []attendance.AttendanceLog {
	return refetch(ctx, s.personal, token, s.source.MyLogs, "personal attendance fetch failed")
}

func (s *EmployeeDashboardServiceImpl) refetchTeam(ctx context.Context, token string) []attendance.AttendanceLog {
	return refetch(ctx, s.team, token, s.source.TeamLogs, "team attendance fetch failed")
}

func refetch(ctx context.Context, store *logstore.Store, token string, fetch func(context.Context, string) ([]attendance.AttendanceLog, error), failureMsg string) []attendance.AttendanceLog {
	gen := store.Begin()

	logs, err := fetch(ctx, token)
	if err != nil {
		slog.Warn(failureMsg, "error", err)
		store.Reset(gen)
		return nil
	}

	if !store.Publish(gen, logs) {
		return store.Logs()
	}
	return logs
}

// actionMessage builds the user-facing failure text: the backend's own
// message when it sent one, otherwise the generic fallback.
func actionMessage(err error, fallback string) string {
	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

func orEmpty(logs []attendance.AttendanceLog) []attendance.AttendanceLog {
	if logs == nil {
		return []attendance.AttendanceLog{}
	}
	return logs
}
