package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(value string) *time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return &t
}

func sampleLogs() []AttendanceLog {
	return []AttendanceLog{
		{ID: "a", User: &LogUser{ID: "u1", Username: "Alice"}, CheckIn: ts("2024-03-01T08:00:00Z"), CheckOut: ts("2024-03-01T16:00:00Z"), CreatedAt: *ts("2024-03-01T08:00:00Z")},
		{ID: "b", User: &LogUser{ID: "u2", Username: "bob"}, CheckIn: ts("2024-03-02T10:30:00Z"), CreatedAt: *ts("2024-03-02T10:30:00Z")},
		{ID: "c", CheckIn: ts("2024-03-03T09:00:00Z"), EmployeeID: "e3", CreatedAt: *ts("2024-03-03T09:00:00Z")},
		{ID: "d", User: &LogUser{ID: "u4", Username: "malice"}, CreatedAt: *ts("2024-03-04T08:00:00Z")},
	}
}

// ========================================
// Filter
// ========================================

func TestFilter_EmptyCriteriaIsIdentity(t *testing.T) {
	logs := sampleLogs()
	got := Filter(logs, FilterCriteria{})
	assert.Equal(t, logs, got)
}

func TestFilter_Idempotent(t *testing.T) {
	logs := sampleLogs()
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	criteria := FilterCriteria{SearchTerm: "li", FromDate: &from}

	once := Filter(logs, criteria)
	twice := Filter(once, criteria)
	assert.Equal(t, once, twice)
}

func TestFilter_SearchByUsernameCaseInsensitive(t *testing.T) {
	got := Filter(sampleLogs(), FilterCriteria{SearchTerm: "ALICE"})

	// "Alice" and "malice" both contain the term; relative order is kept.
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "d", got[1].ID)
}

func TestFilter_SearchTermTrimmed(t *testing.T) {
	logs := sampleLogs()
	got := Filter(logs, FilterCriteria{SearchTerm: "   "})
	assert.Equal(t, logs, got)
}

func TestFilter_SearchByCheckInDate(t *testing.T) {
	// Check-in dates render as M/D/YYYY for matching.
	got := Filter(sampleLogs(), FilterCriteria{SearchTerm: "3/2/2024"})

	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)
}

func TestFilter_MissingUserStillMatchesByDate(t *testing.T) {
	got := Filter(sampleLogs(), FilterCriteria{SearchTerm: "3/3/2024"})

	require.Len(t, got, 1)
	assert.Equal(t, "c", got[0].ID)
}

func TestFilter_MissingCheckInStillMatchesByUsername(t *testing.T) {
	got := Filter(sampleLogs(), FilterCriteria{SearchTerm: "malice"})

	require.Len(t, got, 1)
	assert.Equal(t, "d", got[0].ID)
}

func TestFilter_DateRangeInclusive(t *testing.T) {
	from := time.Date(2024, 3, 2, 10, 30, 0, 0, time.UTC)
	to := time.Date(2024, 3, 3, 9, 0, 0, 0, time.UTC)
	got := Filter(sampleLogs(), FilterCriteria{FromDate: &from, ToDate: &to})

	// Boundary check-ins are kept on both ends; the log without a check-in
	// is excluded once a date bound is set.
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
}

func TestFilter_FiltersCompose(t *testing.T) {
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 1, 23, 59, 59, 0, time.UTC)
	got := Filter(sampleLogs(), FilterCriteria{SearchTerm: "li", FromDate: &from, ToDate: &to})

	// "li" matches Alice and malice, but only Alice checked in on 3/1.
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}

func TestFilter_EmptyInput(t *testing.T) {
	got := Filter(nil, FilterCriteria{SearchTerm: "alice"})
	assert.Empty(t, got)
}

// ========================================
// MonthlySummary
// ========================================

func TestNewMonthlySummary_NilOnEmptyInput(t *testing.T) {
	assert.Nil(t, NewMonthlySummary(nil, time.Now()))
	assert.Nil(t, NewMonthlySummary([]AttendanceLog{}, time.Now()))
}

func TestNewMonthlySummary_FullDay(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	logs := []AttendanceLog{
		{CheckIn: ts("2024-03-01T08:00:00Z"), CheckOut: ts("2024-03-01T16:00:00Z"), CreatedAt: *ts("2024-03-01T08:00:00Z")},
	}

	s := NewMonthlySummary(logs, now)
	require.NotNil(t, s)
	assert.Equal(t, 1, s.TotalDays)
	assert.Equal(t, 1, s.PresentDays)
	assert.Equal(t, 0, s.AbsentDays)
	assert.Equal(t, 8.00, s.TotalHours)
}

func TestNewMonthlySummary_MissingCheckOutContributesNoHours(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	logs := []AttendanceLog{
		{CheckIn: ts("2024-03-05T10:15:00Z"), CreatedAt: *ts("2024-03-05T10:15:00Z")},
	}

	s := NewMonthlySummary(logs, now)
	require.NotNil(t, s)
	assert.Equal(t, 1, s.PresentDays)
	assert.Equal(t, 0.00, s.TotalHours)
}

func TestNewMonthlySummary_RestrictsToCurrentMonth(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	logs := []AttendanceLog{
		{CheckIn: ts("2024-03-01T08:00:00Z"), CheckOut: ts("2024-03-01T16:00:00Z"), CreatedAt: *ts("2024-03-01T08:00:00Z")},
		{CheckIn: ts("2024-02-28T08:00:00Z"), CheckOut: ts("2024-02-28T16:00:00Z"), CreatedAt: *ts("2024-02-28T08:00:00Z")},
		{CheckIn: ts("2023-03-01T08:00:00Z"), CheckOut: ts("2023-03-01T16:00:00Z"), CreatedAt: *ts("2023-03-01T08:00:00Z")},
	}

	s := NewMonthlySummary(logs, now)
	require.NotNil(t, s)
	assert.Equal(t, 1, s.TotalDays)
	assert.Equal(t, 8.00, s.TotalHours)
}

func TestNewMonthlySummary_FallsBackToCreatedAt(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	logs := []AttendanceLog{
		{CreatedAt: *ts("2024-03-04T08:00:00Z")}, // no check-in at all
	}

	s := NewMonthlySummary(logs, now)
	require.NotNil(t, s)
	assert.Equal(t, 1, s.TotalDays)
	assert.Equal(t, 0, s.PresentDays)
	assert.Equal(t, 1, s.AbsentDays)
}

func TestNewMonthlySummary_CountsAlwaysBalance(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	s := NewMonthlySummary(sampleLogs(), now)
	require.NotNil(t, s)
	assert.Equal(t, s.TotalDays, s.PresentDays+s.AbsentDays)
}

func TestNewMonthlySummary_HoursRoundedToTwoDecimals(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	logs := []AttendanceLog{
		// 7h50m = 7.8333... hours
		{CheckIn: ts("2024-03-01T08:10:00Z"), CheckOut: ts("2024-03-01T16:00:00Z"), CreatedAt: *ts("2024-03-01T08:10:00Z")},
	}

	s := NewMonthlySummary(logs, now)
	require.NotNil(t, s)
	assert.Equal(t, 7.83, s.TotalHours)
}

// ========================================
// TeamSummary
// ========================================

func TestNewTeamSummary_NilOnEmptyInput(t *testing.T) {
	assert.Nil(t, NewTeamSummary(nil, time.Now()))
}

func TestNewTeamSummary_PresentAndAbsent(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	logs := []AttendanceLog{
		{User: &LogUser{ID: "u1", Username: "alice"}, CheckIn: ts("2024-03-10T08:00:00Z"), CreatedAt: *ts("2024-03-10T08:00:00Z")},
		{User: &LogUser{ID: "u2", Username: "bob"}, CreatedAt: *ts("2024-03-10T00:00:00Z")},
	}

	s := NewTeamSummary(logs, now)
	require.NotNil(t, s)
	assert.Equal(t, 2, s.TotalEmployees)
	assert.Equal(t, 1, s.PresentToday)
	assert.Equal(t, 1, s.AbsentToday)
	assert.Equal(t, 0, s.LateArrivals)
}

func TestNewTeamSummary_LateArrival(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	logs := []AttendanceLog{
		{User: &LogUser{ID: "u1", Username: "alice"}, CheckIn: ts("2024-03-10T10:30:00Z"), CreatedAt: *ts("2024-03-10T10:30:00Z")},
	}

	s := NewTeamSummary(logs, now)
	require.NotNil(t, s)
	assert.Equal(t, 1, s.LateArrivals)
}

func TestNewTeamSummary_NineOClockIsNotLate(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	logs := []AttendanceLog{
		{User: &LogUser{ID: "u1", Username: "alice"}, CheckIn: ts("2024-03-10T09:59:00Z"), CreatedAt: *ts("2024-03-10T09:59:00Z")},
	}

	// Hour 9 is on time regardless of minutes; only hour 10 onward is late.
	s := NewTeamSummary(logs, now)
	require.NotNil(t, s)
	assert.Equal(t, 0, s.LateArrivals)
}

func TestNewTeamSummary_EmployeeIDFallback(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	logs := []AttendanceLog{
		{User: &LogUser{ID: "u1", Username: "alice"}, CheckIn: ts("2024-03-10T08:00:00Z"), CreatedAt: *ts("2024-03-10T08:00:00Z")},
		{EmployeeID: "e2", CheckIn: ts("2024-03-09T08:00:00Z"), CreatedAt: *ts("2024-03-09T08:00:00Z")},
		{EmployeeID: "e2", CheckIn: ts("2024-03-08T08:00:00Z"), CreatedAt: *ts("2024-03-08T08:00:00Z")},
	}

	s := NewTeamSummary(logs, now)
	require.NotNil(t, s)
	assert.Equal(t, 2, s.TotalEmployees)
}

func TestNewTeamSummary_DuplicateCheckInsDoubleCount(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	logs := []AttendanceLog{
		{User: &LogUser{ID: "u1", Username: "alice"}, CheckIn: ts("2024-03-10T08:00:00Z"), CreatedAt: *ts("2024-03-10T08:00:00Z")},
		{User: &LogUser{ID: "u1", Username: "alice"}, CheckIn: ts("2024-03-10T13:00:00Z"), CreatedAt: *ts("2024-03-10T13:00:00Z")},
	}

	// One employee, two logs today: PresentToday counts both and
	// AbsentToday goes negative.
	s := NewTeamSummary(logs, now)
	require.NotNil(t, s)
	assert.Equal(t, 1, s.TotalEmployees)
	assert.Equal(t, 2, s.PresentToday)
	assert.Equal(t, -1, s.AbsentToday)
}

// ========================================
// DeriveStatus
// ========================================

func TestDeriveStatus(t *testing.T) {
	cases := []struct {
		name string
		logs []AttendanceLog
		want Status
	}{
		{"empty history", nil, StatusCheckedOut},
		{"open session", []AttendanceLog{
			{CheckIn: ts("2024-03-10T08:00:00Z")},
			{CheckIn: ts("2024-03-09T08:00:00Z"), CheckOut: ts("2024-03-09T16:00:00Z")},
		}, StatusCheckedIn},
		{"closed session", []AttendanceLog{
			{CheckIn: ts("2024-03-10T08:00:00Z"), CheckOut: ts("2024-03-10T16:00:00Z")},
		}, StatusCheckedOut},
		{"latest log never checked in", []AttendanceLog{
			{CreatedAt: *ts("2024-03-10T08:00:00Z")},
			{CheckIn: ts("2024-03-09T08:00:00Z")},
		}, StatusCheckedOut},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, DeriveStatus(c.logs))
		})
	}
}

// ========================================
// LogsOn
// ========================================

func TestLogsOn(t *testing.T) {
	logs := sampleLogs()
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	got := LogsOn(logs, day)

	// Log "d" has no check-in; its creation date places it on 3/4.
	require.Len(t, got, 1)
	assert.Equal(t, "d", got[0].ID)
}

func TestLogsOn_NoMatches(t *testing.T) {
	got := LogsOn(sampleLogs(), time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
