package attendance

import (
	"math"
	"strings"
	"time"
)

// Arrivals after this local hour count as late. Fixed by the team summary card.
const lateHourThreshold = 9

// searchDateLayout is the M/D/YYYY form the admin search box matches check-in
// dates against.
const searchDateLayout = "1/2/2006"

// Filter narrows logs by the admin view's criteria: free-text search on
// username or check-in date, then an inclusive check-in date range. The three
// filters compose with AND, relative order is preserved and the input slice is
// never mutated. Empty criteria return the input unchanged.
func Filter(logs []AttendanceLog, c FilterCriteria) []AttendanceLog {
	out := logs

	if term := strings.TrimSpace(c.SearchTerm); term != "" {
		term = strings.ToLower(term)
		matched := make([]AttendanceLog, 0, len(out))
		for _, l := range out {
			if l.matchesSearch(term) {
				matched = append(matched, l)
			}
		}
		out = matched
	}

	if c.FromDate != nil {
		matched := make([]AttendanceLog, 0, len(out))
		for _, l := range out {
			if l.CheckIn != nil && !l.CheckIn.Before(*c.FromDate) {
				matched = append(matched, l)
			}
		}
		out = matched
	}

	if c.ToDate != nil {
		matched := make([]AttendanceLog, 0, len(out))
		for _, l := range out {
			if l.CheckIn != nil && !l.CheckIn.After(*c.ToDate) {
				matched = append(matched, l)
			}
		}
		out = matched
	}

	return out
}

// matchesSearch reports whether the lower-cased term occurs in the username or
// in the check-in date rendered as M/D/YYYY. A log without a user reference
// can still match by date; a log without a check-in can still match by
// username.
func (l AttendanceLog) matchesSearch(term string) bool {
	if l.User != nil && strings.Contains(strings.ToLower(l.User.Username), term) {
		return true
	}
	if l.CheckIn != nil && strings.Contains(strings.ToLower(l.CheckIn.Format(searchDateLayout)), term) {
		return true
	}
	return false
}

// NewMonthlySummary aggregates the personal logs falling in now's calendar
// month and year, bucketing each log by check-in time or, when absent,
// creation time. Returns nil when there are no logs at all. Logs missing
// either timestamp contribute nothing to TotalHours.
func NewMonthlySummary(logs []AttendanceLog, now time.Time) *MonthlySummary {
	if len(logs) == 0 {
		return nil
	}

	var s MonthlySummary
	for _, l := range logs {
		ref := l.referenceTime()
		if ref.Year() != now.Year() || ref.Month() != now.Month() {
			continue
		}
		s.TotalDays++
		if l.CheckIn != nil {
			s.PresentDays++
		}
		if l.CheckIn != nil && l.CheckOut != nil {
			s.TotalHours += l.CheckOut.Sub(*l.CheckIn).Hours()
		}
	}

	s.AbsentDays = s.TotalDays - s.PresentDays
	s.TotalHours = math.Round(s.TotalHours*100) / 100
	return &s
}

// NewTeamSummary aggregates the team logs for now's calendar day. Returns nil
// when there are no logs at all. "Today" is compared on UTC ISO dates on both
// sides so a timezone boundary cannot split the day.
func NewTeamSummary(logs []AttendanceLog, now time.Time) *TeamSummary {
	if len(logs) == 0 {
		return nil
	}

	var s TeamSummary
	employees := make(map[string]struct{})
	today := now.UTC().Format("2006-01-02")

	for _, l := range logs {
		employees[l.employeeKey()] = struct{}{}
		if l.CheckIn == nil {
			continue
		}
		// PresentToday counts log entries, not distinct employees: an
		// employee with two check-ins today is counted twice, which can
		// push AbsentToday negative.
		if l.CheckIn.UTC().Format("2006-01-02") == today {
			s.PresentToday++
		}
		if l.CheckIn.Hour() > lateHourThreshold {
			s.LateArrivals++
		}
	}

	s.TotalEmployees = len(employees)
	s.AbsentToday = s.TotalEmployees - s.PresentToday
	return &s
}

// DeriveStatus inspects the first log, which the upstream API orders
// most-recent-first; no independent sort is applied. An open session
// (check-in without check-out) means checked-in, everything else, including
// an empty history, means checked-out.
func DeriveStatus(logs []AttendanceLog) Status {
	if len(logs) == 0 {
		return StatusCheckedOut
	}
	latest := logs[0]
	if latest.CheckIn != nil && latest.CheckOut == nil {
		return StatusCheckedIn
	}
	return StatusCheckedOut
}

// LogsOn returns the logs whose reference time falls on the given calendar
// day, for the calendar widget.
func LogsOn(logs []AttendanceLog, day time.Time) []AttendanceLog {
	target := day.Format("2006-01-02")
	out := make([]AttendanceLog, 0)
	for _, l := range logs {
		if l.referenceTime().Format("2006-01-02") == target {
			out = append(out, l)
		}
	}
	return out
}
