// Package export serializes attendance log lists for download.
package export

import (
	"bytes"
	"encoding/csv"
	"time"

	"github.com/attendly/attendance-gateway/internal/domain/attendance"
)

// Filename is the download name the dashboards use for attendance exports.
const Filename = "attendance-report.csv"

var header = []string{"id", "username", "check_in", "check_out", "created_at"}

// MarshalCSV renders the log list as CSV with a header row. Missing
// timestamps and missing user references become empty cells.
func MarshalCSV(logs []attendance.AttendanceLog) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, l := range logs {
		var username string
		if l.User != nil {
			username = l.User.Username
		}
		record := []string{
			l.ID,
			username,
			formatTime(l.CheckIn),
			formatTime(l.CheckOut),
			l.CreatedAt.Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
