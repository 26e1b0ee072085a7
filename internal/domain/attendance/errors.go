package attendance

import "errors"

// Attendance gateway domain errors
var (
	ErrInvalidToken        = errors.New("missing or invalid access token")
	ErrUpstreamUnavailable = errors.New("attendance service is unavailable")
)
