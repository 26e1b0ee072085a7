// Package upstream implements the client for the attendance REST API the
// gateway consumes. Every request forwards the caller's bearer token; the
// client never holds credentials of its own and never retries — a failed
// fetch is the caller's signal to degrade its view.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/attendly/attendance-gateway/internal/config"
	"github.com/attendly/attendance-gateway/internal/domain/attendance"
)

const (
	adminLogsPath = "/admin/attendance"
	myLogsPath    = "/attendance/me"
	teamLogsPath  = "/attendance/team"
	checkInPath   = "/attendance/checkin"
	checkOutPath  = "/attendance/checkout"
)

// Client talks to the upstream attendance API. It implements
// attendance.LogSource.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(cfg config.UpstreamConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

// APIError is a non-2xx answer from the upstream API. Message carries the
// backend-provided error text when the body had one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("upstream API error [%d]", e.StatusCode)
	}
	return fmt.Sprintf("upstream API error [%d]: %s", e.StatusCode, e.Message)
}

// AdminLogs implements attendance.LogSource.
func (c *Client) AdminLogs(ctx context.Context, token string) ([]attendance.AttendanceLog, error) {
	return c.getLogs(ctx, adminLogsPath, token)
}

// MyLogs implements attendance.LogSource.
func (c *Client) MyLogs(ctx context.Context, token string) ([]attendance.AttendanceLog, error) {
	return c.getLogs(ctx, myLogsPath, token)
}

// TeamLogs implements attendance.LogSource.
func (c *Client) TeamLogs(ctx context.Context, token string) ([]attendance.AttendanceLog, error) {
	return c.getLogs(ctx, teamLogsPath, token)
}

// CheckIn implements attendance.LogSource.
func (c *Client) CheckIn(ctx context.Context, token string) error {
	return c.post(ctx, checkInPath, token)
}

// CheckOut implements attendance.LogSource.
func (c *Client) CheckOut(ctx context.Context, token string) error {
	return c.post(ctx, checkOutPath, token)
}

func (c *Client) getLogs(ctx context.Context, path string, token string) ([]attendance.AttendanceLog, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", attendance.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: extractMessage(body)}
	}

	var logs []attendance.AttendanceLog
	if err := json.Unmarshal(body, &logs); err != nil {
		return nil, fmt.Errorf("decoding %s response: %w", path, err)
	}
	return logs, nil
}

func (c *Client) post(ctx context.Context, path string, token string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader("{}"))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", attendance.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return &APIError{StatusCode: resp.StatusCode, Message: extractMessage(body)}
	}
	return nil
}

// extractMessage pulls the "message" field out of an upstream error body.
// Returns "" when the body is not JSON or has no message.
func extractMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Message
}
