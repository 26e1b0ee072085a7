package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/attendly/attendance-gateway/internal/domain/attendance"
	"github.com/attendly/attendance-gateway/internal/handler/http/response"
	"github.com/attendly/attendance-gateway/internal/pkg/export"
	"github.com/attendly/attendance-gateway/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
)

type EmployeeDashboardHandler interface {
	GetDashboard(w http.ResponseWriter, r *http.Request)
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	Calendar(w http.ResponseWriter, r *http.Request)
	ExportCSV(w http.ResponseWriter, r *http.Request)
}

type employeeDashboardHandlerImpl struct {
	employeeService attendance.EmployeeDashboardService
}

func NewEmployeeDashboardHandler(employeeService attendance.EmployeeDashboardService) EmployeeDashboardHandler {
	return &employeeDashboardHandlerImpl{
		employeeService: employeeService,
	}
}

// GetDashboard implements EmployeeDashboardHandler.
func (h *employeeDashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	token := jwtauth.TokenFromHeader(r)

	result, err := h.employeeService.GetDashboard(r.Context(), token)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CheckIn implements EmployeeDashboardHandler.
func (h *employeeDashboardHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	token := jwtauth.TokenFromHeader(r)

	result := h.employeeService.CheckIn(r.Context(), token)
	if !result.Success {
		response.BadGateway(w, result.Message)
		return
	}

	response.SuccessWithMessage(w, result.Message, result)
}

// CheckOut implements EmployeeDashboardHandler.
func (h *employeeDashboardHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	token := jwtauth.TokenFromHeader(r)

	result := h.employeeService.CheckOut(r.Context(), token)
	if !result.Success {
		response.BadGateway(w, result.Message)
		return
	}

	response.SuccessWithMessage(w, result.Message, result)
}

// Calendar implements EmployeeDashboardHandler. The date query parameter
// selects the day; it defaults to today.
func (h *employeeDashboardHandlerImpl) Calendar(w http.ResponseWriter, r *http.Request) {
	day := time.Now()
	if date := r.URL.Query().Get("date"); date != "" {
		parsed, ok := validator.IsValidDate(date)
		if !ok {
			response.BadRequest(w, "date must be in YYYY-MM-DD format", nil)
			return
		}
		day = parsed
	}

	token := jwtauth.TokenFromHeader(r)
	logs := h.employeeService.CalendarDay(r.Context(), token, day)

	response.Success(w, attendance.CalendarDayResponse{
		Date: day.Format("2006-01-02"),
		Logs: logs,
	})
}

// ExportCSV implements EmployeeDashboardHandler.
func (h *employeeDashboardHandlerImpl) ExportCSV(w http.ResponseWriter, r *http.Request) {
	token := jwtauth.TokenFromHeader(r)

	data, err := h.employeeService.ExportCSV(r.Context(), token)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
