package http

import (
	"net/http"

	"github.com/attendly/attendance-gateway/internal/domain/attendance"
	"github.com/attendly/attendance-gateway/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

type DashboardHandler interface {
	GetAdminDashboard(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	adminService attendance.AdminDashboardService
}

func NewDashboardHandler(adminService attendance.AdminDashboardService) DashboardHandler {
	return &dashboardHandlerImpl{
		adminService: adminService,
	}
}

// GetAdminDashboard implements DashboardHandler.
func (h *dashboardHandlerImpl) GetAdminDashboard(w http.ResponseWriter, r *http.Request) {
	// Parse query parameters
	filter := attendance.AdminLogsFilter{}

	filter.Search = r.URL.Query().Get("search")

	if from := r.URL.Query().Get("from"); from != "" {
		filter.From = &from
	}

	if to := r.URL.Query().Get("to"); to != "" {
		filter.To = &to
	}

	// Validate filter
	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	token := jwtauth.TokenFromHeader(r)

	result, err := h.adminService.GetDashboard(r.Context(), token, filter.Criteria())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
