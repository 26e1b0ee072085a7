package main

import (
	"fmt"
	"net/http"

	"github.com/attendly/attendance-gateway/internal/config"
	appHTTP "github.com/attendly/attendance-gateway/internal/handler/http"
	"github.com/attendly/attendance-gateway/internal/pkg/jwt"
	"github.com/attendly/attendance-gateway/internal/pkg/upstream"
	dashboardService "github.com/attendly/attendance-gateway/internal/service/dashboard"
	employeeDashboardService "github.com/attendly/attendance-gateway/internal/service/employee_dashboard"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	upstreamClient := upstream.NewClient(cfg.Upstream)
	jwtService := jwt.NewJWTService(cfg.JWT.Secret)

	adminSvc := dashboardService.NewAdminDashboardService(upstreamClient)
	employeeSvc := employeeDashboardService.NewEmployeeDashboardService(upstreamClient)

	dashboardHandler := appHTTP.NewDashboardHandler(adminSvc)
	employeeHandler := appHTTP.NewEmployeeDashboardHandler(employeeSvc)

	router := appHTTP.NewRouter(
		jwtService,
		dashboardHandler,
		employeeHandler,
		cfg.CORS.AllowedOrigins,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
