package http

import (
	"net/http"

	"smokyhost/service"
)

type DashboardHandler struct {
	service *service.DashboardService
}

func NewDashboardHandler(service *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// GetDashboard serves GET /dashboard?mode=beginner|pro.
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {

	mode, err := service.ParseDashboardMode(r.URL.Query().Get("mode"))
	if err != nil {
		ErrorResponse(w, r, err)
		return
	}

	SuccessResponse(w, h.service.Dashboard(r.Context(), mode))
}
