package http

import (
	"net/http"

	"smokyhost/service"
)

type OperationsHandler struct {
	service *service.OperationsService
}

func NewOperationsHandler(service *service.OperationsService) *OperationsHandler {
	return &OperationsHandler{service: service}
}

func (h *OperationsHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks := h.service.Tasks()
	ListResponse(w, tasks, len(tasks))
}

func (h *OperationsHandler) AutoSchedule(w http.ResponseWriter, r *http.Request) {
	SuccessResponse(w, h.service.AutoSchedule(r.Context()))
}

func (h *OperationsHandler) Telemetry(w http.ResponseWriter, r *http.Request) {
	SuccessResponse(w, h.service.Telemetry(r.Context()))
}
