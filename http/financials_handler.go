package http

import (
	"net/http"

	"smokyhost/service"
)

type FinancialsHandler struct {
	service *service.FinancialsService
}

func NewFinancialsHandler(service *service.FinancialsService) *FinancialsHandler {
	return &FinancialsHandler{service: service}
}

// Simulate runs the revenue projector. Fields missing from the body keep the
// configured market assumptions, so an empty body projects the base case.
func (h *FinancialsHandler) Simulate(w http.ResponseWriter, r *http.Request) {

	assumptions := h.service.DefaultAssumptions()
	if err := decodeJSON(w, r, &assumptions); err != nil {
		ErrorResponse(w, r, err)
		return
	}

	report, err := h.service.Simulate(assumptions)
	if err != nil {
		ErrorResponse(w, r, err)
		return
	}

	SuccessResponse(w, report)
}

func (h *FinancialsHandler) ListSimulations(w http.ResponseWriter, r *http.Request) {

	records, err := h.service.History()
	if err != nil {
		ErrorResponse(w, r, err)
		return
	}

	ListResponse(w, records, len(records))
}

func (h *FinancialsHandler) GrowthStrategy(w http.ResponseWriter, r *http.Request) {

	var req GrowthStrategyRequest
	if errs := ReadAndValidateRequest(w, r, &req); errs != nil {
		ValidationResponse(w, errs)
		return
	}

	result, err := h.service.GrowthStrategy(r.Context(), req.Budget)
	if err != nil {
		ErrorResponse(w, r, err)
		return
	}

	SuccessResponse(w, result)
}
