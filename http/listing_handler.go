package http

import (
	"net/http"

	"smokyhost/service"
)

type ListingHandler struct {
	service *service.ListingService
}

func NewListingHandler(service *service.ListingService) *ListingHandler {
	return &ListingHandler{service: service}
}

func (h *ListingHandler) GetListing(w http.ResponseWriter, r *http.Request) {
	SuccessResponse(w, h.service.Current())
}

func (h *ListingHandler) UpdateDescription(w http.ResponseWriter, r *http.Request) {

	var req UpdateDescriptionRequest
	if errs := ReadAndValidateRequest(w, r, &req); errs != nil {
		ValidationResponse(w, errs)
		return
	}

	listing, err := h.service.UpdateDescription(req.Description)
	if err != nil {
		ErrorResponse(w, r, err)
		return
	}

	SuccessResponse(w, listing)
}

func (h *ListingHandler) Optimize(w http.ResponseWriter, r *http.Request) {

	listing, suggestion, err := h.service.Optimize(r.Context())
	if err != nil {
		ErrorResponse(w, r, err)
		return
	}

	SuccessResponse(w, OptimizeListingResponse{Listing: listing, Suggestion: suggestion})
}
