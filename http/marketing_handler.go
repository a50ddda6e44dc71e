package http

import (
	"net/http"

	"smokyhost/service"
)

type MarketingHandler struct {
	service *service.MarketingService
}

func NewMarketingHandler(service *service.MarketingService) *MarketingHandler {
	return &MarketingHandler{service: service}
}

func (h *MarketingHandler) SocialPost(w http.ResponseWriter, r *http.Request) {

	var req SocialPostRequest
	if errs := ReadAndValidateRequest(w, r, &req); errs != nil {
		ValidationResponse(w, errs)
		return
	}

	post, err := h.service.SocialPost(r.Context(), req.Topic, req.Platform)
	if err != nil {
		ErrorResponse(w, r, err)
		return
	}

	SuccessResponse(w, post)
}

func (h *MarketingHandler) CoHostPitch(w http.ResponseWriter, r *http.Request) {

	var req CoHostPitchRequest
	if errs := ReadAndValidateRequest(w, r, &req); errs != nil {
		ValidationResponse(w, errs)
		return
	}

	pitch, err := h.service.CoHostPitch(r.Context(), req.LeadName, req.LeadAddress, req.Email)
	if err != nil {
		ErrorResponse(w, r, err)
		return
	}

	SuccessResponse(w, pitch)
}
