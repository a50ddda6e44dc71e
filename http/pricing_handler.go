package http

import (
	"net/http"
	"strconv"

	"smokyhost/service"
)

type PricingHandler struct {
	service *service.PricingService
}

func NewPricingHandler(service *service.PricingService) *PricingHandler {
	return &PricingHandler{service: service}
}

// GetPricing serves GET /pricing?min_price=150&pet_friendly=true.
func (h *PricingHandler) GetPricing(w http.ResponseWriter, r *http.Request) {

	query := r.URL.Query()

	minPrice := service.DefaultMinPrice
	if v := query.Get("min_price"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			ValidationResponse(w, []*AppError{NewAppError("ERR_NUMBER", "min_price", "min_price must be a number", http.StatusBadRequest)})
			return
		}
		minPrice = parsed
	}

	petFriendly := false
	if v := query.Get("pet_friendly"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			ValidationResponse(w, []*AppError{NewAppError("ERR_BOOLEAN", "pet_friendly", "pet_friendly must be true or false", http.StatusBadRequest)})
			return
		}
		petFriendly = parsed
	}

	SuccessResponse(w, h.service.Analyze(r.Context(), minPrice, petFriendly))
}
