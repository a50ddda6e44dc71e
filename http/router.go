package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"smokyhost/service"
)

type Services struct {
	AI         *service.AIService
	Dashboard  *service.DashboardService
	Guests     *service.GuestService
	Pricing    *service.PricingService
	Listings   *service.ListingService
	Marketing  *service.MarketingService
	Operations *service.OperationsService
	Financials *service.FinancialsService
}

type RouterOptions struct {
	Logger        zerolog.Logger
	Registry      *prometheus.Registry
	RateLimiter   *RateLimiter
	SlowThreshold time.Duration
}

// NewRouter wires every route. Routes that call the text generator are rate
// limited when opts.RateLimiter is set.
func NewRouter(svc Services, opts RouterOptions) *mux.Router {
	dashboard := NewDashboardHandler(svc.Dashboard)
	guests := NewGuestHandler(svc.Guests)
	pricing := NewPricingHandler(svc.Pricing)
	listings := NewListingHandler(svc.Listings)
	marketing := NewMarketingHandler(svc.Marketing)
	operations := NewOperationsHandler(svc.Operations)
	financials := NewFinancialsHandler(svc.Financials)

	r := mux.NewRouter()
	r.Use(RequestLogging(opts.Logger), Recover)
	if opts.Registry != nil {
		r.Use(Metrics(opts.Registry, opts.SlowThreshold))
		r.Handle("/metrics", promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		SuccessResponse(w, HealthResponse{Status: "ok", AIEnabled: svc.AI != nil && svc.AI.Enabled()})
	}).Methods(http.MethodGet)

	limit := func(h http.HandlerFunc) http.Handler {
		if opts.RateLimiter == nil {
			return h
		}
		return RateLimitMiddleware(opts.RateLimiter)(h)
	}

	r.Handle("/dashboard", limit(dashboard.GetDashboard)).Methods(http.MethodGet)

	r.HandleFunc("/guests/chats", guests.ListChats).Methods(http.MethodGet)
	r.HandleFunc("/guests/chats/{id}/messages", guests.ListMessages).Methods(http.MethodGet)
	r.HandleFunc("/guests/chats/{id}/messages", guests.SendMessage).Methods(http.MethodPost)
	r.Handle("/guests/chats/{id}/draft", limit(guests.DraftReply)).Methods(http.MethodPost)

	r.Handle("/pricing", limit(pricing.GetPricing)).Methods(http.MethodGet)

	r.HandleFunc("/listings/current", listings.GetListing).Methods(http.MethodGet)
	r.HandleFunc("/listings/current/description", listings.UpdateDescription).Methods(http.MethodPut)
	r.Handle("/listings/current/optimize", limit(listings.Optimize)).Methods(http.MethodPost)

	r.Handle("/marketing/social", limit(marketing.SocialPost)).Methods(http.MethodPost)
	r.Handle("/marketing/cohost-pitch", limit(marketing.CoHostPitch)).Methods(http.MethodPost)

	r.HandleFunc("/operations/tasks", operations.ListTasks).Methods(http.MethodGet)
	r.Handle("/operations/schedule", limit(operations.AutoSchedule)).Methods(http.MethodPost)
	r.Handle("/operations/devices", limit(operations.Telemetry)).Methods(http.MethodGet)

	r.HandleFunc("/financials/simulate", financials.Simulate).Methods(http.MethodPost)
	r.HandleFunc("/financials/simulations", financials.ListSimulations).Methods(http.MethodGet)
	r.Handle("/financials/growth-strategy", limit(financials.GrowthStrategy)).Methods(http.MethodPost)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		DataResponse(w, http.StatusNotFound, []*AppError{NotFoundError("route not found")})
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		DataResponse(w, http.StatusMethodNotAllowed, []*AppError{NewAppError("ERR_METHOD_NOT_ALLOWED", "", "method not allowed", http.StatusMethodNotAllowed)})
	})

	return r
}
