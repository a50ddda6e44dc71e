package http

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

const requestIDHeader = "X-Request-Id"

type statusRecorder struct {
	http.ResponseWriter
	status  int
	written int
}

func (w *statusRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusRecorder) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.written += n
	return n, err
}

// RequestLogging attaches a request-scoped logger to the context and logs
// every request once it completes.
func RequestLogging(log zerolog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(requestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set(requestIDHeader, id)

			reqLog := log.With().Str("request_id", id).Logger()
			r = r.WithContext(reqLog.WithContext(r.Context()))

			start := time.Now()
			rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rw, r)

			reqLog.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", rw.status).
				Int("bytes", rw.written).
				Dur("latency", time.Since(start)).
				Msg("http request")
		})
	}
}

// Recover turns panics into 500 responses.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				err, ok := rec.(error)
				if !ok {
					err = fmt.Errorf("%v", rec)
				}
				zerolog.Ctx(r.Context()).Error().
					Err(err).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")
				DataResponse(w, http.StatusInternalServerError, []*AppError{InternalError("Something went wrong")})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// Metrics records request metrics labelled by route template to keep
// cardinality low. Requests slower than slowThreshold are logged as warnings.
func Metrics(reg prometheus.Registerer, slowThreshold time.Duration) mux.MiddlewareFunc {
	f := promauto.With(reg)

	requestsTotal := f.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smokyhost_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "method", "status"},
	)
	requestDuration := f.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "smokyhost_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"route", "method", "class"},
	)
	inFlight := f.NewGauge(
		prometheus.GaugeOpts{
			Name: "smokyhost_http_in_flight_requests",
			Help: "Current number of in-flight HTTP requests",
		},
	)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route := routeLabel(r)

			inFlight.Inc()
			defer inFlight.Dec()

			start := time.Now()
			rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rw, r)
			duration := time.Since(start)

			requestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(rw.status)).Inc()
			requestDuration.WithLabelValues(route, r.Method, statusClass(rw.status)).Observe(duration.Seconds())

			if slowThreshold > 0 && duration >= slowThreshold {
				zerolog.Ctx(r.Context()).Warn().
					Str("route", route).
					Dur("duration", duration).
					Msg("http request slow")
			}
		})
	}
}

func routeLabel(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tmpl, err := route.GetPathTemplate(); err == nil {
			return tmpl
		}
	}
	return "unmatched"
}

func statusClass(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}
