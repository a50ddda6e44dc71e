package http

import (
	"net"
	"net/http"
)

// RateLimitMiddleware limits requests per client IP.
func RateLimitMiddleware(limiter *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			if !limiter.Allow(ip) {
				DataResponse(w, http.StatusTooManyRequests, []*AppError{TooManyRequestsError()})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
