package http

import (
	"math"
	"net"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"
)

// RateLimitMiddleware rejects clients that have used up their bucket. The
// client is identified by the host part of RemoteAddr, which
// middleware.RealIP may already have rewritten.
func RateLimitMiddleware(limiter *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			client, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				client = r.RemoteAddr
			}

			if !limiter.Allow(client) {
				retry := limiter.RetryAfter(client).Seconds()
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(retry))))
				log.Warn().Str("client", client).Str("path", r.URL.Path).Msg("rate limit exceeded")
				writeJSON(w, r, http.StatusTooManyRequests, errorResponse{Error: "rate limit exceeded"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
