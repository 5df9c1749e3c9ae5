package middleware

import (
	"net/http"

	"github.com/go-chi/render"
	"golang.org/x/time/rate"
)

type limitResponse struct {
	StatusText string `json:"status"`
	ErrorText  string `json:"error"`
}

// Limit token bucket global untuk semua request. request yang tidak dapat token langsung 429.
func Limit(rps float64, burst int) func(next http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				render.Status(r, http.StatusTooManyRequests)
				render.JSON(w, r, limitResponse{
					StatusText: "Too many requests.",
					ErrorText:  "rate limit exceeded",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
