package routing

import (
	"net/http"

	"golang.org/x/time/rate"

	gohttp "github.com/km-arc/go-forms/framework/http"
)

// Throttle limits requests through a shared token bucket refilled at perSecond
// with room for burst. Rejected requests get 429. A perSecond of 0 or less
// disables the limit.
//
//	api.Middleware(routing.Throttle(5, 10))
func Throttle(perSecond float64, burst int) func(http.Handler) http.Handler {
	if perSecond <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(perSecond), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				gohttp.NewResponse(w).TooManyRequests()
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
