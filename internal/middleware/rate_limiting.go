package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-redis/redis_rate/v9"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymlog/internal/telemetry/metrics"
	"github.com/2beens/gymlog/pkg"
)

type RequestRateLimiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

// RateLimit allows allowedPerMin requests per minute for each client IP under the given key.
func RateLimit(
	rateLimiter RequestRateLimiter,
	key string,
	allowedPerMin int,
	metricsManager *metrics.Manager,
) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			limiterKey := key
			if ip, err := pkg.ReadUserIP(r); err == nil && ip != "" {
				limiterKey = key + "|" + ip
			}

			res, err := rateLimiter.Allow(r.Context(), limiterKey, redis_rate.PerMinute(allowedPerMin))
			if err != nil {
				log.Errorf("rate limit [%s]: %s", limiterKey, err)
				http.Error(w, "rate limit internal error", http.StatusInternalServerError)
				return
			}

			if res.Allowed > 0 {
				next.ServeHTTP(w, r)
				return
			}

			metricsManager.CounterRateLimitedRequests.Inc()
			http.Error(
				w,
				fmt.Sprintf("retry after %f seconds", res.RetryAfter.Seconds()),
				http.StatusTooManyRequests,
			)
		})
	}
}
