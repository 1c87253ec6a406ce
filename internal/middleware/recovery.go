package middleware

import (
	"net/http"
	"runtime/debug"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymlog/internal/telemetry/metrics"
)

// PanicRecovery turns a handler panic into a 500 and counts it against the
// route it happened on, so a broken endpoint shows up by name.
func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}

				route := routeName(r)
				log.WithFields(log.Fields{
					"route":  route,
					"method": r.Method,
				}).Errorf("panic serving %s: %v\n%s", r.URL.Path, rec, debug.Stack())

				if metricsManager != nil {
					metricsManager.CounterHandleRequestPanic.WithLabelValues(route).Inc()
				}
				http.Error(w, "internal error", http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
